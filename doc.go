// Package structgen generalizes a fleet's per-device configuration
// segments (ACLs, prefix lists, routing policies) into a single
// parameterized meta-template, plus a report of which devices carry which
// parameter values.
//
// The pipeline, end to end:
//
//	flavor    — decodes one device's JSON segments into block sequences
//	            and renders a meta-template back into vendor text
//	align     — aligns two block sequences via dynamic programming,
//	            matching substructure through matching's bipartite solver
//	merge     — folds an alignment's edit script into the growing
//	            meta-template, coalescing matched lines into parameters
//	minimize  — simplifies the merged template: prunes parameter values on
//	            lines a device lacks, coalesces equal-valued parameters,
//	            derives predicates
//	driver    — orchestrates the whole run: bucket devices by segment
//	            size, seed from the largest bucket, align+merge the rest,
//	            minimize, classify, and (via ScanAll) batch-scan a fleet
//	outlier   — flags suspicious parameter value distributions after a
//	            run completes
//	render    — formats a completed run as vendor text, CSV, and HTML
//
// Three flavors ship: acl, prefixlist, and routepolicy, each implementing
// flavor.Adapter once for its own JSON shape and vendor syntax.
package structgen
