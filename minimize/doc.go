// Package minimize takes a fully merged meta-template and its bookkeeping
// map and reduces both to their smallest faithful form:
//
//   - prune drops a device's recorded value for any parameter that sits on
//     a line the device doesn't actually carry;
//   - coalesce finds parameters whose values agree on every device that
//     defines both, and folds each such group down to one representative
//     parameter;
//   - predicate assigns every line identity a presence predicate ("A" when
//     every device carries it, "R0", "R1", ... otherwise) from the
//     per-device line mapping, and groups devices that share an identical
//     line-presence pattern;
//   - renumber re-sorts each block's lines by predicate (so "A" lines lead
//     "R"-predicated ones — already the order Go's string comparison
//     gives "A" < "R") and renumbers both line identities and parameter
//     names in final traversal order, so the rendered template reads with
//     densely packed, human-legible numbering.
package minimize
