package minimize

import "github.com/selfstarter/structgen/segment"

// Run reduces a fully merged meta-template to its minimal faithful form:
// it prunes unreachable parameter values, coalesces parameters that always
// agree where both are defined, builds presence predicates and device
// groups, and finally renumbers lines and parameters in traversal order.
func Run(blocks []*segment.Block, plm *segment.ParametersLinesMap) {
	PruneUnreachable(blocks, plm)

	groups := CoalesceGroups(plm)
	ApplyCoalesce(blocks, plm, groups)
	PruneUnreachable(blocks, plm)

	BuildPredicates(blocks, plm)
	BuildGroups(plm)

	RenumberLines(blocks, plm)
	RenumberParameters(blocks, plm)
}
