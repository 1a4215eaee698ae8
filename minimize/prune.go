package minimize

import "github.com/selfstarter/structgen/segment"

// paramLineIdentities scans blocks and returns, for each parameter name in
// use, every line identity carrying it.
func paramLineIdentities(blocks []*segment.Block) map[string][]int {
	owner := make(map[string][]int)
	for _, b := range blocks {
		for _, l := range b.Lines {
			for a := range l.Attrs {
				if l.IsParam(a) {
					owner[l.Attrs[a]] = append(owner[l.Attrs[a]], l.Identity)
				}
			}
		}
	}
	return owner
}

// PruneUnreachable drops, for every device, any parameter value recorded
// for a parameter none of whose lines the device actually carries (per
// plm.LineMapping). Such values appear because a newly allocated parameter
// is back-filled for every device already tracked, including devices that
// do not carry its line.
func PruneUnreachable(blocks []*segment.Block, plm *segment.ParametersLinesMap) {
	owner := paramLineIdentities(blocks)

	hasLine := make(map[string]map[int]bool, len(plm.LineMapping))
	for device, ids := range plm.LineMapping {
		set := make(map[int]bool, len(ids))
		for _, id := range ids {
			set[id] = true
		}
		hasLine[device] = set
	}

	for device, values := range plm.Parameters {
		for param := range values {
			lineIDs, ok := owner[param]
			if !ok {
				continue
			}
			carried := false
			for _, lineID := range lineIDs {
				if hasLine[device][lineID] {
					carried = true
					break
				}
			}
			if !carried {
				delete(values, param)
			}
		}
	}
}
