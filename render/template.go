package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/selfstarter/structgen/flavor"
	"github.com/selfstarter/structgen/segment"
)

// linePredicateMap inverts plm.Predicates into identity -> predicate name,
// the shape every flavor's FormatBlock expects.
func linePredicateMap(plm *segment.ParametersLinesMap) map[int]string {
	out := make(map[int]string)
	for predicate, lines := range plm.Predicates {
		for _, line := range lines {
			out[line] = predicate
		}
	}
	return out
}

// MetaTemplateText renders every block of metaTemplate via adapter's
// vendor-specific FormatBlock, concatenating the per-block text and rows in
// block order. pattern is passed through to FormatBlock for flavors that
// annotate their output with the scanned name pattern.
func MetaTemplateText(adapter flavor.Adapter, pattern string, metaTemplate *segment.BlockSequence, plm *segment.ParametersLinesMap) (string, []flavor.Row) {
	if metaTemplate == nil {
		return "", nil
	}
	predicates := linePredicateMap(plm)

	var out strings.Builder
	var rows []flavor.Row
	for _, block := range metaTemplate.Blocks {
		text, blockRows := adapter.FormatBlock(metaTemplate.Format, block.Action, block.Lines, predicates, pattern)
		out.WriteString(text)
		rows = append(rows, blockRows...)
	}
	return out.String(), rows
}

// GroupSummary renders, for each device group (largest first), its size,
// member devices, and which predicates hold for every line the group's
// devices contribute.
func GroupSummary(plm *segment.ParametersLinesMap) string {
	groups := make([]segment.Group, len(plm.Groups))
	copy(groups, plm.Groups)
	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].Devices) > len(groups[j].Devices)
	})

	var predNames []string
	for p := range plm.Predicates {
		predNames = append(predNames, p)
	}
	sort.Strings(predNames)

	var out strings.Builder
	for i, g := range groups {
		fmt.Fprintf(&out, "\nGroup %d  :\n", i)
		present := make(map[int]struct{}, len(g.Lines))
		for _, l := range g.Lines {
			present[l] = struct{}{}
		}
		for _, predicate := range predNames {
			holds := true
			for _, l := range plm.Predicates[predicate] {
				if _, ok := present[l]; !ok {
					holds = false
					break
				}
			}
			fmt.Fprintf(&out, "\t%s : %t", predicate, holds)
		}

		var devices []string
		for d := range g.Devices {
			devices = append(devices, d)
		}
		sort.Strings(devices)
		fmt.Fprintf(&out, "\nGroup %d : size : %d %v\n", i, len(devices), devices)
	}
	return out.String()
}
