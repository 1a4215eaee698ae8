package minimize

import (
	"sort"
	"strconv"

	"github.com/selfstarter/structgen/segment"
)

// RenumberLines sorts each block's lines by predicate name (so "A"-predicated
// lines sort ahead of "R"-predicated ones, since Go's string comparison
// already orders 'A' before 'R') and then assigns dense, contiguous
// identities in final traversal order across the whole template. plm's
// bookkeeping (LineMapping, Predicates) is rewritten to match.
//
// BuildPredicates must have already populated plm.Predicates before this
// runs.
func RenumberLines(blocks []*segment.Block, plm *segment.ParametersLinesMap) {
	predicateOf := make(map[int]string)
	for name, ids := range plm.Predicates {
		for _, id := range ids {
			predicateOf[id] = name
		}
	}

	oldToNew := make(map[int]int)
	next := 0
	for _, b := range blocks {
		type indexed struct {
			line *segment.Line
			idx  int
		}
		entries := make([]indexed, len(b.Lines))
		for i, l := range b.Lines {
			entries[i] = indexed{line: l, idx: i}
		}
		sort.SliceStable(entries, func(i, j int) bool {
			return predicateOf[entries[i].line.Identity] < predicateOf[entries[j].line.Identity]
		})

		sortedLines := make([]*segment.Line, len(entries))
		for i, e := range entries {
			sortedLines[i] = e.line
		}
		b.Lines = sortedLines

		for _, l := range b.Lines {
			oldToNew[l.Identity] = next
			next++
		}
	}

	newPredicates := make(map[string][]int, len(plm.Predicates))
	for name, ids := range plm.Predicates {
		renamed := make([]int, len(ids))
		for i, id := range ids {
			renamed[i] = oldToNew[id]
		}
		sort.Ints(renamed)
		newPredicates[name] = renamed
	}
	plm.Predicates = newPredicates

	for _, b := range blocks {
		for _, l := range b.Lines {
			l.Identity = oldToNew[l.Identity]
		}
	}

	plm.RemapLineNumbers(oldToNew)
	plm.SortLineMappings()
}

// RenumberParameters rewrites every parameter name to a dense "P0", "P1",
// ... sequence, assigned in the order each parameter is first encountered
// while walking blocks (which must already be in final traversal order).
func RenumberParameters(blocks []*segment.Block, plm *segment.ParametersLinesMap) {
	rename := make(map[string]string)
	counter := 0

	for _, b := range blocks {
		for _, l := range b.Lines {
			for a := range l.Attrs {
				if !l.IsParam(a) {
					continue
				}
				old := l.Attrs[a]
				name, ok := rename[old]
				if !ok {
					name = segment.ParamPrefix + strconv.Itoa(counter)
					counter++
					rename[old] = name
				}
				l.Attrs[a] = name
			}
		}
	}

	newParameters := make(map[string]map[string]string, len(plm.Parameters))
	for device, values := range plm.Parameters {
		nv := make(map[string]string, len(values))
		for old, v := range values {
			if name, ok := rename[old]; ok {
				nv[name] = v
			} else {
				nv[old] = v
			}
		}
		newParameters[device] = nv
	}
	plm.Parameters = newParameters
	plm.Counter = counter
}
