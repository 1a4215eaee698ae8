package routepolicy

import (
	"fmt"
	"strings"

	"github.com/selfstarter/structgen/flavor"
	"github.com/selfstarter/structgen/segment"
)

// FormatBlock renders each statement line verbatim after a heading made of
// the pattern string and the block's action, annotated with its predicate. Statement text already
// carries whatever vendor-specific syntax it was captured with, so there is
// no per-vendor branch here the way acl and prefixlist need one.
func (Adapter) FormatBlock(configFormat string, action segment.Action, lines []*segment.Line, linePredicate map[int]string, patternString string) (string, []flavor.Row) {
	var out strings.Builder
	rows := make([]flavor.Row, 0, len(lines))

	heading := patternString + " " + string(action)
	for _, l := range lines {
		predicate := linePredicate[l.Identity]
		text := l.Attrs[0]

		cells := []string{predicate, heading, text}
		rows = append(rows, flavor.Row{Predicate: predicate, Cells: cells})
		fmt.Fprintf(&out, "%-3d: %-3s: %s %s\n", l.Identity, predicate, heading, text)
	}
	return out.String(), rows
}
