package prefixlist

import (
	"fmt"
	"strings"

	"github.com/selfstarter/structgen/flavor"
	"github.com/selfstarter/structgen/segment"
)

// FormatBlock renders lines as Juniper flat-language prefix-list
// statements, or as Cisco/Arista IOS "ip[v6] prefix-list" statements,
// depending on configFormat.
func (Adapter) FormatBlock(configFormat string, action segment.Action, lines []*segment.Line, linePredicate map[int]string, patternString string) (string, []flavor.Row) {
	lower := strings.ToLower(configFormat)
	switch {
	case strings.Contains(lower, "juniper"):
		return formatJuniper(lines, linePredicate, patternString)
	default:
		return formatCiscoArista(action, lines, linePredicate, patternString)
	}
}

func address(l *segment.Line) string {
	if l.Tag == "6" {
		return strings.Join(l.Attrs[3:11], ":") + "/" + l.Attrs[0]
	}
	return strings.Join(l.Attrs[3:7], ".") + "/" + l.Attrs[0]
}

func formatJuniper(lines []*segment.Line, linePredicate map[int]string, patternString string) (string, []flavor.Row) {
	var out strings.Builder
	rows := make([]flavor.Row, 0, len(lines))
	common := "set policy-options prefix-list " + patternString

	for _, l := range lines {
		predicate := linePredicate[l.Identity]
		addr := address(l)
		clause := rangeClauseJuniper(l.Attrs[0], l.Attrs[1], l.Attrs[2])

		cells := []string{predicate, common, addr, clause}
		rows = append(rows, flavor.Row{Predicate: predicate, Cells: cells})
		fmt.Fprintf(&out, "%-3d: %-3s: %s %s %s\n", l.Identity, predicate, common, addr, clause)
	}
	return out.String(), rows
}

func formatCiscoArista(action segment.Action, lines []*segment.Line, linePredicate map[int]string, patternString string) (string, []flavor.Row) {
	var out strings.Builder
	rows := make([]flavor.Row, 0, len(lines))

	for _, l := range lines {
		predicate := linePredicate[l.Identity]
		verbClause := " prefix-list " + patternString + " " + string(action) + " "
		family := "ip"
		if l.Tag == "6" {
			family = "ipv6"
		}
		verbClause = family + verbClause

		addr := address(l)
		clause := rangeClauseCisco(l.Attrs[0], l.Attrs[1], l.Attrs[2])

		cells := []string{predicate, verbClause, addr, clause}
		rows = append(rows, flavor.Row{Predicate: predicate, Cells: cells})
		fmt.Fprintf(&out, "%-3d: %-3s: %s %s %s\n", l.Identity, predicate, verbClause, addr, clause)
	}
	return out.String(), rows
}

// rangeClauseJuniper renders the permitted prefix-length range in
// Juniper's flat-language phrasing.
func rangeClauseJuniper(maskLen, low, high string) string {
	switch {
	case maskLen == low && low == high:
		return "exact"
	case maskLen == low:
		return "upto /" + high
	default:
		return "prefix-length-range /" + low + "-/" + high
	}
}

// rangeClauseCisco renders the permitted prefix-length range in
// cisco/arista "ip[v6] prefix-list" phrasing.
func rangeClauseCisco(maskLen, low, high string) string {
	switch {
	case maskLen == low && low == high:
		return " "
	case maskLen == low:
		return "/" + maskLen + " le " + high
	case low == high:
		return "/" + maskLen + " eq " + low
	default:
		return "/" + maskLen + " ge " + low + " le " + high
	}
}
