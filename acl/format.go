package acl

import (
	"fmt"
	"strings"

	"github.com/selfstarter/structgen/flavor"
	"github.com/selfstarter/structgen/segment"
)

// FormatBlock renders lines in Cisco/Arista IOS-style access-list syntax.
// configFormat is currently unused beyond selecting this one rendering,
// since every vendor this flavor has been exercised against renders ACLs
// identically; a vendor needing a different rendering adds a branch here.
func (Adapter) FormatBlock(configFormat string, action segment.Action, lines []*segment.Line, linePredicate map[int]string, patternString string) (string, []flavor.Row) {
	var out strings.Builder
	rows := make([]flavor.Row, 0, len(lines))
	verb := strings.ToLower(string(action))

	for _, l := range lines {
		predicate := linePredicate[l.Identity]
		protocol := strings.ToLower(l.Tag)

		src, srcWild := formatEndpoint(l.Attrs[0:4], l.Attrs[4:8])
		dst, dstWild := formatEndpoint(l.Attrs[8:12], l.Attrs[12:16])
		srcPortClause := formatPortClause(l.Attrs[16], l.Attrs[17])
		dstPortClause := formatPortClause(l.Attrs[18], l.Attrs[19])

		cells := []string{predicate, verb, protocol, src, srcWild, srcPortClause, dst, dstWild, dstPortClause}
		rows = append(rows, flavor.Row{Predicate: predicate, Cells: cells})

		fmt.Fprintf(&out, "%-3d: %-3s: %s %s %s %s%s %s %s%s\n",
			l.Identity, predicate, verb, protocol, src, srcWild, srcPortClause, dst, dstWild, dstPortClause)
	}
	return out.String(), rows
}

func formatEndpoint(ip, wildcard []string) (addr, clause string) {
	if allEqual(wildcard, "255") {
		return "any", ""
	}
	if allEqual(wildcard, "0") {
		return "host", strings.Join(ip, ".")
	}
	return strings.Join(ip, "."), strings.Join(wildcard, ".")
}

func allEqual(octets []string, want string) bool {
	for _, o := range octets {
		if o != want {
			return false
		}
	}
	return true
}

func formatPortClause(lo, hi string) string {
	switch {
	case lo == "-1" && hi == "-1":
		return ""
	case lo == hi:
		return " eq " + lo
	default:
		return " range " + lo + " " + hi
	}
}
