package minimize

import (
	"sort"

	"github.com/selfstarter/structgen/segment"
)

type pairStat struct {
	common    int
	agreeOnly bool
}

// pairwiseStats computes, for every pair of distinct parameter names, how
// many devices define both and whether they agree on every one of those
// devices.
func pairwiseStats(params []string, plm *segment.ParametersLinesMap) map[[2]string]pairStat {
	stats := make(map[[2]string]pairStat)
	for i := 0; i < len(params); i++ {
		for j := i + 1; j < len(params); j++ {
			p, q := params[i], params[j]
			common, agree := 0, 0
			for _, values := range plm.Parameters {
				v1, ok1 := values[p]
				v2, ok2 := values[q]
				if !ok1 || !ok2 {
					continue
				}
				common++
				if v1 == v2 {
					agree++
				}
			}
			stats[[2]string{p, q}] = pairStat{common: common, agreeOnly: common > 0 && agree == common}
		}
	}
	return stats
}

func lookup(stats map[[2]string]pairStat, a, b string) (pairStat, bool) {
	if a > b {
		a, b = b, a
	}
	s, ok := stats[[2]string{a, b}]
	return s, ok
}

// CoalesceGroups finds maximal groups of parameters whose values agree on
// every device that defines more than one member, processing candidate
// pairs in descending order of supporting-device count so the
// best-evidenced merges are tried first.
func CoalesceGroups(plm *segment.ParametersLinesMap) [][]string {
	var params []string
	for p := range allParams(plm) {
		params = append(params, p)
	}
	sort.Strings(params)

	stats := pairwiseStats(params, plm)

	type candidate struct {
		a, b   string
		common int
	}
	var candidates []candidate
	for key, s := range stats {
		if s.common > 0 && s.agreeOnly {
			candidates = append(candidates, candidate{a: key[0], b: key[1], common: s.common})
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].common != candidates[j].common {
			return candidates[i].common > candidates[j].common
		}
		if candidates[i].a != candidates[j].a {
			return candidates[i].a < candidates[j].a
		}
		return candidates[i].b < candidates[j].b
	})

	groupOf := make(map[string]int)
	var groups [][]string
	for _, p := range params {
		groupOf[p] = len(groups)
		groups = append(groups, []string{p})
	}

	for _, c := range candidates {
		gi, gj := groupOf[c.a], groupOf[c.b]
		if gi == gj {
			continue
		}
		if !groupsCompatible(groups[gi], groups[gj], stats) {
			continue
		}
		groups[gi] = append(groups[gi], groups[gj]...)
		for _, m := range groups[gj] {
			groupOf[m] = gi
		}
		groups[gj] = nil
	}

	var out [][]string
	for _, g := range groups {
		if len(g) > 0 {
			sort.Strings(g)
			out = append(out, g)
		}
	}
	return out
}

// groupsCompatible reports whether every cross-pair between the two
// groups' members is either never jointly defined or always in agreement.
func groupsCompatible(g1, g2 []string, stats map[[2]string]pairStat) bool {
	for _, a := range g1 {
		for _, b := range g2 {
			s, ok := lookup(stats, a, b)
			if ok && s.common > 0 && !s.agreeOnly {
				return false
			}
		}
	}
	return true
}

func allParams(plm *segment.ParametersLinesMap) map[string]struct{} {
	set := make(map[string]struct{})
	for _, values := range plm.Parameters {
		for p := range values {
			set[p] = struct{}{}
		}
	}
	return set
}

// ApplyCoalesce rewrites blocks and plm so every parameter in each group of
// groups is replaced by that group's lexicographically-first member.
func ApplyCoalesce(blocks []*segment.Block, plm *segment.ParametersLinesMap, groups [][]string) {
	rename := make(map[string]string)
	for _, g := range groups {
		if len(g) < 2 {
			continue
		}
		canonical := g[0]
		for _, member := range g[1:] {
			rename[member] = canonical
		}
	}
	if len(rename) == 0 {
		return
	}

	for _, b := range blocks {
		for _, l := range b.Lines {
			for a := range l.Attrs {
				if canonical, ok := rename[l.Attrs[a]]; ok && l.IsParam(a) {
					l.Attrs[a] = canonical
				}
			}
		}
	}

	for _, values := range plm.Parameters {
		for old, canonical := range rename {
			if v, ok := values[old]; ok {
				if _, already := values[canonical]; !already {
					values[canonical] = v
				}
				delete(values, old)
			}
		}
	}
}
