package matching

import (
	"strings"

	"github.com/selfstarter/structgen/constants"
	"github.com/selfstarter/structgen/flavor"
	"github.com/selfstarter/structgen/segment"
)

// Pair is one matched (LS1 index, LS2 index) line pair.
type Pair struct {
	I, J int
}

// Match matches line sequence ls1 against ls2 under scorer's LineScore and
// perLineGapPenalty, returning the matched pairs and the total cost
// (kept-match costs + discarded-incompatible-pair gap costs + the gap cost
// for the sequences' length difference).
func Match(scorer flavor.Adapter, ls1, ls2 []*segment.Line, paramValues map[string]map[string]int, perLineGapPenalty int) (cost int, pairs []Pair) {
	ls1Matched, ls2Matched, shortcutPairs := hashShortcut(ls1, ls2)
	pairs = append(pairs, shortcutPairs...)

	var remLS1, remLS2 []*segment.Line
	var remLS1Idx, remLS2Idx []int
	for i, l := range ls1 {
		if !ls1Matched[i] {
			remLS1 = append(remLS1, l)
			remLS1Idx = append(remLS1Idx, i)
		}
	}
	for j, l := range ls2 {
		if !ls2Matched[j] {
			remLS2 = append(remLS2, l)
			remLS2Idx = append(remLS2Idx, j)
		}
	}

	if len(remLS1) > 0 && len(remLS2) > 0 {
		n := len(remLS1)
		m := len(remLS2)
		size := n
		if m > size {
			size = m
		}
		sq := make([][]float64, size)
		for i := range sq {
			sq[i] = make([]float64, size)
			for j := range sq[i] {
				if i < n && j < m {
					sq[i][j] = float64(scorer.LineScore(remLS1[i], remLS2[j], paramValues))
				}
				// padding rows/cols (dummy lines) cost 0: they never
				// displace a real match from being optimal.
			}
		}
		assignment := solveAssignment(sq)
		for i := 0; i < n; i++ {
			j := assignment[i]
			if j < 0 || j >= m {
				continue // matched to a padding column: no real partner
			}
			s := int(sq[i][j])
			if s == constants.Infinity {
				cost += perLineGapPenalty
				continue
			}
			cost += s
			pairs = append(pairs, Pair{I: remLS1Idx[i], J: remLS2Idx[j]})
		}
	}

	diff := len(ls1) - len(ls2)
	if diff < 0 {
		diff = -diff
	}
	cost += perLineGapPenalty * diff
	return cost, pairs
}

// hashShortcut pairs off lines whose (Tag, Attrs) are identical except for
// Identity, without invoking the assignment solver.
func hashShortcut(ls1, ls2 []*segment.Line) (ls1Matched, ls2Matched map[int]bool, pairs []Pair) {
	ls1Matched = make(map[int]bool)
	ls2Matched = make(map[int]bool)

	byKey := make(map[string][]int)
	for i, l := range ls1 {
		k := lineKey(l)
		byKey[k] = append(byKey[k], i)
	}

	for j, l := range ls2 {
		k := lineKey(l)
		bucket := byKey[k]
		if len(bucket) == 0 {
			continue
		}
		// Pop the last unclaimed LS1 position (stack discipline, matching
		// the Python prototype's list.pop()).
		i := bucket[len(bucket)-1]
		byKey[k] = bucket[:len(bucket)-1]
		ls1Matched[i] = true
		ls2Matched[j] = true
		pairs = append(pairs, Pair{I: i, J: j})
	}
	return ls1Matched, ls2Matched, pairs
}

func lineKey(l *segment.Line) string {
	var b strings.Builder
	b.WriteString(l.Tag)
	b.WriteByte(0)
	for _, a := range l.Attrs {
		b.WriteString(a)
		b.WriteByte(0)
	}
	return b.String()
}
