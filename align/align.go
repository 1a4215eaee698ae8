package align

import (
	"github.com/selfstarter/structgen/constants"
	"github.com/selfstarter/structgen/flavor"
	"github.com/selfstarter/structgen/matching"
	"github.com/selfstarter/structgen/segment"
)

// Align computes the minimum-cost global alignment of blocks1 against
// blocks2 under scorer, returning the aligned steps in forward order and
// the total cost. paramValues is the current per-parameter value histogram
// used by the line matcher's substitution scoring.
func Align(scorer flavor.Adapter, blocks1, blocks2 []*segment.Block, paramValues map[string]map[string]int) (steps []Step, cost int, err error) {
	n, m := len(blocks1), len(blocks2)

	table := make([][]cell, n+1)
	for i := range table {
		table[i] = make([]cell, m+1)
	}

	table[0][0] = cell{score: 0, pointer: pointerNone}
	for i := 1; i <= n; i++ {
		table[i][0] = cell{
			score:   table[i-1][0].score + scorer.GapPenalty(blocks1[i-1]),
			pointer: pointerGap1,
		}
	}
	for j := 1; j <= m; j++ {
		table[0][j] = cell{
			score:   table[0][j-1].score + scorer.GapPenalty(blocks2[j-1]),
			pointer: pointerGap2,
		}
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			b1, b2 := blocks1[i-1], blocks2[j-1]

			subCost, matched := substitution(scorer, b1, b2, paramValues)
			diag := table[i-1][j-1].score + subCost
			gap1 := table[i-1][j].score + scorer.GapPenalty(b1)
			gap2 := table[i][j-1].score + scorer.GapPenalty(b2)

			// Tie-breaking: diagonal beats either gap; of the two gaps,
			// the block1 gap (consuming blocks1[i-1]) beats the block2 gap.
			switch {
			case diag <= gap1 && diag <= gap2:
				table[i][j] = cell{score: diag, pointer: pointerDiag, matched: matched}
			case gap1 <= gap2:
				table[i][j] = cell{score: gap1, pointer: pointerGap1}
			default:
				table[i][j] = cell{score: gap2, pointer: pointerGap2}
			}
		}
	}

	steps, err = traceback(table, n, m)
	if err != nil {
		return nil, 0, err
	}
	return steps, table[n][m].score, nil
}

// substitution is the diagonal cost of matching b1 against b2: blocks of
// differing action can never be substituted for each other, so that pair
// is priced at constants.Infinity, forcing the tie-break to fall through
// to a gap.
func substitution(scorer flavor.Adapter, b1, b2 *segment.Block, paramValues map[string]map[string]int) (int, []matching.Pair) {
	if b1.Action != b2.Action {
		return constants.Infinity, nil
	}
	cost, pairs := matching.Match(scorer, b1.Lines, b2.Lines, paramValues, scorer.LinePenalty())
	return cost, pairs
}

// traceback walks the filled table backward from (n, m) to (0, 0),
// producing the alignment steps in forward order.
func traceback(table [][]cell, n, m int) ([]Step, error) {
	var reversed []Step
	i, j := n, m
	for i > 0 || j > 0 {
		c := table[i][j]
		switch c.pointer {
		case pointerDiag:
			reversed = append(reversed, Step{B1Index: i - 1, B2Index: j - 1, Matched: c.matched})
			i--
			j--
		case pointerGap1:
			reversed = append(reversed, Step{B1Index: i - 1, B2Index: -1})
			i--
		case pointerGap2:
			reversed = append(reversed, Step{B1Index: -1, B2Index: j - 1})
			j--
		default:
			return nil, segment.ErrUndefinedPointer
		}
	}

	steps := make([]Step, len(reversed))
	for k, s := range reversed {
		steps[len(reversed)-1-k] = s
	}
	return steps, nil
}
