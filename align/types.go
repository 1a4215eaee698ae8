package align

import "github.com/selfstarter/structgen/matching"

// Step is one cell of a completed alignment: exactly one of B1Index,
// B2Index is -1 when the other side sits opposite a gap, matching the
// Python prototype's [] sentinel for a skipped side.
type Step struct {
	B1Index int // index into the first sequence's blocks, or -1
	B2Index int // index into the second sequence's blocks, or -1
	Matched []matching.Pair
}

const (
	pointerNone = iota
	pointerDiag
	pointerGap2 // consumes block2[j-1], block1 side is a gap
	pointerGap1 // consumes block1[i-1], block2 side is a gap
)

type cell struct {
	score   int
	pointer int
	matched []matching.Pair
}
