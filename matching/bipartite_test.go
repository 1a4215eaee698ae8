package matching_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/selfstarter/structgen/flavor"
	"github.com/selfstarter/structgen/matching"
	"github.com/selfstarter/structgen/segment"
)

// fakeAdapter is a minimal flavor.Adapter used only to exercise LineScore
// through matching.Match in isolation from any real flavor.
type fakeAdapter struct{}

func (fakeAdapter) Name() string           { return "fake" }
func (fakeAdapter) AttributeCount() int    { return 1 }
func (fakeAdapter) GapPenalty(*segment.Block) int { return 10 }
func (fakeAdapter) LinePenalty() int              { return 10 }

func (fakeAdapter) LineScore(a, b *segment.Line, _ map[string]map[string]int) int {
	if a.Tag != b.Tag {
		return 10000
	}
	if a.Attrs[0] == b.Attrs[0] {
		return 0
	}
	return 2
}

func (fakeAdapter) GetBlockSequence(string, flavor.DeviceInfo, *regexp.Regexp, map[string]struct{}, map[string]struct{}, *segment.ExactEquivalence, *int) ([]*segment.BlockSequence, []int) {
	return nil, nil
}

func (fakeAdapter) FormatBlock(string, segment.Action, []*segment.Line, map[int]string, string) (string, []flavor.Row) {
	return "", nil
}

func line(tag, val string, id int) *segment.Line {
	return &segment.Line{Tag: tag, Identity: id, Attrs: []string{val}}
}

func TestMatch_HashShortcutHandlesIdenticalLines(t *testing.T) {
	ls1 := []*segment.Line{line("ip", "10", 0), line("ip", "20", 1)}
	ls2 := []*segment.Line{line("ip", "20", 0), line("ip", "10", 1)}

	cost, pairs := matching.Match(fakeAdapter{}, ls1, ls2, nil, 10)
	assert.Equal(t, 0, cost)
	assert.Len(t, pairs, 2)
}

func TestMatch_UnequalLengthsChargesGapPenalty(t *testing.T) {
	ls1 := []*segment.Line{line("ip", "10", 0)}
	ls2 := []*segment.Line{}

	cost, pairs := matching.Match(fakeAdapter{}, ls1, ls2, nil, 10)
	assert.Equal(t, 10, cost)
	assert.Empty(t, pairs)
}

func TestMatch_IncompatibleLinesChargeGapPenaltyInstead(t *testing.T) {
	ls1 := []*segment.Line{line("tcp", "10", 0)}
	ls2 := []*segment.Line{line("udp", "10", 0)}

	cost, pairs := matching.Match(fakeAdapter{}, ls1, ls2, nil, 10)
	assert.Equal(t, 10, cost)
	assert.Empty(t, pairs)
}

func TestMatch_SolvesMinimumWeightAssignment(t *testing.T) {
	// Two lines each; the identical "B" lines pair through the hash
	// shortcut, and the remaining pair goes through the assignment solver.
	ls1 := []*segment.Line{line("ip", "A", 0), line("ip", "B", 1)}
	ls2 := []*segment.Line{line("ip", "B", 0), line("ip", "C", 1)}

	cost, pairs := matching.Match(fakeAdapter{}, ls1, ls2, nil, 10)
	// ls1[1]="B" matches ls2[0]="B" for free; ls1[0]="A" matches ls2[1]="C" for 2.
	assert.Equal(t, 2, cost)
	assert.ElementsMatch(t, []matching.Pair{{I: 1, J: 0}, {I: 0, J: 1}}, pairs)
}
