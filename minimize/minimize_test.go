package minimize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selfstarter/structgen/minimize"
	"github.com/selfstarter/structgen/segment"
)

func paramLine(id int, param string) *segment.Line {
	l := segment.NewLine("x", id, 1)
	l.Attrs[0] = param
	return l
}

func TestPruneUnreachable_DropsValueForMissingLine(t *testing.T) {
	blocks := []*segment.Block{
		{Action: segment.Permit, Lines: []*segment.Line{paramLine(0, "P0")}},
	}
	plm := &segment.ParametersLinesMap{
		Parameters:  map[string]map[string]string{"dev1": {"P0": "x"}},
		LineMapping: map[string][]int{"dev1": {}}, // dev1 does not actually carry line 0
	}

	minimize.PruneUnreachable(blocks, plm)
	assert.Empty(t, plm.Parameters["dev1"])
}

func TestCoalesceGroups_MergesAlwaysAgreeingParameters(t *testing.T) {
	plm := &segment.ParametersLinesMap{
		Parameters: map[string]map[string]string{
			"dev1": {"P0": "10", "P1": "10"},
			"dev2": {"P0": "20", "P1": "20"},
		},
	}

	groups := minimize.CoalesceGroups(plm)
	require.Len(t, groups, 1)
	assert.ElementsMatch(t, []string{"P0", "P1"}, groups[0])
}

func TestCoalesceGroups_KeepsDisagreeingParametersSeparate(t *testing.T) {
	plm := &segment.ParametersLinesMap{
		Parameters: map[string]map[string]string{
			"dev1": {"P0": "10", "P1": "99"},
			"dev2": {"P0": "20", "P1": "20"},
		},
	}

	groups := minimize.CoalesceGroups(plm)
	require.Len(t, groups, 2)
}

func TestApplyCoalesce_RewritesAttrsAndParameters(t *testing.T) {
	blocks := []*segment.Block{
		{Action: segment.Permit, Lines: []*segment.Line{paramLine(0, "P0"), paramLine(1, "P1")}},
	}
	plm := &segment.ParametersLinesMap{
		Parameters: map[string]map[string]string{
			"dev1": {"P0": "10", "P1": "10"},
		},
	}

	minimize.ApplyCoalesce(blocks, plm, [][]string{{"P0", "P1"}})
	assert.Equal(t, "P0", blocks[0].Lines[0].Attrs[0])
	assert.Equal(t, "P0", blocks[0].Lines[1].Attrs[0])
	assert.Equal(t, map[string]string{"P0": "10"}, plm.Parameters["dev1"])
}

func TestBuildPredicates_AssignsAAndConditional(t *testing.T) {
	blocks := []*segment.Block{
		{Action: segment.Permit, Lines: []*segment.Line{segment.NewLine("x", 0, 1), segment.NewLine("x", 1, 1)}},
	}
	plm := &segment.ParametersLinesMap{
		LineMapping: map[string][]int{
			"dev1": {0, 1},
			"dev2": {0},
		},
	}

	minimize.BuildPredicates(blocks, plm)
	assert.Equal(t, []int{0}, plm.Predicates["A"])
	assert.Equal(t, []int{1}, plm.Predicates["R0"])
}

func TestBuildGroups_PartitionsByIdenticalLineSet(t *testing.T) {
	plm := &segment.ParametersLinesMap{
		LineMapping: map[string][]int{
			"dev1": {0, 1},
			"dev2": {0, 1},
			"dev3": {0},
		},
	}

	minimize.BuildGroups(plm)
	require.Len(t, plm.Groups, 2)
}

func TestRenumberLines_SortsAOverRAndCompactsIdentities(t *testing.T) {
	lineA := segment.NewLine("x", 5, 1)
	lineR := segment.NewLine("x", 2, 1)
	blocks := []*segment.Block{
		{Action: segment.Permit, Lines: []*segment.Line{lineR, lineA}},
	}
	plm := &segment.ParametersLinesMap{
		LineMapping: map[string][]int{"dev1": {2, 5}},
		Predicates:  map[string][]int{"A": {5}, "R0": {2}},
	}

	minimize.RenumberLines(blocks, plm)
	require.Len(t, blocks[0].Lines, 2)
	// "A" predicate sorts ahead of "R0", so the line that was predicate "A"
	// (old identity 5) becomes the new identity 0, and the "R0" line (old
	// identity 2) becomes identity 1.
	assert.Equal(t, blocks[0].Lines[0], lineA)
	assert.Equal(t, 0, lineA.Identity)
	assert.Equal(t, 1, lineR.Identity)
	assert.Equal(t, []int{0}, plm.Predicates["A"])
	assert.Equal(t, []int{1}, plm.Predicates["R0"])
	assert.Equal(t, []int{0, 1}, plm.LineMapping["dev1"])
}

func TestRenumberParameters_AssignsDenseSequentialNames(t *testing.T) {
	blocks := []*segment.Block{
		{Action: segment.Permit, Lines: []*segment.Line{paramLine(0, "P7"), paramLine(1, "P3")}},
	}
	plm := &segment.ParametersLinesMap{
		Parameters: map[string]map[string]string{"dev1": {"P7": "a", "P3": "b"}},
	}

	minimize.RenumberParameters(blocks, plm)
	assert.Equal(t, "P0", blocks[0].Lines[0].Attrs[0])
	assert.Equal(t, "P1", blocks[0].Lines[1].Attrs[0])
	assert.Equal(t, map[string]string{"P0": "a", "P1": "b"}, plm.Parameters["dev1"])
	assert.Equal(t, 2, plm.Counter)
}
