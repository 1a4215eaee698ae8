package render_test

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selfstarter/structgen/driver"
	"github.com/selfstarter/structgen/flavor"
	"github.com/selfstarter/structgen/render"
	"github.com/selfstarter/structgen/segment"
)

type textAdapter struct{}

func (textAdapter) Name() string                                      { return "text" }
func (textAdapter) AttributeCount() int                                { return 1 }
func (textAdapter) LinePenalty() int                                   { return 1 }
func (textAdapter) GapPenalty(b *segment.Block) int                    { return b.LineCount() }
func (textAdapter) LineScore(a, b *segment.Line, _ map[string]map[string]int) int {
	if a.Attrs[0] == b.Attrs[0] {
		return 0
	}
	return 2
}
func (textAdapter) GetBlockSequence(string, flavor.DeviceInfo, *regexp.Regexp, map[string]struct{}, map[string]struct{}, *segment.ExactEquivalence, *int) ([]*segment.BlockSequence, []int) {
	return nil, nil
}
func (textAdapter) FormatBlock(format string, action segment.Action, lines []*segment.Line, linePredicate map[int]string, patternString string) (string, []flavor.Row) {
	var out strings.Builder
	rows := make([]flavor.Row, 0, len(lines))
	for _, l := range lines {
		predicate := linePredicate[l.Identity]
		out.WriteString(predicate + ":" + l.Attrs[0] + "\n")
		rows = append(rows, flavor.Row{Predicate: predicate, Cells: []string{predicate, l.Attrs[0]}})
	}
	return out.String(), rows
}

func sampleResult() *driver.Result {
	line0 := segment.NewLine("x", 0, 1)
	line0.Attrs[0] = "10.0.0.0/8"
	line1 := segment.NewLine("x", 1, 1)
	line1.Attrs[0] = "11.0.0.0/8"
	block := &segment.Block{Action: segment.Permit, Lines: []*segment.Line{line0, line1}}
	meta := &segment.BlockSequence{Name: "X", Device: "Template", Format: "cisco-ios", Blocks: []*segment.Block{block}}

	plm := &segment.ParametersLinesMap{
		Parameters:  map[string]map[string]string{"dev1": {}, "dev2": {}},
		LineMapping: map[string][]int{"dev1": {0, 1}, "dev2": {0}},
		Predicates:  map[string][]int{"A": {0}, "R0": {1}},
		Groups: []segment.Group{
			{Lines: []int{0, 1}, Devices: map[string]struct{}{"dev1": {}}},
			{Lines: []int{0}, Devices: map[string]struct{}{"dev2": {}}},
		},
	}

	return &driver.Result{
		Pattern:        "X$",
		MetaTemplate:   meta,
		Parameters:     plm,
		Classification: driver.Inconsistent,
	}
}

func TestMetaTemplateText_RendersEveryLineWithItsPredicate(t *testing.T) {
	res := sampleResult()
	text, rows := render.MetaTemplateText(textAdapter{}, res.Pattern, res.MetaTemplate, res.Parameters)
	assert.Contains(t, text, "A:10.0.0.0/8")
	assert.Contains(t, text, "R0:11.0.0.0/8")
	assert.Len(t, rows, 2)
}

func TestGroupSummary_ListsLargestGroupFirst(t *testing.T) {
	res := sampleResult()
	// dev2's group grows to two devices, so it must be listed ahead of
	// dev1's single-device group even though it comes second in Groups.
	res.Parameters.Groups[1].Devices["dev3"] = struct{}{}
	summary := render.GroupSummary(res.Parameters)
	assert.Contains(t, summary, "dev1")
	assert.Contains(t, summary, "dev2")
	assert.True(t, strings.Index(summary, "dev2") < strings.Index(summary, "dev1"))
}

func TestParameterCSV_WritesGroupMarkersAndDeviceRows(t *testing.T) {
	res := sampleResult()
	res.Parameters.Parameters["dev1"]["P0"] = "lit1"
	res.Parameters.Parameters["dev2"]["P0"] = "lit2"

	var buf bytes.Buffer
	require.NoError(t, render.ParameterCSV(&buf, res.Parameters))
	out := buf.String()
	assert.Contains(t, out, "Router,P0")
	assert.Contains(t, out, "Group 0")
	assert.Contains(t, out, "dev1,lit1")
	assert.Contains(t, out, "dev2,lit2")
}

func TestWriteMetaTemplateHTML_ProducesTableRows(t *testing.T) {
	res := sampleResult()
	_, rows := render.MetaTemplateText(textAdapter{}, res.Pattern, res.MetaTemplate, res.Parameters)

	var buf bytes.Buffer
	require.NoError(t, render.WriteMetaTemplateHTML(&buf, rows))
	assert.Contains(t, buf.String(), "<table")
	assert.Contains(t, buf.String(), "10.0.0.0/8")
}

func TestWriteGroupsHTML_ProducesPredicateMatrix(t *testing.T) {
	res := sampleResult()
	var buf bytes.Buffer
	require.NoError(t, render.WriteGroupsHTML(&buf, res.Parameters))
	assert.Contains(t, buf.String(), "<th>A</th>")
	assert.Contains(t, buf.String(), "<th>R0</th>")
}

func TestAttachExactEquivalents_FoldsMembersIntoRepresentativeGroup(t *testing.T) {
	res := sampleResult()
	exact := map[string]map[string]struct{}{"dev1": {"dev3": {}}}
	sizes := render.AttachExactEquivalents(res.Parameters, exact)
	assert.Equal(t, []int{2}, sizes)
	assert.Contains(t, res.Parameters.Groups[0].Devices, "dev3")
	assert.Equal(t, res.Parameters.LineMapping["dev1"], res.Parameters.LineMapping["dev3"])
}

func TestBuildExactComparison_NilWhenSingleExactGroup(t *testing.T) {
	entry := render.BuildExactComparison("X", "Inconsistent", []int{1}, nil)
	assert.Nil(t, entry)
}

func TestBuildExactComparison_PopulatesBothSides(t *testing.T) {
	groups := []segment.Group{
		{Devices: map[string]struct{}{"a": {}, "b": {}}},
		{Devices: map[string]struct{}{"c": {}}},
	}
	entry := render.BuildExactComparison("X", "Inconsistent", []int{2, 1}, groups)
	require.NotNil(t, entry)
	assert.Equal(t, []int{2, 1}, entry.Exact)
	assert.Equal(t, []int{2, 1}, entry.SelfStarter)
}

func TestMarshalExactComparison_SkipsNilEntries(t *testing.T) {
	entries := []*render.ExactComparisonEntry{nil, {SegmentName: "X"}}
	out, err := render.MarshalExactComparison(entries)
	require.NoError(t, err)
	assert.Contains(t, string(out), "\"segmentName\": \"X\"")
}

func TestBundleName_SanitizesUnsafeCharacters(t *testing.T) {
	assert.Equal(t, "ACL_test_42", render.BundleName("ACL/test:42"))
}

func TestBundleName_FallsBackToRandomWhenEmpty(t *testing.T) {
	name := render.BundleName("///")
	assert.NotEmpty(t, name)
}
