package segment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/selfstarter/structgen/segment"
)

func TestParametersLinesMap_Seed(t *testing.T) {
	p := segment.NewParametersLinesMap("dev1", 2)
	assert.Equal(t, []int{0, 1, 2}, p.LineMapping["dev1"])
	assert.Equal(t, 0, p.Counter)
	assert.Contains(t, p.Parameters, "dev1")
}

func TestParametersLinesMap_AllocateAndDistribute(t *testing.T) {
	p := segment.NewParametersLinesMap("dev1", 0)
	p.EnsureDevice("dev2")
	param := p.AllocateParam()
	assert.Equal(t, "P0", param)
	p.Parameters["dev1"][param] = "10"
	p.Parameters["dev2"][param] = "11"

	dist := p.ParameterDistribution()
	assert.Equal(t, 1, dist[param]["10"])
	assert.Equal(t, 1, dist[param]["11"])
}

func TestParametersLinesMap_AddParameter_SkipsNewDevice(t *testing.T) {
	p := segment.NewParametersLinesMap("dev1", 0)
	p.EnsureDevice("dev2")
	p.EnsureDevice("dev3")
	p.AddParameter("P0", "lit", "dev2")
	assert.Equal(t, "lit", p.Parameters["dev1"]["P0"])
	assert.Equal(t, "lit", p.Parameters["dev3"]["P0"])
	assert.NotContains(t, p.Parameters["dev2"], "P0")
}

func TestParametersLinesMap_RemapLineNumbers(t *testing.T) {
	p := segment.NewParametersLinesMap("dev1", 2)
	p.RemapLineNumbers(map[int]int{0: 10, 1: 11})
	assert.Equal(t, []int{10, 11, 2}, p.LineMapping["dev1"])
}

func TestExactEquivalence_FoldsIdenticalJSON(t *testing.T) {
	e := segment.NewExactEquivalence()
	a := map[string]any{"lines": []any{map[string]any{"action": "permit"}}}
	b := map[string]any{"lines": []any{map[string]any{"action": "permit"}}}
	c := map[string]any{"lines": []any{map[string]any{"action": "deny"}}}

	rep, folded := e.Record("devA", a)
	assert.False(t, folded)
	assert.Empty(t, rep)

	rep, folded = e.Record("devB", b)
	assert.True(t, folded)
	assert.Equal(t, "devA", rep)

	rep, folded = e.Record("devC", c)
	assert.False(t, folded)
	assert.Empty(t, rep)

	reps := e.Representatives()
	assert.Contains(t, reps, "devA")
	assert.Contains(t, reps["devA"], "devB")
	assert.NotContains(t, reps, "devC")
}
