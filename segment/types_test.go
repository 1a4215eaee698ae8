package segment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/selfstarter/structgen/segment"
)

func TestLine_HasAndIsParam(t *testing.T) {
	l := segment.NewLine("tcp", 0, 4)
	assert.False(t, l.Has(0))
	l.Attrs[0] = "10"
	assert.True(t, l.Has(0))
	assert.False(t, l.IsParam(0))
	l.Attrs[1] = "P3"
	assert.True(t, l.IsParam(1))
}

func TestLine_Clone_IsDeep(t *testing.T) {
	l := segment.NewLine("tcp", 1, 2)
	l.Attrs[0] = "10"
	cp := l.Clone()
	cp.Attrs[0] = "11"
	assert.Equal(t, "10", l.Attrs[0])
	assert.Equal(t, "11", cp.Attrs[0])
}

func TestBlockSequence_LastIdentity(t *testing.T) {
	bs := &segment.BlockSequence{Blocks: []*segment.Block{
		{Action: segment.Permit, Lines: []*segment.Line{{Identity: 0}, {Identity: 1}}},
		{Action: segment.Deny, Lines: []*segment.Line{{Identity: 2}}},
	}}
	assert.Equal(t, 2, bs.LastIdentity())
	assert.True(t, !bs.Empty())

	empty := &segment.BlockSequence{Blocks: []*segment.Block{{Action: segment.Permit}}}
	assert.Equal(t, -1, empty.LastIdentity())
	assert.True(t, empty.Empty())
}

func TestBlockSequence_Clone_IsDeep(t *testing.T) {
	bs := &segment.BlockSequence{Blocks: []*segment.Block{
		{Action: segment.Permit, Lines: []*segment.Line{segment.NewLine("tcp", 0, 1)}},
	}}
	cp := bs.Clone()
	cp.Blocks[0].Lines[0].Attrs[0] = "changed"
	assert.NotEqual(t, bs.Blocks[0].Lines[0].Attrs[0], cp.Blocks[0].Lines[0].Attrs[0])
}
