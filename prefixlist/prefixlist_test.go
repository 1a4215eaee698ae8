package prefixlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLine_IPv4(t *testing.T) {
	l, err := buildLine(0, routeFilterLineJSON{Action: "PERMIT", IPWildcard: "10.30.0.0/15", LengthRange: "15-20"})
	require.NoError(t, err)
	assert.Equal(t, "4", l.Tag)
	assert.Equal(t, "15", l.Attrs[0])
	assert.Equal(t, "15", l.Attrs[1])
	assert.Equal(t, "20", l.Attrs[2])
	assert.Equal(t, []string{"10", "30", "0", "0"}, l.Attrs[3:7])
	assert.Equal(t, []string{"0", "0", "0", "0"}, l.Attrs[7:11])
}

func TestBuildLine_IPv6(t *testing.T) {
	l, err := buildLine(0, routeFilterLineJSON{Action: "PERMIT", IPWildcard: "2000:0:0:0:0:0:0:0/3", LengthRange: "3-128"})
	require.NoError(t, err)
	assert.Equal(t, "6", l.Tag)
	assert.Equal(t, "3", l.Attrs[0])
	assert.Equal(t, []string{"2000", "0", "0", "0", "0", "0", "0", "0"}, l.Attrs[3:11])
}

func TestParseSegment_GroupsConsecutiveActions(t *testing.T) {
	raw := []byte(`{"lines": [
		{"action": "PERMIT", "ipWildcard": "10.0.0.0/8", "lengthRange": "8-32"},
		{"action": "PERMIT", "ipWildcard": "10.1.0.0/16", "lengthRange": "16-32"},
		{"action": "DENY", "ipWildcard": "0.0.0.0/0", "lengthRange": "0-32"}
	]}`)

	bs, err := parseSegment("test-pl", "dev1", "cisco-ios", raw)
	require.NoError(t, err)
	require.Len(t, bs.Blocks, 2)
	assert.Len(t, bs.Blocks[0].Lines, 2)
	assert.Len(t, bs.Blocks[1].Lines, 1)
}

func TestRangeClauseJuniper(t *testing.T) {
	assert.Equal(t, "exact", rangeClauseJuniper("24", "24", "24"))
	assert.Equal(t, "upto /32", rangeClauseJuniper("24", "24", "32"))
	assert.Equal(t, "prefix-length-range /25-/32", rangeClauseJuniper("24", "25", "32"))
}

func TestRangeClauseCisco(t *testing.T) {
	assert.Equal(t, " ", rangeClauseCisco("24", "24", "24"))
	assert.Equal(t, "/24 le 32", rangeClauseCisco("24", "24", "32"))
	assert.Equal(t, "/24 eq 25", rangeClauseCisco("24", "25", "25"))
	assert.Equal(t, "/24 ge 25 le 32", rangeClauseCisco("24", "25", "32"))
}
