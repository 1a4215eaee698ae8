package outlier_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selfstarter/structgen/outlier"
	"github.com/selfstarter/structgen/segment"
)

func TestDetectSingleParamOutliers_FlagsRareValue(t *testing.T) {
	// 50 devices hold "common" and one holds "rare": avg = 51/2 = 25.5, and
	// 1 < 0.09*25.5 = 2.295, so only "rare" is reported.
	params := map[string]map[string]string{}
	for i := 0; i < 50; i++ {
		params[fmt.Sprintf("common%02d", i)] = map[string]string{"P0": "common"}
	}
	params["dev11"] = map[string]string{"P0": "rare"}
	plm := &segment.ParametersLinesMap{Parameters: params}

	out := outlier.DetectSingleParamOutliers(plm)
	require.Len(t, out, 1)
	assert.Equal(t, "P0", out[0].Param)
	assert.Equal(t, "rare", out[0].Value)
	assert.Equal(t, 1, out[0].Count)
	assert.Equal(t, []string{"dev11"}, out[0].Devices)
}

func TestDetectSingleParamOutliers_IgnoresSingleValuedParams(t *testing.T) {
	plm := &segment.ParametersLinesMap{
		Parameters: map[string]map[string]string{
			"dev1": {"P0": "only"},
			"dev2": {"P0": "only"},
		},
	}
	assert.Empty(t, outlier.DetectSingleParamOutliers(plm))
}

func TestDetectSpuriousPairs_FlagsMostlyAgreeingParameters(t *testing.T) {
	params := map[string]map[string]string{}
	for i := 0; i < 30; i++ {
		dev := "dev" + string(rune('a'+i))
		params[dev] = map[string]string{"P0": "x", "P1": "x"}
	}
	params["devZ"] = map[string]string{"P0": "x", "P1": "y"}
	plm := &segment.ParametersLinesMap{Parameters: params}

	out := outlier.DetectSpuriousPairs(plm)
	require.Len(t, out, 1)
	assert.Equal(t, "P0", out[0].ParamA)
	assert.Equal(t, "P1", out[0].ParamB)
	assert.Equal(t, 1, out[0].Disagree)
	assert.Equal(t, []string{"devZ"}, out[0].DisagreeingDevices)
}

func TestDetectSpuriousPairs_IgnoresAlwaysAgreeingParameters(t *testing.T) {
	plm := &segment.ParametersLinesMap{
		Parameters: map[string]map[string]string{
			"dev1": {"P0": "x", "P1": "x"},
			"dev2": {"P0": "y", "P1": "y"},
		},
	}
	assert.Empty(t, outlier.DetectSpuriousPairs(plm))
}
