package outlier

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/selfstarter/structgen/constants"
	"github.com/selfstarter/structgen/segment"
)

// SingleParamOutlier is one parameter value occurring on suspiciously few
// devices relative to its parameter's other values.
type SingleParamOutlier struct {
	Param   string
	Value   string
	Count   int
	Average float64
	// Devices is every device holding Value for Param, sorted, so the
	// caller knows exactly which devices are in the minority.
	Devices []string
}

// SpuriousPair is two parameters that agree on most, but not all, of the
// devices that define both.
type SpuriousPair struct {
	ParamA, ParamB  string
	Agree, Disagree int
	// DisagreeingDevices is every device that defines both ParamA and
	// ParamB with different values, sorted — the minority the pair's
	// reporter flags as potentially misconfigured.
	DisagreeingDevices []string
}

// DetectSingleParamOutliers reports every value of every multi-valued
// parameter whose device count falls below constants.SingleParamThreshold
// times the average device count across that parameter's values.
func DetectSingleParamOutliers(plm *segment.ParametersLinesMap) []SingleParamOutlier {
	dist := plm.ParameterDistribution()

	var out []SingleParamOutlier
	for param, valueCounts := range dist {
		if len(valueCounts) < 2 {
			continue // no variation to compare against
		}
		counts := make([]float64, 0, len(valueCounts))
		for _, c := range valueCounts {
			counts = append(counts, float64(c))
		}
		avg := stat.Mean(counts, nil)

		for value, c := range valueCounts {
			if float64(c) < constants.SingleParamThreshold*avg {
				out = append(out, SingleParamOutlier{
					Param:   param,
					Value:   value,
					Count:   c,
					Average: avg,
					Devices: devicesWithValue(plm, param, value),
				})
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Param != out[j].Param {
			return out[i].Param < out[j].Param
		}
		return out[i].Value < out[j].Value
	})
	return out
}

// DetectSpuriousPairs reports every parameter pair that disagrees on a
// small but nonzero fraction of the devices defining both, below
// constants.SpuriousParamThreshold of their total shared device count.
func DetectSpuriousPairs(plm *segment.ParametersLinesMap) []SpuriousPair {
	paramSet := make(map[string]struct{})
	for _, values := range plm.Parameters {
		for p := range values {
			paramSet[p] = struct{}{}
		}
	}
	var params []string
	for p := range paramSet {
		params = append(params, p)
	}
	sort.Strings(params)

	var out []SpuriousPair
	for i := 0; i < len(params); i++ {
		for j := i + 1; j < len(params); j++ {
			a, b := params[i], params[j]
			agree, disagree := 0, 0
			var disagreeing []string
			for device, values := range plm.Parameters {
				v1, ok1 := values[a]
				v2, ok2 := values[b]
				if !ok1 || !ok2 {
					continue
				}
				if v1 == v2 {
					agree++
				} else {
					disagree++
					disagreeing = append(disagreeing, device)
				}
			}
			total := agree + disagree
			if disagree > 0 && float64(disagree) < constants.SpuriousParamThreshold*float64(total) {
				sort.Strings(disagreeing)
				out = append(out, SpuriousPair{
					ParamA:             a,
					ParamB:             b,
					Agree:              agree,
					Disagree:           disagree,
					DisagreeingDevices: disagreeing,
				})
			}
		}
	}
	return out
}

// devicesWithValue returns every device that holds value for param, sorted.
func devicesWithValue(plm *segment.ParametersLinesMap, param, value string) []string {
	var devices []string
	for device, values := range plm.Parameters {
		if v, ok := values[param]; ok && v == value {
			devices = append(devices, device)
		}
	}
	sort.Strings(devices)
	return devices
}
