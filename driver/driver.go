package driver

import (
	"regexp"
	"sort"

	"github.com/selfstarter/structgen/align"
	"github.com/selfstarter/structgen/flavor"
	"github.com/selfstarter/structgen/merge"
	"github.com/selfstarter/structgen/minimize"
	"github.com/selfstarter/structgen/outlier"
	"github.com/selfstarter/structgen/segment"
)

// bucket is one (lineCount, discovery-ordered segments) group, used to seed
// the meta-template from the most common segment size.
type bucket struct {
	lineCount int
	segments  []*segment.BlockSequence
}

// Generalize runs one full generalization pass over every device whose
// segment name matches pattern, using adapter's parsing, scoring, and
// formatting behavior.
func Generalize(pattern string, devicesInfo map[string]flavor.DeviceInfo, adapter flavor.Adapter, opts ...Option) (*Result, error) {
	options := newOptions(opts)

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	found := make(map[string]struct{})
	empty := make(map[string]struct{})
	exact := segment.NewExactEquivalence()
	parseErrors := 0

	var deviceNames []string
	for d := range devicesInfo {
		deviceNames = append(deviceNames, d)
	}
	sort.Strings(deviceNames)

	buckets := make(map[int]*bucket)
	var bucketOrder []int
	for _, device := range deviceNames {
		sequences, lineCounts := adapter.GetBlockSequence(device, devicesInfo[device], re, found, empty, exact, &parseErrors)
		for i, bs := range sequences {
			lc := lineCounts[i]
			b, ok := buckets[lc]
			if !ok {
				b = &bucket{lineCount: lc}
				buckets[lc] = b
				bucketOrder = append(bucketOrder, lc)
			}
			b.segments = append(b.segments, bs)
		}
	}

	sort.SliceStable(bucketOrder, func(i, j int) bool {
		bi, bj := buckets[bucketOrder[i]], buckets[bucketOrder[j]]
		if len(bi.segments) != len(bj.segments) {
			return len(bi.segments) > len(bj.segments)
		}
		return bi.lineCount > bj.lineCount
	})

	result := &Result{
		Pattern:      pattern,
		FoundDevices: found,
		EmptyDevices: empty,
		ParseErrors:  parseErrors,
	}

	var metaTemplate *segment.BlockSequence
	var plm *segment.ParametersLinesMap
	var nextIdentity int
	templatingCount := 0

	for _, lc := range bucketOrder {
		for _, seg := range buckets[lc].segments {
			if plm == nil {
				metaTemplate = seg.Clone()
				metaTemplate.Device = "Template"
				plm = segment.NewParametersLinesMap(seg.Device, lc)
				nextIdentity = lc + 1
				continue
			}
			plm.EnsureDevice(seg.Device)
			steps, _, alignErr := align.Align(adapter, metaTemplate.Blocks, seg.Blocks, plm.ParameterDistribution())
			if alignErr != nil {
				return nil, alignErr
			}
			metaTemplate.Blocks = merge.MergeSegment(metaTemplate.Blocks, seg.Blocks, steps, plm, seg.Device, adapter.AttributeCount(), &nextIdentity)
			templatingCount++
		}
	}

	if plm == nil {
		result.Classification = NotFound
		return result, nil
	}

	minimize.Run(metaTemplate.Blocks, plm)

	result.MetaTemplate = metaTemplate
	result.Parameters = plm
	result.ExactGroups = exact.Representatives()
	result.SingleParamOutliers = outlier.DetectSingleParamOutliers(plm)
	result.SpuriousPairs = outlier.DetectSpuriousPairs(plm)

	switch {
	case len(result.SingleParamOutliers) > 0 || len(result.SpuriousPairs) > 0 || len(plm.Groups) > 1:
		result.Classification = Inconsistent
	case templatingCount == 0:
		result.Classification = ExactConsistency
	case plm.Counter == 0:
		result.Classification = ReorderConsistency
	default:
		result.Classification = Consistent
	}

	if err := emitArtifacts(options, result, adapter); err != nil {
		return nil, err
	}

	return result, nil
}
