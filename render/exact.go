package render

import (
	"encoding/json"
	"sort"

	"github.com/selfstarter/structgen/segment"
)

// AttachExactEquivalents folds every exact-equivalence representative's
// members into the device group its representative belongs to, mutating
// plm.Groups in place, and returns the pre-attach exact group sizes
// (representative plus its folded members), sorted descending.
//
// A representative that belongs to no group in plm.Groups is left
// unattached; the caller still gets its size reported.
func AttachExactEquivalents(plm *segment.ParametersLinesMap, exactGroups map[string]map[string]struct{}) []int {
	var sizes []int
	for rep, members := range exactGroups {
		sizes = append(sizes, len(members)+1)

		for i := range plm.Groups {
			if _, ok := plm.Groups[i].Devices[rep]; !ok {
				continue
			}
			for member := range members {
				plm.Groups[i].Devices[member] = struct{}{}
				plm.LineMapping[member] = plm.LineMapping[rep]
				plm.Parameters[member] = plm.Parameters[rep]
			}
			break
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	return sizes
}

// ExactComparisonEntry compares, for one segment name, the group sizes
// exact-equivalence folding found against the group sizes the
// generalization engine discovered.
type ExactComparisonEntry struct {
	SegmentName string `json:"segmentName"`
	Exact       []int  `json:"exact"`
	Code        string `json:"code"`
	SelfStarter []int  `json:"selfStarter"`
}

// BuildExactComparison builds one comparison entry, or nil if there are
// fewer than two exact-equivalence groups to compare (nothing interesting
// to report).
func BuildExactComparison(segmentName, code string, exactSizes []int, groups []segment.Group) *ExactComparisonEntry {
	if len(exactSizes) <= 1 {
		return nil
	}
	selfStarter := make([]int, len(groups))
	for i, g := range groups {
		selfStarter[i] = len(g.Devices)
	}
	if len(selfStarter) == 0 {
		total := 0
		for _, s := range exactSizes {
			total += s
		}
		selfStarter = []int{total}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(selfStarter)))

	return &ExactComparisonEntry{
		SegmentName: segmentName,
		Exact:       exactSizes,
		Code:        code,
		SelfStarter: selfStarter,
	}
}

// MarshalExactComparison serializes a batch of comparison entries the way
// ExactComp.json is written: an indented JSON array, nil entries skipped,
// each object's keys in ExactComparisonEntry field order.
func MarshalExactComparison(entries []*ExactComparisonEntry) ([]byte, error) {
	var out []*ExactComparisonEntry
	for _, e := range entries {
		if e != nil {
			out = append(out, e)
		}
	}
	return json.MarshalIndent(out, "", "  ")
}
