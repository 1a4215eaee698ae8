package driver

import (
	"sort"
	"strings"

	"github.com/selfstarter/structgen/flavor"
)

// SegmentNamesFunc extracts the candidate segment names a device defines
// for one flavor's field(s) of flavor.DeviceInfo (e.g. the keys of
// IPAccessLists, or the union of RouteFilterLists and Route6FilterLists).
type SegmentNamesFunc func(info flavor.DeviceInfo) []string

// ScanAll drives one Generalize call per distinct segment name used
// anywhere in the fleet, instead of a single caller-supplied pattern.
// Names are grouped by how many devices define them, descending, and
// processed in that order, mirroring a full-inventory scan. Names starting
// with "~" are skipped as generated, synthetic segments rather than
// hand-authored ones.
func ScanAll(devicesInfo map[string]flavor.DeviceInfo, adapter flavor.Adapter, names SegmentNamesFunc, opts ...Option) ([]*Result, error) {
	counts := make(map[string]int)
	for _, info := range devicesInfo {
		for _, name := range names(info) {
			if strings.HasPrefix(name, "~") {
				continue
			}
			counts[name]++
		}
	}

	var uniqueNames []string
	for name := range counts {
		uniqueNames = append(uniqueNames, name)
	}
	sort.Slice(uniqueNames, func(i, j int) bool {
		if counts[uniqueNames[i]] != counts[uniqueNames[j]] {
			return counts[uniqueNames[i]] > counts[uniqueNames[j]]
		}
		return uniqueNames[i] < uniqueNames[j]
	})

	var results []*Result
	for _, name := range uniqueNames {
		res, err := Generalize(name+"$", devicesInfo, adapter, opts...)
		if err != nil {
			continue
		}
		results = append(results, res)
	}
	return results, nil
}
