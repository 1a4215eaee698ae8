package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/selfstarter/structgen/segment"
)

// allParamNames returns every parameter name seen in plm.Parameters, sorted.
func allParamNames(plm *segment.ParametersLinesMap) []string {
	seen := make(map[string]struct{})
	for _, values := range plm.Parameters {
		for p := range values {
			seen[p] = struct{}{}
		}
	}
	var out []string
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// ParameterCSV writes one row per device, grouped under a "Group N" marker
// row matching the device grouping, with one column per parameter plus a
// leading "Router" column.
func ParameterCSV(w io.Writer, plm *segment.ParametersLinesMap) error {
	params := allParamNames(plm)
	cw := csv.NewWriter(w)

	header := append([]string{"Router"}, params...)
	if err := cw.Write(header); err != nil {
		return err
	}

	groups := make([]segment.Group, len(plm.Groups))
	copy(groups, plm.Groups)
	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].Devices) > len(groups[j].Devices)
	})

	for i, g := range groups {
		if err := cw.Write(append([]string{fmt.Sprintf("Group %d", i)}, make([]string, len(params))...)); err != nil {
			return err
		}

		var devices []string
		for d := range g.Devices {
			devices = append(devices, d)
		}
		sort.Strings(devices)

		for _, device := range devices {
			row := make([]string, 0, len(params)+1)
			row = append(row, device)
			values := plm.Parameters[device]
			for _, p := range params {
				row = append(row, values[p])
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
