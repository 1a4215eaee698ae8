package minimize

import (
	"sort"
	"strconv"

	"github.com/selfstarter/structgen/segment"
)

// BuildPredicates assigns every line identity reachable from blocks a
// presence predicate: "A" when every known device carries it, otherwise
// "R0", "R1", ... in the order each distinct presence pattern is first
// encountered while walking blocks in order. The result is written into
// plm.Predicates.
func BuildPredicates(blocks []*segment.Block, plm *segment.ParametersLinesMap) {
	devices := deviceNames(plm)

	hasLine := make(map[string]map[int]bool, len(devices))
	for _, d := range devices {
		set := make(map[int]bool, len(plm.LineMapping[d]))
		for _, id := range plm.LineMapping[d] {
			set[id] = true
		}
		hasLine[d] = set
	}

	plm.Predicates = make(map[string][]int)
	patternName := make(map[string]string)
	nextConditional := 0

	for _, b := range blocks {
		for _, l := range b.Lines {
			key := presenceKey(l.Identity, devices, hasLine)
			name, ok := patternName[key]
			if !ok {
				if allTrue(key) {
					name = "A"
				} else {
					name = "R" + strconv.Itoa(nextConditional)
					nextConditional++
				}
				patternName[key] = name
			}
			plm.Predicates[name] = append(plm.Predicates[name], l.Identity)
		}
	}
}

func presenceKey(lineID int, devices []string, hasLine map[string]map[int]bool) string {
	buf := make([]byte, len(devices))
	for i, d := range devices {
		if hasLine[d][lineID] {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

func allTrue(key string) bool {
	for i := 0; i < len(key); i++ {
		if key[i] != '1' {
			return false
		}
	}
	return true
}

func deviceNames(plm *segment.ParametersLinesMap) []string {
	var devices []string
	for d := range plm.LineMapping {
		devices = append(devices, d)
	}
	sort.Strings(devices)
	return devices
}

// BuildGroups partitions devices into segment.Group entries sharing an
// identical sorted line-presence pattern, writing the result into
// plm.Groups.
func BuildGroups(plm *segment.ParametersLinesMap) {
	byPattern := make(map[string]*segment.Group)
	var order []string

	for device, ids := range plm.LineMapping {
		sorted := append([]int(nil), ids...)
		sort.Ints(sorted)
		key := patternKey(sorted)

		g, ok := byPattern[key]
		if !ok {
			g = &segment.Group{Lines: sorted, Devices: make(map[string]struct{})}
			byPattern[key] = g
			order = append(order, key)
		}
		g.Devices[device] = struct{}{}
	}

	sort.Strings(order)
	plm.Groups = plm.Groups[:0]
	for _, key := range order {
		plm.Groups = append(plm.Groups, *byPattern[key])
	}
}

func patternKey(ids []int) string {
	var b []byte
	for _, id := range ids {
		b = append(b, []byte(strconv.Itoa(id)+",")...)
	}
	return string(b)
}
