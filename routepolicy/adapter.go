package routepolicy

import (
	"regexp"
	"sort"

	"github.com/selfstarter/structgen/constants"
	"github.com/selfstarter/structgen/flavor"
	"github.com/selfstarter/structgen/segment"
)

// Adapter implements flavor.Adapter for routing policies, treating each
// top-level statement as a single opaque line.
type Adapter struct{}

func (Adapter) Name() string        { return "routepolicy" }
func (Adapter) AttributeCount() int { return attributeCount }
func (Adapter) LinePenalty() int    { return constants.LinePenaltyRoutePolicy }

func (Adapter) GapPenalty(block *segment.Block) int {
	return block.LineCount() * constants.LinePenaltyRoutePolicy
}

// LineScore compares the one rendered-text attribute: an exact match costs
// nothing, a value already known to be interchangeable under the current
// parameter carries a one-point cost, and anything else carries a two-point
// cost. There is no tag-mismatch early-out: every line shares stmtTag.
func (Adapter) LineScore(a, b *segment.Line, paramValues map[string]map[string]int) int {
	if a.Attrs[0] == b.Attrs[0] {
		return 0
	}
	if values, ok := paramValues[a.Attrs[0]]; ok {
		if _, ok2 := values[b.Attrs[0]]; ok2 {
			return 1
		}
	}
	return 2
}

// GetBlockSequence extracts every routingPolicies entry in info matching
// pattern, following the same device/device#name qualification, empty and
// exact-duplicate folding rules as the other flavors.
func (Adapter) GetBlockSequence(device string, info flavor.DeviceInfo, pattern *regexp.Regexp, found, empty map[string]struct{}, exact *segment.ExactEquivalence, errorCount *int) ([]*segment.BlockSequence, []int) {
	var names []string
	for name := range info.RoutingPolicies {
		if pattern.MatchString(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var sequences []*segment.BlockSequence
	var lineCounts []int
	for _, name := range names {
		raw := info.RoutingPolicies[name]

		rname := device
		if _, ok := found[device]; ok {
			rname = device + "#" + name
		}

		bs, err := parseSegment(name, rname, info.ConfigurationFormat, raw)
		if err != nil {
			*errorCount++
			continue
		}
		if len(bs.Blocks) == 0 || len(bs.Blocks[0].Lines) == 0 {
			empty[rname] = struct{}{}
			continue
		}

		found[rname] = struct{}{}
		var decoded any
		folded := false
		if jsonErr := decodeAny(raw, &decoded); jsonErr == nil {
			_, folded = exact.Record(rname, decoded)
		}
		if folded {
			continue
		}
		sequences = append(sequences, bs)
		lineCounts = append(lineCounts, bs.LastIdentity())
	}
	return sequences, lineCounts
}
