package prefixlist

import (
	"regexp"
	"sort"

	gojson "github.com/goccy/go-json"

	"github.com/selfstarter/structgen/flavor"
	"github.com/selfstarter/structgen/segment"
)

// Adapter implements flavor.Adapter for IPv4/IPv6 prefix (route-filter)
// lists.
type Adapter struct{}

func (Adapter) Name() string        { return "prefixlist" }
func (Adapter) AttributeCount() int { return attributeCount }
func (Adapter) LinePenalty() int    { return linePenalty }

func (Adapter) GapPenalty(block *segment.Block) int {
	return block.LineCount() * linePenalty
}

// LineScore has no protocol/family early-out, unlike the ACL flavor: a
// family mismatch simply costs two attributes' worth of disagreement per
// differing address group, same as any other attribute mismatch.
func (Adapter) LineScore(a, b *segment.Line, paramValues map[string]map[string]int) int {
	score := 0
	for i := 0; i < attributeCount; i++ {
		if a.Has(i) && b.Has(i) {
			if a.Attrs[i] == b.Attrs[i] {
				continue
			}
			if values, ok := paramValues[a.Attrs[i]]; ok {
				if _, ok2 := values[b.Attrs[i]]; ok2 {
					score++
					continue
				}
			}
			score += 2
		} else {
			score += 2
		}
	}
	return score
}

// GetBlockSequence extracts every routeFilterLists and route6FilterLists
// entry in info matching pattern. Both maps are scanned — unlike some
// upstream prototypes of this miner that only ever looked at the IPv4
// map — since the line parser already understands IPv6 prefixes fully.
func (Adapter) GetBlockSequence(device string, info flavor.DeviceInfo, pattern *regexp.Regexp, found, empty map[string]struct{}, exact *segment.ExactEquivalence, errorCount *int) ([]*segment.BlockSequence, []int) {
	all := make(map[string]gojson.RawMessage, len(info.RouteFilterLists)+len(info.Route6FilterLists))
	for name, raw := range info.RouteFilterLists {
		all[name] = raw
	}
	for name, raw := range info.Route6FilterLists {
		all[name] = raw
	}

	var names []string
	for name := range all {
		if pattern.MatchString(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var sequences []*segment.BlockSequence
	var lineCounts []int
	for _, name := range names {
		raw := all[name]

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
