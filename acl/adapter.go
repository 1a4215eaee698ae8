package acl

import (
	"regexp"
	"sort"

	"github.com/selfstarter/structgen/constants"
	"github.com/selfstarter/structgen/flavor"
	"github.com/selfstarter/structgen/segment"
)

// Adapter implements flavor.Adapter for IPv4 access-control lists.
type Adapter struct{}

func (Adapter) Name() string        { return "acl" }
func (Adapter) AttributeCount() int { return attributeCount }
func (Adapter) LinePenalty() int    { return linePenalty }

func (Adapter) GapPenalty(block *segment.Block) int {
	return block.LineCount() * linePenalty
}

func (Adapter) LineScore(a, b *segment.Line, paramValues map[string]map[string]int) int {
	if a.Tag != b.Tag {
		return constants.Infinity
	}
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

// GetBlockSequence extracts every ipAccessLists entry in info matching
// pattern, following the same device/device#name qualification, empty and
// exact-duplicate folding rules as every other flavor.
func (Adapter) GetBlockSequence(device string, info flavor.DeviceInfo, pattern *regexp.Regexp, found, empty map[string]struct{}, exact *segment.ExactEquivalence, errorCount *int) ([]*segment.BlockSequence, []int) {
	var names []string
	for name := range info.IPAccessLists {
		if pattern.MatchString(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var sequences []*segment.BlockSequence
	var lineCounts []int
	for _, name := range names {
		raw := info.IPAccessLists[name]

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
