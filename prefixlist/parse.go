package prefixlist

import (
	"fmt"
	"strings"

	"github.com/selfstarter/structgen/flavor"
	"github.com/selfstarter/structgen/segment"
)

// parseSegment builds a block sequence from one decoded route-filter
// list's lines, merging consecutive same-action lines into one Block
// each.
func parseSegment(name, device, format string, raw []byte) (*segment.BlockSequence, error) {
	doc, err := decodeRouteFilterList(raw)
	if err != nil {
		return nil, fmt.Errorf("prefixlist: %w: %v", flavor.ErrMalformedLine, err)
	}

	bs := &segment.BlockSequence{Name: name, Device: device, Format: format}
	var current *segment.Block

	for identity, entry := range doc.Lines {
		action := segment.Action(strings.ToLower(entry.Action))
		if current == nil || current.Action != action {
			current = &segment.Block{Action: action}
			bs.Blocks = append(bs.Blocks, current)
		}

		line, err := buildLine(identity, entry)
		if err != nil {
			return nil, err
		}
		current.Lines = append(current.Lines, line)
	}
	return bs, nil
}

func buildLine(identity int, entry routeFilterLineJSON) (*segment.Line, error) {
	lengths := strings.SplitN(entry.LengthRange, "-", 2)
	if len(lengths) != 2 {
		return nil, fmt.Errorf("prefixlist: %w: lengthRange %q", flavor.ErrMalformedLine, entry.LengthRange)
	}
	low, high := lengths[0], lengths[1]

	isV6 := strings.Contains(entry.IPWildcard, ":")
	tag := "4"
	sep := "."
	defaultMaskLen := "32"
	if isV6 {
		tag = "6"
		sep = ":"
		defaultMaskLen = "128"
	}

	parts := strings.SplitN(entry.IPWildcard, "/", 2)
	addr := parts[0]
	maskLen := defaultMaskLen
	if len(parts) == 2 {
		maskLen = parts[1]
	}

	l := segment.NewLine(tag, identity, attributeCount)
	l.Attrs[0] = maskLen
	l.Attrs[1] = low
	l.Attrs[2] = high
	groups := strings.Split(addr, sep)
	for i := 3; i < attributeCount; i++ {
		if g := i - 3; g < len(groups) {
			l.Attrs[i] = groups[g]
		} else {
			// IPv4 only uses four of the eight address-group slots; the
			// rest are zero-padded rather than left absent so an IPv4
			// line's unused tail never costs a presence mismatch against
			// another IPv4 line.
			l.Attrs[i] = "0"
		}
	}
	return l, nil
}
