package routepolicy

import (
	"fmt"
	"strings"

	"github.com/selfstarter/structgen/flavor"
	"github.com/selfstarter/structgen/segment"
)

// stmtTag is the Line.Tag every routepolicy line carries: there is only one
// shape of line in this flavor, so the tag is a constant rather than a
// discriminator between line kinds.
const stmtTag = "stmt"

// parseSegment builds a block sequence from one decoded routing policy's
// statements, merging consecutive same-action statements into one Block
// each. Each statement becomes exactly one line carrying its rendered text
// as attribute 0.
func parseSegment(name, device, format string, raw []byte) (*segment.BlockSequence, error) {
	doc, err := decodeRoutingPolicy(raw)
	if err != nil {
		return nil, fmt.Errorf("routepolicy: %w: %v", flavor.ErrMalformedLine, err)
	}

	bs := &segment.BlockSequence{Name: name, Device: device, Format: format}
	var current *segment.Block
	identity := 0

	for _, stmt := range doc.Statements {
		action := segment.Action(strings.ToLower(stmt.Action))
		if action != segment.Permit && action != segment.Deny {
			return nil, fmt.Errorf("routepolicy: %w: statement action %q", flavor.ErrUnrecognizedShape, stmt.Action)
		}
		if current == nil || current.Action != action {
			current = &segment.Block{Action: action}
			bs.Blocks = append(bs.Blocks, current)
		}

		line := segment.NewLine(stmtTag, identity, attributeCount)
		line.Attrs[0] = stmt.Text
		current.Lines = append(current.Lines, line)
		identity++
	}
	return bs, nil
}
