package merge

import (
	"github.com/selfstarter/structgen/align"
	"github.com/selfstarter/structgen/matching"
	"github.com/selfstarter/structgen/segment"
)

// MergeSegment folds device's aligned block sequence devBlocks into
// tmplBlocks (the current meta-template), following steps (the alignment
// of tmplBlocks against devBlocks). nextIdentity is the next free line
// identity to allocate for lines the template has never seen; it is
// advanced in place. attrCount is the flavor's per-line attribute count.
//
// Returns the new meta-template block list; tmplBlocks itself is never
// mutated (its lines are cloned before any attribute is rewritten).
func MergeSegment(tmplBlocks, devBlocks []*segment.Block, steps []align.Step, plm *segment.ParametersLinesMap, device string, attrCount int, nextIdentity *int) []*segment.Block {
	plm.EnsureDevice(device)

	merged := make([]*segment.Block, 0, len(steps))
	for _, step := range steps {
		switch {
		case step.B1Index >= 0 && step.B2Index >= 0:
			merged = append(merged, mergeBlockPair(tmplBlocks[step.B1Index], devBlocks[step.B2Index], step.Matched, plm, device, attrCount, nextIdentity))
		case step.B1Index >= 0:
			// Template-only block: this device contributes none of its
			// lines, so its presence is left for the predicate stage.
			merged = append(merged, tmplBlocks[step.B1Index].Clone())
		default:
			merged = append(merged, deviceOnlyBlock(devBlocks[step.B2Index], plm, device, nextIdentity))
		}
	}
	return merged
}

// mergeBlockPair merges one matched (template, device) block pair: matched
// lines are reconciled attribute by attribute, template-only lines are
// carried over unchanged, and device-only lines are appended under new
// identities.
func mergeBlockPair(tmplBlock, devBlock *segment.Block, pairs []matching.Pair, plm *segment.ParametersLinesMap, device string, attrCount int, nextIdentity *int) *segment.Block {
	out := tmplBlock.Clone()

	matchedDev := make(map[int]bool, len(pairs))
	for _, pr := range pairs {
		matchedDev[pr.J] = true
		mergeLineAttrs(out.Lines[pr.I], devBlock.Lines[pr.J], plm, device, attrCount)
	}

	for j, dLine := range devBlock.Lines {
		if matchedDev[j] {
			continue
		}
		nl := dLine.Clone()
		nl.Identity = *nextIdentity
		*nextIdentity++
		out.Lines = append(out.Lines, nl)
		plm.LineMapping[device] = append(plm.LineMapping[device], nl.Identity)
	}
	return out
}

// mergeLineAttrs reconciles one matched line pair attribute by attribute,
// mutating tLine (already a clone owned by the growing meta-template) and
// plm in place.
func mergeLineAttrs(tLine, dLine *segment.Line, plm *segment.ParametersLinesMap, device string, attrCount int) {
	plm.LineMapping[device] = append(plm.LineMapping[device], tLine.Identity)

	for a := 0; a < attrCount; a++ {
		tHas, dHas := tLine.Has(a), dLine.Has(a)

		switch {
		case tHas && dHas:
			tVal, dVal := tLine.Attrs[a], dLine.Attrs[a]
			switch {
			case tVal == dVal:
				// Full agreement so far: stays a literal.
			case tLine.IsParam(a):
				// Already parameterized: this device just contributes its
				// own value under the existing parameter name.
				plm.Parameters[device][tVal] = dVal
			default:
				// First disagreement on this attribute: allocate a
				// parameter, give this device its own value, then
				// back-fill every device already known to the map with
				// the template's old literal.
				param := plm.AllocateParam()
				plm.Parameters[device][param] = dVal
				plm.AddParameter(param, tVal, device)
				tLine.Attrs[a] = param
			}

		case dHas && !tHas:
			// The template never saw this attribute; the device has a
			// value for it. Every prior device is implicitly absent here.
			param := plm.AllocateParam()
			plm.Parameters[device][param] = dLine.Attrs[a]
			plm.AddParameter(param, "", device)
			tLine.Attrs[a] = param

		default:
			// Template has a value the device lacks, or neither has one:
			// leave the template's attribute untouched for this device.
		}
	}
}

// deviceOnlyBlock copies devBlock under freshly allocated line identities,
// registering each new identity against device in plm.
func deviceOnlyBlock(devBlock *segment.Block, plm *segment.ParametersLinesMap, device string, nextIdentity *int) *segment.Block {
	out := &segment.Block{Action: devBlock.Action, Lines: make([]*segment.Line, len(devBlock.Lines))}
	for i, l := range devBlock.Lines {
		nl := l.Clone()
		nl.Identity = *nextIdentity
		*nextIdentity++
		out.Lines[i] = nl
		plm.LineMapping[device] = append(plm.LineMapping[device], nl.Identity)
	}
	return out
}
