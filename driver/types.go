package driver

import (
	"github.com/selfstarter/structgen/outlier"
	"github.com/selfstarter/structgen/segment"
)

// Classification summarizes how much generalization a pattern actually
// needed, for reporting alongside the meta-template itself.
type Classification string

const (
	// NotFound means no non-empty segment matched the pattern.
	NotFound Classification = "NotFound"
	// ExactConsistency means at least one segment was found but zero
	// merges were performed: every device defines the identical segment.
	ExactConsistency Classification = "ExactConsistency"
	// ReorderConsistency means merges occurred but no parameter was ever
	// allocated: every device agrees up to line ordering.
	ReorderConsistency Classification = "ReorderConsistency"
	// Consistent means merges occurred, no outliers were found, and at
	// most one device group exists.
	Consistent Classification = "Consistent"
	// Inconsistent means more than one device group and/or an outlier was
	// found.
	Inconsistent Classification = "Inconsistent"
)

// Options holds the driver's run-level knobs.
type Options struct {
	// OutputDir is the directory a run's rendered artifacts (template
	// text, parameter CSV, HTML tables, exact-comparison JSON) are written
	// under, one subdirectory per pattern named by render.BundleName.
	// Defaults to the current directory when EmitArtifacts is set and
	// OutputDir is left empty.
	OutputDir string
	// EmitArtifacts turns on writing a run's rendered artifacts to
	// OutputDir. Left false, Generalize and ScanAll only return the
	// in-memory Result — no filesystem writes occur, the right default
	// for a dry run or a statistics-only pass.
	EmitArtifacts bool
}

// Option mutates an Options value under construction.
type Option func(*Options)

// WithOutputDir sets the directory a renderer should write this run's
// artifacts to.
func WithOutputDir(dir string) Option {
	return func(o *Options) {
		o.OutputDir = dir
	}
}

// WithEmitArtifacts marks this run as intending to render output.
func WithEmitArtifacts() Option {
	return func(o *Options) {
		o.EmitArtifacts = true
	}
}

func newOptions(opts []Option) Options {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Result is the outcome of one Generalize call.
type Result struct {
	// Pattern is the name-pattern regex string that was scanned.
	Pattern string
	// MetaTemplate is the merged representative segment, nil if
	// Classification is NotFound.
	MetaTemplate *segment.BlockSequence
	// Parameters is the bookkeeping aggregate the meta-template was built
	// with, post-minimization.
	Parameters *segment.ParametersLinesMap
	// Classification summarizes how much generalization occurred.
	Classification Classification
	// FoundDevices is every device that had at least one non-empty
	// segment matching the pattern, device-qualified the same way
	// GetBlockSequence qualifies them.
	FoundDevices map[string]struct{}
	// EmptyDevices is every device whose matching segment parsed to zero
	// lines.
	EmptyDevices map[string]struct{}
	// ExactGroups is every exact-equivalence representative that folded
	// at least one other device, and the devices folded into it.
	ExactGroups map[string]map[string]struct{}
	// SingleParamOutliers and SpuriousPairs are the two outlier reporter
	// passes over Parameters, empty when Classification is NotFound.
	SingleParamOutliers []outlier.SingleParamOutlier
	SpuriousPairs       []outlier.SpuriousPair
	// ParseErrors counts every segment matching Pattern that failed to
	// parse (an unrecognized or malformed shape) and was dropped from the
	// run rather than contributing to the meta-template.
	ParseErrors int
}
