// Package render turns a finished generalization result into the output
// artifacts a caller would actually look at: the rendered meta-template
// text (delegating per-line formatting to the flavor's FormatBlock), a
// per-device parameter-value CSV, two HTML tables (meta-template lines
// colored by predicate, and a group/predicate matrix), and an
// ExactComp.json summary comparing exact-equivalence group sizes against
// the groups the generalization engine discovered.
//
// These functions take plain fields (a pattern string, a meta-template, a
// ParametersLinesMap) rather than a driver.Result, so this package has no
// dependency on driver; driver imports render instead, wiring rendering in
// as the last step of a run when the caller opts in via
// driver.WithEmitArtifacts, the way main.py's
// WriteFile/generateHTML/PrintTemplate calls did for the prototype this
// was distilled from.
package render
