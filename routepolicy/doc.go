// Package routepolicy adapts a routing-policy segment into the
// segment.Block/segment.Line shape the generalization engine operates on.
//
// Unlike acl and prefixlist, this flavor treats each routing policy as a
// single opaque line per top-level statement rather than decomposing a
// statement's clauses (match conditions, set actions, sub-policy calls)
// into their own attributes — per-clause decomposition is out of scope.
// The line carries one attribute: the statement's rendered text, compared
// for exact equality. This still exercises the full alignment, matching,
// merging, and minimization pipeline the other two flavors do; it just
// parameterizes at coarser grain.
package routepolicy
