// Package segment defines the typed data model shared by every flavor
// adapter and by the generalization engine: Line, Block, BlockSequence, and
// the ParametersLinesMap bookkeeping aggregate.
//
// A BlockSequence is an ordered list of Blocks, each Block a maximal run of
// Lines sharing one Action (Permit/Deny). A Line is a fixed-width tuple of
// string attributes indexed by small integers, plus two distinguished
// fields: Tag (a flavor-specific protocol/family marker) and Identity (a
// monotonically-assigned line-identity used to track presence across
// devices as the meta-template is built up).
//
// ParametersLinesMap is the single mutable aggregate the generalization
// driver owns for the duration of one pattern scan: per-device parameter
// values, per-device line-identity membership, the next free parameter
// index, and — once minimization has run — the predicate and group
// partitions.
package segment
