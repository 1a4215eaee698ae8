// Package align implements global alignment of two block sequences, using
// the familiar dynamic-programming-plus-backtrace idiom applied to
// time-series alignment, but over a discrete substitution cost (the
// bipartite line matcher) and a per-block gap cost instead of a numeric
// distance.
//
// The DP recurrence at cell (i, j) chooses the minimum of:
//
//   - diagonal:   dp[i-1][j-1] + substitution(block1[i-1], block2[j-1])
//   - block1 gap: dp[i-1][j]   + gapPenalty(block1[i-1])
//   - block2 gap: dp[i][j-1]   + gapPenalty(block2[j-1])
//
// Ties are broken deterministically so the same input always aligns the
// same way: the diagonal wins over either gap, and between the two gap
// directions the block1 gap wins. This matches the bias of the reference
// Needleman-Wunsch comparison chain it was ported from.
package align
