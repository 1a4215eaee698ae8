// Package matching implements the bipartite line matcher: given two line
// sequences, it returns the minimum-weight pairing (plus a total cost) used
// by the block aligner as the substitution cost between two aligned blocks.
//
// Two stages compose the result:
//
//  1. A hash-equality shortcut (hashShortcut in bipartite.go) pairs off
//     lines that are identical except for their Identity field, without
//     ever invoking the assignment solver — the common case for
//     unchanged, repeated lines across a device fleet.
//  2. The remainder is solved as a rectangular minimum-weight assignment
//     problem by a from-scratch Kuhn–Munkres (Hungarian) solver
//     (hungarian.go), since no assignment-solver library appears anywhere
//     in the reference pack (see DESIGN.md).
//
// Both stages use deterministic tie-breaking (stable row/col iteration
// order) so repeated runs over the same input reproduce the same pairing.
package matching
