// Package driver orchestrates one full generalization run: it discovers
// every device's segment matching a name pattern, folds byte-identical
// definitions into exact-equivalence groups, seeds a meta-template from the
// most common segment size, repeatedly aligns and merges every remaining
// segment into it, minimizes the resulting parameters, and classifies the
// outcome.
//
// Generalize drives a single pattern. ScanAll drives every segment name a
// fleet actually uses, grouped by fleet-wide frequency descending, the way
// a full-inventory scan would.
package driver
