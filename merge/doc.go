// Package merge folds one device's aligned block sequence into the
// growing meta-template, using an alignment's steps to decide, line by
// line, whether a device agrees with the template, disagrees and needs a
// parameter, or contributes lines the template has never seen.
//
// Three kinds of step are handled, in the order the aligner produced them:
//
//   - a matched block pair merges line by line: an already-parameterized
//     attribute gains this device's value, an attribute both sides agree
//     on stays a literal, and a first-time disagreement allocates a new
//     parameter and back-fills every device seen so far with the
//     template's old literal value;
//   - a template-only block is left untouched — this device simply lacks
//     those lines, which the predicate stage later encodes;
//   - a device-only block is appended to the template under freshly
//     allocated line identities and recorded in this device's line
//     mapping.
package merge
