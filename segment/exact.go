package segment

import "reflect"

// ExactEquivalence tracks, per representative device, the set of devices
// whose raw segment JSON is byte-for-byte-equivalent (after JSON decoding,
// so key order and whitespace don't matter — mirrors commonFunctions.py's
// checkJSONEquality/instanceCheck, which Go's reflect.DeepEqual already
// implements for decoded map[string]any/[]any trees: map comparison is
// order-independent, slice comparison is order-dependent, exactly as the
// Python dict/list comparison was).
type ExactEquivalence struct {
	reps map[string]*exactGroup
}

type exactGroup struct {
	raw     any
	members map[string]struct{}
}

// NewExactEquivalence returns an empty tracker.
func NewExactEquivalence() *ExactEquivalence {
	return &ExactEquivalence{reps: make(map[string]*exactGroup)}
}

// Record checks device's decoded segment JSON against every representative
// seen so far. If an equivalent representative exists, device is folded
// into it and Record returns (representative, true). Otherwise device
// becomes a new representative and Record returns ("", false).
func (e *ExactEquivalence) Record(device string, decoded any) (representative string, folded bool) {
	for rep, g := range e.reps {
		if reflect.DeepEqual(g.raw, decoded) {
			g.members[device] = struct{}{}
			return rep, true
		}
	}
	e.reps[device] = &exactGroup{raw: decoded, members: make(map[string]struct{})}
	return "", false
}

// Representatives returns every representative device that folded at least
// one other device into it, along with the folded device set, for
// comparing exact-duplicate group sizes against discovered groups.
func (e *ExactEquivalence) Representatives() map[string]map[string]struct{} {
	out := make(map[string]map[string]struct{})
	for rep, g := range e.reps {
		if len(g.members) > 0 {
			out[rep] = g.members
		}
	}
	return out
}
