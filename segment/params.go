package segment

import (
	"sort"
	"strconv"
)

// Group is a maximal set of devices sharing an identical line-presence
// pattern. Lines holds the sorted line identities the group's devices all
// contribute; Devices holds the device names.
type Group struct {
	Lines   []int
	Devices map[string]struct{}
}

// ParametersLinesMap is the bookkeeping aggregate shared across one
// generalization run.
type ParametersLinesMap struct {
	// Parameters holds, per device, the value of every parameter that
	// device carries.
	Parameters map[string]map[string]string
	// LineMapping holds, per device, the meta-template line identities
	// that device contributes. Merging appends to it in merge order; it is
	// sorted once minimize has renumbered the lines.
	LineMapping map[string][]int
	// Counter is the next parameter index to allocate.
	Counter int
	// Predicates maps a predicate name ("A" or "R<k>") to the line
	// identities sharing that presence pattern. Populated by minimize.
	Predicates map[string][]int
	// Groups partitions devices by identical line-presence pattern.
	// Populated by minimize.
	Groups []Group
}

// NewParametersLinesMap initializes the bookkeeping for the first segment
// used to seed the meta-template: seedDevice contributes every identity in
// [0, lastIdentity].
func NewParametersLinesMap(seedDevice string, lastIdentity int) *ParametersLinesMap {
	ids := make([]int, lastIdentity+1)
	for i := range ids {
		ids[i] = i
	}
	return &ParametersLinesMap{
		Parameters:  map[string]map[string]string{seedDevice: {}},
		LineMapping: map[string][]int{seedDevice: ids},
	}
}

// EnsureDevice makes sure device has a (possibly empty) parameter map, so
// later AddParameter calls on other devices can see it.
func (p *ParametersLinesMap) EnsureDevice(device string) {
	if _, ok := p.Parameters[device]; !ok {
		p.Parameters[device] = map[string]string{}
	}
}

// AllocateParam returns the next free parameter name and advances Counter.
func (p *ParametersLinesMap) AllocateParam() string {
	name := ParamPrefix + strconv.Itoa(p.Counter)
	p.Counter++
	return name
}

// ParameterDistribution builds, per parameter, a histogram of its values
// across all devices that currently define it. This is recomputed on
// demand rather than kept incrementally, avoiding invalidation cycles when
// parameters are coalesced or pruned.
func (p *ParametersLinesMap) ParameterDistribution() map[string]map[string]int {
	dist := make(map[string]map[string]int)
	for _, values := range p.Parameters {
		for param, val := range values {
			m, ok := dist[param]
			if !ok {
				m = make(map[string]int)
				dist[param] = m
			}
			m[val]++
		}
	}
	return dist
}

// AddParameter records value as param's value for every device currently
// tracked except newDevice (whose value the caller has already set).
func (p *ParametersLinesMap) AddParameter(param, value, newDevice string) {
	for device, values := range p.Parameters {
		if device != newDevice {
			values[param] = value
		}
	}
}

// RemapLineNumbers rewrites every device's LineMapping entries found in
// oldToNew, leaving untouched identities as-is.
func (p *ParametersLinesMap) RemapLineNumbers(oldToNew map[int]int) {
	for device, ids := range p.LineMapping {
		next := make([]int, len(ids))
		for i, id := range ids {
			if nv, ok := oldToNew[id]; ok {
				next[i] = nv
			} else {
				next[i] = id
			}
		}
		p.LineMapping[device] = next
	}
}

// SortLineMappings sorts every device's LineMapping in place (used at the
// end of minimize's line renumbering).
func (p *ParametersLinesMap) SortLineMappings() {
	for device := range p.LineMapping {
		sort.Ints(p.LineMapping[device])
	}
}
