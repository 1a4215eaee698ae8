// Package constants holds the fixed numeric parameters of the structured
// generalization engine, shared across flavor adapters, the matcher, and
// the outlier reporter so they never drift out of sync.
package constants

const (
	// Infinity marks an incompatible line pair (e.g. differing ACL
	// protocol tags). Any real accumulated score stays far below it.
	Infinity = 10000

	// LinePenaltyACL is the per-line gap cost for ACL blocks.
	LinePenaltyACL = 40

	// LinePenaltyPrefix is the per-line gap cost for prefix-list blocks.
	LinePenaltyPrefix = 14

	// LinePenaltyRoutePolicy is the per-line gap cost for route-policy
	// blocks, whose lines are whole rendered statements rather than a
	// fixed narrow attribute set.
	LinePenaltyRoutePolicy = 20

	// SingleParamThreshold: a parameter value occurring in fewer than this
	// fraction of its parameter's average occurrence count is an outlier.
	SingleParamThreshold = 0.09

	// SpuriousParamThreshold: a parameter pair disagreeing on fewer than
	// this fraction of the devices that define both is a spurious-pair
	// outlier.
	SpuriousParamThreshold = 0.05
)
