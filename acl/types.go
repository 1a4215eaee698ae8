package acl

import (
	gojson "github.com/goccy/go-json"

	"github.com/selfstarter/structgen/constants"
)

const (
	attributeCount = 20
	linePenalty    = constants.LinePenaltyACL
)

// aclJSON is the decoded shape of one Batfish ipAccessLists entry.
type aclJSON struct {
	Lines []aclLineJSON `json:"lines"`
}

type aclLineJSON struct {
	Action         string            `json:"action"`
	MatchCondition matchConditionJSON `json:"matchCondition"`
}

// matchConditionJSON unifies the three shapes Batfish uses for a line's
// match expression: a direct headerSpace, or a boolean tree of conjuncts /
// disjuncts that bottoms out in headerSpace leaves.
type matchConditionJSON struct {
	Class       string               `json:"class"`
	HeaderSpace *headerSpaceJSON     `json:"headerSpace,omitempty"`
	Conjuncts   []matchConditionJSON `json:"conjuncts,omitempty"`
	Disjuncts   []matchConditionJSON `json:"disjuncts,omitempty"`
}

type headerSpaceJSON struct {
	IPProtocols []string     `json:"ipProtocols"`
	SrcIps      *ipSpaceJSON `json:"srcIps,omitempty"`
	DstIps      *ipSpaceJSON `json:"dstIps,omitempty"`
	SrcPorts    []string     `json:"srcPorts,omitempty"`
	DstPorts    []string     `json:"dstPorts,omitempty"`
}

// ipSpaceJSON models the five IpSpace shapes the original network-config
// mining tool recognized (IpWildcardIpSpace, PrefixIpSpace, AclIpSpace,
// UniverseIpSpace, IpIpSpace). Any other class value is rejected by
// getSrcOrDstIps with flavor.ErrUnrecognizedShape — including literals
// that happened to appear in any one past dataset, since hardcoding a
// dataset-specific shape would silently mis-generalize every other one.
type ipSpaceJSON struct {
	Class      string               `json:"class"`
	IPWildcard string               `json:"ipWildcard,omitempty"`
	Prefix     string               `json:"prefix,omitempty"`
	IP         string               `json:"ip,omitempty"`
	Lines      []aclIPSpaceLineJSON `json:"lines,omitempty"`
}

type aclIPSpaceLineJSON struct {
	Action  string      `json:"action"`
	IPSpace ipSpaceJSON `json:"ipSpace"`
}

func decodeACL(raw []byte) (aclJSON, error) {
	var a aclJSON
	err := gojson.Unmarshal(raw, &a)
	return a, err
}

func decodeAny(raw []byte, out *any) error {
	return gojson.Unmarshal(raw, out)
}
