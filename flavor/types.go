package flavor

import (
	"errors"
	"regexp"

	gojson "github.com/goccy/go-json"

	"github.com/selfstarter/structgen/segment"
)

// Sentinel errors for flavor-level ingestion faults: an unrecognized shape
// is fatal only for the one segment that triggers it, never for the whole
// pattern scan.
var (
	// ErrUnrecognizedShape indicates a JSON fragment used a class/shape the
	// adapter does not know how to interpret (e.g. an unknown IpSpace
	// class or match-condition class). This is never special-cased for
	// specific datasets.
	ErrUnrecognizedShape = errors.New("flavor: unrecognized JSON shape")

	// ErrMalformedLine indicates a syntactically malformed IP/mask/length
	// inside an otherwise recognizable shape.
	ErrMalformedLine = errors.New("flavor: malformed line")
)

// DeviceInfo is the decoded form of one device's entry in the top-level
// deviceName→deviceInfo JSON mapping. Only the flavor-specific maps
// relevant to this engine are decoded; everything else in the upstream
// parser's output is ignored.
type DeviceInfo struct {
	ConfigurationFormat string                     `json:"configurationFormat"`
	IPAccessLists       map[string]gojson.RawMessage `json:"ipAccessLists"`
	RouteFilterLists    map[string]gojson.RawMessage `json:"routeFilterLists"`
	Route6FilterLists   map[string]gojson.RawMessage `json:"route6FilterLists"`
	RoutingPolicies     map[string]gojson.RawMessage `json:"routingPolicies"`
}

// ParseDevices decodes the top-level deviceName→deviceInfo JSON mapping
// using goccy/go-json (an encoding/json-compatible, faster decoder — the
// one point in the system that actually parses device JSON).
func ParseDevices(raw []byte) (map[string]DeviceInfo, error) {
	var out map[string]DeviceInfo
	if err := gojson.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Row is one rendered line of a formatted block: a predicate name paired
// with the vendor-specific rendered cells for that line.
type Row struct {
	Predicate string
	Cells     []string
}

// Adapter is the capability set a segment flavor exposes to the
// generalization engine.
type Adapter interface {
	// Name identifies the flavor ("acl", "prefixlist", "routepolicy").
	Name() string

	// AttributeCount is the number of semantic attribute slots per line.
	AttributeCount() int

	// GapPenalty is the cost of aligning block against a gap:
	// lineCount(block) × LinePenalty().
	GapPenalty(block *segment.Block) int

	// LinePenalty is the flavor's per-line gap cost constant, used both by
	// GapPenalty and directly by the bipartite line matcher for
	// length-difference and incompatible-pair costs.
	LinePenalty() int

	// LineScore is the substitution cost of matching line a against line
	// b, given the current per-parameter value histogram.
	LineScore(a, b *segment.Line, paramValues map[string]map[string]int) int

	// GetBlockSequence extracts every segment in deviceInfo whose name
	// matches pattern, as device's parsed block sequences. found gains
	// every non-empty matching segment's resolved device-qualified name;
	// empty gains every matching-but-empty one. exact folds byte-for-byte
	// duplicate segment JSON (by decoded-tree equality) into a single
	// representative and is not returned in the result slices for folded
	// devices. lineCounts parallels the returned sequences with each one's
	// LastIdentity(), the cheap size proxy the driver buckets by. errorCount
	// is incremented once per segment that fails to parse (an unrecognized
	// or malformed shape), so the caller can see how many segments were
	// silently dropped rather than losing that count entirely.
	GetBlockSequence(device string, info DeviceInfo, pattern *regexp.Regexp, found, empty map[string]struct{}, exact *segment.ExactEquivalence, errorCount *int) (sequences []*segment.BlockSequence, lineCounts []int)

	// FormatBlock renders one block in the vendor format named by
	// configFormat, using linePredicate to annotate each line with its
	// predicate name.
	FormatBlock(configFormat string, action segment.Action, lines []*segment.Line, linePredicate map[int]string, patternString string) (text string, rows []Row)
}
