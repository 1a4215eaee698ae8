package prefixlist

import (
	gojson "github.com/goccy/go-json"

	"github.com/selfstarter/structgen/constants"
)

const (
	attributeCount = 11
	linePenalty    = constants.LinePenaltyPrefix
)

type routeFilterListJSON struct {
	Lines []routeFilterLineJSON `json:"lines"`
}

type routeFilterLineJSON struct {
	Action      string `json:"action"`
	IPWildcard  string `json:"ipWildcard"`
	LengthRange string `json:"lengthRange"`
}

func decodeRouteFilterList(raw []byte) (routeFilterListJSON, error) {
	var r routeFilterListJSON
	err := gojson.Unmarshal(raw, &r)
	return r, err
}

func decodeAny(raw []byte, out *any) error {
	return gojson.Unmarshal(raw, out)
}
