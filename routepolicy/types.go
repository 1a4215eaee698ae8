package routepolicy

import gojson "github.com/goccy/go-json"

const attributeCount = 1

type routingPolicyJSON struct {
	Statements []statementJSON `json:"statements"`
}

type statementJSON struct {
	Action string `json:"action"`
	Text   string `json:"text"`
}

func decodeRoutingPolicy(raw []byte) (routingPolicyJSON, error) {
	var r routingPolicyJSON
	err := gojson.Unmarshal(raw, &r)
	return r, err
}

func decodeAny(raw []byte, out *any) error {
	return gojson.Unmarshal(raw, out)
}
