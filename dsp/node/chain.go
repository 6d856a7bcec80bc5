package node

import (
	"encoding/json"
	"fmt"
)

// stageState is the JSON form of one chain stage.
type stageState struct {
	Type     string `json:"type"`
	Bypassed bool   `json:"bypassed"`
	Params   any    `json:"params"`
}

// ParseChain parses a JSON array of stages such as
//
//	[{"type":"gain","params":{"gainDB":-6}},{"type":"identity","bypassed":true}]
//
// An empty string yields an empty chain. Stages without a type are rejected.
func ParseChain(raw string) ([]Params, error) {
	if raw == "" {
		return nil, nil
	}

	var states []stageState

	err := json.Unmarshal([]byte(raw), &states)
	if err != nil {
		return nil, fmt.Errorf("invalid chain json: %w", err)
	}

	out := make([]Params, 0, len(states))
	for i, s := range states {
		if s.Type == "" {
			return nil, fmt.Errorf("invalid chain: stage %d has no type", i)
		}

		out = append(out, Params{
			Type:     s.Type,
			Bypassed: s.Bypassed,
			Num:      parseNumParams(s.Params),
		})
	}

	return out, nil
}

// parseNumParams extracts numeric parameters from a raw JSON params value.
// Booleans map to 0/1; other kinds are ignored.
func parseNumParams(raw any) map[string]float64 {
	num := map[string]float64{}

	params, ok := raw.(map[string]any)
	if !ok || params == nil {
		return num
	}

	for k, v := range params {
		switch t := v.(type) {
		case float64:
			num[k] = t
		case bool:
			if t {
				num[k] = 1
			} else {
				num[k] = 0
			}
		}
	}

	return num
}
