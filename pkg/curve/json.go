package curve

import (
	"encoding/json"
	"fmt"
)

type curveJSON struct {
	Keys []Key `json:"Keys"`
}

// MarshalJSON encodes the curve as {"Keys": [{"Position", "Value", "InTangent", "OutTangent"}]}
func (c *Curve) MarshalJSON() ([]byte, error) {
	keys := c.Keys()
	if keys == nil {
		keys = []Key{}
	}
	return json.Marshal(curveJSON{Keys: keys})
}

// UnmarshalJSON replaces the curve's keys; they are reordered on first read
func (c *Curve) UnmarshalJSON(data []byte) error {
	var raw curveJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode curve: %w", err)
	}
	c.AssignKeys(raw.Keys)
	return nil
}
