package gradient

import (
	"encoding/json"
	"fmt"

	"ddcore/pkg/color"
)

type keyJSON struct {
	Color    color.Color32 `json:"Color"`
	Mode     Mode          `json:"Mode"`
	Position uint16        `json:"Position"`
}

type gradientJSON struct {
	Keys     []Key `json:"Keys"`
	Wrapping bool  `json:"Wrapping"`
}

// MarshalJSON encodes a key as {"Color": packed, "Mode": int, "Position": int}
func (k Key) MarshalJSON() ([]byte, error) {
	return json.Marshal(keyJSON(k))
}

// UnmarshalJSON decodes a key, leaving absent fields at their zero value.
// Unknown modes decode as Interpolation.
func (k *Key) UnmarshalJSON(data []byte) error {
	var raw keyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode gradient key: %w", err)
	}
	if raw.Mode != Fixed {
		raw.Mode = Interpolation
	}
	*k = Key(raw)
	return nil
}

// MarshalJSON encodes the gradient as {"Keys": [...], "Wrapping": bool}
func (g *Gradient) MarshalJSON() ([]byte, error) {
	keys := g.Keys()
	if keys == nil {
		keys = []Key{}
	}
	return json.Marshal(gradientJSON{Keys: keys, Wrapping: g.Wrapping})
}

// UnmarshalJSON replaces the gradient's keys. Ordering is restored lazily.
func (g *Gradient) UnmarshalJSON(data []byte) error {
	var raw gradientJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode gradient: %w", err)
	}
	g.AssignKeys(raw.Keys)
	g.Wrapping = raw.Wrapping
	return nil
}
