package gradient

import (
	"fmt"
	"math"

	"ddcore/pkg/color"
	"ddcore/pkg/ddmath"
)

// Mode controls how a key blends toward the next key
type Mode int

const (
	// Interpolation blends linearly toward the next key
	Interpolation Mode = iota
	// Fixed holds this key's color until the next key's exact position
	Fixed
)

func (m Mode) String() string {
	switch m {
	case Interpolation:
		return "Interpolation"
	case Fixed:
		return "Fixed"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// MaxPosition is the end of the fixed-point position domain
const MaxPosition = math.MaxUint16

// Key is a gradient control point. Position is fixed-point: 0 maps to 0.0
// and MaxPosition to 1.0.
type Key struct {
	Color    color.Color32
	Mode     Mode
	Position uint16
}

// NewKey returns an interpolating key
func NewKey(c color.Color32, pos uint16) Key {
	return Key{Color: c, Mode: Interpolation, Position: pos}
}

// NewFixedKey returns a step key
func NewFixedKey(c color.Color32, pos uint16) Key {
	return Key{Color: c, Mode: Fixed, Position: pos}
}

// KeyAt places a key at a normalized position in [0, 1]
func KeyAt(c color.Color32, mode Mode, normalized float32) Key {
	k := Key{Color: c, Mode: mode}
	k.SetNormalizedPosition(normalized)
	return k
}

// KeyPosition implements keyframe.Keyframe
func (k Key) KeyPosition() uint16 { return k.Position }

// NormalizedPosition maps Position to [0, 1]
func (k Key) NormalizedPosition() float32 {
	return float32(k.Position) / MaxPosition
}

// SetNormalizedPosition saturates v and rounds it into the fixed domain
func (k *Key) SetNormalizedPosition(v float32) {
	k.Position = ToFixed(v)
}

func (k Key) String() string {
	return fmt.Sprintf("Key(%v, %v, %d)", k.Color, k.Mode, k.Position)
}

// ToFixed converts a normalized position to the fixed domain. NaN maps to 0.
func ToFixed(v float32) uint16 {
	if math.IsNaN(float64(v)) {
		return 0
	}
	return uint16(math.Round(float64(ddmath.Saturate32(v)) * MaxPosition))
}

// ClampFixed converts an arbitrary integer position to the fixed domain
func ClampFixed(t int) uint16 {
	return uint16(max(0, min(t, MaxPosition)))
}
