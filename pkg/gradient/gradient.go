// Package gradient samples color gradients defined by keys on a 16-bit
// fixed-point position domain. Keys may hold their color (Fixed) or blend
// toward the next key (Interpolation), and the domain can wrap so the last
// key blends back into the first.
package gradient

import (
	"iter"

	"ddcore/pkg/color"
	"ddcore/pkg/keyframe"
)

// FallbackColor is returned when a gradient has no keys
var FallbackColor = color.White

// Gradient is a keyed color ramp. It is not safe for concurrent use.
type Gradient struct {
	keys *keyframe.Store[uint16, Key]

	// Wrapping makes the domain circular
	Wrapping bool
}

// New returns an empty gradient
func New() *Gradient {
	return NewWithCapacity(0)
}

// NewWithCapacity returns an empty gradient with room for capacity keys
func NewWithCapacity(capacity int) *Gradient {
	return &Gradient{keys: keyframe.NewStore[uint16, Key](capacity)}
}

// FromKeys builds a gradient from keys in any order
func FromKeys(keys ...Key) *Gradient {
	return &Gradient{keys: keyframe.NewStoreFrom[uint16](keys)}
}

// Clone returns a deep copy
func (g *Gradient) Clone() *Gradient {
	return &Gradient{keys: g.store().Clone(), Wrapping: g.Wrapping}
}

// store lazily allocates so the zero Gradient is usable
func (g *Gradient) store() *keyframe.Store[uint16, Key] {
	if g.keys == nil {
		g.keys = keyframe.NewStore[uint16, Key](0)
	}
	return g.keys
}

func (g *Gradient) sampler() keyframe.Sampler[uint16, Key, color.Color32] {
	s := keyframe.Sampler[uint16, Key, color.Color32]{
		Fallback: FallbackColor,
		Value:    keyColor,
		Blend:    blendKeys,
	}
	if g.Wrapping {
		s.Period = MaxPosition
	}
	return s
}

func keyColor(k Key) color.Color32 { return k.Color }

func blendKeys(b keyframe.Bracket[Key]) color.Color32 {
	if b.Left.Mode == Fixed {
		return b.Left.Color
	}
	return color.Lerp32(b.Left.Color, b.Right.Color, float32(b.Factor()))
}

// Sample evaluates the gradient at an integer position, clamped to [0, MaxPosition]
func (g *Gradient) Sample(t int) color.Color32 {
	return g.SampleFixed(ClampFixed(t))
}

// SampleFixed evaluates the gradient at a fixed-point position
func (g *Gradient) SampleFixed(t uint16) color.Color32 {
	return g.sampler().Sample(g.store(), t)
}

// SampleNormalized evaluates the gradient at t in [0, 1]; t is clamped
func (g *Gradient) SampleNormalized(t float32) color.Color32 {
	return g.SampleFixed(ToFixed(t))
}

// Add inserts keys. A key at an occupied position replaces the old one.
func (g *Gradient) Add(keys ...Key) {
	g.store().Add(keys...)
}

// Remove deletes the key at exactly pos
func (g *Gradient) Remove(pos uint16) bool {
	return g.store().Remove(pos)
}

// AssignKeys replaces all keys. Nil or empty input clears the gradient.
func (g *Gradient) AssignKeys(keys []Key) {
	g.store().AssignKeys(keys)
}

// Clear removes all keys
func (g *Gradient) Clear() {
	g.store().Clear()
}

// Len returns the number of distinct keys
func (g *Gradient) Len() int {
	return g.store().Len()
}

// Keys returns the keys in ascending position order
func (g *Gradient) Keys() []Key {
	return g.store().Keys()
}

// All iterates keys in ascending position order
func (g *Gradient) All() iter.Seq2[int, Key] {
	return g.store().All()
}

// CopyKeys copies ordered keys from offset into dst, bounded by len(dst)
func (g *Gradient) CopyKeys(dst []Key, offset int) int {
	return g.store().CopyKeys(dst, offset)
}

// AppendKeys appends ordered keys from offset, bounded by cap(dst)
func (g *Gradient) AppendKeys(dst []Key, offset int) []Key {
	return g.store().AppendKeys(dst, offset)
}

// TryFindClosest returns the key nearest pos. Equidistant keys resolve to
// the lower position.
func (g *Gradient) TryFindClosest(pos uint16) (Key, int, bool) {
	return g.store().TryFindClosest(pos)
}

// Inverse returns a gradient with every key mirrored across the domain
func (g *Gradient) Inverse() *Gradient {
	keys := g.Keys()
	for i := range keys {
		keys[i].Position = MaxPosition - keys[i].Position
	}
	out := FromKeys(keys...)
	out.Wrapping = g.Wrapping
	return out
}

// Grayscale returns a gradient with every key color converted to luma
func (g *Gradient) Grayscale() *Gradient {
	keys := g.Keys()
	for i := range keys {
		keys[i].Color = keys[i].Color.Grayscale()
	}
	out := FromKeys(keys...)
	out.Wrapping = g.Wrapping
	return out
}
