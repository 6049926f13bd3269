// Package curve implements scalar animation curves: keys carry a value and
// in/out tangents, and the curve evaluates a cubic Hermite segment between
// the two keys surrounding a query. Queries outside the keyed range clamp to
// the outermost values.
package curve

import (
	"fmt"
	"iter"

	"ddcore/pkg/ddmath"
	"ddcore/pkg/keyframe"
)

// DefaultCapacity is the key capacity reserved by New
const DefaultCapacity = 8

// Key is a curve control point
type Key struct {
	Position   float32
	Value      float32
	InTangent  float32
	OutTangent float32
}

// NewKey returns a key with flat tangents
func NewKey(pos, value float32) Key {
	return Key{Position: pos, Value: value}
}

// KeyPosition implements keyframe.Keyframe
func (k Key) KeyPosition() float32 { return k.Position }

func (k Key) String() string {
	return fmt.Sprintf("Key(%g: %g, in %g, out %g)", k.Position, k.Value, k.InTangent, k.OutTangent)
}

// Curve is a keyed scalar function. It is not safe for concurrent use.
type Curve struct {
	keys *keyframe.Store[float32, Key]

	// RawParameter feeds the unnormalized query into the Hermite basis
	// instead of the segment-local parameter. Only useful to reproduce
	// curves authored against that behavior.
	RawParameter bool
}

func New() *Curve {
	return NewWithCapacity(DefaultCapacity)
}

func NewWithCapacity(capacity int) *Curve {
	return &Curve{keys: keyframe.NewStore[float32, Key](capacity)}
}

// FromKeys builds a curve from keys in any order
func FromKeys(keys ...Key) *Curve {
	return &Curve{keys: keyframe.NewStoreFrom[float32](keys)}
}

// Linear returns a two-key curve whose tangents make it a straight line
func Linear(t0, v0, t1, v1 float32) *Curve {
	if t0 == t1 {
		return Constant(v1)
	}
	slope := (v1 - v0) / (t1 - t0)
	return FromKeys(
		Key{Position: t0, Value: v0, InTangent: slope, OutTangent: slope},
		Key{Position: t1, Value: v1, InTangent: slope, OutTangent: slope},
	)
}

// Constant returns a curve spanning [0, 1] with value v everywhere
func Constant(v float32) *Curve {
	return FromKeys(NewKey(0, v), NewKey(1, v))
}

func (c *Curve) Clone() *Curve {
	return &Curve{keys: c.store().Clone(), RawParameter: c.RawParameter}
}

func (c *Curve) store() *keyframe.Store[float32, Key] {
	if c.keys == nil {
		c.keys = keyframe.NewStore[float32, Key](DefaultCapacity)
	}
	return c.keys
}

func keyValue(k Key) float32 { return k.Value }

func (c *Curve) sampler() keyframe.Sampler[float32, Key, float32] {
	s := keyframe.Sampler[float32, Key, float32]{Value: keyValue, Blend: hermite}
	if c.RawParameter {
		s.Blend = hermiteRaw
	}
	return s
}

func hermite(b keyframe.Bracket[Key]) float32 {
	return evaluate(b, b.Factor())
}

func hermiteRaw(b keyframe.Bracket[Key]) float32 {
	return evaluate(b, b.T)
}

func evaluate(b keyframe.Bracket[Key], s float64) float32 {
	dt := b.Span()
	return float32(ddmath.Hermite(
		float64(b.Left.Value),
		float64(b.Left.OutTangent)*dt,
		float64(b.Right.Value),
		float64(b.Right.InTangent)*dt,
		s,
	))
}

// Sample evaluates the curve at t. An empty curve yields 0.
func (c *Curve) Sample(t float32) float32 {
	return c.sampler().Sample(c.store(), t)
}

// SampleEased remaps t in [0, 1] through fn before sampling
func (c *Curve) SampleEased(t float32, fn ddmath.EaseFunction) float32 {
	return c.Sample(ddmath.Ease(ddmath.Saturate32(t), fn))
}

// Range returns the positions of the first and last keys
func (c *Curve) Range() (start, end float32, ok bool) {
	first, ok := c.store().At(0)
	if !ok {
		return 0, 0, false
	}
	last, _ := c.store().At(c.Len() - 1)
	return first.Position, last.Position, true
}

// Bounds returns the lowest and highest values reached over the keyed span,
// probed at samples+1 evenly spaced points. A flat result is padded by 0.5
// on each side so callers can always scale by hi-lo.
func (c *Curve) Bounds(samples int) (lo, hi float32) {
	start, end, ok := c.Range()
	if !ok {
		return -1, 1
	}
	samples = max(samples, 1)
	lo, hi = c.Sample(start), c.Sample(start)
	for i := 1; i <= samples; i++ {
		v := c.Sample(ddmath.Lerp(start, end, float32(i)/float32(samples)))
		lo, hi = min(lo, v), max(hi, v)
	}
	if hi-lo < 1e-3 {
		lo, hi = lo-0.5, hi+0.5
	}
	return lo, hi
}

// Add inserts keys. A key at an occupied position replaces the old one.
func (c *Curve) Add(keys ...Key) {
	c.store().Add(keys...)
}

// Remove deletes the key at exactly pos
func (c *Curve) Remove(pos float32) bool {
	return c.store().Remove(pos)
}

// AssignKeys replaces all keys. Nil or empty input clears the curve.
func (c *Curve) AssignKeys(keys []Key) {
	c.store().AssignKeys(keys)
}

func (c *Curve) Clear() {
	c.store().Clear()
}

func (c *Curve) Len() int {
	return c.store().Len()
}

// Keys returns the keys in ascending position order
func (c *Curve) Keys() []Key {
	return c.store().Keys()
}

func (c *Curve) All() iter.Seq2[int, Key] {
	return c.store().All()
}

// CopyKeys copies ordered keys from offset into dst, bounded by len(dst)
func (c *Curve) CopyKeys(dst []Key, offset int) int {
	return c.store().CopyKeys(dst, offset)
}

// AppendKeys appends ordered keys from offset, bounded by cap(dst)
func (c *Curve) AppendKeys(dst []Key, offset int) []Key {
	return c.store().AppendKeys(dst, offset)
}

// TryFindClosest returns the key nearest pos, ties going to the lower key
func (c *Curve) TryFindClosest(pos float32) (Key, int, bool) {
	return c.store().TryFindClosest(pos)
}
