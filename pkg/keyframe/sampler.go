package keyframe

import "ddcore/pkg/ddmath"

// Bracket is the pair of keys surrounding a query. Start and End are the
// positions used for blending; across a wrap seam one of them is shifted
// by the sampler's period.
type Bracket[K any] struct {
	Left, Right K
	T           float64
	Start, End  float64
	Wrapped     bool
}

// Factor is the query's relative position inside the bracket, unclamped.
// A zero-width bracket reports 1 once the query reaches End.
func (b Bracket[K]) Factor() float64 {
	if b.Span() == 0 && b.T >= b.End {
		return 1
	}
	return ddmath.InverseLerp(b.T, b.Start, b.End)
}

// Span is the bracket width
func (b Bracket[K]) Span() float64 {
	return b.End - b.Start
}

// Sampler evaluates a Store at a position.
//
// Value maps a single key to the output and is used for exact hits, clamped
// ends and one-key stores. Blend interpolates inside a bracket; a nil Blend
// holds the left key. Period > 0 treats the domain as circular with that
// length, so queries outside the outermost keys blend from the last key
// toward the first.
type Sampler[P Position, K Keyframe[P], O any] struct {
	Fallback O
	Value    func(K) O
	Blend    func(Bracket[K]) O
	Period   float64
}

// Sample returns the output at t. It never fails: an empty store yields
// Fallback, and NaN queries resolve to the first key.
func (s Sampler[P, K, O]) Sample(store *Store[P, K], t P) O {
	keys := store.ordered()

	switch len(keys) {
	case 0:
		return s.Fallback
	case 1:
		return s.Value(keys[0])
	}

	first, last := keys[0], keys[len(keys)-1]
	firstPos, lastPos := float64(first.KeyPosition()), float64(last.KeyPosition())
	tf := float64(t)

	switch {
	case isNaN(t):
		return s.Value(first)
	case tf == lastPos:
		return s.Value(last)

	case tf <= firstPos:
		if s.Period <= 0 {
			return s.Value(first)
		}
		return s.blend(Bracket[K]{
			Left:    last,
			Right:   first,
			T:       tf,
			Start:   lastPos - s.Period,
			End:     firstPos,
			Wrapped: true,
		})

	case tf > lastPos:
		if s.Period <= 0 {
			return s.Value(last)
		}
		return s.blend(Bracket[K]{
			Left:    last,
			Right:   first,
			T:       tf,
			Start:   lastPos,
			End:     firstPos + s.Period,
			Wrapped: true,
		})
	}

	lo, hi, found := search(keys, t)
	if found {
		return s.Value(keys[lo])
	}

	return s.blend(Bracket[K]{
		Left:  keys[hi],
		Right: keys[lo],
		T:     tf,
		Start: float64(keys[hi].KeyPosition()),
		End:   float64(keys[lo].KeyPosition()),
	})
}

func (s Sampler[P, K, O]) blend(b Bracket[K]) O {
	// Positions that collapsed onto each other cannot be blended, except
	// at a seam where the last key sits a full period before the first
	if s.Blend == nil || !(b.Span() > 0 || b.Wrapped && b.Span() == 0) {
		return s.Value(b.Left)
	}
	return s.Blend(b)
}
