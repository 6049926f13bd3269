// Package keyframe implements an ordered key collection and a sampler that
// evaluates it at arbitrary positions. Gradients and curves are thin
// specializations that supply the key type and the blend strategy.
//
// A Store is owned by a single caller; it performs no locking.
package keyframe

import (
	"cmp"
	"iter"
	"math"
	"slices"
)

// Position is the set of coordinate types keys can be ordered by
type Position interface {
	~uint16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Keyframe is implemented by key records
type Keyframe[P Position] interface {
	KeyPosition() P
}

// Store keeps keys unique by position and ascending. Mutations only mark
// the store dirty; ordering is restored lazily on the next read.
type Store[P Position, K Keyframe[P]] struct {
	keys  []K
	dirty bool
}

// NewStore returns an empty store with room for capacity keys
func NewStore[P Position, K Keyframe[P]](capacity int) *Store[P, K] {
	return &Store[P, K]{keys: make([]K, 0, max(capacity, 0))}
}

// NewStoreFrom copies donor keys in any order
func NewStoreFrom[P Position, K Keyframe[P]](donor []K) *Store[P, K] {
	s := &Store[P, K]{}
	s.AssignKeys(donor)
	return s
}

// Clone returns an independent copy holding the ordered keys
func (s *Store[P, K]) Clone() *Store[P, K] {
	return &Store[P, K]{keys: slices.Clone(s.ordered())}
}

// Add appends a key. A key added at an occupied position replaces the
// existing one once the store is next read.
func (s *Store[P, K]) Add(keys ...K) {
	if len(keys) == 0 {
		return
	}
	s.keys = append(s.keys, keys...)
	s.dirty = true
}

// Remove deletes the key at exactly position p
func (s *Store[P, K]) Remove(p P) bool {
	keys := s.ordered()
	lo, _, found := search(keys, p)
	if !found {
		return false
	}
	s.keys = slices.Delete(keys, lo, lo+1)
	return true
}

// RemoveAt deletes the i-th key in ascending order
func (s *Store[P, K]) RemoveAt(i int) bool {
	keys := s.ordered()
	if i < 0 || i >= len(keys) {
		return false
	}
	s.keys = slices.Delete(keys, i, i+1)
	return true
}

// AssignKeys replaces every key with donor. An empty donor clears the store.
func (s *Store[P, K]) AssignKeys(donor []K) {
	s.keys = append(s.keys[:0], donor...)
	s.dirty = len(s.keys) > 0
}

// Clear removes all keys
func (s *Store[P, K]) Clear() {
	clear(s.keys)
	s.keys = s.keys[:0]
	s.dirty = false
}

// Len returns the number of distinct keys
func (s *Store[P, K]) Len() int {
	return len(s.ordered())
}

// At returns the i-th key in ascending order
func (s *Store[P, K]) At(i int) (K, bool) {
	keys := s.ordered()
	if i < 0 || i >= len(keys) {
		var zero K
		return zero, false
	}
	return keys[i], true
}

// Keys returns an ordered copy of the keys
func (s *Store[P, K]) Keys() []K {
	return slices.Clone(s.ordered())
}

// All iterates keys in ascending order. The store must not be mutated
// during iteration.
func (s *Store[P, K]) All() iter.Seq2[int, K] {
	return func(yield func(int, K) bool) {
		for i, k := range s.ordered() {
			if !yield(i, k) {
				return
			}
		}
	}
}

// CopyKeys copies ordered keys starting at offset into dst and returns how
// many were copied, bounded by len(dst).
func (s *Store[P, K]) CopyKeys(dst []K, offset int) int {
	keys := s.ordered()
	if offset < 0 || offset >= len(keys) {
		return 0
	}
	return copy(dst, keys[offset:])
}

// AppendKeys appends ordered keys starting at offset without growing dst
// past its capacity.
func (s *Store[P, K]) AppendKeys(dst []K, offset int) []K {
	keys := s.ordered()
	if offset < 0 || offset >= len(keys) {
		return dst
	}
	n := min(cap(dst)-len(dst), len(keys)-offset)
	return append(dst, keys[offset:offset+n]...)
}

// Dirty reports whether a reorder is pending
func (s *Store[P, K]) Dirty() bool {
	return s.dirty
}

// ordered is the single gate every read path goes through
func (s *Store[P, K]) ordered() []K {
	if s.dirty {
		s.keys = normalize(s.keys)
		s.dirty = false
	}
	return s.keys
}

// normalize drops NaN positions, sorts ascending and keeps the most
// recently written key of each run sharing a position.
func normalize[P Position, K Keyframe[P]](keys []K) []K {
	keys = slices.DeleteFunc(keys, func(k K) bool {
		return isNaN(k.KeyPosition())
	})
	slices.SortStableFunc(keys, func(a, b K) int {
		return cmp.Compare(a.KeyPosition(), b.KeyPosition())
	})

	out := keys[:0]
	for i, k := range keys {
		if i+1 < len(keys) && keys[i+1].KeyPosition() == k.KeyPosition() {
			continue
		}
		out = append(out, k)
	}
	clear(keys[len(out):])
	return out
}

func isNaN[P Position](p P) bool {
	return math.IsNaN(float64(p))
}
