package keyframe

// search runs an integer-midpoint binary search over ascending keys. On an
// exact hit lo == hi == index. Otherwise the loop exits with hi < lo and
// keys[hi], keys[lo] bracket t (either may be out of range at the ends).
func search[P Position, K Keyframe[P]](keys []K, t P) (lo, hi int, found bool) {
	lo, hi = 0, len(keys)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		p := keys[mid].KeyPosition()

		if p == t {
			return mid, mid, true
		}
		if p < t {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return lo, hi, false
}

// Locate returns the index of the last key at or before t, -1 when t
// precedes every key, and whether t hits a key exactly.
func (s *Store[P, K]) Locate(t P) (index int, exact bool) {
	keys := s.ordered()
	lo, hi, found := search(keys, t)
	if found {
		return lo, true
	}
	return hi, false
}

// TryFindClosest returns the key nearest to t. When t sits exactly halfway
// between two keys the lower one wins. It fails only on an empty store.
func (s *Store[P, K]) TryFindClosest(t P) (K, int, bool) {
	keys := s.ordered()
	if len(keys) == 0 {
		var zero K
		return zero, -1, false
	}

	lo, hi, found := search(keys, t)
	switch {
	case found:
		return keys[lo], lo, true
	case hi < 0:
		return keys[0], 0, true
	case lo >= len(keys):
		last := len(keys) - 1
		return keys[last], last, true
	}

	below := float64(t) - float64(keys[hi].KeyPosition())
	above := float64(keys[lo].KeyPosition()) - float64(t)
	if above < below {
		return keys[lo], lo, true
	}
	return keys[hi], hi, true
}
