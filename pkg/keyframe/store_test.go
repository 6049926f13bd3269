package keyframe

import (
	"math"
	"testing"
)

type testKey struct {
	Pos   float64
	Value float64
	Tag   string
}

func (k testKey) KeyPosition() float64 { return k.Pos }

func positions(keys []testKey) []float64 {
	out := make([]float64, len(keys))
	for i, k := range keys {
		out[i] = k.Pos
	}
	return out
}

func TestStoreOrdersLazily(t *testing.T) {
	s := NewStore[float64, testKey](4)
	s.Add(testKey{Pos: 3}, testKey{Pos: 1}, testKey{Pos: 2})

	if !s.Dirty() {
		t.Fatalf("Expected store to be dirty after Add")
	}

	got := positions(s.Keys())
	want := []float64{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, got)
		}
	}
	if s.Dirty() {
		t.Errorf("Expected reads to clear the dirty flag")
	}
}

func TestStoreDedupKeepsLastWritten(t *testing.T) {
	s := NewStoreFrom[float64]([]testKey{
		{Pos: 0.5, Tag: "first"},
		{Pos: 0, Tag: "zero"},
		{Pos: 0.5, Tag: "second"},
	})

	if n := s.Len(); n != 2 {
		t.Fatalf("Expected 2 keys after dedup, got %d", n)
	}
	k, ok := s.At(1)
	if !ok || k.Tag != "second" {
		t.Errorf("Expected the later key to survive, got %+v", k)
	}

	// A key added later at an existing position replaces it as well
	s.Add(testKey{Pos: 0, Tag: "replacement"})
	if k, _ := s.At(0); k.Tag != "replacement" {
		t.Errorf("Expected replacement at position 0, got %+v", k)
	}
	if n := s.Len(); n != 2 {
		t.Errorf("Expected count to stay 2, got %d", n)
	}
}

func TestStoreDropsNaNPositions(t *testing.T) {
	s := NewStoreFrom[float64]([]testKey{{Pos: math.NaN()}, {Pos: 1}})
	if n := s.Len(); n != 1 {
		t.Errorf("Expected NaN key to be dropped, got %d keys", n)
	}
}

func TestStoreAssignAndClear(t *testing.T) {
	s := NewStoreFrom[float64]([]testKey{{Pos: 1}, {Pos: 2}})

	s.AssignKeys(nil)
	if s.Len() != 0 || s.Dirty() {
		t.Errorf("Expected empty assign to clear the store")
	}

	s.AssignKeys([]testKey{{Pos: 9}, {Pos: 4}})
	if got := positions(s.Keys()); got[0] != 4 || got[1] != 9 {
		t.Errorf("Expected assigned keys in order, got %v", got)
	}

	s.Clear()
	if s.Len() != 0 || s.Dirty() {
		t.Errorf("Expected Clear to leave an empty clean store")
	}
}

func TestStoreAssignDoesNotAliasDonor(t *testing.T) {
	donor := []testKey{{Pos: 2}, {Pos: 1}}
	s := NewStoreFrom[float64](donor)
	_ = s.Len()

	if donor[0].Pos != 2 {
		t.Errorf("Expected donor slice to remain untouched, got %v", positions(donor))
	}
}

func TestStoreCloneIsIndependent(t *testing.T) {
	s := NewStoreFrom[float64]([]testKey{{Pos: 2}, {Pos: 1}})
	c := s.Clone()
	c.Add(testKey{Pos: 5})

	if s.Len() != 2 {
		t.Errorf("Expected original to keep 2 keys, got %d", s.Len())
	}
	if c.Len() != 3 {
		t.Errorf("Expected clone to have 3 keys, got %d", c.Len())
	}
}

func TestStoreRemove(t *testing.T) {
	s := NewStoreFrom[float64]([]testKey{{Pos: 3}, {Pos: 1}, {Pos: 2}})

	if !s.Remove(2) {
		t.Fatalf("Expected key at 2 to be removed")
	}
	if s.Remove(2) {
		t.Errorf("Expected second removal to fail")
	}
	if !s.RemoveAt(0) {
		t.Fatalf("Expected RemoveAt(0) to succeed")
	}
	if s.RemoveAt(5) {
		t.Errorf("Expected out of range RemoveAt to fail")
	}
	if got := positions(s.Keys()); len(got) != 1 || got[0] != 3 {
		t.Errorf("Expected only key 3 to remain, got %v", got)
	}
}

func TestStoreCopyKeys(t *testing.T) {
	s := NewStoreFrom[float64]([]testKey{{Pos: 4, Value: 40}, {Pos: 1, Value: 10}, {Pos: 2, Value: 20}})

	buf := make([]testKey, 8)
	if n := s.CopyKeys(buf, 0); n != 3 {
		t.Fatalf("Expected 3 keys copied, got %d", n)
	}
	for i, want := range []testKey{{Pos: 1, Value: 10}, {Pos: 2, Value: 20}, {Pos: 4, Value: 40}} {
		if buf[i] != want {
			t.Errorf("Key %d: expected %+v, got %+v", i, want, buf[i])
		}
	}

	small := make([]testKey, 1)
	if n := s.CopyKeys(small, 1); n != 1 || small[0].Pos != 2 {
		t.Errorf("Expected bounded copy from offset 1, got %d %+v", n, small[0])
	}
	if n := s.CopyKeys(buf, 3); n != 0 {
		t.Errorf("Expected nothing copied past the end, got %d", n)
	}
	if n := s.CopyKeys(buf, -1); n != 0 {
		t.Errorf("Expected nothing copied for negative offset, got %d", n)
	}
}

func TestStoreAppendKeysRespectsCapacity(t *testing.T) {
	s := NewStoreFrom[float64]([]testKey{{Pos: 1}, {Pos: 2}, {Pos: 3}})

	dst := make([]testKey, 0, 2)
	dst = s.AppendKeys(dst, 0)
	if len(dst) != 2 || cap(dst) != 2 {
		t.Errorf("Expected append to stop at capacity, got len %d cap %d", len(dst), cap(dst))
	}
	if dst[1].Pos != 2 {
		t.Errorf("Expected second appended key at 2, got %v", dst[1].Pos)
	}
}

func TestStoreAllIterates(t *testing.T) {
	s := NewStoreFrom[float64]([]testKey{{Pos: 2}, {Pos: 1}, {Pos: 3}})
	var seen []float64
	for i, k := range s.All() {
		if i == 2 {
			break
		}
		seen = append(seen, k.Pos)
	}
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("Unexpected iteration %v", seen)
	}
}

func TestLocate(t *testing.T) {
	s := NewStoreFrom[float64]([]testKey{{Pos: 0}, {Pos: 10}, {Pos: 20}})

	cases := []struct {
		t     float64
		index int
		exact bool
	}{
		{-5, -1, false},
		{0, 0, true},
		{5, 0, false},
		{10, 1, true},
		{15, 1, false},
		{25, 2, false},
	}
	for _, c := range cases {
		idx, exact := s.Locate(c.t)
		if idx != c.index || exact != c.exact {
			t.Errorf("Locate(%v) = (%d, %v), want (%d, %v)", c.t, idx, exact, c.index, c.exact)
		}
	}
}

func TestTryFindClosest(t *testing.T) {
	empty := NewStore[float64, testKey](0)
	if _, _, ok := empty.TryFindClosest(1); ok {
		t.Errorf("Expected lookup on empty store to fail")
	}

	s := NewStoreFrom[float64]([]testKey{{Pos: 0}, {Pos: 10}, {Pos: 20}})
	cases := []struct {
		t    float64
		want float64
	}{
		{-100, 0},
		{3, 0},
		{5, 0}, // halfway favors the lower key
		{6, 10},
		{10, 10},
		{19, 20},
		{400, 20},
	}
	for _, c := range cases {
		k, i, ok := s.TryFindClosest(c.t)
		if !ok || k.Pos != c.want {
			t.Errorf("TryFindClosest(%v) = %v (index %d), want %v", c.t, k.Pos, i, c.want)
		}
	}
}
