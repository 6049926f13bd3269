package keyframe

import (
	"math"
	"testing"
)

func linearSampler(period float64) Sampler[float64, testKey, float64] {
	return Sampler[float64, testKey, float64]{
		Fallback: -1,
		Value:    func(k testKey) float64 { return k.Value },
		Blend: func(b Bracket[testKey]) float64 {
			f := b.Factor()
			return b.Left.Value + (b.Right.Value-b.Left.Value)*f
		},
		Period: period,
	}
}

func TestSampleEmptyReturnsFallback(t *testing.T) {
	s := NewStore[float64, testKey](0)
	smp := linearSampler(0)
	for _, q := range []float64{-1, 0, 0.5, 100} {
		if got := smp.Sample(s, q); got != -1 {
			t.Errorf("Sample(%v) on empty store = %v, want fallback", q, got)
		}
	}
}

func TestSampleSingleKey(t *testing.T) {
	s := NewStoreFrom[float64]([]testKey{{Pos: 0.3, Value: 7}})
	for _, period := range []float64{0, 1} {
		smp := linearSampler(period)
		for _, q := range []float64{-10, 0, 0.3, 0.9, 55} {
			if got := smp.Sample(s, q); got != 7 {
				t.Errorf("Sample(%v) with period %v = %v, want 7", q, period, got)
			}
		}
	}
}

func TestSampleBrackets(t *testing.T) {
	s := NewStoreFrom[float64]([]testKey{{Pos: 1, Value: 20}, {Pos: 0, Value: 0}, {Pos: 0.5, Value: 10}})
	smp := linearSampler(0)

	if got := smp.Sample(s, 0.5); got != 10 {
		t.Errorf("Expected exact hit to return 10, got %v", got)
	}
	if got := smp.Sample(s, 0.25); !(got > 0 && got < 10) {
		t.Errorf("Expected value strictly between 0 and 10, got %v", got)
	}
	if got := smp.Sample(s, 0.75); !(got > 10 && got < 20) {
		t.Errorf("Expected value strictly between 10 and 20, got %v", got)
	}
	if got := smp.Sample(s, -3); got != 0 {
		t.Errorf("Expected clamp to first key, got %v", got)
	}
	if got := smp.Sample(s, 3); got != 20 {
		t.Errorf("Expected clamp to last key, got %v", got)
	}
}

func TestSampleIsIdempotent(t *testing.T) {
	s := NewStoreFrom[float64]([]testKey{{Pos: 0.8, Value: 3}, {Pos: 0.1, Value: 9}, {Pos: 0.4, Value: -2}})
	smp := linearSampler(1)

	for _, q := range []float64{0, 0.05, 0.2, 0.4, 0.6, 0.95} {
		a := smp.Sample(s, q)
		b := smp.Sample(s, q)
		if a != b {
			t.Errorf("Sample(%v) changed between calls: %v then %v", q, a, b)
		}
	}
}

func TestSampleWrapsAcrossPeriod(t *testing.T) {
	s := NewStoreFrom[float64]([]testKey{{Pos: 0.2, Value: 0}, {Pos: 0.6, Value: 8}})
	smp := linearSampler(1)

	// From 0.6 the seam runs to 1.2 (first key shifted by the period)
	if got := smp.Sample(s, 0.9); math.Abs(got-4) > 1e-9 {
		t.Errorf("Expected midpoint of wrapped segment to be 4, got %v", got)
	}
	// Before the first key the last key is shifted back to -0.4
	if got := smp.Sample(s, 0); math.Abs(got-8*(1-(0.4/0.6))) > 1e-9 {
		t.Errorf("Unexpected value before first key: %v", got)
	}
	// Both sides of the seam agree
	before := smp.Sample(s, 0.999999)
	after := smp.Sample(s, 0)
	if math.Abs(before-after) > 1e-3 {
		t.Errorf("Expected continuity across the seam, got %v and %v", before, after)
	}
}

func TestSampleWrapBracketMetadata(t *testing.T) {
	s := NewStoreFrom[float64]([]testKey{{Pos: 0.2, Tag: "a"}, {Pos: 0.6, Tag: "b"}})

	var seen Bracket[testKey]
	smp := Sampler[float64, testKey, string]{
		Value: func(k testKey) string { return k.Tag },
		Blend: func(b Bracket[testKey]) string {
			seen = b
			return "blend"
		},
		Period: 1,
	}

	if got := smp.Sample(s, 0.1); got != "blend" {
		t.Fatalf("Expected blend before the first key, got %q", got)
	}
	if !seen.Wrapped || seen.Left.Tag != "b" || seen.Right.Tag != "a" {
		t.Errorf("Expected wrapped bracket b -> a, got %+v", seen)
	}
	if math.Abs(seen.Start-(-0.4)) > 1e-9 || seen.End != 0.2 {
		t.Errorf("Unexpected bracket span [%v, %v]", seen.Start, seen.End)
	}
	if math.Abs(seen.Span()-0.6) > 1e-9 {
		t.Errorf("Expected span 0.6, got %v", seen.Span())
	}
}

func TestSampleWrapOnFirstKey(t *testing.T) {
	s := NewStoreFrom[float64]([]testKey{{Pos: 0.2, Value: 3, Tag: "a"}, {Pos: 0.6, Value: 8, Tag: "b"}})

	if got := linearSampler(0).Sample(s, 0.2); got != 3 {
		t.Errorf("Expected exact hit without a period, got %v", got)
	}
	if got := linearSampler(1).Sample(s, 0.2); got != 3 {
		t.Errorf("Expected the wrapped blend to land on the first key, got %v", got)
	}

	var seen Bracket[testKey]
	smp := Sampler[float64, testKey, string]{
		Value: func(k testKey) string { return k.Tag },
		Blend: func(b Bracket[testKey]) string {
			seen = b
			return b.Left.Tag
		},
		Period: 1,
	}
	if got := smp.Sample(s, 0.2); got != "b" {
		t.Errorf("Expected the last key to own the seam, got %q", got)
	}
	if !seen.Wrapped || seen.Factor() != 1 {
		t.Errorf("Expected a wrapped bracket ending on the query, got %+v", seen)
	}
}

func TestSampleClosedSeam(t *testing.T) {
	s := NewStoreFrom[float64]([]testKey{{Pos: 0, Value: 1}, {Pos: 1, Value: 5}})
	smp := linearSampler(1)

	if got := smp.Sample(s, 0); got != 1 {
		t.Errorf("Expected first key where the seam has no width, got %v", got)
	}
	if got := smp.Sample(s, 1); got != 5 {
		t.Errorf("Expected last key at its own position, got %v", got)
	}

	b := Bracket[testKey]{T: 0, Start: 0, End: 0}
	if b.Factor() != 1 {
		t.Errorf("Expected factor 1 on a zero-width bracket, got %v", b.Factor())
	}
	b.T = -1
	if b.Factor() != 0 {
		t.Errorf("Expected factor 0 before a zero-width bracket, got %v", b.Factor())
	}
}

func TestSampleNilBlendHoldsLeft(t *testing.T) {
	s := NewStoreFrom[float64]([]testKey{{Pos: 0, Value: 1}, {Pos: 1, Value: 2}})
	smp := Sampler[float64, testKey, float64]{Value: func(k testKey) float64 { return k.Value }}

	if got := smp.Sample(s, 0.7); got != 1 {
		t.Errorf("Expected step behavior without a blend, got %v", got)
	}
}

func TestSampleNaNQuery(t *testing.T) {
	s := NewStoreFrom[float64]([]testKey{{Pos: 0, Value: 1}, {Pos: 1, Value: 2}})
	if got := linearSampler(0).Sample(s, math.NaN()); got != 1 {
		t.Errorf("Expected NaN query to resolve to the first key, got %v", got)
	}
}

type fixedKey struct {
	pos   uint16
	value float64
}

func (k fixedKey) KeyPosition() uint16 { return k.pos }

func TestSampleFixedPointPositions(t *testing.T) {
	s := NewStoreFrom[uint16]([]fixedKey{{65535, 100}, {0, 0}})
	smp := Sampler[uint16, fixedKey, float64]{
		Value: func(k fixedKey) float64 { return k.value },
		Blend: func(b Bracket[fixedKey]) float64 {
			return b.Left.value + (b.Right.value-b.Left.value)*b.Factor()
		},
	}
	if got := smp.Sample(s, 32768); math.Abs(got-50) > 0.01 {
		t.Errorf("Expected ~50 at midpoint, got %v", got)
	}
}

func BenchmarkSample(b *testing.B) {
	keys := make([]testKey, 64)
	for i := range keys {
		keys[i] = testKey{Pos: float64(len(keys) - i), Value: float64(i)}
	}
	s := NewStoreFrom[float64](keys)
	smp := linearSampler(0)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = smp.Sample(s, float64(i%64)+0.5)
	}
}
