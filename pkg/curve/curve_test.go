package curve

import (
	"encoding/json"
	"math"
	"testing"

	"ddcore/pkg/ddmath"
)

func near(a, b float32) bool {
	return ddmath.Approximately(a, b, 1e-4)
}

func TestEmptyAndSingle(t *testing.T) {
	var c Curve
	if got := c.Sample(0.3); got != 0 {
		t.Errorf("Expected 0 for empty curve, got %f", got)
	}

	c.Add(NewKey(2, 7))
	for _, q := range []float32{-10, 2, 10} {
		if got := c.Sample(q); got != 7 {
			t.Errorf("Sample(%f) = %f, want 7", q, got)
		}
	}
}

func TestClampsToEndValues(t *testing.T) {
	c := FromKeys(NewKey(1, 10), NewKey(3, 30))

	if got := c.Sample(0); got != 10 {
		t.Errorf("Expected first value before range, got %f", got)
	}
	if got := c.Sample(99); got != 30 {
		t.Errorf("Expected last value after range, got %f", got)
	}
}

func TestExactHits(t *testing.T) {
	c := FromKeys(NewKey(0, 1), NewKey(0.5, -4), NewKey(1, 9))
	for _, k := range c.Keys() {
		if got := c.Sample(k.Position); got != k.Value {
			t.Errorf("Sample(%f) = %f, want %f", k.Position, got, k.Value)
		}
	}
}

func TestFlatTangentsAreSmoothStep(t *testing.T) {
	c := FromKeys(NewKey(0, 0), NewKey(1, 1))

	if got := c.Sample(0.5); !near(got, 0.5) {
		t.Errorf("Expected 0.5 at the midpoint, got %f", got)
	}
	// 3s^2 - 2s^3 at 0.25
	if got := c.Sample(0.25); !near(got, 0.15625) {
		t.Errorf("Expected 0.15625, got %f", got)
	}
}

func TestLinearCurve(t *testing.T) {
	c := Linear(2, 10, 6, 30)
	for _, q := range []float32{2, 3, 4.5, 6} {
		want := 10 + (q-2)*5
		if got := c.Sample(q); !near(got, want) {
			t.Errorf("Sample(%f) = %f, want %f", q, got, want)
		}
	}

	flat := Linear(1, 3, 1, 8)
	if got := flat.Sample(0.5); got != 8 {
		t.Errorf("Expected degenerate linear to be constant, got %f", got)
	}
}

func TestSegmentLocalParameter(t *testing.T) {
	// Second segment must behave the same as the first, shifted
	c := FromKeys(NewKey(0, 0), NewKey(10, 1), NewKey(20, 0))
	a := c.Sample(2.5)
	b := c.Sample(12.5)
	if !near(a, 1-b) {
		t.Errorf("Expected mirrored segments, got %f and %f", a, b)
	}
}

func TestRawParameter(t *testing.T) {
	c := FromKeys(NewKey(0, 0), NewKey(10, 1))
	c.RawParameter = true

	// The raw query is fed into the basis directly, so 0.5 lands where a
	// normalized curve would be at its midpoint.
	if got := c.Sample(0.5); !near(got, 0.5) {
		t.Errorf("Expected raw parameter evaluation 0.5, got %f", got)
	}

	c.RawParameter = false
	if got := c.Sample(0.5); near(got, 0.5) {
		t.Errorf("Expected normalized evaluation to differ, got %f", got)
	}
}

func TestDedupAndNaN(t *testing.T) {
	c := New()
	c.Add(NewKey(1, 5), NewKey(float32(math.NaN()), 100), NewKey(1, 6), NewKey(0, 0))

	keys := c.Keys()
	if len(keys) != 2 {
		t.Fatalf("Expected 2 keys, got %v", keys)
	}
	if keys[1].Value != 6 {
		t.Errorf("Expected last written value 6, got %f", keys[1].Value)
	}
	if got := c.Sample(float32(math.NaN())); got != 0 {
		t.Errorf("Expected NaN query to resolve to the first key, got %f", got)
	}
}

func TestRange(t *testing.T) {
	c := New()
	if _, _, ok := c.Range(); ok {
		t.Errorf("Expected no range for empty curve")
	}
	c.Add(NewKey(4, 0), NewKey(-1, 0))
	start, end, ok := c.Range()
	if !ok || start != -1 || end != 4 {
		t.Errorf("Unexpected range %f..%f", start, end)
	}
}

func TestBounds(t *testing.T) {
	lo, hi := Constant(2).Bounds(8)
	if !(lo < 2 && hi > 2) {
		t.Errorf("Expected padded bounds around 2, got %f..%f", lo, hi)
	}

	// Overshooting tangents push the peak above both key values
	c := FromKeys(Key{Position: 0, Value: 0, OutTangent: 4}, NewKey(1, 1))
	_, hi = c.Bounds(64)
	if hi <= 1 {
		t.Errorf("Expected overshoot above 1, got %f", hi)
	}

	if lo, hi := New().Bounds(4); lo != -1 || hi != 1 {
		t.Errorf("Expected default bounds for an empty curve, got %f..%f", lo, hi)
	}
}

func TestSampleEased(t *testing.T) {
	c := Linear(0, 0, 1, 1)
	if got := c.SampleEased(0.5, ddmath.EaseQuadIn); !near(got, 0.25) {
		t.Errorf("Expected eased sample 0.25, got %f", got)
	}
	if got := c.SampleEased(2, ddmath.EaseLinear); got != 1 {
		t.Errorf("Expected clamped input, got %f", got)
	}
}

func TestCloneIndependent(t *testing.T) {
	c := FromKeys(NewKey(0, 1))
	c.RawParameter = true
	d := c.Clone()
	d.Add(NewKey(1, 2))

	if c.Len() != 1 || d.Len() != 2 || !d.RawParameter {
		t.Errorf("Clone shares state with its source")
	}
}

func TestJSON(t *testing.T) {
	c := FromKeys(Key{Position: 1, Value: 2, InTangent: 0.5, OutTangent: -0.5}, NewKey(0, 0))

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"Keys":[{"Position":0,"Value":0,"InTangent":0,"OutTangent":0},{"Position":1,"Value":2,"InTangent":0.5,"OutTangent":-0.5}]}`
	if string(data) != want {
		t.Errorf("Unexpected JSON\n got %s\nwant %s", data, want)
	}

	var back Curve
	if err := json.Unmarshal([]byte(`{"Keys":[{"Position":3,"Value":1},{"Position":1,"Value":9}]}`), &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.store().Dirty() {
		t.Errorf("Expected decoded curve to defer ordering")
	}
	if got := back.Sample(0); got != 9 {
		t.Errorf("Expected lowest key first after decode, got %f", got)
	}

	empty, _ := json.Marshal(New())
	if string(empty) != `{"Keys":[]}` {
		t.Errorf("Expected empty key list, got %s", empty)
	}

	if err := json.Unmarshal([]byte(`{"Keys":"nope"}`), &back); err == nil {
		t.Errorf("Expected error for malformed keys")
	}
}

func BenchmarkSample(b *testing.B) {
	c := New()
	for i := 0; i < 32; i++ {
		c.Add(Key{Position: float32(i), Value: float32(i % 5), InTangent: 1, OutTangent: -1})
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Sample(float32(i%3100) / 100)
	}
}
