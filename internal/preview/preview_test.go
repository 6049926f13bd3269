package preview

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"ddcore/pkg/color"
	"ddcore/pkg/gradient"
	"ddcore/pkg/preset"
)

func newTestPreview(t *testing.T) (*Preview, *preset.Loader) {
	t.Helper()
	l := preset.NewLoader(t.TempDir())
	if err := l.SaveGradient("aaa-mono", gradient.FromKeys(
		gradient.NewKey(color.Red, 0),
		gradient.NewKey(color.Blue, gradient.MaxPosition),
	)); err != nil {
		t.Fatal(err)
	}
	p, err := New(l)
	if err != nil {
		t.Fatalf("Failed to create preview: %v", err)
	}
	return p, l
}

func TestPreviewListsDiskAndBuiltins(t *testing.T) {
	p, _ := newTestPreview(t)

	if p.GradientName() != "aaa-mono" {
		t.Errorf("Expected disk preset first, got %s", p.GradientName())
	}
	if !slices.Contains(p.gradientNames, "rainbow") {
		t.Errorf("Expected builtin gradients in the list")
	}
	if p.CurveName() != "linear" {
		t.Errorf("Expected first builtin curve, got %s", p.CurveName())
	}
}

func TestPreviewCycle(t *testing.T) {
	p, _ := newTestPreview(t)
	n := len(p.gradientNames)

	if err := p.CycleGradient(-1); err != nil {
		t.Fatal(err)
	}
	if p.GradientName() != p.gradientNames[n-1] {
		t.Errorf("Expected wrap to the last gradient, got %s", p.GradientName())
	}
	if err := p.CycleGradient(1); err != nil {
		t.Fatal(err)
	}
	if p.GradientName() != "aaa-mono" {
		t.Errorf("Expected wrap back to the first, got %s", p.GradientName())
	}

	if err := p.CycleCurve(2); err != nil {
		t.Fatal(err)
	}
	if p.CurveName() != "smooth" {
		t.Errorf("Expected smooth, got %s", p.CurveName())
	}
}

func TestPreviewModifiers(t *testing.T) {
	p, _ := newTestPreview(t)

	p.ToggleInvert()
	if got := p.Sample(0); got != color.Blue {
		t.Errorf("Expected blue at the start once inverted, got %v", got)
	}
	p.ToggleGray()
	if got := p.Sample(0); got != color.Blue.Grayscale() {
		t.Errorf("Expected gray blue, got %v", got)
	}
	p.ToggleWrap()
	if !p.Gradient().Wrapping {
		t.Errorf("Expected wrapping")
	}
	if p.DerivedName() != "aaa-mono-inverse-gray-wrap" {
		t.Errorf("Unexpected derived name %s", p.DerivedName())
	}

	key := p.RampKey()
	p.ToggleInvert()
	if p.RampKey() == key {
		t.Errorf("Expected the ramp key to change with modifiers")
	}
	if got := p.Sample(0); got != color.Red.Grayscale() {
		t.Errorf("Expected gray red after undoing invert, got %v", got)
	}
}

func TestPreviewModifiersLeaveSource(t *testing.T) {
	p, l := newTestPreview(t)
	p.ToggleWrap()

	g, err := l.Gradient("aaa-mono")
	if err != nil {
		t.Fatal(err)
	}
	if g.Wrapping {
		t.Errorf("Expected the cached preset to stay untouched")
	}
	if p.source.Wrapping {
		t.Errorf("Expected the loaded preset to stay untouched")
	}
}

func TestPreviewRaw(t *testing.T) {
	p, _ := newTestPreview(t)
	p.ToggleRaw()
	if !p.Curve().RawParameter {
		t.Errorf("Expected raw parameter on the curve")
	}
	if err := p.CycleCurve(1); err != nil {
		t.Fatal(err)
	}
	if !p.Curve().RawParameter {
		t.Errorf("Expected raw parameter to survive a curve switch")
	}
}

func TestPreviewSelectAndSave(t *testing.T) {
	p, l := newTestPreview(t)

	err := p.Select("missing")
	if !errors.Is(err, preset.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if err := p.Select("traffic"); err != nil {
		t.Fatal(err)
	}
	p.ToggleInvert()

	name, err := p.Save()
	if err != nil {
		t.Fatalf("Failed to save: %v", err)
	}
	if name != "traffic-inverse" || p.GradientName() != "traffic" {
		t.Errorf("Unexpected names %s, %s", name, p.GradientName())
	}
	saved, err := l.LoadGradient(name)
	if err != nil {
		t.Fatalf("Failed to reload saved gradient: %v", err)
	}
	if saved.Len() != 3 || saved.Sample(gradient.MaxPosition) != color.ForestGreen {
		t.Errorf("Unexpected saved gradient %v", saved.Keys())
	}
	if !slices.Contains(p.gradientNames, name) {
		t.Errorf("Expected the saved name in the list")
	}
}

func TestPreviewSummary(t *testing.T) {
	p, _ := newTestPreview(t)
	if want := "gradient aaa-mono (2 keys)  curve linear (2 keys)  [plain]"; p.Summary() != want {
		t.Errorf("Expected %q, got %q", want, p.Summary())
	}
	p.ToggleRaw()
	if !strings.HasSuffix(p.Summary(), "[raw]") {
		t.Errorf("Expected raw modifier, got %q", p.Summary())
	}
}

func TestCycle(t *testing.T) {
	for _, c := range []struct{ i, step, n, want int }{
		{0, -1, 3, 2},
		{2, 1, 3, 0},
		{1, -7, 3, 0},
	} {
		if got := cycle(c.i, c.step, c.n); got != c.want {
			t.Errorf("cycle(%d, %d, %d) = %d, expected %d", c.i, c.step, c.n, got, c.want)
		}
	}
}
