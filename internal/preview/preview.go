// Package preview holds the preset selection and display modifiers shared
// by the window and terminal front ends.
package preview

import (
	"fmt"
	"slices"
	"strings"

	"ddcore/internal/config"
	"ddcore/pkg/color"
	"ddcore/pkg/curve"
	"ddcore/pkg/gradient"
	"ddcore/pkg/preset"
)

// Preview tracks the selected gradient and curve and derives the displayed
// gradient from the active modifiers.
type Preview struct {
	loader *preset.Loader

	gradientNames []string
	curveNames    []string
	gradientIndex int
	curveIndex    int

	Wrapping     bool
	Inverted     bool
	Gray         bool
	RawParameter bool
	Markers      bool

	source   *gradient.Gradient
	gradient *gradient.Gradient
	curve    *curve.Curve
}

// New lists every gradient and curve the loader can resolve, on disk
// or builtin, and selects the first of each.
func New(l *preset.Loader) (*Preview, error) {
	gradients, err := l.AllGradientNames()
	if err != nil {
		return nil, fmt.Errorf("could not list gradients: %w", err)
	}
	curves, err := l.AllCurveNames()
	if err != nil {
		return nil, fmt.Errorf("could not list curves: %w", err)
	}

	p := &Preview{
		loader:        l,
		gradientNames: gradients,
		curveNames:    curves,
		Markers:       config.GetMarkers(),
	}
	if err := p.loadGradient(); err != nil {
		return nil, err
	}
	if err := p.loadCurve(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Preview) loadGradient() error {
	name := p.GradientName()
	g, err := p.loader.Gradient(name)
	if err != nil {
		return err
	}
	p.source = g
	p.Wrapping = g.Wrapping || config.GetWrapping()
	p.rebuild()
	return nil
}

func (p *Preview) loadCurve() error {
	c, err := p.loader.Curve(p.CurveName())
	if err != nil {
		return err
	}
	c.RawParameter = p.RawParameter
	p.curve = c
	return nil
}

// rebuild derives the displayed gradient from the loaded one
func (p *Preview) rebuild() {
	g := p.source
	if p.Inverted {
		g = g.Inverse()
	}
	if p.Gray {
		g = g.Grayscale()
	}
	if g == p.source {
		g = g.Clone()
	}
	g.Wrapping = p.Wrapping
	p.gradient = g
}

func (p *Preview) GradientName() string { return p.gradientNames[p.gradientIndex] }
func (p *Preview) CurveName() string    { return p.curveNames[p.curveIndex] }

func (p *Preview) Gradient() *gradient.Gradient { return p.gradient }
func (p *Preview) Curve() *curve.Curve          { return p.curve }

// CycleGradient moves the selection by step, wrapping around the list
func (p *Preview) CycleGradient(step int) error {
	p.gradientIndex = cycle(p.gradientIndex, step, len(p.gradientNames))
	return p.loadGradient()
}

// CycleCurve moves the selection by step, wrapping around the list
func (p *Preview) CycleCurve(step int) error {
	p.curveIndex = cycle(p.curveIndex, step, len(p.curveNames))
	return p.loadCurve()
}

func cycle(i, step, n int) int {
	return ((i+step)%n + n) % n
}

// Select jumps to a named gradient
func (p *Preview) Select(name string) error {
	i := slices.Index(p.gradientNames, name)
	if i < 0 {
		return fmt.Errorf("could not select gradient '%s': %w", name, preset.ErrNotFound)
	}
	p.gradientIndex = i
	return p.loadGradient()
}

// SelectCurve jumps to a named curve
func (p *Preview) SelectCurve(name string) error {
	i := slices.Index(p.curveNames, name)
	if i < 0 {
		return fmt.Errorf("could not select curve '%s': %w", name, preset.ErrNotFound)
	}
	p.curveIndex = i
	return p.loadCurve()
}

func (p *Preview) ToggleWrap() {
	p.Wrapping = !p.Wrapping
	p.rebuild()
}

func (p *Preview) ToggleInvert() {
	p.Inverted = !p.Inverted
	p.rebuild()
}

func (p *Preview) ToggleGray() {
	p.Gray = !p.Gray
	p.rebuild()
}

func (p *Preview) ToggleRaw() {
	p.RawParameter = !p.RawParameter
	p.curve.RawParameter = p.RawParameter
}

// Reload drops cached presets and reads the current selection again
func (p *Preview) Reload() error {
	p.loader.Forget()
	if err := p.loadGradient(); err != nil {
		return err
	}
	return p.loadCurve()
}

// DerivedName is the gradient name with a suffix per active modifier
func (p *Preview) DerivedName() string {
	name := p.GradientName()
	if p.Inverted {
		name += "-inverse"
	}
	if p.Gray {
		name += "-gray"
	}
	if p.Wrapping != p.source.Wrapping {
		if p.Wrapping {
			name += "-wrap"
		} else {
			name += "-clamp"
		}
	}
	return name
}

// Save writes the displayed gradient under DerivedName and returns it
func (p *Preview) Save() (string, error) {
	name := p.DerivedName()
	if err := p.loader.SaveGradient(name, p.gradient); err != nil {
		return "", err
	}
	if !slices.Contains(p.gradientNames, name) {
		current := p.GradientName()
		p.gradientNames = append(p.gradientNames, name)
		slices.Sort(p.gradientNames)
		p.gradientIndex = slices.Index(p.gradientNames, current)
	}
	return name, nil
}

// RampKey identifies the displayed gradient for texture caching
func (p *Preview) RampKey() string {
	return fmt.Sprintf("%s/w%t/i%t/g%t", p.GradientName(), p.Wrapping, p.Inverted, p.Gray)
}

// Sample returns the displayed color at normalized t
func (p *Preview) Sample(t float32) color.Color32 {
	return p.gradient.SampleNormalized(t)
}

// Summary describes the selection on one line
func (p *Preview) Summary() string {
	var mods []string
	for _, m := range []struct {
		on   bool
		name string
	}{
		{p.Wrapping, "wrap"},
		{p.Inverted, "inverse"},
		{p.Gray, "gray"},
		{p.RawParameter, "raw"},
	} {
		if m.on {
			mods = append(mods, m.name)
		}
	}
	if len(mods) == 0 {
		mods = append(mods, "plain")
	}

	return fmt.Sprintf("gradient %s (%d keys)  curve %s (%d keys)  [%s]",
		p.GradientName(), p.gradient.Len(), p.CurveName(), p.curve.Len(), strings.Join(mods, " "))
}
