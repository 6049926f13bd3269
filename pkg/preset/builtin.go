package preset

import (
	"slices"

	"ddcore/pkg/color"
	"ddcore/pkg/curve"
	"ddcore/pkg/gradient"
)

type gradientFactory func() *gradient.Gradient
type curveFactory func() *curve.Curve

var builtinGradients = map[string]gradientFactory{
	"rainbow": func() *gradient.Gradient {
		g := gradient.FromKeys(
			gradient.KeyAt(color.Red, gradient.Interpolation, 0),
			gradient.KeyAt(color.Yellow, gradient.Interpolation, 1.0/6),
			gradient.KeyAt(color.Green, gradient.Interpolation, 2.0/6),
			gradient.KeyAt(color.Cyan, gradient.Interpolation, 3.0/6),
			gradient.KeyAt(color.Blue, gradient.Interpolation, 4.0/6),
			gradient.KeyAt(color.Magenta, gradient.Interpolation, 5.0/6),
		)
		g.Wrapping = true
		return g
	},
	"heat": func() *gradient.Gradient {
		return gradient.FromKeys(
			gradient.KeyAt(color.Black, gradient.Interpolation, 0),
			gradient.KeyAt(color.DarkRed, gradient.Interpolation, 0.3),
			gradient.KeyAt(color.OrangeRed, gradient.Interpolation, 0.55),
			gradient.KeyAt(color.Gold, gradient.Interpolation, 0.8),
			gradient.KeyAt(color.White, gradient.Interpolation, 1),
		)
	},
	"sunset": func() *gradient.Gradient {
		return gradient.FromKeys(
			gradient.KeyAt(color.Indigo, gradient.Interpolation, 0),
			gradient.KeyAt(color.Crimson, gradient.Interpolation, 0.45),
			gradient.KeyAt(color.DarkOrange, gradient.Interpolation, 0.75),
			gradient.KeyAt(color.Gold, gradient.Interpolation, 1),
		)
	},
	"ocean": func() *gradient.Gradient {
		return gradient.FromKeys(
			gradient.KeyAt(color.RGB(2, 12, 40), gradient.Interpolation, 0),
			gradient.KeyAt(color.RoyalBlue, gradient.Interpolation, 0.5),
			gradient.KeyAt(color.DarkTurq, gradient.Interpolation, 0.85),
			gradient.KeyAt(color.WhiteSmoke, gradient.Interpolation, 1),
		)
	},
	"traffic": func() *gradient.Gradient {
		return gradient.FromKeys(
			gradient.KeyAt(color.ForestGreen, gradient.Fixed, 0),
			gradient.KeyAt(color.Gold, gradient.Fixed, 0.5),
			gradient.KeyAt(color.Crimson, gradient.Fixed, 0.8),
		)
	},
}

var builtinCurves = map[string]curveFactory{
	"linear": func() *curve.Curve {
		return curve.Linear(0, 0, 1, 1)
	},
	"smooth": func() *curve.Curve {
		return curve.FromKeys(curve.NewKey(0, 0), curve.NewKey(1, 1))
	},
	"pluck": func() *curve.Curve {
		return curve.FromKeys(
			curve.Key{Position: 0, Value: 0, OutTangent: 40},
			curve.Key{Position: 0.02, Value: 1},
			curve.Key{Position: 1, Value: 0, InTangent: -0.2},
		)
	},
	"swell": func() *curve.Curve {
		return curve.FromKeys(
			curve.NewKey(0, 0),
			curve.Key{Position: 0.6, Value: 1, InTangent: 2, OutTangent: 0},
			curve.NewKey(1, 0),
		)
	},
	"tremolo": func() *curve.Curve {
		c := curve.NewWithCapacity(17)
		for i := 0; i <= 16; i++ {
			v := float32(0.35)
			if i%2 == 1 {
				v = 1
			}
			c.Add(curve.NewKey(float32(i)/16, v))
		}
		return c
	},
}

// BuiltinGradient returns a fresh copy of a compiled-in gradient
func BuiltinGradient(name string) (*gradient.Gradient, bool) {
	f, ok := builtinGradients[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

// BuiltinCurve returns a fresh copy of a compiled-in curve
func BuiltinCurve(name string) (*curve.Curve, bool) {
	f, ok := builtinCurves[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

func BuiltinGradientNames() []string {
	return sortedKeys(builtinGradients)
}

func BuiltinCurveNames() []string {
	return sortedKeys(builtinCurves)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// InstallBuiltins writes every compiled-in preset under the loader's root
func InstallBuiltins(l *Loader) error {
	for _, name := range BuiltinGradientNames() {
		g, _ := BuiltinGradient(name)
		if err := l.SaveGradient(name, g); err != nil {
			return err
		}
	}
	for _, name := range BuiltinCurveNames() {
		c, _ := BuiltinCurve(name)
		if err := l.SaveCurve(name, c); err != nil {
			return err
		}
	}
	return nil
}

// Gradient resolves name from disk first, then from the builtins
func (l *Loader) Gradient(name string) (*gradient.Gradient, error) {
	g, err := l.LoadGradient(name)
	if err == nil {
		return g, nil
	}
	if b, ok := BuiltinGradient(name); ok {
		return b, nil
	}
	return nil, err
}

// Curve resolves name from disk first, then from the builtins
func (l *Loader) Curve(name string) (*curve.Curve, error) {
	c, err := l.LoadCurve(name)
	if err == nil {
		return c, nil
	}
	if b, ok := BuiltinCurve(name); ok {
		return b, nil
	}
	return nil, err
}

// AllGradientNames lists gradients on disk and builtin, sorted and without
// duplicates
func (l *Loader) AllGradientNames() ([]string, error) {
	names, err := l.Gradients()
	if err != nil {
		return nil, err
	}
	return mergeNames(names, BuiltinGradientNames()), nil
}

// AllCurveNames lists curves on disk and builtin, sorted and without
// duplicates
func (l *Loader) AllCurveNames() ([]string, error) {
	names, err := l.Curves()
	if err != nil {
		return nil, err
	}
	return mergeNames(names, BuiltinCurveNames()), nil
}

func mergeNames(a, b []string) []string {
	out := slices.Concat(a, b)
	slices.Sort(out)
	return slices.Compact(out)
}
