package ddmath

import (
	"fmt"
	"math"
	"strings"
)

// EaseFunction selects one of the standard easing curves
type EaseFunction int

const (
	EaseLinear EaseFunction = iota

	EaseSineIn
	EaseSineOut
	EaseSineInOut
	EaseQuadIn
	EaseQuadOut
	EaseQuadInOut
	EaseCubicIn
	EaseCubicOut
	EaseCubicInOut
	EaseQuartIn
	EaseQuartOut
	EaseQuartInOut
	EaseQuintIn
	EaseQuintOut
	EaseQuintInOut
	EaseExpoIn
	EaseExpoOut
	EaseExpoInOut
	EaseCircIn
	EaseCircOut
	EaseCircInOut
	EaseBackIn
	EaseBackOut
	EaseBackInOut
	EaseElasticIn
	EaseElasticOut
	EaseElasticInOut
	EaseBounceIn
	EaseBounceOut
	EaseBounceInOut

	easeCount
)

var easeNames = [easeCount]string{
	"Linear",
	"SineIn", "SineOut", "SineInOut",
	"QuadIn", "QuadOut", "QuadInOut",
	"CubicIn", "CubicOut", "CubicInOut",
	"QuartIn", "QuartOut", "QuartInOut",
	"QuintIn", "QuintOut", "QuintInOut",
	"ExpoIn", "ExpoOut", "ExpoInOut",
	"CircIn", "CircOut", "CircInOut",
	"BackIn", "BackOut", "BackInOut",
	"ElasticIn", "ElasticOut", "ElasticInOut",
	"BounceIn", "BounceOut", "BounceInOut",
}

func (e EaseFunction) String() string {
	if e < 0 || e >= easeCount {
		return fmt.Sprintf("EaseFunction(%d)", int(e))
	}
	return easeNames[e]
}

// ParseEaseFunction resolves a case-insensitive easing name such as "cubicInOut"
func ParseEaseFunction(name string) (EaseFunction, error) {
	for i, n := range easeNames {
		if strings.EqualFold(n, name) {
			return EaseFunction(i), nil
		}
	}
	return EaseLinear, fmt.Errorf("unknown ease function %q", name)
}

// Ease maps x in [0, 1] through the selected curve. Unknown values act as linear.
func Ease(x float32, fn EaseFunction) float32 {
	switch fn {
	case EaseSineIn:
		return 1 - cos(math.Pi/2*x)
	case EaseSineOut:
		return sin(math.Pi / 2 * x)
	case EaseSineInOut:
		return -(cos(math.Pi*x) - 1) / 2

	case EaseQuadIn:
		return x * x
	case EaseQuadOut:
		return 1 - (1-x)*(1-x)
	case EaseQuadInOut:
		if x < 0.5 {
			return 2 * x * x
		}
		p := -2*x + 2
		return 1 - p*p/2

	case EaseCubicIn:
		return x * x * x
	case EaseCubicOut:
		p := 1 - x
		return 1 - p*p*p
	case EaseCubicInOut:
		if x < 0.5 {
			return 4 * x * x * x
		}
		p := -2*x + 2
		return 1 - p*p*p/2

	case EaseQuartIn:
		return x * x * x * x
	case EaseQuartOut:
		p := 1 - x
		return 1 - p*p*p*p
	case EaseQuartInOut:
		if x < 0.5 {
			return 8 * x * x * x * x
		}
		p := -2*x + 2
		return 1 - p*p*p*p/2

	case EaseQuintIn:
		return x * x * x * x * x
	case EaseQuintOut:
		p := 1 - x
		return 1 - p*p*p*p*p
	case EaseQuintInOut:
		if x < 0.5 {
			return 16 * x * x * x * x * x
		}
		p := -2*x + 2
		return 1 - p*p*p*p*p/2

	case EaseExpoIn:
		if x == 0 {
			return 0
		}
		return pow2(10*x - 10)
	case EaseExpoOut:
		if x == 1 {
			return 1
		}
		return 1 - pow2(-10*x)
	case EaseExpoInOut:
		switch {
		case x == 0:
			return 0
		case x == 1:
			return 1
		case x < 0.5:
			return pow2(20*x-10) / 2
		default:
			return (2 - pow2(-20*x+10)) / 2
		}

	case EaseCircIn:
		return 1 - sqrt(1-x*x)
	case EaseCircOut:
		return sqrt(1 - (x-1)*(x-1))
	case EaseCircInOut:
		if x < 0.5 {
			return (1 - sqrt(1-4*x*x)) / 2
		}
		p := -2*x + 2
		return (sqrt(1-p*p) + 1) / 2

	case EaseBackIn:
		return backC3*x*x*x - backC1*x*x
	case EaseBackOut:
		s := x - 1
		return 1 + backC3*s*s*s + backC1*s*s
	case EaseBackInOut:
		if x < 0.5 {
			return 4 * x * x * ((backC2+1)*2*x - backC2) / 2
		}
		s := 2*x - 2
		return (s*s*((backC2+1)*s+backC2) + 2) / 2

	case EaseElasticIn:
		if x == 0 || x == 1 {
			return x
		}
		return -pow2(10*x-10) * sin((x*10-10.75)*elasticC4)
	case EaseElasticOut:
		if x == 0 || x == 1 {
			return x
		}
		return pow2(-10*x)*sin((x*10-0.75)*elasticC4) + 1
	case EaseElasticInOut:
		if x == 0 || x == 1 {
			return x
		}
		s := sin((20*x - 11.125) * elasticC5)
		if x < 0.5 {
			return -(pow2(20*x-10) * s) / 2
		}
		return pow2(-20*x+10)*s/2 + 1

	case EaseBounceIn:
		return 1 - bounceOut(1-x)
	case EaseBounceOut:
		return bounceOut(x)
	case EaseBounceInOut:
		if x < 0.5 {
			return (1 - bounceOut(1-2*x)) / 2
		}
		return (1 + bounceOut(2*x-1)) / 2
	}
	return x
}

const (
	backC1    = 1.70158
	backC2    = backC1 * 1.525
	backC3    = backC1 + 1
	elasticC4 = 2 * math.Pi / 3
	elasticC5 = 2 * math.Pi / 4.5

	bounceN1 = 7.5625
	bounceD1 = 2.75
)

func bounceOut(x float32) float32 {
	switch {
	case x < 1/bounceD1:
		return bounceN1 * x * x
	case x < 2/bounceD1:
		x -= 1.5 / bounceD1
		return bounceN1*x*x + 0.75
	case x < 2.5/bounceD1:
		x -= 2.25 / bounceD1
		return bounceN1*x*x + 0.9375
	default:
		x -= 2.625 / bounceD1
		return bounceN1*x*x + 0.984375
	}
}

func sin(x float32) float32  { return float32(math.Sin(float64(x))) }
func cos(x float32) float32  { return float32(math.Cos(float64(x))) }
func sqrt(x float32) float32 { return float32(math.Sqrt(float64(x))) }
func pow2(x float32) float32 { return float32(math.Exp2(float64(x))) }
