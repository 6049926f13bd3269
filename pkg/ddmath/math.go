package ddmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	Deg2Rad = math.Pi / 180
	Rad2Deg = 180 / math.Pi
)

// Float is the set of floating point types the helpers operate on
type Float interface {
	~float32 | ~float64
}

// Clamp limits v to [low, high]
func Clamp[F Float](v, low, high F) F {
	return max(low, min(v, high))
}

// Saturate clamps v to [0, 1]
func Saturate[F Float](v F) F {
	return Clamp(v, 0, 1)
}

// Lerp interpolates between a and b with t saturated to [0, 1]
func Lerp[F Float](a, b, t F) F {
	return a + (b-a)*Saturate(t)
}

// LerpUnclamped interpolates between a and b without limiting t
func LerpUnclamped[F Float](a, b, t F) F {
	return a + (b-a)*t
}

// InverseLerp returns where value sits between a and b.
// A zero-width range yields 0 instead of dividing by zero.
func InverseLerp[F Float](value, a, b F) F {
	d := b - a
	if d == 0 {
		return 0
	}
	return (value - a) / d
}

// Remap maps value from [inA, inB] into [outA, outB] without clamping
func Remap[F Float](value, inA, inB, outA, outB F) F {
	return LerpUnclamped(outA, outB, InverseLerp(value, inA, inB))
}

// Wrap folds value into [low, high)
func Wrap[F Float](value, low, high F) F {
	d := float64(high - low)
	if d == 0 {
		return low
	}
	r := math.Mod(float64(value-low), d)
	if r < 0 {
		r += d
	}
	return low + F(r)
}

// WrapInt folds value into [low, high)
func WrapInt(value, low, high int) int {
	d := high - low
	if d == 0 {
		return low
	}
	return low + ((value-low)%d+d)%d
}

// SmoothStep returns the Hermite smoothstep of x between edges a and b
func SmoothStep[F Float](a, b, x F) F {
	x = Saturate(InverseLerp(x, a, b))
	return x * x * (3 - 2*x)
}

// Bias applies Schlick's bias curve
func Bias(value, bias float32) float32 {
	return value / ((1/bias-2)*(1-value) + 1)
}

// Gamma raises value to 1/gamma
func Gamma(value, gamma float32) float32 {
	return float32(math.Pow(float64(value), 1/float64(gamma)))
}

// Approximately reports whether a and b are within delta of each other
func Approximately(a, b, delta float32) bool {
	return mgl32.Abs(a-b) <= delta
}

// Saturate32 is the float32 clamp used on hot color paths
func Saturate32(v float32) float32 {
	return mgl32.Clamp(v, 0, 1)
}

// NearlyEqual compares with a tolerance relative to the magnitudes involved
func NearlyEqual(a, b float32) bool {
	return mgl32.FloatEqualThreshold(a, b, 1e-5)
}

// Hermite evaluates the cubic Hermite basis at s in [0, 1] for endpoints
// p0, p1 and already-scaled tangents m0, m1.
func Hermite(p0, m0, p1, m1, s float64) float64 {
	s2 := s * s
	s3 := s2 * s

	return (2*s3-3*s2+1)*p0 +
		(s3-2*s2+s)*m0 +
		(s3-s2)*m1 +
		(-2*s3+3*s2)*p1
}
