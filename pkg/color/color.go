// Package color holds the engine's two color representations: the packed
// 8-bit Color32 used by gradients and textures, and the float Color used by
// shaders. Conversions between them are explicit.
package color

import (
	"encoding/json"
	"fmt"
	"math"

	"ddcore/pkg/ddmath"

	"github.com/go-gl/mathgl/mgl32"
)

// Color32 is an 8-bit per channel RGBA color
type Color32 struct {
	R, G, B, A uint8
}

// Color is a float per channel RGBA color, nominally in [0, 1]
type Color struct {
	R, G, B, A float32
}

// RGB returns an opaque Color32
func RGB(r, g, b uint8) Color32 {
	return Color32{R: r, G: g, B: b, A: 255}
}

// RGBA returns a Color32 with explicit alpha
func RGBA(r, g, b, a uint8) Color32 {
	return Color32{R: r, G: g, B: b, A: a}
}

// FromPacked unpacks a 32-bit value laid out with R in the low byte and A in the high byte
func FromPacked(v uint32) Color32 {
	return Color32{
		R: uint8(v),
		G: uint8(v >> 8),
		B: uint8(v >> 16),
		A: uint8(v >> 24),
	}
}

// Packed returns the 32-bit layout read by FromPacked
func (c Color32) Packed() uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24
}

// RGBA implements image/color.Color
func (c Color32) RGBA() (r, g, b, a uint32) {
	// image/color expects alpha-premultiplied 16-bit channels
	a = uint32(c.A)
	a |= a << 8
	r = uint32(c.R) * a / 0xff
	g = uint32(c.G) * a / 0xff
	b = uint32(c.B) * a / 0xff
	return r, g, b, a
}

// Grayscale returns the luma of c in all three channels, alpha unchanged
func (c Color32) Grayscale() Color32 {
	y := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	l := uint8(math.Round(y))
	return Color32{R: l, G: l, B: l, A: c.A}
}

// Hex formats c as #rrggbbaa
func (c Color32) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c Color32) String() string {
	return fmt.Sprintf("Color32(R: %02X, G: %02X, B: %02X, A: %02X)", c.R, c.G, c.B, c.A)
}

// MarshalJSON writes the packed value as a signed 32-bit integer
func (c Color32) MarshalJSON() ([]byte, error) {
	return json.Marshal(int32(c.Packed()))
}

// UnmarshalJSON accepts a packed integer in either signed or unsigned 32-bit range
func (c *Color32) UnmarshalJSON(data []byte) error {
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("color must be a packed integer: %w", err)
	}
	if v < math.MinInt32 || v > math.MaxUint32 {
		return fmt.Errorf("packed color %d out of 32-bit range", v)
	}
	*c = FromPacked(uint32(v))
	return nil
}

// ToColor converts to float channels by dividing by 255
func ToColor(c Color32) Color {
	return Color{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

// ToColor32 saturates each channel, scales by 255 and rounds
func ToColor32(c Color) Color32 {
	return Color32{
		R: channelToByte(c.R),
		G: channelToByte(c.G),
		B: channelToByte(c.B),
		A: channelToByte(c.A),
	}
}

func channelToByte(v float32) uint8 {
	if math.IsNaN(float64(v)) {
		return 0
	}
	return uint8(math.Round(float64(ddmath.Saturate32(v)) * 255))
}

// Vec4 returns the color as a shader-ready vector
func (c Color) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{c.R, c.G, c.B, c.A}
}

// Vec3 drops alpha
func (c Color) Vec3() mgl32.Vec3 {
	return c.Vec4().Vec3()
}

// FromVec4 builds a Color from an RGBA vector
func FromVec4(v mgl32.Vec4) Color {
	return Color{R: v[0], G: v[1], B: v[2], A: v[3]}
}

func (c Color) String() string {
	return fmt.Sprintf("Color(R: %g, G: %g, B: %g, A: %g)", c.R, c.G, c.B, c.A)
}

// Lerp32 blends a toward b per channel in raw channel space, rounding to the
// nearest byte. t is saturated; no gamma correction is applied.
func Lerp32(a, b Color32, t float32) Color32 {
	t = ddmath.Saturate32(t)
	return Color32{
		R: lerpByte(a.R, b.R, t),
		G: lerpByte(a.G, b.G, t),
		B: lerpByte(a.B, b.B, t),
		A: lerpByte(a.A, b.A, t),
	}
}

func lerpByte(a, b uint8, t float32) uint8 {
	return uint8(math.Round(float64(ddmath.LerpUnclamped(float32(a), float32(b), t))))
}

// Lerp blends float colors with t saturated
func Lerp(a, b Color, t float32) Color {
	return FromVec4(a.Vec4().Add(b.Vec4().Sub(a.Vec4()).Mul(ddmath.Saturate32(t))))
}
