package graphics

import "github.com/go-gl/mathgl/mgl32"

// Camera maps window pixels, top-left origin, to clip space
type Camera struct {
	Width  int
	Height int
}

func NewCamera(width, height int) *Camera {
	return &Camera{Width: width, Height: height}
}

func (c *Camera) SetViewport(width, height int) {
	c.Width, c.Height = max(width, 1), max(height, 1)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Ortho2D(0, float32(c.Width), float32(c.Height), 0)
}

// ToClip projects a pixel coordinate, mostly useful for tests and picking
func (c *Camera) ToClip(x, y float32) mgl32.Vec2 {
	v := c.GetProjectionMatrix().Mul4x1(mgl32.Vec4{x, y, 0, 1})
	return mgl32.Vec2{v[0], v[1]}
}
