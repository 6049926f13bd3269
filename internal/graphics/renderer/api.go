package renderer

import (
	"ddcore/internal/graphics"
	"ddcore/pkg/curve"
	"ddcore/pkg/gradient"

	"github.com/go-gl/mathgl/mgl32"
)

// Frame is the scene state the preview hands to the renderer each tick
type Frame struct {
	Gradient *gradient.Gradient
	// RampKey identifies the gradient and its modifiers; renderables cache
	// baked textures under it.
	RampKey string
	Curve   *curve.Curve
	// Cursor is the normalized strip position under the mouse, or negative
	Cursor  float32
	Markers bool
	Status  []string
}

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Frame
	Camera *graphics.Camera
	Layout Layout
	DT     float64
	Proj   mgl32.Mat4
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
