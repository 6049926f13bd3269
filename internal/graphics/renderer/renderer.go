package renderer

import (
	"ddcore/internal/config"
	"ddcore/internal/graphics"
	"ddcore/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
}

// NewRenderer configures GL for 2D drawing and initializes rs in order
func NewRenderer(width, height int, rs ...Renderable) (*Renderer, error) {
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	r := &Renderer{
		renderables: rs,
		camera:      graphics.NewCamera(width, height),
	}

	for i, rb := range rs {
		if err := rb.Init(); err != nil {
			// Dispose whatever already holds GL resources
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, err
		}
		rb.SetViewport(width, height)
	}

	return r, nil
}

// Render clears the frame and draws every renderable in order
func (r *Renderer) Render(frame Frame, dt float64) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(0.09, 0.09, 0.11, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	ctx := RenderContext{
		Frame:  frame,
		Camera: r.camera,
		Layout: ComputeLayout(r.camera.Width, r.camera.Height, config.GetStripHeight()),
		DT:     dt,
		Proj:   r.camera.GetProjectionMatrix(),
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Layout returns the current window layout, used for mouse picking
func (r *Renderer) Layout() Layout {
	return ComputeLayout(r.camera.Width, r.camera.Height, config.GetStripHeight())
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

func (r *Renderer) GetCamera() *graphics.Camera {
	return r.camera
}

// UpdateViewport resizes the GL viewport, the camera and every renderable
func (r *Renderer) UpdateViewport(width, height int) {
	r.camera.SetViewport(width, height)
	gl.Viewport(0, 0, int32(width), int32(height))
	for _, rb := range r.renderables {
		rb.SetViewport(width, height)
	}
}
