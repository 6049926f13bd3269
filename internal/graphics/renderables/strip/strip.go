// Package strip draws the current gradient as a textured band across the
// top of the preview window.
package strip

import (
	"fmt"
	"image"

	"ddcore/internal/config"
	"ddcore/internal/graphics"
	renderer "ddcore/internal/graphics/renderer"
	"ddcore/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const checkerSize = 8

var (
	checkerLight = mgl32.Vec4{0.8, 0.8, 0.8, 1}
	checkerDark  = mgl32.Vec4{0.55, 0.55, 0.55, 1}
)

// Strip implements gradient strip rendering
type Strip struct {
	shader   *graphics.Shader
	flat     *graphics.Flat
	textures *graphics.TextureCache
	vao      uint32
	vbo      uint32

	checker []float32
	rect    renderer.Rect
}

func NewStrip() *Strip {
	return &Strip{textures: graphics.NewTextureCache()}
}

func (s *Strip) Init() error {
	var err error
	s.shader, err = graphics.NewShader(graphics.Shaders, "strip.vert", "strip.frag")
	if err != nil {
		return err
	}
	s.flat, err = graphics.NewFlat()
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 6*4*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return nil
}

// TextureKey names the baked texture for a ramp at the current resolution
func TextureKey(ramp string) string {
	return fmt.Sprintf("%s@%d", ramp, config.GetBakeResolution())
}

func (s *Strip) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderStrip")()

	if ctx.Layout.Strip != s.rect {
		s.rebuild(ctx.Layout.Strip)
	}

	// checkerboard shows through translucent keys
	s.flat.Triangles(ctx.Proj, s.checker[:len(s.checker)/2], checkerLight)
	s.flat.Triangles(ctx.Proj, s.checker[len(s.checker)/2:], checkerDark)

	if ctx.Gradient == nil {
		return
	}
	tex := s.textures.Get(TextureKey(ctx.RampKey), func() *image.RGBA {
		defer profiling.Track("gradient.BakeImage")()
		return ctx.Gradient.BakeImage(config.GetBakeResolution(), 1)
	})

	s.shader.Use()
	s.shader.SetMatrix4("proj", ctx.Proj)
	s.shader.SetInt("ramp", 0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.Disable(gl.BLEND)
}

// rebuild uploads the quad and recomputes the checkerboard for r
func (s *Strip) rebuild(r renderer.Rect) {
	s.rect = r

	x0, y0, x1, y1 := r.X, r.Y, r.X+r.W, r.Y+r.H
	quad := []float32{
		x0, y0, 0, 0,
		x1, y0, 1, 0,
		x1, y1, 1, 1,
		x0, y0, 0, 0,
		x1, y1, 1, 1,
		x0, y1, 0, 1,
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(quad)*4, gl.Ptr(quad))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	s.checker = Checker(r, checkerSize)
}

// Checker returns the light cells followed by the dark cells of a
// checkerboard covering r, each half the same length.
func Checker(r renderer.Rect, cell float32) []float32 {
	var light, dark []float32
	for y, row := r.Y, 0; y < r.Y+r.H; y, row = y+cell, row+1 {
		h := min(cell, r.Y+r.H-y)
		for x, col := r.X, 0; x < r.X+r.W; x, col = x+cell, col+1 {
			w := min(cell, r.X+r.W-x)
			if (row+col)%2 == 0 {
				light = graphics.AppendRect(light, x, y, w, h)
			} else {
				dark = graphics.AppendRect(dark, x, y, w, h)
			}
		}
	}
	// pad so both halves line up
	for len(dark) < len(light) {
		dark = graphics.AppendRect(dark, r.X, r.Y, 0, 0)
	}
	for len(light) < len(dark) {
		light = graphics.AppendRect(light, r.X, r.Y, 0, 0)
	}
	return append(light, dark...)
}

func (s *Strip) Dispose() {
	s.textures.Clear()
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
	}
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
	}
	if s.flat != nil {
		s.flat.Dispose()
	}
	if s.shader != nil {
		s.shader.Delete()
	}
}

func (s *Strip) SetViewport(width, height int) {}
