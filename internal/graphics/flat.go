package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Flat draws untextured, single-color geometry given in pixel coordinates
type Flat struct {
	shader *Shader
	vao    uint32
	vbo    uint32
}

func NewFlat() (*Flat, error) {
	shader, err := NewShader(Shaders, "flat.vert", "flat.frag")
	if err != nil {
		return nil, err
	}

	f := &Flat{shader: shader}
	gl.GenVertexArrays(1, &f.vao)
	gl.GenBuffers(1, &f.vbo)
	gl.BindVertexArray(f.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, f.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return f, nil
}

// Triangles draws verts (x, y pairs) as a triangle list
func (f *Flat) Triangles(proj mgl32.Mat4, verts []float32, color mgl32.Vec4) {
	f.draw(gl.TRIANGLES, proj, verts, color)
}

// LineStrip draws verts (x, y pairs) as a connected polyline
func (f *Flat) LineStrip(proj mgl32.Mat4, verts []float32, color mgl32.Vec4) {
	f.draw(gl.LINE_STRIP, proj, verts, color)
}

// Lines draws verts (x, y pairs) as independent segments
func (f *Flat) Lines(proj mgl32.Mat4, verts []float32, color mgl32.Vec4) {
	f.draw(gl.LINES, proj, verts, color)
}

func (f *Flat) draw(mode uint32, proj mgl32.Mat4, verts []float32, color mgl32.Vec4) {
	if len(verts) < 4 {
		return
	}

	f.shader.Use()
	f.shader.SetMatrix4("proj", proj)
	f.shader.SetVector4("color", color)

	if color.W() < 1 {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		defer gl.Disable(gl.BLEND)
	}

	gl.BindVertexArray(f.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, f.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.DYNAMIC_DRAW)
	gl.DrawArrays(mode, 0, int32(len(verts)/2))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

func (f *Flat) Dispose() {
	if f.vao != 0 {
		gl.DeleteVertexArrays(1, &f.vao)
	}
	if f.vbo != 0 {
		gl.DeleteBuffers(1, &f.vbo)
	}
	f.shader.Delete()
}

// AppendRect appends the two triangles covering a pixel rectangle
func AppendRect(dst []float32, x, y, w, h float32) []float32 {
	return append(dst,
		x, y,
		x+w, y,
		x+w, y+h,
		x, y,
		x+w, y+h,
		x, y+h,
	)
}

// AppendTriangle appends a marker triangle whose tip points up at (x, y)
func AppendTriangle(dst []float32, x, y, size float32) []float32 {
	return append(dst,
		x, y,
		x+size, y+size,
		x-size, y+size,
	)
}
