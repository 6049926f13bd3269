package graphics

import (
	"errors"
	"image"
	"image/draw"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	atlasWidth   = 256
	atlasPadding = 1
	firstGlyph   = rune(32)
	lastGlyph    = rune(126)
)

// Glyph locates one character inside the atlas and carries its metrics,
// all in pixels.
type Glyph struct {
	AtlasX, AtlasY float32
	Width, Height  float32
	BearingX       float32
	BearingY       float32
	Advance        float32
}

// FontAtlas is a single-channel glyph sheet for printable ASCII
type FontAtlas struct {
	Image  *image.Alpha
	Glyphs map[rune]Glyph
	Height int // line height
}

// PackAtlas rasterizes printable ASCII from face into rows of a fixed-width
// sheet. It touches no GL state.
func PackAtlas(face font.Face) *FontAtlas {
	metrics := face.Metrics()
	lineH := (metrics.Ascent + metrics.Descent).Ceil()

	// First pass: lay out rows to size the sheet
	x, y, rowH := 0, 0, 0
	type placed struct {
		r              rune
		dr             image.Rectangle
		mask           image.Image
		maskp          image.Point
		advance        fixed.Int26_6
		atlasX, atlasY int
	}
	var glyphs []placed
	for r := firstGlyph; r <= lastGlyph; r++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		w, h := dr.Dx(), dr.Dy()
		if x+w > atlasWidth {
			x, y, rowH = 0, y+rowH+atlasPadding, 0
		}
		glyphs = append(glyphs, placed{r, dr, mask, maskp, advance, x, y})
		x += w + atlasPadding
		rowH = max(rowH, h)
	}

	sheet := image.NewAlpha(image.Rect(0, 0, atlasWidth, max(y+rowH, 1)))
	atlas := &FontAtlas{Image: sheet, Glyphs: make(map[rune]Glyph, len(glyphs)), Height: lineH}

	// Second pass: copy glyph masks and record metrics
	for _, g := range glyphs {
		w, h := g.dr.Dx(), g.dr.Dy()
		if w > 0 && h > 0 {
			dst := image.Rect(g.atlasX, g.atlasY, g.atlasX+w, g.atlasY+h)
			draw.Draw(sheet, dst, g.mask, g.maskp, draw.Src)
		}
		atlas.Glyphs[g.r] = Glyph{
			AtlasX:   float32(g.atlasX),
			AtlasY:   float32(g.atlasY),
			Width:    float32(w),
			Height:   float32(h),
			BearingX: float32(g.dr.Min.X),
			BearingY: float32(-g.dr.Min.Y),
			Advance:  float32(g.advance.Round()),
		}
	}
	return atlas
}

// Measure returns the width and line height text occupies at scale
func (a *FontAtlas) Measure(text string, scale float32) (float32, float32) {
	var width float32
	for _, r := range text {
		width += a.glyph(r).Advance * scale
	}
	return width, float32(a.Height) * scale
}

func (a *FontAtlas) glyph(r rune) Glyph {
	if g, ok := a.Glyphs[r]; ok {
		return g
	}
	return a.Glyphs[' ']
}

// Vertices builds two triangles per glyph as x, y, u, v. (x, y) is the
// baseline origin in pixels, y growing downward.
func (a *FontAtlas) Vertices(text string, x, y, scale float32) []float32 {
	bw, bh := float32(a.Image.Rect.Dx()), float32(a.Image.Rect.Dy())
	verts := make([]float32, 0, len(text)*6*4)
	for _, r := range text {
		g := a.glyph(r)
		if g.Width > 0 && g.Height > 0 {
			x0 := x + g.BearingX*scale
			y0 := y - g.BearingY*scale
			x1, y1 := x0+g.Width*scale, y0+g.Height*scale
			u0, v0 := g.AtlasX/bw, g.AtlasY/bh
			u1, v1 := (g.AtlasX+g.Width)/bw, (g.AtlasY+g.Height)/bh

			verts = append(verts,
				x0, y1, u0, v1,
				x0, y0, u0, v0,
				x1, y0, u1, v0,
				x0, y1, u0, v1,
				x1, y0, u1, v0,
				x1, y1, u1, v1,
			)
		}
		x += g.Advance * scale
	}
	return verts
}

// FontRenderer draws text from an uploaded FontAtlas
type FontRenderer struct {
	atlas   *FontAtlas
	shader  *Shader
	texture uint32
	vao     uint32
	vbo     uint32
}

// NewFontRenderer uploads atlas and compiles the text shader
func NewFontRenderer(atlas *FontAtlas) (*FontRenderer, error) {
	if atlas == nil || len(atlas.Glyphs) == 0 {
		return nil, errors.New("invalid font atlas")
	}
	shader, err := NewShader(Shaders, "font.vert", "font.frag")
	if err != nil {
		return nil, err
	}

	fr := &FontRenderer{atlas: atlas, shader: shader}

	size := atlas.Image.Rect.Size()
	gl.GenTextures(1, &fr.texture)
	gl.BindTexture(gl.TEXTURE_2D, fr.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(size.X), int32(size.Y), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Image.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenVertexArrays(1, &fr.vao)
	gl.GenBuffers(1, &fr.vbo)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 4, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return fr, nil
}

// Atlas returns the glyph sheet the renderer draws from
func (fr *FontRenderer) Atlas() *FontAtlas {
	return fr.atlas
}

// RenderLines draws each line lineStep pixels below the previous one
func (fr *FontRenderer) RenderLines(proj mgl32.Mat4, lines []string, x, y, lineStep, scale float32, color mgl32.Vec4) {
	var verts []float32
	for _, line := range lines {
		verts = append(verts, fr.atlas.Vertices(line, x, y, scale)...)
		y += lineStep
	}
	if len(verts) == 0 {
		return
	}

	fr.shader.Use()
	fr.shader.SetMatrix4("proj", proj)
	fr.shader.SetVector4("color", color)
	fr.shader.SetInt("glyphs", 0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fr.texture)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)

	size := len(verts) * 4
	gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(verts), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)/4))

	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
}

// Render draws a single line of text
func (fr *FontRenderer) Render(proj mgl32.Mat4, text string, x, y, scale float32, color mgl32.Vec4) {
	fr.RenderLines(proj, []string{text}, x, y, 0, scale, color)
}

func (fr *FontRenderer) Dispose() {
	DeleteTexture(fr.texture)
	if fr.vao != 0 {
		gl.DeleteVertexArrays(1, &fr.vao)
	}
	if fr.vbo != 0 {
		gl.DeleteBuffers(1, &fr.vbo)
	}
	fr.shader.Delete()
}
