// Package overlay draws everything layered over the strip and plot: key
// markers, the cursor with the color it samples, and the status text.
package overlay

import (
	"ddcore/internal/graphics"
	renderer "ddcore/internal/graphics/renderer"
	"ddcore/internal/profiling"
	"ddcore/pkg/color"
	"ddcore/pkg/gradient"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font/basicfont"
)

const (
	markerSize = 7
	swatchSize = 24
	textScale  = 1
	lineStep   = 16
)

var (
	outlineColor = mgl32.Vec4{1, 1, 1, 1}
	cursorColor  = mgl32.Vec4{1, 1, 1, 0.8}
	textColor    = mgl32.Vec4{0.96, 0.96, 0.96, 1}
)

// Overlay implements marker, cursor and status rendering
type Overlay struct {
	flat *graphics.Flat
	text *graphics.FontRenderer

	scratch []float32
}

func NewOverlay() *Overlay {
	return &Overlay{}
}

func (o *Overlay) Init() error {
	var err error
	o.flat, err = graphics.NewFlat()
	if err != nil {
		return err
	}
	o.text, err = graphics.NewFontRenderer(graphics.PackAtlas(basicfont.Face7x13))
	return err
}

func (o *Overlay) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderOverlay")()

	strip := ctx.Layout.Strip
	if ctx.Gradient != nil {
		if ctx.Markers {
			o.renderMarkers(ctx, strip)
		}
		if ctx.Cursor >= 0 && ctx.Cursor <= 1 {
			o.renderCursor(ctx, strip)
		}
	}

	status := ctx.Layout.Status
	o.text.RenderLines(ctx.Proj, ctx.Status, status.X, status.Y+lineStep-3, lineStep, textScale, textColor)
}

func (o *Overlay) renderMarkers(ctx renderer.RenderContext, strip renderer.Rect) {
	for _, k := range ctx.Gradient.All() {
		x := MarkerX(strip, k)
		y := strip.Y + strip.H + 2

		o.scratch = graphics.AppendTriangle(o.scratch[:0], x, y, markerSize+1)
		o.flat.Triangles(ctx.Proj, o.scratch, outlineColor)

		if k.Mode == gradient.Fixed {
			o.scratch = graphics.AppendRect(o.scratch[:0], x-markerSize/2, y+3, markerSize, markerSize-2)
		} else {
			o.scratch = graphics.AppendTriangle(o.scratch[:0], x, y+2, markerSize-1)
		}
		o.flat.Triangles(ctx.Proj, o.scratch, Vec4(k.Color))
	}
}

func (o *Overlay) renderCursor(ctx renderer.RenderContext, strip renderer.Rect) {
	x := strip.X + ctx.Cursor*strip.W
	o.scratch = append(o.scratch[:0], x, strip.Y-4, x, strip.Y+strip.H+4)
	o.flat.Lines(ctx.Proj, o.scratch, cursorColor)

	sample := ctx.Gradient.SampleNormalized(ctx.Cursor)
	sx := min(x+6, strip.X+strip.W-swatchSize)
	o.scratch = graphics.AppendRect(o.scratch[:0], sx-1, strip.Y-swatchSize-3, swatchSize+2, swatchSize+2)
	o.flat.Triangles(ctx.Proj, o.scratch, outlineColor)
	o.scratch = graphics.AppendRect(o.scratch[:0], sx, strip.Y-swatchSize-2, swatchSize, swatchSize)
	o.flat.Triangles(ctx.Proj, o.scratch, Vec4(sample))
}

// MarkerX is the horizontal pixel position of k along strip
func MarkerX(strip renderer.Rect, k gradient.Key) float32 {
	return strip.X + k.NormalizedPosition()*strip.W
}

// Vec4 converts a packed color to shader channels
func Vec4(c color.Color32) mgl32.Vec4 {
	return color.ToColor(c).Vec4()
}

func (o *Overlay) Dispose() {
	if o.text != nil {
		o.text.Dispose()
	}
	if o.flat != nil {
		o.flat.Dispose()
	}
}

func (o *Overlay) SetViewport(width, height int) {}
