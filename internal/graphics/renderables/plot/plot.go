// Package plot draws the current curve as a polyline inside the plot area,
// with its keys as small squares and a zero axis when zero is in range.
package plot

import (
	"ddcore/internal/graphics"
	renderer "ddcore/internal/graphics/renderer"
	"ddcore/internal/profiling"
	"ddcore/pkg/curve"
	"ddcore/pkg/ddmath"

	"github.com/go-gl/mathgl/mgl32"
)

const keySize = 6

var (
	lineColor  = mgl32.Vec4{1, 0.84, 0, 1}
	keyColor   = mgl32.Vec4{0.86, 0.08, 0.24, 1}
	axisColor  = mgl32.Vec4{1, 1, 1, 0.25}
	frameColor = mgl32.Vec4{1, 1, 1, 0.08}
)

// Plot implements curve rendering
type Plot struct {
	flat *graphics.Flat
	line []float32
	keys []float32
	axis []float32
}

func NewPlot() *Plot {
	return &Plot{}
}

func (p *Plot) Init() error {
	var err error
	p.flat, err = graphics.NewFlat()
	return err
}

func (p *Plot) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderPlot")()

	area := ctx.Layout.Plot
	p.flat.Triangles(ctx.Proj, graphics.AppendRect(nil, area.X, area.Y, area.W, area.H), frameColor)
	if ctx.Curve == nil {
		return
	}

	p.line, p.keys, p.axis = Geometry(ctx.Curve, area, int(area.W), p.line[:0], p.keys[:0], p.axis[:0])
	p.flat.Lines(ctx.Proj, p.axis, axisColor)
	p.flat.LineStrip(ctx.Proj, p.line, lineColor)
	p.flat.Triangles(ctx.Proj, p.keys, keyColor)
}

// Geometry samples c across area and appends the polyline, key squares and
// zero axis to the given buffers. The curve's keyed span fills the width.
func Geometry(c *curve.Curve, area renderer.Rect, samples int, line, keys, axis []float32) ([]float32, []float32, []float32) {
	start, end, ok := c.Range()
	if !ok {
		return line, keys, axis
	}
	samples = max(samples, 2)
	lo, hi := c.Bounds(samples)

	toY := func(v float32) float32 {
		return area.Y + area.H - ddmath.Remap(v, lo, hi, 0, area.H)
	}

	if lo < 0 && hi > 0 {
		y := toY(0)
		axis = append(axis, area.X, y, area.X+area.W, y)
	}

	for i := 0; i < samples; i++ {
		f := float32(i) / float32(samples-1)
		x := area.X + f*area.W
		line = append(line, x, toY(c.Sample(ddmath.Lerp(start, end, f))))
	}

	for _, k := range c.All() {
		x := area.X + ddmath.InverseLerp(k.Position, start, end)*area.W
		keys = graphics.AppendRect(keys, x-keySize/2, toY(k.Value)-keySize/2, keySize, keySize)
	}
	return line, keys, axis
}

func (p *Plot) Dispose() {
	if p.flat != nil {
		p.flat.Dispose()
	}
}

func (p *Plot) SetViewport(width, height int) {}
