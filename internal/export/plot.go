package export

import (
	"image"

	"ddcore/internal/profiling"
	"ddcore/pkg/color"
	"ddcore/pkg/curve"
	"ddcore/pkg/ddmath"

	"github.com/disintegration/imaging"
)

// PlotColors are the colors used by RenderCurve
var PlotColors = struct {
	Line, Key, Axis color.Color32
}{
	Line: color.Gold,
	Key:  color.Crimson,
	Axis: color.DimGray,
}

// RenderCurve plots c over its keyed span into a w×h image
func RenderCurve(c *curve.Curve, w, h int) *image.NRGBA {
	defer profiling.Track("export.RenderCurve")()

	w, h = max(w, 2), max(h, 2)
	img := imaging.New(w, h, Background)

	start, end, ok := c.Range()
	if !ok {
		return img
	}
	lo, hi := c.Bounds(w)
	toY := func(v float32) int {
		return h - 1 - int(ddmath.Remap(v, lo, hi, 0, float32(h-1)))
	}

	if lo < 0 && hi > 0 {
		y := toY(0)
		for x := 0; x < w; x++ {
			img.Set(x, y, PlotColors.Axis)
		}
	}

	prevY := toY(c.Sample(start))
	for x := 0; x < w; x++ {
		t := ddmath.Lerp(start, end, float32(x)/float32(w-1))
		y := toY(c.Sample(t))
		// vertical run keeps steep segments connected
		for yy := min(prevY, y); yy <= max(prevY, y); yy++ {
			img.Set(x, yy, PlotColors.Line)
		}
		prevY = y
	}

	if start == end {
		return img
	}
	for _, k := range c.All() {
		x := int(ddmath.Remap(k.Position, start, end, 0, float32(w-1)))
		y := toY(k.Value)
		for dy := -2; dy <= 2; dy++ {
			for dx := -2; dx <= 2; dx++ {
				img.Set(x+dx, y+dy, PlotColors.Key)
			}
		}
	}
	return img
}
