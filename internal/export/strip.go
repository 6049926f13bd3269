// Package export turns gradients and curves into images and terminal
// swatches.
package export

import (
	"fmt"
	"image"

	"ddcore/internal/config"
	"ddcore/internal/profiling"
	"ddcore/pkg/color"
	"ddcore/pkg/gradient"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	markerSize  = 6
	labelHeight = 14
	labelGap    = 4
)

// Background fills the area below the strip
var Background = color.RGB(24, 24, 28)

// StripOptions controls RenderStrip. Zero values fall back to config.
type StripOptions struct {
	Width   int
	Height  int
	Markers bool
}

// DefaultStripOptions reads the current bake settings
func DefaultStripOptions() StripOptions {
	return StripOptions{
		Width:   config.GetBakeResolution(),
		Height:  config.GetStripHeight(),
		Markers: config.GetMarkers(),
	}
}

// RenderStrip bakes g at the configured resolution, stretches it to
// opts.Width and, when requested, adds a band with a marker and a position
// label per key.
func RenderStrip(g *gradient.Gradient, opts StripOptions) *image.NRGBA {
	defer profiling.Track("export.RenderStrip")()

	if opts.Width <= 0 {
		opts.Width = config.GetBakeResolution()
	}
	if opts.Height <= 0 {
		opts.Height = config.GetStripHeight()
	}

	baked := g.BakeImage(config.GetBakeResolution(), 1)
	strip := imaging.Resize(baked, opts.Width, opts.Height, imaging.Linear)
	if !opts.Markers || g.Len() == 0 {
		return strip
	}

	band := markerSize + labelGap + labelHeight
	canvas := imaging.New(opts.Width, opts.Height+band, Background)
	canvas = imaging.Paste(canvas, strip, image.Pt(0, 0))

	lastLabelEnd := -1
	for _, k := range g.All() {
		x := int(k.NormalizedPosition() * float32(opts.Width-1))
		drawMarker(canvas, x, opts.Height, k)

		label := fmt.Sprintf("%.2f", k.NormalizedPosition())
		w := font.MeasureString(basicfont.Face7x13, label).Ceil()
		left := min(max(x-w/2, 0), opts.Width-w)
		if left <= lastLabelEnd {
			continue
		}
		drawLabel(canvas, left, opts.Height+markerSize+labelGap+labelHeight-3, label)
		lastLabelEnd = left + w
	}
	return canvas
}

// drawMarker draws a triangle (interpolating key) or square (fixed key)
// under the strip, filled with the key color and outlined in white.
func drawMarker(img *image.NRGBA, x, top int, k gradient.Key) {
	for dy := 0; dy < markerSize; dy++ {
		half := dy
		if k.Mode == gradient.Fixed {
			half = markerSize / 2
		}
		for dx := -half; dx <= half; dx++ {
			c := k.Color
			if dx == -half || dx == half || dy == markerSize-1 {
				c = color.White
			}
			img.Set(x+dx, top+dy, c)
		}
	}
}

func drawLabel(img *image.NRGBA, x, baseline int, s string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.WhiteSmoke),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}

// Stack places images top to bottom on a Background canvas as wide as the
// widest of them, left aligned.
func Stack(imgs ...image.Image) *image.NRGBA {
	w, h := 0, 0
	for _, img := range imgs {
		w = max(w, img.Bounds().Dx())
		h += img.Bounds().Dy()
	}
	canvas := imaging.New(max(w, 1), max(h, 1), Background)
	y := 0
	for _, img := range imgs {
		canvas = imaging.Paste(canvas, img, image.Pt(0, y))
		y += img.Bounds().Dy()
	}
	return canvas
}

// Save writes img with the format picked from the file extension
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("could not save %s: %w", path, err)
	}
	return nil
}
