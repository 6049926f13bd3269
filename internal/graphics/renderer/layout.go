package renderer

// Rect is a pixel rectangle with a top-left origin
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether the point lies inside r, edges included
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Normalize maps x across r to [0, 1] without clamping
func (r Rect) Normalize(x float32) float32 {
	if r.W <= 0 {
		return 0
	}
	return (x - r.X) / r.W
}

// Layout splits the window into the gradient strip, the curve plot below it
// and a status line at the bottom.
type Layout struct {
	Strip  Rect
	Plot   Rect
	Status Rect
}

const (
	Margin       = 16
	StatusHeight = 48
)

// ComputeLayout places the strip at the top with the given height, clamped
// so the plot always keeps some room.
func ComputeLayout(width, height, stripHeight int) Layout {
	w := float32(max(width-2*Margin, 1))
	h := float32(height)

	strip := min(float32(stripHeight), max(h/2-Margin, 1))
	plotTop := Margin + strip + Margin
	plotH := max(h-plotTop-StatusHeight-Margin, 1)

	return Layout{
		Strip:  Rect{X: Margin, Y: Margin, W: w, H: strip},
		Plot:   Rect{X: Margin, Y: plotTop, W: w, H: plotH},
		Status: Rect{X: Margin, Y: h - StatusHeight, W: w, H: StatusHeight},
	}
}
