package gradient

import (
	"image"

	"ddcore/pkg/color"
)

// Bake samples n evenly spaced points across [0, 1], both ends included.
// n below 2 is raised to 2.
func (g *Gradient) Bake(n int) []color.Color32 {
	n = max(n, 2)
	out := make([]color.Color32, n)
	s, store := g.sampler(), g.store()
	for i := range out {
		out[i] = s.Sample(store, ToFixed(float32(i)/float32(n-1)))
	}
	return out
}

// BakeImage renders the gradient left to right into a w×h RGBA image
func (g *Gradient) BakeImage(w, h int) *image.RGBA {
	w, h = max(w, 1), max(h, 1)
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	var row []color.Color32
	if w == 1 {
		row = []color.Color32{g.SampleNormalized(0)}
	} else {
		row = g.Bake(w)
	}

	for x, c := range row {
		i := x * 4
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	for y := 1; y < h; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+w*4], img.Pix[:w*4])
	}
	return img
}
