package strip

import (
	"strings"
	"testing"

	"ddcore/internal/config"
	renderer "ddcore/internal/graphics/renderer"
)

func TestCheckerHalvesMatch(t *testing.T) {
	verts := Checker(renderer.Rect{X: 0, Y: 0, W: 20, H: 12}, 8)

	// 3 columns x 2 rows = 6 cells, split 3/3
	if len(verts) != 6*12 {
		t.Fatalf("Expected 6 cells, got %d floats", len(verts))
	}
	light := verts[:len(verts)/2]
	// first light cell is the top-left one
	if light[0] != 0 || light[1] != 0 {
		t.Errorf("Expected first light cell at origin, got (%v, %v)", light[0], light[1])
	}
	// last column is clipped to the rect
	for i := 0; i < len(verts); i += 2 {
		if verts[i] > 20 || verts[i+1] > 12 {
			t.Fatalf("Vertex (%v, %v) outside rect", verts[i], verts[i+1])
		}
	}
}

func TestTextureKeyTracksResolution(t *testing.T) {
	defer config.SetBakeResolution(config.GetBakeResolution())

	config.SetBakeResolution(128)
	a := TextureKey("heat")
	config.SetBakeResolution(256)
	b := TextureKey("heat")

	if a == b || !strings.HasPrefix(a, "heat") {
		t.Errorf("Expected resolution-specific keys, got %q and %q", a, b)
	}
}
