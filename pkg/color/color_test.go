package color

import (
	"encoding/json"
	"testing"
)

func TestPackedLayout(t *testing.T) {
	c := RGBA(0x11, 0x22, 0x33, 0x44)
	if got := c.Packed(); got != 0x44332211 {
		t.Errorf("Expected 0x44332211, got %#x", got)
	}
	if back := FromPacked(c.Packed()); back != c {
		t.Errorf("Expected %v after unpack, got %v", c, back)
	}
	if White.Packed() != 0xFFFFFFFF {
		t.Errorf("Expected white to pack to all ones")
	}
}

func TestConversionsRound(t *testing.T) {
	c := ToColor32(Color{R: 0.5, G: 1.2, B: -0.3, A: 1})
	if c != RGBA(128, 255, 0, 255) {
		t.Errorf("Expected rounded and saturated channels, got %v", c)
	}

	f := ToColor(RGBA(255, 0, 51, 255))
	if f.R != 1 || f.G != 0 || f.A != 1 {
		t.Errorf("Unexpected float conversion %v", f)
	}
	if f.B < 0.199 || f.B > 0.201 {
		t.Errorf("Expected B ~0.2, got %f", f.B)
	}

	for _, v := range []Color32{Black, White, Crimson, RGBA(1, 2, 3, 4)} {
		if back := ToColor32(ToColor(v)); back != v {
			t.Errorf("Byte -> float -> byte changed %v into %v", v, back)
		}
	}
}

func TestLerp32(t *testing.T) {
	got := Lerp32(Black, White, 0.5)
	if got != RGBA(128, 128, 128, 255) {
		t.Errorf("Expected mid gray, got %v", got)
	}
	if Lerp32(Red, Blue, -1) != Red {
		t.Errorf("Expected factor clamp at 0")
	}
	if Lerp32(Red, Blue, 2) != Blue {
		t.Errorf("Expected factor clamp at 1")
	}
}

func TestLerpFloat(t *testing.T) {
	got := Lerp(Color{0, 0, 0, 0}, Color{1, 1, 1, 1}, 0.25)
	if got != (Color{0.25, 0.25, 0.25, 0.25}) {
		t.Errorf("Expected quarter blend, got %v", got)
	}
}

func TestGrayscale(t *testing.T) {
	g := RGBA(255, 0, 0, 10).Grayscale()
	if g.R != 76 || g.G != 76 || g.B != 76 || g.A != 10 {
		t.Errorf("Unexpected grayscale %v", g)
	}
}

func TestJSON(t *testing.T) {
	data, err := json.Marshal(White)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "-1" {
		t.Errorf("Expected white to encode as -1, got %s", data)
	}

	var c Color32
	if err := json.Unmarshal([]byte("4294967295"), &c); err != nil {
		t.Fatalf("Unsigned form should decode: %v", err)
	}
	if c != White {
		t.Errorf("Expected white, got %v", c)
	}

	if err := json.Unmarshal([]byte(`"red"`), &c); err == nil {
		t.Errorf("Expected error for string color")
	}
	if err := json.Unmarshal([]byte("8589934592"), &c); err == nil {
		t.Errorf("Expected error for out-of-range value")
	}
}

func TestNamedAndStrings(t *testing.T) {
	c, ok := Named("gold")
	if !ok || c != Gold {
		t.Errorf("Expected gold lookup to succeed")
	}
	if Red.Hex() != "#ff0000ff" {
		t.Errorf("Unexpected hex %s", Red.Hex())
	}
	if Red.String() != "Color32(R: FF, G: 00, B: 00, A: FF)" {
		t.Errorf("Unexpected string %s", Red.String())
	}
}
