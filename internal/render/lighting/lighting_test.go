package lighting

import (
	"image/color"
	"testing"

	"chosenoffset.com/raycaster/internal/core/projection"
)

func TestShaded(t *testing.T) {
	got := Shaded(projection.RGB{R: 1, G: 0.5}, 0.8)
	want := color.RGBA{R: 204, G: 102, B: 0, A: 255}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestToColorClamps(t *testing.T) {
	got := ToColor(projection.RGB{R: 2, G: -1, B: 0.5})
	if got.R != 255 || got.G != 0 || got.B != 128 {
		t.Errorf("Unexpected clamped color %v", got)
	}
}

func TestTextureTint(t *testing.T) {
	if got := TextureTint(1); got.R != 0.5 || got.A != 1 {
		t.Errorf("Expected half gain on a vertical wall, got %+v", got)
	}
	if got := TextureTint(0.8); got.G != 0.4 {
		t.Errorf("Expected 0.4 on a horizontal wall, got %+v", got)
	}
}
