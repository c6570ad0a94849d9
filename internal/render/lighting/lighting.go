// Package lighting turns wall shades and palette colors into the colors the
// renderers draw with.
package lighting

import (
	"image/color"
	"math"

	"chosenoffset.com/raycaster/internal/core/projection"
)

// TextureGain dims sampled textures so they sit under flat colors in brightness.
const TextureGain = 0.5

// Tint is a per-channel color multiplier.
type Tint struct {
	R, G, B, A float32
}

// ToColor converts a linear color to 8-bit RGBA, clamping out-of-range components.
func ToColor(c projection.RGB) color.RGBA {
	return color.RGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: 255}
}

// Shaded returns a flat wall color darkened by shade.
func Shaded(c projection.RGB, shade float64) color.RGBA {
	return ToColor(c.Scale(shade))
}

// TextureTint returns the vertex tint applied to a textured slice.
func TextureTint(shade float64) Tint {
	v := float32(shade * TextureGain)
	return Tint{R: v, G: v, B: v, A: 1}
}

func channel(v float64) uint8 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}
