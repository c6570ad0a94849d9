// Package placeholders procedurally generates the stock wall textures so the
// textured view works without any asset files.
package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"sort"
)

// TextureSize is the edge length of every placeholder texture
const TextureSize = 64

// ColorPalette defines the colors of the stock walls
var ColorPalette = struct {
	Stone     color.RGBA
	StoneDark color.RGBA
	Brick     color.RGBA
	Mortar    color.RGBA
	Moss      color.RGBA
	MossDark  color.RGBA
	Empty     color.RGBA
}{
	Stone:     color.RGBA{130, 125, 115, 255},
	StoneDark: color.RGBA{90, 86, 80, 255},
	Brick:     color.RGBA{150, 70, 50, 255},
	Mortar:    color.RGBA{190, 185, 170, 255},
	Moss:      color.RGBA{70, 120, 60, 255},
	MossDark:  color.RGBA{40, 80, 35, 255},
	Empty:     color.RGBA{0, 0, 0, 255},
}

var generators = map[string]func() *image.RGBA{
	"stone": CreateStoneTexture,
	"brick": CreateBrickTexture,
	"mossy": CreateMossyTexture,
	"empty": func() *image.RGBA { return CreateSolidTexture(ColorPalette.Empty) },
}

// Names lists the textures Generate knows in sorted order
func Names() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate returns the placeholder texture for name. Unknown names get a
// magenta checkerboard and ok=false.
func Generate(name string) (img *image.RGBA, ok bool) {
	gen, ok := generators[name]
	if !ok {
		return CreateCheckerTexture(color.RGBA{255, 0, 255, 255}, ColorPalette.Empty, 8), false
	}
	return gen(), true
}

// CreateSolidTexture creates a simple solid-colored texture
func CreateSolidTexture(col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TextureSize, TextureSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// CreateCheckerTexture alternates two colors in cell-sized squares
func CreateCheckerTexture(a, b color.RGBA, cell int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TextureSize, TextureSize))
	for y := 0; y < TextureSize; y++ {
		for x := 0; x < TextureSize; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.Set(x, y, a)
			} else {
				img.Set(x, y, b)
			}
		}
	}
	return img
}

// CreateStoneTexture creates rough grey blocks with speckle
func CreateStoneTexture() *image.RGBA {
	img := CreateSolidTexture(ColorPalette.Stone)
	seed := uint32(1)
	for y := 0; y < TextureSize; y++ {
		for x := 0; x < TextureSize; x++ {
			n := noise(&seed)
			switch {
			case n < 0.15:
				img.Set(x, y, ColorPalette.StoneDark)
			case n > 0.9:
				img.Set(x, y, Lighten(ColorPalette.Stone, 0.2))
			}
		}
	}

	// Block seams every quarter
	quarter := TextureSize / 4
	for i := 0; i < TextureSize; i++ {
		for s := 0; s < TextureSize; s += quarter * 2 {
			img.Set(i, s, ColorPalette.StoneDark)
			img.Set(s, i, ColorPalette.StoneDark)
		}
	}
	return img
}

// CreateBrickTexture creates running-bond bricks separated by mortar
func CreateBrickTexture() *image.RGBA {
	img := CreateSolidTexture(ColorPalette.Mortar)
	const brickH, brickW = 8, 16
	for y := 0; y < TextureSize; y++ {
		row := y / brickH
		if y%brickH == brickH-1 {
			continue
		}
		shift := (row % 2) * brickW / 2
		for x := 0; x < TextureSize; x++ {
			if (x+shift)%brickW == brickW-1 {
				continue
			}
			c := ColorPalette.Brick
			if (row+(x+shift)/brickW)%3 == 0 {
				c = Darken(c, 0.85)
			}
			img.Set(x, y, c)
		}
	}
	return img
}

// CreateMossyTexture creates stone with creeping moss patches
func CreateMossyTexture() *image.RGBA {
	img := CreateStoneTexture()
	seed := uint32(7)
	for y := 0; y < TextureSize; y++ {
		// Moss thickens toward the bottom of the wall
		density := float64(y) / float64(TextureSize)
		for x := 0; x < TextureSize; x++ {
			n := noise(&seed)
			switch {
			case n < density*0.5:
				img.Set(x, y, ColorPalette.MossDark)
			case n < density*0.8:
				img.Set(x, y, ColorPalette.Moss)
			}
		}
	}
	return img
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// GenerateAndSave writes every placeholder texture to dir as <name>.png
func GenerateAndSave(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	var written []string
	for _, name := range Names() {
		img, _ := Generate(name)
		path := filepath.Join(dir, name+".png")
		if err := SavePNG(img, path); err != nil {
			return written, fmt.Errorf("failed to save %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}

// noise is a xorshift generator returning values in [0, 1)
func noise(seed *uint32) float64 {
	*seed ^= *seed << 13
	*seed ^= *seed >> 17
	*seed ^= *seed << 5
	return float64(*seed) / (1 << 32)
}
