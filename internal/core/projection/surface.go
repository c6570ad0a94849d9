package projection

// Mode picks the rendering strategy for every wall. It is a configuration
// choice and never depends on the wall code.
type Mode int

const (
	ModeColor Mode = iota
	ModeTexture
)

// ParseMode maps a config string to a Mode. Unknown values select textures.
func ParseMode(s string) Mode {
	if s == "color" || s == "colors" {
		return ModeColor
	}
	return ModeTexture
}

func (m Mode) String() string {
	if m == ModeColor {
		return "color"
	}
	return "texture"
}

// RGB is a linear color with components in [0, 1].
type RGB struct {
	R, G, B float64
}

// Scale multiplies every component by f.
func (c RGB) Scale(f float64) RGB {
	return RGB{R: c.R * f, G: c.G * f, B: c.B * f}
}

// UVRect is the texture window sampled for one slice. U runs across the wall,
// V from the top (0) to the bottom (1) of the slice.
type UVRect struct {
	U0, V0, U1, V1 float64
}

// Surface is what a renderer paints onto a column: either a flat color or a
// window into a named texture.
type Surface interface {
	isSurface()
}

// ColorSurface paints a flat color.
type ColorSurface struct {
	Color RGB
}

// TextureSurface samples a texture.
type TextureSurface struct {
	Texture string
	UV      UVRect
}

func (ColorSurface) isSurface()   {}
func (TextureSurface) isSurface() {}

// Material is the appearance of one wall code.
type Material struct {
	Color   RGB
	Texture string
}

// Palette maps wall codes to materials. Codes without an entry use Background.
type Palette struct {
	Mode       Mode
	Materials  map[uint8]Material
	Background Material
}

// DefaultPalette mirrors the stock wall set: red stone, green brick and
// purple moss on black.
func DefaultPalette(mode Mode) *Palette {
	return &Palette{
		Mode: mode,
		Materials: map[uint8]Material{
			1: {Color: RGB{1, 0, 0}, Texture: "stone"},
			2: {Color: RGB{0, 1, 0}, Texture: "brick"},
			3: {Color: RGB{0.7071067811865476, 0, 0.7071067811865476}, Texture: "mossy"},
		},
		Background: Material{Color: RGB{0, 0, 0}, Texture: "empty"},
	}
}

// Material returns the material for code.
func (p *Palette) Material(code uint8) Material {
	if m, ok := p.Materials[code]; ok {
		return m
	}
	return p.Background
}

// Surface resolves the column to the palette's rendering strategy.
func (p *Palette) Surface(col Column) Surface {
	m := p.Material(col.Selector.Code)
	if p.Mode == ModeColor {
		return ColorSurface{Color: m.Color}
	}
	return TextureSurface{
		Texture: m.Texture,
		UV: UVRect{
			U0: col.TexOffset,
			V0: 0,
			U1: col.TexOffset + col.SliceWidth,
			V1: 1,
		},
	}
}
