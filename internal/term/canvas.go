package term

import (
	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/raycaster/internal/core/projection"
	"chosenoffset.com/raycaster/internal/render/lighting"
)

// Cell is one character cell of a frame.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Canvas is an off-screen character frame, copied to the terminal in one pass.
type Canvas struct {
	Width, Height int
	cells         []Cell
}

// NewCanvas creates a blank canvas.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize discards the contents and changes the size.
func (c *Canvas) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c.Width, c.Height = w, h
	c.cells = make([]Cell, w*h)
	c.Clear(tcell.StyleDefault)
}

// Clear fills the canvas with spaces in style.
func (c *Canvas) Clear(style tcell.Style) {
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' ', Style: style}
	}
}

// Set writes one cell. Out-of-range positions are ignored.
func (c *Canvas) Set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	c.cells[y*c.Width+x] = Cell{Rune: r, Style: style}
}

// At returns the cell at (x, y), a blank cell when out of range.
func (c *Canvas) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return Cell{Rune: ' '}
	}
	return c.cells[y*c.Width+x]
}

// Text writes s starting at (x, y), clipped at the right edge.
func (c *Canvas) Text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		c.Set(x, y, r, style)
		x++
	}
}

// Row returns the runes of row y as a string.
func (c *Canvas) Row(y int) string {
	runes := make([]rune, c.Width)
	for x := range runes {
		runes[x] = c.At(x, y).Rune
	}
	return string(runes)
}

// Blit copies the canvas to screen.
func (c *Canvas) Blit(screen tcell.Screen) {
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			cell := c.cells[y*c.Width+x]
			screen.SetContent(x, y, cell.Rune, nil, cell.Style)
		}
	}
}

// rgbColor converts a linear color to a terminal true color.
func rgbColor(c projection.RGB) tcell.Color {
	rgba := lighting.ToColor(c)
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}
