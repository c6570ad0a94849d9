// Package grid holds the static tile grid the raycaster walks.
//
// World space is normalized to [-1, 1] on both axes regardless of the
// grid dimensions. Cell (col, row) covers
// [-1 + col*2/width, -1 + (col+1)*2/width] horizontally and the
// equivalent range vertically, so row 0 sits at the bottom (y = -1).
package grid

import (
	"fmt"
	"math"
)

// Cell codes
const (
	Open    uint8 = 0
	Wall    uint8 = 1
	MaxCode uint8 = 9 // highest code accepted from map files
)

// Grid is an immutable width x height array of cell codes stored row-major.
type Grid struct {
	width  int
	height int
	cells  []uint8
}

// New copies cells into a new Grid. len(cells) must equal width*height.
func New(width, height int, cells []uint8) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions: %dx%d", width, height)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("cell count mismatch: expected %d, got %d", width*height, len(cells))
	}

	owned := make([]uint8, len(cells))
	copy(owned, cells)

	return &Grid{width: width, height: height, cells: owned}, nil
}

// MustNew is New for literal maps known to be valid.
func MustNew(width, height int, cells []uint8) *Grid {
	g, err := New(width, height, cells)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// CellWidth is the world-space width of one column.
func (g *Grid) CellWidth() float64 { return 2.0 / float64(g.width) }

// CellHeight is the world-space height of one row.
func (g *Grid) CellHeight() float64 { return 2.0 / float64(g.height) }

// At returns the code at (col, row), or Open when outside the grid.
func (g *Grid) At(col, row int) uint8 {
	if col < 0 || col >= g.width || row < 0 || row >= g.height {
		return Open
	}
	return g.cells[row*g.width+col]
}

// CellOf converts a world point to the (floored) cell that contains it.
func (g *Grid) CellOf(x, y float64) (col, row int) {
	return int(math.Floor((x + 1) * float64(g.width) / 2)),
		int(math.Floor((y + 1) * float64(g.height) / 2))
}

// CellBounds returns the world-space rectangle covered by (col, row).
func (g *Grid) CellBounds(col, row int) (minX, minY, maxX, maxY float64) {
	cw, ch := g.CellWidth(), g.CellHeight()
	minX = -1 + float64(col)*cw
	minY = -1 + float64(row)*ch
	return minX, minY, minX + cw, minY + ch
}

// AtWall returns the strongest code of the two cells that share the grid
// line crossed at (x, y). horz selects a horizontal line (the row index is
// rounded), otherwise a vertical one (the column index is rounded). Rounding
// cancels the drift accumulated while stepping along the ray.
//
// When the two neighbours differ the larger code wins, so special walls beat
// plain walls and plain walls beat open space. This can report the wrong
// variant when the origin is inside a wall looking at a different adjacent
// wall; callers rely on the exact behaviour, so leave it.
func (g *Grid) AtWall(x, y float64, horz bool) uint8 {
	px := (x + 1) * float64(g.width) / 2
	py := (y + 1) * float64(g.height) / 2
	col, row := int(math.Floor(px)), int(math.Floor(py))

	if horz {
		row = int(math.Round(py))
	} else {
		col = int(math.Round(px))
	}

	if col < 0 || col >= g.width || row < 0 || row >= g.height {
		return Open
	}

	v1 := g.cells[row*g.width+col]
	v2 := v1
	if horz && row != 0 {
		v2 = g.cells[(row-1)*g.width+col]
	} else if !horz && col != 0 {
		v2 = g.cells[row*g.width+col-1]
	}

	if v2 > v1 {
		return v2
	}
	return v1
}

// Cells returns a copy of the row-major cell codes.
func (g *Grid) Cells() []uint8 {
	out := make([]uint8, len(g.cells))
	copy(out, g.cells)
	return out
}

// IsClosed reports whether every border cell is a wall.
func (g *Grid) IsClosed() bool {
	for col := 0; col < g.width; col++ {
		if g.At(col, 0) == Open || g.At(col, g.height-1) == Open {
			return false
		}
	}
	for row := 0; row < g.height; row++ {
		if g.At(0, row) == Open || g.At(g.width-1, row) == Open {
			return false
		}
	}
	return true
}
