package grid

import "testing"

func testGrid() *Grid {
	return MustNew(4, 4, []uint8{
		1, 1, 1, 1,
		1, 0, 2, 1,
		1, 0, 0, 3,
		1, 1, 1, 1,
	})
}

func TestNewValidation(t *testing.T) {
	if _, err := New(0, 4, nil); err == nil {
		t.Error("Expected error for zero width")
	}
	if _, err := New(2, 2, []uint8{0, 0, 0}); err == nil {
		t.Error("Expected error for short cell slice")
	}

	cells := []uint8{1, 1, 1, 1}
	g, err := New(2, 2, cells)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	cells[0] = 0
	if g.At(0, 0) != Wall {
		t.Error("Expected grid to own a copy of its cells")
	}
}

func TestAtOutOfRange(t *testing.T) {
	g := testGrid()
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		if got := g.At(c[0], c[1]); got != Open {
			t.Errorf("Expected Open at %v, got %d", c, got)
		}
	}
}

func TestCellOf(t *testing.T) {
	g := testGrid()
	col, row := g.CellOf(-0.25, 0.25)
	if col != 1 || row != 2 {
		t.Errorf("Expected cell (1, 2), got (%d, %d)", col, row)
	}

	minX, minY, maxX, maxY := g.CellBounds(1, 2)
	if minX != -0.5 || minY != 0 || maxX != 0 || maxY != 0.5 {
		t.Errorf("Unexpected bounds (%v, %v, %v, %v)", minX, minY, maxX, maxY)
	}
}

func TestAtWall(t *testing.T) {
	g := testGrid()

	tests := []struct {
		name string
		x, y float64
		horz bool
		want uint8
	}{
		// Horizontal line y=0 between rows 1 and 2 in column 1: both open.
		{"open horizontal crossing", -0.25, 0, true, Open},
		// Horizontal line y=-0.5 between rows 0 and 1 in column 1: wall below.
		{"wall below", -0.25, -0.5, true, Wall},
		// Vertical line x=0 between columns 1 and 2 in row 1: open vs special.
		{"special beats open", 0, -0.25, false, 2},
		// Vertical line x=0.5 in row 2: open (col 2) vs special 3 (col 3).
		{"special to the east", 0.5, 0.25, false, 3},
		// Drift just below the line still rounds onto it.
		{"rounding cancels drift", -0.25, -0.5000000001, true, Wall},
		// Rounded row past the top edge is outside the grid.
		{"outside grid", 0.25, 1, true, Open},
		// Column 0 has no west neighbour.
		{"left edge", -1, 0.25, false, Wall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.AtWall(tt.x, tt.y, tt.horz); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestAtWallPrefersHigherCode(t *testing.T) {
	g := MustNew(2, 2, []uint8{
		2, 3,
		1, 1,
	})

	// Vertical line x=0 in row 0 separates codes 2 and 3.
	if got := g.AtWall(0, -0.5, false); got != 3 {
		t.Errorf("Expected 3, got %d", got)
	}
	// Horizontal line y=0 in column 0 separates 2 (row 0) and 1 (row 1).
	if got := g.AtWall(-0.5, 0, true); got != 2 {
		t.Errorf("Expected 2, got %d", got)
	}
}

func TestIsClosed(t *testing.T) {
	if !testGrid().IsClosed() {
		t.Error("Expected bordered grid to be closed")
	}

	open := MustNew(3, 3, []uint8{
		1, 1, 1,
		0, 0, 1,
		1, 1, 1,
	})
	if open.IsClosed() {
		t.Error("Expected grid with a border gap to be open")
	}
}
