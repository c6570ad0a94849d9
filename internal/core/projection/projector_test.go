package projection

import (
	"math"
	"testing"

	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/world/grid"
)

func testGrid() *grid.Grid {
	return grid.MustNew(8, 8, []uint8{
		1, 1, 1, 1, 1, 1, 1, 1,
		1, 0, 0, 0, 0, 0, 0, 1,
		1, 0, 2, 0, 0, 3, 0, 1,
		1, 0, 0, 0, 0, 0, 0, 1,
		1, 0, 0, 0, 0, 0, 0, 1,
		1, 0, 3, 0, 0, 2, 0, 1,
		1, 0, 0, 0, 0, 0, 0, 1,
		1, 1, 1, 1, 1, 1, 1, 1,
	})
}

func TestCorrectedNeverExceedsRaw(t *testing.T) {
	for _, offset := range []float64{0, 0.1, -0.3, 0.75, -0.75} {
		for _, d := range []float64{0.01, 0.5, 3} {
			c := Corrected(d, 1+offset, 1)
			if c > d {
				t.Errorf("Expected corrected %v <= raw %v (offset %v)", c, d, offset)
			}
		}
	}

	if got := Corrected(2, 0.4, 0.4); got != 2 {
		t.Errorf("Expected no correction on the center ray, got %v", got)
	}
}

func TestHalfHeightDecreasesWithDistance(t *testing.T) {
	k := 0.25
	prev := math.Inf(1)
	for d := 0.05; d < 5; d += 0.05 {
		h := HalfHeight(k, d)
		if h >= prev {
			t.Fatalf("Expected half-height to shrink at distance %v, got %v after %v", d, h, prev)
		}
		prev = h
	}

	if got := HalfHeight(k, k); got != 1 {
		t.Errorf("Expected a wall one cell away to fill the screen, got %v", got)
	}
	if got := HalfHeight(k, 0); math.IsInf(got, 0) {
		t.Error("Expected finite half-height at zero distance")
	}
}

func TestProjectSkipsInvisible(t *testing.T) {
	p := NewProjector(testGrid(), 60, 1.5, 100)
	pose := raycast.Pose{Dir: 0}

	if _, ok := p.Project(raycast.Hit{Distance: raycast.NoHitDistance, Code: 0}, pose); ok {
		t.Error("Expected miss to be skipped")
	}
	if _, ok := p.Project(raycast.Hit{Distance: 0.5, Code: 0}, pose); ok {
		t.Error("Expected open code to be skipped")
	}
	if _, ok := p.Project(raycast.Hit{Distance: 150, Code: 1}, pose); ok {
		t.Error("Expected hit beyond max distance to be skipped")
	}
}

func TestProjectColumnLayout(t *testing.T) {
	g := testGrid()
	caster := raycast.NewCaster(g)
	pose := raycast.Pose{Pos: raycast.Point{X: 0.125, Y: 0.125}, Dir: 0.3}
	p := NewProjector(g, 60, 1.5, 100)

	hits := caster.Fan(pose, 60, 1.5)
	cols := p.ProjectAll(hits, pose)
	if len(cols) != 60 {
		t.Fatalf("Expected 60 visible columns in a closed room, got %d", len(cols))
	}

	for i, col := range cols {
		hit := hits[i]
		if col.Index != 59-hit.Index {
			t.Errorf("Ray %d: expected mirrored column %d, got %d", hit.Index, 59-hit.Index, col.Index)
		}
		if col.Distance > hit.Distance {
			t.Errorf("Ray %d: corrected %v exceeds raw %v", hit.Index, col.Distance, hit.Distance)
		}
		if col.TexOffset < 0 || col.TexOffset > 1 {
			t.Errorf("Ray %d: texture offset %v out of [0, 1]", hit.Index, col.TexOffset)
		}
		if col.SliceWidth <= 0 {
			t.Errorf("Ray %d: expected positive slice width, got %v", hit.Index, col.SliceWidth)
		}

		wantShade := VerticalShade
		if hit.Horizontal {
			wantShade = HorizontalShade
		}
		if col.Shade != wantShade {
			t.Errorf("Ray %d: expected shade %v, got %v", hit.Index, wantShade, col.Shade)
		}
		if col.Selector.Code != hit.Code || col.Selector.Horizontal != hit.Horizontal {
			t.Errorf("Ray %d: selector %+v does not match hit", hit.Index, col.Selector)
		}
	}
}

func TestTexOffsetMirroring(t *testing.T) {
	p := NewProjector(testGrid(), 60, 1.5, 100)
	pose := raycast.Pose{}

	// Cell width 0.25: x = 0.05 sits 0.2 of the way into its cell.
	up := raycast.Hit{Angle: math.Pi / 3, Distance: 1, Horizontal: true, Code: 1, Point: raycast.Point{X: 0.05, Y: 0.75}}
	down := up
	down.Angle = -math.Pi / 3

	colUp, _ := p.Project(up, pose)
	colDown, _ := p.Project(down, pose)
	if math.Abs(colDown.TexOffset-0.2) > 1e-9 {
		t.Errorf("Expected offset 0.2 for downward ray, got %v", colDown.TexOffset)
	}
	if math.Abs(colUp.TexOffset-0.8) > 1e-9 {
		t.Errorf("Expected mirrored offset 0.8 for upward ray, got %v", colUp.TexOffset)
	}

	east := raycast.Hit{Angle: 0.2, Distance: 1, Code: 1, Point: raycast.Point{X: 0.75, Y: 0.05}}
	west := east
	west.Angle = math.Pi - 0.2

	colEast, _ := p.Project(east, pose)
	colWest, _ := p.Project(west, pose)
	if math.Abs(colEast.TexOffset-0.2) > 1e-9 {
		t.Errorf("Expected offset 0.2 for eastward ray, got %v", colEast.TexOffset)
	}
	if math.Abs(colWest.TexOffset-0.8) > 1e-9 {
		t.Errorf("Expected mirrored offset 0.8 for westward ray, got %v", colWest.TexOffset)
	}
}

func TestSliceWidthTilesAcrossRays(t *testing.T) {
	p := NewProjector(testGrid(), 60, 1.5, 100)
	hit := raycast.Hit{Distance: 0.5, Code: 1, Point: raycast.Point{X: 0.75, Y: 0.1}}

	col, ok := p.Project(hit, raycast.Pose{})
	if !ok {
		t.Fatal("Expected visible column")
	}
	want := math.Sin(1.5/60) * 0.5 / 0.25
	if math.Abs(col.SliceWidth-want) > 1e-12 {
		t.Errorf("Expected slice width %v, got %v", want, col.SliceWidth)
	}
}

func TestPaletteSurface(t *testing.T) {
	col := Column{Selector: Selector{Code: 2}, TexOffset: 0.25, SliceWidth: 0.1}

	colors := DefaultPalette(ModeColor)
	cs, ok := colors.Surface(col).(ColorSurface)
	if !ok {
		t.Fatalf("Expected ColorSurface, got %T", colors.Surface(col))
	}
	if cs.Color != (RGB{0, 1, 0}) {
		t.Errorf("Expected green accent wall, got %+v", cs.Color)
	}

	textures := DefaultPalette(ModeTexture)
	ts, ok := textures.Surface(col).(TextureSurface)
	if !ok {
		t.Fatalf("Expected TextureSurface, got %T", textures.Surface(col))
	}
	if ts.Texture != "brick" {
		t.Errorf("Expected brick texture, got %s", ts.Texture)
	}
	if ts.UV.U0 != 0.25 || math.Abs(ts.UV.U1-0.35) > 1e-12 || ts.UV.V0 != 0 || ts.UV.V1 != 1 {
		t.Errorf("Unexpected UV rect %+v", ts.UV)
	}

	unknown := Column{Selector: Selector{Code: 7}}
	if got := colors.Surface(unknown).(ColorSurface); got.Color != (RGB{}) {
		t.Errorf("Expected background for unknown code, got %+v", got.Color)
	}
}

func TestParseMode(t *testing.T) {
	if ParseMode("color") != ModeColor {
		t.Error("Expected color mode")
	}
	if ParseMode("texture") != ModeTexture || ParseMode("") != ModeTexture {
		t.Error("Expected texture mode by default")
	}
	if ModeColor.String() != "color" || ModeTexture.String() != "texture" {
		t.Error("Unexpected mode names")
	}
}
