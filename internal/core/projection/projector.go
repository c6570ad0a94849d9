// Package projection turns ray hits into screen column geometry.
package projection

import (
	"math"

	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/world/grid"
)

// Shading multipliers fake a single directional light.
const (
	HorizontalShade = 0.8
	VerticalShade   = 1.0
)

// DefaultMaxDistance is the render cutoff used when none is configured.
const DefaultMaxDistance = 100.0

// minCorrected keeps half-heights finite when the viewer touches a wall.
const minCorrected = 1e-6

// Selector identifies what was struck: the wall code and the line family.
type Selector struct {
	Code       uint8
	Horizontal bool
}

// Column describes one vertical wall slice. Heights are in normalized
// screen units where 1 is half the screen height.
type Column struct {
	Index      int     // Screen column, 0 = leftmost
	Ray        int     // Source ray index
	HalfHeight float64 // Extent above and below the center line
	Selector   Selector
	TexOffset  float64 // Horizontal texture coordinate of the slice's left edge
	SliceWidth float64 // Texture width covered by the slice
	Shade      float64
	Distance   float64 // Fish-eye corrected distance
}

// Projector converts hits for one grid and ray fan configuration.
type Projector struct {
	Rays        int
	FOV         float64
	MaxDistance float64

	cellWidth  float64
	cellHeight float64
}

// NewProjector creates a projector for rays spread over fov on g.
func NewProjector(g *grid.Grid, rays int, fov, maxDistance float64) *Projector {
	if maxDistance <= 0 {
		maxDistance = DefaultMaxDistance
	}
	return &Projector{
		Rays:        rays,
		FOV:         fov,
		MaxDistance: maxDistance,
		cellWidth:   g.CellWidth(),
		cellHeight:  g.CellHeight(),
	}
}

// Corrected removes fish-eye distortion by measuring the distance
// perpendicular to the view direction instead of along the ray.
func Corrected(distance, rayAngle, viewDir float64) float64 {
	return distance * math.Cos(rayAngle-viewDir)
}

// HalfHeight is the projected half-height of a wall at the corrected
// distance. k is the world height of one cell, so a wall one cell away fills
// the screen.
func HalfHeight(k, corrected float64) float64 {
	if corrected < minCorrected {
		corrected = minCorrected
	}
	return k / corrected
}

// Project builds the column for hit. ok is false when nothing should be drawn
// (too far away or no wall), letting the background show through.
func (p *Projector) Project(hit raycast.Hit, pose raycast.Pose) (Column, bool) {
	if hit.Distance > p.MaxDistance || hit.Code == grid.Open {
		return Column{}, false
	}

	corrected := Corrected(hit.Distance, hit.Angle, pose.Dir)
	col := Column{
		Index:      p.Rays - 1 - hit.Index,
		Ray:        hit.Index,
		HalfHeight: HalfHeight(p.cellHeight, corrected),
		Selector:   Selector{Code: hit.Code, Horizontal: hit.Horizontal},
		TexOffset:  p.texOffset(hit),
		SliceWidth: math.Sin(p.FOV/float64(p.Rays)) * corrected / p.cellHeight,
		Shade:      VerticalShade,
		Distance:   corrected,
	}
	if hit.Horizontal {
		col.Shade = HorizontalShade
	}
	return col, true
}

// ProjectAll projects every visible hit, keeping fan order.
func (p *Projector) ProjectAll(hits []raycast.Hit, pose raycast.Pose) []Column {
	cols := make([]Column, 0, len(hits))
	for _, hit := range hits {
		if col, ok := p.Project(hit, pose); ok {
			cols = append(cols, col)
		}
	}
	return cols
}

// texOffset is the fractional position of the hit along the struck cell edge.
// It is mirrored for rays travelling up (horizontal lines) or left (vertical
// lines) so textures read the same way from both sides.
func (p *Projector) texOffset(hit raycast.Hit) float64 {
	if hit.Horizontal {
		pos := fraction(hit.Point.X, p.cellWidth)
		if math.Sin(hit.Angle) > 0 {
			return 1 - pos
		}
		return pos
	}

	pos := fraction(hit.Point.Y, p.cellHeight)
	if math.Cos(hit.Angle) < 0 {
		return 1 - pos
	}
	return pos
}

func fraction(v, cell float64) float64 {
	shifted := (v + 1) / cell
	return shifted - math.Floor(shifted)
}
