// Package raycast implements the grid-DDA ray caster.
//
// A ray is stepped across successive grid-line crossings instead of being
// sampled at fixed distances, so exactly one cell boundary is tested per
// step. Horizontal and vertical grid lines are walked independently and the
// shorter of the two hits wins.
package raycast

import (
	"math"

	"chosenoffset.com/raycaster/internal/world/grid"
)

// Caster casts rays against a read-only grid. It holds no per-call state and
// is safe to share.
type Caster struct {
	grid *grid.Grid
}

// NewCaster creates a caster for g.
func NewCaster(g *grid.Grid) *Caster {
	return &Caster{grid: g}
}

// Grid returns the grid the caster walks.
func (c *Caster) Grid() *grid.Grid {
	return c.grid
}

// Cast returns the nearest wall along the ray leaving origin at angle.
// The loop is bounded by the [-1, 1] world box: every step moves one full
// cell along the family's stepping axis.
func (c *Caster) Cast(origin Point, angle float64) Hit {
	hd, hCode, hPoint := c.castHorizontal(origin, angle)
	vd, vCode, vPoint := c.castVertical(origin, angle)

	// Horizontal only wins on strict less-than; ties go to the vertical family.
	if hd < vd {
		return Hit{Angle: angle, Distance: hd, Horizontal: true, Code: hCode, Point: hPoint}
	}
	return Hit{Angle: angle, Distance: vd, Horizontal: false, Code: vCode, Point: vPoint}
}

// Fan casts rays evenly across [dir - fov/2, dir + fov/2). Ray i is cast at
// dir - fov/2 + i*fov/rays.
func (c *Caster) Fan(pose Pose, rays int, fov float64) []Hit {
	if rays <= 0 {
		return []Hit{}
	}

	hits := make([]Hit, rays)
	for i := 0; i < rays; i++ {
		angle := pose.Dir - fov/2 + float64(i)*fov/float64(rays)
		hit := c.Cast(pose.Pos, angle)
		hit.Index = i
		hits[i] = hit
	}
	return hits
}

// Clearances casts the four world-axis rays (east, north, west, south) from
// pos and returns their distances in that order.
func (c *Caster) Clearances(pos Point) [4]float64 {
	return [4]float64{
		c.Cast(pos, 0).Distance,
		c.Cast(pos, math.Pi/2).Distance,
		c.Cast(pos, math.Pi).Distance,
		c.Cast(pos, -math.Pi/2).Distance,
	}
}

func (c *Caster) castHorizontal(origin Point, angle float64) (float64, uint8, Point) {
	sin := math.Sin(angle)
	tan := math.Tan(angle)
	height := float64(c.grid.Height())

	step := 2.0 / height
	lines := (origin.Y + 1) * height / 2
	var rayY float64
	switch {
	case sin > 0:
		rayY = -1 + math.Ceil(lines)*step
	case sin < 0:
		rayY = -1 + math.Floor(lines)*step
		step = -step
	default:
		// Parallel to every horizontal line.
		return NoHitDistance, grid.Open, origin
	}

	rayX := (rayY-origin.Y)/tan + origin.X
	dx := step / tan

	for inWorld(rayX, rayY) {
		if code := c.grid.AtWall(rayX, rayY, true); code > 0 {
			return math.Hypot(rayX-origin.X, rayY-origin.Y), code, Point{rayX, rayY}
		}
		rayY += step
		rayX += dx
	}
	return NoHitDistance, grid.Open, Point{rayX, rayY}
}

func (c *Caster) castVertical(origin Point, angle float64) (float64, uint8, Point) {
	cos := math.Cos(angle)
	tan := math.Tan(angle)
	width := float64(c.grid.Width())

	step := 2.0 / width
	lines := (origin.X + 1) * width / 2
	var rayX float64
	switch {
	case cos > 0:
		rayX = -1 + math.Ceil(lines)*step
	case cos < 0:
		rayX = -1 + math.Floor(lines)*step
		step = -step
	default:
		return NoHitDistance, grid.Open, origin
	}

	rayY := (rayX-origin.X)*tan + origin.Y
	dy := step * tan

	for inWorld(rayX, rayY) {
		if code := c.grid.AtWall(rayX, rayY, false); code > 0 {
			return math.Hypot(rayX-origin.X, rayY-origin.Y), code, Point{rayX, rayY}
		}
		rayX += step
		rayY += dy
	}
	return NoHitDistance, grid.Open, Point{rayX, rayY}
}

// inWorld is false for NaN, which also ends the walk for degenerate angles.
func inWorld(x, y float64) bool {
	return x >= -1 && x <= 1 && y >= -1 && y <= 1
}
