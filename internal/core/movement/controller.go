// Package movement integrates the viewer's pose from input intent with
// per-axis wall sliding.
package movement

import (
	"math"

	"chosenoffset.com/raycaster/internal/core/raycast"
)

// Intent is one tick's input snapshot. Each component is in [-1, 1].
type Intent struct {
	Forward float64 // +1 forward, -1 back
	Strafe  float64 // +1 left, -1 right
	Turn    float64 // +1 counter-clockwise, -1 clockwise
}

// IsZero reports whether the intent asks for nothing.
func (in Intent) IsZero() bool {
	return in.Forward == 0 && in.Strafe == 0 && in.Turn == 0
}

// Settings are the tunable movement constants.
type Settings struct {
	MoveSpeed    float64 // World units per second
	LookSpeed    float64 // Radians per second
	MinClearance float64 // Required distance to a wall before moving toward it
	MaxFrameTime float64 // Upper bound on a single tick's dt, 0 disables
}

// Result reports what happened during a step.
type Result struct {
	Pose     raycast.Pose
	BlockedX bool
	BlockedY bool
}

// Blocked reports whether any requested displacement was refused.
func (r Result) Blocked() bool {
	return r.BlockedX || r.BlockedY
}

// Controller applies intents using the caster for collision checks.
type Controller struct {
	caster   *raycast.Caster
	settings Settings
}

// NewController creates a controller over caster.
func NewController(caster *raycast.Caster, settings Settings) *Controller {
	return &Controller{caster: caster, settings: settings}
}

// Settings returns the controller's constants.
func (c *Controller) Settings() Settings {
	return c.settings
}

// Step returns the pose after applying in for dt seconds.
//
// Clearances are measured along the world axes, not the heading. The x
// displacement is applied only when the wall on that side is further than
// MinClearance, and y likewise, so a diagonal push into a corner still slides
// along the open axis.
func (c *Controller) Step(pose raycast.Pose, in Intent, dt float64) Result {
	if dt < 0 {
		dt = 0
	}
	if c.settings.MaxFrameTime > 0 && dt > c.settings.MaxFrameTime {
		dt = c.settings.MaxFrameTime
	}

	move := c.settings.MoveSpeed * dt
	sin, cos := math.Sincos(pose.Dir)

	dx := move * (in.Forward*cos - in.Strafe*sin)
	dy := move * (in.Forward*sin + in.Strafe*cos)

	res := Result{Pose: pose}

	if dx != 0 || dy != 0 {
		clearance := c.caster.Clearances(pose.Pos)
		east, north, west, south := clearance[0], clearance[1], clearance[2], clearance[3]
		minClear := c.settings.MinClearance

		if (dx > 0 && east > minClear) || (dx < 0 && west > minClear) {
			res.Pose.Pos.X += dx
		} else if dx != 0 {
			res.BlockedX = true
		}

		if (dy > 0 && north > minClear) || (dy < 0 && south > minClear) {
			res.Pose.Pos.Y += dy
		} else if dy != 0 {
			res.BlockedY = true
		}
	}

	res.Pose.Dir += in.Turn * c.settings.LookSpeed * dt
	return res
}
