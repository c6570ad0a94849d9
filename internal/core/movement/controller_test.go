package movement

import (
	"math"
	"testing"

	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/world/grid"
)

// 8x8 room, cell size 0.25. Column 7 starts at x = 0.75.
func arena() *raycast.Caster {
	return raycast.NewCaster(grid.MustNew(8, 8, []uint8{
		1, 1, 1, 1, 1, 1, 1, 1,
		1, 0, 0, 0, 0, 0, 0, 1,
		1, 0, 2, 0, 0, 3, 0, 1,
		1, 0, 0, 0, 0, 0, 0, 1,
		1, 0, 0, 0, 0, 0, 0, 1,
		1, 0, 3, 0, 0, 2, 0, 1,
		1, 0, 0, 0, 0, 0, 0, 1,
		1, 1, 1, 1, 1, 1, 1, 1,
	}))
}

func testSettings() Settings {
	return Settings{
		MoveSpeed:    0.5,
		LookSpeed:    2,
		MinClearance: 0.025,
	}
}

func TestStepMovesForward(t *testing.T) {
	c := NewController(arena(), testSettings())
	start := raycast.Pose{Pos: raycast.Point{X: 0.125, Y: 0.125}, Dir: 0}

	res := c.Step(start, Intent{Forward: 1}, 0.1)
	if math.Abs(res.Pose.Pos.X-0.175) > 1e-12 {
		t.Errorf("Expected x 0.175, got %v", res.Pose.Pos.X)
	}
	if res.Pose.Pos.Y != 0.125 {
		t.Errorf("Expected y unchanged, got %v", res.Pose.Pos.Y)
	}
	if res.Blocked() {
		t.Error("Expected unblocked step")
	}
}

func TestStrafeLeftIsCounterClockwise(t *testing.T) {
	c := NewController(arena(), testSettings())
	start := raycast.Pose{Pos: raycast.Point{X: 0.125, Y: 0.125}, Dir: 0}

	res := c.Step(start, Intent{Strafe: 1}, 0.1)
	if math.Abs(res.Pose.Pos.Y-0.175) > 1e-12 {
		t.Errorf("Expected strafe left to move north to 0.175, got %v", res.Pose.Pos.Y)
	}
	if math.Abs(res.Pose.Pos.X-0.125) > 1e-12 {
		t.Errorf("Expected x unchanged, got %v", res.Pose.Pos.X)
	}
}

func TestWallBlocksAtExactlyMinClearance(t *testing.T) {
	start := raycast.Pose{Pos: raycast.Point{X: 0.75 - 0.025, Y: 0.125}, Dir: 0}
	// Use the measured east clearance so the two are exactly equal.
	settings := testSettings()
	settings.MinClearance = arena().Clearances(start.Pos)[0]
	c := NewController(arena(), settings)

	res := c.Step(start, Intent{Forward: 1}, 0.1)
	if !res.BlockedX {
		t.Errorf("Expected x blocked at clearance %v, got %+v", settings.MinClearance, res)
	}
	if res.Pose.Pos.X != start.Pos.X {
		t.Errorf("Expected x to stay at %v, got %v", start.Pos.X, res.Pose.Pos.X)
	}

	// Any slack above the threshold lets it through.
	settings.MinClearance = math.Nextafter(settings.MinClearance, 0)
	res = NewController(arena(), settings).Step(start, Intent{Forward: 1}, 0.001)
	if res.BlockedX || res.Pose.Pos.X <= start.Pos.X {
		t.Errorf("Expected x to advance just under the threshold, got %+v", res)
	}
}

func TestWallBlocksOnlyItsAxis(t *testing.T) {
	c := NewController(arena(), testSettings())
	// Half a threshold away from the east wall, open space to the north.
	start := raycast.Pose{Pos: raycast.Point{X: 0.75 - 0.0125, Y: 0.125}, Dir: 0}

	res := c.Step(start, Intent{Forward: 1}, 0.1)
	if res.Pose.Pos.X != start.Pos.X {
		t.Errorf("Expected x blocked at %v, got %v", start.Pos.X, res.Pose.Pos.X)
	}
	if !res.BlockedX || res.BlockedY {
		t.Errorf("Expected only x blocked, got %+v", res)
	}

	// Diagonal push into the wall still slides north.
	res = c.Step(start, Intent{Forward: 1, Strafe: 1}, 0.1)
	if res.Pose.Pos.X != start.Pos.X {
		t.Errorf("Expected x blocked at %v, got %v", start.Pos.X, res.Pose.Pos.X)
	}
	if math.Abs(res.Pose.Pos.Y-0.175) > 1e-12 {
		t.Errorf("Expected y to slide to 0.175, got %v", res.Pose.Pos.Y)
	}

	// Backing away is allowed.
	res = c.Step(start, Intent{Forward: -1}, 0.1)
	if res.Pose.Pos.X >= start.Pos.X {
		t.Errorf("Expected to back away from the wall, got %v", res.Pose.Pos.X)
	}
}

func TestRepeatedStepsNeverEnterWall(t *testing.T) {
	caster := arena()
	c := NewController(caster, testSettings())
	pose := raycast.Pose{Pos: raycast.Point{X: 0.625, Y: 0.125}, Dir: 0}

	for i := 0; i < 50; i++ {
		pose = c.Step(pose, Intent{Forward: 1}, 0.04).Pose
	}

	if pose.Pos.X >= 0.75 {
		t.Fatalf("Expected to stop before the wall at 0.75, got %v", pose.Pos.X)
	}
	if d := caster.Clearances(pose.Pos)[0]; d > 0.025 {
		t.Errorf("Expected to end within the clearance threshold, got %v", d)
	}
}

func TestTurnIsUnconstrained(t *testing.T) {
	c := NewController(arena(), testSettings())
	// Wedged in a corner: turning still works.
	start := raycast.Pose{Pos: raycast.Point{X: -0.74, Y: -0.74}, Dir: 1}

	res := c.Step(start, Intent{Turn: 1}, 0.1)
	if math.Abs(res.Pose.Dir-1.2) > 1e-12 {
		t.Errorf("Expected heading 1.2, got %v", res.Pose.Dir)
	}

	res = c.Step(start, Intent{Turn: -1}, 0.1)
	if math.Abs(res.Pose.Dir-0.8) > 1e-12 {
		t.Errorf("Expected heading 0.8, got %v", res.Pose.Dir)
	}
	if res.Pose.Pos != start.Pos {
		t.Errorf("Expected turning to leave position alone, got %v", res.Pose.Pos)
	}
}

func TestFrameTimeClamp(t *testing.T) {
	s := testSettings()
	s.MaxFrameTime = 0.1
	c := NewController(arena(), s)
	start := raycast.Pose{Pos: raycast.Point{X: 0.125, Y: 0.125}, Dir: 0}

	res := c.Step(start, Intent{Forward: 1}, 5)
	if math.Abs(res.Pose.Pos.X-0.175) > 1e-12 {
		t.Errorf("Expected a stall to move one clamped frame (0.175), got %v", res.Pose.Pos.X)
	}

	res = c.Step(start, Intent{Forward: 1, Turn: 1}, -1)
	if res.Pose != start {
		t.Errorf("Expected negative dt to be a no-op, got %+v", res.Pose)
	}
}

func TestIntentFrom(t *testing.T) {
	held := map[Action]bool{
		ActionForward:    true,
		ActionStrafeLeft: true,
		ActionTurnLeft:   true,
		ActionTurnRight:  true,
	}
	in := IntentFrom(func(a Action) bool { return held[a] })

	if in.Forward != 1 || in.Strafe != 1 || in.Turn != 0 {
		t.Errorf("Unexpected intent %+v", in)
	}
	if in.IsZero() {
		t.Error("Expected non-zero intent")
	}

	if !IntentFrom(func(Action) bool { return false }).IsZero() {
		t.Error("Expected zero intent with no keys held")
	}
}
