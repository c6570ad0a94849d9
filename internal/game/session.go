package game

import (
	"chosenoffset.com/raycaster/internal/core/movement"
	"chosenoffset.com/raycaster/internal/core/projection"
	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/simulation"
	"chosenoffset.com/raycaster/internal/world/maploader"
)

// Session is the per-tick pipeline shared by every frontend: movement, ray
// fan and projection over one map.
type Session struct {
	Map        *maploader.Map
	Caster     *raycast.Caster
	Controller *movement.Controller
	Projector  *projection.Projector
	Palette    *projection.Palette
	Pose       raycast.Pose

	hits    []raycast.Hit
	columns []projection.Column
}

// NewSession builds the pipeline for m and casts the first frame from its spawn.
func NewSession(cfg *simulation.Config, m *maploader.Map) *Session {
	caster := raycast.NewCaster(m.Grid)
	s := &Session{
		Map:        m,
		Caster:     caster,
		Controller: movement.NewController(caster, cfg.MovementSettings(m.Grid)),
		Projector:  cfg.Projector(m.Grid),
		Palette:    cfg.Palette(),
		Pose:       m.SpawnPose(),
	}
	s.cast()
	return s
}

// Advance applies one tick of input and recasts the view.
func (s *Session) Advance(in movement.Intent, dt float64) movement.Result {
	res := s.Controller.Step(s.Pose, in, dt)
	s.Pose = res.Pose
	s.cast()
	return res
}

// Hits returns the current fan in ray order.
func (s *Session) Hits() []raycast.Hit {
	return s.hits
}

// Columns returns the visible wall slices of the current fan.
func (s *Session) Columns() []projection.Column {
	return s.columns
}

func (s *Session) cast() {
	s.hits = s.Caster.Fan(s.Pose, s.Projector.Rays, s.Projector.FOV)
	s.columns = s.Projector.ProjectAll(s.hits, s.Pose)
}
