// Package term is a terminal frontend drawing the raycaster with characters.
package term

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"chosenoffset.com/raycaster/internal/core/projection"
	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/game"
	"chosenoffset.com/raycaster/internal/logger"
	"chosenoffset.com/raycaster/internal/simulation"
	"chosenoffset.com/raycaster/internal/world/grid"
	"chosenoffset.com/raycaster/internal/world/maploader"
)

// wallGlyphs shade walls from near to far, one step per cell of distance.
var wallGlyphs = []rune{'█', '▓', '▒', '░'}

// Frontend runs the session in a terminal.
type Frontend struct {
	screen  tcell.Screen
	session *game.Session
	keys    *KeyState
	canvas  *Canvas
	view    game.View
	tick    time.Duration
	ceiling projection.RGB
	floor   projection.RGB

	last       time.Time
	fps        float64
	wasBlocked bool
}

// New creates a frontend drawing to screen. The screen is initialized by Run.
func New(screen tcell.Screen, cfg *simulation.Config, m *maploader.Map) *Frontend {
	return &Frontend{
		screen:  screen,
		session: game.NewSession(cfg, m),
		keys:    NewKeyState(DefaultHoldTimeout),
		canvas:  NewCanvas(0, 0),
		view:    game.ParseView(cfg.View),
		tick:    time.Second / time.Duration(cfg.TickRate),
		ceiling: cfg.Ceiling(),
		floor:   cfg.Floor(),
	}
}

// Run drives the frontend until ctx is done or the user quits.
func (f *Frontend) Run(ctx context.Context) error {
	if err := f.screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal: %w", err)
	}
	defer f.screen.Fini()
	f.screen.HideCursor()
	f.resize()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(f.tick)
	defer ticker.Stop()

	logger.Log.WithFields(logrus.Fields{
		"tick": f.tick,
		"view": f.view.String(),
	}).Info("Terminal frontend started")

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !f.handleEvent(ev, time.Now()) {
				logger.Log.Info("Quit requested")
				return nil
			}
		case now := <-ticker.C:
			f.step(now)
			f.draw()
			f.canvas.Blit(f.screen)
			f.screen.Show()
		}
	}
}

// handleEvent applies one terminal event. It returns false to quit.
func (f *Frontend) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return f.handleKey(ev.Key(), ev.Rune(), now)
	case *tcell.EventResize:
		f.resize()
		f.screen.Sync()
	}
	return true
}

func (f *Frontend) handleKey(key tcell.Key, r rune, now time.Time) bool {
	cmd, action := translateKey(key, r)
	switch cmd {
	case cmdQuit:
		return false
	case cmdToggleView:
		f.view = f.view.Toggle()
	case cmdMove:
		// A reversed key ends the old hold at once instead of cancelling
		// against it until the timeout.
		f.keys.Release(opposite(action))
		f.keys.Press(action, now)
	}
	return true
}

func (f *Frontend) resize() {
	w, h := f.screen.Size()
	f.canvas.Resize(w, h)
}

// step advances the session by the real time since the previous step.
func (f *Frontend) step(now time.Time) {
	dt := 0.0
	if !f.last.IsZero() {
		dt = now.Sub(f.last).Seconds()
	}
	f.last = now

	res := f.session.Advance(f.keys.Intent(now), dt)
	if res.Blocked() && !f.wasBlocked {
		_ = f.screen.Beep()
	}
	f.wasBlocked = res.Blocked()

	if dt > 0 {
		if f.fps == 0 {
			f.fps = 1 / dt
		} else {
			f.fps = f.fps*0.9 + (1/dt)*0.1
		}
	}
}

func (f *Frontend) draw() {
	switch f.view {
	case game.ViewTopDown:
		f.drawTopDown()
	default:
		f.drawFirstPerson()
	}
	f.drawHUD()
}

// drawFirstPerson samples one projected column per character column.
func (f *Frontend) drawFirstPerson() {
	c := f.canvas
	if c.Width == 0 || c.Height == 0 {
		return
	}
	s := f.session
	rays := s.Projector.Rays

	byIndex := make([]*projection.Column, rays)
	columns := s.Columns()
	for i := range columns {
		byIndex[columns[i].Index] = &columns[i]
	}

	ceiling := tcell.StyleDefault.Background(rgbColor(f.ceiling.Scale(0.5)))
	floor := tcell.StyleDefault.Background(rgbColor(f.floor.Scale(0.5)))
	cellSize := s.Map.Grid.CellHeight()
	mid := float64(c.Height) / 2

	for x := 0; x < c.Width; x++ {
		col := byIndex[x*rays/c.Width]

		var half float64
		var wall tcell.Style
		var glyph rune
		if col != nil {
			half = col.HalfHeight * mid
			color := s.Palette.Material(col.Selector.Code).Color.Scale(col.Shade)
			wall = tcell.StyleDefault.Foreground(rgbColor(color)).Background(tcell.ColorBlack)
			glyph = wallGlyph(col.Distance / cellSize)
		}

		for y := 0; y < c.Height; y++ {
			dy := math.Abs(float64(y) + 0.5 - mid)
			switch {
			case col != nil && dy < half:
				c.Set(x, y, glyph, wall)
			case float64(y) < mid:
				c.Set(x, y, ' ', ceiling)
			default:
				c.Set(x, y, ' ', floor)
			}
		}
	}
}

// wallGlyph picks a denser glyph for nearer walls. cells is the distance in
// cell sizes.
func wallGlyph(cells float64) rune {
	i := int(cells)
	if i < 0 {
		i = 0
	}
	if i >= len(wallGlyphs) {
		i = len(wallGlyphs) - 1
	}
	return wallGlyphs[i]
}

// drawTopDown draws the grid with the ray fan and the viewer.
func (f *Frontend) drawTopDown() {
	c := f.canvas
	if c.Width == 0 || c.Height == 0 {
		return
	}
	s := f.session
	g := s.Map.Grid
	c.Clear(tcell.StyleDefault)

	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			col, row := g.CellOf(f.toWorld(x, y))
			if code := g.At(col, row); code != grid.Open {
				style := tcell.StyleDefault.Foreground(rgbColor(s.Palette.Material(code).Color))
				c.Set(x, y, '#', style)
			}
		}
	}

	rayStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	step := 2.0 / float64(max(c.Width, c.Height))
	for _, hit := range s.Hits() {
		if hit.IsMiss() {
			continue
		}
		for d := step; d < hit.Distance; d += step {
			x, y := f.toCanvas(raycast.Along(s.Pose.Pos, hit.Angle, d))
			c.Set(x, y, '.', rayStyle)
		}
	}

	tx, ty := f.toCanvas(raycast.Along(s.Pose.Pos, s.Pose.Dir, 0.1))
	c.Set(tx, ty, '+', tcell.StyleDefault.Foreground(tcell.ColorYellow))
	px, py := f.toCanvas(s.Pose.Pos)
	c.Set(px, py, '@', tcell.StyleDefault.Foreground(tcell.ColorGreen))
}

func (f *Frontend) drawHUD() {
	pose := f.session.Pose
	status := fmt.Sprintf(" %3.0f FPS  pos (%.2f, %.2f)  dir %.2f  %s  [Tab] view  [q] quit ",
		f.fps, pose.Pos.X, pose.Pos.Y, pose.Dir, f.view)
	f.canvas.Text(0, 0, status, tcell.StyleDefault.Reverse(true))
}

// toWorld returns the world point at the center of canvas cell (x, y).
func (f *Frontend) toWorld(x, y int) (float64, float64) {
	wx := -1 + (float64(x)+0.5)*2/float64(f.canvas.Width)
	wy := 1 - (float64(y)+0.5)*2/float64(f.canvas.Height)
	return wx, wy
}

// toCanvas returns the canvas cell containing world point p.
func (f *Frontend) toCanvas(p raycast.Point) (int, int) {
	x := int(math.Floor((p.X + 1) / 2 * float64(f.canvas.Width)))
	y := int(math.Floor((1 - p.Y) / 2 * float64(f.canvas.Height)))
	return x, y
}
