package game

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/raycaster/internal/core/projection"
	"chosenoffset.com/raycaster/internal/logger"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/simulation"
	"chosenoffset.com/raycaster/internal/world/maploader"
)

// messageTime is how long a toast stays on screen.
const messageTime = 2.0

// Game is the windowed frontend: it feeds input into a Session every tick
// and draws the result.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Session      *Session
	View         View
	Ceiling      projection.RGB
	Floor        projection.RGB
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Textures     map[string]render.Image
	BumpSound    render.SoundPlayer
	Clock        *FrameClock

	// UI state
	Messages    []Message
	ShowHUD     bool
	ShowMinimap bool
	FPS         float64
	wasBlocked  bool

	minimap     render.Image
	minimapSize int
}

// Options carries the collaborators New wires together.
type Options struct {
	Config    *simulation.Config
	Map       *maploader.Map
	Renderer  render.Renderer
	InputMgr  render.InputManager
	Loader    render.ResourceLoader // nil uses placeholder textures only
	BumpSound render.SoundPlayer    // nil plays nothing
	Clock     *FrameClock           // nil uses the wall clock
}

// New builds a game ready for its first Update.
func New(opts Options) (*Game, error) {
	if opts.Config == nil || opts.Map == nil {
		return nil, fmt.Errorf("config and map are required")
	}
	if opts.Renderer == nil || opts.InputMgr == nil {
		return nil, fmt.Errorf("renderer and input manager are required")
	}

	clock := opts.Clock
	if clock == nil {
		clock = NewFrameClock()
	}

	g := &Game{
		ScreenWidth:  opts.Config.ScreenWidth,
		ScreenHeight: opts.Config.ScreenHeight,
		Session:      NewSession(opts.Config, opts.Map),
		View:         ParseView(opts.Config.View),
		Ceiling:      opts.Config.Ceiling(),
		Floor:        opts.Config.Floor(),
		Renderer:     opts.Renderer,
		InputMgr:     opts.InputMgr,
		BumpSound:    opts.BumpSound,
		Clock:        clock,
		ShowHUD:      true,
		ShowMinimap:  opts.Config.Minimap,
	}

	if g.Session.Palette.Mode == projection.ModeTexture {
		g.Textures = LoadTextures(opts.Renderer, opts.Loader, opts.Config.TextureFiles())
	}

	logger.Log.WithFields(logrus.Fields{
		"map":      opts.Map.Data.Name,
		"rays":     g.Session.Projector.Rays,
		"fov":      g.Session.Projector.FOV,
		"surfaces": g.Session.Palette.Mode.String(),
		"view":     g.View.String(),
	}).Info("Game ready")

	return g, nil
}

// Update handles one tick of input and simulation.
func (g *Game) Update() error {
	dt := g.Clock.Tick()

	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) || g.InputMgr.IsKeyJustPressed(render.KeyQ) {
		logger.Log.Info("Quit requested")
		return render.ErrTerminate
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyTab) {
		g.View = g.View.Toggle()
		g.ShowMessage(fmt.Sprintf("View: %s", g.View))
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyM) {
		g.ShowMinimap = !g.ShowMinimap
		if g.ShowMinimap {
			g.ShowMessage("Minimap on")
		} else {
			g.ShowMessage("Minimap off")
		}
	}

	res := g.Session.Advance(IntentFromInput(g.InputMgr), dt)

	// Play once per contact, not every tick spent against the wall
	if res.Blocked() && !g.wasBlocked && g.BumpSound != nil {
		g.BumpSound.Play()
	}
	g.wasBlocked = res.Blocked()

	g.updateMessages(dt)
	g.updateFPS(dt)
	return nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: messageTime,
		MaxTime:  messageTime,
	})
	logger.Log.WithField("message", text).Debug("Message")
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// updateFPS keeps an exponential moving average of the tick rate.
func (g *Game) updateFPS(dt float64) {
	if dt <= 0 {
		return
	}
	if g.FPS == 0 {
		g.FPS = 1 / dt
		return
	}
	g.FPS = g.FPS*0.9 + (1/dt)*0.1
}
