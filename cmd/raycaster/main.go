package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"chosenoffset.com/raycaster/internal/game"
	"chosenoffset.com/raycaster/internal/logger"
	ebitenrender "chosenoffset.com/raycaster/internal/render/ebiten"
	"chosenoffset.com/raycaster/internal/simulation"
	"chosenoffset.com/raycaster/internal/sound"
	"chosenoffset.com/raycaster/internal/term"
	"chosenoffset.com/raycaster/internal/world/maploader"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to a JSON config file")
	mapName := flag.String("map", "", "Built-in map name or path to a .json map file")
	backend := flag.String("backend", "ebiten", "Frontend to run: ebiten or term")
	preset := flag.String("preset", "textured", "Base settings: colored or textured")
	list := flag.Bool("list", false, "List available maps and exit")
	flag.Parse()

	// The terminal frontend owns stdout, so its logs go to LOG_FILE or nowhere
	if *backend == "term" {
		logger.Init(io.Discard)
	} else {
		logger.Init(os.Stdout)
	}
	log := logger.Log

	base, err := simulation.Preset(*preset)
	if err != nil {
		log.Fatal(err)
	}
	cfg, err := simulation.LoadConfig(*configPath, base)
	if err != nil {
		log.WithError(err).Fatal("Failed to load config")
	}

	if *list {
		listMaps(cfg.MapDir)
		return
	}

	if *mapName != "" {
		cfg.Map = *mapName
		cfg.MapFile = ""
	}
	if flag.NArg() > 0 && strings.EqualFold(flag.Arg(0), simulation.ViewTopDown) {
		cfg.View = simulation.ViewTopDown
	}

	m, err := cfg.LoadMap()
	if err != nil {
		log.WithError(err).Fatal("Failed to load map")
	}

	log.WithFields(logrus.Fields{
		"backend": *backend,
		"preset":  *preset,
		"map":     m.Data.Name,
		"view":    cfg.View,
	}).Info("Starting raycaster")

	switch *backend {
	case "ebiten":
		runEbiten(cfg, m)
	case "term":
		runTerminal(cfg, m)
	default:
		log.Fatalf("Unknown backend %q (available: ebiten, term)", *backend)
	}
}

func listMaps(dir string) {
	fmt.Println("Built-in maps:")
	for _, name := range maploader.BuiltinNames() {
		fmt.Printf("  %s\n", name)
	}

	maps, err := maploader.ScanDir(dir)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to scan map directory")
	}
	if len(maps) == 0 {
		return
	}
	fmt.Printf("Maps in %s:\n", dir)
	for _, m := range maps {
		fmt.Printf("  %-12s %dx%d  %s\n", m.Name, m.Width, m.Height, m.Path)
	}
}

func runEbiten(cfg *simulation.Config, m *maploader.Map) {
	renderer, err := ebitenrender.NewRenderer()
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to create renderer")
	}

	g, err := game.New(game.Options{
		Config:    cfg,
		Map:       m,
		Renderer:  renderer,
		InputMgr:  ebitenrender.NewInputManager(),
		Loader:    ebitenrender.NewResourceLoader(),
		BumpSound: ebitenrender.NewSound(sound.SampleRate, sound.Bump()),
	})
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to create game")
	}

	engine := ebitenrender.NewEngine()
	engine.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	engine.SetWindowTitle("Raycaster - " + m.Data.Name)
	engine.SetWindowResizable(true)
	engine.SetTPS(cfg.TickRate)

	if err := engine.RunGame(g); err != nil {
		logger.Log.Fatal(err)
	}
}

func runTerminal(cfg *simulation.Config, m *maploader.Map) {
	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to open terminal")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := term.New(screen, cfg, m).Run(ctx); err != nil {
		logger.Log.Fatal(err)
	}
}
