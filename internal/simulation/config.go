// Package simulation provides the engine configuration. Every tunable of the
// raycaster is loaded from a data file so one binary covers every variant.
package simulation

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"chosenoffset.com/raycaster/internal/core/movement"
	"chosenoffset.com/raycaster/internal/core/projection"
	"chosenoffset.com/raycaster/internal/world/grid"
	"chosenoffset.com/raycaster/internal/world/maploader"
)

// Config holds all engine settings
type Config struct {
	// World
	Map     string `json:"map"`      // Map name in MapDir or built in, used when MapFile is empty
	MapFile string `json:"map_file"` // Path to a JSON map file
	MapDir  string `json:"map_dir"`  // Directory scanned for named maps

	// Ray fan
	Rays        int     `json:"rays"`
	FOV         float64 `json:"fov"`          // Radians
	MaxDistance float64 `json:"max_distance"` // Hits beyond this are not drawn

	// Movement, zero speeds and clearance are derived from the map size
	MoveSpeed    float64 `json:"move_speed"`     // World units per second
	LookSpeed    float64 `json:"look_speed"`     // Radians per second
	MinClearance float64 `json:"min_clearance"`  // World units
	MaxFrameTime float64 `json:"max_frame_time"` // Seconds
	TickRate     int     `json:"tick_rate"`      // Ticks per second

	// Appearance
	View         string               `json:"view"`     // "3d" or "2d"
	Minimap      bool                 `json:"minimap"`  // Overlay the top-down view on the 3d view
	Surfaces     string               `json:"surfaces"` // "texture" or "color"
	TextureTable map[int]TextureEntry `json:"texture_table"`
	CeilingColor [3]float64           `json:"ceiling_color"`
	FloorColor   [3]float64           `json:"floor_color"`

	// Window
	ScreenWidth  int `json:"screen_width"`
	ScreenHeight int `json:"screen_height"`
}

// TextureEntry is the appearance of one wall code
type TextureEntry struct {
	Color   [3]float64 `json:"color"`   // Flat color, components in [0, 1]
	Texture string     `json:"texture"` // Texture name, also the placeholder pattern
	File    string     `json:"file"`    // Optional image file, placeholder used when missing
}

const (
	ViewFirstPerson = "3d"
	ViewTopDown     = "2d"
)

// DefaultConfig returns the textured classic maze
func DefaultConfig() *Config {
	return &Config{
		Map:          "classic",
		MapDir:       "maps",
		Rays:         256,
		FOV:          1.2,
		MaxDistance:  projection.DefaultMaxDistance,
		LookSpeed:    2.0,
		MaxFrameTime: 0.05,
		TickRate:     60,
		View:         ViewFirstPerson,
		Surfaces:     "texture",
		TextureTable: map[int]TextureEntry{
			1: {Color: [3]float64{1, 0, 0}, Texture: "stone", File: "assets/textures/stone.png"},
			2: {Color: [3]float64{0, 1, 0}, Texture: "brick", File: "assets/textures/brick.png"},
			3: {Color: [3]float64{0.7071067811865476, 0, 0.7071067811865476}, Texture: "mossy", File: "assets/textures/mossy.png"},
		},
		CeilingColor: [3]float64{0.5, 0.5, 0.5},
		FloorColor:   [3]float64{0, 0, 1},
		ScreenWidth:  1024,
		ScreenHeight: 768,
	}
}

// PresetNames lists the names accepted by Preset
func PresetNames() []string {
	return []string{"colored", "textured"}
}

// Preset returns a named variant of the default config
func Preset(name string) (*Config, error) {
	cfg := DefaultConfig()
	switch name {
	case "textured", "":
	case "colored":
		cfg.Map = "arena"
		cfg.Rays = 60
		cfg.FOV = 1.5
		cfg.Surfaces = "color"
	default:
		return nil, fmt.Errorf("unknown preset %q (available: %v)", name, PresetNames())
	}
	return cfg, nil
}

// LoadConfig loads config from a JSON file on top of base. A missing file
// returns base unchanged.
func LoadConfig(path string, base *Config) (*Config, error) {
	if base == nil {
		base = DefaultConfig()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return base, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// A table in the file replaces the base table as a whole
	config := *base
	config.TextureTable = nil
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if config.TextureTable == nil {
		config.TextureTable = base.TextureTable
	}
	config.View = strings.ToLower(config.View)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &config, nil
}

// Validate checks the settings that have no sensible fallback
func (c *Config) Validate() error {
	if c.Rays <= 0 {
		return fmt.Errorf("rays must be positive, got %d", c.Rays)
	}
	if c.FOV <= 0 || c.FOV >= math.Pi {
		return fmt.Errorf("fov must be in (0, pi), got %v", c.FOV)
	}
	if c.MoveSpeed < 0 || c.LookSpeed < 0 || c.MinClearance < 0 || c.MaxFrameTime < 0 {
		return fmt.Errorf("movement settings must not be negative")
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %d", c.TickRate)
	}
	if c.View != ViewFirstPerson && c.View != ViewTopDown {
		return fmt.Errorf("view must be %q or %q, got %q", ViewFirstPerson, ViewTopDown, c.View)
	}
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("invalid screen size: %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.Map == "" && c.MapFile == "" {
		return fmt.Errorf("either map or map_file must be set")
	}
	for code := range c.TextureTable {
		if code <= 0 || code > int(grid.MaxCode) {
			return fmt.Errorf("texture_table has invalid wall code %d", code)
		}
	}
	return nil
}

// LoadMap resolves the configured map, preferring MapFile, then a map named
// Map in MapDir, then the built-in map of that name
func (c *Config) LoadMap() (*maploader.Map, error) {
	if c.MapFile != "" {
		return maploader.LoadMap(c.MapFile)
	}
	return maploader.Resolve(c.Map, c.MapDir)
}

// MovementSettings returns the movement constants for g, deriving unset
// speed and clearance from the cell size.
func (c *Config) MovementSettings(g *grid.Grid) movement.Settings {
	s := movement.Settings{
		MoveSpeed:    c.MoveSpeed,
		LookSpeed:    c.LookSpeed,
		MinClearance: c.MinClearance,
		MaxFrameTime: c.MaxFrameTime,
	}
	if s.MoveSpeed == 0 {
		s.MoveSpeed = 4 / float64(g.Height())
	}
	if s.MinClearance == 0 {
		s.MinClearance = 0.1 * g.CellHeight()
	}
	return s
}

// Projector returns a projector for the configured fan on g
func (c *Config) Projector(g *grid.Grid) *projection.Projector {
	return projection.NewProjector(g, c.Rays, c.FOV, c.MaxDistance)
}

// Palette builds the surface palette from the texture table
func (c *Config) Palette() *projection.Palette {
	p := projection.DefaultPalette(projection.ParseMode(c.Surfaces))
	for code, entry := range c.TextureTable {
		p.Materials[uint8(code)] = projection.Material{
			Color:   toRGB(entry.Color),
			Texture: entry.Texture,
		}
	}
	return p
}

// TextureFiles maps texture names to their image files
func (c *Config) TextureFiles() map[string]string {
	files := make(map[string]string)
	for _, code := range c.codes() {
		entry := c.TextureTable[code]
		if entry.Texture != "" {
			files[entry.Texture] = entry.File
		}
	}
	return files
}

// Ceiling returns the ceiling color
func (c *Config) Ceiling() projection.RGB {
	return toRGB(c.CeilingColor)
}

// Floor returns the floor color
func (c *Config) Floor() projection.RGB {
	return toRGB(c.FloorColor)
}

func (c *Config) codes() []int {
	codes := make([]int, 0, len(c.TextureTable))
	for code := range c.TextureTable {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}

func toRGB(c [3]float64) projection.RGB {
	return projection.RGB{R: c[0], G: c[1], B: c[2]}
}
