package simulation

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/raycaster/internal/core/projection"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	for _, name := range PresetNames() {
		cfg, err := Preset(name)
		if err != nil {
			t.Fatalf("Preset %s: %v", name, err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Preset %s is invalid: %v", name, err)
		}
		if _, err := cfg.LoadMap(); err != nil {
			t.Errorf("Preset %s map failed to load: %v", name, err)
		}
	}

	if _, err := Preset("wireframe"); err == nil {
		t.Error("Expected error for unknown preset")
	}
}

func TestColoredPreset(t *testing.T) {
	cfg, err := Preset("colored")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Rays != 60 || cfg.FOV != 1.5 || cfg.Map != "arena" {
		t.Errorf("Unexpected colored preset %+v", cfg)
	}
	if cfg.Palette().Mode != projection.ModeColor {
		t.Error("Expected color surfaces")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "none.json"), nil)
	if err != nil {
		t.Fatalf("Expected defaults for missing file, got %v", err)
	}
	if cfg.Rays != DefaultConfig().Rays {
		t.Errorf("Expected default rays, got %d", cfg.Rays)
	}
}

func TestLoadConfigOverlaysBase(t *testing.T) {
	path := writeConfig(t, `{
		"rays": 90,
		"view": "2d",
		"texture_table": {"4": {"color": [0, 0, 1], "texture": "brick"}}
	}`)

	base, _ := Preset("colored")
	cfg, err := LoadConfig(path, base)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Rays != 90 {
		t.Errorf("Expected rays 90, got %d", cfg.Rays)
	}
	if cfg.Map != "arena" || cfg.FOV != 1.5 {
		t.Errorf("Expected preset values to survive, got map %s fov %v", cfg.Map, cfg.FOV)
	}
	if cfg.View != ViewTopDown {
		t.Errorf("Expected 2d view, got %s", cfg.View)
	}
	if len(cfg.TextureTable) != 1 {
		t.Fatalf("Expected the file's table to replace the base, got %v", cfg.TextureTable)
	}

	m := cfg.Palette().Material(4)
	if m.Color != (projection.RGB{B: 1}) || m.Texture != "brick" {
		t.Errorf("Unexpected material for code 4: %+v", m)
	}
	if base.Rays != 60 {
		t.Error("Expected base config to be left untouched")
	}
}

func TestLoadConfigViewIgnoresCase(t *testing.T) {
	for _, view := range []string{"2D", "2d"} {
		cfg, err := LoadConfig(writeConfig(t, `{"view": "`+view+`"}`), nil)
		if err != nil {
			t.Fatalf("view %q: %v", view, err)
		}
		if cfg.View != ViewTopDown {
			t.Errorf("view %q: expected %s, got %s", view, ViewTopDown, cfg.View)
		}
	}

	cfg, err := LoadConfig(writeConfig(t, `{"view": "3D"}`), nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.View != ViewFirstPerson {
		t.Errorf("Expected %s, got %s", ViewFirstPerson, cfg.View)
	}
}

func TestDefaultBackdrop(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.Ceiling(); got != (projection.RGB{R: 0.5, G: 0.5, B: 0.5}) {
		t.Errorf("Expected mid gray ceiling, got %+v", got)
	}
	if got := cfg.Floor(); got != (projection.RGB{B: 1}) {
		t.Errorf("Expected blue floor, got %+v", got)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"rays": `},
		{"zero rays", `{"rays": 0}`},
		{"wide fov", `{"fov": 4}`},
		{"bad view", `{"view": "iso"}`},
		{"bad code", `{"texture_table": {"12": {"texture": "stone"}}}`},
		{"no map", `{"map": ""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tt.body), nil); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestDerivedMovementSettings(t *testing.T) {
	cfg := DefaultConfig()
	m, err := cfg.LoadMap()
	if err != nil {
		t.Fatal(err)
	}

	s := cfg.MovementSettings(m.Grid)
	if math.Abs(s.MoveSpeed-4.0/12) > 1e-12 {
		t.Errorf("Expected move speed 4/12, got %v", s.MoveSpeed)
	}
	if math.Abs(s.MinClearance-0.2/12) > 1e-12 {
		t.Errorf("Expected clearance 0.2/12, got %v", s.MinClearance)
	}
	// One clamped frame never travels further than the clearance.
	if s.MoveSpeed*s.MaxFrameTime > s.MinClearance+1e-12 {
		t.Errorf("Max step %v exceeds clearance %v", s.MoveSpeed*s.MaxFrameTime, s.MinClearance)
	}

	cfg.MoveSpeed = 1.5
	if got := cfg.MovementSettings(m.Grid).MoveSpeed; got != 1.5 {
		t.Errorf("Expected explicit move speed 1.5, got %v", got)
	}
}

func TestTextureFiles(t *testing.T) {
	files := DefaultConfig().TextureFiles()
	if files["stone"] != "assets/textures/stone.png" {
		t.Errorf("Unexpected stone file %q", files["stone"])
	}
	if len(files) != 3 {
		t.Errorf("Expected 3 textures, got %d", len(files))
	}
}

func TestLoadMapPrefersMapDir(t *testing.T) {
	dir := t.TempDir()
	body := `{"name": "classic", "width": 3, "height": 3,
		"cells": [1,1,1, 1,0,1, 1,1,1], "spawn": {"x": 0, "y": 0, "dir": 0}}`
	if err := os.WriteFile(filepath.Join(dir, "small.json"), []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.MapDir = dir
	m, err := cfg.LoadMap()
	if err != nil {
		t.Fatalf("Failed to load map: %v", err)
	}
	if m.Grid.Width() != 3 {
		t.Errorf("Expected the 3x3 map from %s to shadow the built-in, got width %d", dir, m.Grid.Width())
	}

	cfg.MapDir = ""
	if m, _ := cfg.LoadMap(); m.Grid.Width() != 12 {
		t.Errorf("Expected the built-in classic map, got width %d", m.Grid.Width())
	}
}
