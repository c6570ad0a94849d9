package maploader

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/world/grid"
)

// SpawnPoint defines the viewer's starting pose
type SpawnPoint struct {
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	Dir float64 `json:"dir"` // Heading in radians
}

// MapData represents the loaded map file
type MapData struct {
	Name   string     `json:"name"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Cells  []int      `json:"cells"` // Row-major cell codes, row 0 at y = -1
	Spawn  SpawnPoint `json:"spawn"`
}

// Map is a validated map with its grid built
type Map struct {
	Data *MapData
	Grid *grid.Grid
}

// SpawnPose returns the spawn point as a pose
func (m *Map) SpawnPose() raycast.Pose {
	return raycast.Pose{
		Pos: raycast.Point{X: m.Data.Spawn.X, Y: m.Data.Spawn.Y},
		Dir: m.Data.Spawn.Dir,
	}
}

// LoadMap loads a map from a JSON file
func LoadMap(mapPath string) (*Map, error) {
	data, err := os.ReadFile(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", mapPath, err)
	}

	m, err := ParseMap(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load map file %s: %w", mapPath, err)
	}
	return m, nil
}

// ParseMap decodes and validates map JSON
func ParseMap(data []byte) (*Map, error) {
	var mapData MapData
	if err := json.Unmarshal(data, &mapData); err != nil {
		return nil, fmt.Errorf("failed to parse map: %w", err)
	}
	return FromData(&mapData)
}

// FromData validates mapData and builds its grid
func FromData(mapData *MapData) (*Map, error) {
	if err := validateMapData(mapData); err != nil {
		return nil, fmt.Errorf("invalid map data: %w", err)
	}

	cells := make([]uint8, len(mapData.Cells))
	for i, c := range mapData.Cells {
		cells[i] = uint8(c)
	}

	g, err := grid.New(mapData.Width, mapData.Height, cells)
	if err != nil {
		return nil, err
	}

	return &Map{Data: mapData, Grid: g}, nil
}

// validateMapData checks if the map data is valid
func validateMapData(data *MapData) error {
	if data.Width <= 0 || data.Height <= 0 {
		return fmt.Errorf("invalid map dimensions: %dx%d", data.Width, data.Height)
	}

	if len(data.Cells) != data.Width*data.Height {
		return fmt.Errorf("cells length mismatch: expected %d, got %d", data.Width*data.Height, len(data.Cells))
	}

	for i, c := range data.Cells {
		if c < 0 || c > int(grid.MaxCode) {
			return fmt.Errorf("cell %d (col %d, row %d) has invalid code %d", i, i%data.Width, i/data.Width, c)
		}
	}

	if data.Spawn.X <= -1 || data.Spawn.X >= 1 || data.Spawn.Y <= -1 || data.Spawn.Y >= 1 {
		return fmt.Errorf("spawn point (%.3f, %.3f) is outside the world", data.Spawn.X, data.Spawn.Y)
	}

	col := int((data.Spawn.X + 1) * float64(data.Width) / 2)
	row := int((data.Spawn.Y + 1) * float64(data.Height) / 2)
	if data.Cells[row*data.Width+col] != 0 {
		return fmt.Errorf("spawn point (%.3f, %.3f) is inside a wall", data.Spawn.X, data.Spawn.Y)
	}

	return nil
}

// Builtin returns one of the maps compiled into the binary
func Builtin(name string) (*Map, error) {
	data, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown built-in map %q (available: %v)", name, BuiltinNames())
	}

	copied := *data
	copied.Cells = append([]int(nil), data.Cells...)
	return FromData(&copied)
}

// BuiltinNames lists the built-in maps in sorted order
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
