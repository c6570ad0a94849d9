package maploader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MapEntry represents a map file discovered on disk
type MapEntry struct {
	Name   string // Name from the file, or the file name without extension
	Path   string // Path to the JSON file
	Width  int
	Height int
}

// ScanDir scans dir for map files. Files that fail to load are skipped, and a
// missing directory yields no entries.
func ScanDir(dir string) ([]MapEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read map directory: %w", err)
	}

	var maps []MapEntry
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if !strings.EqualFold(filepath.Ext(name), ".json") {
			continue
		}

		path := filepath.Join(dir, name)
		m, err := LoadMap(path)
		if err != nil {
			continue
		}

		mapName := m.Data.Name
		if mapName == "" {
			mapName = strings.TrimSuffix(name, filepath.Ext(name))
		}
		maps = append(maps, MapEntry{
			Name:   mapName,
			Path:   path,
			Width:  m.Data.Width,
			Height: m.Data.Height,
		})
	}

	return maps, nil
}

// Resolve loads name as a map file path when it ends in .json, then as a map
// in dir, then as a built-in map.
func Resolve(name, dir string) (*Map, error) {
	if strings.EqualFold(filepath.Ext(name), ".json") {
		return LoadMap(name)
	}

	if dir != "" {
		maps, err := ScanDir(dir)
		if err != nil {
			return nil, err
		}
		for _, e := range maps {
			if e.Name == name {
				return LoadMap(e.Path)
			}
		}
	}

	return Builtin(name)
}
