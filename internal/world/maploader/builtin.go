package maploader

var builtins = map[string]*MapData{
	// The original 12x12 maze with three wall variants.
	"classic": {
		Name:   "classic",
		Width:  12,
		Height: 12,
		Cells: []int{
			1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
			1, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 1,
			1, 0, 1, 0, 1, 1, 0, 0, 0, 3, 0, 1,
			1, 0, 0, 0, 1, 0, 0, 1, 0, 0, 0, 1,
			1, 3, 2, 0, 1, 0, 1, 1, 0, 0, 0, 1,
			1, 0, 0, 0, 1, 0, 0, 1, 0, 1, 1, 1,
			1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 1, 1,
			1, 1, 0, 1, 1, 1, 0, 1, 0, 0, 0, 1,
			1, 0, 0, 0, 0, 0, 0, 1, 0, 1, 1, 1,
			1, 0, 3, 1, 1, 1, 0, 1, 0, 1, 0, 1,
			1, 0, 0, 0, 0, 0, 2, 1, 0, 0, 0, 1,
			1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
		},
		Spawn: SpawnPoint{X: 0.8, Y: 0.8, Dir: 3.7},
	},

	// Small room with accent pillars, used by the flat-color preset.
	"arena": {
		Name:   "arena",
		Width:  8,
		Height: 8,
		Cells: []int{
			1, 1, 1, 1, 1, 1, 1, 1,
			1, 0, 0, 0, 0, 0, 0, 1,
			1, 0, 2, 0, 0, 3, 0, 1,
			1, 0, 0, 0, 0, 0, 0, 1,
			1, 0, 0, 0, 0, 0, 0, 1,
			1, 0, 3, 0, 0, 2, 0, 1,
			1, 0, 0, 0, 0, 0, 0, 1,
			1, 1, 1, 1, 1, 1, 1, 1,
		},
		Spawn: SpawnPoint{X: 0.125, Y: 0.125, Dir: 0},
	},

	// A single east-west corridor capped by accent walls.
	"corridor": {
		Name:   "corridor",
		Width:  8,
		Height: 8,
		Cells: []int{
			1, 1, 1, 1, 1, 1, 1, 1,
			1, 1, 1, 1, 1, 1, 1, 1,
			1, 1, 1, 1, 1, 1, 1, 1,
			1, 1, 1, 1, 1, 1, 1, 1,
			2, 0, 0, 0, 0, 0, 0, 3,
			1, 1, 1, 1, 1, 1, 1, 1,
			1, 1, 1, 1, 1, 1, 1, 1,
			1, 1, 1, 1, 1, 1, 1, 1,
		},
		Spawn: SpawnPoint{X: 0.35, Y: 0.2, Dir: 1.0},
	},
}
