// Package config provides YAML-based configuration loading for the game:
// map generation parameters, vision, inventory limits and save location.
package config

// Config holds all tunable game settings.
type Config struct {
	Map       MapConfig    `yaml:"map"`
	Vision    VisionConfig `yaml:"vision"`
	Player    PlayerConfig `yaml:"player"`
	Saves     SavesConfig  `yaml:"saves"`
	// Seed for random number generation; 0 means derive one from the clock.
	Seed int64 `yaml:"seed"`
}

// MapConfig defines floor generation parameters.
type MapConfig struct {
	Width           int `yaml:"width"`
	Height          int `yaml:"height"`
	MinRoomSize     int `yaml:"min_room_size"`
	MaxRoomSize     int `yaml:"max_room_size"`
	MinLeafSize     int `yaml:"min_leaf_size"`
	MonstersPerRoom int `yaml:"monsters_per_room"`
	ItemsPerRoom    int `yaml:"items_per_room"`
}

// VisionConfig defines field-of-view parameters.
type VisionConfig struct {
	Radius int `yaml:"radius"`
}

// PlayerConfig defines player starting parameters.
type PlayerConfig struct {
	InventoryCapacity int    `yaml:"inventory_capacity"`
	Name              string `yaml:"name"`
}

// SavesConfig defines where save slots live.
type SavesConfig struct {
	Path string `yaml:"path"`
}

// Default returns the hardcoded fallback configuration.
func Default() Config {
	return Config{
		Map: MapConfig{
			Width: 80, Height: 43,
			MinRoomSize: 6, MaxRoomSize: 12, MinLeafSize: 9,
			MonstersPerRoom: 2, ItemsPerRoom: 1,
		},
		Vision: VisionConfig{Radius: 12},
		Player: PlayerConfig{InventoryCapacity: 26, Name: "Rogue"},
		Saves:  SavesConfig{Path: ""},
	}
}
