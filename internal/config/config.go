// Package config provides YAML-based configuration loading for the game.
package config

// Config contains all tunable settings. Judging tolerances and the level
// catalog are deliberately not configurable; they define the game.
type Config struct {
	Round Round `yaml:"round"`
	Audio Audio `yaml:"audio"`
	DB    DB    `yaml:"db"`
}

// Round contains presentation-side round settings.
type Round struct {
	TickRate int `yaml:"tick_rate"` // activation ticks per second
}

// Audio contains speaker settings.
type Audio struct {
	Enabled bool `yaml:"enabled"`
}

// DB contains persistence settings.
type DB struct {
	Path string `yaml:"path"` // SQLite file; ~ expands to the home directory
}
