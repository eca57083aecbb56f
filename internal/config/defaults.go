package config

import (
	_ "embed"
)

//go:embed defaults/mimic.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Round: Round{TickRate: 30},
		Audio: Audio{Enabled: true},
		DB:    DB{Path: "~/.mimic/mimic.db"},
	}
}
