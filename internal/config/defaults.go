package config

import (
	_ "embed"
)

//go:embed defaults/minesweeper.yaml
var defaultYAML []byte

// Default returns the default configuration, used when no config file
// is present and as the fallback if the embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		DefaultDifficulty: "",
		ShowHelpOnStart:   false,
		Database: DatabaseConfig{
			Path:     "~/.minesweeper/results.db",
			Disabled: false,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// DefaultYAML returns the embedded default configuration file, useful
// as a starting point for a user config.
func DefaultYAML() []byte {
	return defaultYAML
}
