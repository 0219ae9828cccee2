// Package config provides YAML-based application configuration for the
// minesweeper CLI. Board presets (mine count and dimensions) are fixed
// at compile time in the minefield package; this covers everything
// around the game: default difficulty token, result database and
// logging.
package config

// Config is the top-level application configuration.
type Config struct {
	// DefaultDifficulty is the difficulty token used when the play
	// command gets no argument. Empty means prompt interactively.
	DefaultDifficulty string `yaml:"default_difficulty"`

	// ShowHelpOnStart prints the how-to-play text before the first
	// game instead of asking.
	ShowHelpOnStart bool `yaml:"show_help_on_start"`

	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig controls the game result history store.
type DatabaseConfig struct {
	// Path to the SQLite database. A leading ~ expands to the home
	// directory.
	Path string `yaml:"path"`

	// Disabled skips result recording entirely.
	Disabled bool `yaml:"disabled"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}
