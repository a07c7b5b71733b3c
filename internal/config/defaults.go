package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultConfig returns the built-in configuration, used when the embedded
// YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Driver: "bubbletea",
		Log: LogConfig{
			Level: "info",
		},
		Keys: KeyConfig{
			Jump: []string{"space", "up"},
			Quit: []string{"x", "X"},
		},
		Theme: ThemeConfig{
			Title:    "bright_cyan",
			HUD:      "white",
			Sun:      "bright_yellow",
			Moon:     "bright_white",
			Ground:   "yellow",
			Player:   "bright_green",
			Obstacle: "green",
			Menu:     "white",
			Cursor:   "bright_yellow",
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
