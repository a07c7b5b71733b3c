// Package config provides YAML-based configuration loading for the runner:
// terminal driver, logging, key bindings and color theme. Gameplay constants
// are fixed and not part of the config.
package config

import (
	"fmt"

	"github.com/vovakirdan/dino-runner/internal/core"
)

// Config is the top-level runner configuration.
type Config struct {
	Driver string      `yaml:"driver"`
	Log    LogConfig   `yaml:"log"`
	Keys   KeyConfig   `yaml:"keys"`
	Theme  ThemeConfig `yaml:"theme"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// KeyConfig binds in-game actions to key names (see core.ParseKey).
type KeyConfig struct {
	Jump []string `yaml:"jump"`
	Quit []string `yaml:"quit"`
}

// ThemeConfig names a color (see core.ParseColor) for each drawn element.
type ThemeConfig struct {
	Title    string `yaml:"title"`
	HUD      string `yaml:"hud"`
	Sun      string `yaml:"sun"`
	Moon     string `yaml:"moon"`
	Ground   string `yaml:"ground"`
	Player   string `yaml:"player"`
	Obstacle string `yaml:"obstacle"`
	Menu     string `yaml:"menu"`
	Cursor   string `yaml:"cursor"`
}

// Theme is a resolved ThemeConfig.
type Theme struct {
	Title    core.Color
	HUD      core.Color
	Sun      core.Color
	Moon     core.Color
	Ground   core.Color
	Player   core.Color
	Obstacle core.Color
	Menu     core.Color
	Cursor   core.Color
}

// Bindings is a resolved KeyConfig.
type Bindings struct {
	Jump core.KeySet
	Quit core.KeySet
}

// Resolve parses every color name.
func (t ThemeConfig) Resolve() (Theme, error) {
	var th Theme
	fields := []struct {
		name string
		src  string
		dst  *core.Color
	}{
		{"title", t.Title, &th.Title},
		{"hud", t.HUD, &th.HUD},
		{"sun", t.Sun, &th.Sun},
		{"moon", t.Moon, &th.Moon},
		{"ground", t.Ground, &th.Ground},
		{"player", t.Player, &th.Player},
		{"obstacle", t.Obstacle, &th.Obstacle},
		{"menu", t.Menu, &th.Menu},
		{"cursor", t.Cursor, &th.Cursor},
	}
	for _, f := range fields {
		c, err := core.ParseColor(f.src)
		if err != nil {
			return Theme{}, fmt.Errorf("config: theme.%s: %w", f.name, err)
		}
		*f.dst = c
	}
	return th, nil
}

// Resolve parses the key names. A key bound to both actions is rejected.
func (k KeyConfig) Resolve() (Bindings, error) {
	jump, err := core.ParseKeySet(k.Jump)
	if err != nil {
		return Bindings{}, fmt.Errorf("config: keys.jump: %w", err)
	}
	quit, err := core.ParseKeySet(k.Quit)
	if err != nil {
		return Bindings{}, fmt.Errorf("config: keys.quit: %w", err)
	}
	if len(jump) == 0 || len(quit) == 0 {
		return Bindings{}, fmt.Errorf("config: keys.jump and keys.quit must not be empty")
	}
	for key := range jump {
		if quit.Has(key) {
			return Bindings{}, fmt.Errorf("config: key %q bound to both jump and quit", key)
		}
	}
	return Bindings{Jump: jump, Quit: quit}, nil
}
