package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/dino-runner/internal/core"
)

func TestEmbeddedDefaultMatchesDefaultConfig(t *testing.T) {
	got := embeddedDefault()
	want := DefaultConfig()

	if !reflect.DeepEqual(got, want) {
		t.Errorf("embedded default = %+v\nexpected %+v", got, want)
	}
}

func TestLoadWithoutFilesUsesDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Driver != "bubbletea" {
		t.Errorf("Driver = %q, expected bubbletea", cfg.Driver)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".runner")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("driver: tcell\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Driver != "tcell" {
		t.Errorf("Driver = %q, expected tcell", cfg.Driver)
	}
	if cfg.Theme.Player != "bright_green" {
		t.Errorf("unset fields should keep defaults, theme.player = %q", cfg.Theme.Player)
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := []byte("keys:\n  jump: [w]\ntheme:\n  player: red\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if !reflect.DeepEqual(cfg.Keys.Jump, []string{"w"}) {
		t.Errorf("Keys.Jump = %v, expected [w]", cfg.Keys.Jump)
	}
	if !reflect.DeepEqual(cfg.Keys.Quit, []string{"x", "X"}) {
		t.Errorf("Keys.Quit = %v, expected default [x X]", cfg.Keys.Quit)
	}
	if cfg.Theme.Player != "red" {
		t.Errorf("Theme.Player = %q, expected red", cfg.Theme.Player)
	}
	if cfg.Driver != "bubbletea" {
		t.Errorf("Driver = %q, expected default bubbletea", cfg.Driver)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load should fail for a missing custom path")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("keys: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load should fail for invalid YAML")
	}
}

func TestThemeResolve(t *testing.T) {
	th, err := DefaultConfig().Theme.Resolve()
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if th.Player != core.ColorBrightGreen {
		t.Errorf("Player = %d, expected %d", th.Player, core.ColorBrightGreen)
	}
	if th.Sun != core.ColorBrightYellow {
		t.Errorf("Sun = %d, expected %d", th.Sun, core.ColorBrightYellow)
	}

	bad := DefaultConfig().Theme
	bad.Ground = "plaid"
	if _, err := bad.Resolve(); err == nil {
		t.Error("Resolve should reject an unknown color")
	}
}

func TestKeysResolve(t *testing.T) {
	b, err := DefaultConfig().Keys.Resolve()
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if !b.Jump.Has(core.KeySpace) || !b.Jump.Has(core.KeyUp) {
		t.Error("default jump keys should be space and up")
	}
	if !b.Quit.Has('x') || !b.Quit.Has('X') {
		t.Error("default quit keys should be x and X")
	}

	tests := []struct {
		name string
		keys KeyConfig
	}{
		{"unknown key", KeyConfig{Jump: []string{"warp"}, Quit: []string{"x"}}},
		{"empty jump", KeyConfig{Quit: []string{"x"}}},
		{"empty quit", KeyConfig{Jump: []string{"space"}}},
		{"overlap", KeyConfig{Jump: []string{"space", "x"}, Quit: []string{"x"}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.keys.Resolve(); err == nil {
				t.Error("Resolve() should fail")
			}
		})
	}
}
