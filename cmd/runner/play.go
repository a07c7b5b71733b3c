package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/games/runner"
	"github.com/vovakirdan/dino-runner/internal/platform"
	"github.com/vovakirdan/dino-runner/internal/registry"
	"github.com/vovakirdan/dino-runner/internal/shell"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game",
	Long: `Open the main menu and play.

Controls (defaults, see 'runner config'):
  Space/Up   - Jump
  X          - Quit the current run
  1/2/3      - Pick a menu entry (Up/Down + Enter also work)
  Ctrl+C     - Leave immediately

The terminal must be at least 80x25.`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	if err := play(cmd.Context()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play sets everything up, runs the shell and tears the terminal down
// again. Errors returned from here are startup or driver failures.
func play(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	theme, err := cfg.Theme.Resolve()
	if err != nil {
		return err
	}
	keys, err := cfg.Keys.Resolve()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("starting", "driver", cfg.Driver, "seed", seed)

	if !registry.Exists(cfg.Driver) {
		return fmt.Errorf("%w %q (run 'runner drivers')", registry.ErrUnknownDriver, cfg.Driver)
	}
	if err := platform.Preflight(runner.ScreenW, runner.ScreenH); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	surface, err := registry.Create(cfg.Driver, registry.Options{
		Width:     runner.ScreenW,
		Height:    runner.ScreenH,
		Interrupt: cancel,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := surface.Close(); err != nil {
			logger.Warn("closing terminal", "error", err)
		}
	}()

	sh := shell.New(surface, shell.Options{
		Theme:  theme,
		Keys:   keys,
		Logger: logger,
	})
	if err := sh.Run(ctx); err != nil {
		return err
	}
	logger.Info("bye", "high_score", sh.HighScore())
	return nil
}

// loadConfig reads the config file, then applies RUNNER_* environment
// variables and finally flags.
func loadConfig() (config.Config, error) {
	env, err := config.ParseEnv()
	if err != nil {
		return config.Config{}, err
	}

	path := flagConfig
	if path == "" {
		path = env.Config
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	env.Apply(&cfg)

	if flagDriver != "" {
		cfg.Driver = flagDriver
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

// newLogger builds the process logger. The terminal belongs to the game,
// so logs go to a file or nowhere.
func newLogger(lc config.LogConfig) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(lc.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("config: log level: %w", err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if lc.File != "" {
		f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("log: open %s: %w", lc.File, err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
		Level:           level,
	})
	return logger, closeFn, nil
}
