// Package shell runs the game from the main menu until the player exits.
// It owns the surface for the lifetime of the process and keeps the high
// score in memory across sessions.
package shell

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/games/runner"
	"github.com/vovakirdan/dino-runner/internal/menu"
)

// GoodbyeDuration is how long the exit screen stays up.
const GoodbyeDuration = 700 * time.Millisecond

// Options configures a Shell.
type Options struct {
	Theme  config.Theme
	Keys   config.Bindings
	Clock  core.Clock
	Logger *log.Logger
}

// Shell drives the menu state machine over a Surface.
type Shell struct {
	surface core.Surface
	theme   config.Theme
	clock   core.Clock
	logger  *log.Logger

	controller   *runner.Controller
	mainMenu     *menu.MainMenu
	gameOver     *menu.GameOverMenu
	instructions *menu.Instructions

	high HighScore
	last runner.Result
}

// New creates a shell. A nil Clock means the system clock and a nil Logger
// means the default logger.
func New(surface core.Surface, opts Options) *Shell {
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	return &Shell{
		surface:      surface,
		theme:        opts.Theme,
		clock:        opts.Clock,
		logger:       opts.Logger,
		controller:   runner.NewController(surface, runner.NewRenderer(opts.Theme), opts.Keys, opts.Clock, opts.Logger),
		mainMenu:     menu.NewMainMenu(opts.Theme),
		gameOver:     menu.NewGameOverMenu(opts.Theme),
		instructions: menu.NewInstructions(opts.Theme, opts.Keys),
	}
}

// HighScore returns the best score recorded so far.
func (s *Shell) HighScore() int {
	return s.high.Best()
}

// Run shows the main menu and keeps going until the player picks Exit.
// It returns nil on every graceful path, including cancellation of ctx.
func (s *Shell) Run(ctx context.Context) error {
	s.surface.HideCursor()
	defer s.surface.ShowCursor()

	state := menu.StateMainMenu
	for state != menu.StateExit {
		ev, err := s.visit(ctx, state)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				s.logger.Info("interrupted", "state", state, "high_score", s.high.Best())
				return nil
			}
			return err
		}

		next, err := menu.Transition(state, ev)
		if err != nil {
			return fmt.Errorf("shell: %w", err)
		}
		s.logger.Debug("transition", "from", state, "event", ev, "to", next)
		state = next
	}

	s.goodbye(ctx)
	return nil
}

// visit runs one state and returns the event that leaves it.
func (s *Shell) visit(ctx context.Context, state menu.State) (menu.Event, error) {
	switch state {
	case menu.StateMainMenu:
		s.mainMenu.Reset()
		for {
			w, _ := s.surface.Size()
			s.mainMenu.Render(s.surface, w)
			s.flush()

			k, err := s.surface.AwaitKey(ctx)
			if err != nil {
				return 0, err
			}
			if sel, ok := s.mainMenu.HandleKey(k); ok {
				return sel.Event(), nil
			}
		}

	case menu.StateInstructions:
		s.instructions.Render(s.surface)
		s.flush()
		if _, err := s.surface.AwaitKey(ctx); err != nil {
			return 0, err
		}
		return menu.EventAnyKey, nil

	case menu.StatePlaying:
		res, err := s.controller.Run(ctx, s.high.Best())
		if err != nil {
			return 0, err
		}
		s.last = res
		if s.high.Record(res.Score) {
			s.logger.Info("new high score", "score", res.Score)
		}
		return menu.EventSessionEnded, nil

	case menu.StateGameOver:
		s.gameOver.Reset()
		for {
			w, _ := s.surface.Size()
			s.gameOver.Render(s.surface, w, s.last.Score, s.high.Best())
			s.flush()

			k, err := s.surface.AwaitKey(ctx)
			if err != nil {
				return 0, err
			}
			if sel, ok := s.gameOver.HandleKey(k); ok {
				return sel.Event(), nil
			}
		}
	}
	return 0, fmt.Errorf("shell: no screen for state %s", state)
}

func (s *Shell) goodbye(ctx context.Context) {
	w, h := s.surface.Size()
	menu.RenderGoodbye(s.surface, w, h, s.theme.Title)
	s.flush()

	// Cancellation only cuts the pause short.
	_ = s.clock.Sleep(ctx, GoodbyeDuration)
}

func (s *Shell) flush() {
	if err := s.surface.Flush(); err != nil {
		s.logger.Warn("flush failed", "error", err)
	}
}
