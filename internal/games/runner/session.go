package runner

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// TickDuration is the fixed simulation step, about 18 frames per second.
const TickDuration = 55 * time.Millisecond

// Result is the outcome of one play session.
type Result struct {
	Score int  // Obstacles passed; partial when the player quit
	Quit  bool // Player pressed a quit key
	Ticks int
}

// Controller runs play sessions against a Surface.
type Controller struct {
	surface  core.Surface
	renderer *Renderer
	keys     config.Bindings
	clock    core.Clock
	logger   *log.Logger
}

// NewController creates a session controller.
func NewController(surface core.Surface, renderer *Renderer, keys config.Bindings, clock core.Clock, logger *log.Logger) *Controller {
	return &Controller{
		surface:  surface,
		renderer: renderer,
		keys:     keys,
		clock:    clock,
		logger:   logger,
	}
}

// Run plays one session until collision or quit and returns the final score.
// highScore is only displayed; updating it is the caller's job.
// If ctx is cancelled the partial result is returned with ctx.Err().
func (c *Controller) Run(ctx context.Context, highScore int) (Result, error) {
	s := NewState()
	c.logger.Info("session started", "high_score", highScore)

	c.surface.HideCursor()
	c.present(s, highScore)

	for !s.Ended {
		if err := ctx.Err(); err != nil {
			return c.result(s), err
		}
		start := c.clock.Now()

		// At most one buffered key per tick.
		in := InputNone
		if k, ok := c.surface.PollKey(); ok {
			in = c.input(k)
		}

		var ev Events
		s, ev = Step(s, in)
		c.logEvents(s, ev)

		if s.QuitRequested {
			break
		}
		c.present(s, highScore)
		if s.Ended {
			break
		}

		if err := c.clock.Sleep(ctx, TickDuration-c.clock.Now().Sub(start)); err != nil {
			return c.result(s), err
		}
	}

	res := c.result(s)
	c.logger.Info("session ended", "score", res.Score, "quit", res.Quit, "ticks", res.Ticks)
	return res, nil
}

// input maps a key to the tick input using the configured bindings.
func (c *Controller) input(k core.Key) Input {
	switch {
	case c.keys.Quit.Has(k):
		return InputQuit
	case c.keys.Jump.Has(k):
		return InputJump
	}
	return InputNone
}

func (c *Controller) present(s State, highScore int) {
	c.renderer.Render(c.surface, s, highScore)
	if err := c.surface.Flush(); err != nil {
		c.logger.Warn("flush failed", "error", err)
	}
}

func (c *Controller) logEvents(s State, ev Events) {
	switch {
	case ev.Quit:
		c.logger.Debug("quit requested", "tick", s.Tick, "offset", s.Offset, "phase", s.Phase)
	case ev.Collided:
		c.logger.Debug("collision", "tick", s.Tick, "obstacle_x", s.ObstacleX)
	}
	if ev.Passed {
		c.logger.Debug("obstacle passed", "tick", s.Tick, "score", s.Score)
	}
}

func (c *Controller) result(s State) Result {
	return Result{Score: s.Score, Quit: s.QuitRequested, Ticks: s.Tick}
}
