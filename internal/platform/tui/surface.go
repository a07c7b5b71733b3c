package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/registry"
)

// DriverName is the registry name of this driver.
const DriverName = "bubbletea"

// ErrClosed is returned by AwaitKey once the program has stopped.
var ErrClosed = errors.New("tui: program stopped")

func init() {
	registry.Register(DriverName, "Bubble Tea program on the alternate screen (lipgloss colors)", Open)
}

// Surface is a core.Surface backed by a Bubble Tea program.
type Surface struct {
	screen  *core.Screen
	program *tea.Program
	keys    chan core.Key
	done    chan struct{}
	logger  *log.Logger

	runErr    error
	closeOnce sync.Once
}

// Open starts the Bubble Tea program on the alternate screen and returns
// a surface drawing into it.
func Open(opts registry.Options) (core.Surface, error) {
	keys := make(chan core.Key, keyBuffer)
	s := &Surface{
		screen: core.NewScreen(opts.Width, opts.Height),
		keys:   keys,
		done:   make(chan struct{}),
		logger: opts.Logger,
	}

	s.program = tea.NewProgram(
		NewModel(keys, opts.Interrupt),
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
	)

	started := make(chan struct{})
	go func() {
		defer close(s.done)
		close(started)
		if _, err := s.program.Run(); err != nil {
			s.runErr = fmt.Errorf("tui: %w", err)
			s.logger.Error("bubbletea program failed", "error", err)
		}
	}()
	<-started

	return s, nil
}

// Size returns the game grid dimensions.
func (s *Surface) Size() (int, int) {
	return s.screen.Size()
}

// Clear blanks the back buffer.
func (s *Surface) Clear() {
	s.screen.Clear()
}

// DrawText writes into the back buffer.
func (s *Surface) DrawText(x, y int, text string, c core.Color) {
	s.screen.DrawText(x, y, text, c)
}

// Flush sends the back buffer to the program as the next frame.
func (s *Surface) Flush() error {
	select {
	case <-s.done:
		if s.runErr != nil {
			return s.runErr
		}
		return ErrClosed
	default:
	}
	s.program.Send(frameMsg(RenderScreen(s.screen)))
	return nil
}

// HideCursor hides the terminal cursor.
func (s *Surface) HideCursor() {
	s.program.Send(cursorMsg(false))
}

// ShowCursor shows the terminal cursor.
func (s *Surface) ShowCursor() {
	s.program.Send(cursorMsg(true))
}

// PollKey returns a buffered key without blocking.
func (s *Surface) PollKey() (core.Key, bool) {
	select {
	case k := <-s.keys:
		return k, true
	default:
		return core.KeyNone, false
	}
}

// AwaitKey blocks until a key arrives, ctx ends, or the program stops.
func (s *Surface) AwaitKey(ctx context.Context) (core.Key, error) {
	select {
	case k := <-s.keys:
		return k, nil
	case <-ctx.Done():
		return core.KeyNone, ctx.Err()
	case <-s.done:
		return core.KeyNone, ErrClosed
	}
}

// Close stops the program and waits for it to restore the terminal.
func (s *Surface) Close() error {
	s.closeOnce.Do(func() {
		s.program.Quit()
		<-s.done
	})
	return s.runErr
}

var _ core.Surface = (*Surface)(nil)
