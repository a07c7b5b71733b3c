// Package tcellterm is a terminal driver built on tcell. Events are pumped
// from tcell into a buffered channel by a background goroutine; drawing
// happens on the caller's goroutine.
package tcellterm

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/registry"
)

// DriverName is the registry name of this driver.
const DriverName = "tcell"

const keyBuffer = 64

// ErrClosed is returned by AwaitKey after the screen is finalized.
var ErrClosed = errors.New("tcellterm: screen closed")

func init() {
	registry.Register(DriverName, "tcell screen with direct cell writes", Open)
}

// Surface is a core.Surface drawing through a tcell.Screen.
type Surface struct {
	tty       tcell.Screen
	buf       *core.Screen
	keys      chan core.Key
	done      chan struct{}
	interrupt func()
	logger    *log.Logger
	closeOnce sync.Once
}

// Open initializes the real terminal.
func Open(opts registry.Options) (core.Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcellterm: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tcellterm: init screen: %w", err)
	}
	return NewSurface(screen, opts), nil
}

// NewSurface wraps an initialized screen and starts the event pump.
func NewSurface(screen tcell.Screen, opts registry.Options) *Surface {
	if opts.Interrupt == nil {
		opts.Interrupt = func() {}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	s := &Surface{
		tty:       screen,
		buf:       core.NewScreen(opts.Width, opts.Height),
		keys:      make(chan core.Key, keyBuffer),
		done:      make(chan struct{}),
		interrupt: opts.Interrupt,
		logger:    opts.Logger,
	}
	go s.pump()
	return s
}

// pump forwards key events until the screen is finalized.
func (s *Surface) pump() {
	defer close(s.done)
	for {
		ev := s.tty.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if isInterrupt(ev) {
				s.interrupt()
				continue
			}
			k, ok := MapKey(ev.Key(), ev.Rune(), ev.Modifiers())
			if !ok {
				continue
			}
			select {
			case s.keys <- k:
			default:
				s.logger.Debug("key dropped, buffer full", "key", k)
			}
		case *tcell.EventResize:
			s.tty.Sync()
		}
	}
}

// isInterrupt matches Ctrl+C in both forms tcell reports it.
func isInterrupt(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 &&
		(ev.Rune() == 'c' || ev.Rune() == 'C')
}

// MapKey translates a tcell key to a core key. ok is false for keys the
// game has no use for.
func MapKey(k tcell.Key, r rune, mod tcell.ModMask) (core.Key, bool) {
	if mod&(tcell.ModAlt|tcell.ModCtrl) != 0 {
		return core.KeyNone, false
	}

	switch k {
	case tcell.KeyRune:
		return core.Key(r), true
	case tcell.KeyEnter:
		return core.KeyEnter, true
	case tcell.KeyEscape:
		return core.KeyEscape, true
	case tcell.KeyUp:
		return core.KeyUp, true
	case tcell.KeyDown:
		return core.KeyDown, true
	case tcell.KeyLeft:
		return core.KeyLeft, true
	case tcell.KeyRight:
		return core.KeyRight, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return core.KeyBackspace, true
	case tcell.KeyTab:
		return core.KeyTab, true
	}
	return core.KeyNone, false
}

// Style returns the tcell style for a core color.
func Style(c core.Color) tcell.Style {
	if c == core.ColorDefault {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(c.ANSI()))
}

// Size returns the game grid dimensions.
func (s *Surface) Size() (int, int) {
	return s.buf.Size()
}

// Clear blanks the back buffer.
func (s *Surface) Clear() {
	s.buf.Clear()
}

// DrawText writes into the back buffer.
func (s *Surface) DrawText(x, y int, text string, c core.Color) {
	s.buf.DrawText(x, y, text, c)
}

// Flush copies the back buffer to the terminal.
func (s *Surface) Flush() error {
	select {
	case <-s.done:
		return ErrClosed
	default:
	}

	w, h := s.buf.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := s.buf.GetCell(x, y)
			s.tty.SetContent(x, y, cell.Rune, nil, Style(cell.Color))
		}
	}
	s.tty.Show()
	return nil
}

// HideCursor hides the terminal cursor.
func (s *Surface) HideCursor() {
	s.tty.HideCursor()
}

// ShowCursor parks the cursor below the game grid.
func (s *Surface) ShowCursor() {
	_, h := s.buf.Size()
	s.tty.ShowCursor(0, h)
	s.tty.Show()
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

// AwaitKey blocks until a key arrives, ctx ends, or the screen closes.
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

// Close restores the terminal and stops the event pump.
func (s *Surface) Close() error {
	s.closeOnce.Do(func() {
		s.tty.Fini()
		<-s.done
	})
	return nil
}

var _ core.Surface = (*Surface)(nil)
