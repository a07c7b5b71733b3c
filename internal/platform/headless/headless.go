// Package headless provides an in-memory core.Surface driven by a key script.
// It records every flushed frame, which makes it the driver of choice for
// tests of the runner, menus and shell.
package headless

import (
	"context"
	"errors"
	"time"

	"github.com/vovakirdan/dino-runner/internal/core"
)

// ErrScriptExhausted is returned by AwaitKey when no scripted key is left.
var ErrScriptExhausted = errors.New("headless: key script exhausted")

// Surface is a scripted, in-memory terminal.
type Surface struct {
	screen        *core.Screen
	awaitKeys     []core.Key
	pollKeys      map[int][]core.Key
	polls         int
	frames        []string
	cursorVisible bool
	closed        bool
}

// New creates a headless surface with the given grid size.
func New(width, height int) *Surface {
	return &Surface{
		screen:        core.NewScreen(width, height),
		pollKeys:      make(map[int][]core.Key),
		cursorVisible: true,
	}
}

// PushAwait queues keys returned, in order, by AwaitKey.
func (s *Surface) PushAwait(keys ...core.Key) {
	s.awaitKeys = append(s.awaitKeys, keys...)
}

// PushPoll makes keys available starting at the given PollKey call (0-based).
// Keys not consumed on that call stay buffered for the following polls.
func (s *Surface) PushPoll(poll int, keys ...core.Key) {
	s.pollKeys[poll] = append(s.pollKeys[poll], keys...)
}

// Size returns the grid dimensions.
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

// Flush records the current back buffer as a frame.
func (s *Surface) Flush() error {
	s.frames = append(s.frames, s.screen.String())
	return nil
}

// HideCursor hides the cursor.
func (s *Surface) HideCursor() { s.cursorVisible = false }

// ShowCursor shows the cursor.
func (s *Surface) ShowCursor() { s.cursorVisible = true }

// PollKey returns the next buffered scripted key, if any.
func (s *Surface) PollKey() (core.Key, bool) {
	n := s.polls
	s.polls++

	if keys := s.pollKeys[n]; len(keys) > 0 {
		k := keys[0]
		if len(keys) > 1 {
			s.pollKeys[n+1] = append(keys[1:], s.pollKeys[n+1]...)
		}
		delete(s.pollKeys, n)
		return k, true
	}
	return core.KeyNone, false
}

// AwaitKey pops the next await key. It never blocks.
func (s *Surface) AwaitKey(ctx context.Context) (core.Key, error) {
	if err := ctx.Err(); err != nil {
		return core.KeyNone, err
	}
	if len(s.awaitKeys) == 0 {
		return core.KeyNone, ErrScriptExhausted
	}
	k := s.awaitKeys[0]
	s.awaitKeys = s.awaitKeys[1:]
	return k, nil
}

// Close marks the surface closed and shows the cursor, as real drivers do.
func (s *Surface) Close() error {
	s.closed = true
	s.cursorVisible = true
	return nil
}

// Frames returns every flushed frame.
func (s *Surface) Frames() []string {
	return s.frames
}

// LastFrame returns the most recently flushed frame, or "" if none.
func (s *Surface) LastFrame() string {
	if len(s.frames) == 0 {
		return ""
	}
	return s.frames[len(s.frames)-1]
}

// Polls returns the number of PollKey calls made.
func (s *Surface) Polls() int {
	return s.polls
}

// CursorVisible reports the cursor state.
func (s *Surface) CursorVisible() bool {
	return s.cursorVisible
}

// Closed reports whether Close was called.
func (s *Surface) Closed() bool {
	return s.closed
}

var _ core.Surface = (*Surface)(nil)

// Clock is a fake core.Clock: Sleep advances virtual time instantly.
type Clock struct {
	now    time.Time
	sleeps []time.Duration
}

// NewClock creates a fake clock at an arbitrary fixed instant.
func NewClock() *Clock {
	return &Clock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the virtual time.
func (c *Clock) Now() time.Time {
	return c.now
}

// Sleep records d and advances virtual time by it.
func (c *Clock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.sleeps = append(c.sleeps, d)
	if d > 0 {
		c.now = c.now.Add(d)
	}
	return nil
}

// Advance moves virtual time forward without recording a sleep.
func (c *Clock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Sleeps returns every requested sleep duration.
func (c *Clock) Sleeps() []time.Duration {
	return c.sleeps
}

var _ core.Clock = (*Clock)(nil)
