package core

import (
	"context"
	"strings"
)

// Canvas is a drawing target addressed in absolute grid coordinates.
// (0, 0) is the top-left cell.
type Canvas interface {
	// Clear blanks the whole frame.
	Clear()
	// DrawText writes text starting at column x, row y.
	// Cells outside the grid are clipped.
	DrawText(x, y int, text string, c Color)
}

// Surface is an exclusively owned terminal: a Canvas plus key input and
// cursor control. Drivers enter raw mode when opened and restore the terminal
// in Close.
type Surface interface {
	Canvas

	// Size returns the grid dimensions in cells.
	Size() (width, height int)

	// Flush presents everything drawn since the last Clear.
	Flush() error

	HideCursor()
	ShowCursor()

	// PollKey returns one queued key without blocking.
	// ok is false when no key is buffered.
	PollKey() (k Key, ok bool)

	// AwaitKey blocks until a key arrives or ctx is done.
	AwaitKey(ctx context.Context) (Key, error)

	// Close restores the terminal. It is safe to call more than once.
	Close() error
}

// DrawBox draws a box outline using box-drawing characters.
func DrawBox(dst Canvas, r Rect, c Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	inner := strings.Repeat("─", r.W-2)
	dst.DrawText(r.X, r.Y, "┌"+inner+"┐", c)
	dst.DrawText(r.X, r.Bottom()-1, "└"+inner+"┘", c)
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		dst.DrawText(r.X, y, "│", c)
		dst.DrawText(r.Right()-1, y, "│", c)
	}
}

// CenterX returns the column at which text of the given width is centered.
func CenterX(width int, text string) int {
	return (width - len([]rune(text))) / 2
}
