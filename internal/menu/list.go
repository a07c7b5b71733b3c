package menu

import "github.com/vovakirdan/dino-runner/internal/core"

// Item is one menu entry with its direct-select keys.
type Item[T any] struct {
	Label string
	Keys  []core.Key
	Value T
}

// List is a vertical menu. Entries are chosen by their keys, or by moving
// the cursor with Up/Down (or k/j) and pressing Enter.
type List[T any] struct {
	items  []Item[T]
	cursor int
}

// NewList creates a list with the cursor on the first item.
func NewList[T any](items ...Item[T]) *List[T] {
	return &List[T]{items: items}
}

// HandleKey applies a key press. It returns the chosen value and true when
// the key selects an entry; other recognized keys only move the cursor, and
// anything else is ignored.
func (l *List[T]) HandleKey(k core.Key) (T, bool) {
	var zero T

	for i, item := range l.items {
		for _, key := range item.Keys {
			if key == k {
				l.cursor = i
				return item.Value, true
			}
		}
	}

	switch k {
	case core.KeyUp, 'k':
		if l.cursor > 0 {
			l.cursor--
		}
	case core.KeyDown, 'j':
		if l.cursor < len(l.items)-1 {
			l.cursor++
		}
	case core.KeyEnter:
		if len(l.items) > 0 {
			return l.items[l.cursor].Value, true
		}
	}
	return zero, false
}

// Reset moves the cursor back to the first entry.
func (l *List[T]) Reset() {
	l.cursor = 0
}

// Cursor returns the highlighted index.
func (l *List[T]) Cursor() int {
	return l.cursor
}

// Render draws entries at column x starting at row y, gap rows apart,
// with a "> " marker left of the highlighted entry.
func (l *List[T]) Render(dst core.Canvas, x, y, gap int, item, cursor core.Color) {
	for i, it := range l.items {
		row := y + i*gap
		if i == l.cursor {
			dst.DrawText(x-2, row, ">", cursor)
			dst.DrawText(x, row, it.Label, cursor)
			continue
		}
		dst.DrawText(x, row, it.Label, item)
	}
}
