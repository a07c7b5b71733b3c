// Package tui is the Bubble Tea terminal driver. The program loop runs in
// its own goroutine; the game talks to it only through core.Surface.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// frameMsg carries a rendered frame to the program.
type frameMsg string

// cursorMsg toggles cursor visibility.
type cursorMsg bool

// cursorCmd returns the Bubble Tea command for a cursor change.
func cursorCmd(visible bool) tea.Cmd {
	if visible {
		return tea.ShowCursor
	}
	return tea.HideCursor
}
