// Package platform checks that the process can take over the terminal
// before any driver is opened.
package platform

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

var (
	// ErrNotTerminal means stdin or stdout is not a tty.
	ErrNotTerminal = errors.New("platform: not running in a terminal")

	// ErrTerminalTooSmall means the window cannot fit the game grid.
	ErrTerminalTooSmall = errors.New("platform: terminal too small")
)

// Preflight verifies that stdin and stdout are terminals of at least
// minW x minH cells.
func Preflight(minW, minH int) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}

	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return fmt.Errorf("platform: get terminal size: %w", err)
	}
	return CheckSize(w, h, minW, minH)
}

// CheckSize reports ErrTerminalTooSmall when w x h cannot hold minW x minH.
func CheckSize(w, h, minW, minH int) error {
	if w < minW || h < minH {
		return fmt.Errorf("%w: need %dx%d, have %dx%d", ErrTerminalTooSmall, minW, minH, w, h)
	}
	return nil
}
