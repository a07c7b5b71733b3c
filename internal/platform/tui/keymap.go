package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dino-runner/internal/core"
)

// KeyMapper translates Bubble Tea key messages to core keys.
// Action bindings live in the game config; only the interrupt is fixed here.
type KeyMapper struct {
	Interrupt key.Binding
}

// NewKeyMapper creates a key mapper with Ctrl+C as the interrupt.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// IsInterrupt reports whether the message should abort the program.
func (km *KeyMapper) IsInterrupt(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.Interrupt)
}

// MapKey translates a key message. ok is false for keys the game has no
// use for, such as Alt combinations and function keys.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (k core.Key, ok bool) {
	if msg.Alt {
		return core.KeyNone, false
	}

	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return core.KeyNone, false
		}
		return core.Key(msg.Runes[0]), true
	case tea.KeySpace:
		return core.KeySpace, true
	case tea.KeyEnter:
		return core.KeyEnter, true
	case tea.KeyEsc:
		return core.KeyEscape, true
	case tea.KeyUp:
		return core.KeyUp, true
	case tea.KeyDown:
		return core.KeyDown, true
	case tea.KeyLeft:
		return core.KeyLeft, true
	case tea.KeyRight:
		return core.KeyRight, true
	case tea.KeyBackspace:
		return core.KeyBackspace, true
	case tea.KeyTab:
		return core.KeyTab, true
	}
	return core.KeyNone, false
}
