package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dino-runner/internal/core"
)

// keyBuffer bounds how many unread keys are held for the game.
const keyBuffer = 64

// Model is the Bubble Tea model behind Surface. It only displays frames it
// is sent and forwards key presses; the game loop runs elsewhere.
type Model struct {
	frame     string
	keys      chan<- core.Key
	mapper    *KeyMapper
	interrupt func()
}

// NewModel creates a model that forwards keys to the channel.
func NewModel(keys chan<- core.Key, interrupt func()) Model {
	return Model{
		keys:      keys,
		mapper:    NewKeyMapper(),
		interrupt: interrupt,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.HideCursor
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case frameMsg:
		m.frame = string(msg)
		return m, nil

	case cursorMsg:
		return m, cursorCmd(bool(msg))
	}

	return m, nil
}

// handleKey forwards a key press, dropping it if the game is not reading.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mapper.IsInterrupt(msg) {
		m.interrupt()
		return m, nil
	}

	k, ok := m.mapper.MapKey(msg)
	if !ok {
		return m, nil
	}
	select {
	case m.keys <- k:
	default:
	}
	return m, nil
}

// View renders the last frame sent by the game.
func (m Model) View() string {
	return m.frame
}
