package menu

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// MainSelection is a main menu choice.
type MainSelection int

const (
	MainPlay MainSelection = iota
	MainInstructions
	MainExit
)

// Event returns the transition event for the selection.
func (s MainSelection) Event() Event {
	switch s {
	case MainPlay:
		return EventPlay
	case MainInstructions:
		return EventInstructions
	default:
		return EventExit
	}
}

// GameOverSelection is a game-over menu choice.
type GameOverSelection int

const (
	GameOverReplay GameOverSelection = iota
	GameOverMainMenu
	GameOverExit
)

// Event returns the transition event for the selection.
func (s GameOverSelection) Event() Event {
	switch s {
	case GameOverReplay:
		return EventReplay
	case GameOverMainMenu:
		return EventMainMenu
	default:
		return EventExit
	}
}

// MainMenu is the title screen.
type MainMenu struct {
	list  *List[MainSelection]
	theme config.Theme
}

// NewMainMenu creates the main menu.
func NewMainMenu(theme config.Theme) *MainMenu {
	return &MainMenu{
		list: NewList(
			Item[MainSelection]{Label: "1. Play", Keys: []core.Key{'1', 'p', 'P'}, Value: MainPlay},
			Item[MainSelection]{Label: "2. Instructions", Keys: []core.Key{'2', 'i', 'I'}, Value: MainInstructions},
			Item[MainSelection]{Label: "3. Exit", Keys: []core.Key{'3', 'e', 'E'}, Value: MainExit},
		),
		theme: theme,
	}
}

// HandleKey maps a key to a selection; ok is false for keys that select nothing.
func (m *MainMenu) HandleKey(k core.Key) (MainSelection, bool) {
	return m.list.HandleKey(k)
}

// Reset puts the cursor back on "Play" for a new visit.
func (m *MainMenu) Reset() {
	m.list.Reset()
}

// Render draws the menu centered on a grid of the given width.
func (m *MainMenu) Render(dst core.Canvas, width int) {
	dst.Clear()
	dst.DrawText(width/2-10, 4, "=== DINO CONSOLE RUNNER ===", m.theme.Title)
	m.list.Render(dst, width/2-8, 7, 2, m.theme.Menu, m.theme.Cursor)

	prompt := "Press 1/2/3 to choose (or P/I/E)."
	dst.DrawText(core.CenterX(width, prompt), 14, prompt, m.theme.Menu)
	hint := "Up/Down and Enter also work."
	dst.DrawText(core.CenterX(width, hint), 15, hint, m.theme.Menu)
}

// GameOverMenu is shown after every session.
type GameOverMenu struct {
	list  *List[GameOverSelection]
	theme config.Theme
}

// NewGameOverMenu creates the game-over menu.
func NewGameOverMenu(theme config.Theme) *GameOverMenu {
	return &GameOverMenu{
		list: NewList(
			Item[GameOverSelection]{Label: "1. Play Again", Keys: []core.Key{'1', 'r', 'R'}, Value: GameOverReplay},
			Item[GameOverSelection]{Label: "2. Main Menu", Keys: []core.Key{'2', 'm', 'M'}, Value: GameOverMainMenu},
			Item[GameOverSelection]{Label: "3. Exit", Keys: []core.Key{'3', 'e', 'E'}, Value: GameOverExit},
		),
		theme: theme,
	}
}

// HandleKey maps a key to a selection; ok is false for keys that select nothing.
func (m *GameOverMenu) HandleKey(k core.Key) (GameOverSelection, bool) {
	return m.list.HandleKey(k)
}

// Reset puts the cursor back on "Play Again" for a new visit.
func (m *GameOverMenu) Reset() {
	m.list.Reset()
}

// Render draws the finished score, the high score and the choices.
func (m *GameOverMenu) Render(dst core.Canvas, width, score, highScore int) {
	dst.Clear()
	core.DrawBox(dst, core.NewRect(width/2-30, 4, 60, 17), m.theme.Menu)

	dst.DrawText(width/2-10, 6, "=== GAME OVER ===", m.theme.Title)
	dst.DrawText(width/2-12, 8, fmt.Sprintf("Your Score : %d", score), m.theme.HUD)
	dst.DrawText(width/2-12, 9, fmt.Sprintf("High Score : %d", highScore), m.theme.HUD)
	m.list.Render(dst, width/2-12, 12, 2, m.theme.Menu, m.theme.Cursor)

	prompt := "Press 1/2/3 (or R/M/E)."
	dst.DrawText(core.CenterX(width, prompt), 18, prompt, m.theme.Menu)
}

// Instructions describes the controls. Any key leaves it.
type Instructions struct {
	theme config.Theme
	jump  string
	quit  string
}

// NewInstructions creates the instructions screen for the active key bindings.
func NewInstructions(theme config.Theme, keys config.Bindings) *Instructions {
	return &Instructions{
		theme: theme,
		jump:  keyList(keys.Jump),
		quit:  keyList(keys.Quit),
	}
}

// Render draws the instructions.
func (s *Instructions) Render(dst core.Canvas) {
	dst.Clear()
	lines := []struct {
		row  int
		text string
	}{
		{4, "INSTRUCTIONS:"},
		{6, fmt.Sprintf("- Press %s to jump.", s.jump)},
		{7, "- Avoid the cactus obstacles."},
		{8, fmt.Sprintf("- Press %s during play to quit early.", s.quit)},
		{10, "- Score increases when you pass an obstacle."},
		{12, "High score is kept while program runs (no file)."},
		{14, "Press any key to return to main menu..."},
	}
	for i, l := range lines {
		color := s.theme.Menu
		if i == 0 {
			color = s.theme.Title
		}
		dst.DrawText(8, l.row, l.text, color)
	}
}

// RenderGoodbye draws the exit screen.
func RenderGoodbye(dst core.Canvas, width, height int, color core.Color) {
	dst.Clear()
	dst.DrawText(width/2-6, height/2, "Goodbye!", color)
}

// keyList formats a key set as "SPACE/UP", sorted for stable output.
func keyList(keys core.KeySet) string {
	names := make([]string, 0, len(keys))
	for k := range keys {
		name := k.String()
		if len(name) > 1 {
			name = strings.ToUpper(name)
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, "/")
}
