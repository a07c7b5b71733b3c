package shell

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/platform/headless"
)

func newTestShell(t *testing.T) (*Shell, *headless.Surface, *headless.Clock) {
	t.Helper()

	cfg := config.DefaultConfig()
	theme, err := cfg.Theme.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	keys, err := cfg.Keys.Resolve()
	if err != nil {
		t.Fatal(err)
	}

	surface := headless.New(80, 25)
	clock := headless.NewClock()
	sh := New(surface, Options{
		Theme:  theme,
		Keys:   keys,
		Clock:  clock,
		Logger: log.New(io.Discard),
	})
	return sh, surface, clock
}

func framesContaining(frames []string, text string) int {
	n := 0
	for _, f := range frames {
		if strings.Contains(f, text) {
			n++
		}
	}
	return n
}

func TestShellExitFromMainMenu(t *testing.T) {
	sh, surface, clock := newTestShell(t)
	surface.PushAwait('3')

	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if !strings.Contains(surface.LastFrame(), "Goodbye!") {
		t.Errorf("last frame should be the goodbye screen:\n%s", surface.LastFrame())
	}
	sleeps := clock.Sleeps()
	if len(sleeps) != 1 || sleeps[0] != GoodbyeDuration {
		t.Errorf("sleeps = %v, expected a single %v pause", sleeps, GoodbyeDuration)
	}
	if !surface.CursorVisible() {
		t.Error("cursor should be visible after Run")
	}
	if surface.Polls() != 0 {
		t.Errorf("menus must not poll, got %d polls", surface.Polls())
	}
}

func TestShellIgnoresUnknownMenuKeys(t *testing.T) {
	sh, surface, _ := newTestShell(t)
	surface.PushAwait('x', 'q', core.KeySpace, 'E')

	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	// One main menu frame per key, then goodbye.
	if got := framesContaining(surface.Frames(), "DINO CONSOLE RUNNER"); got != 4 {
		t.Errorf("main menu drawn %d times, expected 4", got)
	}
}

func TestShellInstructions(t *testing.T) {
	sh, surface, _ := newTestShell(t)
	surface.PushAwait('i', 'z', 'e')

	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	frames := surface.Frames()
	if len(frames) != 4 {
		t.Fatalf("expected 4 frames (menu, instructions, menu, goodbye), got %d", len(frames))
	}
	if !strings.Contains(frames[1], "INSTRUCTIONS:") {
		t.Errorf("second frame should be instructions:\n%s", frames[1])
	}
	if !strings.Contains(frames[2], "1. Play") {
		t.Errorf("any key should return to the main menu:\n%s", frames[2])
	}
}

func TestShellHighScoreAcrossSessions(t *testing.T) {
	sh, surface, _ := newTestShell(t)

	// First session: jump at poll 61 clears the first obstacle, then the
	// player collides with the second one. The replay gets no input and
	// collides at once.
	surface.PushPoll(61, core.KeyUp)
	surface.PushAwait('1', 'r', 'e')

	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if sh.HighScore() != 1 {
		t.Errorf("HighScore() = %d, expected 1", sh.HighScore())
	}
	if surface.Polls() != 141+63 {
		t.Errorf("polls = %d, expected %d", surface.Polls(), 141+63)
	}

	var overs []string
	for _, f := range surface.Frames() {
		if strings.Contains(f, "=== GAME OVER ===") {
			overs = append(overs, f)
		}
	}
	if len(overs) != 2 {
		t.Fatalf("expected 2 game-over screens, got %d", len(overs))
	}
	for i, want := range [][]string{
		{"Your Score : 1", "High Score : 1"},
		{"Your Score : 0", "High Score : 1"},
	} {
		for _, w := range want {
			if !strings.Contains(overs[i], w) {
				t.Errorf("game-over screen %d missing %q", i, w)
			}
		}
	}
}

func TestShellQuitToMainMenu(t *testing.T) {
	sh, surface, _ := newTestShell(t)
	surface.PushPoll(3, 'x')
	surface.PushAwait('p', 'm', '3')

	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	frames := surface.Frames()
	// menu, initial play frame + 3 ticks, game over, menu, goodbye
	if len(frames) != 1+4+1+1+1 {
		t.Fatalf("got %d frames", len(frames))
	}
	if !strings.Contains(frames[5], "Your Score : 0") {
		t.Errorf("quit should still reach game over:\n%s", frames[5])
	}
	if !strings.Contains(frames[6], "1. Play") {
		t.Errorf("'m' should return to the main menu:\n%s", frames[6])
	}
}

func TestShellCancelledIsGraceful(t *testing.T) {
	sh, surface, clock := newTestShell(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := sh.Run(ctx); err != nil {
		t.Fatalf("cancelled Run() = %v, expected nil", err)
	}
	if strings.Contains(surface.LastFrame(), "Goodbye!") {
		t.Error("an interrupt should not show the goodbye screen")
	}
	if len(clock.Sleeps()) != 0 {
		t.Errorf("unexpected sleeps: %v", clock.Sleeps())
	}
	if !surface.CursorVisible() {
		t.Error("cursor should be restored")
	}
}

func TestShellSurfaceErrorPropagates(t *testing.T) {
	sh, surface, _ := newTestShell(t)
	surface.PushAwait('2')

	err := sh.Run(context.Background())
	if !errors.Is(err, headless.ErrScriptExhausted) {
		t.Errorf("Run() error = %v, expected ErrScriptExhausted", err)
	}
}
