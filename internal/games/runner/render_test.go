package runner

import (
	"strings"
	"testing"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

func testTheme(t *testing.T) config.Theme {
	t.Helper()
	th, err := config.DefaultConfig().Theme.Resolve()
	if err != nil {
		t.Fatalf("default theme does not resolve: %v", err)
	}
	return th
}

func renderState(t *testing.T, s State, high int) *core.Screen {
	t.Helper()
	dst := core.NewScreen(ScreenW, ScreenH)
	NewRenderer(testTheme(t)).Render(dst, s, high)
	return dst
}

func TestRenderHUD(t *testing.T) {
	s := NewState()
	s.Score = 3
	dst := renderState(t, s, 12)

	if row := dst.Row(0); !strings.HasPrefix(row, Title) {
		t.Errorf("row 0 = %q, expected title", row)
	}
	if row := dst.Row(1); !strings.HasPrefix(row, "Score: 3   High Score: 12") {
		t.Errorf("row 1 = %q, expected score line", row)
	}
}

func TestRenderGround(t *testing.T) {
	dst := renderState(t, NewState(), 0)

	if row := dst.Row(GroundRow); row != strings.Repeat("=", ScreenW) {
		t.Errorf("ground row = %q", row)
	}
}

func TestRenderSky(t *testing.T) {
	day := renderState(t, State{Score: 0, ObstacleX: SpawnColumn}, 0)
	if got := day.Row(3)[skyColumn : skyColumn+len(sunArt[1])]; got != sunArt[1] {
		t.Errorf("even score should draw the sun, got %q", got)
	}
	if c := day.GetCell(skyColumn+3, 3).Color; c != testTheme(t).Sun {
		t.Errorf("sun color = %d, expected %d", c, testTheme(t).Sun)
	}

	night := renderState(t, State{Score: 1, ObstacleX: SpawnColumn}, 0)
	if got := night.Row(3)[skyColumn : skyColumn+len(moonArt[1])]; got != moonArt[1] {
		t.Errorf("odd score should draw the moon, got %q", got)
	}
}

func TestRenderPlayerGrounded(t *testing.T) {
	dst := renderState(t, NewState(), 0)

	for i, line := range playerSprite {
		row := dst.Row(17 + i)
		if got := row[PlayerColumn : PlayerColumn+len(line)]; got != line {
			t.Errorf("player row %d = %q, expected %q", 17+i, got, line)
		}
	}
	if got := dst.Row(18)[PlayerColumn : PlayerColumn+6]; got != `/||\\ ` {
		t.Errorf("body row = %q, expected %q", got, `/||\\ `)
	}
	if c := dst.GetCell(PlayerColumn+2, 17).Color; c != testTheme(t).Player {
		t.Errorf("player color = %d, expected %d", c, testTheme(t).Player)
	}
}

func TestRenderPlayerAtPeak(t *testing.T) {
	s := NewState()
	s.Phase = PhaseFalling
	s.Offset = JumpPeak
	s.ObstacleX = -10
	dst := renderState(t, s, 0)

	top := SpriteBaseRow - 2 - JumpPeak
	if got := dst.Row(top)[PlayerColumn : PlayerColumn+len(playerSprite[0])]; got != playerSprite[0] {
		t.Errorf("head row %d = %q, expected %q", top, got, playerSprite[0])
	}
	if strings.TrimSpace(dst.Row(SpriteBaseRow)) != "" {
		t.Errorf("base row should be empty while airborne, got %q", dst.Row(SpriteBaseRow))
	}
}

func TestRenderObstacle(t *testing.T) {
	s := NewState()
	s.ObstacleX = 40
	dst := renderState(t, s, 0)

	if got := dst.Row(SpriteBaseRow)[40:43]; got != "/|\\" {
		t.Errorf("obstacle base = %q, expected %q", got, "/|\\")
	}
	if got := dst.Row(17)[40:43]; got != " | " {
		t.Errorf("obstacle top = %q, expected %q", got, " | ")
	}
}

func TestRenderObstacleBounds(t *testing.T) {
	tests := []struct {
		name    string
		x       int
		visible bool
	}{
		{"off-screen left", -1, false},
		{"left edge", 0, true},
		{"clipped right", ObstacleMaxRight - 1, true},
		{"right limit", ObstacleMaxRight, false},
		{"spawn column", SpawnColumn, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState()
			s.ObstacleX = tc.x
			dst := renderState(t, s, 0)

			// The base row only holds the player's legs and the obstacle.
			base := dst.Row(SpriteBaseRow)
			withoutPlayer := base[:PlayerColumn] + strings.Repeat(" ", len(playerSprite[2])) + base[PlayerColumn+len(playerSprite[2]):]
			drawn := strings.ContainsAny(withoutPlayer, "/|\\")
			if drawn != tc.visible {
				t.Errorf("obstacle at x=%d drawn = %v, expected %v (row %q)", tc.x, drawn, tc.visible, base)
			}
		})
	}
}

func TestRenderIsFullRedraw(t *testing.T) {
	dst := core.NewScreen(ScreenW, ScreenH)
	r := NewRenderer(testTheme(t))

	s := NewState()
	s.ObstacleX = 30
	r.Render(dst, s, 0)
	s.ObstacleX = 29
	r.Render(dst, s, 0)

	if got := dst.Row(SpriteBaseRow)[29:33]; got != "/|\\ " {
		t.Errorf("stale obstacle left behind: %q", got)
	}
}
