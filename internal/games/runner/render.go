package runner

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// Title is shown on the HUD and the main menu.
const Title = "Dino Console Runner"

// Sprites, top row first.
var (
	playerSprite = [SpriteHeight]string{
		" (^^) ",
		"/||\\\\ ",
		" /\\   ",
	}
	obstacleSprite = [SpriteHeight]string{
		" | ",
		" | ",
		"/|\\",
	}
	sunArt = [3]string{
		" \\ | / ",
		" --O-- ",
		" / | \\ ",
	}
	moonArt = [3]string{
		"  __  ",
		" (  ) ",
		"  ||  ",
	}
)

const (
	skyColumn = ScreenW/2 - 4
	skyRow    = 2
)

// Renderer draws a full play frame from a State.
type Renderer struct {
	theme  config.Theme
	ground string
}

// NewRenderer creates a renderer using the given colors.
func NewRenderer(theme config.Theme) *Renderer {
	return &Renderer{theme: theme, ground: strings.Repeat("=", ScreenW)}
}

// Render clears dst and redraws sky, ground, HUD, player and obstacle.
func (r *Renderer) Render(dst core.Canvas, s State, highScore int) {
	dst.Clear()

	r.drawSky(dst, s.Day())

	dst.DrawText(0, 0, Title, r.theme.Title)
	dst.DrawText(0, 1, fmt.Sprintf("Score: %d   High Score: %d", s.Score, highScore), r.theme.HUD)

	dst.DrawText(0, GroundRow, r.ground, r.theme.Ground)

	r.drawPlayer(dst, s.Offset)
	r.drawObstacle(dst, s.ObstacleX)
}

func (r *Renderer) drawSky(dst core.Canvas, day bool) {
	art, color := moonArt, r.theme.Moon
	if day {
		art, color = sunArt, r.theme.Sun
	}
	for i, line := range art {
		dst.DrawText(skyColumn, skyRow+i, line, color)
	}
}

// drawPlayer renders the player raised by offset rows.
func (r *Renderer) drawPlayer(dst core.Canvas, offset int) {
	top := spriteTop() - offset
	for i, line := range playerSprite {
		dst.DrawText(PlayerColumn, top+i, line, r.theme.Player)
	}
}

// drawObstacle renders the obstacle only while its leading column is visible.
func (r *Renderer) drawObstacle(dst core.Canvas, x int) {
	if x < 0 || x >= ObstacleMaxRight {
		return
	}
	top := spriteTop()
	for i, line := range obstacleSprite {
		dst.DrawText(x, top+i, line, r.theme.Obstacle)
	}
}

func spriteTop() int {
	return SpriteBaseRow - (SpriteHeight - 1)
}
