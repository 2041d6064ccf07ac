package frogger

import (
	"fmt"

	"github.com/vovakirdan/tui-frogger/internal/core"
	sim "github.com/vovakirdan/tui-frogger/internal/frogger"
)

// Visual characters for rendering
const (
	RiverChar  = '~'
	VergeChar  = '░'
	GoalChar   = '□'
	LogChar    = '='
	CarChar    = '█'
	PlayerChar = '@'
)

type style struct {
	char  rune
	color core.Color
}

var tagStyles = map[sim.Tag]style{
	sim.TagRiver:    {RiverChar, core.ColorBlue},
	sim.TagVerge:    {VergeChar, core.ColorMagenta},
	sim.TagGoal:     {GoalChar, core.ColorBrightGreen},
	sim.TagPlatform: {LogChar, core.ColorBrown},
	sim.TagHazard:   {CarChar, core.ColorYellow},
	sim.TagPlayer:   {PlayerChar, core.ColorGreen},
}

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// viewport maps the simulation canvas onto the screen below the HUD.
func viewport(dst *core.Screen) core.Viewport {
	return core.Viewport{
		CanvasW: sim.CanvasSize,
		CanvasH: sim.CanvasSize,
		Cells:   core.NewRect(0, hudRows, dst.Width(), max(dst.Height()-hudRows, 1)),
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	vp := viewport(dst)

	for _, d := range sim.Decorations() {
		drawBox(dst, vp, d.Tag, d.Pos, d.Size)
	}

	for _, sp := range g.scene.Sprites() {
		if sp.Kind == sim.KindPlayer {
			drawPlayer(dst, vp, sp.Pos)
			continue
		}
		drawBox(dst, vp, sp.Tag, sp.Pos, sp.Size)
	}

	// Draw HUD
	hud := fmt.Sprintf(" Score: %d  Best: %d  Goals: %d ", g.state.Score, g.state.HighScore, g.state.GoalsReached)
	dst.DrawText(1, 0, hud)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.state.IsGameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.state.Score))
	}
}

func drawBox(dst *core.Screen, vp core.Viewport, tag sim.Tag, pos sim.Position, size sim.Size) {
	st, ok := tagStyles[tag]
	if !ok {
		return
	}
	dst.FillRect(vp.Box(pos.X, pos.Y, size.Width, size.Height), st.char, st.color)
}

// drawPlayer draws the player's bounding box, centred on pos.
func drawPlayer(dst *core.Screen, vp core.Viewport, pos sim.Position) {
	st := tagStyles[sim.TagPlayer]
	side := 2 * sim.PlayerMargin
	dst.FillRect(vp.Box(pos.X-sim.PlayerMargin, pos.Y-sim.PlayerMargin, side, side), st.char, st.color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorRed)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
