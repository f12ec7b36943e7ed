package invaders

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/sim"
)

// Visual glyphs for rendering
const (
	PlayerGlyph      = "▟█▲█▙"
	EnemyGlyph       = "╔▀▀╗"
	PlayerLaserGlyph = '│'
	EnemyLaserGlyph  = '┆'
	BorderHoriz      = '─'
)

// ExplosionGlyphs is the explosion animation, spread over its frames.
var ExplosionGlyphs = []rune{'✺', '✹', '✶', '*', '+', '·'}

// hudRows is the number of rows reserved above the playfield.
const hudRows = 2

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)

	// Snapshot is ordered by layer, so later entities overwrite earlier ones
	for _, v := range g.world.Snapshot() {
		g.renderEntity(dst, v)
	}

	g.renderOverlay(dst)
}

// renderHUD draws score, lives and kills, then a separator.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score()))
	dst.DrawTextCentered(0, g.livesText())

	st := g.world.Stats()
	kills := fmt.Sprintf("Kills: %d", st.Kills)
	dst.DrawText(dst.Width()-utf8.RuneCountInString(kills)-1, 0, kills)

	dst.DrawHLine(0, 1, dst.Width(), BorderHoriz)
}

// renderEntity draws one entity centred on its mapped cell.
func (g *Game) renderEntity(dst *core.Screen, v sim.View) {
	col, row := g.toCell(dst, v.X, v.Y)
	if row < hudRows {
		return
	}

	switch v.Kind {
	case sim.KindPlayer:
		drawCentered(dst, col, row, PlayerGlyph, core.ColorBrightGreen)
	case sim.KindEnemy:
		drawCentered(dst, col, row, EnemyGlyph, core.ColorBrightMagenta)
	case sim.KindLaser:
		if v.Origin == sim.OriginPlayer {
			dst.SetColored(col, row, PlayerLaserGlyph, core.ColorBrightYellow)
		} else {
			dst.SetColored(col, row, EnemyLaserGlyph, core.ColorRed)
		}
	case sim.KindExplosion:
		dst.SetColored(col, row, ExplosionGlyph(v.Frame, g.cfg.Explosion.Frames), core.ColorOrange)
	}
}

// toCell maps world coordinates (origin at centre, y up) to a screen cell
// inside the playfield below the HUD.
func (g *Game) toCell(dst *core.Screen, x, y float64) (int, int) {
	view := g.world.Host().Viewport()
	cols := float64(dst.Width())
	rows := float64(dst.Height() - hudRows)

	col := int(math.Floor((x + view.W/2) / view.W * cols))
	row := hudRows + int(math.Floor((view.H/2-y)/view.H*rows))
	return col, row
}

// ExplosionGlyph picks the glyph for an explosion frame.
func ExplosionGlyph(frame, frames int) rune {
	if frames <= 0 {
		return ExplosionGlyphs[0]
	}
	i := frame * len(ExplosionGlyphs) / frames
	i = core.Clamp(i, 0, len(ExplosionGlyphs)-1)
	return ExplosionGlyphs[i]
}

// drawCentered writes text centred on col. Cells outside the screen are skipped.
func drawCentered(dst *core.Screen, col, row int, text string, c core.Color) {
	x := col - utf8.RuneCountInString(text)/2
	for _, r := range text {
		dst.SetColored(x, row, r, c)
		x++
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score())
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	default:
		if !g.world.Player().Alive {
			dst.DrawTextCentered(dst.Height()-1, "Ship lost... stand by")
		}
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
