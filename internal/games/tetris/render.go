package tetris

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-tetris/internal/core"
	engine "github.com/vovakirdan/tui-tetris/internal/tetris"
)

const (
	cellWidth  = 2  // Each board cell is two columns wide
	panelWidth = 16 // Side panel with preview and HUD
	panelGap   = 2
)

// Glyphs for a single board cell.
var (
	blockGlyph = [cellWidth]rune{'[', ']'}
	ghostGlyph = [cellWidth]rune{':', ':'}
	flashGlyph = [cellWidth]rune{'=', '='}
	emptyGlyph = [cellWidth]rune{' ', '.'}
)

// requiredSize returns the smallest screen the layout fits in.
func (g *Game) requiredSize() (int, int) {
	wellW := g.cfg.Board.Width*cellWidth + 2
	wellH := g.cfg.Board.Height + 2
	return wellW + panelGap + panelWidth, wellH + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	totalW, _ := g.requiredSize()
	wellX := (g.runtime.ScreenW - totalW) / 2
	wellY := 1
	wellW := g.eng.Width()*cellWidth + 2
	wellH := g.eng.Height() + 2

	dst.DrawTextCentered(0, g.Title())
	dst.DrawBox(core.NewRect(wellX, wellY, wellW, wellH))

	g.renderBoard(dst, wellX+1, wellY+1)

	panelX := wellX + wellW + panelGap
	g.renderPanel(dst, panelX, wellY)

	g.renderOverlays(dst, wellX+wellW/2, wellY+wellH/2)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := g.requiredSize()
	y := g.runtime.ScreenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d", w, h))
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderBoard draws the locked cells, the ghost and the active piece.
func (g *Game) renderBoard(dst *core.Screen, originX, originY int) {
	board := g.eng.Board()
	for y, row := range board {
		for x, k := range row {
			if k == engine.Empty {
				drawCell(dst, originX, originY, x, y, emptyGlyph, core.ColorGray)
				continue
			}
			drawCell(dst, originX, originY, x, y, blockGlyph, k.Color())
		}
	}

	if g.flashLeft > 0 {
		for _, y := range g.flashRows {
			for x := range g.eng.Width() {
				drawCell(dst, originX, originY, x, y, flashGlyph, core.ColorBrightWhite)
			}
		}
	}

	piece, ok := g.eng.Active()
	if !ok {
		return
	}

	if ghostY, ok := g.eng.GhostY(); ok && ghostY != piece.Y {
		piece.Shape.Cells(func(dx, dy int) {
			drawCell(dst, originX, originY, piece.X+dx, ghostY+dy, ghostGlyph, piece.Kind.Color())
		})
	}

	piece.Shape.Cells(func(dx, dy int) {
		drawCell(dst, originX, originY, piece.X+dx, piece.Y+dy, blockGlyph, piece.Kind.Color())
	})
}

// drawCell draws one board cell; rows above the well are skipped.
func drawCell(dst *core.Screen, originX, originY, x, y int, glyph [cellWidth]rune, c core.Color) {
	if y < 0 {
		return
	}
	for i, r := range glyph {
		dst.SetColor(originX+x*cellWidth+i, originY+y, r, c)
	}
}

// renderPanel draws the preview queue and the score table.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	dst.DrawText(x, y, "NEXT")
	row := y + 1
	for _, k := range g.eng.Preview(g.preview) {
		shape := k.Shape()
		shape.Cells(func(dx, dy int) {
			drawCell(dst, x, row, dx, dy, blockGlyph, k.Color())
		})
		row += shape.Height() + 1
	}

	row = max(row, y+9)
	levelLabel := "LEVEL"
	if !g.difficulty.IsEnabled() {
		levelLabel = "FIXED" // Level never rises
	}
	stats := []struct {
		label string
		value int
	}{
		{"SCORE", g.score},
		{"LINES", g.lines},
		{levelLabel, g.level},
		{"BEST", g.best},
	}
	for _, s := range stats {
		dst.DrawText(x, row, fmt.Sprintf("%-6s%8d", s.label, s.value))
		row++
	}
	if g.score > g.best && g.best > 0 {
		dst.DrawTextColor(x, row, "NEW BEST!", core.ColorBrightYellow)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, centerX, centerY int) {
	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		lines := []string{"GAME OVER", fmt.Sprintf("Score: %d", g.score)}
		if g.newBest {
			lines = append(lines, "NEW BEST!")
		}
		lines = append(lines, "Press R to restart")
		g.drawOverlay(dst, centerX, centerY, lines...)
	}
}

// drawOverlay draws a centered, boxed text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := len(slices.MaxFunc(lines, func(a, b string) int { return len(a) - len(b) }))

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the key help shown under the game.
func Controls() []string {
	return []string{
		"←/→ move",
		"↑ rotate",
		"↓ soft drop",
		"space hard drop",
		"n preview 1-3",
		"p pause",
		"r restart",
		"esc menu",
	}
}
