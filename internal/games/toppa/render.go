package toppa

import (
	"fmt"
	"math"

	"github.com/vovakirdan/toppa/internal/core"
)

const (
	cellWidth  = 5 // Width of each cell (including borders)
	cellHeight = 2 // Height of each cell (including borders)
	hudHeight  = 3
)

// tileColors maps tiers to colors; light tiles warm up as they climb.
var tileColors = map[Tile]core.Color{
	TileDark2: core.ColorBrightMagenta,
	TileDark1: core.ColorMagenta,
	TileOne:   core.ColorWhite,
	TileTwo:   core.ColorBrightCyan,
	TileThree: core.ColorBrightGreen,
	TileFour:  core.ColorBrightYellow,
	TileFive:  core.ColorOrange,
	TileSix:   core.ColorBrightRed,
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	view := g.session.View(g.now)

	boardW := BoardSize*cellWidth + 1  // +1 for right border
	boardH := BoardSize*cellHeight + 1 // +1 for bottom border

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, view, boardX, boardW)
	g.renderGrid(dst, boardX, boardY)
	if view.Status != StatusInitial && view.Status != StatusCountdown {
		g.renderTiles(dst, view, boardX, boardY)
	}
	g.renderOverlays(dst, view, boardX, boardY, boardW, boardH)

	footerY := boardY + boardH + 1
	dst.DrawTextColor((g.screenW-len(g.Controls()))/2, footerY, g.Controls(), core.ColorGray)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws score, merge count and the timer.
func (g *Game) renderHUD(dst *core.Screen, view View, boardX, boardW int) {
	title := "T O P P A"
	dst.DrawTextColor(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", view.Score))

	timeStr := fmt.Sprintf("Time: %d", view.TimeLeft)
	timeColor := core.ColorDefault
	if view.Status == StatusPlaying && view.TimeLeft <= 10 {
		timeColor = core.ColorBrightRed
	}
	dst.DrawTextColor(boardX+boardW-len(timeStr), 1, timeStr, timeColor)

	merges := fmt.Sprintf("Merges: %d", view.Merges)
	dst.DrawText(boardX+(boardW-len(merges))/2, 2, merges)
}

// renderGrid draws the 4x4 cell borders.
func (g *Game) renderGrid(dst *core.Screen, boardX, boardY int) {
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == BoardSize:
				corner = '┐'
			case y == BoardSize && x == 0:
				corner = '└'
			case y == BoardSize && x == BoardSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == BoardSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == BoardSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColor(px, py, corner, core.ColorGray)

			if x < BoardSize {
				dst.DrawHLineColor(px+1, py, cellWidth-1, '─', core.ColorGray)
			}
			if y < BoardSize {
				dst.DrawVLineColor(px, py+1, cellHeight-1, '│', core.ColorGray)
			}
		}
	}
}

// renderTiles draws every tile using the animator's hints for this frame.
func (g *Game) renderTiles(dst *core.Screen, view View, boardX, boardY int) {
	for y := range BoardSize {
		for x := range BoardSize {
			h := view.Hints[y][x]

			tile := h.Tile
			small := false
			if view.Phase == PhaseChange && h.Scale < 0.5 {
				// Terminal cells cannot scale; show the outgoing tile until
				// the incoming one is half grown.
				if h.Under != TileEmpty {
					tile = h.Under
				} else {
					small = tile != TileEmpty
				}
			}
			if tile == TileEmpty {
				continue
			}

			cx := boardX + x*cellWidth + 1 + int(math.Round(h.OffsetX*cellWidth))
			cy := boardY + y*cellHeight + 1 + int(math.Round(h.OffsetY*cellHeight))

			label := tile.String()
			if small {
				label = "·"
			}
			padLeft := (cellWidth - 1 - len(tile.String())) / 2
			dst.DrawTextColor(cx+padLeft, cy, label, tileColors[tile])
		}
	}
}

// renderOverlays draws status overlays on top of the board.
func (g *Game) renderOverlays(dst *core.Screen, view View, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	switch view.Status {
	case StatusInitial:
		g.drawOverlay(dst, centerX, centerY, "TOPPA", "Space: Start")
	case StatusCountdown:
		g.drawOverlay(dst, centerX, centerY, view.Countdown)
	case StatusFinishing:
		if view.TimeLeft == 0 {
			g.drawOverlay(dst, centerX, centerY, "TIME UP")
		} else {
			g.drawOverlay(dst, centerX, centerY, "NO MOVES")
		}
	case StatusResult:
		res, ok := g.session.Result()
		if !ok {
			return
		}
		g.drawOverlay(dst, centerX, centerY,
			"RESULT",
			"Score: "+res.ScoreText,
			"Merges: "+res.MergesText,
			"R: Retry",
		)
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Space: Start | R: Retry | Q: Quit"
}
