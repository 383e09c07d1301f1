package t2048

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)

	boardW    = BoardSize*cellWidth + 1  // +1 for right border
	boardH    = BoardSize*cellHeight + 1 // +1 for bottom border
	hudHeight = 3
)

// tileColors is indexed by log2 of the tile value.
var tileColors = []core.Color{
	1:  core.ColorWhite,
	2:  core.ColorBrightWhite,
	3:  core.ColorOrange,
	4:  core.ColorBrightRed,
	5:  core.ColorRed,
	6:  core.ColorBrightMagenta,
	7:  core.ColorYellow,
	8:  core.ColorBrightYellow,
	9:  core.ColorGreen,
	10: core.ColorCyan,
	11: core.ColorGold,
}

func tileColor(value int) core.Color {
	idx := bits.TrailingZeros(uint(value))
	if idx >= len(tileColors) {
		return core.ColorPurple
	}
	return tileColors[idx]
}

// BoardRect returns the screen area covered by the grid.
func (g *Game) BoardRect() core.Rect {
	return core.NewRect((g.screenW-boardW)/2, hudHeight+1, boardW, boardH)
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	board := g.BoardRect()
	g.renderHUD(dst, board)
	g.renderGrid(dst, board)

	if g.anim.phase == PhaseSlide {
		g.renderSliding(dst, board)
	} else {
		g.renderTiles(dst, board)
	}

	g.renderOverlays(dst, board)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderHUD draws the title, score, max tile and progress meter.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	title := "2048"
	dst.DrawTextColored(board.X+(board.W-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(board.X, 1, fmt.Sprintf("Score: %d", g.engine.Score()))
	maxStr := fmt.Sprintf("Max: %d", g.engine.MaxTile())
	dst.DrawText(board.Right()-len(maxStr), 1, maxStr)

	pct := g.engine.Progress()
	tier := TierFor(pct)
	label := fmt.Sprintf("%3d%%", DisplayProgress(pct))
	barW := board.W - len(label) - 1
	filled := DisplayProgress(pct) * barW / 100

	dst.DrawHLine(board.X, 2, barW, '░', core.ColorGray)
	dst.DrawHLine(board.X, 2, filled, '█', tier.Color())
	dst.DrawTextColored(board.Right()-len(label), 2, label, tier.Color())
}

// renderGrid draws the 4x4 cell borders.
func (g *Game) renderGrid(dst *core.Screen, board core.Rect) {
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := board.X + x*cellWidth
			py := board.Y + y*cellHeight

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
			dst.Set(px, py, corner)

			if x < BoardSize {
				dst.DrawHLine(px+1, py, cellWidth-1, '─', core.ColorDefault)
			}
			if y < BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}
}

// renderTiles draws the engine board, with pop effects for tiles that just
// appeared or merged.
func (g *Game) renderTiles(dst *core.Screen, board core.Rect) {
	b := g.engine.Board()
	for r := range BoardSize {
		for c := range BoardSize {
			t := b[r][c]
			if t.Empty() {
				continue
			}

			text := strconv.Itoa(t.Value)
			color := tileColor(t.Value)
			if pop, ok := g.anim.popping(t.ID); ok {
				switch {
				case pop.IsNew && pop.Progress < 0.5:
					text = "·"
				case pop.Merged && pop.Progress < 1:
					color = core.ColorBrightWhite
				}
			}

			g.drawTile(dst, board, float64(c), float64(r), text, color)
		}
	}
}

// renderSliding draws every tile of the previous board on its way to its
// target. The spawned tile stays hidden until the pop phase.
func (g *Game) renderSliding(dst *core.Screen, board core.Rect) {
	for i := range g.anim.tiles {
		t := &g.anim.tiles[i]
		col, row := t.interpolatePosition()
		g.drawTile(dst, board, col, row, strconv.Itoa(t.Value), tileColor(t.Value))
	}
}

// drawTile writes a tile value centered in the cell at (col,row), which may be
// fractional while sliding.
func (g *Game) drawTile(dst *core.Screen, board core.Rect, col, row float64, text string, c core.Color) {
	x := board.X + int(math.Round(col*cellWidth)) + 1
	y := board.Y + int(math.Round(row*cellHeight)) + 1

	width := len([]rune(text))
	pad := max((cellWidth-1-width)/2, 0)
	dst.DrawTextColored(x+pad, y, text, c)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	cx, cy := board.Center()

	if g.paused {
		g.drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
		return
	}

	if g.engine.Terminal() {
		g.drawOverlay(dst, cx, cy,
			"GAME OVER",
			fmt.Sprintf("Score: %d", g.engine.Score()),
			"Press R to restart")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
