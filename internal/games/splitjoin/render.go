package splitjoin

import (
	"fmt"

	"github.com/vovakirdan/splitjoin/internal/core"
)

const (
	cellWidth  = 2 // Glyph plus one column of spacing
	hudHeight  = 3
	boardW     = N*cellWidth + 3 // Left border, padding column, cells, right border
	boardH     = N + 2
	minScreenW = boardW + 2
	minScreenH = hudHeight + boardH + 2
)

// boardOrigin returns the top-left corner of the board box.
func (g *Game) boardOrigin() (int, int) {
	return (g.screenW - boardW) / 2, hudHeight
}

// cellOrigin returns the screen position of a cell's glyph.
func (g *Game) cellOrigin(c Cell) (int, int) {
	bx, by := g.boardOrigin()
	return bx + 2 + c.Col*cellWidth, by + 1 + c.Row
}

// CellAt maps a screen position to a board cell. Both columns of a cell
// belong to it.
func (g *Game) CellAt(x, y int) (Cell, bool) {
	if g.tooSmall {
		return Cell{}, false
	}
	bx, by := g.boardOrigin()
	col := x - (bx + 2)
	row := y - (by + 1)
	if col < 0 || row < 0 {
		return Cell{}, false
	}
	c := Cell{Row: row, Col: col / cellWidth}
	if !InBounds(c.Row, c.Col) {
		return Cell{}, false
	}
	return c, true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.session.Snapshot()
	g.renderHUD(dst, snap)
	g.renderBoard(dst, snap)

	if g.prompting {
		g.renderPrompt(dst)
	}

	footerY := hudHeight + boardH
	dst.DrawTextCentered(footerY, g.Controls())
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderHUD draws level, score, best score, mode and the flash message.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	bx, _ := g.boardOrigin()

	title := "SPLIT & JOIN"
	dst.DrawText(bx+(boardW-len(title))/2, 0, title)

	stats := fmt.Sprintf("L %d   S %.2f   H %.2f", snap.Level, snap.Score, snap.BestScore)
	dst.DrawText(bx, 1, stats)

	modeStr := "PLAY"
	if snap.Mode == ModeFreeEdit {
		modeStr = "EDIT"
	}
	dst.DrawTextColored(bx+boardW-len(modeStr), 1, modeStr, g.theme.CursorColor)

	if g.flash != "" {
		dst.DrawText(bx, 2, g.flash)
	}
}

// selection returns the rectangle preview between anchor and cursor, in
// (col, row) space.
func (g *Game) selection() (core.Rect, bool) {
	if g.anchor == nil || g.session.Mode() != ModeFreeEdit {
		return core.Rect{}, false
	}
	return core.RectFromCorners(g.anchor.Col, g.anchor.Row, g.cursor.Col, g.cursor.Row), true
}

// renderBoard draws the grid with markers, the highlighted diagonal, the
// rectangle preview and the cursor.
func (g *Game) renderBoard(dst *core.Screen, snap Snapshot) {
	bx, by := g.boardOrigin()
	dst.DrawBox(core.NewRect(bx, by, boardW, boardH))

	board := g.session.board
	sel, hasSel := g.selection()

	for row := range N {
		for col := range N {
			c := Cell{Row: row, Col: col}
			x, y := g.cellOrigin(c)

			glyph, color := g.theme.Empty, g.theme.EmptyColor
			highlighted := snap.IsHighlighted(c)
			switch {
			case board.cells[row][col] && highlighted:
				glyph, color = g.theme.Marker, g.theme.HighlightColor
			case board.cells[row][col]:
				glyph, color = g.theme.Marker, g.theme.MarkerColor
			case highlighted:
				glyph, color = g.theme.Highlight, g.theme.HighlightColor
			}

			if hasSel && sel.Contains(col, row) {
				color = g.theme.SelectionColor
			}
			if c == g.cursor {
				color = g.theme.CursorColor
				dst.SetColored(x-1, y, '[', color)
				dst.SetColored(x+1, y, ']', color)
			}
			dst.SetColored(x, y, glyph, color)
		}
	}
}

// renderPrompt draws the reset confirmation box over the board.
func (g *Game) renderPrompt(dst *core.Screen) {
	lines := []string{"Are you sure you want to start over?", "Y: Yes   N/Esc: No"}

	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	bx, by := g.boardOrigin()
	centerX := bx + boardW/2
	centerY := by + boardH/2

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
