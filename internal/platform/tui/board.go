package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// Board layout in screen cells. Every playfield column is two characters
// wide so blocks look square in a terminal.
const (
	cellWidth    = 2
	panelGap     = 2
	panelWidth   = 14
	previewRows  = 3 // Tallest spawn shape (J, L) spans three rows
	panelHeader  = 5 // Score, lines, level, blank, "Next"
	panelTrailer = 2 // Blank line and the flash line
)

const (
	glyphBlock = "██"
	glyphGhost = "░░"
	glyphEmpty = " ."
)

// Decor is transient text drawn on top of the game.
type Decor struct {
	Status string // Centered over the board, e.g. PAUSED
	Flash  string // Below the preview, e.g. the last award
}

// BoardSize returns the screen size of a cols x rows board with its border.
func BoardSize(cols, rows int) (w, h int) {
	return cols*cellWidth + 2, rows + 2
}

// LayoutSize returns the screen size of the board and the side panel.
func LayoutSize(cols, rows, preview int) (w, h int) {
	bw, bh := BoardSize(cols, rows)
	ph := panelHeader + preview*previewRows + panelTrailer
	return bw + panelGap + panelWidth, max(bh, ph)
}

// DrawGame draws the board at origin and the side panel to its right.
func DrawGame(s *core.Screen, snap tetris.Snapshot, origin core.Vec, decor Decor) {
	DrawBoard(s, snap, origin)
	bw, _ := BoardSize(snap.Columns, snap.Rows)
	DrawPanel(s, snap, origin.Shift(bw+panelGap, 0), decor.Flash)

	if decor.Status != "" {
		text := " " + decor.Status + " "
		x := origin.X + (bw-len([]rune(text)))/2
		y := origin.Y + 1 + snap.Rows/2
		s.DrawTextColored(x, y, text, core.ColorWhite)
	}
}

// DrawBoard draws the bordered playfield: locked blocks, then the ghost and
// the active piece while the game is running. Cells above the visible top
// are not drawn.
func DrawBoard(s *core.Screen, snap tetris.Snapshot, origin core.Vec) {
	w, h := BoardSize(snap.Columns, snap.Rows)
	s.DrawBox(core.NewRect(origin.X, origin.Y, w, h), core.ColorGray)

	put := func(c core.Vec, glyph string, color core.Color) {
		if c.Y < 0 || c.Y >= snap.Rows || c.X < 0 || c.X >= snap.Columns {
			return
		}
		s.DrawTextColored(origin.X+1+c.X*cellWidth, origin.Y+1+c.Y, glyph, color)
	}

	for y, row := range snap.Blocks {
		for x, b := range row {
			if b.Filled {
				put(core.V(x, y), glyphBlock, b.Color)
			} else {
				put(core.V(x, y), glyphEmpty, core.ColorGray)
			}
		}
	}

	if snap.State != tetris.StatePlaying {
		return
	}
	for _, c := range snap.Ghost {
		put(c, glyphGhost, snap.ActiveColor)
	}
	for _, c := range snap.Active {
		put(c, glyphBlock, snap.ActiveColor)
	}
}

// DrawPanel draws the score tally and the next-piece preview.
func DrawPanel(s *core.Screen, snap tetris.Snapshot, origin core.Vec, flash string) {
	line := func(row int, label string, value int) {
		s.DrawText(origin.X, origin.Y+row, fmt.Sprintf("%-6s%8d", label, value))
	}
	line(0, "Score", snap.Score.Points)
	line(1, "Lines", snap.Score.Lines)
	line(2, "Level", snap.Score.Level)
	s.DrawText(origin.X, origin.Y+4, "Next")

	top := origin.Y + panelHeader
	for i, kind := range snap.Next {
		base := top + i*previewRows
		for _, off := range kind.Shape() {
			// Shapes span columns -2..1 and rows -1..1 around the anchor.
			x := origin.X + (off.X+2)*cellWidth
			s.DrawTextColored(x, base+off.Y+1, glyphBlock, kind.Color())
		}
	}

	if flash != "" {
		y := top + len(snap.Next)*previewRows + 1
		s.DrawTextColored(origin.X, y, flash, core.ColorYellow)
	}
}

// PlainBoard renders a snapshot as uncolored text, one line per screen row
// with trailing spaces removed.
func PlainBoard(snap tetris.Snapshot, status string) string {
	w, h := LayoutSize(snap.Columns, snap.Rows, len(snap.Next))
	s := core.NewScreen(w, h)
	DrawGame(s, snap, core.V(0, 0), Decor{Status: status})

	lines := strings.Split(s.String(), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
