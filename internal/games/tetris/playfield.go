package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Block is one slot of the playfield. The zero value is an empty slot.
type Block struct {
	Filled bool
	Kind   Kind
	Color  core.Color
}

// blockOf returns the locked block left behind by a piece of kind k.
func blockOf(k Kind) Block {
	return Block{Filled: true, Kind: k, Color: k.Color()}
}

// Playfield is the Columns x Rows grid of locked blocks.
// Row 0 is the visible top; rows above it (negative) exist only transiently
// while a piece spawns and are never stored.
type Playfield struct {
	cols int
	rows int
	grid [][]Block // grid[row][col]
}

// NewPlayfield creates an empty playfield.
func NewPlayfield(cols, rows int) (*Playfield, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: playfield must be at least 1x1, got %dx%d", ErrInvalidConfig, cols, rows)
	}
	p := &Playfield{cols: cols, rows: rows}
	p.grid = make([][]Block, rows)
	for y := range p.grid {
		p.grid[y] = make([]Block, cols)
	}
	return p, nil
}

// Columns returns the grid width.
func (p *Playfield) Columns() int {
	return p.cols
}

// Rows returns the grid height.
func (p *Playfield) Rows() int {
	return p.rows
}

// Blocked reports whether a piece cell may not occupy c: outside the side
// walls, below the floor, or on a locked block. Cells above the top are only
// blocked by the walls.
func (p *Playfield) Blocked(c core.Vec) bool {
	if c.X < 0 || c.X >= p.cols || c.Y >= p.rows {
		return true
	}
	return c.Y >= 0 && p.grid[c.Y][c.X].Filled
}

// anyBlocked reports whether any of the cells is blocked.
func (p *Playfield) anyBlocked(cells []core.Vec) bool {
	for _, c := range cells {
		if p.Blocked(c) {
			return true
		}
	}
	return false
}

// At returns the block at c, or an empty block outside the grid.
func (p *Playfield) At(c core.Vec) Block {
	if c.X < 0 || c.X >= p.cols || c.Y < 0 || c.Y >= p.rows {
		return Block{}
	}
	return p.grid[c.Y][c.X]
}

// set stores b at c if c is inside the grid.
func (p *Playfield) set(c core.Vec, b Block) {
	if c.X < 0 || c.X >= p.cols || c.Y < 0 || c.Y >= p.rows {
		return
	}
	p.grid[c.Y][c.X] = b
}

// Lock writes the cells into the grid as b. It reports toppedOut when any
// cell lies above the visible top, which ends the game; the cells that are
// inside the grid are still written.
func (p *Playfield) Lock(cells []core.Vec, b Block) (toppedOut bool) {
	b.Filled = true
	for _, c := range cells {
		if c.Y < 0 {
			toppedOut = true
			continue
		}
		p.set(c, b)
	}
	return toppedOut
}

// rowFull reports whether every slot of row y is filled.
func (p *Playfield) rowFull(y int) bool {
	for _, b := range p.grid[y] {
		if !b.Filled {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row and drops the rows above each removed
// row by one per removed row beneath them. Fullness is decided on the grid as
// it was before the call. Returns the cleared row indices, top to bottom.
func (p *Playfield) ClearFullRows() []int {
	var cleared []int
	full := make([]bool, p.rows)
	for y := range p.rows {
		if p.rowFull(y) {
			full[y] = true
			cleared = append(cleared, y)
		}
	}
	if len(cleared) == 0 {
		return nil
	}

	// Copy surviving rows bottom-up into a fresh grid.
	next := make([][]Block, p.rows)
	dst := p.rows - 1
	for y := p.rows - 1; y >= 0; y-- {
		if full[y] {
			continue
		}
		next[dst] = p.grid[y]
		dst--
	}
	for ; dst >= 0; dst-- {
		next[dst] = make([]Block, p.cols)
	}
	p.grid = next

	return cleared
}

// Blocks returns a deep copy of the grid, indexed [row][col].
func (p *Playfield) Blocks() [][]Block {
	out := make([][]Block, p.rows)
	for y, row := range p.grid {
		out[y] = make([]Block, p.cols)
		copy(out[y], row)
	}
	return out
}

// Filled returns the number of locked blocks on the grid.
func (p *Playfield) Filled() int {
	n := 0
	for _, row := range p.grid {
		for _, b := range row {
			if b.Filled {
				n++
			}
		}
	}
	return n
}
