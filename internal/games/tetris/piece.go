package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Spin is a rotation direction.
type Spin int

const (
	Clockwise Spin = iota
	CounterClockwise
)

// String returns "cw" or "ccw".
func (s Spin) String() string {
	if s == CounterClockwise {
		return "ccw"
	}
	return "cw"
}

// Piece is the falling tetromino. It only ever holds positions the playfield
// accepted; a rejected move or rotation leaves it untouched.
type Piece struct {
	kind     Kind
	rotation int // 0..3, clockwise quarter turns from spawn
	cells    [4]core.Vec
	field    *Playfield
}

// spawnPiece places kind at anchor in its spawn orientation.
func spawnPiece(kind Kind, field *Playfield, anchor core.Vec) *Piece {
	p := &Piece{kind: kind, field: field}
	for i, off := range kind.Shape() {
		p.cells[i] = anchor.Add(off)
	}
	return p
}

// Kind returns the piece kind.
func (p *Piece) Kind() Kind {
	return p.kind
}

// Rotation returns the rotation index (0..3).
func (p *Piece) Rotation() int {
	return p.rotation
}

// Cells returns the four absolute cell positions. The first is the pivot.
func (p *Piece) Cells() [4]core.Vec {
	return p.cells
}

// Color returns the display color of the piece.
func (p *Piece) Color() core.Color {
	return p.kind.Color()
}

func (p *Piece) fits(cells [4]core.Vec) bool {
	return !p.field.anyBlocked(cells[:])
}

func (p *Piece) shifted(dx, dy int) [4]core.Vec {
	var out [4]core.Vec
	for i, c := range p.cells {
		out[i] = c.Shift(dx, dy)
	}
	return out
}

// MoveHorizontal shifts the piece one column left (dir < 0) or right
// (dir > 0). Returns false, leaving the piece in place, when blocked.
func (p *Piece) MoveHorizontal(dir int) bool {
	switch {
	case dir < 0:
		dir = -1
	case dir > 0:
		dir = 1
	default:
		return false
	}

	next := p.shifted(dir, 0)
	if !p.fits(next) {
		return false
	}
	p.cells = next
	return true
}

// SoftDropStep moves the piece one row down. It returns landed=true without
// moving when the row below is blocked; the caller then locks the piece.
func (p *Piece) SoftDropStep() (landed bool) {
	next := p.shifted(0, 1)
	if !p.fits(next) {
		return true
	}
	p.cells = next
	return false
}

// Rotate turns the piece a quarter turn around its first cell, trying each
// wall-kick offset for the transition in order. Returns false when no
// placement fits or the piece is an O.
func (p *Piece) Rotate(dir Spin) bool {
	if p.kind == KindO {
		return false
	}

	target := (p.rotation + 1) % 4
	if dir == CounterClockwise {
		target = (p.rotation + 3) % 4
	}

	pivot := p.cells[0]
	var turned [4]core.Vec
	for i, c := range p.cells {
		if dir == CounterClockwise {
			turned[i] = c.RotateCCW(pivot)
		} else {
			turned[i] = c.RotateCW(pivot)
		}
	}

	for _, kick := range Kicks(p.kind, p.rotation, target) {
		var candidate [4]core.Vec
		for i, c := range turned {
			candidate[i] = c.Add(kick)
		}
		if p.fits(candidate) {
			p.cells = candidate
			p.rotation = target
			return true
		}
	}
	return false
}

// dropDistance returns how many rows the piece can fall before landing.
func (p *Piece) dropDistance() int {
	dist := 0
	for {
		next := p.shifted(0, dist+1)
		if !p.fits(next) {
			return dist
		}
		dist++
	}
}

// HardDrop moves the piece straight down until it rests on something and
// returns the number of rows travelled.
func (p *Piece) HardDrop() int {
	dist := p.dropDistance()
	p.cells = p.shifted(0, dist)
	return dist
}

// Ghost returns where the piece would come to rest if hard dropped.
func (p *Piece) Ghost() [4]core.Vec {
	return p.shifted(0, p.dropDistance())
}
