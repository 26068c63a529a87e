package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// transition is a directed rotation edge between two rotation indices.
type transition struct {
	from, to int
}

// noKick is returned for pieces and transitions without a table.
var noKick = []core.Vec{{X: 0, Y: 0}}

// Offsets are added to the rotated cells as-is, in grid coordinates.
var kicksJLSTZ = map[transition][]core.Vec{
	{0, 1}: {{X: 0, Y: 0}, {X: -1, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: -2}, {X: -1, Y: -2}},
	{1, 2}: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: -1}, {X: 0, Y: 2}, {X: 1, Y: 2}},
	{2, 3}: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: -2}, {X: 1, Y: -2}},
	{3, 0}: {{X: 0, Y: 0}, {X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: 2}, {X: -1, Y: 2}},
	{1, 0}: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: -2}, {X: 1, Y: -2}},
	{2, 1}: {{X: 0, Y: 0}, {X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: 2}, {X: -1, Y: 2}},
	{3, 2}: {{X: 0, Y: 0}, {X: -1, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: -2}, {X: -1, Y: -2}},
	{0, 3}: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: -1}, {X: 0, Y: 2}, {X: 1, Y: 2}},
}

var kicksI = map[transition][]core.Vec{
	{0, 1}: {{X: 0, Y: 0}, {X: -2, Y: 0}, {X: 1, Y: 0}, {X: -2, Y: -1}, {X: 1, Y: 2}},
	{1, 2}: {{X: 0, Y: 0}, {X: -1, Y: 0}, {X: 2, Y: 0}, {X: -1, Y: 2}, {X: 2, Y: -1}},
	{2, 3}: {{X: 0, Y: 0}, {X: 2, Y: 0}, {X: -1, Y: 0}, {X: 2, Y: 1}, {X: -1, Y: -2}},
	{3, 0}: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: -2, Y: 0}, {X: 1, Y: -2}, {X: -2, Y: 1}},
	{1, 0}: {{X: 0, Y: 0}, {X: 2, Y: 0}, {X: -1, Y: 0}, {X: 2, Y: 1}, {X: -1, Y: -2}},
	{2, 1}: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: -2, Y: 0}, {X: 1, Y: -2}, {X: -2, Y: 1}},
	{3, 2}: {{X: 0, Y: 0}, {X: -2, Y: 0}, {X: 1, Y: 0}, {X: -2, Y: -1}, {X: 1, Y: 2}},
	{0, 3}: {{X: 0, Y: 0}, {X: -1, Y: 0}, {X: 2, Y: 0}, {X: -1, Y: 2}, {X: 2, Y: -1}},
}

// Kicks returns the ordered wall-kick offsets to try when kind rotates from
// one rotation index to another. The first offset is always (0,0).
// Callers must not modify the returned slice.
func Kicks(kind Kind, from, to int) []core.Vec {
	var table map[transition][]core.Vec
	switch kind {
	case KindI:
		table = kicksI
	case KindJ, KindL, KindS, KindT, KindZ:
		table = kicksJLSTZ
	default:
		return noKick
	}

	if offsets, ok := table[transition{from: from, to: to}]; ok {
		return offsets
	}
	return noKick
}
