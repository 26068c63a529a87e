// Package tetris implements the falling-block puzzle engine: playfield,
// active piece with SRS wall kicks, 7-bag randomizer, line clears and scoring.
// It has no rendering, no clock and no I/O; a front end drives a Session with
// decoded commands and elapsed-time reports and reads Snapshots back.
package tetris

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// kindCount is the number of distinct piece kinds and the size of one bag.
const kindCount = 7

// shapes holds the four spawn-orientation offsets of each kind relative to
// the spawn anchor. The first offset is the rotation pivot.
var shapes = [kindCount][4]core.Vec{
	KindI: {{X: 1, Y: 0}, {X: -2, Y: 0}, {X: 0, Y: 0}, {X: -1, Y: 0}},
	KindO: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: 1, Y: -1}},
	KindT: {{X: 0, Y: 0}, {X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}},
	KindS: {{X: 0, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: -1}, {X: 1, Y: -1}},
	KindZ: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: -1}},
	KindJ: {{X: 0, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 1}},
	KindL: {{X: 0, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 1}, {X: 1, Y: 1}},
}

var colors = [kindCount]core.Color{
	KindI: core.ColorCyan,
	KindO: core.ColorYellow,
	KindT: core.ColorMagenta,
	KindS: core.ColorGreen,
	KindZ: core.ColorRed,
	KindJ: core.ColorBlue,
	KindL: core.ColorOrange,
}

var kindNames = [kindCount]string{"I", "O", "T", "S", "Z", "J", "L"}

// Kinds returns all seven kinds in catalog order.
func Kinds() []Kind {
	return []Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}
}

// Valid reports whether k is one of the seven catalog kinds.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// Shape returns the spawn offsets of the kind.
func (k Kind) Shape() [4]core.Vec {
	if !k.Valid() {
		return [4]core.Vec{}
	}
	return shapes[k]
}

// Color returns the display color of the kind.
func (k Kind) Color() core.Color {
	if !k.Valid() {
		return core.ColorDefault
	}
	return colors[k]
}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return "?"
	}
	return kindNames[k]
}

// ParseKind converts a letter such as "T" into a Kind.
func ParseKind(s string) (Kind, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("tetris: unknown piece kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
