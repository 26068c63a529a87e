package tetris

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestShapesHaveFourDistinctCells(t *testing.T) {
	field := newTestField(t, 10, 20)

	for _, kind := range Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			p := spawnPiece(kind, field, core.V(5, -1))
			seen := make(map[core.Vec]bool)
			for _, c := range p.Cells() {
				if seen[c] {
					t.Errorf("cell %v appears twice", c)
				}
				seen[c] = true
			}
			if len(seen) != 4 {
				t.Errorf("expected 4 distinct cells, got %d", len(seen))
			}
			if p.Rotation() != 0 {
				t.Errorf("spawn rotation = %d, expected 0", p.Rotation())
			}
		})
	}
}

func TestKindColorsAreDistinct(t *testing.T) {
	seen := make(map[core.Color]Kind)
	for _, kind := range Kinds() {
		c := kind.Color()
		if c == core.ColorDefault {
			t.Errorf("%s has no color", kind)
		}
		if other, ok := seen[c]; ok {
			t.Errorf("%s and %s share color %s", kind, other, c)
		}
		seen[c] = kind
	}
}

func TestParseKind(t *testing.T) {
	for _, kind := range Kinds() {
		parsed, err := ParseKind(kind.String())
		if err != nil {
			t.Fatalf("ParseKind(%q) failed: %v", kind.String(), err)
		}
		if parsed != kind {
			t.Errorf("ParseKind(%q) = %v, expected %v", kind.String(), parsed, kind)
		}
	}

	if k, err := ParseKind(" t "); err != nil || k != KindT {
		t.Errorf("ParseKind(\" t \") = %v, %v; expected T", k, err)
	}
	if _, err := ParseKind("X"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestInvalidKind(t *testing.T) {
	k := Kind(42)
	if k.Valid() {
		t.Error("Kind(42) should not be valid")
	}
	if k.String() != "?" {
		t.Errorf("String() = %q, expected \"?\"", k.String())
	}
	if k.Color() != core.ColorDefault {
		t.Errorf("Color() = %v, expected default", k.Color())
	}
}

func TestKicksStartWithPlainRotation(t *testing.T) {
	edges := []transition{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{1, 0}, {2, 1}, {3, 2}, {0, 3},
	}

	for _, kind := range []Kind{KindI, KindJ, KindL, KindS, KindT, KindZ} {
		for _, e := range edges {
			offsets := Kicks(kind, e.from, e.to)
			if len(offsets) != 5 {
				t.Errorf("%s %d->%d: expected 5 offsets, got %d", kind, e.from, e.to, len(offsets))
				continue
			}
			if offsets[0] != core.V(0, 0) {
				t.Errorf("%s %d->%d: first offset = %v, expected (0,0)", kind, e.from, e.to, offsets[0])
			}
		}
	}
}

func TestKicksTablesDiffer(t *testing.T) {
	i := Kicks(KindI, 0, 1)
	t0 := Kicks(KindT, 0, 1)
	if i[1] == t0[1] {
		t.Errorf("I and T kicks should differ, both start %v", i[1])
	}
	if i[1] != core.V(-2, 0) {
		t.Errorf("I 0->1 second offset = %v, expected (-2,0)", i[1])
	}
	if t0[1] != core.V(-1, 0) {
		t.Errorf("T 0->1 second offset = %v, expected (-1,0)", t0[1])
	}
}

func TestKicksFallback(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		from, to int
	}{
		{"O piece", KindO, 0, 1},
		{"half turn", KindT, 0, 2},
		{"unknown kind", Kind(9), 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			offsets := Kicks(tc.kind, tc.from, tc.to)
			if len(offsets) != 1 || offsets[0] != core.V(0, 0) {
				t.Errorf("Kicks() = %v, expected [(0,0)]", offsets)
			}
		})
	}
}
