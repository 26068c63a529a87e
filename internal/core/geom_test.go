package core

import "testing"

func TestVecRotateCW(t *testing.T) {
	pivot := V(5, 5)

	tests := []struct {
		name     string
		in       Vec
		expected Vec
	}{
		{"pivot stays put", V(5, 5), V(5, 5)},
		{"right turns down", V(6, 5), V(5, 6)},
		{"down turns left", V(5, 6), V(4, 5)},
		{"left turns up", V(4, 5), V(5, 4)},
		{"up turns right", V(5, 4), V(6, 5)},
		{"diagonal", V(7, 4), V(6, 7)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.in.RotateCW(pivot)
			if result != tc.expected {
				t.Errorf("%v.RotateCW(%v) = %v, expected %v", tc.in, pivot, result, tc.expected)
			}
		})
	}
}

func TestVecRotateInverse(t *testing.T) {
	pivots := []Vec{V(0, 0), V(3, -2), V(-4, 7)}
	points := []Vec{V(0, 0), V(1, 0), V(-2, 3), V(5, -1), V(-7, -7)}

	for _, p := range pivots {
		for _, v := range points {
			if got := v.RotateCW(p).RotateCCW(p); got != v {
				t.Errorf("CCW(CW(%v)) around %v = %v", v, p, got)
			}
			if got := v.RotateCCW(p).RotateCW(p); got != v {
				t.Errorf("CW(CCW(%v)) around %v = %v", v, p, got)
			}
		}
	}
}

func TestVecFullTurn(t *testing.T) {
	pivot := V(2, 3)
	start := V(4, 1)

	v := start
	for range 4 {
		v = v.RotateCW(pivot)
	}
	if v != start {
		t.Errorf("four clockwise turns gave %v, expected %v", v, start)
	}
}

func TestVecArithmetic(t *testing.T) {
	a := V(3, -1)
	b := V(-2, 4)

	if got := a.Add(b); got != V(1, 3) {
		t.Errorf("Add() = %v, expected (1,3)", got)
	}
	if got := a.Sub(b); got != V(5, -5) {
		t.Errorf("Sub() = %v, expected (5,-5)", got)
	}
	if got := a.Shift(1, 1); got != V(4, 0) {
		t.Errorf("Shift() = %v, expected (4,0)", got)
	}
	if a.String() != "(3,-1)" {
		t.Errorf("String() = %q", a.String())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}
