package tetris

import "testing"

func TestScoreAddClear(t *testing.T) {
	tests := []struct {
		name  string
		start Score
		rows  int
		want  Score
	}{
		{"single at level 1", NewScore(), 1, Score{Lines: 1, Points: 40, Level: 1}},
		{"double at level 1", NewScore(), 2, Score{Lines: 2, Points: 100, Level: 1}},
		{"triple at level 2", Score{Lines: 10, Points: 500, Level: 2}, 3, Score{Lines: 13, Points: 1100, Level: 2}},
		{"tetris at level 3", Score{Lines: 20, Level: 3}, 4, Score{Lines: 24, Points: 3600, Level: 3}},
		{"level up uses old level", Score{Lines: 9, Points: 0, Level: 1}, 1, Score{Lines: 10, Points: 40, Level: 2}},
		{"no rows", Score{Lines: 3, Points: 120, Level: 1}, 0, Score{Lines: 3, Points: 120, Level: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.start.AddClear(tc.rows); got != tc.want {
				t.Errorf("AddClear(%d) = %+v, expected %+v", tc.rows, got, tc.want)
			}
		})
	}
}

func TestScoreLevelNeverDecreases(t *testing.T) {
	s := Score{Lines: 0, Level: 5}
	if got := s.AddClear(1); got.Level != 5 {
		t.Errorf("level dropped to %d", got.Level)
	}
}

func TestClearPoints(t *testing.T) {
	tests := []struct {
		rows int
		want int
	}{
		{-1, 0},
		{0, 0},
		{1, 40},
		{2, 100},
		{3, 300},
		{4, 1200},
		{5, 0},
	}

	for _, tc := range tests {
		if got := ClearPoints(tc.rows); got != tc.want {
			t.Errorf("ClearPoints(%d) = %d, expected %d", tc.rows, got, tc.want)
		}
	}
}
