package tetris

// clearPoints holds the base points for clearing 1 to 4 rows with one lock.
var clearPoints = [...]int{0, 40, 100, 300, 1200}

// ClearPoints returns the base points for clearing n rows with one lock.
// The award is multiplied by the level at the time of the clear.
func ClearPoints(n int) int {
	if n < 0 || n >= len(clearPoints) {
		return 0
	}
	return clearPoints[n]
}

// LinesPerLevel is the number of cleared lines between level increases.
const LinesPerLevel = 10

// Score is the running line, point and level tally of a session.
type Score struct {
	Lines  int
	Points int
	Level  int
}

// NewScore returns the tally of a fresh session.
func NewScore() Score {
	return Score{Level: 1}
}

// AddClear returns the tally after n rows were cleared at once.
// The level is recomputed from the line total and never goes down.
func (s Score) AddClear(n int) Score {
	if n <= 0 {
		return s
	}
	s.Points += ClearPoints(n) * s.Level
	s.Lines += n
	s.Level = max(s.Level, 1+s.Lines/LinesPerLevel)
	return s
}
