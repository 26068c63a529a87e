package tetris

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Snapshot captures the complete session state for rendering, determinism
// testing and replay. It shares no memory with the session.
type Snapshot struct {
	Elapsed time.Duration
	Columns int
	Rows    int
	Blocks  [][]Block // [row][col]

	ActiveKind  Kind
	ActiveColor core.Color
	Active      [4]core.Vec
	Rotation    int
	Ghost       [4]core.Vec

	Next     []Kind
	Score    Score
	Spawned  int
	SoftDrop bool
	State    State
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	state := StatePlaying
	if s.gameOver {
		state = StateGameOver
	}

	return Snapshot{
		Elapsed:     s.elapsed,
		Columns:     s.field.Columns(),
		Rows:        s.field.Rows(),
		Blocks:      s.field.Blocks(),
		ActiveKind:  s.piece.Kind(),
		ActiveColor: s.piece.Color(),
		Active:      s.piece.Cells(),
		Rotation:    s.piece.Rotation(),
		Ghost:       s.piece.Ghost(),
		Next:        s.bag.Peek(s.cfg.PreviewSize),
		Score:       s.score,
		Spawned:     s.spawned,
		SoftDrop:    s.softDrop,
		State:       state,
	}
}

// DebugState returns a string representation of the session state.
func (s *Session) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Elapsed: %v, Pieces: %d, State: %s\n", s.elapsed, s.spawned, s.Snapshot().State))
	b.WriteString(fmt.Sprintf("Score: %d, Lines: %d, Level: %d\n", s.score.Points, s.score.Lines, s.score.Level))
	b.WriteString(fmt.Sprintf("Piece: %s rot %d at %v\n", s.piece.Kind(), s.piece.Rotation(), s.piece.Cells()))
	b.WriteString(fmt.Sprintf("Next: %v, Filled: %d\n", s.bag.Peek(s.cfg.PreviewSize), s.field.Filled()))
	return b.String()
}
