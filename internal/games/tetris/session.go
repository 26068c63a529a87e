package tetris

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// ErrInvalidConfig is wrapped by every configuration error.
var ErrInvalidConfig = errors.New("tetris: invalid config")

// minColumns is the narrowest field the I piece can spawn into.
const minColumns = 4

// Config holds the constants a Session runs with. It is fixed at NewSession.
type Config struct {
	Columns int // Grid width
	Rows    int // Grid height

	Gravity    time.Duration // Gravity interval at level 1
	LevelStep  time.Duration // Gravity reduction per level above 1 (0 disables)
	MinGravity time.Duration // Floor for the level-reduced gravity interval

	SoftDropMultiplier float64 // Gravity interval scale while soft drop is held

	MoveRepeat   time.Duration // Minimum time between accepted horizontal moves
	RotateRepeat time.Duration // Minimum time between accepted rotations

	PreviewSize int // Length of the next-piece queue
}

// DefaultConfig returns the classic 10x20 setup.
func DefaultConfig() Config {
	return Config{
		Columns:            10,
		Rows:               20,
		Gravity:            300 * time.Millisecond,
		LevelStep:          20 * time.Millisecond,
		MinGravity:         80 * time.Millisecond,
		SoftDropMultiplier: 0.3,
		MoveRepeat:         75 * time.Millisecond,
		RotateRepeat:       150 * time.Millisecond,
		PreviewSize:        3,
	}
}

// Validate checks the configuration and returns an error wrapping
// ErrInvalidConfig for the first problem found.
func (c Config) Validate() error {
	switch {
	case c.Columns < minColumns:
		return fmt.Errorf("%w: columns must be at least %d, got %d", ErrInvalidConfig, minColumns, c.Columns)
	case c.Rows <= 0:
		return fmt.Errorf("%w: rows must be positive, got %d", ErrInvalidConfig, c.Rows)
	case c.Gravity <= 0:
		return fmt.Errorf("%w: gravity interval must be positive, got %v", ErrInvalidConfig, c.Gravity)
	case c.LevelStep < 0:
		return fmt.Errorf("%w: level step must not be negative, got %v", ErrInvalidConfig, c.LevelStep)
	case c.LevelStep > 0 && c.MinGravity <= 0:
		return fmt.Errorf("%w: min gravity must be positive when level step is set, got %v", ErrInvalidConfig, c.MinGravity)
	case c.SoftDropMultiplier <= 0:
		return fmt.Errorf("%w: soft drop multiplier must be positive, got %v", ErrInvalidConfig, c.SoftDropMultiplier)
	case c.MoveRepeat < 0:
		return fmt.Errorf("%w: move repeat must not be negative, got %v", ErrInvalidConfig, c.MoveRepeat)
	case c.RotateRepeat < 0:
		return fmt.Errorf("%w: rotate repeat must not be negative, got %v", ErrInvalidConfig, c.RotateRepeat)
	case c.PreviewSize < 0:
		return fmt.Errorf("%w: preview size must not be negative, got %d", ErrInvalidConfig, c.PreviewSize)
	}
	return nil
}

// State is the lifecycle state of a session.
type State string

const (
	StatePlaying  State = "playing"
	StateGameOver State = "game_over"
)

// TickResult reports what a call that may lock a piece did.
type TickResult struct {
	Fell      bool  // Gravity moved the piece down one row
	Landed    bool  // The piece locked into the playfield
	Cleared   []int // Rows removed by the lock, top to bottom
	Dropped   int   // Rows travelled by a hard drop
	ToppedOut bool  // The lock or the following spawn ended the game
}

// Session runs one game: it owns the playfield, the bag, the falling piece
// and the score, and advances them from commands and elapsed time.
// A Session is not safe for concurrent use.
type Session struct {
	cfg   Config
	field *Playfield
	bag   *Bag
	piece *Piece
	score Score

	gameOver bool
	softDrop bool
	elapsed  time.Duration
	spawned  int // Pieces spawned so far, including the current one

	gravity      interval
	moveRepeat   interval
	rotateRepeat interval

	scoreListeners    []func(Score)
	gameOverListeners []func(Score)
}

// NewSession validates cfg and starts a game whose piece order is fixed by seed.
func NewSession(cfg Config, seed int64) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	field, err := NewPlayfield(cfg.Columns, cfg.Rows)
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:          cfg,
		field:        field,
		bag:          NewBag(rand.New(rand.NewSource(seed)), cfg.PreviewSize),
		score:        NewScore(),
		gravity:      interval{repeat: true},
		moveRepeat:   interval{duration: cfg.MoveRepeat},
		rotateRepeat: interval{duration: cfg.RotateRepeat},
	}
	s.gravity.duration = s.gravityInterval()
	s.gravity.activate()
	s.spawnNext()
	return s, nil
}

// spawnAnchor is where the first cell of a fresh piece is placed: the middle
// column, one row above the visible top.
func (s *Session) spawnAnchor() core.Vec {
	return core.V(s.cfg.Columns/2, -1)
}

// spawnNext replaces the current piece with the next kind from the bag.
// A spawn that overlaps locked blocks ends the game.
func (s *Session) spawnNext() bool {
	s.piece = spawnPiece(s.bag.Next(), s.field, s.spawnAnchor())
	s.spawned++
	if !s.piece.fits(s.piece.cells) {
		s.endGame()
		return false
	}
	return true
}

// gravityInterval returns the current gravity duration for the level and
// soft drop state.
func (s *Session) gravityInterval() time.Duration {
	d := s.cfg.Gravity
	if s.cfg.LevelStep > 0 {
		d -= time.Duration(s.score.Level-1) * s.cfg.LevelStep
		d = max(d, s.cfg.MinGravity)
	}
	if s.softDrop {
		d = time.Duration(float64(d) * s.cfg.SoftDropMultiplier)
	}
	return max(d, time.Millisecond)
}

// OnTick advances all intervals by elapsed. When the gravity interval fires
// the piece falls one row, or locks if it cannot; a lock clears rows, scores
// and spawns the next piece. At most one lock happens per call.
func (s *Session) OnTick(elapsed time.Duration) TickResult {
	if s.gameOver || elapsed <= 0 {
		return TickResult{}
	}
	s.elapsed += elapsed
	s.moveRepeat.advance(elapsed)
	s.rotateRepeat.advance(elapsed)

	if !s.gravity.advance(elapsed) {
		return TickResult{}
	}
	if !s.piece.SoftDropStep() {
		return TickResult{Fell: true}
	}
	return s.lock()
}

// lock commits the current piece, clears rows and spawns the next piece.
func (s *Session) lock() TickResult {
	res := TickResult{Landed: true}
	cells := s.piece.Cells()
	if s.field.Lock(cells[:], blockOf(s.piece.kind)) {
		res.ToppedOut = true
		s.endGame()
		return res
	}

	res.Cleared = s.field.ClearFullRows()
	if n := len(res.Cleared); n > 0 {
		s.score = s.score.AddClear(n)
		s.gravity.duration = s.gravityInterval()
		s.notifyScore()
	}

	if !s.spawnNext() {
		res.ToppedOut = true
	}
	return res
}

// endGame freezes the session and notifies listeners once.
func (s *Session) endGame() {
	if s.gameOver {
		return
	}
	s.gameOver = true
	s.gravity.deactivate()
	for _, fn := range s.gameOverListeners {
		fn(s.score)
	}
}

func (s *Session) notifyScore() {
	for _, fn := range s.scoreListeners {
		fn(s.score)
	}
}

// Move shifts the piece one column in dir (-1 left, +1 right). Requests
// arriving before the move-repeat interval has elapsed are ignored. Returns
// whether the piece moved.
func (s *Session) Move(dir int) bool {
	if s.gameOver || s.moveRepeat.active {
		return false
	}
	moved := s.piece.MoveHorizontal(dir)
	s.moveRepeat.activate()
	return moved
}

// Rotate turns the piece with wall kicks. Requests arriving before the
// rotate-repeat interval has elapsed are ignored. Returns whether it turned.
func (s *Session) Rotate(dir Spin) bool {
	if s.gameOver || s.rotateRepeat.active {
		return false
	}
	turned := s.piece.Rotate(dir)
	s.rotateRepeat.activate()
	return turned
}

// SetSoftDrop switches the gravity interval between its normal and fast
// duration. Time already accumulated toward the next fall is kept.
func (s *Session) SetSoftDrop(active bool) {
	if s.softDrop == active {
		return
	}
	s.softDrop = active
	s.gravity.duration = s.gravityInterval()
}

// HardDrop drops the piece to its resting row and locks it immediately.
// The gravity countdown restarts for the next piece.
func (s *Session) HardDrop() TickResult {
	if s.gameOver {
		return TickResult{}
	}
	dropped := s.piece.HardDrop()
	res := s.lock()
	res.Dropped = dropped
	if !s.gameOver {
		s.gravity.activate()
	}
	return res
}

// OnScore registers fn to be called with the new tally after every clear.
func (s *Session) OnScore(fn func(Score)) {
	s.scoreListeners = append(s.scoreListeners, fn)
}

// OnGameOver registers fn to be called once when the session tops out.
func (s *Session) OnGameOver(fn func(Score)) {
	s.gameOverListeners = append(s.gameOverListeners, fn)
}

// Score returns the current tally.
func (s *Session) Score() Score {
	return s.score
}

// GameOver reports whether the session has topped out.
func (s *Session) GameOver() bool {
	return s.gameOver
}

// Next returns the next n kinds the bag will deal.
func (s *Session) Next(n int) []Kind {
	return s.bag.Peek(n)
}

// Config returns the configuration the session was built with.
func (s *Session) Config() Config {
	return s.cfg
}

// Elapsed returns the total time reported through OnTick.
func (s *Session) Elapsed() time.Duration {
	return s.elapsed
}

// Apply feeds a decoded gameplay action to the session and reports whether
// it had an effect. Pause, restart and quit belong to the front end and are
// ignored here.
func (s *Session) Apply(a core.Action) bool {
	switch a {
	case core.ActionMoveLeft:
		return s.Move(-1)
	case core.ActionMoveRight:
		return s.Move(1)
	case core.ActionRotateCW:
		return s.Rotate(Clockwise)
	case core.ActionRotateCCW:
		return s.Rotate(CounterClockwise)
	case core.ActionSoftDrop:
		s.SetSoftDrop(true)
		return !s.gameOver
	case core.ActionSoftDropOff:
		s.SetSoftDrop(false)
		return !s.gameOver
	case core.ActionHardDrop:
		return s.HardDrop().Landed
	}
	return false
}
