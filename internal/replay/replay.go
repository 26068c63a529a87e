// Package replay runs a scripted sequence of player actions against a
// tetris session without a terminal. Scripts are YAML; the same script and
// configuration always produce the same final snapshot.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// DefaultStepMS is the simulated frame length when a script sets none.
const DefaultStepMS = 16

// Event is one player action at a point in simulated time.
type Event struct {
	At     int         `yaml:"at"` // Milliseconds from the start
	Action core.Action `yaml:"action"`
}

// Script is a seeded list of timed actions.
type Script struct {
	Seed       int64               `yaml:"seed"`
	StepMS     int                 `yaml:"step_ms"`
	DurationMS int                 `yaml:"duration_ms"` // Run at least this long
	Config     config.TetrisConfig `yaml:"config"`
	Events     []Event             `yaml:"events"`
}

// rawScript defers decoding of the config block so it can be laid over a
// base configuration.
type rawScript struct {
	Seed       int64     `yaml:"seed"`
	StepMS     int       `yaml:"step_ms"`
	DurationMS int       `yaml:"duration_ms"`
	Config     yaml.Node `yaml:"config"`
	Events     []Event   `yaml:"events"`
}

// Parse decodes a script. Keys of the script's config block override base.
func Parse(data []byte, base config.TetrisConfig) (*Script, error) {
	var raw rawScript
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}

	s := &Script{
		Seed:       raw.Seed,
		StepMS:     raw.StepMS,
		DurationMS: raw.DurationMS,
		Config:     base,
		Events:     raw.Events,
	}
	if !raw.Config.IsZero() {
		if err := raw.Config.Decode(&s.Config); err != nil {
			return nil, fmt.Errorf("failed to parse script config: %w", err)
		}
	}
	if s.StepMS == 0 {
		s.StepMS = DefaultStepMS
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads and parses the script at path.
func Load(path string, base config.TetrisConfig) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	s, err := Parse(data, base)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks timing, events and the embedded configuration.
func (s *Script) Validate() error {
	if s.StepMS <= 0 {
		return fmt.Errorf("step_ms must be positive, got %d", s.StepMS)
	}
	if s.DurationMS < 0 {
		return fmt.Errorf("duration_ms must not be negative, got %d", s.DurationMS)
	}
	for i, ev := range s.Events {
		if ev.At < 0 {
			return fmt.Errorf("event %d: at must not be negative, got %d", i, ev.At)
		}
		if ev.Action == core.ActionNone {
			return fmt.Errorf("event %d: action is required", i)
		}
	}
	return s.Config.Validate()
}

// Result is the outcome of a replay.
type Result struct {
	Snapshot tetris.Snapshot
	Applied  int  // Events fed to the session
	Frames   int  // Ticks simulated
	Quit     bool // Stopped by a quit event
}

// ErrNilScript is returned by Run when called without a script.
var ErrNilScript = errors.New("replay: nil script")

// Run plays the script against a fresh session. Events due at or before a
// frame's start are applied before that frame's tick. The run ends after
// the last event and DurationMS, on game over, or on a quit event.
func Run(s *Script, logger *log.Logger) (Result, error) {
	if s == nil {
		return Result{}, ErrNilScript
	}
	if err := s.Validate(); err != nil {
		return Result{}, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rules := s.Config.Rules()
	session, err := tetris.NewSession(rules, s.Seed)
	if err != nil {
		return Result{}, err
	}

	events := slices.Clone(s.Events)
	slices.SortStableFunc(events, func(a, b Event) int { return a.At - b.At })

	end := s.DurationMS
	if n := len(events); n > 0 {
		end = max(end, events[n-1].At)
	}
	step := time.Duration(s.StepMS) * time.Millisecond

	var res Result
	paused := false
	next := 0
	for now := 0; now <= end; now += s.StepMS {
		for next < len(events) && events[next].At <= now {
			ev := events[next]
			next++
			res.Applied++

			switch ev.Action {
			case core.ActionQuit:
				logger.Debug("quit", "at", ev.At)
				res.Quit = true
				res.Snapshot = session.Snapshot()
				return res, nil
			case core.ActionPause:
				paused = !paused
				logger.Debug("pause", "at", ev.At, "paused", paused)
				continue
			case core.ActionRestart:
				session, err = tetris.NewSession(rules, s.Seed)
				if err != nil {
					return res, err
				}
				paused = false
				logger.Debug("restart", "at", ev.At)
				continue
			}

			if paused || session.GameOver() {
				logger.Debug("ignored", "at", ev.At, "action", ev.Action)
				continue
			}
			ok := session.Apply(ev.Action)
			logger.Debug("event", "at", ev.At, "action", ev.Action, "ok", ok)
		}

		if session.GameOver() {
			logger.Info("game over", "at", now, "score", session.Score().Points)
			break
		}
		if paused {
			continue
		}
		tick := session.OnTick(step)
		res.Frames++
		if len(tick.Cleared) > 0 {
			logger.Debug("cleared", "at", now, "rows", tick.Cleared)
		}
	}

	res.Snapshot = session.Snapshot()
	return res, nil
}
