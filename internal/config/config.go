// Package config provides YAML-based game configuration loading and
// difficulty presets for the tetris engine.
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// TetrisConfig contains all configuration for a tetris session.
type TetrisConfig struct {
	Field      TetrisField      `yaml:"field"`
	Timing     TetrisTiming     `yaml:"timing"`
	Preview    int              `yaml:"preview"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TetrisField defines the playfield dimensions.
type TetrisField struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// TetrisTiming defines the interval timers, in milliseconds.
type TetrisTiming struct {
	GravityMS          int     `yaml:"gravity_ms"`
	SoftDropMultiplier float64 `yaml:"soft_drop_multiplier"`
	MoveRepeatMS       int     `yaml:"move_repeat_ms"`
	RotateRepeatMS     int     `yaml:"rotate_repeat_ms"`
}

// DifficultyConfig defines how gravity speeds up with the level.
type DifficultyConfig struct {
	Enabled      bool `yaml:"enabled"`
	LevelStepMS  int  `yaml:"level_step_ms"`  // Gravity reduction per level
	MinGravityMS int  `yaml:"min_gravity_ms"` // Fastest gravity interval
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// Rules converts the YAML configuration into engine rules.
func (c TetrisConfig) Rules() tetris.Config {
	rules := tetris.Config{
		Columns:            c.Field.Columns,
		Rows:               c.Field.Rows,
		Gravity:            ms(c.Timing.GravityMS),
		SoftDropMultiplier: c.Timing.SoftDropMultiplier,
		MoveRepeat:         ms(c.Timing.MoveRepeatMS),
		RotateRepeat:       ms(c.Timing.RotateRepeatMS),
		PreviewSize:        c.Preview,
	}
	if c.Difficulty.Enabled {
		rules.LevelStep = ms(c.Difficulty.LevelStepMS)
		rules.MinGravity = ms(c.Difficulty.MinGravityMS)
	}
	return rules
}

// Validate checks the configuration against the engine rules. The returned
// error wraps tetris.ErrInvalidConfig.
func (c TetrisConfig) Validate() error {
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Marshal encodes the configuration as YAML.
func (c TetrisConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
