package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Field: TetrisField{
			Columns: 10,
			Rows:    20,
		},
		Timing: TetrisTiming{
			GravityMS:          300,
			SoftDropMultiplier: 0.3,
			MoveRepeatMS:       75,
			RotateRepeatMS:     150,
		},
		Preview: 3,
		Difficulty: DifficultyConfig{
			Enabled:      true,
			LevelStepMS:  20,
			MinGravityMS: 80,
		},
	}
}
