package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{
			Width:        10,
			Height:       20,
			QueueSize:    7,
			PreviewCount: 3,
		},
		Pieces: TetrisPieces{
			Randomizer: RandomizerUniform,
		},
		Gravity: TetrisGravity{
			InitialMs: 800,
			StepMs:    50,
			MinMs:     150,
		},
		Scoring: TetrisScoring{
			LinePoints:    100,
			HardDropBonus: 10,
			LinesPerLevel: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:    true,
			StartLevel: 1,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris", "tetris_bag":
		return defaultTetrisYAML
	default:
		return nil
	}
}
