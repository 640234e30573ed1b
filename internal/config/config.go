// Package config provides YAML-based game configuration loading and
// difficulty management for the Tetris shell.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Randomizer names accepted in pieces.randomizer.
const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

// TetrisConfig contains all configuration for the Tetris game.
type TetrisConfig struct {
	Board      TetrisBoard      `yaml:"board"`
	Pieces     TetrisPieces     `yaml:"pieces"`
	Gravity    TetrisGravity    `yaml:"gravity"`
	Scoring    TetrisScoring    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TetrisBoard defines the well dimensions and how much of the queue is shown.
type TetrisBoard struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	QueueSize    int `yaml:"queue_size"`
	PreviewCount int `yaml:"preview_count"`
}

// TetrisPieces defines how upcoming pieces are chosen.
type TetrisPieces struct {
	Randomizer  string `yaml:"randomizer"`   // "uniform" or "bag"
	StrictSpawn bool   `yaml:"strict_spawn"` // End the game as soon as a spawn overlaps
}

// TetrisGravity defines how fast pieces fall. The interval between gravity
// steps is initial_ms - (level-1)*step_ms, never below min_ms.
type TetrisGravity struct {
	InitialMs int `yaml:"initial_ms"`
	StepMs    int `yaml:"step_ms"`
	MinMs     int `yaml:"min_ms"`
}

// TetrisScoring defines points and level progression.
type TetrisScoring struct {
	LinePoints    int `yaml:"line_points"`     // Per cleared line, multiplied by level
	HardDropBonus int `yaml:"hard_drop_bonus"` // Added when a hard drop clears lines
	LinesPerLevel int `yaml:"lines_per_level"`
}

// DifficultyConfig defines the level progression system.
type DifficultyConfig struct {
	Enabled    bool `yaml:"enabled"`     // false keeps the start level forever
	StartLevel int  `yaml:"start_level"` // 1-based
	MaxLevel   int  `yaml:"max_level"`   // 0 means unbounded
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// StartLevelForPreset returns the start level for a difficulty preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 4
	case DifficultyHard:
		return 8
	default:
		return 1
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, s)
	}
}

// Validate checks that the configuration describes a playable game.
func (c TetrisConfig) Validate() error {
	switch {
	case c.Board.Width < 5 || c.Board.Height < 2:
		return fmt.Errorf("%w: board %dx%d is too small", ErrInvalidConfig, c.Board.Width, c.Board.Height)
	case c.Board.QueueSize < 1:
		return fmt.Errorf("%w: queue_size must be at least 1", ErrInvalidConfig)
	case c.Board.PreviewCount < 1 || c.Board.PreviewCount > c.Board.QueueSize:
		return fmt.Errorf("%w: preview_count must be between 1 and queue_size", ErrInvalidConfig)
	case c.Pieces.Randomizer != RandomizerUniform && c.Pieces.Randomizer != RandomizerBag:
		return fmt.Errorf("%w: unknown randomizer %q", ErrInvalidConfig, c.Pieces.Randomizer)
	case c.Gravity.InitialMs <= 0 || c.Gravity.MinMs <= 0 || c.Gravity.StepMs < 0:
		return fmt.Errorf("%w: gravity timings must be positive", ErrInvalidConfig)
	case c.Gravity.MinMs > c.Gravity.InitialMs:
		return fmt.Errorf("%w: gravity min_ms exceeds initial_ms", ErrInvalidConfig)
	case c.Scoring.LinesPerLevel < 1:
		return fmt.Errorf("%w: lines_per_level must be at least 1", ErrInvalidConfig)
	case c.Difficulty.StartLevel < 1:
		return fmt.Errorf("%w: start_level must be at least 1", ErrInvalidConfig)
	}
	return nil
}
