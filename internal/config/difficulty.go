package config

import "time"

// DifficultyManager derives the level and gravity speed from lines cleared.
type DifficultyManager struct {
	cfg           DifficultyConfig
	gravity       TetrisGravity
	linesPerLevel int
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg TetrisConfig) *DifficultyManager {
	d := &DifficultyManager{
		cfg:           cfg.Difficulty,
		gravity:       cfg.Gravity,
		linesPerLevel: cfg.Scoring.LinesPerLevel,
	}
	if d.linesPerLevel <= 0 {
		d.linesPerLevel = 10 // Prevent division by zero
	}
	if d.cfg.StartLevel < 1 {
		d.cfg.StartLevel = 1
	}
	return d
}

// IsEnabled returns whether level progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the current level for the number of lines cleared so far.
func (d *DifficultyManager) Level(lines int) int {
	if !d.cfg.Enabled {
		return d.cfg.StartLevel
	}
	level := d.cfg.StartLevel + lines/d.linesPerLevel
	if d.cfg.MaxLevel > 0 && level > d.cfg.MaxLevel {
		level = d.cfg.MaxLevel
	}
	return level
}

// GravityInterval returns the time between gravity steps at a level.
func (d *DifficultyManager) GravityInterval(level int) time.Duration {
	ms := d.gravity.InitialMs - (level-1)*d.gravity.StepMs
	ms = max(ms, d.gravity.MinMs)
	return time.Duration(ms) * time.Millisecond
}

// GravityTicks converts the gravity interval at a level to simulation
// ticks for the given tick rate. Always at least one tick.
func (d *DifficultyManager) GravityTicks(level, tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	ticks := int(d.GravityInterval(level) * time.Duration(tickRate) / time.Second)
	return max(ticks, 1)
}
