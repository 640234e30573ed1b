// Package tetris adapts the falling-block engine to the terminal shell: it
// owns the gravity timer, scoring and levels, and draws everything into a
// core.Screen.
package tetris

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	engine "github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Mode selects how upcoming pieces are drawn.
type Mode int

const (
	ModeClassic Mode = iota // Randomizer from config, uniform by default
	ModeBag                 // Always the 7-bag randomizer
)

// flashTicks is how long cleared rows stay highlighted (~0.2s at 60 FPS).
const flashTicks = 12

// maxPreviewChoice is the largest preview the N key cycles to.
const maxPreviewChoice = 3

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger reports config problems found at Reset.
var logger = log.Default()

// SetLogger replaces the logger used for config warnings.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
	registry.Register("tetris_bag", func() registry.Game {
		return NewBag()
	})
}

// Game implements registry.Game on top of the engine.
type Game struct {
	mode       Mode
	runtime    core.RuntimeConfig
	cfg        config.TetrisConfig
	difficulty *config.DifficultyManager
	eng        *engine.Engine
	preset     config.DifficultyPreset // Overrides difficultyPreset when set

	tick          uint64
	gravityTicker int
	score         int
	lines         int
	level         int
	best          int
	newBest       bool
	lastDrop      int // Rows covered by the last hard drop
	preview       int // Upcoming pieces shown
	previewChoice int // Set by the player, survives restarts

	flashRows []int
	flashLeft int

	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a classic Tetris game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewBag creates a Tetris game that always uses the 7-bag randomizer.
func NewBag() *Game {
	return &Game{mode: ModeBag}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeBag {
		return "tetris_bag"
	}
	return "tetris"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeBag {
		return "Tetris (7-Bag)"
	}
	return "Tetris"
}

// SetBestScore tells the game the best score recorded so far for its mode.
// The platform calls it after Reset with the value from the score store.
func (g *Game) SetBestScore(best int) {
	g.best = best
}

// BestScore returns the best score known to the game, including the current
// run once it has ended with a new best.
func (g *Game) BestScore() int {
	return g.best
}

// NewBest reports whether the finished run beat the previous best.
func (g *Game) NewBest() bool {
	return g.newBest
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		logger.Warn("config unusable, playing with defaults", "path", configPath, "error", err)
		cfg = config.DefaultTetrisConfig()
	}

	// Apply difficulty preset if set
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	config.ApplyTetrisPreset(&cfg, preset)

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg)

	g.eng = g.newEngine()

	g.tick = 0
	g.gravityTicker = 0
	g.score = 0
	g.lines = 0
	g.level = g.difficulty.Level(0)
	g.newBest = false
	g.lastDrop = 0
	g.flashRows = nil
	g.flashLeft = 0
	g.gameOver = false
	g.paused = false

	g.preview = cfg.Board.PreviewCount
	if g.previewChoice > 0 {
		g.preview = min(g.previewChoice, cfg.Board.QueueSize)
	}

	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// SetDifficulty sets a difficulty preset for this instance only, taking
// effect on the next Reset. Unknown names are ignored.
func (g *Game) SetDifficulty(preset string) {
	if p, err := config.ParsePreset(preset); err == nil {
		g.preset = p
	}
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	w, h := g.requiredSize()
	g.tooSmall = width < w || height < h
}

// newEngine builds an engine from the loaded config. Config was validated on
// load, so the only failure is a hand-built config; fall back to defaults.
func (g *Game) newEngine() *engine.Engine {
	var rnd engine.Randomizer
	if g.mode == ModeBag || g.cfg.Pieces.Randomizer == config.RandomizerBag {
		rnd = engine.NewBag(g.runtime.Seed)
	} else {
		rnd = engine.NewUniform(g.runtime.Seed)
	}

	eng, err := engine.New(engine.Config{
		Width:       g.cfg.Board.Width,
		Height:      g.cfg.Board.Height,
		QueueSize:   g.cfg.Board.QueueSize,
		Randomizer:  rnd,
		Seed:        g.runtime.Seed,
		StrictSpawn: g.cfg.Pieces.StrictSpawn,
	})
	if err != nil {
		g.cfg.Board = config.DefaultTetrisConfig().Board
		eng, _ = engine.New(engine.Config{Randomizer: rnd, Seed: g.runtime.Seed})
	}
	return eng
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.runtime.Seed++
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if in.Has(core.ActionPreview) {
		g.cyclePreview()
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	if g.flashLeft > 0 {
		g.flashLeft--
	}

	cleared := g.handleInput(in)

	// Gravity
	if !g.gameOver {
		g.gravityTicker++
		if g.gravityTicker >= g.GravityTicks() {
			g.gravityTicker = 0
			if !g.eng.MoveDown() {
				cleared += g.settle(false)
			}
		}
	}

	return core.StepResult{State: g.State(), LinesCleared: cleared}
}

// cyclePreview steps the preview through 1..maxPreviewChoice, never past
// the queue length.
func (g *Game) cyclePreview() {
	next := g.preview + 1
	if next > maxPreviewChoice || next > g.cfg.Board.QueueSize {
		next = 1
	}
	g.preview = next
	g.previewChoice = next
}

// Preview returns how many upcoming pieces are shown.
func (g *Game) Preview() int {
	return g.preview
}

// handleInput applies this frame's movement actions and returns the lines
// cleared by a hard drop.
func (g *Game) handleInput(in core.InputFrame) int {
	for range in.Count(core.ActionLeft) {
		g.eng.MoveLeft()
	}
	for range in.Count(core.ActionRight) {
		g.eng.MoveRight()
	}
	for range in.Count(core.ActionRotate) {
		g.eng.Rotate()
	}
	for range in.Count(core.ActionDown) {
		if g.eng.MoveDown() {
			g.gravityTicker = 0
		}
	}
	if in.Has(core.ActionHardDrop) {
		g.lastDrop = g.eng.HardDrop()
		g.gravityTicker = 0
		return g.settle(true)
	}
	return 0
}

// settle locks the active piece, clears lines, scores them and either ends
// the game or spawns the next piece.
func (g *Game) settle(hardDrop bool) int {
	if !g.eng.Lock() {
		return 0
	}

	rows := g.eng.FullRows()
	cleared := g.eng.ClearLines()
	if cleared > 0 {
		g.lines += cleared
		g.level = g.difficulty.Level(g.lines)
		g.score += cleared * g.cfg.Scoring.LinePoints * g.level
		if hardDrop {
			g.score += g.cfg.Scoring.HardDropBonus
		}
		g.flashRows = rows
		g.flashLeft = flashTicks
	}

	if g.eng.GameOver() {
		g.endGame()
		return cleared
	}

	g.eng.Spawn()
	if g.eng.GameOver() {
		// Only reachable with strict spawn
		g.endGame()
	}
	return cleared
}

func (g *Game) endGame() {
	g.gameOver = true
	if g.score > g.best {
		g.newBest = true
		g.best = g.score
	}
}

// GravityTicks returns the number of ticks between gravity steps at the
// current level.
func (g *Game) GravityTicks() int {
	return g.difficulty.GravityTicks(g.level, g.runtime.TickRate)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Engine exposes the underlying engine for inspection.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

// Lines returns the number of lines cleared this game.
func (g *Game) Lines() int {
	return g.lines
}

// Level returns the current level.
func (g *Game) Level() int {
	return g.level
}
