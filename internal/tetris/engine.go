package tetris

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Canonical board dimensions and queue length.
const (
	DefaultWidth     = 10
	DefaultHeight    = 20
	DefaultQueueSize = 7

	// MinWidth is the narrowest board a horizontal I fits on when spawned
	// at column width/2-1.
	MinWidth = 5
)

// ErrInvalidSize is returned by New for board dimensions the engine cannot
// play on.
var ErrInvalidSize = errors.New("tetris: invalid board size")

// Config controls engine construction. Zero fields take the defaults.
type Config struct {
	Width     int
	Height    int
	QueueSize int

	// Randomizer refills the queue. Nil means NewUniform(Seed).
	Randomizer Randomizer
	Seed       int64

	// StrictSpawn makes GameOver also report true when a freshly spawned
	// piece overlaps the stack, instead of waiting for the next lock.
	StrictSpawn bool
}

// Piece is the active, falling piece. Shape is the piece's own matrix and
// changes with rotation; the kind never does.
type Piece struct {
	Kind  Kind
	X, Y  int
	Shape Shape
}

// Clone returns a copy that shares no shape rows with p.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}

// Engine owns the board, the active piece and the upcoming-piece queue.
type Engine struct {
	board   *Board
	active  *Piece
	queue   *Queue
	strict  bool
	blocked bool // last spawn overlapped the stack
}

// New creates an engine with an empty board and spawns the first piece.
func New(cfg Config) (*Engine, error) {
	if cfg.Width == 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height == 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultQueueSize
	}
	if cfg.Width < MinWidth || cfg.Height < 2 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, cfg.Width, cfg.Height)
	}
	if cfg.Randomizer == nil {
		cfg.Randomizer = NewUniform(cfg.Seed)
	}

	e := &Engine{
		board:  NewBoard(cfg.Width, cfg.Height),
		queue:  NewQueue(cfg.Randomizer, cfg.QueueSize),
		strict: cfg.StrictSpawn,
	}
	e.Spawn()
	return e, nil
}

// Width returns the board width.
func (e *Engine) Width() int {
	return e.board.Width()
}

// Height returns the board height.
func (e *Engine) Height() int {
	return e.board.Height()
}

// Board returns a copy of the grid, indexed [row][col].
func (e *Engine) Board() [][]Kind {
	return e.board.Rows()
}

// Cell returns a single board cell.
func (e *Engine) Cell(x, y int) Kind {
	return e.board.At(x, y)
}

// SetCell overwrites a board cell. Used to set up positions and garbage.
func (e *Engine) SetCell(x, y int, k Kind) {
	e.board.Set(x, y, k)
}

// Active returns a copy of the active piece, or false if there is none.
func (e *Engine) Active() (Piece, bool) {
	if e.active == nil {
		return Piece{}, false
	}
	return e.active.Clone(), true
}

// ActiveShape returns the active piece's current shape and color.
func (e *Engine) ActiveShape() (Shape, core.Color, bool) {
	if e.active == nil {
		return nil, core.ColorDefault, false
	}
	return e.active.Shape.Clone(), e.active.Kind.Color(), true
}

// Preview returns the next n queued kinds, n clamped to [1, queue length].
func (e *Engine) Preview(n int) []Kind {
	return e.queue.Peek(n)
}

// Spawn makes the queue head the active piece, centred on row 0, and
// refills the queue. It reports whether the new piece fits where it
// appeared. The piece is placed either way: an overlap only surfaces as game
// over after the next lock unless StrictSpawn is set.
func (e *Engine) Spawn() bool {
	k := e.queue.Pop()
	e.active = &Piece{
		Kind:  k,
		X:     e.board.Width()/2 - 1,
		Y:     0,
		Shape: k.Shape(),
	}
	fits := e.board.Fits(e.active.Shape, e.active.X, e.active.Y)
	e.blocked = !fits
	return fits
}

// Place replaces the active piece with kind k in its rotation-0 shape at
// (x, y). No legality check is made. Empty and unknown kinds are ignored.
func (e *Engine) Place(k Kind, x, y int) {
	if !k.Valid() {
		return
	}
	e.active = &Piece{Kind: k, X: x, Y: y, Shape: k.Shape()}
	e.blocked = false
}

// shift moves the active piece by (dx, dy) if the target fits.
func (e *Engine) shift(dx, dy int) bool {
	if e.active == nil {
		return false
	}
	if !e.board.Fits(e.active.Shape, e.active.X+dx, e.active.Y+dy) {
		return false
	}
	e.active.X += dx
	e.active.Y += dy
	return true
}

// MoveLeft moves the active piece one column left.
func (e *Engine) MoveLeft() bool {
	return e.shift(-1, 0)
}

// MoveRight moves the active piece one column right.
func (e *Engine) MoveRight() bool {
	return e.shift(1, 0)
}

// MoveDown moves the active piece one row down. A false result is the
// caller's cue to lock.
func (e *Engine) MoveDown() bool {
	return e.shift(0, 1)
}

// HardDrop moves the active piece down until it rests on something and
// returns the number of rows it fell. It does not lock.
func (e *Engine) HardDrop() int {
	n := 0
	for e.MoveDown() {
		n++
	}
	return n
}

// GhostY returns the row the active piece would rest on after a hard drop.
func (e *Engine) GhostY() (int, bool) {
	if e.active == nil {
		return 0, false
	}
	y := e.active.Y
	for e.board.Fits(e.active.Shape, e.active.X, y+1) {
		y++
	}
	return y, true
}

// kickOffsets are tried in order after a rotation: in place, then one column
// left, then one column right.
var kickOffsets = [...]int{0, -1, 1}

// Rotate turns the active piece clockwise, kicking off a wall if needed.
// On failure neither the shape nor the position changes.
func (e *Engine) Rotate() bool {
	if e.active == nil {
		return false
	}
	rotated := e.active.Shape.Rotate()
	for _, dx := range kickOffsets {
		if e.board.Fits(rotated, e.active.X+dx, e.active.Y) {
			e.active.X += dx
			e.active.Shape = rotated
			return true
		}
	}
	return false
}

// Lock writes the active piece into the board and clears it. Cells above the
// top edge are discarded.
func (e *Engine) Lock() bool {
	if e.active == nil {
		return false
	}
	e.board.stamp(e.active.Shape, e.active.X, e.active.Y, e.active.Kind)
	e.active = nil
	e.blocked = false
	return true
}

// FullRows returns the indices of the rows the next ClearLines will remove,
// bottom to top.
func (e *Engine) FullRows() []int {
	return e.board.FullRows()
}

// ClearLines removes all full rows and returns how many were removed.
func (e *Engine) ClearLines() int {
	return e.board.ClearLines()
}

// GameOver reports whether the top row holds a locked cell. With
// StrictSpawn it is also true while a spawned piece overlaps the stack.
func (e *Engine) GameOver() bool {
	if e.strict && e.blocked {
		return true
	}
	return e.board.TopOccupied()
}

// Clone returns an independent deep copy: its own grid, piece, shape and
// queue. The copies share no mutable state.
func (e *Engine) Clone() *Engine {
	c := &Engine{
		board:   e.board.Clone(),
		queue:   e.queue.Clone(),
		strict:  e.strict,
		blocked: e.blocked,
	}
	if e.active != nil {
		p := e.active.Clone()
		c.active = &p
	}
	return c
}

// String renders the board with the active piece stamped in.
func (e *Engine) String() string {
	c := e.board.Clone()
	if e.active != nil {
		c.stamp(e.active.Shape, e.active.X, e.active.Y, e.active.Kind)
	}
	return c.String()
}
