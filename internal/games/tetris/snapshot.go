package tetris

import "strings"

// Snapshot contains the complete observable game state.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick     uint64
	Score    int
	Lines    int
	Level    int
	GameOver bool
	Paused   bool

	// Active piece (Kind 0 when absent)
	PieceKind int
	PieceX    int
	PieceY    int
	PieceRows []string

	// Board rows, one rune per cell, top to bottom
	Board []string

	// Upcoming kinds, head first
	Queue []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		Lines:    g.lines,
		Level:    g.level,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}

	for _, row := range g.eng.Board() {
		runes := make([]rune, len(row))
		for x, k := range row {
			runes[x] = []rune(k.String())[0]
		}
		snap.Board = append(snap.Board, string(runes))
	}

	if p, ok := g.eng.Active(); ok {
		snap.PieceKind = int(p.Kind)
		snap.PieceX = p.X
		snap.PieceY = p.Y
		snap.PieceRows = strings.Split(p.Shape.String(), "\n")
	}

	queue := g.eng.Preview(g.cfg.Board.QueueSize)
	snap.Queue = make([]int, len(queue))
	for i, k := range queue {
		snap.Queue[i] = int(k)
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lines)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PieceKind) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PieceX+64) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PieceY+64) //#nosec G115 -- hash computation
	if snap.GameOver {
		h = h*31 + 1
	}

	for _, row := range snap.Board {
		for _, r := range row {
			h = h*31 + uint64(r)
		}
	}
	for _, row := range snap.PieceRows {
		for _, r := range row {
			h = h*31 + uint64(r)
		}
	}
	for _, k := range snap.Queue {
		h = h*31 + uint64(k) //#nosec G115 -- hash computation
	}

	return h
}
