package tetris

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine(t *testing.T) {
	e, err := New(Config{Seed: 42})
	require.NoError(t, err)

	assert.Equal(t, DefaultWidth, e.Width())
	assert.Equal(t, DefaultHeight, e.Height())

	board := e.Board()
	require.Len(t, board, 20)
	for y, row := range board {
		require.Len(t, row, 10)
		for x, cell := range row {
			assert.Equal(t, Empty, cell, "cell (%d,%d)", x, y)
		}
	}

	p, ok := e.Active()
	require.True(t, ok, "fresh engine has no active piece")
	assert.Equal(t, 4, p.X)
	assert.Equal(t, 0, p.Y)
	assert.True(t, p.Kind.Valid())
	assert.True(t, p.Shape.Equal(p.Kind.Shape()))

	assert.Len(t, e.Preview(DefaultQueueSize), DefaultQueueSize)
	assert.False(t, e.GameOver())
}

func TestNewInvalidSize(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"too narrow", Config{Width: 3}},
		{"no room for a centred I", Config{Width: 4}},
		{"negative width", Config{Width: -10}},
		{"too short", Config{Height: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.cfg)
			assert.True(t, errors.Is(err, ErrInvalidSize), "got %v", err)
		})
	}
}

func TestNarrowestBoardFitsEveryKind(t *testing.T) {
	for _, k := range Kinds() {
		e, err := New(Config{Width: MinWidth, Height: 6, Randomizer: newSequence(k)})
		require.NoError(t, err)

		p, ok := e.Active()
		require.True(t, ok)
		assert.True(t, e.board.Fits(p.Shape, p.X, p.Y), "%s does not fit at spawn", k)
		assert.True(t, e.MoveDown(), "%s cannot fall", k)
	}
}

func TestSpawnConsumesQueueHead(t *testing.T) {
	e, err := New(Config{Randomizer: newSequence(I, O, T, S, Z, J, L)})
	require.NoError(t, err)

	// The first piece came from the head: I. The queue is now O..L plus a
	// refilled I.
	p, _ := e.Active()
	assert.Equal(t, I, p.Kind)
	assert.Equal(t, []Kind{O, T, S, Z, J, L, I}, e.Preview(7))

	e.Lock()
	e.Spawn()

	p, _ = e.Active()
	assert.Equal(t, O, p.Kind)
	assert.Equal(t, 4, p.X)
	assert.Equal(t, 0, p.Y)
	assert.Equal(t, []Kind{T, S, Z, J, L, I, O}, e.Preview(7))
}

func TestPreviewClamps(t *testing.T) {
	e := newTestEngine(T)

	assert.Len(t, e.Preview(0), 1)
	assert.Len(t, e.Preview(-3), 1)
	assert.Len(t, e.Preview(100), DefaultQueueSize)

	// The preview is a copy.
	pv := e.Preview(3)
	pv[0] = Empty
	assert.Equal(t, T, e.Preview(1)[0])
}

func TestMoveLeftStopsAtWall(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			e := newTestEngine(k)
			e.Place(k, 4, 5)

			for e.MoveLeft() {
			}

			p, _ := e.Active()
			assert.Equal(t, 0, p.X)
			assert.False(t, e.MoveLeft())
		})
	}
}

func TestMoveRightStopsAtWall(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			e := newTestEngine(k)
			e.Place(k, 4, 5)

			moves := 0
			for e.MoveRight() {
				moves++
				require.Less(t, moves, 20, "piece never hit the wall")
			}

			p, _ := e.Active()
			assert.Equal(t, e.Width()-p.Shape.Width(), p.X)
		})
	}
}

func TestMoveBlockedByStack(t *testing.T) {
	e := newTestEngine(O)
	e.Place(O, 4, 10)
	e.SetCell(3, 10, Z)
	e.SetCell(6, 11, Z)

	assert.False(t, e.MoveLeft())
	assert.False(t, e.MoveRight())

	p, _ := e.Active()
	assert.Equal(t, 4, p.X)
}

func TestMoveDownReachesFloor(t *testing.T) {
	e := newTestEngine(I)
	e.Place(I, 4, 0)

	for i := range 19 {
		require.True(t, e.MoveDown(), "move %d", i+1)
	}
	assert.False(t, e.MoveDown(), "20th move went through the floor")

	p, _ := e.Active()
	assert.Equal(t, 19, p.Y)
}

func TestMoveDownBlockedByFilledRow(t *testing.T) {
	e := newTestEngine(T)
	fillRow(e, e.Height()-2, Z)
	e.Place(T, 4, e.Height()-4)

	assert.False(t, e.MoveDown())
}

func TestHardDropDistance(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			e := newTestEngine(k)
			e.Place(k, 4, 0)
			h := k.Shape().Height()

			ghost, ok := e.GhostY()
			require.True(t, ok)

			d := e.HardDrop()
			assert.Equal(t, e.Height()-1-0-(h-1), d)

			p, _ := e.Active()
			assert.Equal(t, ghost, p.Y)
		})
	}
}

func TestHardDropDoesNotLock(t *testing.T) {
	e := newTestEngine(O)
	e.HardDrop()

	_, ok := e.Active()
	assert.True(t, ok)
	assert.Equal(t, Empty, e.Cell(4, e.Height()-1))
}

func TestGhostYIsPure(t *testing.T) {
	e := newTestEngine(L)
	fillRow(e, 15, S, 0)
	before, _ := e.Active()

	ghost, ok := e.GhostY()
	require.True(t, ok)
	assert.Equal(t, 13, ghost) // L is two rows tall and rests on row 15

	after, _ := e.Active()
	assert.Equal(t, before.Y, after.Y)
	assert.Equal(t, before.X, after.X)
}

func TestRotateEveryKind(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			e := newTestEngine(k)
			e.Place(k, 4, 10)
			original := k.Shape()

			require.True(t, e.Rotate())
			once, _, _ := e.ActiveShape()
			require.True(t, e.Rotate())
			twice, _, _ := e.ActiveShape()

			if k == O {
				assert.True(t, once.Equal(original))
				assert.True(t, twice.Equal(original))
				return
			}
			assert.False(t, once.Equal(original), "one turn left %s unchanged", k)

			// The minimal I, S and Z matrices are symmetric under a half
			// turn; T, J and L are not.
			switch k {
			case I, S, Z:
				assert.True(t, twice.Equal(original))
			default:
				assert.False(t, twice.Equal(original))
			}
		})
	}
}

func TestRotateIsPerPiece(t *testing.T) {
	e := newTestEngine(T)
	e.Place(T, 4, 10)
	require.True(t, e.Rotate())

	assert.True(t, T.Shape().Equal(Shape{{false, true, false}, {true, true, true}}),
		"rotation leaked into the kind table")

	// A clone keeps its own matrix.
	c := e.Clone()
	require.True(t, e.Rotate())
	a, _, _ := e.ActiveShape()
	b, _, _ := c.ActiveShape()
	assert.False(t, a.Equal(b))
}

func TestRotateKicksLeft(t *testing.T) {
	e := newTestEngine(J)
	e.Place(J, 5, 5)
	require.True(t, e.Rotate()) // upright, two columns wide
	for e.MoveRight() {
	}
	p, _ := e.Active()
	require.Equal(t, 8, p.X)

	require.True(t, e.Rotate())

	p, _ = e.Active()
	assert.Equal(t, 7, p.X)
	assert.Equal(t, 3, p.Shape.Width())
}

func TestRotateKicksRight(t *testing.T) {
	e := newTestEngine(J)
	e.Place(J, 1, 5)
	require.True(t, e.Rotate())

	// Next turn is [[1,1,1],[0,0,1]]: block it in place and one column left.
	e.SetCell(3, 6, Z)
	e.SetCell(0, 5, Z)

	require.True(t, e.Rotate())

	p, _ := e.Active()
	assert.Equal(t, 2, p.X)
	assert.Equal(t, "###\n..#", p.Shape.String())
}

func TestRotateFailureLeavesStateUnchanged(t *testing.T) {
	e := newTestEngine(I)
	e.Place(I, 4, 5)
	require.True(t, e.Rotate()) // vertical
	for e.MoveRight() {
	}
	before, _ := e.Active()
	require.Equal(t, 9, before.X)

	// Horizontal needs four columns; 9, 8 and 10 all stick out.
	assert.False(t, e.Rotate())

	after, _ := e.Active()
	assert.Equal(t, before.X, after.X)
	assert.Equal(t, before.Y, after.Y)
	assert.True(t, before.Shape.Equal(after.Shape))
}

func TestLockWritesKind(t *testing.T) {
	e := newTestEngine(O)
	e.HardDrop()
	require.True(t, e.Lock())

	_, ok := e.Active()
	assert.False(t, ok)

	for _, c := range [][2]int{{4, 18}, {5, 18}, {4, 19}, {5, 19}} {
		assert.Equal(t, O, e.Cell(c[0], c[1]), "cell %v", c)
	}
	assert.False(t, e.GameOver())
}

func TestLockDropsCellsAboveBoard(t *testing.T) {
	e := newTestEngine(T)
	e.Place(T, 0, -1)
	require.True(t, e.Lock())

	// Row -1 (the T's nub) is discarded; row 0 is written.
	assert.Equal(t, T, e.Cell(0, 0))
	assert.Equal(t, T, e.Cell(1, 0))
	assert.Equal(t, T, e.Cell(2, 0))
	assert.Equal(t, Empty, e.Cell(1, 1))
	assert.True(t, e.GameOver())
}

func TestNoActivePieceIsNoop(t *testing.T) {
	e := newTestEngine(S)
	require.True(t, e.Lock())
	snapshot := e.Board()

	assert.False(t, e.MoveLeft())
	assert.False(t, e.MoveRight())
	assert.False(t, e.MoveDown())
	assert.False(t, e.Rotate())
	assert.Equal(t, 0, e.HardDrop())
	assert.False(t, e.Lock())

	_, ok := e.GhostY()
	assert.False(t, ok)
	_, _, ok = e.ActiveShape()
	assert.False(t, ok)

	assert.Equal(t, snapshot, e.Board())
}

func TestPlaceIgnoresEmptyKind(t *testing.T) {
	e := newTestEngine(S)
	require.True(t, e.Lock())

	e.Place(Empty, 3, 3)
	_, ok := e.Active()
	assert.False(t, ok)

	e.Place(T, 3, 3)
	p, ok := e.Active()
	require.True(t, ok)
	assert.Equal(t, T, p.Kind)
}

func TestClearSingleLine(t *testing.T) {
	e := newTestEngine(I)
	fillRow(e, 19, Z)
	e.SetCell(3, 18, T)
	e.SetCell(7, 17, L)

	require.Equal(t, []int{19}, e.FullRows())
	assert.Equal(t, 1, e.ClearLines())

	assert.Equal(t, T, e.Cell(3, 19))
	assert.Equal(t, L, e.Cell(7, 18))
	assert.Equal(t, Empty, e.Cell(3, 18))
	for x := range e.Width() {
		assert.Equal(t, Empty, e.Cell(x, 0))
	}
}

func TestClearTwoLines(t *testing.T) {
	e := newTestEngine(I)
	fillRow(e, 19, Z)
	fillRow(e, 18, S)
	e.SetCell(0, 17, J)

	assert.Equal(t, 2, e.ClearLines())

	assert.Equal(t, J, e.Cell(0, 19))
	for x := 1; x < e.Width(); x++ {
		assert.Equal(t, Empty, e.Cell(x, 19))
	}
	for x := range e.Width() {
		assert.Equal(t, Empty, e.Cell(x, 18))
	}
}

func TestClearSeparatedLines(t *testing.T) {
	e := newTestEngine(I)
	fillRow(e, 19, Z)
	fillRow(e, 18, S, 5) // hole keeps this row
	fillRow(e, 17, Z)
	fillRow(e, 16, T, 2)

	assert.Equal(t, 2, e.ClearLines())

	want := newTestEngine(I)
	fillRow(want, 19, S, 5)
	fillRow(want, 18, T, 2)
	assert.Equal(t, want.Board(), e.Board())
}

func TestClearNothing(t *testing.T) {
	e := newTestEngine(I)
	fillRow(e, 19, Z, 9)
	before := e.Board()

	assert.Equal(t, 0, e.ClearLines())
	assert.Equal(t, before, e.Board())
}

func TestGameOver(t *testing.T) {
	e := newTestEngine(I)
	assert.False(t, e.GameOver())

	e.SetCell(9, 0, Z)
	assert.True(t, e.GameOver())
}

func TestStrictSpawn(t *testing.T) {
	for _, strict := range []bool{false, true} {
		e, err := New(Config{Randomizer: newSequence(T), StrictSpawn: strict})
		require.NoError(t, err)
		e.Lock()
		// Clear what the lock left behind so row 0 stays empty.
		for y := range 2 {
			for x := range e.Width() {
				e.SetCell(x, y, Empty)
			}
		}
		e.SetCell(4, 1, Z)

		assert.False(t, e.Spawn(), "spawn onto the stack should report an overlap")
		assert.Equal(t, strict, e.GameOver(), "strict=%v", strict)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	e, err := New(Config{Seed: 7})
	require.NoError(t, err)
	c := e.Clone()

	require.True(t, e.MoveDown())
	orig, _ := e.Active()
	cp, _ := c.Active()
	assert.Equal(t, 1, orig.Y)
	assert.Equal(t, 0, cp.Y)

	require.True(t, c.MoveLeft())
	orig, _ = e.Active()
	assert.Equal(t, 4, orig.X)

	c.SetCell(0, 19, Z)
	assert.Equal(t, Empty, e.Cell(0, 19))

	preview := e.Preview(DefaultQueueSize)
	c.Lock()
	c.Spawn()
	assert.Equal(t, preview, e.Preview(DefaultQueueSize))
}

func TestCloneForksQueue(t *testing.T) {
	e, err := New(Config{Seed: 99})
	require.NoError(t, err)
	c := e.Clone()

	for range 20 {
		e.Lock()
		e.Spawn()
		c.Lock()
		c.Spawn()
	}
	assert.Equal(t, e.Preview(DefaultQueueSize), c.Preview(DefaultQueueSize))
}

func TestCloneWithoutActivePiece(t *testing.T) {
	e := newTestEngine(Z)
	e.Lock()
	c := e.Clone()

	_, ok := c.Active()
	assert.False(t, ok)
	assert.Equal(t, e.Board(), c.Board())
}

func TestSameSeedSameGame(t *testing.T) {
	a, err := New(Config{Seed: 2024})
	require.NoError(t, err)
	b, err := New(Config{Seed: 2024})
	require.NoError(t, err)

	assert.Equal(t, a.Preview(7), b.Preview(7))
	pa, _ := a.Active()
	pb, _ := b.Active()
	assert.Equal(t, pa.Kind, pb.Kind)
}
