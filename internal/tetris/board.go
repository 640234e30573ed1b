package tetris

import "strings"

// Board is a fixed-size grid of cells. Row 0 is the top. Dimensions never
// change after NewBoard; only cell contents do.
type Board struct {
	width  int
	height int
	cells  [][]Kind
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(width, height int) *Board {
	b := &Board{width: width, height: height}
	b.cells = make([][]Kind, height)
	for y := range b.cells {
		b.cells[y] = make([]Kind, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// inBounds reports whether (x, y) is a visible cell.
func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the cell at (x, y). Out-of-bounds cells read as Empty.
func (b *Board) At(x, y int) Kind {
	if !b.inBounds(x, y) {
		return Empty
	}
	return b.cells[y][x]
}

// Set writes a cell. Out-of-bounds coordinates are silently ignored.
func (b *Board) Set(x, y int, k Kind) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y][x] = k
}

// Fits reports whether shape can sit with its top-left corner at (x, y).
// Every occupied cell must land inside [0, width) horizontally and above the
// floor; rows above the top edge are allowed, and visible cells must be
// empty.
func (b *Board) Fits(shape Shape, x, y int) bool {
	for r, row := range shape {
		for c, filled := range row {
			if !filled {
				continue
			}
			bx, by := x+c, y+r
			if bx < 0 || bx >= b.width || by >= b.height {
				return false
			}
			if by >= 0 && b.cells[by][bx] != Empty {
				return false
			}
		}
	}
	return true
}

// stamp writes every occupied cell of shape at (x, y) as k. Cells above the
// top edge are discarded.
func (b *Board) stamp(shape Shape, x, y int, k Kind) {
	shape.Cells(func(dx, dy int) {
		b.Set(x+dx, y+dy, k)
	})
}

// rowFull reports whether every cell of row y is occupied.
func (b *Board) rowFull(y int) bool {
	for _, cell := range b.cells[y] {
		if cell == Empty {
			return false
		}
	}
	return true
}

// FullRows returns the indices of every full row, bottom to top.
func (b *Board) FullRows() []int {
	var rows []int
	for y := b.height - 1; y >= 0; y-- {
		if b.rowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearLines removes every full row, shifts the rows above it down and
// fills the top with empty rows. Returns the number of rows removed.
func (b *Board) ClearLines() int {
	kept := make([][]Kind, 0, b.height)
	for y := range b.height {
		if !b.rowFull(y) {
			kept = append(kept, b.cells[y])
		}
	}

	cleared := b.height - len(kept)
	if cleared == 0 {
		return 0
	}

	cells := make([][]Kind, 0, b.height)
	for range cleared {
		cells = append(cells, make([]Kind, b.width))
	}
	b.cells = append(cells, kept...)
	return cleared
}

// TopOccupied reports whether any cell of row 0 is filled.
func (b *Board) TopOccupied() bool {
	if b.height == 0 {
		return false
	}
	for _, cell := range b.cells[0] {
		if cell != Empty {
			return true
		}
	}
	return false
}

// Rows returns a copy of the grid, indexed [row][col].
func (b *Board) Rows() [][]Kind {
	out := make([][]Kind, b.height)
	for y, row := range b.cells {
		out[y] = make([]Kind, b.width)
		copy(out[y], row)
	}
	return out
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	return &Board{
		width:  b.width,
		height: b.height,
		cells:  b.Rows(),
	}
}

// String renders the board using each kind's letter and '.' for empty
// cells, one line per row.
func (b *Board) String() string {
	var sb strings.Builder
	for y, row := range b.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			sb.WriteString(cell.String())
		}
	}
	return sb.String()
}
