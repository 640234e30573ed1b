package tetris

import "strings"

// Shape is a small boolean matrix indexed [row][col]. A true cell is
// occupied by the piece.
type Shape [][]bool

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Clone returns a deep copy that shares no rows with s.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	for r := range s {
		out[r] = make([]bool, len(s[r]))
		copy(out[r], s[r])
	}
	return out
}

// Rotate returns s turned 90 degrees clockwise: transpose, then reverse
// the row order. s is left untouched.
func (s Shape) Rotate() Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for c := range w {
		out[c] = make([]bool, h)
		for r := range h {
			out[c][r] = s[h-1-r][c]
		}
	}
	return out
}

// Equal reports whether both shapes have the same dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for r := range s {
		if len(s[r]) != len(other[r]) {
			return false
		}
		for c := range s[r] {
			if s[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// Cells calls fn with the offset of every occupied cell, row-major.
func (s Shape) Cells(fn func(dx, dy int)) {
	for r, row := range s {
		for c, filled := range row {
			if filled {
				fn(c, r)
			}
		}
	}
}

// String renders the shape with '#' for occupied and '.' for empty cells,
// one line per row.
func (s Shape) String() string {
	var sb strings.Builder
	for r, row := range s {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, filled := range row {
			if filled {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
