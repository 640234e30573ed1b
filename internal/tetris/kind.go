package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Kind identifies a tetromino. The zero value Empty marks an unoccupied
// board cell, so a board row is just a slice of kinds.
type Kind uint8

const (
	Empty Kind = iota
	I
	O
	T
	S
	Z
	J
	L
)

// kinds lists the playable kinds in canonical order.
var kinds = [...]Kind{I, O, T, S, Z, J, L}

// Kinds returns the seven playable kinds.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds[:])
	return out
}

// Valid reports whether k is one of the seven playable kinds.
func (k Kind) Valid() bool {
	return k >= I && k <= L
}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case I:
		return "I"
	case O:
		return "O"
	case T:
		return "T"
	case S:
		return "S"
	case Z:
		return "Z"
	case J:
		return "J"
	case L:
		return "L"
	default:
		return "."
	}
}

// Color returns the display color of the kind.
func (k Kind) Color() core.Color {
	switch k {
	case I:
		return core.ColorBrightCyan
	case O:
		return core.ColorBrightYellow
	case T:
		return core.ColorMagenta
	case S:
		return core.ColorBrightGreen
	case Z:
		return core.ColorBrightRed
	case J:
		return core.ColorBrightBlue
	case L:
		return core.ColorOrange
	default:
		return core.ColorDefault
	}
}

// Rotation-0 shapes. Never handed out directly: Shape() copies.
var baseShapes = map[Kind]Shape{
	I: {{true, true, true, true}},
	O: {{true, true}, {true, true}},
	T: {{false, true, false}, {true, true, true}},
	S: {{false, true, true}, {true, true, false}},
	Z: {{true, true, false}, {false, true, true}},
	J: {{true, false, false}, {true, true, true}},
	L: {{false, false, true}, {true, true, true}},
}

// Shape returns a fresh copy of the kind's rotation-0 shape.
// Empty and unknown kinds return nil.
func (k Kind) Shape() Shape {
	return baseShapes[k].Clone()
}
