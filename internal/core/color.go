package core

import "strconv"

// Color is a foreground color for a screen cell. The zero value leaves
// the terminal's own color in place.
type Color uint8

// Palette used by the pieces and the HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorMagenta
	ColorCyan
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

var ansiCodes = [...]int{
	ColorRed:          1,
	ColorMagenta:      5,
	ColorCyan:         6,
	ColorBrightRed:    9,
	ColorBrightGreen:  10,
	ColorBrightYellow: 11,
	ColorBrightBlue:   12,
	ColorBrightCyan:   14,
	ColorBrightWhite:  15,
	ColorOrange:       208,
	ColorGray:         245,
}

// ANSI returns the 256-color code of c, or "" for ColorDefault and
// unknown values.
func (c Color) ANSI() string {
	if c == ColorDefault || int(c) >= len(ansiCodes) {
		return ""
	}
	return strconv.Itoa(ansiCodes[c])
}
