package grid

import "fmt"

// Coordinates is a 1-based (column, row) cell index. Values outside
// [1, CellCount] are representable and mean "no such cell".
type Coordinates struct {
	X uint32 // column
	Y uint32 // row, 1 is the bottom row
}

// At is shorthand for Coordinates{X: x, Y: y}.
func At(x, y uint32) Coordinates {
	return Coordinates{X: x, Y: y}
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Style is the shading class of a cell.
type Style uint8

const (
	StyleBase Style = iota
	StyleAlternate
)

// String returns the string representation of the style
func (s Style) String() string {
	switch s {
	case StyleBase:
		return "Base"
	case StyleAlternate:
		return "Alternate"
	default:
		return "Unknown"
	}
}

// StyleOf returns the checkerboard shading of the 5×5 block holding the cell
// at the given 1-based row and column.
func StyleOf(row, col int) Style {
	return Style((((row - 1) / 5) ^ ((col - 1) / 5)) & 1)
}
