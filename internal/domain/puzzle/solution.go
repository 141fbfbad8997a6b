// Package puzzle holds the target pattern a picross grid is checked against.
package puzzle

import (
	"errors"
	"fmt"
)

// ErrInvalidPattern is returned when a textual pattern cannot be parsed.
var ErrInvalidPattern = errors.New("invalid pattern")

// Size is the declared width and height of a solution.
type Size struct {
	Width  int
	Height int
}

// Solution is the immutable filled/empty pattern of a puzzle.
// Tiles are addressed Tiles[row][column], row 0 being the top row.
type Solution struct {
	size  Size
	tiles [][]uint8
}

// NewSolution creates a solution. size is informational: lookups use the
// actual row and column lengths of tiles. tiles is copied.
func NewSolution(size Size, tiles [][]uint8) *Solution {
	cp := make([][]uint8, len(tiles))
	for i, row := range tiles {
		cp[i] = append([]uint8(nil), row...)
	}
	return &Solution{size: size, tiles: cp}
}

// Size returns the declared size.
func (s *Solution) Size() Size {
	return s.size
}

// Rows returns the number of stored rows.
func (s *Solution) Rows() int {
	return len(s.tiles)
}

// Columns returns the length of the longest stored row.
func (s *Solution) Columns() int {
	n := 0
	for _, row := range s.tiles {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// Lookup reports whether the tile at column x, row y is filled. Anything
// outside the stored tiles, negative indices included, is not filled.
func (s *Solution) Lookup(x, y int) bool {
	if y < 0 || y >= len(s.tiles) {
		return false
	}
	row := s.tiles[y]
	if x < 0 || x >= len(row) {
		return false
	}
	return row[x] > 0
}

// FilledCount returns the number of filled tiles.
func (s *Solution) FilledCount() int {
	n := 0
	for _, row := range s.tiles {
		for _, v := range row {
			if v > 0 {
				n++
			}
		}
	}
	return n
}

// ParseRows converts text rows into tiles. '#', 'x', 'X' and '1' are filled,
// '.', ' ', '_' and '0' are empty.
func ParseRows(rows []string) ([][]uint8, error) {
	tiles := make([][]uint8, len(rows))
	for y, line := range rows {
		tiles[y] = make([]uint8, 0, len(line))
		for _, ch := range line {
			switch ch {
			case '#', 'x', 'X', '1':
				tiles[y] = append(tiles[y], 1)
			case '.', ' ', '_', '0':
				tiles[y] = append(tiles[y], 0)
			default:
				return nil, fmt.Errorf("%w: row %d column %d: unexpected %q", ErrInvalidPattern, y, len(tiles[y]), ch)
			}
		}
	}
	return tiles, nil
}
