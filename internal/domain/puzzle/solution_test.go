package puzzle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSolution() *Solution {
	return NewSolution(Size{Width: 4, Height: 4}, [][]uint8{
		{0, 0, 1, 1},
		{0, 0, 1, 1},
		{1, 1, 0, 0},
		{1, 1, 0, 0},
	})
}

func TestSolution_LookupInBounds(t *testing.T) {
	s := createTestSolution()

	assert.False(t, s.Lookup(0, 0))
	assert.True(t, s.Lookup(1, 2))
	assert.False(t, s.Lookup(3, 3))
	assert.True(t, s.Lookup(2, 0))
	assert.True(t, s.Lookup(0, 3))
}

func TestSolution_LookupOutOfBounds(t *testing.T) {
	s := createTestSolution()

	tests := []struct {
		name string
		x, y int
	}{
		{"x past end", 5, 1},
		{"y past end", 3, 4},
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"huge", math.MaxInt, math.MaxInt},
		{"most negative", math.MinInt, math.MinInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, s.Lookup(tt.x, tt.y))
			})
		})
	}
}

func TestSolution_LookupRagged(t *testing.T) {
	// declared size is informational only
	s := NewSolution(Size{Width: 9, Height: 9}, [][]uint8{
		{1},
		{1, 1, 1},
		{},
	})

	assert.True(t, s.Lookup(0, 0))
	assert.False(t, s.Lookup(1, 0))
	assert.True(t, s.Lookup(2, 1))
	assert.False(t, s.Lookup(0, 2))
	assert.False(t, s.Lookup(8, 8))
	assert.Equal(t, 3, s.Rows())
	assert.Equal(t, 3, s.Columns())
	assert.Equal(t, Size{Width: 9, Height: 9}, s.Size())
}

func TestSolution_Immutable(t *testing.T) {
	tiles := [][]uint8{{0, 1}}
	s := NewSolution(Size{Width: 2, Height: 1}, tiles)

	tiles[0][0] = 1
	assert.False(t, s.Lookup(0, 0), "caller mutation must not leak into solution")
}

func TestSolution_FilledCount(t *testing.T) {
	assert.Equal(t, 8, createTestSolution().FilledCount())
}

func TestParseRows(t *testing.T) {
	tiles, err := ParseRows([]string{"..##", "x_1 "})
	require.NoError(t, err)

	assert.Equal(t, [][]uint8{{0, 0, 1, 1}, {1, 0, 1, 0}}, tiles)
}

func TestParseRows_Invalid(t *testing.T) {
	_, err := ParseRows([]string{"..#", "#?."})
	assert.ErrorIs(t, err, ErrInvalidPattern)
	assert.ErrorContains(t, err, "row 1 column 1")
}

func TestParseRows_InvalidColumnCountsRunes(t *testing.T) {
	_, err := ParseRows([]string{"#.é#"})
	require.ErrorIs(t, err, ErrInvalidPattern)
	assert.ErrorContains(t, err, "row 0 column 2")
	assert.ErrorContains(t, err, `unexpected 'é'`)
}

func TestSolution_Clues(t *testing.T) {
	s := NewSolution(Size{Width: 5, Height: 3}, [][]uint8{
		{1, 1, 0, 1, 0},
		{0, 0, 0, 0, 0},
		{1, 1, 1, 1, 1},
	})

	assert.Equal(t, [][]int{{2, 1}, {}, {5}}, s.RowClues())
	assert.Equal(t, [][]int{{1, 1}, {1, 1}, {1}, {1, 1}, {1}}, s.ColumnClues())
}
