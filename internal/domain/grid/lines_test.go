package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Lines(t *testing.T) {
	cfg := createTestConfig(t)

	lines := cfg.Lines()
	require.Len(t, lines, 22)

	for _, l := range lines {
		if l.Index%5 == 0 {
			assert.True(t, l.Major, "line %d", l.Index)
			assert.Equal(t, 4.0, l.Thickness)
		} else {
			assert.False(t, l.Major, "line %d", l.Index)
			assert.Equal(t, 2.0, l.Thickness)
		}

		length := cfg.Size() + l.Thickness
		switch l.Orientation {
		case Horizontal:
			assert.Equal(t, Vec{X: length, Y: l.Thickness}, l.Size)
			assert.Equal(t, 0.0, l.Center.X)
			assert.Equal(t, -160+float64(l.Index)*32, l.Center.Y)
		case Vertical:
			assert.Equal(t, Vec{X: l.Thickness, Y: length}, l.Size)
			assert.Equal(t, -160+float64(l.Index)*32, l.Center.X)
			assert.Equal(t, 0.0, l.Center.Y)
		}
	}
}

func TestConfig_LinesCustomThickness(t *testing.T) {
	cfg := createTestConfig(t).WithLineThickness(1)

	lines := cfg.Lines()
	assert.Equal(t, 2.0, lines[0].Thickness)
	assert.Equal(t, 1.0, lines[2].Thickness)

	same := cfg.WithLineThickness(0)
	assert.Equal(t, 1.0, same.MinorLineThickness())
}

func TestStyleOf(t *testing.T) {
	tests := []struct {
		row, col int
		want     Style
	}{
		{1, 1, StyleBase},
		{5, 5, StyleBase},
		{1, 6, StyleAlternate},
		{6, 1, StyleAlternate},
		{6, 6, StyleBase},
		{11, 3, StyleBase},
		{11, 8, StyleAlternate},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StyleOf(tt.row, tt.col), "row %d col %d", tt.row, tt.col)
	}
}

func TestStyleOf_Blocks(t *testing.T) {
	for row := 1; row <= 20; row++ {
		for col := 1; col <= 20; col++ {
			s := StyleOf(row, col)

			// constant inside a 5×5 block
			blockRow := ((row-1)/5)*5 + 1
			blockCol := ((col-1)/5)*5 + 1
			assert.Equal(t, StyleOf(blockRow, blockCol), s)

			// neighbouring blocks alternate
			assert.NotEqual(t, s, StyleOf(row+5, col))
			assert.NotEqual(t, s, StyleOf(row, col+5))
			assert.Equal(t, s, StyleOf(row+5, col+5))
			assert.Equal(t, s, StyleOf(row+10, col))
			assert.Equal(t, s, StyleOf(row, col+10))
		}
	}
}

func TestStyle_String(t *testing.T) {
	assert.Equal(t, "Base", StyleBase.String())
	assert.Equal(t, "Alternate", StyleAlternate.String())
	assert.Equal(t, "Unknown", Style(9).String())
}

func TestCoordinates_String(t *testing.T) {
	assert.Equal(t, "(3,7)", At(3, 7).String())
}
