package grid

// Orientation of a grid line.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Line is a render directive for one grid line. Center and Size are in world
// units; the line is an axis-aligned rectangle.
type Line struct {
	Orientation Orientation
	Index       int
	Center      Vec
	Size        Vec
	Thickness   float64
	Major       bool
}

// Lines returns the horizontal and vertical grid lines for indices
// 0..CellCount. Each line is as long as the grid plus its own thickness so
// that crossing lines overlap at the corners.
func (g Config) Lines() []Line {
	size := g.Size()
	lines := make([]Line, 0, 2*(g.cellCount+1))

	for i := 0; i <= g.cellCount; i++ {
		major := i%5 == 0
		thickness := g.minorLine
		if major {
			thickness = g.MajorLineThickness()
		}
		length := size + thickness
		offset := float64(i) * g.cellSize

		lines = append(lines,
			Line{
				Orientation: Horizontal,
				Index:       i,
				Center:      Vec{X: g.origin.X + 0.5*size, Y: g.origin.Y + offset},
				Size:        Vec{X: length, Y: thickness},
				Thickness:   thickness,
				Major:       major,
			},
			Line{
				Orientation: Vertical,
				Index:       i,
				Center:      Vec{X: g.origin.X + offset, Y: g.origin.Y + 0.5*size},
				Size:        Vec{X: thickness, Y: length},
				Thickness:   thickness,
				Major:       major,
			},
		)
	}

	return lines
}
