package puzzle

// RowClues returns the run lengths of filled tiles for each row, top row
// first. An empty row yields an empty clue.
func (s *Solution) RowClues() [][]int {
	clues := make([][]int, s.Rows())
	for y := range clues {
		clues[y] = runs(s.Columns(), func(i int) bool { return s.Lookup(i, y) })
	}
	return clues
}

// ColumnClues returns the run lengths of filled tiles for each column, read
// top to bottom.
func (s *Solution) ColumnClues() [][]int {
	clues := make([][]int, s.Columns())
	for x := range clues {
		clues[x] = runs(s.Rows(), func(i int) bool { return s.Lookup(x, i) })
	}
	return clues
}

func runs(n int, filled func(int) bool) []int {
	out := []int{}
	run := 0
	for i := 0; i < n; i++ {
		if filled(i) {
			run++
			continue
		}
		if run > 0 {
			out = append(out, run)
			run = 0
		}
	}
	if run > 0 {
		out = append(out, run)
	}
	return out
}
