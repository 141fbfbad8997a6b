package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aw88/picross/internal/domain/puzzle"
)

// ErrNotSquare is returned for a puzzle whose rows and columns differ in count.
var ErrNotSquare = errors.New("puzzle is not square")

// PuzzleConfig is the YAML structure of a puzzle file
type PuzzleConfig struct {
	ID     string   `yaml:"id"`
	Name   string   `yaml:"name"`
	Author string   `yaml:"author,omitempty"`
	Rows   []string `yaml:"rows"` // top row first, '#' filled, '.' empty
}

// ParsePuzzle parses a YAML puzzle file
func ParsePuzzle(data []byte) (*PuzzleConfig, error) {
	var pc PuzzleConfig
	if err := yaml.Unmarshal(data, &pc); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if pc.ID == "" {
		return nil, errors.New("puzzle has no id")
	}
	if pc.Name == "" {
		pc.Name = pc.ID
	}
	return &pc, nil
}

// Size returns the number of cells per side.
func (p *PuzzleConfig) Size() int {
	return len(p.Rows)
}

// Solution converts the rows into a solution, rejecting non-square patterns.
func (p *PuzzleConfig) Solution() (*puzzle.Solution, error) {
	tiles, err := puzzle.ParseRows(p.Rows)
	if err != nil {
		return nil, fmt.Errorf("puzzle %s: %w", p.ID, err)
	}

	n := len(tiles)
	if n == 0 {
		return nil, fmt.Errorf("puzzle %s: %w: no rows", p.ID, ErrNotSquare)
	}
	for y, row := range tiles {
		if len(row) != n {
			return nil, fmt.Errorf("puzzle %s: %w: row %d has %d cells, want %d", p.ID, ErrNotSquare, y, len(row), n)
		}
	}

	return puzzle.NewSolution(puzzle.Size{Width: n, Height: n}, tiles), nil
}
