package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
)

// Loader loads game configuration and puzzles using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads game.json
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.json: %w", err)
	}

	var cfg GameConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.json: %w", err)
	}

	return &cfg, nil
}

// LoadPuzzle loads puzzles/<id>.yaml
func (l *Loader) LoadPuzzle(id string) (*PuzzleConfig, error) {
	for _, ext := range []string{".yaml", ".yml"} {
		p := path.Join("puzzles", id+ext)
		data, err := fs.ReadFile(l.fsys, p)
		if err != nil {
			continue
		}

		pc, err := ParsePuzzle(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse puzzle %s: %w", id, err)
		}
		return pc, nil
	}

	return nil, fmt.Errorf("failed to read puzzle %s: %w", id, fs.ErrNotExist)
}

// ListPuzzles loads every puzzle under puzzles/, sorted by ID.
// Files that fail to parse are skipped.
func (l *Loader) ListPuzzles() ([]*PuzzleConfig, error) {
	entries, err := fs.ReadDir(l.fsys, "puzzles")
	if err != nil {
		return nil, fmt.Errorf("failed to read puzzles: %w", err)
	}

	var puzzles []*PuzzleConfig
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(path.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		data, err := fs.ReadFile(l.fsys, path.Join("puzzles", e.Name()))
		if err != nil {
			continue
		}
		pc, err := ParsePuzzle(data)
		if err != nil {
			continue
		}
		puzzles = append(puzzles, pc)
	}

	sort.Slice(puzzles, func(i, j int) bool {
		return puzzles[i].ID < puzzles[j].ID
	})

	return puzzles, nil
}
