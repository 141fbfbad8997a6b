// Package storage provides SQLite-based persistence for puzzle progress.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/aw88/picross/internal/domain/grid"
)

// Store manages the SQLite database connection for marked cells.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS marks (
			puzzle_id TEXT NOT NULL,
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (puzzle_id, x, y)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMark records whether the cell at c is marked in the given puzzle.
func (s *Store) SaveMark(puzzleID string, c grid.Coordinates, marked bool) error {
	var err error
	if marked {
		_, err = s.db.Exec(
			`INSERT INTO marks (puzzle_id, x, y) VALUES (?, ?, ?)
			 ON CONFLICT(puzzle_id, x, y) DO UPDATE SET updated_at = CURRENT_TIMESTAMP`,
			puzzleID, c.X, c.Y,
		)
	} else {
		_, err = s.db.Exec(
			"DELETE FROM marks WHERE puzzle_id = ? AND x = ? AND y = ?",
			puzzleID, c.X, c.Y,
		)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot save mark: %w", err)
	}
	return nil
}

// Marks returns the marked cells of a puzzle, ordered by row then column.
func (s *Store) Marks(puzzleID string) ([]grid.Coordinates, error) {
	rows, err := s.db.Query(
		`SELECT x, y FROM marks WHERE puzzle_id = ? ORDER BY y, x`,
		puzzleID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query marks: %w", err)
	}
	defer rows.Close()

	var marks []grid.Coordinates
	for rows.Next() {
		var c grid.Coordinates
		if err := rows.Scan(&c.X, &c.Y); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		marks = append(marks, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return marks, nil
}

// ClearMarks removes all marks of a puzzle.
func (s *Store) ClearMarks(puzzleID string) error {
	if _, err := s.db.Exec("DELETE FROM marks WHERE puzzle_id = ?", puzzleID); err != nil {
		return fmt.Errorf("storage: cannot clear marks: %w", err)
	}
	return nil
}
