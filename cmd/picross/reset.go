package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aw88/picross/internal/infrastructure/config"
	"github.com/aw88/picross/internal/storage"
)

var resetCmd = &cobra.Command{
	Use:   "reset <puzzle>",
	Short: "Forget saved marks for a puzzle",
	Long: `Removes every saved mark of the given puzzle from the progress database,
so the next 'picross play' starts from an empty board.

Examples:
  picross reset heart
  picross reset smile --db ./progress.db`,
	Args: cobra.ExactArgs(1),
	RunE: runReset,
}

func runReset(cmd *cobra.Command, args []string) error {
	loader, err := newLoader()
	if err != nil {
		return err
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	return resetProgress(store, loader, args[0], cmd.OutOrStdout())
}

func resetProgress(store *storage.Store, loader *config.Loader, puzzleID string, w io.Writer) error {
	if _, err := loader.LoadPuzzle(puzzleID); err != nil {
		return fmt.Errorf("unknown puzzle %q (run 'picross list'): %w", puzzleID, err)
	}

	marks, err := store.Marks(puzzleID)
	if err != nil {
		return err
	}
	if err := store.ClearMarks(puzzleID); err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%s: cleared %d marks\n", puzzleID, len(marks))
	return err
}
