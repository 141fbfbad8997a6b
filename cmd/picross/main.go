// picross is a nonogram puzzle game.
//
// Usage:
//
//	picross play [puzzle]     - Open the main menu, then play a puzzle (default: checker)
//	picross list              - List the bundled puzzles
//	picross replay <file>     - Re-run a recorded session headlessly and print selections
//	picross reset <puzzle>    - Forget saved marks for a puzzle
//
// Global flags:
//
//	--db <path>   - Set progress database path (default: ~/.picross/progress.db)
//	--debug       - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "picross",
	Short: "Picross - nonogram puzzles",
	Long: `Picross is a nonogram puzzle game. Click cells to mark them until the
marked cells match the row and column clues.

Available commands:
  play     - Play a puzzle
  list     - Show all bundled puzzles
  replay   - Re-run a recorded session
  reset    - Forget saved marks for a puzzle

Examples:
  picross list
  picross play heart
  picross play smile --record smile.json
  picross replay smile.json
  picross reset heart`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.picross/progress.db", "Path to progress database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(resetCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "picross",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
