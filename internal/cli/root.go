// Package cli implements the command-line interface for hanoi.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/unicordoba/hanoi/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "hanoi",
	Short: "Towers of Hanoi simulator",
	Long: `Towers of Hanoi simulator - play the puzzle in your terminal, watch the
optimal recursive solution, and keep a history of every session.

Sessions are recorded to a local SQLite database and can be listed,
replayed move by move, or exported to text and JSONL files.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.hanoi/hanoi.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// openDB opens the database from the --db flag or the default path.
func openDB() (*storage.DB, error) {
	if dbPath != "" {
		return storage.Open(dbPath)
	}
	return storage.OpenDefault()
}
