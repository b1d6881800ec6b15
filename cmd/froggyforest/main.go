// froggyforest is a turn-based terminal game: guide the frog up a scrolling
// forest lane without walking into the trees.
//
// Usage:
//
//	froggyforest play      - Play in this terminal
//	froggyforest scores    - Show the best finished runs
//	froggyforest serve     - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.froggyforest/scores.db)
//	--log <path>    - Set log file for local play (default: ~/.froggyforest/froggy.log)
//	--debug         - Log every turn
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/xxnonanonxx/froggyforest/internal/config"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "froggyforest",
	Short: "Froggy Forest - hop the frog through the trees",
	Long: `Froggy Forest is a turn-based terminal game. Every step forward
scores a point; trees block the way. Once the frog reaches the top of its
window the forest scrolls toward it instead.

Available commands:
  play     - Play in this terminal
  scores   - View the best finished runs
  serve    - Start SSH server for remote play

Flag defaults can also be set through FROGGY_DB, FROGGY_CONFIG and
FROGGY_LOG, either in the environment or in a .env file.

Examples:
  froggyforest play
  froggyforest play --ascii --seed 42
  froggyforest scores
  froggyforest serve --ssh :2222`,
}

func init() {
	// A missing .env is fine; any other problem is worth a warning.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: could not load .env: %v\n", err)
	}

	home := "~/" + config.DirName
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", config.GetEnv(config.EnvDBPath, home+"/scores.db"), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", config.GetEnv(config.EnvLogPath, home+"/froggy.log"), "Log file for local play")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log every turn")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the charm logger writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogFile opens the local play log. The terminal is busy drawing the
// game, so logs go to a file; an empty path disables logging.
func openLogFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
