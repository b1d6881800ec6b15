package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/xxnonanonxx/froggyforest/internal/games/forest"
	"github.com/xxnonanonxx/froggyforest/internal/platform/tui"
	"github.com/xxnonanonxx/froggyforest/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
	flagRun   string
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best finished runs",
	Long: `Display the best finished runs recorded in the scores database.
Only final results are kept; a run can never be resumed.

Examples:
  froggyforest scores
  froggyforest scores --limit 25
  froggyforest scores --plain
  froggyforest scores --run 5f0c...   # Details of one run
  froggyforest scores --clear         # Delete every recorded run`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the interactive view")
	scoresCmd.Flags().StringVar(&flagRun, "run", "", "Show a single run by its ID")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
	scoresCmd.MarkFlagsMutuallyExclusive("run", "clear")
}

func runScores(_ *cobra.Command, _ []string) {
	game := forest.New(forest.DefaultTheme())

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(game.ID()); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All runs cleared.")
		return

	case flagRun != "":
		showRun(store, flagRun)
		return
	}

	runs, err := store.TopScores(game.ID(), flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	_, height, termErr := term.GetSize(int(os.Stdout.Fd()))
	if flagPlain || termErr != nil {
		fmt.Print(tui.FormatScores(game.Title(), runs))
		if len(runs) == 0 {
			fmt.Println()
			fmt.Println("Play 'froggyforest play' to set the first high score!")
		}
		return
	}

	if err := tui.RunScoreboard(game.Title(), runs, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// showRun prints one recorded run.
func showRun(store *storage.Store, id string) {
	runID, err := uuid.Parse(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid run ID %q: %v\n", id, err)
		os.Exit(1)
	}
	run, err := store.RunByID(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
		os.Exit(1)
	}
	if run == nil {
		fmt.Fprintf(os.Stderr, "Error: no run %s\n", runID)
		os.Exit(1)
	}
	fmt.Print(tui.FormatRun(*run))
}
