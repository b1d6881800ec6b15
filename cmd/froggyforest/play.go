package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"os/user"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/xxnonanonxx/froggyforest/internal/config"
	"github.com/xxnonanonxx/froggyforest/internal/core"
	"github.com/xxnonanonxx/froggyforest/internal/games/forest"
	"github.com/xxnonanonxx/froggyforest/internal/input"
	"github.com/xxnonanonxx/froggyforest/internal/platform/tui"
	"github.com/xxnonanonxx/froggyforest/internal/storage"
)

var (
	flagConfig string
	flagASCII  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run of Froggy Forest.

Controls:
  Up/W      - Step forward (scores a point)
  Down/S    - Step back
  Left/A    - Step left
  Right/D   - Step right
  Esc       - Quit

Examples:
  froggyforest play
  froggyforest play --ascii
  froggyforest play --seed 42
  froggyforest play --config ./my-forest.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", config.GetEnv(config.EnvConfigPath, ""), "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagASCII, "ascii", false, "Draw with ASCII glyphs instead of emoji")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadForest(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	theme, err := forest.ThemeFromConfig(cfg, flagASCII)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logFile, err := openLogFile(flagLogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logFile = nopCloser{os.Stderr}
	}
	defer logFile.Close()
	logger := newLogger(logFile, "froggy")

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.DefaultConfig()
	runtime.ScreenW = width
	runtime.ScreenH = height
	runtime.TurnDelay = cfg.Timing.TurnDelay()
	runtime.Seed = flagSeed

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	capture := input.Start(input.OpenTTY, input.OptionsFromConfig(cfg.Input, logger))

	final, runErr := tui.Run(ctx, forest.New(theme), capture, tui.Options{
		Store:   store,
		Logger:  logger,
		Player:  localPlayer(),
		Runtime: runtime,
	})

	stop()
	capture.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	fmt.Println(final.Frame())
	fmt.Printf("Score: %d\n", final.State().Score)
	if store != nil {
		fmt.Printf("Best: %d\n", final.Best())
		fmt.Printf("Run: %s (froggyforest scores --run %s)\n", final.RunID(), final.RunID())
	}
}

// localPlayer names the run after the OS user.
func localPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return config.GetEnv("USER", "")
}
