package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/xxnonanonxx/froggyforest/internal/config"
	"github.com/xxnonanonxx/froggyforest/internal/games/forest"
	"github.com/xxnonanonxx/froggyforest/internal/input"
	"github.com/xxnonanonxx/froggyforest/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeConfig string
	flagServeASCII  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Froggy Forest SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent run. Finished runs are
recorded in the server's scores database (all users share one leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.froggyforest/host_key

Examples:
  froggyforest serve                           # Listen on :23234 with auto-generated key
  froggyforest serve --ssh :2222               # Listen on port 2222
  froggyforest serve --host-key ./my_host_key  # Use specific host key
  froggyforest serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", config.GetEnv(config.EnvConfigPath, ""), "Path to custom game config YAML")
	serveCmd.Flags().BoolVar(&flagServeASCII, "ascii", false, "Draw with ASCII glyphs instead of emoji")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadForest(flagServeConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	theme, err := forest.ThemeFromConfig(cfg, flagServeASCII)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, "froggy-ssh")

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = flagSSHAddr
	srvCfg.HostKeyPath = flagHostKey
	if flagDBPath != "" {
		srvCfg.DBPath = flagDBPath
	}
	srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	srvCfg.NewGame = func() tui.Game {
		return forest.New(theme)
	}
	srvCfg.Input = input.OptionsFromConfig(cfg.Input, logger)
	srvCfg.TurnDelay = cfg.Timing.TurnDelay()
	srvCfg.Logger = logger

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Froggy Forest SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
