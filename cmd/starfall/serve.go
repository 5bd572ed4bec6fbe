package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/app"
	"github.com/vovakirdan/starfall/internal/platform/tui"
	"github.com/vovakirdan/starfall/internal/resource"
	"github.com/vovakirdan/starfall/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Starfall SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own client: its own screens, settings and
command history. Scores are stored per-server (all users share the same
leaderboard). Sessions do not write the local settings file.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.starfall/host_key

Examples:
  starfall serve                           # Listen on :23234 with auto-generated key
  starfall serve --ssh :2222               # Listen on port 2222
  starfall serve --host-key ./my_host_key  # Use specific host key
  starfall serve --db ./starfall.db        # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset for every session")
}

func runServe(cmd *cobra.Command, _ []string) error {
	preset, err := parsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, fixes, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("log-file") {
		cfg.LogFile = "-"
	}
	logger, logFile := openLogger(cfg, "starfall-ssh", fixes)
	defer logFile.Close()

	// Sessions share the decoded assets and never touch the local settings.
	assets := resource.Embedded(logger.WithPrefix("assets"))
	sessionCfg := cfg
	sessionCfg.SettingsPath = ""

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      cfg.DBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    cfg.TickRate,
		Logger:      logger,
		NewApp: func(session string, store *storage.Store) (*app.App, error) {
			opts := appOptions(sessionCfg, logger.WithPrefix(session), preset)
			opts.Store = store
			opts.Session = session
			opts.Assets = assets
			opts.Clipboard = nil
			return app.New(opts)
		},
	})
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	fmt.Printf("Starting Starfall SSH server on %s\n", server.Addr())
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
