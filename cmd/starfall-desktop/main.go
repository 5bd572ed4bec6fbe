// starfall-desktop runs Starfall in a desktop window.
package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/app"
	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/keymap"
	"github.com/vovakirdan/starfall/internal/logging"
	"github.com/vovakirdan/starfall/internal/platform/desktop"
	"github.com/vovakirdan/starfall/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
)

var rootCmd = &cobra.Command{
	Use:          "starfall-desktop",
	Short:        "Starfall in a desktop window",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return err
	}
	fixes := cfg.Validate()

	w, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		return err
	}
	defer w.Close()
	logger := logging.New(w, cfg.LogLevel, "starfall-desktop")
	for _, fix := range fixes {
		logger.Warn("config fixed", "fix", fix)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	a, err := app.New(app.Options{
		Config:     cfg,
		Logger:     logger,
		Store:      store,
		CloseStore: true,
		Clipboard:  clipboard.WriteAll,
		Preset:     preset,
		Seed:       flagSeed,
		HelpLines:  keymap.Default().Lines(),
	})
	if err != nil {
		if store != nil {
			store.Close()
		}
		return err
	}

	rt := core.RuntimeConfig{ScreenW: cfg.Window.Width, ScreenH: cfg.Window.Height, TickRate: cfg.TickRate}
	runErr := desktop.Run(a, "Starfall", cfg.Window.Scale, rt, logger)
	if err := a.Shutdown(); err != nil {
		logger.Warn("shutdown", "error", err)
	}
	return runErr
}
