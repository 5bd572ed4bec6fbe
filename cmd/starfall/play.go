package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/starfall/internal/app"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/platform/tui"
)

var (
	flagDifficulty string
	flagStart      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in the current terminal.

Controls:
  Arrows/WASD  - Move, navigate menus
  Enter/Space  - Select
  Esc/B        - Back
  P            - Pause
  U / R        - Undo / redo screen changes
  H / F2       - Show command history
  Ctrl+Y       - Copy command history
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, wider ship, more lives
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, narrow ship, two lives
  fixed  - No progression, stays at config's initial level

Examples:
  starfall play
  starfall play --difficulty easy
  starfall play --start menu --seed 42
  starfall play --config ./my-starfall.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagStart, "start", "", "First screen (default from config)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	preset, err := parsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, fixes, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if flagStart != "" {
		cfg.StartScreen = flagStart
	}

	rt := core.RuntimeConfig{ScreenW: cfg.Window.Width, ScreenH: cfg.Window.Height + 1, TickRate: cfg.TickRate}
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}

	logger, logFile := openLogger(cfg, "starfall", fixes)
	defer logFile.Close()

	opts := appOptions(cfg, logger, preset)
	opts.Store = openStore(cfg.DBPath)
	opts.CloseStore = true

	a, err := app.New(opts)
	if err != nil {
		if opts.Store != nil {
			opts.Store.Close()
		}
		return fmt.Errorf("start game: %w", err)
	}

	runErr := tui.Run(a, rt, logger)
	if err := a.Shutdown(); err != nil {
		logger.Warn("shutdown", "error", err)
	}
	if runErr != nil {
		return fmt.Errorf("run game: %w", runErr)
	}
	return nil
}
