// starfall is a falling-star catching game for the terminal.
//
// Usage:
//
//	starfall play                  - Play in the terminal
//	starfall serve                 - Start SSH server for remote play
//	starfall scores [difficulty]   - Show high scores
//	starfall history               - Show recent screen commands
//	starfall screens               - List the screens
//	starfall settings show|set     - Inspect or edit the settings file
//
// Global flags:
//
//	--config <path>     - Config YAML (default: ~/.starfall/config.yaml)
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.starfall/starfall.db)
//	--settings <path>   - Set settings file path
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Log destination, "-" for stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/app"
	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/keymap"
	"github.com/vovakirdan/starfall/internal/logging"
	"github.com/vovakirdan/starfall/internal/storage"
)

var (
	// Global flags
	flagConfig       string
	flagFPS          int
	flagSeed         int64
	flagDBPath       string
	flagSettingsPath string
	flagLogLevel     string
	flagLogFile      string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starfall",
	Short: "Starfall - catch falling stars in your terminal",
	Long: `Starfall is a small arcade game: move the ship, catch the stars and
dodge the rocks.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  scores    - View high scores
  history   - Show recent screen commands
  screens   - List the screens
  settings  - Inspect or edit the settings file

Examples:
  starfall play
  starfall play --difficulty hard
  starfall serve --ssh :2222
  starfall scores --browse
  starfall settings set language de`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to config YAML")
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	pf.StringVar(&flagSettingsPath, "settings", "", "Path to settings file (default from config)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", `Log file, "-" for stderr (default from config)`)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(screensCmd)
	rootCmd.AddCommand(settingsCmd)
}

// loadConfig reads the config file and the environment, then applies the
// flags that were set on the command line.
func loadConfig(cmd *cobra.Command) (config.AppConfig, []string, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, nil, err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return cfg, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.TickRate = flagFPS
	}
	if flags.Changed("db") {
		cfg.DBPath = flagDBPath
	}
	if flags.Changed("settings") {
		cfg.SettingsPath = flagSettingsPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = flagLogFile
	}
	return cfg, cfg.Validate(), nil
}

// openLogger opens the configured log destination. The terminal is owned
// by the game, so logs go to a file unless "-" is given.
func openLogger(cfg config.AppConfig, prefix string, fixes []string) (*log.Logger, io.Closer) {
	w, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
		return logging.Discard(), io.NopCloser(nil)
	}
	logger := logging.New(w, cfg.LogLevel, prefix)
	for _, fix := range fixes {
		logger.Warn("config fixed", "fix", fix)
	}
	return logger, w
}

// openStore opens the score database, or returns nil with a warning.
func openStore(path string) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// appOptions builds the options shared by every way of running the game.
func appOptions(cfg config.AppConfig, logger *log.Logger, preset config.DifficultyPreset) app.Options {
	return app.Options{
		Config:    cfg,
		Logger:    logger,
		Clipboard: clipboard.WriteAll,
		Preset:    preset,
		Seed:      flagSeed,
		HelpLines: keymap.Default().Lines(),
	}
}

// parsePreset validates a --difficulty value. Empty selects normal.
func parsePreset(s string) (config.DifficultyPreset, error) {
	if s == "" {
		return config.DifficultyNormal, nil
	}
	p, ok := config.ParsePreset(s)
	if !ok {
		return "", fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", s)
	}
	return p, nil
}
