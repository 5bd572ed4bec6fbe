package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/starfall/internal/screen"
)

// Load reads the application configuration.
// Search order: customPath -> ~/.starfall/config.yaml -> ./configs/starfall.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (AppConfig, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Default(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = Default()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/starfall.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = Default()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".starfall", filename)
}

// ApplyEnv overrides cfg with STARFALL_* environment variables.
func ApplyEnv(cfg *AppConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// applyEnvFrom is ApplyEnv over an explicit environment.
func applyEnvFrom(cfg *AppConfig, environ map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate replaces out-of-range values with defaults and returns a
// description of every fix, for the caller to log.
func (c *AppConfig) Validate() []string {
	def := Default()
	var fixes []string
	fix := func(field string, got, want any) {
		fixes = append(fixes, fmt.Sprintf("%s: %v out of range, using %v", field, got, want))
	}

	if c.Window.Width < 40 || c.Window.Width > 400 {
		fix("window.width", c.Window.Width, def.Window.Width)
		c.Window.Width = def.Window.Width
	}
	if c.Window.Height < 16 || c.Window.Height > 200 {
		fix("window.height", c.Window.Height, def.Window.Height)
		c.Window.Height = def.Window.Height
	}
	if c.Window.Scale < 1 || c.Window.Scale > 4 {
		fix("window.scale", c.Window.Scale, def.Window.Scale)
		c.Window.Scale = def.Window.Scale
	}
	if c.TickRate < 1 || c.TickRate > 240 {
		fix("tick_rate", c.TickRate, def.TickRate)
		c.TickRate = def.TickRate
	}
	if c.HistoryLimit < 1 {
		fix("history_limit", c.HistoryLimit, def.HistoryLimit)
		c.HistoryLimit = def.HistoryLimit
	}
	if _, err := screen.ParseID(c.StartScreen); err != nil {
		fix("start_screen", c.StartScreen, def.StartScreen)
		c.StartScreen = def.StartScreen
	}
	if c.AutosaveInterval < 0 {
		fix("autosave_interval", c.AutosaveInterval, def.AutosaveInterval)
		c.AutosaveInterval = def.AutosaveInterval
	}
	if c.LoadingDuration < 0 || c.LoadingDuration > time.Minute {
		fix("loading_duration", c.LoadingDuration, def.LoadingDuration)
		c.LoadingDuration = def.LoadingDuration
	}

	g, dg := &c.Gameplay, def.Gameplay
	if g.Lives < 1 {
		fix("gameplay.lives", g.Lives, dg.Lives)
		g.Lives = dg.Lives
	}
	if g.StarsToWin < 1 {
		fix("gameplay.stars_to_win", g.StarsToWin, dg.StarsToWin)
		g.StarsToWin = dg.StarsToWin
	}
	if g.SpawnInterval <= 0 {
		fix("gameplay.spawn_interval", g.SpawnInterval, dg.SpawnInterval)
		g.SpawnInterval = dg.SpawnInterval
	}
	if g.FallSpeed <= 0 {
		fix("gameplay.fall_speed", g.FallSpeed, dg.FallSpeed)
		g.FallSpeed = dg.FallSpeed
	}
	if g.PlayerSpeed <= 0 {
		fix("gameplay.player_speed", g.PlayerSpeed, dg.PlayerSpeed)
		g.PlayerSpeed = dg.PlayerSpeed
	}
	if g.PlayerWidth < 1 || g.PlayerWidth > c.Window.Width/2 {
		fix("gameplay.player_width", g.PlayerWidth, dg.PlayerWidth)
		g.PlayerWidth = dg.PlayerWidth
	}
	if g.RockRatio < 0 || g.RockRatio > 1 {
		fix("gameplay.rock_ratio", g.RockRatio, dg.RockRatio)
		g.RockRatio = dg.RockRatio
	}
	return fixes
}

// ApplyPreset modifies the gameplay config based on a difficulty preset.
func ApplyPreset(cfg *GameplayConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Lives = 5
		cfg.PlayerWidth = 7
		cfg.RockRatio = 0.2
	case DifficultyHard:
		cfg.Lives = 2
		cfg.PlayerWidth = 4
		cfg.RockRatio = 0.45
	}
}
