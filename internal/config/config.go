// Package config provides YAML-based application configuration with
// environment overrides and difficulty management for the game.
package config

import "time"

// AppConfig is the whole application configuration.
type AppConfig struct {
	Window           WindowConfig   `yaml:"window"`
	TickRate         int            `yaml:"tick_rate" env:"STARFALL_TICK_RATE"`
	HistoryLimit     int            `yaml:"history_limit" env:"STARFALL_HISTORY_LIMIT"`
	SettingsPath     string         `yaml:"settings_path" env:"STARFALL_SETTINGS_PATH"`
	DBPath           string         `yaml:"db_path" env:"STARFALL_DB_PATH"`
	LogLevel         string         `yaml:"log_level" env:"STARFALL_LOG_LEVEL"`
	LogFile          string         `yaml:"log_file" env:"STARFALL_LOG_FILE"`
	StartScreen      string         `yaml:"start_screen"`
	DefaultLanguage  string         `yaml:"default_language" env:"STARFALL_LANGUAGE"`
	AutosaveInterval time.Duration  `yaml:"autosave_interval"`
	LoadingDuration  time.Duration  `yaml:"loading_duration"`
	Gameplay         GameplayConfig `yaml:"gameplay"`
}

// WindowConfig defines the canvas size in cells and the desktop scale.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Scale  int `yaml:"scale"` // Desktop pixels per cell column unit
}

// GameplayConfig contains the tuning of the falling-star game.
type GameplayConfig struct {
	Lives         int              `yaml:"lives"`
	StarsToWin    int              `yaml:"stars_to_win"`
	SpawnInterval float64          `yaml:"spawn_interval"` // Seconds between spawns
	FallSpeed     float64          `yaml:"fall_speed"`     // Cells per second
	PlayerSpeed   float64          `yaml:"player_speed"`   // Cells per second
	PlayerWidth   int              `yaml:"player_width"`
	RockRatio     float64          `yaml:"rock_ratio"` // Share of spawns that are rocks
	Difficulty    DifficultyConfig `yaml:"difficulty"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to fall speed at max difficulty
	SpawnReduction  float64 `yaml:"spawn_reduction"`  // Share of the spawn interval removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the valid presets.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset returns the preset named s, or false.
func ParsePreset(s string) (DifficultyPreset, bool) {
	for _, p := range Presets {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
