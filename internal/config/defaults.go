package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/starfall.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the hardcoded configuration used when nothing else
// can be read.
func Default() AppConfig {
	return AppConfig{
		Window: WindowConfig{
			Width:  80,
			Height: 24,
			Scale:  1,
		},
		TickRate:         60,
		HistoryLimit:     50,
		SettingsPath:     "~/.starfall/settings.txt",
		DBPath:           "~/.starfall/starfall.db",
		LogLevel:         "info",
		LogFile:          "~/.starfall/starfall.log",
		StartScreen:      "loading",
		DefaultLanguage:  "en",
		AutosaveInterval: 5 * time.Second,
		LoadingDuration:  1500 * time.Millisecond,
		Gameplay: GameplayConfig{
			Lives:         3,
			StarsToWin:    25,
			SpawnInterval: 0.9,
			FallSpeed:     6,
			PlayerSpeed:   30,
			PlayerWidth:   5,
			RockRatio:     0.3,
			Difficulty: DifficultyConfig{
				Enabled:      true,
				InitialLevel: 0.0,
				Progression: ProgressionConfig{
					Type:  "score",
					MaxAt: 20,
				},
				Scaling: ScalingConfig{
					SpeedMultiplier: 1.0,
					SpawnReduction:  0.5,
				},
			},
		},
	}
}
