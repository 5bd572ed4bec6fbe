package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg AppConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v\nexpected %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "tick_rate: 30\nhistory_limit: 10\ngameplay:\n  lives: 9\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.TickRate != 30 || cfg.HistoryLimit != 10 || cfg.Gameplay.Lives != 9 {
		t.Errorf("Load() = %+v", cfg)
	}
	if cfg.Gameplay.StarsToWin != Default().Gameplay.StarsToWin {
		t.Error("Missing fields should keep defaults")
	}
	if cfg.AutosaveInterval != 5*time.Second {
		t.Errorf("AutosaveInterval = %v, expected 5s", cfg.AutosaveInterval)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	_ = os.WriteFile(path, []byte("tick_rate: [oops"), 0o644)
	cfg, err := Load(path)
	if err == nil {
		t.Error("Load() of malformed yaml should fail")
	}
	if cfg != Default() {
		t.Error("Malformed config should return defaults")
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := applyEnvFrom(&cfg, map[string]string{
		"STARFALL_TICK_RATE":     "120",
		"STARFALL_HISTORY_LIMIT": "7",
		"STARFALL_DB_PATH":       "/tmp/x.db",
		"STARFALL_LANGUAGE":      "fr",
	})
	if err != nil {
		t.Fatalf("applyEnvFrom() failed: %v", err)
	}

	if cfg.TickRate != 120 || cfg.HistoryLimit != 7 {
		t.Errorf("TickRate=%d HistoryLimit=%d", cfg.TickRate, cfg.HistoryLimit)
	}
	if cfg.DBPath != "/tmp/x.db" || cfg.DefaultLanguage != "fr" {
		t.Errorf("DBPath=%q DefaultLanguage=%q", cfg.DBPath, cfg.DefaultLanguage)
	}
	if cfg.SettingsPath != Default().SettingsPath {
		t.Error("Unset variables must not touch fields")
	}

	bad := Default()
	if err := applyEnvFrom(&bad, map[string]string{"STARFALL_TICK_RATE": "fast"}); err == nil {
		t.Error("Non-numeric tick rate should fail")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if fixes := cfg.Validate(); len(fixes) != 0 {
		t.Errorf("Default config should be valid, got %v", fixes)
	}

	cfg.TickRate = 0
	cfg.HistoryLimit = -3
	cfg.StartScreen = "nowhere"
	cfg.Gameplay.RockRatio = 2
	fixes := cfg.Validate()

	if len(fixes) != 4 {
		t.Errorf("Validate() fixes = %v, expected 4", fixes)
	}
	if cfg.TickRate != 60 || cfg.HistoryLimit != 50 || cfg.StartScreen != "loading" {
		t.Errorf("Validate() did not restore defaults: %+v", cfg)
	}
	if !strings.Contains(fixes[0], "tick_rate") {
		t.Errorf("first fix = %q", fixes[0])
	}
}

func TestDifficultyLevel(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, SpawnReduction: 0.5},
	})

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0.2},
		{5, 0.6},
		{10, 1.0},
		{50, 1.0},
	}
	for _, tc := range tests {
		if got := dm.Level(tc.score, 0); got < tc.want-1e-9 || got > tc.want+1e-9 {
			t.Errorf("Level(%d) = %f, expected %f", tc.score, got, tc.want)
		}
	}

	if got := dm.FallSpeed(4, 10, 0); got != 8 {
		t.Errorf("FallSpeed at max = %f, expected 8", got)
	}
	if got := dm.SpawnInterval(1, 10, 0); got != 0.5 {
		t.Errorf("SpawnInterval at max = %f, expected 0.5", got)
	}
}

func TestDifficultyTimeAndFixed(t *testing.T) {
	timed := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 60},
	})
	if got := timed.Level(999, 30); got != 0.5 {
		t.Errorf("Level at 30s = %f, expected 0.5", got)
	}

	cfg := Default().Gameplay
	ApplyPreset(&cfg, DifficultyFixed)
	fixed := NewDifficultyManager(cfg.Difficulty)
	if fixed.IsEnabled() || fixed.Level(1000, 1000) != cfg.Difficulty.InitialLevel {
		t.Error("Fixed preset should disable progression")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := Default().Gameplay
	ApplyPreset(&cfg, DifficultyHard)

	if cfg.Lives != 2 || cfg.Difficulty.InitialLevel != 0.7 || !cfg.Difficulty.Enabled {
		t.Errorf("hard preset = %+v", cfg)
	}
	if p, ok := ParsePreset("easy"); !ok || p != DifficultyEasy {
		t.Error("ParsePreset(easy) failed")
	}
	if _, ok := ParsePreset("insane"); ok {
		t.Error("ParsePreset(insane) should fail")
	}
}
