package main

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/storage"
)

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    config.DifficultyPreset
		wantErr bool
	}{
		{"", config.DifficultyNormal, false},
		{"hard", config.DifficultyHard, false},
		{"fixed", config.DifficultyFixed, false},
		{"insane", "", true},
	}
	for _, tt := range tests {
		got, err := parsePreset(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("parsePreset(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestScoreTable(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC)
	out := scoreTable([]storage.ScoreEntry{{Score: 120, CreatedAt: at}, {Score: 80, CreatedAt: at}})
	for _, want := range []string{"Rank", "120", "80", "2026-01-02 03:04"} {
		if !strings.Contains(out, want) {
			t.Errorf("scoreTable() missing %q:\n%s", want, out)
		}
	}
}

func TestHistoryTable(t *testing.T) {
	out := historyTable([]storage.CommandEvent{
		{Session: "s1", Kind: "recorded", Command: "Navigate(menu -> settings)", Cursor: 0},
		{Session: "s1", Kind: "failed", Command: "Escape", Cursor: -1, Error: "boom"},
	})
	for _, want := range []string{"Session", "recorded", "boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("historyTable() missing %q:\n%s", want, out)
		}
	}
}
