package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/logging"
	"github.com/vovakirdan/starfall/internal/screen"
	"github.com/vovakirdan/starfall/internal/settings"
	"github.com/vovakirdan/starfall/internal/storage"
)

func testConfig(t *testing.T) config.AppConfig {
	t.Helper()
	cfg := config.Default()
	dir := t.TempDir()
	cfg.SettingsPath = filepath.Join(dir, "settings.txt")
	cfg.DBPath = filepath.Join(dir, "starfall.db")
	cfg.LoadingDuration = 100 * time.Millisecond
	return cfg
}

func newTestApp(t *testing.T, cfg config.AppConfig) (*App, *storage.Store) {
	t.Helper()
	store, err := storage.Open(storage.MemoryPath)
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	a, err := New(Options{Config: cfg, Store: store, CloseStore: true, Seed: 3, Session: "test"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	t.Cleanup(func() { _ = a.Shutdown() })
	return a, store
}

func step(t *testing.T, a *App, actions ...core.Action) {
	t.Helper()
	if err := a.Frame(core.FrameOf(actions...), 1.0/60); err != nil {
		t.Fatalf("Frame() failed: %v", err)
	}
}

func TestStartsOnLoadingThenMenu(t *testing.T) {
	a, _ := newTestApp(t, testConfig(t))

	if id, _ := a.Manager().Current(); id != screen.Loading {
		t.Fatalf("current = %v, expected loading", id)
	}
	for range 10 {
		step(t, a)
	}
	if id, _ := a.Manager().Current(); id != screen.Menu {
		t.Errorf("current = %v, expected menu", id)
	}

	c := a.Render()
	if c.Width() != 80 || c.Height() != 24 {
		t.Errorf("canvas = %dx%d, expected 80x24", c.Width(), c.Height())
	}
}

func TestQuitRequestsExit(t *testing.T) {
	a, _ := newTestApp(t, testConfig(t))

	step(t, a, core.ActionQuit)

	if !a.ExitRequested() {
		t.Error("ExitRequested() = false after quit")
	}
	if a.Invoker().Len() != 0 {
		t.Error("Exit should not enter the history")
	}
}

func TestUnknownStartScreen(t *testing.T) {
	cfg := testConfig(t)
	cfg.StartScreen = "credits"
	if _, err := New(Options{Config: cfg}); err == nil {
		t.Error("New() should fail for an unknown start screen")
	}
}

func TestCommandEventsAreStored(t *testing.T) {
	cfg := testConfig(t)
	cfg.StartScreen = "menu"
	a, store := newTestApp(t, cfg)

	step(t, a, core.ActionDown)
	step(t, a, core.ActionConfirm)
	step(t, a, core.ActionUndo)

	events, err := store.RecentEvents("test", 10)
	if err != nil {
		t.Fatalf("RecentEvents() failed: %v", err)
	}
	if len(events) != 2 || events[0].Kind != "undone" || events[1].Kind != "recorded" {
		t.Errorf("events = %+v", events)
	}
}

func TestShutdownSavesSettingsOnce(t *testing.T) {
	cfg := testConfig(t)
	cfg.StartScreen = "menu"
	var logs bytes.Buffer
	store, _ := storage.Open(storage.MemoryPath)
	a, err := New(Options{Config: cfg, Store: store, CloseStore: true, Logger: logging.New(&logs, "info", "test")})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	a.Settings().MusicVolume = 12
	if err := a.Shutdown(); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}
	if err := a.Shutdown(); err != nil {
		t.Errorf("second Shutdown() = %v", err)
	}
	if n := strings.Count(logs.String(), "client stopped"); n != 1 {
		t.Errorf("shutdown ran %d times", n)
	}
	if a.Manager().Depth() != 0 {
		t.Error("Shutdown should close every screen")
	}

	loaded := settings.Default()
	if !settings.NewFile(cfg.SettingsPath, nil).Load(&loaded) || loaded.MusicVolume != 12 {
		t.Errorf("saved music volume = %d, expected 12", loaded.MusicVolume)
	}
}

func TestSettingsFileIsLoadedAtStart(t *testing.T) {
	cfg := testConfig(t)
	cfg.StartScreen = "menu"
	if err := os.WriteFile(cfg.SettingsPath, []byte("language=fr\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	a, _ := newTestApp(t, cfg)
	if a.Localizer().Language() != "fr" {
		t.Errorf("Language() = %q, expected fr", a.Localizer().Language())
	}
}

func TestTerminatorErrorIsReturned(t *testing.T) {
	boom := errors.New("boom")
	cfg := testConfig(t)
	a, err := New(Options{Config: cfg, Terminator: func() error { return boom }})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer a.Shutdown()

	if err := a.Frame(core.FrameOf(core.ActionQuit), 0); !errors.Is(err, boom) {
		t.Errorf("Frame() = %v, expected boom", err)
	}
}

func TestResize(t *testing.T) {
	a, _ := newTestApp(t, testConfig(t))
	a.Resize(100, 30)
	a.Resize(0, 10)
	if a.Canvas().Width() != 100 || a.Canvas().Height() != 30 {
		t.Errorf("canvas = %dx%d, expected 100x30", a.Canvas().Width(), a.Canvas().Height())
	}
}
