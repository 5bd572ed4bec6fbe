// Package app wires the services, the screen manager and the command
// invoker into one frame-driven client. Platforms (terminal, SSH, desktop)
// own an App and call Frame and Render once per tick.
package app

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starfall/internal/audio"
	"github.com/vovakirdan/starfall/internal/command"
	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/i18n"
	"github.com/vovakirdan/starfall/internal/logging"
	"github.com/vovakirdan/starfall/internal/resource"
	"github.com/vovakirdan/starfall/internal/screen"
	"github.com/vovakirdan/starfall/internal/screens"
	"github.com/vovakirdan/starfall/internal/settings"
	"github.com/vovakirdan/starfall/internal/settings/coord"
	"github.com/vovakirdan/starfall/internal/storage"
)

// Version is reported by the About screen and the CLI.
const Version = "0.3.0"

// Options configure an App.
type Options struct {
	Config config.AppConfig
	Logger *log.Logger
	// Store keeps scores and the command event log. It may be nil.
	Store *storage.Store
	// CloseStore makes Shutdown close Store.
	CloseStore bool
	// Sink plays sounds. Defaults to a debug-logging sink.
	Sink      audio.Sink
	Clipboard func(string) error
	// Terminator runs when an Exit command executes. Defaults to
	// RequestExit, which lets the platform stop its loop.
	Terminator command.Terminator
	Preset     config.DifficultyPreset
	// Seed fixes the gameplay RNG. Zero seeds every round from the clock.
	Seed      int64
	HelpLines []string
	Session   string
	// Shared assets, for servers running many Apps. Optional.
	Assets *resource.Assets
}

// App is one running client: one screen stack and one command history.
type App struct {
	logger   *log.Logger
	cfg      config.AppConfig
	manager  *screen.Manager
	invoker  *command.Invoker
	values   *settings.Settings
	file     *settings.File
	mixer    *audio.Mixer
	loc      *i18n.Localizer
	store    *storage.Store
	closeDB  bool
	events   *coord.EventLogger
	deps     *screens.Deps
	canvas   *core.Canvas
	term     command.Terminator
	exit     bool
	shutdown sync.Once
}

// New builds an App and enters the configured start screen.
func New(opts Options) (*App, error) {
	cfg := opts.Config
	logger := logging.OrDiscard(opts.Logger)

	start, err := screen.ParseID(cfg.StartScreen)
	if err != nil {
		return nil, fmt.Errorf("app: start screen: %w", err)
	}

	values := settings.Default()
	if cfg.DefaultLanguage != "" {
		values.Language = cfg.DefaultLanguage
	}
	var file *settings.File
	if cfg.SettingsPath != "" {
		file = settings.NewFile(cfg.SettingsPath, logger.WithPrefix("settings"))
		file.Load(&values)
	}

	a := &App{
		logger:  logger,
		cfg:     cfg,
		manager: screen.NewManager(logger.WithPrefix("screen")),
		invoker: command.NewInvoker(cfg.HistoryLimit, logger.WithPrefix("command")),
		values:  &values,
		file:    file,
		loc:     i18n.NewLocalizer(i18n.Default(), values.Language),
		store:   opts.Store,
		closeDB: opts.CloseStore,
		canvas:  core.NewCanvas(max(cfg.Window.Width, 1), max(cfg.Window.Height, 1)),
	}
	audioSink := opts.Sink
	if audioSink == nil {
		audioSink = audio.LogSink{Logger: logger.WithPrefix("audio")}
	}
	a.mixer = audio.NewMixer(audioSink, logger.WithPrefix("audio"))
	a.mixer.ApplySettings(values)

	assets := opts.Assets
	if assets == nil {
		assets = resource.Embedded(logger.WithPrefix("assets"))
	}

	session := opts.Session
	if session == "" {
		session = fmt.Sprintf("local-%d", time.Now().UnixNano())
	}
	// Keep a nil store out of the interfaces.
	var sink coord.EventSink
	var scores screens.ScoreStore
	if a.store != nil {
		sink, scores = a.store, a.store
	}
	a.events = coord.NewEventLogger(logger.WithPrefix("command"), sink, session)
	a.events.Attach(a.invoker)

	a.term = opts.Terminator
	if a.term == nil {
		a.term = a.RequestExit
	}

	gameplay := cfg.Gameplay
	if opts.Preset != "" {
		config.ApplyPreset(&gameplay, opts.Preset)
	}

	a.deps = &screens.Deps{
		Manager:          a.manager,
		Invoker:          a.invoker,
		Logger:           logger,
		Settings:         a.values,
		File:             a.file,
		Mixer:            a.mixer,
		Localizer:        a.loc,
		Assets:           assets,
		Scores:           scores,
		Gameplay:         gameplay,
		Preset:           opts.Preset,
		Seed:             seeder(opts.Seed),
		Size:             func() (int, int) { return a.canvas.Width(), a.canvas.Height() },
		Terminator:       a.term,
		Clipboard:        opts.Clipboard,
		HelpLines:        opts.HelpLines,
		Version:          Version,
		AutosaveInterval: cfg.AutosaveInterval,
		LoadingDuration:  cfg.LoadingDuration,
	}
	a.manager.Subscribe(func(t screen.Transition) {
		a.logger.Debug("screen transition", "kind", t.Kind, "to", t.To, "depth", t.Depth)
	})
	screens.RegisterAll(a.manager, a.deps)

	if err := a.manager.Change(start); err != nil {
		a.events.Detach()
		return nil, fmt.Errorf("app: enter %s: %w", start, err)
	}
	logger.Info("client started", "session", session, "screen", start)
	return a, nil
}

func seeder(seed int64) func() int64 {
	if seed != 0 {
		return func() int64 { return seed }
	}
	return func() int64 { return time.Now().UnixNano() }
}

// Frame runs one input -> update step. dt is in seconds. A returned error
// is fatal for the frame loop.
func (a *App) Frame(in core.InputFrame, dt float64) error {
	if in.Has(core.ActionQuit) {
		return a.invoker.Execute(command.NewExit(a.term))
	}
	if err := a.manager.HandleInput(in); err != nil {
		return err
	}
	return a.manager.Update(dt)
}

// Render draws the top screen into the app canvas and returns it.
func (a *App) Render() *core.Canvas {
	a.canvas.Clear()
	a.manager.Render(a.canvas)
	return a.canvas
}

// Resize changes the canvas size. Rounds started afterwards use it.
func (a *App) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	a.canvas.Resize(width, height)
}

// RequestExit marks the app as finished. It is the default terminator.
func (a *App) RequestExit() error {
	a.exit = true
	return nil
}

// ExitRequested reports whether an Exit command ran.
func (a *App) ExitRequested() bool { return a.exit }

// Manager returns the screen manager.
func (a *App) Manager() *screen.Manager { return a.manager }

// Invoker returns the command invoker.
func (a *App) Invoker() *command.Invoker { return a.invoker }

// Settings returns the live settings.
func (a *App) Settings() *settings.Settings { return a.values }

// Localizer returns the active localizer.
func (a *App) Localizer() *i18n.Localizer { return a.loc }

// Canvas returns the render target.
func (a *App) Canvas() *core.Canvas { return a.canvas }

// Shutdown saves the settings, closes every screen and the store. It is
// best effort and safe to call more than once.
func (a *App) Shutdown() error {
	var errs []error
	a.shutdown.Do(func() {
		a.manager.Close()
		if a.file != nil && !a.file.Save(*a.values) {
			errs = append(errs, errors.New("app: settings not saved"))
		}
		a.events.Detach()
		if a.store != nil && a.closeDB {
			if err := a.store.Close(); err != nil {
				errs = append(errs, fmt.Errorf("app: close store: %w", err))
			}
		}
		a.logger.Info("client stopped", "commands", a.invoker.Len())
	})
	return errors.Join(errs...)
}
