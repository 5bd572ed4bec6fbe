// Package screens implements the concrete Starfall screens and registers
// their factories with a screen.Manager.
package screens

import (
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starfall/internal/audio"
	"github.com/vovakirdan/starfall/internal/command"
	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/gameplay"
	"github.com/vovakirdan/starfall/internal/i18n"
	"github.com/vovakirdan/starfall/internal/logging"
	"github.com/vovakirdan/starfall/internal/resource"
	"github.com/vovakirdan/starfall/internal/screen"
	"github.com/vovakirdan/starfall/internal/settings"
	"github.com/vovakirdan/starfall/internal/storage"
)

// Textures preloaded by the Loading screen.
var Textures = []string{"logo", "star", "rock", "ship", "trophy", "skull"}

// ScoreStore is the part of storage.Store the screens use.
type ScoreStore interface {
	SaveScore(mode string, score int) (int64, error)
	TopScores(mode string, limit int) ([]storage.ScoreEntry, error)
	HighScore(mode string) (int, error)
}

// Result is the outcome of the last finished round.
type Result struct {
	State   gameplay.State
	Score   int
	Stars   int
	Best    int
	NewBest bool
}

// Deps are the services shared by all screens of one App.
type Deps struct {
	Manager   *screen.Manager
	Invoker   *command.Invoker
	Logger    *log.Logger
	Settings  *settings.Settings
	File      *settings.File
	Mixer     *audio.Mixer
	Localizer *i18n.Localizer
	Assets    *resource.Assets
	Scores    ScoreStore // may be nil

	Gameplay   config.GameplayConfig
	Preset     config.DifficultyPreset
	Seed       func() int64
	Size       func() (int, int) // Canvas size in cells
	Terminator command.Terminator
	Clipboard  func(string) error
	HelpLines  []string
	Version    string

	AutosaveInterval time.Duration
	LoadingDuration  time.Duration

	// Last is written by Play and read by the result screens.
	Last Result
}

// mode is the scores table key for the current difficulty.
func (d *Deps) mode() string {
	if d.Preset == "" {
		return string(config.DifficultyNormal)
	}
	return string(d.Preset)
}

func (d *Deps) size() (int, int) {
	if d.Size == nil {
		return 80, 24
	}
	return d.Size()
}

func (d *Deps) seed() int64 {
	if d.Seed == nil {
		return 1
	}
	return d.Seed()
}

func (d *Deps) logger(prefix string) *log.Logger {
	return logging.OrDiscard(d.Logger).WithPrefix(prefix)
}

// RegisterAll registers a factory for every screen identity.
func RegisterAll(mgr *screen.Manager, d *Deps) {
	mgr.Register(screen.Loading, func() screen.Screen { return NewLoading(d) })
	mgr.Register(screen.Menu, func() screen.Screen { return NewMenu(d) })
	mgr.Register(screen.Settings, func() screen.Screen { return NewSettings(d) })
	mgr.Register(screen.Help, func() screen.Screen { return NewHelp(d) })
	mgr.Register(screen.About, func() screen.Screen { return NewAbout(d) })
	mgr.Register(screen.Play, func() screen.Screen { return NewPlay(d) })
	mgr.Register(screen.Pause, func() screen.Screen { return NewPause(d) })
	mgr.Register(screen.GameOver, func() screen.Screen { return NewResults(d, screen.GameOver) })
	mgr.Register(screen.Winning, func() screen.Screen { return NewResults(d, screen.Winning) })
}

// history handles the undo/redo/history keys shared by the simple screens.
// It reports whether the frame was consumed.
func history(d *Deps, in core.InputFrame) (bool, error) {
	switch {
	case in.Has(core.ActionUndo):
		_, err := d.Invoker.TryUndo()
		return true, err
	case in.Has(core.ActionRedo):
		_, err := d.Invoker.TryRedo()
		return true, err
	case in.Has(core.ActionHistory):
		d.logger("command").Info("command history\n" + d.Invoker.HistoryString())
		return true, nil
	case in.Has(core.ActionCopy):
		if d.Clipboard != nil {
			if err := d.Clipboard(d.Invoker.HistoryString()); err != nil {
				d.logger("command").Warn("cannot copy history", "error", err)
			}
		}
		return true, nil
	}
	return false, nil
}

// list is a vertical selection with wrap-around.
type list struct {
	items  []string
	cursor int
}

func (l *list) move(delta int) {
	n := len(l.items)
	if n == 0 {
		return
	}
	l.cursor = ((l.cursor+delta)%n + n) % n
}

func (l *list) render(dst *core.Canvas, y int) {
	for i, item := range l.items {
		if i == l.cursor {
			dst.DrawTextCentered(y+i, "> "+item+" <", core.ColorSelected)
		} else {
			dst.DrawTextCentered(y+i, item, core.ColorDefault)
		}
	}
}

// header draws a title with an underline and returns the next free row.
func header(dst *core.Canvas, title string) int {
	dst.DrawTextCentered(1, title, core.ColorTitle)
	dst.DrawHLine(2, 2, dst.Width()-4, '─', core.ColorMuted)
	return 4
}

// block draws lines left-aligned inside a horizontally centered column.
func block(dst *core.Canvas, y int, lines []string, color core.Color) int {
	w := 0
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l))
	}
	x := max(0, (dst.Width()-w)/2)
	for i, l := range lines {
		dst.DrawTextColored(x, y+i, l, color)
	}
	return y + len(lines)
}

// footer draws the key hint on the last row.
func footer(dst *core.Canvas, text string) {
	dst.DrawTextCentered(dst.Height()-1, text, core.ColorMuted)
}
