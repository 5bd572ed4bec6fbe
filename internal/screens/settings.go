package screens

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/starfall/internal/command"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/screen"
	"github.com/vovakirdan/starfall/internal/settings"
	"github.com/vovakirdan/starfall/internal/settings/coord"
)

// VolumeStep is how much one left/right press changes a volume.
const VolumeStep = 5

const savedFlash = 1.5 // Seconds the "saved" notice stays visible

type rowKind int

const (
	rowVolume rowKind = iota
	rowToggle
	rowLanguage
)

type settingsRow struct {
	key   string
	label string
	kind  rowKind
}

var settingsRows = []settingsRow{
	{settings.KeyMasterVolume, "settings.master_volume", rowVolume},
	{settings.KeyMusicVolume, "settings.music_volume", rowVolume},
	{settings.KeySfxVolume, "settings.sfx_volume", rowVolume},
	{settings.KeyMenuSoundsEnabled, "settings.menu_sounds", rowToggle},
	{settings.KeyMenuSoundVolume, "settings.menu_sound_volume", rowVolume},
	{settings.KeyLanguage, "settings.language", rowLanguage},
}

// Settings edits the persisted settings. Each change is a command, so the
// input handler's undo/redo walk through edits and navigation alike.
type Settings struct {
	screen.Base
	d        *Deps
	cursor   int
	changes  int
	input    *coord.InputHandler
	exec     *coord.CommandExecutor
	autosave *coord.AutoSaveManager
	saves    int
	flash    float64
}

// NewSettings creates the settings screen and its coordination pipeline.
func NewSettings(d *Deps) *Settings {
	logger := d.logger("settings")
	s := &Settings{d: d}
	s.autosave = coord.NewAutoSaveManager(s.save, d.AutosaveInterval, logger)
	s.exec = coord.NewCommandExecutor(d.Invoker, d.Manager, screen.Settings, s.autosave, logger)
	s.exec.SetClipboard(d.Clipboard)
	s.input = coord.NewInputHandler(logger)
	s.exec.Bind(s.input)
	return s
}

func (s *Settings) save() bool {
	if s.d.File == nil {
		return true
	}
	return s.d.File.Save(*s.d.Settings)
}

// OnExit flushes pending changes when the screen is left by undo or redo.
func (s *Settings) OnExit() {
	if s.autosave.Dirty() {
		s.autosave.SaveNow()
	}
}

// Cursor returns the selected row.
func (s *Settings) Cursor() int { return s.cursor }

// Dirty reports whether unsaved changes exist.
func (s *Settings) Dirty() bool { return s.autosave.Dirty() }

// HandleInput implements screen.Screen.
func (s *Settings) HandleInput(in core.InputFrame) error {
	if handled, err := s.input.Handle(in); handled {
		return err
	}

	switch {
	case in.Has(core.ActionUp):
		s.cursor = (s.cursor + len(settingsRows) - 1) % len(settingsRows)
		s.d.Mixer.PlayMenuSound("move")
	case in.Has(core.ActionDown):
		s.cursor = (s.cursor + 1) % len(settingsRows)
		s.d.Mixer.PlayMenuSound("move")
	case in.Has(core.ActionLeft):
		return s.adjust(-1)
	case in.Has(core.ActionRight), in.Has(core.ActionConfirm):
		return s.adjust(1)
	}
	return nil
}

// adjust changes the selected row one step in dir.
func (s *Settings) adjust(dir int) error {
	row := settingsRows[s.cursor]
	var cmd command.Command

	switch row.kind {
	case rowVolume:
		ptr := s.volume(row.key)
		next := core.Clamp(*ptr+dir*VolumeStep, 0, settings.MaxVolume)
		if next == *ptr {
			return nil
		}
		cmd = command.NewSetValue(row.key,
			func() int { return *ptr },
			func(v int) { *ptr = v; applySettings(s.d) },
			next)
	case rowToggle:
		st := s.d.Settings
		cmd = command.NewSetValue(row.key,
			func() bool { return st.MenuSoundsEnabled },
			func(v bool) { st.MenuSoundsEnabled = v; applySettings(s.d) },
			!st.MenuSoundsEnabled)
	case rowLanguage:
		st := s.d.Settings
		current := s.d.Localizer.Catalog().Match(st.Language)
		next := s.d.Localizer.Catalog().Next(current, dir)
		if next == current {
			return nil
		}
		cmd = command.NewSetValue(row.key,
			func() string { return st.Language },
			func(v string) { st.Language = v; applySettings(s.d) },
			next)
	}

	if err := s.exec.Execute(cmd); err != nil {
		return err
	}
	s.changes++
	s.d.Mixer.PlayMenuSound("change")
	return nil
}

func (s *Settings) volume(key string) *int {
	st := s.d.Settings
	switch key {
	case settings.KeyMusicVolume:
		return &st.MusicVolume
	case settings.KeySfxVolume:
		return &st.SfxVolume
	case settings.KeyMenuSoundVolume:
		return &st.MenuSoundVolume
	default:
		return &st.MasterVolume
	}
}

// Update drives the autosave timer and the saved notice.
func (s *Settings) Update(dt float64) error {
	s.autosave.Update(dt)
	if n := s.autosave.Saves(); n != s.saves {
		s.saves = n
		s.flash = savedFlash
	} else if s.flash > 0 {
		s.flash -= dt
	}
	return nil
}

// Render implements screen.Screen.
func (s *Settings) Render(dst *core.Canvas) {
	l := s.d.Localizer
	y := header(dst, l.T("settings.title"))

	labelX := max(2, dst.Width()/2-24)
	valueX := labelX + 24
	for i, row := range settingsRows {
		color := core.ColorDefault
		marker := "  "
		if i == s.cursor {
			color = core.ColorSelected
			marker = "> "
		}
		dst.DrawTextColored(labelX, y+i*2, marker+l.T(row.label), color)
		dst.DrawTextColored(valueX, y+i*2, s.value(row), color)
	}

	status := y + len(settingsRows)*2 + 1
	if s.changes > 0 {
		dst.DrawTextCentered(status, l.Tf("settings.changes", s.changes), core.ColorMuted)
	}
	if s.flash > 0 {
		dst.DrawTextCentered(status+1, l.T("settings.saved"), core.ColorBrightGreen)
	}
	footer(dst, l.T("common.hint"))
}

func (s *Settings) value(row settingsRow) string {
	l := s.d.Localizer
	switch row.kind {
	case rowToggle:
		if s.d.Settings.MenuSoundsEnabled {
			return l.T("common.on")
		}
		return l.T("common.off")
	case rowLanguage:
		return "< " + l.Catalog().DisplayName(l.Catalog().Match(s.d.Settings.Language)) + " >"
	default:
		v := *s.volume(row.key)
		filled := v / 10
		return fmt.Sprintf("[%s%s] %3d", strings.Repeat("#", filled), strings.Repeat("-", 10-filled), v)
	}
}
