package screens

import (
	"strings"

	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/screen"
)

// Loading loads the settings, preloads textures over LoadingDuration and
// then changes to the Menu. Confirm skips the wait.
type Loading struct {
	screen.Base
	d        *Deps
	elapsed  float64
	loaded   int
	done     bool
	logoRows []string
}

// NewLoading creates the loading screen.
func NewLoading(d *Deps) *Loading {
	return &Loading{d: d}
}

// OnEnter loads the persisted settings and applies them.
func (s *Loading) OnEnter() {
	d := s.d
	if d.File != nil && d.Settings != nil {
		d.File.Load(d.Settings)
	}
	applySettings(d)
	s.logoRows = d.Assets.TextureOr("logo").Lines
}

// applySettings pushes the settings into the mixer and the localizer.
func applySettings(d *Deps) {
	if d.Settings == nil {
		return
	}
	if d.Mixer != nil {
		d.Mixer.ApplySettings(*d.Settings)
	}
	if d.Localizer != nil {
		lang := d.Localizer.Catalog().Match(d.Settings.Language)
		if err := d.Localizer.Set(lang); err != nil {
			d.logger("settings").Warn("cannot apply language", "language", d.Settings.Language, "error", err)
		}
	}
}

// Progress returns the loading progress in [0, 1].
func (s *Loading) Progress() float64 {
	total := s.d.LoadingDuration.Seconds()
	if total <= 0 {
		return 1
	}
	return core.Clamp(s.elapsed/total, 0, 1)
}

// HandleInput skips the remaining load time on Confirm.
func (s *Loading) HandleInput(in core.InputFrame) error {
	if in.Has(core.ActionConfirm) {
		s.elapsed = s.d.LoadingDuration.Seconds()
	}
	return nil
}

// Update preloads textures in step with progress and changes to Menu
// when done.
func (s *Loading) Update(dt float64) error {
	if s.done {
		return nil
	}
	s.elapsed += dt
	p := s.Progress()

	want := int(p * float64(len(Textures)))
	if want > s.loaded {
		s.d.Assets.Preload(Textures[s.loaded:want]...)
		s.loaded = want
	}
	if p < 1 {
		return nil
	}
	s.done = true
	return s.d.Manager.Change(screen.Menu)
}

// Render implements screen.Screen.
func (s *Loading) Render(dst *core.Canvas) {
	l := s.d.Localizer
	y := max(1, dst.Height()/2-len(s.logoRows)-2)
	y = dst.DrawLines(y, s.logoRows, core.ColorTitle) + 1
	dst.DrawTextCentered(y, l.T("loading.title"), core.ColorHighlight)

	barW := min(40, dst.Width()-4)
	filled := int(s.Progress() * float64(barW))
	bar := "[" + strings.Repeat("█", filled) + strings.Repeat("░", barW-filled) + "]"
	dst.DrawTextCentered(y+2, bar, core.ColorSelected)
	dst.DrawTextCentered(y+3, l.Tf("loading.progress", int(s.Progress()*100)), core.ColorMuted)
	if s.loaded > 0 && s.loaded <= len(Textures) {
		dst.DrawTextCentered(y+4, l.Tf("loading.asset", Textures[s.loaded-1]), core.ColorMuted)
	}
}
