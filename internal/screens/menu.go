package screens

import (
	"github.com/vovakirdan/starfall/internal/command"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/screen"
)

type menuEntry struct {
	key    string
	target screen.ID
	quit   bool
}

var menuEntries = []menuEntry{
	{key: "menu.play", target: screen.Play},
	{key: "menu.settings", target: screen.Settings},
	{key: "menu.help", target: screen.Help},
	{key: "menu.about", target: screen.About},
	{key: "menu.quit", quit: true},
}

// Menu is the main menu. Every navigation goes through the invoker so it
// can be undone.
type Menu struct {
	screen.Base
	d    *Deps
	list list
	best int
	logo []string
}

// NewMenu creates the main menu.
func NewMenu(d *Deps) *Menu {
	return &Menu{d: d}
}

// OnEnter implements screen.Screen.
func (s *Menu) OnEnter() {
	s.logo = s.d.Assets.TextureOr("logo").Lines
	s.refresh()
}

// OnResume implements screen.Screen.
func (s *Menu) OnResume() { s.refresh() }

func (s *Menu) refresh() {
	items := make([]string, len(menuEntries))
	for i, e := range menuEntries {
		items[i] = s.d.Localizer.T(e.key)
	}
	s.list.items = items

	s.best = 0
	if s.d.Scores != nil {
		best, err := s.d.Scores.HighScore(s.d.mode())
		if err != nil {
			s.d.logger("screen").Warn("cannot read high score", "error", err)
		}
		s.best = best
	}
}

// Selected returns the entry under the cursor.
func (s *Menu) Selected() int { return s.list.cursor }

// HandleInput implements screen.Screen.
func (s *Menu) HandleInput(in core.InputFrame) error {
	if ok, err := history(s.d, in); ok {
		return err
	}

	switch {
	case in.Has(core.ActionUp):
		s.list.move(-1)
		s.d.Mixer.PlayMenuSound("move")
	case in.Has(core.ActionDown):
		s.list.move(1)
		s.d.Mixer.PlayMenuSound("move")
	case in.Has(core.ActionConfirm):
		s.d.Mixer.PlayMenuSound("select")
		return s.activate(menuEntries[s.list.cursor])
	}
	return nil
}

func (s *Menu) activate(e menuEntry) error {
	if e.quit {
		return s.d.Invoker.Execute(command.NewExit(s.d.Terminator))
	}
	return s.d.Invoker.Execute(command.NewNavigate(s.d.Manager, e.target, screen.Menu))
}

// Update implements screen.Screen.
func (s *Menu) Update(float64) error { return nil }

// Render implements screen.Screen.
func (s *Menu) Render(dst *core.Canvas) {
	l := s.d.Localizer
	y := dst.DrawLines(1, s.logo, core.ColorTitle)
	dst.DrawTextCentered(y+1, l.T("menu.subtitle"), core.ColorMuted)

	s.list.render(dst, y+3)

	if s.best > 0 {
		dst.DrawTextCentered(y+4+len(s.list.items), l.Tf("menu.high_score", s.best), core.ColorHighlight)
	}
	footer(dst, l.T("common.hint"))
}
