package screens

import (
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/screen"
)

// Pause is the modal pushed over Play.
type Pause struct {
	screen.Base
	d    *Deps
	list list
}

// NewPause creates the pause overlay.
func NewPause(d *Deps) *Pause {
	return &Pause{d: d, list: list{items: []string{
		d.Localizer.T("pause.resume"),
		d.Localizer.T("pause.menu"),
	}}}
}

// HandleInput implements screen.Screen.
func (s *Pause) HandleInput(in core.InputFrame) error {
	switch {
	case in.Has(core.ActionPause), in.Has(core.ActionBack):
		s.d.Manager.Pop()
	case in.Has(core.ActionUp):
		s.list.move(-1)
		s.d.Mixer.PlayMenuSound("move")
	case in.Has(core.ActionDown):
		s.list.move(1)
		s.d.Mixer.PlayMenuSound("move")
	case in.Has(core.ActionConfirm):
		s.d.Mixer.PlayMenuSound("select")
		if s.list.cursor == 0 {
			s.d.Manager.Pop()
			return nil
		}
		// Leaving drops the round underneath.
		return s.d.Manager.Reset(screen.Menu)
	}
	return nil
}

// Update implements screen.Screen.
func (s *Pause) Update(float64) error { return nil }

// Render implements screen.Screen.
func (s *Pause) Render(dst *core.Canvas) {
	box := core.CenteredRect(dst.Width(), dst.Height(), 30, 8)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorMuted)
	dst.DrawTextCentered(box.Y+2, s.d.Localizer.T("pause.title"), core.ColorTitle)
	s.list.render(dst, box.Y+4)
}
