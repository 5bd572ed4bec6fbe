package screens

import (
	"github.com/vovakirdan/starfall/internal/command"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/screen"
)

// Info is a read-only page (Help or About). Back leaves it with an
// Escape command.
type Info struct {
	screen.Base
	d     *Deps
	id    screen.ID
	title string
	lines func() []string
	art   []string
}

// NewHelp lists the goal and the key bindings.
func NewHelp(d *Deps) *Info {
	return &Info{
		d:     d,
		id:    screen.Help,
		title: "help.title",
		lines: func() []string {
			lines := []string{d.Localizer.T("help.goal"), ""}
			return append(lines, d.HelpLines...)
		},
	}
}

// NewAbout shows the about text.
func NewAbout(d *Deps) *Info {
	return &Info{
		d:     d,
		id:    screen.About,
		title: "about.title",
		lines: func() []string {
			l := d.Localizer
			return []string{l.T("about.line1"), l.T("about.line2"), "", l.Tf("about.version", d.Version)}
		},
	}
}

// OnEnter implements screen.Screen.
func (s *Info) OnEnter() {
	if s.id == screen.About {
		s.art = s.d.Assets.TextureOr("star").Lines
	}
}

// HandleInput implements screen.Screen.
func (s *Info) HandleInput(in core.InputFrame) error {
	if ok, err := history(s.d, in); ok {
		return err
	}
	if in.Has(core.ActionBack) || in.Has(core.ActionConfirm) {
		s.d.Mixer.PlayMenuSound("back")
		return s.d.Invoker.Execute(command.NewEscape(s.d.Manager, s.id))
	}
	return nil
}

// Update implements screen.Screen.
func (s *Info) Update(float64) error { return nil }

// Render implements screen.Screen.
func (s *Info) Render(dst *core.Canvas) {
	l := s.d.Localizer
	y := header(dst, l.T(s.title))
	if len(s.art) > 0 {
		y = dst.DrawLines(y, s.art, core.ColorBrightYellow) + 1
	}
	block(dst, y, s.lines(), core.ColorDefault)
	footer(dst, l.T("common.back")+": esc")
}
