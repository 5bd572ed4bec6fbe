package screens

import (
	"fmt"

	"github.com/vovakirdan/starfall/internal/command"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/screen"
	"github.com/vovakirdan/starfall/internal/storage"
)

const topScores = 5

// Results shows the outcome of the last round. It backs both GameOver and
// Winning.
type Results struct {
	screen.Base
	d    *Deps
	id   screen.ID
	list list
	art  []string
	top  []storage.ScoreEntry
}

// NewResults creates the result screen for id.
func NewResults(d *Deps, id screen.ID) *Results {
	return &Results{d: d, id: id, list: list{items: []string{
		d.Localizer.T("results.replay"),
		d.Localizer.T("results.menu"),
	}}}
}

// OnEnter loads the result art and the top scores of the current mode.
func (s *Results) OnEnter() {
	art := "skull"
	if s.id == screen.Winning {
		art = "trophy"
	}
	s.art = s.d.Assets.TextureOr(art).Lines

	if s.d.Scores == nil {
		return
	}
	top, err := s.d.Scores.TopScores(s.d.mode(), topScores)
	if err != nil {
		s.d.logger("screen").Warn("cannot load top scores", "error", err)
	}
	s.top = top
}

// HandleInput implements screen.Screen.
func (s *Results) HandleInput(in core.InputFrame) error {
	if ok, err := history(s.d, in); ok {
		return err
	}
	switch {
	case in.Has(core.ActionUp):
		s.list.move(-1)
	case in.Has(core.ActionDown):
		s.list.move(1)
	case in.Has(core.ActionBack):
		return s.toMenu()
	case in.Has(core.ActionConfirm):
		s.d.Mixer.PlayMenuSound("select")
		if s.list.cursor == 0 {
			return s.d.Manager.Change(screen.Play)
		}
		return s.toMenu()
	}
	return nil
}

func (s *Results) toMenu() error {
	return s.d.Invoker.Execute(command.NewEscape(s.d.Manager, s.id))
}

// Update implements screen.Screen.
func (s *Results) Update(float64) error { return nil }

// Render implements screen.Screen.
func (s *Results) Render(dst *core.Canvas) {
	l := s.d.Localizer
	title, color := l.T("game_over.title"), core.ColorBrightRed
	if s.id == screen.Winning {
		title, color = l.T("winning.title"), core.ColorBrightGreen
	}

	y := dst.DrawLines(1, s.art, color) + 1
	dst.DrawTextCentered(y, title, color)
	dst.DrawTextCentered(y+2, l.Tf("results.score", s.d.Last.Score), core.ColorHighlight)
	if s.d.Last.Best > 0 {
		best := l.Tf("results.best", s.d.Last.Best)
		if s.d.Last.NewBest {
			best += " *"
		}
		dst.DrawTextCentered(y+3, best, core.ColorTitle)
	}

	y += 5
	if len(s.top) > 0 {
		lines := []string{l.T("results.top")}
		for i, e := range s.top {
			lines = append(lines, fmt.Sprintf("%d. %6d  %s", i+1, e.Score, e.CreatedAt.Format("Jan 02 15:04")))
		}
		y = block(dst, y, lines, core.ColorMuted) + 1
	}
	s.list.render(dst, y)
}
