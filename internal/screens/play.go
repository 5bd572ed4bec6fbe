package screens

import (
	"fmt"

	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/gameplay"
	"github.com/vovakirdan/starfall/internal/screen"
)

// Play runs one round. Pause is pushed on top so the round survives.
type Play struct {
	screen.Base
	d      *Deps
	game   *gameplay.Game
	paused bool
	ended  bool
}

// NewPlay starts a fresh round sized to the canvas.
func NewPlay(d *Deps) *Play {
	w, h := d.size()
	g := gameplay.New(d.Gameplay, w, h, d.seed())
	g.SetSprites(gameplay.Sprites{
		Star: firstLine(d, "star"),
		Rock: firstLine(d, "rock"),
		Ship: firstLine(d, "ship"),
	})
	return &Play{d: d, game: g}
}

func firstLine(d *Deps, name string) string {
	t := d.Assets.TextureOr(name)
	if len(t.Lines) == 0 {
		return ""
	}
	return t.Lines[0]
}

// Game returns the running round.
func (s *Play) Game() *gameplay.Game { return s.game }

// OnEnter implements screen.Screen.
func (s *Play) OnEnter() {
	s.d.logger("screen").Info("round started", "mode", s.d.mode())
}

// OnPause freezes the round while Pause is on top.
func (s *Play) OnPause() { s.paused = true }

// OnResume continues the round.
func (s *Play) OnResume() { s.paused = false }

// HandleInput pushes Pause on Pause or Back and steers the player.
func (s *Play) HandleInput(in core.InputFrame) error {
	if in.Has(core.ActionPause) || in.Has(core.ActionBack) {
		s.d.Mixer.PlayMenuSound("pause")
		return s.d.Manager.Push(screen.Pause)
	}
	switch {
	case in.Has(core.ActionLeft):
		s.game.Nudge(-1)
	case in.Has(core.ActionRight):
		s.game.Nudge(1)
	}
	return nil
}

// Update implements screen.Screen.
func (s *Play) Update(dt float64) error {
	if s.paused || s.ended {
		return nil
	}
	stars, lives := s.game.Stars(), s.game.Lives()
	s.game.Update(dt)
	if s.game.Stars() > stars {
		s.d.Mixer.PlaySfx("star")
	}
	if s.game.Lives() < lives {
		s.d.Mixer.PlaySfx("hit")
	}
	if !s.game.Over() {
		return nil
	}
	s.ended = true
	return s.finish()
}

// finish records the score and shows the result screen.
func (s *Play) finish() error {
	d := s.d
	r := Result{State: s.game.State(), Score: s.game.Score(), Stars: s.game.Stars()}
	if d.Scores != nil {
		best, err := d.Scores.HighScore(d.mode())
		if err != nil {
			d.logger("screen").Warn("cannot read high score", "error", err)
		}
		r.Best = max(best, r.Score)
		r.NewBest = r.Score > best
		if r.Score > 0 {
			if _, err := d.Scores.SaveScore(d.mode(), r.Score); err != nil {
				d.logger("screen").Warn("cannot save score", "error", err)
			}
		}
	}
	d.Last = r
	d.logger("screen").Info("round finished", "state", r.State, "score", r.Score, "stars", r.Stars)

	if r.State == gameplay.Won {
		return d.Manager.Change(screen.Winning)
	}
	return d.Manager.Change(screen.GameOver)
}

// Render implements screen.Screen.
func (s *Play) Render(dst *core.Canvas) {
	l := s.d.Localizer
	hud := fmt.Sprintf("%s   %s   %s",
		l.Tf("play.score", s.game.Score()),
		l.Tf("play.lives", s.game.Lives()),
		l.Tf("play.goal", s.game.Stars(), s.game.StarsToWin()))
	dst.DrawTextColored(1, 0, hud, core.ColorHighlight)
	s.game.Render(dst)
}
