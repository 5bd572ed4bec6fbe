// Package gameplay implements Starfall: catch falling stars with the
// paddle and dodge the rocks. The simulation is deterministic for a seed.
package gameplay

import (
	"strings"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/ecs"
)

// Scoring.
const (
	StarPoints    = 10
	PerfectBonus  = 5
	nudgeDuration = 0.15 // Seconds a single move input keeps the paddle moving
	fieldTop      = 1.0  // Row 0 belongs to the HUD
)

// State is the outcome of a round.
type State int

const (
	Running State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "running"
	}
}

// Sprites are the glyphs used by Render.
type Sprites struct {
	Star string
	Rock string
	Ship string
}

// DefaultSprites are used until SetSprites is called.
var DefaultSprites = Sprites{Star: "*", Rock: "o", Ship: `\_=_/`}

// Game is one round of Starfall.
type Game struct {
	cfg        config.GameplayConfig
	difficulty *config.DifficultyManager
	world      *ecs.World
	player     ecs.EntityID
	sprites    Sprites

	width, height int

	score   int
	stars   int
	lives   int
	missed  int
	perfect int
	elapsed float64
	state   State

	moveDir   int
	moveTimer float64
	hitFlash  float64
}

// New creates a round on a width x height field. Seed 0 is a valid seed;
// callers wanting variety pass a time-based one.
func New(cfg config.GameplayConfig, width, height int, seed int64) *Game {
	if cfg.PlayerWidth < 1 {
		cfg.PlayerWidth = 1
	}
	width = max(width, cfg.PlayerWidth)
	height = max(height, 3)

	g := &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		world:      ecs.NewWorld(),
		sprites:    DefaultSprites,
		width:      width,
		height:     height,
		lives:      cfg.Lives,
	}

	p := g.world.CreateEntity()
	g.player = p.ID
	g.world.TagEntity(p.ID, TagPlayer)
	g.world.AddComponent(p.ID, PositionID, &Position{
		X: float64(width-cfg.PlayerWidth) / 2,
		Y: float64(height - 1),
	})
	g.world.AddComponent(p.ID, VelocityID, &Velocity{})
	g.world.AddComponent(p.ID, BodyID, Body{W: float64(cfg.PlayerWidth), H: 1})

	g.world.AddSystem(newSpawnSystem(g, seed))
	g.world.AddSystem(&MovementSystem{game: g})
	g.world.AddSystem(&CollisionSystem{game: g})
	g.world.AddSystem(&CleanupSystem{game: g})

	g.world.Events().Subscribe(EventCaught, g.onCaught)
	g.world.Events().Subscribe(EventMissed, func(e ecs.Event) {
		if e.(MissedEvent).Kind == Star {
			g.missed++
		}
	})
	return g
}

// SetSprites replaces the glyphs. Empty fields keep their current value.
func (g *Game) SetSprites(s Sprites) {
	if s.Star != "" {
		g.sprites.Star = s.Star
	}
	if s.Rock != "" {
		g.sprites.Rock = s.Rock
	}
	if s.Ship != "" {
		g.sprites.Ship = s.Ship
	}
}

// SetDifficultyLevel overrides the initial difficulty (0.0 to 1.0).
func (g *Game) SetDifficultyLevel(level float64) {
	g.difficulty.SetInitialLevel(level)
}

func (g *Game) onCaught(e ecs.Event) {
	c := e.(CaughtEvent)
	if g.state != Running {
		return
	}
	switch c.Kind {
	case Star:
		g.stars++
		g.score += StarPoints
		if c.Perfect {
			g.perfect++
			g.score += PerfectBonus
		}
	case Rock:
		g.lives--
		g.hitFlash = 0.3
	}
}

// Nudge moves the paddle left (dir < 0) or right (dir > 0) for a short
// while. Held keys nudge every frame.
func (g *Game) Nudge(dir int) {
	switch {
	case dir < 0:
		g.moveDir = -1
	case dir > 0:
		g.moveDir = 1
	default:
		g.moveDir = 0
	}
	g.moveTimer = nudgeDuration
}

// Update advances the round by dt seconds. It is a no-op once over.
func (g *Game) Update(dt float64) {
	if g.state != Running || dt <= 0 {
		return
	}
	g.elapsed += dt
	if g.hitFlash > 0 {
		g.hitFlash -= dt
	}
	g.world.Update(dt)

	switch {
	case g.lives <= 0:
		g.lives = 0
		g.state = Lost
	case g.cfg.StarsToWin > 0 && g.stars >= g.cfg.StarsToWin:
		g.state = Won
	}
}

// State returns the outcome so far.
func (g *Game) State() State { return g.state }

// Over reports whether the round ended.
func (g *Game) Over() bool { return g.state != Running }

// Score returns the points scored.
func (g *Game) Score() int { return g.score }

// Stars returns the number of stars caught.
func (g *Game) Stars() int { return g.stars }

// StarsToWin returns the goal.
func (g *Game) StarsToWin() int { return g.cfg.StarsToWin }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Missed returns the number of stars that fell past the paddle.
func (g *Game) Missed() int { return g.missed }

// Perfect returns the number of stars caught on the middle of the paddle.
func (g *Game) Perfect() int { return g.perfect }

// Elapsed returns the simulated time in seconds.
func (g *Game) Elapsed() float64 { return g.elapsed }

// Level returns the current difficulty level.
func (g *Game) Level() float64 { return g.difficulty.Level(g.stars, g.elapsed) }

// Items returns the number of falling objects.
func (g *Game) Items() int { return len(g.world.EntitiesWithTag(TagItem)) }

// PlayerX returns the left column of the paddle.
func (g *Game) PlayerX() float64 {
	p, _ := ecs.Get[*Position](g.world, g.player, PositionID)
	return p.X
}

func (g *Game) spawn(kind ItemKind, x, speed float64) ecs.EntityID {
	e := g.world.CreateEntity()
	g.world.TagEntity(e.ID, TagItem)
	g.world.AddComponent(e.ID, PositionID, &Position{X: x, Y: fieldTop})
	g.world.AddComponent(e.ID, VelocityID, &Velocity{DY: speed})
	g.world.AddComponent(e.ID, BodyID, Body{W: 1, H: 1})
	g.world.AddComponent(e.ID, ItemID, Item{Kind: kind})
	return e.ID
}

// Render draws the field below the HUD row.
func (g *Game) Render(dst *core.Canvas) {
	for _, e := range g.world.EntitiesWithTag(TagItem) {
		p, _ := ecs.Get[*Position](g.world, e.ID, PositionID)
		item, _ := ecs.Get[Item](g.world, e.ID, ItemID)
		if item.Kind == Rock {
			dst.DrawTextColored(int(p.X), int(p.Y), g.sprites.Rock, core.ColorGray)
		} else {
			dst.DrawTextColored(int(p.X), int(p.Y), g.sprites.Star, core.ColorBrightYellow)
		}
	}

	color := core.ColorBrightCyan
	if g.hitFlash > 0 {
		color = core.ColorBrightRed
	}
	p, _ := ecs.Get[*Position](g.world, g.player, PositionID)
	dst.DrawTextColored(int(p.X), int(p.Y), g.paddle(), color)
}

// paddle fits the ship glyph to the paddle width.
func (g *Game) paddle() string {
	w := g.cfg.PlayerWidth
	ship := []rune(g.sprites.Ship)
	if len(ship) >= w {
		return string(ship[:w])
	}
	pad := w - len(ship)
	return strings.Repeat("=", pad/2) + string(ship) + strings.Repeat("=", pad-pad/2)
}
