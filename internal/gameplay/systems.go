package gameplay

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/ecs"
	"github.com/vovakirdan/starfall/internal/physics"
)

// spawnAttempts bounds how often the spawner looks for a free column.
const spawnAttempts = 3

// SpawnSystem drops new items from the top row on a difficulty-driven
// timer.
type SpawnSystem struct {
	game  *Game
	rng   *rand.Rand
	timer float64
}

func newSpawnSystem(g *Game, seed int64) *SpawnSystem {
	return &SpawnSystem{game: g, rng: rand.New(rand.NewSource(seed))}
}

func (s *SpawnSystem) Update(w *ecs.World, dt float64) {
	g := s.game
	s.timer += dt
	interval := g.difficulty.SpawnInterval(g.cfg.SpawnInterval, g.stars, g.elapsed)
	if interval <= 0 || s.timer < interval {
		return
	}
	s.timer -= interval

	x := s.freeColumn(w)
	kind := Star
	if s.rng.Float64() < g.cfg.RockRatio {
		kind = Rock
	}
	g.spawn(kind, x, g.difficulty.FallSpeed(g.cfg.FallSpeed, g.stars, g.elapsed))
}

// freeColumn picks a random column, avoiding items that just spawned.
func (s *SpawnSystem) freeColumn(w *ecs.World) float64 {
	var x float64
	for range spawnAttempts {
		x = float64(s.rng.Intn(s.game.width))
		if !crowded(w, x, fieldTop) {
			break
		}
	}
	return x
}

func crowded(w *ecs.World, x, y float64) bool {
	for _, e := range w.EntitiesWithTag(TagItem) {
		p, ok := ecs.Get[*Position](w, e.ID, PositionID)
		if ok && physics.CirclesOverlap(x, y, 1, p.X, p.Y, 1) {
			return true
		}
	}
	return false
}

// MovementSystem integrates velocities and keeps the player on the field.
type MovementSystem struct {
	game *Game
}

func (s *MovementSystem) Update(w *ecs.World, dt float64) {
	g := s.game
	if g.moveTimer > 0 {
		g.moveTimer -= dt
	} else {
		g.moveDir = 0
	}
	if v, ok := ecs.Get[*Velocity](w, g.player, VelocityID); ok {
		v.DX = float64(g.moveDir) * g.cfg.PlayerSpeed
	}

	for _, e := range w.EntitiesWithComponent(VelocityID) {
		p, ok := ecs.Get[*Position](w, e.ID, PositionID)
		if !ok {
			continue
		}
		v, _ := ecs.Get[*Velocity](w, e.ID, VelocityID)
		p.X, p.Y = physics.Integrate(p.X, p.Y, v.DX, v.DY, dt)
	}

	if p, ok := ecs.Get[*Position](w, g.player, PositionID); ok {
		p.X = core.Clamp(p.X, 0, float64(g.width-g.cfg.PlayerWidth))
	}
}

// CollisionSystem catches items that touch the player.
type CollisionSystem struct {
	game *Game
}

func (s *CollisionSystem) Update(w *ecs.World, dt float64) {
	g := s.game
	pp, ok := ecs.Get[*Position](w, g.player, PositionID)
	if !ok {
		return
	}
	pb, _ := ecs.Get[Body](w, g.player, BodyID)
	paddle := pb.Box(pp)
	cx, cy := paddle.Center()

	for _, e := range w.EntitiesWithTag(TagItem) {
		p, _ := ecs.Get[*Position](w, e.ID, PositionID)
		b, _ := ecs.Get[Body](w, e.ID, BodyID)
		box := b.Box(&Position{X: math.Floor(p.X), Y: p.Y})
		if !paddle.Overlaps(box) {
			continue
		}
		item, _ := ecs.Get[Item](w, e.ID, ItemID)
		ix, _ := box.Center()
		w.RemoveEntity(e.ID)
		w.Emit(CaughtEvent{
			Kind:    item.Kind,
			Perfect: physics.Distance(ix, cy, cx, cy) < 1,
		})
	}
}

// CleanupSystem removes items that fell past the bottom row.
type CleanupSystem struct {
	game *Game
}

func (s *CleanupSystem) Update(w *ecs.World, dt float64) {
	bottom := float64(s.game.height)
	for _, e := range w.EntitiesWithTag(TagItem) {
		if !w.Alive(e.ID) {
			continue
		}
		p, _ := ecs.Get[*Position](w, e.ID, PositionID)
		if p.Y < bottom {
			continue
		}
		item, _ := ecs.Get[Item](w, e.ID, ItemID)
		w.RemoveEntity(e.ID)
		w.Emit(MissedEvent{Kind: item.Kind})
	}
}
