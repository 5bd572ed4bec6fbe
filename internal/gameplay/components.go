package gameplay

import (
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/ecs"
	"github.com/vovakirdan/starfall/internal/physics"
)

// Component ids.
const (
	PositionID ecs.ComponentID = iota
	VelocityID
	BodyID
	SpriteID
	ItemID
)

// Tags.
const (
	TagPlayer = "player"
	TagItem   = "item"
)

// Position is the top-left corner of an entity in cells.
type Position struct {
	X, Y float64
}

// Velocity is measured in cells per second.
type Velocity struct {
	DX, DY float64
}

// Body is the collision size of an entity.
type Body struct {
	W, H float64
}

// Box returns the collision box at p.
func (b Body) Box(p *Position) physics.Box {
	return physics.Box{X: p.X, Y: p.Y, W: b.W, H: b.H}
}

// Sprite is what Render draws for an entity.
type Sprite struct {
	Text  string
	Color core.Color
}

// ItemKind distinguishes falling objects.
type ItemKind int

const (
	Star ItemKind = iota
	Rock
)

func (k ItemKind) String() string {
	if k == Rock {
		return "rock"
	}
	return "star"
}

// Item marks a falling object.
type Item struct {
	Kind ItemKind
}
