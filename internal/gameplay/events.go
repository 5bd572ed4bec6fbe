package gameplay

import "github.com/vovakirdan/starfall/internal/ecs"

// Event types emitted by the systems.
const (
	EventCaught ecs.EventType = "caught"
	EventMissed ecs.EventType = "missed"
)

// CaughtEvent is emitted when an item touches the player.
type CaughtEvent struct {
	Kind ItemKind
	// Perfect is set when the item landed on the middle of the paddle.
	Perfect bool
}

func (CaughtEvent) Type() ecs.EventType { return EventCaught }

// MissedEvent is emitted when an item leaves the field.
type MissedEvent struct {
	Kind ItemKind
}

func (MissedEvent) Type() ecs.EventType { return EventMissed }
