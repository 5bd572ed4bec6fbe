package ecs

// EventType identifies different types of events
type EventType string

// Event interface that all events must implement
type Event interface {
	Type() EventType
}

// EventHandler is a function that processes events
type EventHandler func(Event)

// HandlerID is returned by Subscribe and identifies one subscription.
type HandlerID uint64

type subscription struct {
	id      HandlerID
	handler EventHandler
}

// EventManager manages event subscriptions and dispatches
type EventManager struct {
	subscribers map[EventType][]subscription
	nextID      HandlerID
}

// NewEventManager creates a new event manager
func NewEventManager() *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]subscription),
	}
}

// Subscribe registers a handler for a specific event type and returns
// the token to unsubscribe it.
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) HandlerID {
	em.nextID++
	em.subscribers[eventType] = append(em.subscribers[eventType], subscription{id: em.nextID, handler: handler})
	return em.nextID
}

// Unsubscribe removes the handler registered under id.
func (em *EventManager) Unsubscribe(id HandlerID) bool {
	for eventType, subs := range em.subscribers {
		for i, s := range subs {
			if s.id != id {
				continue
			}
			subs = append(subs[:i], subs[i+1:]...)
			if len(subs) == 0 {
				delete(em.subscribers, eventType)
			} else {
				em.subscribers[eventType] = subs
			}
			return true
		}
	}
	return false
}

// Emit dispatches an event to all subscribed handlers
func (em *EventManager) Emit(event Event) {
	for _, s := range em.subscribers[event.Type()] {
		s.handler(event)
	}
}
