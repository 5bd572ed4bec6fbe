// Package ecs is a small entity-component-system used by gameplay.
// Entity iteration is ordered by id so simulations are reproducible.
package ecs

import "sort"

// World manages all entities and components
type World struct {
	nextID   EntityID
	entities map[EntityID]*Entity
	// Store components as map[EntityID]map[ComponentID]Component
	components map[EntityID]ComponentMap
	systems    []System
	// Tag-based entity lookup for quick access
	entityTags map[string]map[EntityID]bool
	// Event manager for system communication
	eventManager *EventManager
	// Entities removed while systems run are dropped after the frame
	pending []EntityID
	running bool
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	return &World{
		entities:     make(map[EntityID]*Entity),
		components:   make(map[EntityID]ComponentMap),
		entityTags:   make(map[string]map[EntityID]bool),
		eventManager: NewEventManager(),
	}
}

// CreateEntity creates a new entity and adds it to the world
func (w *World) CreateEntity() *Entity {
	w.nextID++
	entity := newEntity(w.nextID)
	w.entities[entity.ID] = entity
	w.components[entity.ID] = make(ComponentMap)
	return entity
}

// RemoveEntity removes an entity and all its components from the world.
// During Update the removal is deferred until every system ran.
func (w *World) RemoveEntity(entityID EntityID) {
	if w.running {
		w.pending = append(w.pending, entityID)
		return
	}
	w.removeNow(entityID)
}

func (w *World) removeNow(entityID EntityID) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}
	for tag := range entity.Tags {
		delete(w.entityTags[tag], entityID)
		if len(w.entityTags[tag]) == 0 {
			delete(w.entityTags, tag)
		}
	}
	delete(w.components, entityID)
	delete(w.entities, entityID)
}

// Alive reports whether the entity exists and is not pending removal.
func (w *World) Alive(entityID EntityID) bool {
	if _, ok := w.entities[entityID]; !ok {
		return false
	}
	for _, id := range w.pending {
		if id == entityID {
			return false
		}
	}
	return true
}

// AddComponent adds a component to an entity
func (w *World) AddComponent(entityID EntityID, componentID ComponentID, component Component) {
	if _, exists := w.entities[entityID]; !exists {
		return
	}
	w.components[entityID][componentID] = component
}

// GetComponent retrieves a component from an entity
func (w *World) GetComponent(entityID EntityID, componentID ComponentID) (Component, bool) {
	if componentMap, exists := w.components[entityID]; exists {
		component, exists := componentMap[componentID]
		return component, exists
	}
	return nil, false
}

// HasComponent checks if an entity has a specific component
func (w *World) HasComponent(entityID EntityID, componentID ComponentID) bool {
	_, ok := w.GetComponent(entityID, componentID)
	return ok
}

// RemoveComponent removes a component from an entity
func (w *World) RemoveComponent(entityID EntityID, componentID ComponentID) {
	if componentMap, exists := w.components[entityID]; exists {
		delete(componentMap, componentID)
	}
}

// AddSystem adds a system to the world. Systems run in insertion order.
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
}

// Update runs all systems, then applies deferred removals.
func (w *World) Update(dt float64) {
	w.running = true
	for _, system := range w.systems {
		system.Update(w, dt)
	}
	w.running = false

	for _, id := range w.pending {
		w.removeNow(id)
	}
	w.pending = w.pending[:0]
}

// TagEntity adds a tag to an entity and updates the tag lookup
func (w *World) TagEntity(entityID EntityID, tag string) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}

	entity.Tags[tag] = true

	if _, exists := w.entityTags[tag]; !exists {
		w.entityTags[tag] = make(map[EntityID]bool)
	}
	w.entityTags[tag][entityID] = true
}

// EntitiesWithTag returns all entities with a specific tag, by id.
func (w *World) EntitiesWithTag(tag string) []*Entity {
	entities := make([]*Entity, 0, len(w.entityTags[tag]))
	for entityID := range w.entityTags[tag] {
		if entity, ok := w.entities[entityID]; ok {
			entities = append(entities, entity)
		}
	}
	sortEntities(entities)
	return entities
}

// EntitiesWithComponent returns all entities that have a specific
// component, by id.
func (w *World) EntitiesWithComponent(componentID ComponentID) []*Entity {
	entities := make([]*Entity, 0)
	for id, componentMap := range w.components {
		if _, ok := componentMap[componentID]; ok {
			entities = append(entities, w.entities[id])
		}
	}
	sortEntities(entities)
	return entities
}

// Entity returns an entity by its ID, or nil.
func (w *World) Entity(entityID EntityID) *Entity {
	return w.entities[entityID]
}

// Len returns the number of entities.
func (w *World) Len() int {
	return len(w.entities)
}

// Events returns the world's event manager
func (w *World) Events() *EventManager {
	return w.eventManager
}

// Emit is a convenience method to emit an event
func (w *World) Emit(event Event) {
	w.eventManager.Emit(event)
}

func sortEntities(entities []*Entity) {
	sort.Slice(entities, func(i, j int) bool { return entities[i].ID < entities[j].ID })
}
