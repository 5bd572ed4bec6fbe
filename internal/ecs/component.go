package ecs

// ComponentID is a unique identifier for component types
type ComponentID uint

// Component is the base interface for all components
type Component interface{}

// ComponentMap stores components by their type ID
type ComponentMap map[ComponentID]Component

// Get returns the component of type T stored under cid.
func Get[T Component](w *World, id EntityID, cid ComponentID) (T, bool) {
	var zero T
	c, ok := w.GetComponent(id, cid)
	if !ok {
		return zero, false
	}
	t, ok := c.(T)
	return t, ok
}
