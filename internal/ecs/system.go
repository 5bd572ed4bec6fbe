package ecs

// System defines an interface for processing entities with specific components
type System interface {
	// Update is called each frame to process entities
	Update(world *World, dt float64)
}

// SystemFunc adapts a function to System.
type SystemFunc func(world *World, dt float64)

// Update implements System.
func (f SystemFunc) Update(world *World, dt float64) { f(world, dt) }
