// Package components defines ECS components for the simulation.
package components

// Position represents a particle's world position.
type Position struct {
	X, Y float32
}

// Velocity represents a particle's velocity in world units per tick.
type Velocity struct {
	X, Y float32
}

// Body holds a particle's physical extent. All particles share the same
// radius in the current design, but it lives on the entity so a future
// variant can vary it per particle.
type Body struct {
	Radius float32
}
