// Package systems contains ECS systems for the particle simulation.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/gaslab/components"
)

// Bounds represents the simulation box.
type Bounds struct {
	Width, Height float32
}

// MotionSystem integrates particle positions and keeps them inside the box.
type MotionSystem struct {
	filter ecs.Filter3[components.Position, components.Velocity, components.Body]
	bounds Bounds
}

// NewMotionSystem creates a new motion system for the given box.
func NewMotionSystem(w *ecs.World, bounds Bounds) *MotionSystem {
	return &MotionSystem{
		filter: *ecs.NewFilter3[components.Position, components.Velocity, components.Body](w),
		bounds: bounds,
	}
}

// Update advances every particle by one unit time step and reflects it off
// the walls. Each axis is handled independently, so a particle can bounce
// on both axes in the same tick. Returns the number of wall reflections.
func (s *MotionSystem) Update(w *ecs.World) int {
	bounces := 0

	query := s.filter.Query()
	for query.Next() {
		pos, vel, body := query.Get()

		pos.X += vel.X
		pos.Y += vel.Y

		r := body.Radius

		// Left/right walls: clamp inside and point the velocity back in.
		if pos.X < r {
			pos.X = r
			if vel.X < 0 {
				vel.X = -vel.X
			}
			bounces++
		} else if pos.X > s.bounds.Width-r {
			pos.X = s.bounds.Width - r
			if vel.X > 0 {
				vel.X = -vel.X
			}
			bounces++
		}

		// Top/bottom walls.
		if pos.Y < r {
			pos.Y = r
			if vel.Y < 0 {
				vel.Y = -vel.Y
			}
			bounces++
		} else if pos.Y > s.bounds.Height-r {
			pos.Y = s.bounds.Height - r
			if vel.Y > 0 {
				vel.Y = -vel.Y
			}
			bounces++
		}
	}

	return bounces
}
