package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/gaslab/components"
)

// CollisionSystem resolves pairwise particle collisions inelastically.
// Every unordered pair is checked each tick; at the ensemble sizes this
// simulation runs (tens of particles) the O(N²) sweep is cheaper and
// simpler than maintaining a broadphase.
type CollisionSystem struct {
	posMap  *ecs.Map1[components.Position]
	velMap  *ecs.Map1[components.Velocity]
	bodyMap *ecs.Map1[components.Body]

	restitution float32
	bounds      Bounds
}

// NewCollisionSystem creates a collision system with the given restitution
// coefficient. Restitution is the fraction of relative normal velocity
// preserved through a collision, expected in (0,1). Separated positions are
// kept inside bounds so a wall-adjacent pair never leaks out of the box.
func NewCollisionSystem(w *ecs.World, restitution float32, bounds Bounds) *CollisionSystem {
	return &CollisionSystem{
		posMap:      ecs.NewMap1[components.Position](w),
		velMap:      ecs.NewMap1[components.Velocity](w),
		bodyMap:     ecs.NewMap1[components.Body](w),
		restitution: restitution,
		bounds:      bounds,
	}
}

// Update checks all pairs in ascending index order and resolves contacts.
// The entity slice must be the stable ensemble ordering so a run is
// deterministic for a fixed seed. Returns the number of resolved pairs.
func (s *CollisionSystem) Update(entities []ecs.Entity) int {
	resolved := 0

	for i := 0; i < len(entities); i++ {
		for j := i + 1; j < len(entities); j++ {
			if s.resolvePair(entities[i], entities[j]) {
				resolved++
			}
		}
	}

	return resolved
}

// resolvePair applies an impulse and positional separation to one
// contacting pair. Returns false if the pair was not in contact or nothing
// needed doing (exactly touching and not closing).
func (s *CollisionSystem) resolvePair(a, b ecs.Entity) bool {
	posA := s.posMap.Get(a)
	posB := s.posMap.Get(b)
	bodyA := s.bodyMap.Get(a)
	bodyB := s.bodyMap.Get(b)

	// Contact is inclusive of exact touching: a just-touching closing pair
	// still takes its impulse, with zero positional separation.
	minDist := bodyA.Radius + bodyB.Radius
	d := distance(posA.X, posA.Y, posB.X, posB.Y)
	if d > minDist {
		return false
	}
	// Coincident centers have no collision normal; leave the pair for the
	// next tick rather than divide by zero.
	if d == 0 {
		return false
	}

	// Unit normal along the center line, from a to b.
	nx := (posB.X - posA.X) / d
	ny := (posB.Y - posA.Y) / d

	velA := s.velMap.Get(a)
	velB := s.velMap.Get(b)

	// Relative velocity along the normal. Negative means approaching.
	rvn := (velB.X-velA.X)*nx + (velB.Y-velA.Y)*ny

	if d == minDist && rvn >= 0 {
		return false
	}

	if rvn < 0 {
		// Impulse sized so the post-collision relative normal velocity is
		// -restitution * rvn, split evenly (equal effective mass).
		impulse := -(1 + s.restitution) * rvn / 2
		velA.X -= impulse * nx
		velA.Y -= impulse * ny
		velB.X += impulse * nx
		velB.Y += impulse * ny
	}

	// Separate along the normal by half the overlap each, whether or not
	// an impulse was applied, so overlapping pairs never stay merged. The
	// clamp keeps wall-adjacent particles inside the box; any overlap it
	// reintroduces is resolved on the next tick.
	half := (minDist - d) / 2
	posA.X = s.clampX(posA.X-nx*half, bodyA.Radius)
	posA.Y = s.clampY(posA.Y-ny*half, bodyA.Radius)
	posB.X = s.clampX(posB.X+nx*half, bodyB.Radius)
	posB.Y = s.clampY(posB.Y+ny*half, bodyB.Radius)

	return true
}

func (s *CollisionSystem) clampX(x, r float32) float32 {
	if x < r {
		return r
	}
	if x > s.bounds.Width-r {
		return s.bounds.Width - r
	}
	return x
}

func (s *CollisionSystem) clampY(y, r float32) float32 {
	if y < r {
		return r
	}
	if y > s.bounds.Height-r {
		return s.bounds.Height - r
	}
	return y
}
