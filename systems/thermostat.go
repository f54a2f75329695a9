package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/gaslab/components"
)

// ThermostatSystem rescales every particle velocity so the ensemble's mean
// speed matches the target derived from the ambient temperature. Pairwise
// collisions lose energy to restitution each tick; the thermostat puts it
// back (or removes excess after a temperature drop) every tick, not once.
type ThermostatSystem struct {
	filter     ecs.Filter1[components.Velocity]
	speedScale float32 // k in target mean speed = k*sqrt(T)
	count      int     // fixed ensemble size
}

// NewThermostatSystem creates a thermostat for an ensemble of count particles.
func NewThermostatSystem(w *ecs.World, speedScale float32, count int) *ThermostatSystem {
	return &ThermostatSystem{
		filter:     *ecs.NewFilter1[components.Velocity](w),
		speedScale: speedScale,
		count:      count,
	}
}

// TargetSpeed returns the desired mean speed for a temperature.
func (s *ThermostatSystem) TargetSpeed(temperature float32) float32 {
	return s.speedScale * float32(math.Sqrt(float64(temperature)))
}

// Update rescales all velocities toward the target mean speed and returns
// the mean speed measured before rescaling. The temperature's sign is the
// caller's responsibility; the UI clamps it to a positive range.
func (s *ThermostatSystem) Update(temperature float32) float32 {
	if s.count == 0 {
		return 0
	}

	var total float32
	query := s.filter.Query()
	for query.Next() {
		vel := query.Get()
		total += velocityMagnitude(vel.X, vel.Y)
	}
	actual := total / float32(s.count)

	// A fully stationary ensemble has no direction to scale along; treat
	// the divisor as 1 and leave the particles at rest.
	divisor := actual
	if divisor == 0 {
		divisor = 1
	}
	scale := s.TargetSpeed(temperature) / divisor

	query = s.filter.Query()
	for query.Next() {
		vel := query.Get()
		vel.X *= scale
		vel.Y *= scale
	}

	return actual
}
