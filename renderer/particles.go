// Package renderer draws the simulation box and the distribution panel.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gaslab/telemetry"
)

// ParticleRenderer renders the gas ensemble inside its box.
type ParticleRenderer struct {
	origin rl.Vector2 // screen position of the box's top-left corner
}

// NewParticleRenderer creates a particle renderer anchored at the given
// screen position.
func NewParticleRenderer(originX, originY float32) *ParticleRenderer {
	return &ParticleRenderer{origin: rl.Vector2{X: originX, Y: originY}}
}

// Draw renders the box walls and every particle, colored by how fast it
// moves relative to the thermostat target.
func (r *ParticleRenderer) Draw(particles []telemetry.ParticleState, boxW, boxH, targetSpeed float32) {
	// Box walls
	rl.DrawRectangleLines(
		int32(r.origin.X)-1, int32(r.origin.Y)-1,
		int32(boxW)+2, int32(boxH)+2,
		rl.Color{R: 120, G: 120, B: 130, A: 255},
	)

	for i := range particles {
		p := &particles[i]

		speed := float32(math.Hypot(float64(p.VelX), float64(p.VelY)))

		// Cold particles render blue, hot ones red; the target speed maps
		// to the middle of the ramp.
		ratio := float32(0.5)
		if targetSpeed > 0 {
			ratio = speed / (2 * targetSpeed)
			if ratio > 1 {
				ratio = 1
			}
		}
		color := rl.Color{
			R: uint8(60 + 195*ratio),
			G: 70,
			B: uint8(255 - 195*ratio),
			A: 255,
		}

		rl.DrawCircle(
			int32(r.origin.X+p.X),
			int32(r.origin.Y+p.Y),
			p.Radius,
			color,
		)
	}
}
