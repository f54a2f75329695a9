package sim

import (
	"fmt"

	"github.com/pthm-cable/gaslab/telemetry"
)

// SaveSnapshot writes the complete simulation state to dir and returns
// the file path.
func (s *Sim) SaveSnapshot(dir string) (string, error) {
	snap := &telemetry.Snapshot{
		Version:     telemetry.SnapshotVersion,
		RNGSeed:     s.seed,
		WorldWidth:  s.bounds.Width,
		WorldHeight: s.bounds.Height,
		Tick:        s.tick,
		Temperature: s.temperature,
		Catalyst:    s.catalyst,
		Particles:   s.Particles(),
	}
	return telemetry.SaveSnapshot(snap, dir)
}

// Restore applies a snapshot's particle and control state. The ensemble
// size is fixed at creation, so the snapshot must match it.
func (s *Sim) Restore(snap *telemetry.Snapshot) error {
	if len(snap.Particles) != len(s.entities) {
		return fmt.Errorf("snapshot has %d particles, ensemble has %d",
			len(snap.Particles), len(s.entities))
	}

	for i, e := range s.entities {
		p := snap.Particles[i]
		pos := s.posMap.Get(e)
		vel := s.velMap.Get(e)
		body := s.bodyMap.Get(e)
		pos.X, pos.Y = p.X, p.Y
		vel.X, vel.Y = p.VelX, p.VelY
		body.Radius = p.Radius
	}

	s.tick = snap.Tick
	s.temperature = snap.Temperature
	s.catalyst = snap.Catalyst
	s.refreshCurve()

	return nil
}
