package sim

import (
	"github.com/pthm-cable/gaslab/config"
	"github.com/pthm-cable/gaslab/telemetry"
)

// Step advances the simulation by one tick: integrate and bounce off
// walls, resolve pairwise collisions, then rescale velocities to the
// temperature target. The curve is maintained by the control setters, so
// stepping never recomputes it.
func (s *Sim) Step() {
	if s.paused {
		return
	}

	s.perf.StartTick()

	s.perf.StartPhase(telemetry.PhaseMotion)
	bounces := s.motion.Update(s.world)

	s.perf.StartPhase(telemetry.PhaseCollision)
	pairs := s.collision.Update(s.entities)

	s.perf.StartPhase(telemetry.PhaseThermostat)
	s.lastMeanSpeed = float64(s.thermostat.Update(float32(s.temperature)))

	s.perf.StartPhase(telemetry.PhaseTelemetry)
	s.tick++
	s.collector.RecordWallBounces(bounces)
	s.collector.RecordPairCollisions(pairs)
	s.flushWindow()

	s.perf.EndTick()

	cfg := config.Cfg()
	if cfg.Telemetry.LogInterval > 0 && s.tick%int32(cfg.Telemetry.LogInterval) == 0 {
		s.logWorldState()
		if s.logStats {
			s.perf.LogSummary(s.tick)
		}
	}
}

// flushWindow closes the stats window when due and persists it.
func (s *Sim) flushWindow() {
	if !s.collector.WindowClosed(s.tick) {
		return
	}

	stats := s.collector.CloseWindow(
		s.tick,
		s.temperature,
		s.catalyst,
		s.TargetSpeed(),
		s.speeds(),
		s.summary.ModeEnergy,
		s.summary.MeanEnergy,
		s.summary.PercentAbove,
	)

	if err := s.output.WriteStats(stats); err != nil {
		Logf("stats write failed: %v", err)
	}
}
