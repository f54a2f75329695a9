package telemetry

import "gonum.org/v1/gonum/floats"

// Collector accumulates per-tick events within time windows and produces
// WindowStats when a window closes.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float64

	windowStartTick int32

	// Event counters for the current window
	wallBounces    int
	pairCollisions int
}

// NewCollector creates a stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds.
// dt: seconds per tick.
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int32(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordWallBounces adds wall reflections from one tick.
func (c *Collector) RecordWallBounces(n int) {
	c.wallBounces += n
}

// RecordPairCollisions adds resolved pairs from one tick.
func (c *Collector) RecordPairCollisions(n int) {
	c.pairCollisions += n
}

// WindowClosed reports whether the window ending at tick is complete.
func (c *Collector) WindowClosed(tick int32) bool {
	return tick-c.windowStartTick >= c.windowDurationTicks
}

// CloseWindow builds the stats for the finished window from the sampled
// speeds and distribution summary, then starts a new window at tick.
func (c *Collector) CloseWindow(tick int32, temperature float64, catalyst bool,
	targetSpeed float64, speeds []float64, modeEnergy, meanEnergy, percentAbove float64) WindowStats {

	mean, p10, p50, p90 := ComputeSpeedStats(speeds)

	// Unit-mass kinetic energy, sum of 0.5*s^2
	kinetic := 0.5 * floats.Dot(speeds, speeds)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   tick,
		SimTimeSec:      float64(tick) * c.dt,
		Temperature:     temperature,
		Catalyst:        catalyst,
		TargetSpeed:     targetSpeed,
		MeanSpeed:       mean,
		SpeedP10:        p10,
		SpeedP50:        p50,
		SpeedP90:        p90,
		KineticEnergy:   kinetic,
		WallBounces:     c.wallBounces,
		PairCollisions:  c.pairCollisions,
		ModeEnergy:      modeEnergy,
		MeanEnergy:      meanEnergy,
		PercentAbove:    percentAbove,
	}

	c.windowStartTick = tick
	c.wallBounces = 0
	c.pairCollisions = 0

	return stats
}
