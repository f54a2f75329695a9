// Package telemetry collects ensemble statistics and writes run artifacts.
package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// WindowStats holds aggregated ensemble statistics for one time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Control state at window end
	Temperature float64 `csv:"temperature"`
	Catalyst    bool    `csv:"catalyst"`
	TargetSpeed float64 `csv:"target_speed"`

	// Speed distribution sampled at window end
	MeanSpeed float64 `csv:"mean_speed"`
	SpeedP10  float64 `csv:"speed_p10"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`

	// Total kinetic energy (unit mass) at window end
	KineticEnergy float64 `csv:"kinetic_energy"`

	// Events during window
	WallBounces    int `csv:"wall_bounces"`
	PairCollisions int `csv:"pair_collisions"`

	// Distribution summary at window end
	ModeEnergy   float64 `csv:"mode_energy"`
	MeanEnergy   float64 `csv:"mean_energy"`
	PercentAbove float64 `csv:"percent_above"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeSpeedStats calculates mean and percentiles from particle speeds.
func ComputeSpeedStats(values []float64) (mean, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0
	}

	mean = floats.Sum(values) / float64(n)

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)

	return mean, p10, p50, p90
}
