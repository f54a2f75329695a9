// Package boltzmann implements the energy-distribution model behind the
// gas lab's curve panel. The density is a modified Maxwell-Boltzmann shape
// tuned to look right over the UI's temperature range; it is a curve fit,
// not a physical derivation, and is deliberately not normalized.
package boltzmann

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// EnergyPoint is one sample of the density curve.
type EnergyPoint struct {
	Energy  float64
	Density float64
}

// Summary holds the scalar statistics derived from one curve.
type Summary struct {
	// ModeEnergy is the energy at peak density.
	ModeEnergy float64
	// MeanEnergy is the density-weighted average energy. This is a discrete
	// weighted average over the sampled points, not a continuous mean; the
	// curve panel's readouts depend on exactly this computation.
	MeanEnergy float64
	// PercentAbove is the share of total density mass at or above the
	// activation threshold, in percent.
	PercentAbove float64
	// Threshold echoes the activation threshold the summary was taken at.
	Threshold float64
}

// Model holds the distribution's configuration constants. The zero value is
// not useful; construct with New.
type Model struct {
	tempScale  float64
	tempOffset float64
	sharpness  float64
	multiplier float64
	population float64
}

// New creates a distribution model.
//
// tempScale and tempOffset map the UI temperature onto the formula's
// internal scale, sharpness controls the peak shape, multiplier is an
// overall empirical scale, and population is the total particle count the
// curve represents.
func New(tempScale, tempOffset, sharpness, multiplier float64, population int) *Model {
	return &Model{
		tempScale:  tempScale,
		tempOffset: tempOffset,
		sharpness:  sharpness,
		multiplier: multiplier,
		population: float64(population),
	}
}

// EffectiveTemperature maps the nominal temperature to the density
// formula's internal scale. The offset keeps curve shapes intuitive over
// the 100-500 K slider range.
func (m *Model) EffectiveTemperature(temperature float64) float64 {
	return m.tempScale*temperature + m.tempOffset
}

// Density evaluates the distribution at energy e for the given nominal
// temperature. Returns 0 for a non-positive effective temperature. Negative
// energies are outside the model's contract and unguarded.
func (m *Model) Density(e, temperature float64) float64 {
	tEff := m.EffectiveTemperature(temperature)
	if tEff <= 0 {
		return 0
	}

	shape := math.Pow(m.sharpness/tEff, 1.5)
	return m.multiplier * (2 / math.Sqrt(math.Pi)) * shape *
		math.Sqrt(e) * math.Exp(-e/tEff) * m.population
}

// Curve samples the density at E = 0, step, 2*step, ... up to and including
// eMax. Pure function of its inputs; identical arguments always produce an
// identical slice.
func (m *Model) Curve(temperature, eMax, step float64) []EnergyPoint {
	if step <= 0 || eMax < 0 {
		return nil
	}

	points := make([]EnergyPoint, 0, int(eMax/step)+1)
	for i := 0; ; i++ {
		e := float64(i) * step
		if e > eMax {
			break
		}
		points = append(points, EnergyPoint{Energy: e, Density: m.Density(e, temperature)})
	}
	return points
}

// Summarize reduces a curve to its mode, discrete weighted mean, and the
// percentage of density mass at or above the activation threshold. A curve
// with zero total mass yields a zero mean and zero percentage by convention.
func Summarize(curve []EnergyPoint, threshold float64) Summary {
	s := Summary{Threshold: threshold}
	if len(curve) == 0 {
		return s
	}

	energies := make([]float64, len(curve))
	densities := make([]float64, len(curve))
	for i, p := range curve {
		energies[i] = p.Energy
		densities[i] = p.Density
	}

	s.ModeEnergy = curve[floats.MaxIdx(densities)].Energy

	total := floats.Sum(densities)
	if total == 0 {
		return s
	}
	s.MeanEnergy = floats.Dot(energies, densities) / total

	// Points are sampled in ascending energy order, so the mass at or
	// above the threshold is a single tail sum.
	tail := len(curve)
	for i, p := range curve {
		if p.Energy >= threshold {
			tail = i
			break
		}
	}
	s.PercentAbove = floats.Sum(densities[tail:]) / total * 100

	return s
}

// CurveAndSummary is the single entry point the presentation layer calls
// when temperature or threshold changes: one freshly generated curve plus
// its summary. Nothing is cached across calls.
func (m *Model) CurveAndSummary(temperature, eMax, step, threshold float64) ([]EnergyPoint, Summary) {
	curve := m.Curve(temperature, eMax, step)
	return curve, Summarize(curve, threshold)
}

// RateLabel classifies a percent-above value into the qualitative reaction
// rate shown on the HUD. Thresholds are arbitrary display bands.
func RateLabel(percentAbove float64) string {
	switch {
	case percentAbove < 5:
		return "slow"
	case percentAbove < 20:
		return "moderate"
	default:
		return "fast"
	}
}
