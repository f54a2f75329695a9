// Package sim owns the simulation state: the particle ensemble, the
// distribution model, and the telemetry plumbing around them. An external
// loop (graphical or headless) drives it one Step at a time; nothing in
// here re-runs on its own.
package sim

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/gaslab/boltzmann"
	"github.com/pthm-cable/gaslab/components"
	"github.com/pthm-cable/gaslab/config"
	"github.com/pthm-cable/gaslab/systems"
	"github.com/pthm-cable/gaslab/telemetry"
)

// Options configures a new simulation.
type Options struct {
	Seed      int64
	OutputDir string
	LogStats  bool
}

// Sim holds the complete simulation state.
type Sim struct {
	world *ecs.World
	rng   *rand.Rand
	seed  int64

	mapper  *ecs.Map3[components.Position, components.Velocity, components.Body]
	posMap  *ecs.Map1[components.Position]
	velMap  *ecs.Map1[components.Velocity]
	bodyMap *ecs.Map1[components.Body]

	// Creation-ordered ensemble; particles keep their identity for the
	// lifetime of the run, so this never changes after NewSim.
	entities []ecs.Entity

	motion     *systems.MotionSystem
	collision  *systems.CollisionSystem
	thermostat *systems.ThermostatSystem

	model *boltzmann.Model

	// Control state
	tick        int32
	paused      bool
	temperature float64
	catalyst    bool

	// Curve cache; regenerated by the control setters, so it is current
	// even while stepping is paused.
	curve   []boltzmann.EnergyPoint
	summary boltzmann.Summary

	// Telemetry
	recorder  *telemetry.Recorder
	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager

	lastMeanSpeed float64
	logStats      bool
	bounds        systems.Bounds
}

// New creates a simulation from the global config and the given options.
func New(opts Options) (*Sim, error) {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	bounds := systems.Bounds{
		Width:  cfg.Derived.WorldW32,
		Height: cfg.Derived.WorldH32,
	}

	s := &Sim{
		world:   world,
		rng:     rand.New(rand.NewSource(opts.Seed)),
		seed:    opts.Seed,
		mapper:  ecs.NewMap3[components.Position, components.Velocity, components.Body](world),
		posMap:  ecs.NewMap1[components.Position](world),
		velMap:  ecs.NewMap1[components.Velocity](world),
		bodyMap: ecs.NewMap1[components.Body](world),

		motion:     systems.NewMotionSystem(world, bounds),
		collision:  systems.NewCollisionSystem(world, float32(cfg.Ensemble.Restitution), bounds),
		thermostat: systems.NewThermostatSystem(world, cfg.Derived.SpeedScale32, cfg.Ensemble.Count),

		model: boltzmann.New(
			cfg.Distribution.TempScale,
			cfg.Distribution.TempOffset,
			cfg.Distribution.Sharpness,
			cfg.Distribution.Multiplier,
			cfg.Ensemble.Count,
		),

		temperature: cfg.Temperature.Initial,

		recorder:  telemetry.NewRecorder(),
		collector: telemetry.NewCollector(cfg.Telemetry.StatsWindow, 1.0/float64(cfg.Screen.TargetFPS)),
		perf:      telemetry.NewPerfCollector(cfg.Screen.TargetFPS),
		logStats:  opts.LogStats,
		bounds:    bounds,
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	s.output = output
	if err := s.output.WriteConfig(cfg); err != nil {
		return nil, err
	}

	s.spawnEnsemble(cfg)
	s.refreshCurve()

	return s, nil
}

// spawnEnsemble creates the fixed particle set: positions uniform inside
// the box, velocities at the initial temperature's target speed in a
// random direction.
func (s *Sim) spawnEnsemble(cfg *config.Config) {
	r := cfg.Derived.Radius32
	speed := s.thermostat.TargetSpeed(float32(s.temperature))

	s.entities = make([]ecs.Entity, 0, cfg.Ensemble.Count)
	for i := 0; i < cfg.Ensemble.Count; i++ {
		angle := s.rng.Float64() * 2 * math.Pi

		pos := components.Position{
			X: r + s.rng.Float32()*(s.bounds.Width-2*r),
			Y: r + s.rng.Float32()*(s.bounds.Height-2*r),
		}
		vel := components.Velocity{
			X: speed * float32(math.Cos(angle)),
			Y: speed * float32(math.Sin(angle)),
		}
		body := components.Body{Radius: r}

		s.entities = append(s.entities, s.mapper.NewEntity(&pos, &vel, &body))
	}
}

// Tick returns the current simulation tick.
func (s *Sim) Tick() int32 { return s.tick }

// Temperature returns the current control temperature.
func (s *Sim) Temperature() float64 { return s.temperature }

// Catalyst returns the catalyst flag.
func (s *Sim) Catalyst() bool { return s.catalyst }

// Paused returns whether stepping is suspended.
func (s *Sim) Paused() bool { return s.paused }

// SetPaused suspends or resumes stepping.
func (s *Sim) SetPaused(p bool) { s.paused = p }

// TargetSpeed returns the thermostat's current target mean speed.
func (s *Sim) TargetSpeed() float64 {
	return float64(s.thermostat.TargetSpeed(float32(s.temperature)))
}

// MeanSpeed returns the ensemble mean speed measured before the last
// thermostat rescale.
func (s *Sim) MeanSpeed() float64 { return s.lastMeanSpeed }

// SetTemperature updates the control temperature, clamped to the
// configured range. The kinetics systems trust the sign of what they are
// given, so the clamp lives here at the control boundary.
func (s *Sim) SetTemperature(t float64) {
	cfg := config.Cfg()
	if t < cfg.Temperature.Min {
		t = cfg.Temperature.Min
	}
	if t > cfg.Temperature.Max {
		t = cfg.Temperature.Max
	}
	if t != s.temperature {
		s.temperature = t
		s.refreshCurve()
	}
}

// SetCatalyst updates the catalyst flag, which selects the activation
// threshold the summary is computed against.
func (s *Sim) SetCatalyst(on bool) {
	if on != s.catalyst {
		s.catalyst = on
		s.refreshCurve()
	}
}

// Curve returns the cached distribution curve for the current controls.
func (s *Sim) Curve() []boltzmann.EnergyPoint { return s.curve }

// Summary returns the cached distribution summary for the current controls.
func (s *Sim) Summary() boltzmann.Summary { return s.summary }

// Recorder exposes the recorded observations for display.
func (s *Sim) Recorder() *telemetry.Recorder { return s.recorder }

// refreshCurve regenerates the curve and summary. Called from the control
// setters whenever temperature or catalyst actually changed, regardless of
// pause state; the model itself caches nothing.
func (s *Sim) refreshCurve() {
	cfg := config.Cfg()
	s.curve, s.summary = s.model.CurveAndSummary(
		s.temperature,
		cfg.Distribution.EnergyMax,
		cfg.Distribution.EnergyStep,
		cfg.ActivationThreshold(s.catalyst),
	)
}

// Record captures the current distribution summary as a run record and
// persists it if an output directory is configured.
func (s *Sim) Record() (telemetry.RunRecord, error) {
	rec := telemetry.RunRecord{
		Tick:         s.tick,
		Temperature:  s.temperature,
		Catalyst:     s.catalyst,
		Threshold:    s.summary.Threshold,
		ModeEnergy:   s.summary.ModeEnergy,
		MeanEnergy:   s.summary.MeanEnergy,
		PercentAbove: s.summary.PercentAbove,
		RateLabel:    boltzmann.RateLabel(s.summary.PercentAbove),
	}
	s.recorder.Add(rec)
	return rec, s.output.WriteRecord(rec)
}

// Particles returns the current particle states in ensemble order. The
// same view feeds the renderer and snapshots.
func (s *Sim) Particles() []telemetry.ParticleState {
	out := make([]telemetry.ParticleState, 0, len(s.entities))
	for _, e := range s.entities {
		pos := s.posMap.Get(e)
		vel := s.velMap.Get(e)
		body := s.bodyMap.Get(e)
		out = append(out, telemetry.ParticleState{
			X: pos.X, Y: pos.Y,
			VelX: vel.X, VelY: vel.Y,
			Radius: body.Radius,
		})
	}
	return out
}

// speeds collects particle speeds for the stats window.
func (s *Sim) speeds() []float64 {
	out := make([]float64, 0, len(s.entities))
	for _, e := range s.entities {
		vel := s.velMap.Get(e)
		out = append(out, math.Hypot(float64(vel.X), float64(vel.Y)))
	}
	return out
}

// Close flushes telemetry output.
func (s *Sim) Close() error {
	return s.output.Close()
}
