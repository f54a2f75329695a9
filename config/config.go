// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen       ScreenConfig       `yaml:"screen"`
	World        WorldConfig        `yaml:"world"`
	Ensemble     EnsembleConfig     `yaml:"ensemble"`
	Temperature  TemperatureConfig  `yaml:"temperature"`
	Distribution DistributionConfig `yaml:"distribution"`
	Reaction     ReactionConfig     `yaml:"reaction"`
	Telemetry    TelemetryConfig    `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds the simulation box dimensions in world units.
// The box is square in the default setup but width and height are kept
// independent so the renderer can place panels freely.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// EnsembleConfig holds the particle ensemble parameters.
// Count is fixed for the lifetime of the simulation.
type EnsembleConfig struct {
	Count       int     `yaml:"count"`
	Radius      float64 `yaml:"radius"`
	Restitution float64 `yaml:"restitution"` // fraction of normal velocity retained per collision, (0,1)
	SpeedScale  float64 `yaml:"speed_scale"` // k in target mean speed = k*sqrt(T)
}

// TemperatureConfig holds the temperature control range.
// The kinetics engine trusts its temperature input; the UI clamps to [Min, Max].
type TemperatureConfig struct {
	Initial float64 `yaml:"initial"`
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
}

// DistributionConfig holds the energy-distribution model constants.
// These are empirical curve-fit values, not physical ones.
type DistributionConfig struct {
	TempScale  float64 `yaml:"temp_scale"`  // effective T = TempScale*T + TempOffset
	TempOffset float64 `yaml:"temp_offset"`
	Sharpness  float64 `yaml:"sharpness"`  // shape constant raised to 1.5 against T_eff
	Multiplier float64 `yaml:"multiplier"` // overall density scale
	EnergyMax  float64 `yaml:"energy_max"`
	EnergyStep float64 `yaml:"energy_step"`
}

// ReactionConfig holds the activation-energy thresholds.
type ReactionConfig struct {
	ActivationThreshold float64 `yaml:"activation_threshold"`
	CatalystThreshold   float64 `yaml:"catalyst_threshold"`
}

// TelemetryConfig holds data collection settings.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds per stats window
	LogInterval int     `yaml:"log_interval"` // ticks between world-state logs (0 = off)
}

// DerivedConfig holds values computed from the loaded config.
type DerivedConfig struct {
	WorldW32     float32 // effective world width as float32
	WorldH32     float32 // effective world height as float32
	Radius32     float32
	SpeedScale32 float32
	CurvePoints  int // number of samples in [0, EnergyMax]
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	// World dimensions default to screen size if not specified
	worldW := c.World.Width
	if worldW == 0 {
		worldW = c.Screen.Width
	}
	worldH := c.World.Height
	if worldH == 0 {
		worldH = c.Screen.Height
	}
	c.Derived.WorldW32 = float32(worldW)
	c.Derived.WorldH32 = float32(worldH)
	c.Derived.Radius32 = float32(c.Ensemble.Radius)
	c.Derived.SpeedScale32 = float32(c.Ensemble.SpeedScale)

	if c.Distribution.EnergyStep > 0 {
		c.Derived.CurvePoints = int(c.Distribution.EnergyMax/c.Distribution.EnergyStep) + 1
	}
}

// ActivationThreshold returns the active threshold for the given catalyst state.
// The distribution model itself only accepts a numeric threshold; this is the
// one place the catalyst policy lives.
func (c *Config) ActivationThreshold(catalyst bool) float64 {
	if catalyst {
		return c.Reaction.CatalystThreshold
	}
	return c.Reaction.ActivationThreshold
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
