package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Ensemble.Count <= 0 {
		t.Errorf("default ensemble count should be positive, got %d", cfg.Ensemble.Count)
	}
	if cfg.Ensemble.Restitution <= 0 || cfg.Ensemble.Restitution >= 1 {
		t.Errorf("restitution must be in (0,1), got %f", cfg.Ensemble.Restitution)
	}
	if cfg.Temperature.Min >= cfg.Temperature.Max {
		t.Errorf("temperature range inverted: [%f, %f]", cfg.Temperature.Min, cfg.Temperature.Max)
	}
	if cfg.Distribution.EnergyStep <= 0 {
		t.Errorf("energy step must be positive, got %f", cfg.Distribution.EnergyStep)
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	// Override a single field; everything else should come from defaults
	data := []byte("ensemble:\n  count: 120\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Ensemble.Count != 120 {
		t.Errorf("expected overridden count 120, got %d", cfg.Ensemble.Count)
	}
	if cfg.Ensemble.Radius <= 0 {
		t.Errorf("radius should keep its default, got %f", cfg.Ensemble.Radius)
	}
}

func TestComputeDerived(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	wantPoints := int(cfg.Distribution.EnergyMax/cfg.Distribution.EnergyStep) + 1
	if cfg.Derived.CurvePoints != wantPoints {
		t.Errorf("CurvePoints = %d, want %d", cfg.Derived.CurvePoints, wantPoints)
	}
	if cfg.Derived.WorldW32 != float32(cfg.World.Width) {
		t.Errorf("WorldW32 = %f, want %d", cfg.Derived.WorldW32, cfg.World.Width)
	}
}

func TestActivationThreshold(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := cfg.ActivationThreshold(false); got != cfg.Reaction.ActivationThreshold {
		t.Errorf("no catalyst: got %f, want %f", got, cfg.Reaction.ActivationThreshold)
	}
	if got := cfg.ActivationThreshold(true); got != cfg.Reaction.CatalystThreshold {
		t.Errorf("catalyst: got %f, want %f", got, cfg.Reaction.CatalystThreshold)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.yaml")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cfg.Ensemble.Count = 77

	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("reloading written config: %v", err)
	}
	if loaded.Ensemble.Count != 77 {
		t.Errorf("round-trip lost ensemble count: got %d, want 77", loaded.Ensemble.Count)
	}
}
