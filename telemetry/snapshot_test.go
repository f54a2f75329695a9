package telemetry

import (
	"os"
	"testing"
)

func TestSnapshotSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()

	snapshot := &Snapshot{
		Version:     SnapshotVersion,
		RNGSeed:     42,
		WorldWidth:  560,
		WorldHeight: 560,
		Tick:        1000,
		Temperature: 300,
		Catalyst:    true,
		Particles: []ParticleState{
			{X: 150, Y: 250, VelX: 0.5, VelY: -0.3, Radius: 6},
			{X: 400, Y: 100, VelX: -1.2, VelY: 0.8, Radius: 6},
		},
	}

	path, err := SaveSnapshot(snapshot, tmpDir)
	if err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("snapshot file not created at %s", path)
	}

	loaded, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}

	if loaded.RNGSeed != snapshot.RNGSeed {
		t.Errorf("seed = %d, want %d", loaded.RNGSeed, snapshot.RNGSeed)
	}
	if loaded.Tick != snapshot.Tick {
		t.Errorf("tick = %d, want %d", loaded.Tick, snapshot.Tick)
	}
	if loaded.Temperature != snapshot.Temperature {
		t.Errorf("temperature = %f, want %f", loaded.Temperature, snapshot.Temperature)
	}
	if !loaded.Catalyst {
		t.Error("catalyst flag lost")
	}
	if len(loaded.Particles) != len(snapshot.Particles) {
		t.Fatalf("particle count = %d, want %d", len(loaded.Particles), len(snapshot.Particles))
	}
	if loaded.Particles[0] != snapshot.Particles[0] {
		t.Errorf("particle 0 = %+v, want %+v", loaded.Particles[0], snapshot.Particles[0])
	}
}

func TestLoadSnapshotVersionMismatch(t *testing.T) {
	tmpDir := t.TempDir()

	snapshot := &Snapshot{Version: SnapshotVersion + 1, Tick: 5}
	path, err := SaveSnapshot(snapshot, tmpDir)
	if err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	if _, err := LoadSnapshot(path); err == nil {
		t.Error("expected version mismatch error, got nil")
	}
}

func TestLoadSnapshotMissingFile(t *testing.T) {
	if _, err := LoadSnapshot("/nonexistent/snapshot.json"); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}
