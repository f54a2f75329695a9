package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("empty dir should disable output, got error: %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager for empty dir")
	}

	// All methods are no-ops on a nil manager.
	if err := om.WriteStats(WindowStats{}); err != nil {
		t.Errorf("WriteStats on nil manager: %v", err)
	}
	if err := om.WriteRecord(RunRecord{}); err != nil {
		t.Errorf("WriteRecord on nil manager: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil manager: %v", err)
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	tmpDir := t.TempDir()
	dir := filepath.Join(tmpDir, "run1")

	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager failed: %v", err)
	}

	if err := om.WriteStats(WindowStats{WindowEndTick: 60, Temperature: 300, MeanSpeed: 2.1}); err != nil {
		t.Fatalf("WriteStats failed: %v", err)
	}
	if err := om.WriteStats(WindowStats{WindowEndTick: 120, Temperature: 350, MeanSpeed: 2.2}); err != nil {
		t.Fatalf("WriteStats failed: %v", err)
	}
	if err := om.WriteRecord(RunRecord{Tick: 60, Temperature: 300, PercentAbove: 9.5, RateLabel: "moderate"}); err != nil {
		t.Fatalf("WriteRecord failed: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	statsData, err := os.ReadFile(filepath.Join(dir, "stats.csv"))
	if err != nil {
		t.Fatalf("reading stats.csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(statsData)), "\n")
	if len(lines) != 3 {
		t.Errorf("stats.csv has %d lines, want 3 (header + 2 rows)", len(lines))
	}
	if !strings.Contains(lines[0], "temperature") {
		t.Errorf("stats.csv header missing temperature column: %q", lines[0])
	}

	recordsData, err := os.ReadFile(filepath.Join(dir, "records.csv"))
	if err != nil {
		t.Fatalf("reading records.csv: %v", err)
	}
	if !strings.Contains(string(recordsData), "moderate") {
		t.Error("records.csv missing recorded rate label")
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()

	if r.Len() != 0 {
		t.Errorf("new recorder length = %d, want 0", r.Len())
	}

	r.Add(RunRecord{Temperature: 300})
	r.Add(RunRecord{Temperature: 400})

	if r.Len() != 2 {
		t.Fatalf("length = %d, want 2", r.Len())
	}
	if r.Records()[0].Temperature != 300 || r.Records()[1].Temperature != 400 {
		t.Error("records not in capture order")
	}

	r.Clear()
	if r.Len() != 0 {
		t.Errorf("length after clear = %d, want 0", r.Len())
	}
}
