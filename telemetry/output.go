package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/gaslab/config"
)

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir         string
	statsFile   *os.File
	recordsFile *os.File

	// Track if headers have been written
	statsHeaderWritten   bool
	recordsHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output
// directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	statsPath := filepath.Join(dir, "stats.csv")
	f, err := os.Create(statsPath)
	if err != nil {
		return nil, fmt.Errorf("creating stats.csv: %w", err)
	}
	om.statsFile = f

	recordsPath := filepath.Join(dir, "records.csv")
	f, err = os.Create(recordsPath)
	if err != nil {
		om.statsFile.Close()
		return nil, fmt.Errorf("creating records.csv: %w", err)
	}
	om.recordsFile = f

	return om, nil
}

// WriteConfig saves the active configuration as YAML alongside the CSVs.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	configPath := filepath.Join(om.dir, "config.yaml")
	return cfg.WriteYAML(configPath)
}

// WriteStats appends one window stats row to stats.csv.
func (om *OutputManager) WriteStats(stats WindowStats) error {
	if om == nil {
		return nil
	}

	rows := []WindowStats{stats}

	if !om.statsHeaderWritten {
		if err := gocsv.Marshal(rows, om.statsFile); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
		om.statsHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(rows, om.statsFile); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
	}

	return nil
}

// WriteRecord appends one recorded observation to records.csv.
func (om *OutputManager) WriteRecord(rec RunRecord) error {
	if om == nil {
		return nil
	}

	rows := []RunRecord{rec}

	if !om.recordsHeaderWritten {
		if err := gocsv.Marshal(rows, om.recordsFile); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
		om.recordsHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(rows, om.recordsFile); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
	}

	return nil
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	if err := om.statsFile.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := om.recordsFile.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
