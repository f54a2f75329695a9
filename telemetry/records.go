package telemetry

// RunRecord is one user-recorded observation: the distribution summary at a
// particular temperature and catalyst setting. These are the rows the
// results table displays and records.csv persists.
type RunRecord struct {
	Tick         int32   `csv:"tick"`
	Temperature  float64 `csv:"temperature"`
	Catalyst     bool    `csv:"catalyst"`
	Threshold    float64 `csv:"threshold"`
	ModeEnergy   float64 `csv:"mode_energy"`
	MeanEnergy   float64 `csv:"mean_energy"`
	PercentAbove float64 `csv:"percent_above"`
	RateLabel    string  `csv:"rate"`
}

// Recorder holds recorded observations in capture order.
type Recorder struct {
	records []RunRecord
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{records: make([]RunRecord, 0, 16)}
}

// Add appends one observation.
func (r *Recorder) Add(rec RunRecord) {
	r.records = append(r.records, rec)
}

// Records returns the recorded observations, oldest first.
func (r *Recorder) Records() []RunRecord {
	return r.records
}

// Len returns the number of recorded observations.
func (r *Recorder) Len() int {
	return len(r.records)
}

// Clear drops all recorded observations.
func (r *Recorder) Clear() {
	r.records = r.records[:0]
}
