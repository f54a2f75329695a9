package sim

import (
	"fmt"
	"io"

	"github.com/pthm-cable/gaslab/boltzmann"
)

// logWriter is the destination for log output.
var logWriter io.Writer

// SetLogWriter sets the log output destination.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted log message.
func Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
	} else {
		fmt.Println(msg)
	}
}

// logWorldState logs the current ensemble and distribution state.
func (s *Sim) logWorldState() {
	var minSpeed, maxSpeed float64
	speeds := s.speeds()
	for i, sp := range speeds {
		if i == 0 || sp < minSpeed {
			minSpeed = sp
		}
		if sp > maxSpeed {
			maxSpeed = sp
		}
	}

	Logf("=== Tick %d ===", s.tick)
	Logf("Temperature: %.0f K (catalyst: %v)", s.temperature, s.catalyst)
	Logf("Ensemble: %d particles, mean speed %.3f (target %.3f, range %.3f-%.3f)",
		len(s.entities), s.lastMeanSpeed, s.TargetSpeed(), minSpeed, maxSpeed)
	Logf("Distribution: mode %.0f, mean %.1f, %.1f%% above %.0f (%s)",
		s.summary.ModeEnergy, s.summary.MeanEnergy, s.summary.PercentAbove,
		s.summary.Threshold, boltzmann.RateLabel(s.summary.PercentAbove))
	Logf("Recorded observations: %d", s.recorder.Len())
	Logf("")
}
