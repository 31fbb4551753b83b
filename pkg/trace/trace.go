// Package trace implements ghost.Tracer on top of logrus, the corpus's own
// structured-logging idiom, so a Solve call's per-run summary reaches the
// caller's log pipeline as structured fields rather than a formatted
// string.
package trace

import (
	"github.com/sirupsen/logrus"

	"github.com/richoux/ghost-go/pkg/ghost"
)

// Logger wraps a *logrus.Logger (or Entry) as a ghost.Tracer, logging one
// entry per completed Solve call at Info level when satisfied and Warn
// when the budget was exhausted without reaching zero satisfaction error.
type Logger struct {
	entry *logrus.Entry
}

// NewLogger builds a Logger tracer. A nil logger installs logrus's
// package-level standard logger.
func NewLogger(logger *logrus.Logger) *Logger {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Logger{entry: logrus.NewEntry(logger)}
}

// NewLoggerWithFields builds a Logger tracer pre-populated with fields
// that should appear on every trace entry it emits (a scenario name, a
// batch id), in addition to the per-run fields RunSummary itself carries.
func NewLoggerWithFields(logger *logrus.Logger, fields logrus.Fields) *Logger {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Logger{entry: logrus.NewEntry(logger).WithFields(fields)}
}

func (l *Logger) Trace(summary ghost.RunSummary) {
	entry := l.entry.WithFields(logrus.Fields{
		"run_id":                 summary.RunID,
		"satisfied":              summary.Satisfied,
		"elapsed":                summary.Elapsed.String(),
		"satisfaction_error":     summary.SatisfactionError,
		"iterations":             summary.Iterations,
		"restarts":               summary.Restarts,
		"resets":                 summary.Resets,
		"local_minima":           summary.LocalMinima,
		"objective_cost":         summary.ObjectiveCost,
		"postprocess_cost_delta": summary.PostProcessCostDelta,
	})
	if summary.Satisfied {
		entry.Info("ghost: run finished")
	} else {
		entry.Warn("ghost: run exhausted its budget without satisfying the model")
	}
}

var _ ghost.Tracer = (*Logger)(nil)
