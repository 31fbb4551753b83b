package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richoux/ghost-go/pkg/ghost"
	"github.com/richoux/ghost-go/pkg/metrics"
)

func TestTraceIncrementsRunsTotalByOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	collectors := metrics.NewCollectors(reg)
	tracer := metrics.NewTracer(collectors)

	tracer.Trace(ghost.RunSummary{RunID: "r1", Satisfied: true, Elapsed: 10 * time.Millisecond, Iterations: 5, ObjectiveCost: 12.5})
	tracer.Trace(ghost.RunSummary{RunID: "r2", Satisfied: false, Elapsed: 20 * time.Millisecond, Iterations: 8})

	families, err := reg.Gather()
	require.NoError(t, err)

	var runsTotal *dto.MetricFamily
	for _, f := range families {
		if f.GetName() == "ghost_runs_total" {
			runsTotal = f
		}
	}
	require.NotNil(t, runsTotal)

	var trueCount, falseCount float64
	for _, m := range runsTotal.Metric {
		for _, l := range m.Label {
			if l.GetName() == "satisfied" {
				if l.GetValue() == "true" {
					trueCount = m.Counter.GetValue()
				} else {
					falseCount = m.Counter.GetValue()
				}
			}
		}
	}
	assert.Equal(t, float64(1), trueCount)
	assert.Equal(t, float64(1), falseCount)
}
