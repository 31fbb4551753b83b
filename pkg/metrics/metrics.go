// Package metrics exposes ghost run outcomes as Prometheus collectors,
// built on github.com/prometheus/client_golang - the optional, off-by-
// default observability surface cmd/ghost-demo's --metrics-addr flag turns
// on.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/richoux/ghost-go/pkg/ghost"
)

// Collectors bundles the Prometheus collectors a ghost.Tracer reports
// into: a run counter split by outcome, a histogram of elapsed time, and a
// histogram of iteration counts.
type Collectors struct {
	runsTotal       *prometheus.CounterVec
	elapsedSeconds  *prometheus.HistogramVec
	iterationsTotal *prometheus.HistogramVec
	objectiveCost   *prometheus.GaugeVec
}

// NewCollectors builds a Collectors and registers it with reg. Passing
// prometheus.DefaultRegisterer matches the package-level registration the
// client_golang examples in the corpus use.
func NewCollectors(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ghost",
			Name:      "runs_total",
			Help:      "Number of Solve calls completed, labeled by outcome.",
		}, []string{"satisfied"}),
		elapsedSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ghost",
			Name:      "run_elapsed_seconds",
			Help:      "Wall-clock duration of completed Solve calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"satisfied"}),
		iterationsTotal: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ghost",
			Name:      "run_iterations",
			Help:      "Number of search iterations performed per Solve call.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"satisfied"}),
		objectiveCost: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "ghost",
			Name:      "run_objective_cost",
			Help:      "Objective cost of the most recent satisfying run, by run id.",
		}, []string{"run_id"}),
	}
	reg.MustRegister(c.runsTotal, c.elapsedSeconds, c.iterationsTotal, c.objectiveCost)
	return c
}

// Tracer adapts Collectors into a ghost.Tracer, so Engine.SetTracer can
// install it directly alongside (or instead of) pkg/trace's logger.
type Tracer struct {
	collectors *Collectors
}

// NewTracer wraps c as a ghost.Tracer.
func NewTracer(c *Collectors) *Tracer { return &Tracer{collectors: c} }

func (t *Tracer) Trace(summary ghost.RunSummary) {
	label := "false"
	if summary.Satisfied {
		label = "true"
	}
	t.collectors.runsTotal.WithLabelValues(label).Inc()
	t.collectors.elapsedSeconds.WithLabelValues(label).Observe(summary.Elapsed.Seconds())
	t.collectors.iterationsTotal.WithLabelValues(label).Observe(float64(summary.Iterations))
	if summary.Satisfied {
		t.collectors.objectiveCost.WithLabelValues(summary.RunID).Set(summary.ObjectiveCost)
	}
}

var _ ghost.Tracer = (*Tracer)(nil)
