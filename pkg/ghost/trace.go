package ghost

import "time"

// RunSummary is the structured per-run report spec'd for tracing: elapsed
// time, satisfaction error, iteration count, objective cost, and the
// post-process cost delta, plus enough run bookkeeping (restarts, resets,
// local minima) to make console tracing informative without forcing a
// stable wire format on the engine itself.
type RunSummary struct {
	RunID                string
	Satisfied            bool
	Elapsed              time.Duration
	SatisfactionError    float64
	Iterations           int
	Restarts             int
	Resets               int
	LocalMinima          int
	ObjectiveCost        float64
	PostProcessCostDelta float64
}

// Tracer receives a RunSummary once a Solve call returns. The engine
// itself has no stable wire format for this; pkg/trace supplies a
// structured-logging implementation, but any Tracer implementation can be
// installed via Engine.SetTracer.
type Tracer interface {
	Trace(RunSummary)
}

type noopTracer struct{}

func (noopTracer) Trace(RunSummary) {}
