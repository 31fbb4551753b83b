package ghost

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Engine is the local-search meta-heuristic solver. One Engine owns its
// variables, constraints, objective, auxiliary data, and every error/tabu
// table exclusively for its lifetime, and is not reentrant: a single
// search run is strictly single-threaded and sequential (see pkg/driver
// for racing several independent Engines in parallel).
type Engine struct {
	variables   []*Variable
	originalIdx map[int]int
	constraints []Constraint
	deltas      []constraintDelta
	objective   Objective
	optimizing  bool
	auxData     []auxiliaryBinding

	permutation bool
	opts        Options
	resolved    resolved
	rng         *rand.Rand
	tracer      Tracer
	runID       string

	tabu   *tabuList
	tables *errorTables
	incid  incidence

	currentSatError float64
	bestSatError    float64
	bestOptCost     float64
	finalSolution   []int

	firstRestart       bool
	satisfiedOnce      bool
	resetsSinceRestart int

	iterations  int
	restarts    int
	resets      int
	localMinima int
	solveCalls  int
}

// NewEngine constructs an Engine over the given variables and constraints.
// objective may be nil, in which case NullObjective is installed and the
// search runs in satisfaction-only mode.
//
// Construction assigns engine ids 0..n-1 to variables in the order given,
// builds the incidence matrix (each constraint's HasVariable is consulted
// exactly once per variable, and MakeVariableIDMapping is installed as a
// side effect of that same scan), and probes every constraint for
// ExpertDeltaConstraint so the search loop never pays an interface
// assertion in its hot path.
func NewEngine(variables []*Variable, constraints []Constraint, objective Objective, opts Options) (*Engine, error) {
	if len(variables) == 0 {
		return nil, newContractError("NewEngine", "model has no variables")
	}
	for i, v := range variables {
		v.setEngineID(i)
	}
	if opts.Permutation {
		// Permutation mode assumes every variable shares one domain and
		// starts as the identity permutation (engine id i at position i);
		// randomBubblePass reshuffles from here on every restart. Without
		// this, every variable would start at domain.At(0) from
		// NewVariable, and swapping two identical states is a no-op -
		// the search would never leave the all-same-value configuration.
		for i, v := range variables {
			v.setPermutationState(i)
		}
	}

	originalIdx := make(map[int]int, len(variables))
	for _, v := range variables {
		originalIdx[v.OriginalID()] = v.EngineID()
	}

	incid := buildIncidence(variables, constraints)

	deltas := make([]constraintDelta, len(constraints))
	for i, c := range constraints {
		deltas[i] = newConstraintDelta(c)
	}

	optimizing := true
	if objective == nil {
		objective = NewNullObjective()
		optimizing = false
	} else if _, isNull := objective.(*NullObjective); isNull {
		optimizing = false
	}
	if mapper, ok := objective.(ObjectiveVariableMapper); ok {
		for _, v := range variables {
			mapper.MakeVariableIDMapping(v.EngineID(), v.OriginalID())
		}
	}

	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	e := &Engine{
		variables:   variables,
		originalIdx: originalIdx,
		constraints: constraints,
		deltas:      deltas,
		objective:   objective,
		optimizing:  optimizing,
		permutation: opts.Permutation,
		opts:        opts,
		resolved:    resolveOptions(opts, len(variables)),
		rng:         newRNG(opts.Seed),
		tracer:      noopTracer{},
		runID:       runID,
		tabu:        newTabuList(len(variables)),
		tables:      newErrorTables(len(variables), len(constraints), incid),
		incid:       incid,
		firstRestart: true,
	}

	if opts.DebugAssertions {
		if err := e.probeExpertDeltas(); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// SetTracer installs a Tracer invoked once Solve returns. Passing nil
// reinstalls the default no-op tracer.
func (e *Engine) SetTracer(t Tracer) {
	if t == nil {
		t = noopTracer{}
	}
	e.tracer = t
}

// Variables returns the Engine's variable vector in engine-id order. The
// returned slice must not be mutated by the caller; the Variables
// themselves are mutated by the Engine during Solve.
func (e *Engine) Variables() []*Variable { return e.variables }

// RunID returns the identifier this Engine's run is tagged with in traces
// and metrics.
func (e *Engine) RunID() string { return e.runID }

// probeExpertDeltas performs the construction-time sanity check named in
// the design notes: for every constraint implementing ExpertDeltaConstraint,
// call it once with each observed variable's own current value (a delta
// that must be exactly zero) and flag disagreement as a *ContractError.
// This is property P9 turned into a build-time check rather than only a
// test assertion, gated behind Options.DebugAssertions since it costs
// O(model size) extra Error() calls.
func (e *Engine) probeExpertDeltas() error {
	for cid, cd := range e.deltas {
		if !cd.isExpert() {
			continue
		}
		for _, vid := range e.incid.byConstraint[cid] {
			v := e.variables[vid]
			got := cd.expert.DeltaError(vid, v.Value())
			want := defaultDeltaError(cd.constraint, vid, v.Value(), v.Value())
			if !floatsAgree(got, want) {
				return newContractError("NewEngine",
					"constraint %d's DeltaError(%d, %d) = %v disagrees with its own error(after)-error(before) = %v for a no-op change",
					cid, vid, v.Value(), got, want)
			}
		}
	}
	return nil
}

func floatsAgree(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

// Solve runs the search loop until the configured timeout elapses, ctx is
// canceled, or (in satisfaction-only mode) a zero-error assignment is
// found. It returns true iff the best satisfaction error reached zero; the
// returned cost is the objective cost of the best solution found when that
// solution is satisfying in optimization mode, and the best satisfaction
// error otherwise (so zero for a satisfied satisfaction-only run), and
// solution is a snapshot of every variable's value in that best
// assignment, indexed by engine id.
//
// With Options.ResumeSearch set, every call after the first skips the
// implicit restart and best-so-far reset, continuing the loop from the
// configuration the previous Solve call left the variables in (its best
// solution), with the error tables rebuilt from it - letting a caller
// retry with a larger Timeout without losing progress.
func (e *Engine) Solve(ctx context.Context) (bool, float64, []int, error) {
	start := time.Now()
	deadline := start.Add(e.opts.Timeout)

	resuming := e.opts.ResumeSearch && e.solveCalls > 0
	e.solveCalls++

	if !resuming {
		e.bestSatError = posInf
		e.bestOptCost = posInf
		e.finalSolution = make([]int, len(e.variables))

		if err := e.restart(); err != nil {
			return false, 0, nil, err
		}
	} else {
		e.currentSatError = e.tables.recompute(e.constraints)
		e.tables.refreshNonTabu(e.tabu)
	}

	for {
		if ctx.Err() != nil {
			break
		}
		if e.opts.Timeout > 0 && !time.Now().Before(deadline) {
			break
		}
		if e.bestSatError <= 0 && !e.optimizing {
			break
		}

		restarted, err := e.iterate()
		if err != nil {
			return false, 0, nil, err
		}
		if restarted {
			if err := e.restart(); err != nil {
				return false, 0, nil, err
			}
		}

		if e.opts.DebugAssertions {
			if err := e.checkInvariants(); err != nil {
				return false, 0, nil, err
			}
		}
	}

	satisfied := e.bestSatError <= 0
	finalCost := e.bestOptCost
	if !satisfied || !e.optimizing {
		finalCost = e.bestSatError
	}

	postProcessDelta := 0.0
	if satisfied && e.optimizing {
		beforePostProcess := finalCost
		e.objective.PostprocessOptimization(e.variables, &finalCost, e.finalSolution)
		postProcessDelta = finalCost - beforePostProcess
	}

	e.restoreValues(e.finalSolution)

	e.tracer.Trace(RunSummary{
		RunID:                e.runID,
		Satisfied:            satisfied,
		Elapsed:              time.Since(start),
		SatisfactionError:    e.bestSatError,
		Iterations:           e.iterations,
		Restarts:             e.restarts,
		Resets:               e.resets,
		LocalMinima:          e.localMinima,
		ObjectiveCost:        finalCost,
		PostProcessCostDelta: postProcessDelta,
	})

	return satisfied, finalCost, append([]int(nil), e.finalSolution...), nil
}

const posInf = 1e300

// restoreValues reassigns every variable to the given snapshot and
// propagates the change to every constraint and the objective, used once
// Solve is ready to return so the caller observes the best solution found
// rather than whatever the search loop happened to be exploring when the
// budget ran out.
func (e *Engine) restoreValues(snapshot []int) {
	for vid, v := range e.variables {
		if e.permutation {
			idx, _ := v.Domain().IndexOf(snapshot[vid])
			v.setPermutationState(idx)
		} else {
			_ = v.SetValue(snapshot[vid])
		}
	}
	e.propagateAll()
}

// propagateAll pushes every variable's current value into every
// constraint that observes it and into the objective's mirror; used after
// bulk reassignment (restart, restore) where incremental delta bookkeeping
// would be more expensive than a full refresh.
func (e *Engine) propagateAll() {
	for cid, c := range e.constraints {
		for _, vid := range e.incid.byConstraint[cid] {
			c.UpdateVariable(vid, e.variables[vid].Value())
		}
	}
	for _, v := range e.variables {
		e.objective.UpdateVariable(v.EngineID(), v.Value())
	}
}
