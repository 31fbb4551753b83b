package ghost

import (
	"runtime"
	"time"
)

// sentinelAuto is the "-1 means the engine chooses" marker used throughout
// Options, matching the programmatic surface named in spec's external
// interfaces section.
const sentinelAuto = -1

// Options configures a single Engine's search. Every integer knob that
// accepts sentinelAuto (-1) is resolved to a concrete default by NewEngine,
// as a function of the number of variables in the model. The zero value of
// such a knob is not the sentinel and is used as given, so a caller who
// wants spec's out-of-the-box behavior starts from DefaultOptions or sets
// the sentinel explicitly.
type Options struct {
	// Timeout bounds wall-clock search time. Checked between iterations
	// against a monotonic clock; never aborts an in-flight iteration.
	Timeout time.Duration

	// NoRandomStartingPoint, when true, skips Monte-Carlo sampling on the
	// engine's very first restart only; every subsequent restart (including
	// ones triggered by a worsening move) always randomizes regardless.
	NoRandomStartingPoint bool

	// Permutation switches the neighborhood from single-variable domain
	// moves to swap moves between two variables, preserving the initial
	// multiset of values (invariant I5).
	Permutation bool

	// Seed seeds the engine's pseudorandom generator. Zero means "derive a
	// seed from process entropy once, then run deterministically from
	// there"; nonzero means full reproducibility (P8).
	Seed int64

	// RunID optionally fixes the engine's run identifier (normally a
	// generated UUID) for reproducible trace/metric correlation across
	// repeated runs with the same seed.
	RunID string

	// TabuTimeLocalMin and TabuTimeSelected set the weak-tabu freeze
	// durations applied respectively at a local minimum and after a
	// strictly improving commit. sentinelAuto resolves to
	// max(1, n/2) and max(1, TabuTimeLocalMin/2).
	TabuTimeLocalMin int
	TabuTimeSelected int

	// ResetThreshold is the number of simultaneously-frozen (tabu) variables
	// that triggers a partial reset. sentinelAuto resolves to
	// 2*ceil(sqrt(n)).
	ResetThreshold int

	// RestartThreshold is the number of partial resets that triggers a full
	// restart. sentinelAuto resolves to n.
	RestartThreshold int

	// PercentToReset is the percentage of variables (by highest E_v)
	// force-randomized on a partial reset. sentinelAuto resolves to
	// max(2, ceil(0.1*n)).
	PercentToReset int

	// ResumeSearch, when true, skips the restart a Solve call otherwise
	// begins with and continues the search from whatever configuration the
	// Engine's variables already hold - intended for a caller invoking Solve
	// repeatedly with successively larger timeouts on the same Engine
	// rather than discarding progress between calls. Has no effect the
	// first time Solve is called on an Engine, which always restarts.
	ResumeSearch bool

	// ParallelRuns and NumberThreads are not consulted by Engine itself -
	// a single Engine is always single-threaded and non-reentrant (see
	// spec §5) - but are read by pkg/driver.Pool to size the set of
	// independent Engine copies it races and the concurrency ceiling it
	// runs them under. sentinelAuto resolves ParallelRuns to 1 and
	// NumberThreads to runtime.NumCPU(), at least 1.
	ParallelRuns  int
	NumberThreads int

	// NumberStartSamplings is the number of Monte-Carlo rounds tried when
	// regenerating an initial configuration; the best of the rounds (by
	// total satisfaction error) is kept. Must be >= 1; values <= 0 are
	// treated as 1.
	NumberStartSamplings int

	// PlateauRestartProbability is the probability of restarting instead of
	// committing a zero-delta move on a plateau. Defaults to 0.1.
	PlateauRestartProbability float64

	// DebugAssertions enables construction-time and per-iteration invariant
	// checks (I1-I6 / P1-P9), surfaced as *ContractError. Off by default:
	// these checks are O(model size) and intended for development and
	// testing, not production search loops racing a microsecond budget.
	DebugAssertions bool
}

// DefaultOptions returns an Options value with every knob at its
// engine-chosen default, a zero Timeout (caller must set one), and
// single-variable (non-permutation) mode.
func DefaultOptions() Options {
	return Options{
		TabuTimeLocalMin:          sentinelAuto,
		TabuTimeSelected:          sentinelAuto,
		ResetThreshold:            sentinelAuto,
		RestartThreshold:          sentinelAuto,
		PercentToReset:            sentinelAuto,
		ParallelRuns:              sentinelAuto,
		NumberThreads:             sentinelAuto,
		NumberStartSamplings:      10,
		PlateauRestartProbability: 0.1,
	}
}

// resolved is the post-defaulting form of Options, computed once at
// NewEngine time from the number of variables in the model.
type resolved struct {
	tabuTimeLocalMin int
	tabuTimeSelected int
	resetThreshold   int
	restartThreshold int
	percentToReset   int
	samplings        int
	plateauP         float64
}

func resolveOptions(o Options, numVariables int) resolved {
	r := resolved{
		samplings: o.NumberStartSamplings,
		plateauP:  o.PlateauRestartProbability,
	}
	if r.samplings < 1 {
		r.samplings = 1
	}
	if r.plateauP == 0 {
		r.plateauP = 0.1
	}

	r.tabuTimeLocalMin = o.TabuTimeLocalMin
	if r.tabuTimeLocalMin == sentinelAuto {
		r.tabuTimeLocalMin = maxInt(1, numVariables/2)
	}
	r.tabuTimeSelected = o.TabuTimeSelected
	if r.tabuTimeSelected == sentinelAuto {
		r.tabuTimeSelected = maxInt(1, r.tabuTimeLocalMin/2)
	}
	r.resetThreshold = o.ResetThreshold
	if r.resetThreshold == sentinelAuto {
		r.resetThreshold = 2 * ceilSqrt(numVariables)
	}
	r.restartThreshold = o.RestartThreshold
	if r.restartThreshold == sentinelAuto {
		r.restartThreshold = maxInt(1, numVariables)
	}
	r.percentToReset = o.PercentToReset
	if r.percentToReset == sentinelAuto {
		r.percentToReset = maxInt(2, ceilDiv(numVariables, 10))
	}
	return r
}

// ResolveParallelism resolves Options.ParallelRuns and Options.NumberThreads
// to concrete counts. Exported for pkg/driver, the only consumer: Engine
// itself never reads either field. ParallelRuns defaults to 1;
// NumberThreads defaults to runtime.NumCPU(), at least 1 either way.
func ResolveParallelism(o Options) (runs, threads int) {
	runs = o.ParallelRuns
	if runs == sentinelAuto || runs < 1 {
		runs = 1
	}
	threads = o.NumberThreads
	if threads == sentinelAuto || threads < 1 {
		threads = maxInt(1, runtime.NumCPU())
	}
	return runs, threads
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func ceilDiv(n, d int) int {
	if n <= 0 {
		return 0
	}
	return (n + d - 1) / d
}

func ceilSqrt(n int) int {
	if n <= 0 {
		return 0
	}
	r := 1
	for r*r < n {
		r++
	}
	return r
}
