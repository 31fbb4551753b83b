package ghost

import "math/rand"

// Objective is the contract a user-supplied cost function must satisfy to
// participate in optimization mode. Lower Cost() is better; callers model
// maximization by having Cost() return the negation of the quantity they
// actually want to maximize (documented convention, not auto-detected: see
// design notes).
type Objective interface {
	// Name returns the objective's informational name.
	Name() string

	// Cost returns the scalar cost of the assignment currently held in the
	// objective's own mirror of the variables.
	Cost() float64

	// UpdateVariable keeps the objective's mirror of the variable with the
	// given engine id consistent with the engine's value for it.
	UpdateVariable(engineID, newValue int)

	// HeuristicVariable breaks a tie across candidate variables (used when
	// the worst-error computation yields more than one candidate). The
	// default is uniform-random; see BaseObjective.
	HeuristicVariable(rng *rand.Rand, candidates []*Variable) *Variable

	// HeuristicValue breaks a tie across candidate values for a single
	// variable (used when more than one candidate value attains the best
	// delta-error). The default picks the candidate minimizing Cost(),
	// breaking further ties uniformly; see BaseObjective.
	HeuristicValue(rng *rand.Rand, v *Variable, candidates []int) int

	// PostprocessSatisfaction is called once, the first time the search
	// reaches a zero satisfaction error, before optimization proper begins.
	PostprocessSatisfaction(variables []*Variable)

	// PostprocessOptimization is called once after the search budget is
	// exhausted in optimization mode with a satisfying best solution. It
	// may mutate bestCost and solution, but only to improve them.
	PostprocessOptimization(variables []*Variable, bestCost *float64, solution []int)
}

// ObjectiveVariableMapper is the optional extension an Objective may
// implement when it needs the original-id -> position translation spec's
// construction step installs "in the objective for every variable",
// mirroring Constraint's MakeVariableIDMapping. Most objectives that close
// over a fixed-size mirror need this; the Null objective does not since it
// ignores every variable.
type ObjectiveVariableMapper interface {
	Objective
	MakeVariableIDMapping(engineID, originalID int)
}

// BaseObjective supplies the default tie-break and post-processing hooks
// spec'd for Objective, so concrete objectives only need to implement
// Name, Cost and UpdateVariable. Embed it by value in a concrete objective
// struct to inherit these defaults, overriding any subset as needed - the
// same "override what you need, inherit the rest" shape the engine uses
// for Constraint's optional ExpertDeltaConstraint.
//
// A concrete objective's constructor must call Init(self) with itself once,
// so HeuristicValue's default can probe the real Cost() through the same
// interface value the engine holds - BaseObjective by itself has no mirror
// to apply a candidate to. An objective that never calls Init still gets a
// safe uniform-random fallback, it just loses the cost-minimizing default.
type BaseObjective struct {
	self Objective
}

// Init installs self as the Objective BaseObjective probes for its default
// HeuristicValue. Call it once from the embedding type's constructor.
func (b *BaseObjective) Init(self Objective) { b.self = self }

// HeuristicVariable implements the default uniform-random tie-break.
func (BaseObjective) HeuristicVariable(rng *rand.Rand, candidates []*Variable) *Variable {
	return candidates[rng.Intn(len(candidates))]
}

// HeuristicValue implements the default cost-minimizing tie-break: apply
// each candidate to self's mirror via UpdateVariable, read Cost, restore v's
// original value, and keep the lowest-cost candidate seen so far, breaking
// cost ties with reservoir sampling so every cost-minimizing candidate has
// equal odds of winning. Falls back to uniform-random when Init was never
// called, since there is then no Cost() to probe.
func (b *BaseObjective) HeuristicValue(rng *rand.Rand, v *Variable, candidates []int) int {
	if b.self == nil {
		return candidates[rng.Intn(len(candidates))]
	}

	engineID, old := v.EngineID(), v.Value()

	best := candidates[0]
	bestCost := b.probeCost(engineID, old, candidates[0])
	bestCount := 1
	for _, cand := range candidates[1:] {
		cost := b.probeCost(engineID, old, cand)
		switch {
		case cost < bestCost:
			best, bestCost, bestCount = cand, cost, 1
		case cost == bestCost:
			bestCount++
			if rng.Intn(bestCount) == 0 {
				best = cand
			}
		}
	}
	return best
}

func (b *BaseObjective) probeCost(engineID, oldValue, candidate int) float64 {
	b.self.UpdateVariable(engineID, candidate)
	cost := b.self.Cost()
	b.self.UpdateVariable(engineID, oldValue)
	return cost
}

// PostprocessSatisfaction is a no-op by default.
func (BaseObjective) PostprocessSatisfaction(variables []*Variable) {}

// PostprocessOptimization is a no-op by default.
func (BaseObjective) PostprocessOptimization(variables []*Variable, bestCost *float64, solution []int) {}

// NullObjective is the sentinel Objective installed when the caller
// supplies none. It reports a constant cost of zero and uses the uniform
// tie-breaks, so satisfaction-only searches behave exactly as if no
// optimization pressure were present.
type NullObjective struct {
	BaseObjective
}

// NewNullObjective constructs the Null objective.
func NewNullObjective() *NullObjective {
	o := &NullObjective{}
	o.Init(o)
	return o
}

func (*NullObjective) Name() string                          { return "null" }
func (*NullObjective) Cost() float64                         { return 0 }
func (*NullObjective) UpdateVariable(engineID, newValue int) {}
