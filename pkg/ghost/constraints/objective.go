package constraints

import (
	"math/rand"

	"github.com/richoux/ghost-go/pkg/ghost"
)

// Linear is a weighted-sum ghost.Objective: cost = sum(weight[i]*value[i])
// over the variables given a nonzero weight, or its negation when
// constructed with maximize, since Cost is always a minimization (the
// engine's documented convention - see DESIGN.md). Unlike Constraint,
// ghost.NewEngine installs every model variable's id mapping into the
// objective unconditionally (an Objective mirrors the full variable
// vector, not a selective incidence), so Linear keyes its weight and
// mirror maps by engine id and simply ignores variables it was given no
// weight for.
type Linear struct {
	ghost.BaseObjective
	name           string
	weightByOrig   map[int]float64
	weightByEngine map[int]float64
	mirror         map[int]int
	maximize       bool
}

// NewLinear constructs a Linear objective giving each listed original
// variable id the matching weight; variables outside originalIDs
// contribute zero to the sum.
func NewLinear(name string, originalIDs []int, weights []float64, maximize bool) *Linear {
	if len(weights) != len(originalIDs) {
		panic("constraints.NewLinear: weights and originalIDs length mismatch")
	}
	w := make(map[int]float64, len(originalIDs))
	for i, id := range originalIDs {
		w[id] = weights[i]
	}
	o := &Linear{
		name:           name,
		weightByOrig:   w,
		weightByEngine: make(map[int]float64, len(originalIDs)),
		mirror:         make(map[int]int, len(originalIDs)),
		maximize:       maximize,
	}
	o.Init(o)
	return o
}

func (o *Linear) Name() string { return o.name }

// MakeVariableIDMapping implements ghost.ObjectiveVariableMapper: ghost.
// NewEngine calls this once per model variable at construction, exactly
// as it does for Constraint's incidence scan. Variables with no declared
// weight are not installed at all, so UpdateVariable's lookup for them is
// a harmless no-op.
func (o *Linear) MakeVariableIDMapping(engineID, originalID int) {
	if w, ok := o.weightByOrig[originalID]; ok {
		o.weightByEngine[engineID] = w
	}
}

func (o *Linear) UpdateVariable(engineID, newValue int) {
	if _, ok := o.weightByEngine[engineID]; ok {
		o.mirror[engineID] = newValue
	}
}

func (o *Linear) rawSum() float64 {
	var sum float64
	for engineID, w := range o.weightByEngine {
		sum += w * float64(o.mirror[engineID])
	}
	return sum
}

func (o *Linear) Cost() float64 {
	if o.maximize {
		return -o.rawSum()
	}
	return o.rawSum()
}

// HeuristicValue overrides BaseObjective's uniform-random default with a
// cost-minimizing tie-break: probe each candidate by temporarily writing
// it into the mirror for v's engine id, read Cost, then restore. Variables
// with no declared weight don't affect Cost either way, so the probe is
// still correct (just uninformative) when v itself carries no weight.
//
// This assumes candidates are values for v's own engine id, which holds in
// single-variable mode. In permutation mode the engine's tie-break candidate
// list holds swap-partner engine ids instead (search.go's breakTie), so a
// Linear objective installed on a permutation model would probe nonsense
// here; permutation models in this codebase only ever use NullObjective.
func (o *Linear) HeuristicValue(rng *rand.Rand, v *ghost.Variable, candidates []int) int {
	engineID := v.EngineID()

	best := candidates[0]
	bestCost := o.probeCost(engineID, candidates[0])
	bestCount := 1
	for _, cand := range candidates[1:] {
		cost := o.probeCost(engineID, cand)
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

func (o *Linear) probeCost(engineID, value int) float64 {
	saved, had := o.mirror[engineID]
	o.mirror[engineID] = value
	cost := o.Cost()
	if had {
		o.mirror[engineID] = saved
	} else {
		delete(o.mirror, engineID)
	}
	return cost
}
