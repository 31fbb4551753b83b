package ghost

// candidate is one scored move under consideration: either a new value for
// chosenVar (single-variable mode, otherVar == -1) or a swap partner for
// chosenVar (permutation mode, value is unused).
type candidate struct {
	value    int
	otherVar int
	delta    float64
}

// iterate runs one pass of the main search loop (spec's step 3.a-3.g) and
// reports whether the caller should restart before the next iteration.
func (e *Engine) iterate() (restarted bool, err error) {
	e.iterations++

	freeVariables := e.tabu.decay()
	e.tables.refreshNonTabu(e.tabu)

	chosen := e.pickWorstVariable(freeVariables)
	candidates := e.enumerateCandidates(chosen)
	if len(candidates) == 0 {
		// No legal move exists at all (an empty domain and not permutation
		// mode, or a single-variable permutation model); treat as a forced
		// restart to avoid spinning.
		return true, nil
	}

	best := candidates[0].delta
	for _, c := range candidates[1:] {
		if c.delta < best {
			best = c.delta
		}
	}
	shortlist := candidates[:0:0]
	for _, c := range candidates {
		if c.delta == best {
			shortlist = append(shortlist, c)
		}
	}
	winner := e.breakTie(chosen, shortlist)

	switch {
	case best > 0:
		// Strictly worsening: no profitable or neutral move exists. Restart.
		return true, nil

	case best < 0:
		return e.commit(chosen, winner, best)

	case e.currentSatError == 0 && e.optimizing:
		return e.resolveOptimizationPlateau(chosen, winner)

	default:
		// best == 0, current_sat_error > 0 (or satisfaction-only mode): a
		// plain plateau move.
		if e.rng.Float64() < e.resolved.plateauP {
			return true, nil
		}
		return e.commit(chosen, winner, best)
	}
}

// resolveOptimizationPlateau implements spec's 4.5.f regime for
// Δ*==0 once the model is already satisfying and optimization mode is
// active: compute the candidate's objective cost, compare against the
// current best, and restart/commit/walk the plateau accordingly. The coin
// flip for an equal-cost plateau move is drawn before committing, per the
// Open Question this engine resolves in favor of "before."
func (e *Engine) resolveOptimizationPlateau(chosen *Variable, winner candidate) (restarted bool, err error) {
	oldValue := chosen.Value()
	e.applyMove(chosen, winner)
	candidateCost := e.objective.Cost()
	e.undoMove(chosen, winner, oldValue)

	switch {
	case candidateCost < e.bestOptCost:
		forceRestart, err := e.commit(chosen, winner, 0)
		if err != nil {
			return false, err
		}
		e.bestOptCost = candidateCost
		e.snapshotInto(e.finalSolution)
		return forceRestart, nil
	case candidateCost == e.bestOptCost:
		if e.rng.Float64() < e.resolved.plateauP {
			return true, nil
		}
		return e.commit(chosen, winner, 0)
	default:
		return true, nil
	}
}

// pickWorstVariable implements spec's 4.5.b: argmax over E_v (or E_nt when
// at least one free variable exists), ties broken by the objective's
// HeuristicVariable (uniform-random by default).
func (e *Engine) pickWorstVariable(freeVariables bool) *Variable {
	scores := e.tables.ev
	if freeVariables {
		scores = e.tables.ent
	}

	best := scores[0]
	worst := []int{0}
	for v := 1; v < len(scores); v++ {
		switch {
		case scores[v] > best:
			best = scores[v]
			worst = []int{v}
		case scores[v] == best:
			worst = append(worst, v)
		}
	}

	if len(worst) == 1 {
		return e.variables[worst[0]]
	}
	tied := make([]*Variable, len(worst))
	for i, vid := range worst {
		tied[i] = e.variables[vid]
	}
	return e.objective.HeuristicVariable(e.rng, tied)
}

// enumerateCandidates builds the candidate-move list for chosen and scores
// each one's delta-error, implementing spec's 4.5.c-d.
func (e *Engine) enumerateCandidates(chosen *Variable) []candidate {
	if e.permutation {
		return e.enumeratePermutationCandidates(chosen)
	}
	return e.enumerateValueCandidates(chosen)
}

func (e *Engine) enumerateValueCandidates(chosen *Variable) []candidate {
	domain := chosen.FullDomain()
	old := chosen.Value()
	affected := e.incid.byVariable[chosen.EngineID()]

	out := make([]candidate, 0, len(domain))
	for _, nv := range domain {
		var delta float64
		for _, cid := range affected {
			delta += e.deltas[cid].delta(chosen.EngineID(), old, nv)
		}
		out = append(out, candidate{value: nv, otherVar: -1, delta: delta})
	}
	return out
}

func (e *Engine) enumeratePermutationCandidates(chosen *Variable) []candidate {
	out := make([]candidate, 0, len(e.variables)-1)
	for _, other := range e.variables {
		if other.EngineID() == chosen.EngineID() {
			continue
		}
		out = append(out, candidate{
			value:    other.Value(),
			otherVar: other.EngineID(),
			delta:    e.swapDelta(chosen, other),
		})
	}
	return out
}

// swapDelta computes the signed total error change of swapping chosen and
// other's values, counting each affected constraint exactly once (spec's
// "M[chosen] union M[other]"). A swap changes two variables at once, which
// ExpertDeltaConstraint's single-variable signature cannot express, so the
// union is always scored via simulate-then-restore against Error(), never
// via the user's DeltaError override.
func (e *Engine) swapDelta(chosen, other *Variable) float64 {
	union := unionConstraints(e.incid.byVariable[chosen.EngineID()], e.incid.byVariable[other.EngineID()])

	oldChosen, oldOther := chosen.Value(), other.Value()
	var total float64
	for _, cid := range union {
		c := e.constraints[cid]
		before := c.Error()
		if e.incid.observes(cid, chosen.EngineID()) {
			c.UpdateVariable(chosen.EngineID(), oldOther)
		}
		if e.incid.observes(cid, other.EngineID()) {
			c.UpdateVariable(other.EngineID(), oldChosen)
		}
		after := c.Error()
		total += after - before
		if e.incid.observes(cid, chosen.EngineID()) {
			c.UpdateVariable(chosen.EngineID(), oldChosen)
		}
		if e.incid.observes(cid, other.EngineID()) {
			c.UpdateVariable(other.EngineID(), oldOther)
		}
	}
	return total
}

func unionConstraints(a, b []int) []int {
	seen := make(map[int]bool, len(a)+len(b))
	out := make([]int, 0, len(a)+len(b))
	for _, x := range a {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	for _, x := range b {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	return out
}

// breakTie implements spec's 4.5.e: if the shortlist has one candidate,
// return it; otherwise delegate to the objective's heuristic. In
// permutation mode the "value list" handed to HeuristicValue is the set of
// candidate swap partners' engine ids, since the objective's tie-break
// contract is expressed over ints and a swap partner is exactly the datum
// that distinguishes one permutation candidate from another.
func (e *Engine) breakTie(chosen *Variable, shortlist []candidate) candidate {
	if len(shortlist) == 1 {
		return shortlist[0]
	}
	values := make([]int, len(shortlist))
	for i, c := range shortlist {
		if e.permutation {
			values[i] = c.otherVar
		} else {
			values[i] = c.value
		}
	}
	picked := e.objective.HeuristicValue(e.rng, chosen, values)
	for i, v := range values {
		if v == picked {
			return shortlist[i]
		}
	}
	return shortlist[0]
}

// applyMove applies a candidate without touching error tables, used by
// resolveOptimizationPlateau to probe the objective's cost under a
// tentative move before deciding whether to commit.
func (e *Engine) applyMove(chosen *Variable, c candidate) {
	if e.permutation {
		swapPermutationValues(chosen, e.variables[c.otherVar])
	} else {
		_ = chosen.SetValue(c.value)
	}
	e.propagateVariable(chosen)
	if e.permutation {
		e.propagateVariable(e.variables[c.otherVar])
	}
}

// undoMove reverses applyMove.
func (e *Engine) undoMove(chosen *Variable, c candidate, oldValue int) {
	if e.permutation {
		swapPermutationValues(chosen, e.variables[c.otherVar])
		e.propagateVariable(chosen)
		e.propagateVariable(e.variables[c.otherVar])
	} else {
		_ = chosen.SetValue(oldValue)
		e.propagateVariable(chosen)
	}
}

func (e *Engine) propagateVariable(v *Variable) {
	for _, cid := range e.incid.byVariable[v.EngineID()] {
		e.constraints[cid].UpdateVariable(v.EngineID(), v.Value())
	}
	e.objective.UpdateVariable(v.EngineID(), v.Value())
}

// commit implements spec's 4.5.g: apply the move, update every mirror and
// error table for the affected set, and freeze the chosen variable's weak
// tabu counter according to whether the commit strictly improved
// best_sat_error. It returns true when the accumulated partial resets since
// the last restart have crossed RestartThreshold, telling the caller to
// force a full restart before the next iteration, and a non-nil *ContractError
// if any AuxiliaryData's RequiredUpdate faults - matching the propagate-
// verbatim contract documented in auxiliary.go and honored by restart's own
// RequiredReset call.
func (e *Engine) commit(chosen *Variable, c candidate, delta float64) (forceRestart bool, err error) {
	var affectedVars []int
	if e.permutation {
		other := e.variables[c.otherVar]
		affectedVars = []int{chosen.EngineID(), other.EngineID()}
		swapPermutationValues(chosen, other)
	} else {
		affectedVars = []int{chosen.EngineID()}
		_ = chosen.SetValue(c.value)
	}

	for _, vid := range affectedVars {
		e.propagateVariable(e.variables[vid])
	}
	deltas := e.computeConstraintDeltaMap(affectedVars)

	e.currentSatError = e.tables.applyDelta(deltas, e.currentSatError)
	e.tables.refreshNonTabu(e.tabu)

	for _, vid := range affectedVars {
		originalID := e.variables[vid].OriginalID()
		for _, b := range e.auxData {
			if err := b.update(e.variables, originalID, e.variables[vid].Value()); err != nil {
				return false, newContractError("AuxiliaryData.RequiredUpdate", err.Error())
			}
		}
	}

	improved := e.currentSatError < e.bestSatError
	if improved {
		e.bestSatError = e.currentSatError
		e.snapshotInto(e.finalSolution)
		e.tabu.freeze(chosen.EngineID(), e.resolved.tabuTimeSelected)
	} else {
		e.tabu.freeze(chosen.EngineID(), e.resolved.tabuTimeLocalMin)
		e.localMinima++
		forceRestart = e.maybePartialReset()
	}
	// The chosen variable's tabu counter just changed; keep E_nt in step (I4).
	e.tables.refreshNonTabu(e.tabu)

	if improved && e.currentSatError == 0 && e.optimizing && !e.satisfiedOnce {
		e.satisfiedOnce = true
		e.objective.PostprocessSatisfaction(e.variables)
		e.bestOptCost = e.objective.Cost()
	}

	return forceRestart, nil
}

// computeConstraintDeltaMap recomputes each constraint incident to
// affectedVars exactly once, after the move has already been applied and
// propagated, and returns its change against the error table's stale
// value - used by commit so E_c/E_v stay correct regardless of
// single-variable or swap mode.
func (e *Engine) computeConstraintDeltaMap(affectedVars []int) map[int]float64 {
	union := map[int]bool{}
	for _, vid := range affectedVars {
		for _, cid := range e.incid.byVariable[vid] {
			union[cid] = true
		}
	}
	deltas := make(map[int]float64, len(union))
	for cid := range union {
		deltas[cid] = e.constraints[cid].Error() - e.tables.ec[cid]
	}
	return deltas
}

// maybePartialReset implements the resolved Open Question on
// ResetThreshold/RestartThreshold/PercentToReset: once enough variables are
// simultaneously frozen, force-randomize the worst few instead of waiting
// for a full restart, and report true once enough partial resets have
// accumulated since the last restart to escalate to a full one. The caller
// (commit) propagates that signal up through iterate to Solve's loop, which
// actually performs the restart; restart() itself zeroes
// resetsSinceRestart, so this function never needs to reset the counter on
// the escalation path.
func (e *Engine) maybePartialReset() (forceRestart bool) {
	if e.tabu.frozenCount() < e.resolved.resetThreshold {
		return false
	}
	e.resetsSinceRestart++
	e.resets++

	k := len(e.variables) * e.resolved.percentToReset / 100
	if k < 1 {
		k = 1
	}
	worst := e.worstVariablesByError(k)
	for _, v := range worst {
		if e.permutation {
			continue // a swap-preserving reset has no single-variable analogue
		}
		_ = v.SetValue(v.PickRandomValue(e.rng))
		e.propagateVariable(v)
		e.tabu.freeze(v.EngineID(), 0)
	}
	if !e.permutation {
		e.currentSatError = e.tables.recompute(e.constraints)
		e.tables.refreshNonTabu(e.tabu)
	}

	return e.resetsSinceRestart >= e.resolved.restartThreshold
}

// worstVariablesByError returns the k variables with the highest E_v,
// ties broken by engine id for determinism.
func (e *Engine) worstVariablesByError(k int) []*Variable {
	type scored struct {
		v   *Variable
		err float64
	}
	all := make([]scored, len(e.variables))
	for i, v := range e.variables {
		all[i] = scored{v: v, err: e.tables.ev[v.EngineID()]}
	}
	for i := 1; i < len(all); i++ {
		for j := i; j > 0 && all[j].err > all[j-1].err; j-- {
			all[j], all[j-1] = all[j-1], all[j]
		}
	}
	if k > len(all) {
		k = len(all)
	}
	out := make([]*Variable, k)
	for i := 0; i < k; i++ {
		out[i] = all[i].v
	}
	return out
}
