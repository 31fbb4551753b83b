package ghost

// AddAuxiliaryData registers AuxiliaryData over the given subset of
// variables (by original id). Must be called before the first Solve;
// RequiredReset is invoked for every registered AuxiliaryData on every
// restart, including the implicit one Solve performs before its first
// iteration.
func (e *Engine) AddAuxiliaryData(data AuxiliaryData, originalIDs ...int) {
	e.auxData = append(e.auxData, newAuxiliaryBinding(data, originalIDs))
}

// restart discards the current configuration, regenerates an initial one
// (unless this is the engine's first restart and NoRandomStartingPoint was
// requested), clears the weak tabu list, and recomputes every error table
// from scratch.
func (e *Engine) restart() error {
	e.resetsSinceRestart = 0
	e.tabu.reset()

	skipRandomization := e.firstRestart && e.opts.NoRandomStartingPoint
	e.firstRestart = false

	if !skipRandomization {
		if err := e.generateInitialConfiguration(); err != nil {
			return err
		}
	} else {
		e.propagateAll()
	}

	e.currentSatError = e.tables.recompute(e.constraints)
	e.tables.refreshNonTabu(e.tabu)

	for _, b := range e.auxData {
		if err := b.reset(e.variables); err != nil {
			return newContractError("AuxiliaryData.RequiredReset", err.Error())
		}
	}

	if e.currentSatError < e.bestSatError {
		e.bestSatError = e.currentSatError
		e.snapshotInto(e.finalSolution)
		if e.currentSatError == 0 && e.optimizing && !e.satisfiedOnce {
			e.satisfiedOnce = true
			e.objective.PostprocessSatisfaction(e.variables)
			e.bestOptCost = e.objective.Cost()
		}
	}

	e.restarts++
	return nil
}

// generateInitialConfiguration implements spec's start-sampling policy:
// in single-variable mode with exactly one sampling round, sample every
// variable's value once; otherwise run resolved.samplings rounds (each a
// full Monte-Carlo resample in single-variable mode, or a random bubble
// pass of swaps in permutation mode), keeping the round with the lowest
// total satisfaction error and stopping early the moment a round reaches
// zero.
func (e *Engine) generateInitialConfiguration() error {
	if !e.permutation && e.resolved.samplings <= 1 {
		e.monteCarloSampleAll()
		e.propagateAll()
		return nil
	}

	rounds := e.resolved.samplings
	if rounds < 1 {
		rounds = 1
	}

	bestErr := posInf
	best := make([]int, len(e.variables))
	bestIdx := make([]int, len(e.variables))

	for r := 0; r < rounds; r++ {
		if e.permutation {
			e.randomBubblePass()
		} else {
			e.monteCarloSampleAll()
		}
		e.propagateAll()

		total := 0.0
		for _, c := range e.constraints {
			total += c.Error()
		}

		if total < bestErr {
			bestErr = total
			e.snapshotInto(best)
			if e.permutation {
				for i, v := range e.variables {
					bestIdx[i] = v.Index()
				}
			}
		}
		if bestErr <= 0 {
			break
		}
	}

	if e.permutation {
		for i, v := range e.variables {
			v.setPermutationState(bestIdx[i])
		}
	} else {
		for i, v := range e.variables {
			if err := v.SetValue(best[i]); err != nil {
				return err
			}
		}
	}
	e.propagateAll()
	return nil
}

func (e *Engine) monteCarloSampleAll() {
	for _, v := range e.variables {
		_ = v.SetValue(v.PickRandomValue(e.rng))
	}
}

// randomBubblePass performs a random bubble pass over the permutation: for
// every pair (i, j) with i < j, swap the two variables' (index, value)
// pairs with probability 0.5, preserving invariant I5 by construction.
func (e *Engine) randomBubblePass() {
	n := len(e.variables)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if e.rng.Float64() < 0.5 {
				swapPermutationValues(e.variables[i], e.variables[j])
			}
		}
	}
}

func (e *Engine) snapshotInto(dst []int) {
	for i, v := range e.variables {
		dst[i] = v.Value()
	}
}
