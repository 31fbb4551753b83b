package ghost

// checkInvariants re-derives every bookkeeping table from first principles
// and compares it against the engine's incrementally-maintained state,
// raising a *ContractError on any mismatch. Gated behind
// Options.DebugAssertions: it costs O(model size) and is meant for
// development and testing, not a production search loop racing a
// microsecond budget.
func (e *Engine) checkInvariants() error {
	// I1: E_c[c] == constraint[c].Error().
	for cid, c := range e.constraints {
		if got, want := e.tables.ec[cid], c.Error(); !floatsAgree(got, want) {
			return newContractError("checkInvariants",
				"E_c[%d] = %v but constraint.Error() = %v (I1)", cid, got, want)
		}
		if c.Error() < 0 {
			return newContractError("checkInvariants",
				"constraint %d reported negative error %v", cid, c.Error())
		}
	}

	// I2: E_v[v] == sum of E_c over M[v].
	for vid, cids := range e.incid.byVariable {
		var sum float64
		for _, cid := range cids {
			sum += e.tables.ec[cid]
		}
		if got := e.tables.ev[vid]; !floatsAgree(got, sum) {
			return newContractError("checkInvariants",
				"E_v[%d] = %v but sum over M[v] = %v (I2)", vid, got, sum)
		}
	}

	// I3: current_sat_error == sum of E_c.
	var total float64
	for _, ec := range e.tables.ec {
		total += ec
	}
	if !floatsAgree(e.currentSatError, total) {
		return newContractError("checkInvariants",
			"current_sat_error = %v but sum(E_c) = %v (I3)", e.currentSatError, total)
	}

	// I4: T[v] >= 0 and E_nt[v] matches the tabu mask.
	for vid := range e.variables {
		if e.tabu.counters[vid] < 0 {
			return newContractError("checkInvariants", "T[%d] = %d is negative (I4)", vid, e.tabu.counters[vid])
		}
		want := 0.0
		if e.tabu.isFree(vid) {
			want = e.tables.ev[vid]
		}
		if got := e.tables.ent[vid]; !floatsAgree(got, want) {
			return newContractError("checkInvariants",
				"E_nt[%d] = %v but expected %v given T[%d] = %d (I4)", vid, got, want, vid, e.tabu.counters[vid])
		}
	}

	// I6: every constraint's mirror matches the engine's current value.
	for cid, c := range e.constraints {
		for _, vid := range e.incid.byConstraint[cid] {
			// UpdateVariable is idempotent; calling it with the engine's own
			// current value and observing Error() stay put is the only
			// black-box way to probe mirror consistency without requiring
			// constraints to expose their mirror directly.
			before := c.Error()
			c.UpdateVariable(vid, e.variables[vid].Value())
			after := c.Error()
			if !floatsAgree(before, after) {
				return newContractError("checkInvariants",
					"constraint %d's mirror of variable %d disagreed with the engine's value (I6)", cid, vid)
			}
		}
	}

	if e.permutation {
		if err := e.checkPermutationInvariant(); err != nil {
			return err
		}
	}

	return nil
}

// checkPermutationInvariant enforces I5: in permutation mode the multiset
// of current values must always equal the multiset of domain values.
func (e *Engine) checkPermutationInvariant() error {
	seen := make(map[int]int)
	for _, v := range e.variables {
		seen[v.Value()]++
	}
	for _, v := range e.variables {
		for _, dv := range v.FullDomain() {
			seen[dv]--
		}
		break // every permutation variable shares the same domain by construction
	}
	for val, count := range seen {
		if count != 0 {
			return newContractError("checkInvariants",
				"permutation multiset invariant violated at value %d (I5)", val)
		}
	}
	return nil
}
