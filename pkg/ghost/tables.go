package ghost

// incidence is the variable <-> constraint incidence matrix, M[v] in the
// design notes, built once at Engine construction from each constraint's
// HasVariable and never re-scanned per iteration.
type incidence struct {
	byVariable   [][]int // byVariable[engineID]   = constraint ids observing that variable
	byConstraint [][]int // byConstraint[constraintID] = engine ids of variables it observes
}

// observes reports whether the constraint with the given id observes the
// variable with the given engine id.
func (m incidence) observes(constraintID, engineID int) bool {
	for _, v := range m.byConstraint[constraintID] {
		if v == engineID {
			return true
		}
	}
	return false
}

// buildIncidence scans each (constraint, variable) pair exactly once,
// consulting HasVariable by original id, and installs the id mapping on
// the constraint for every variable it observes - the two engine
// responsibilities spec's construction step bundles together.
func buildIncidence(variables []*Variable, constraints []Constraint) incidence {
	m := incidence{
		byVariable:   make([][]int, len(variables)),
		byConstraint: make([][]int, len(constraints)),
	}
	for cid, c := range constraints {
		for _, v := range variables {
			if !c.HasVariable(v.OriginalID()) {
				continue
			}
			c.MakeVariableIDMapping(v.EngineID(), v.OriginalID())
			m.byVariable[v.EngineID()] = append(m.byVariable[v.EngineID()], cid)
			m.byConstraint[cid] = append(m.byConstraint[cid], v.EngineID())
		}
	}
	return m
}

// errorTables holds the per-constraint, per-variable and non-tabu error
// vectors (E_c, E_v, E_nt in the design notes), kept consistent with
// invariants I1-I4 by errorTables' own methods: callers never write E_v or
// E_nt directly, only through recompute/applyDelta/refreshNonTabu.
type errorTables struct {
	ec  []float64 // E_c[c]
	ev  []float64 // E_v[v]
	ent []float64 // E_nt[v]
	m   incidence
}

func newErrorTables(numVariables, numConstraints int, m incidence) *errorTables {
	return &errorTables{
		ec:  make([]float64, numConstraints),
		ev:  make([]float64, numVariables),
		ent: make([]float64, numVariables),
		m:   m,
	}
}

// recompute rebuilds E_c from the constraints themselves, then E_v from
// E_c via the incidence matrix, restoring I1 and I2 from scratch, and
// returns the resulting total satisfaction error (I3). Used on restart,
// after a partial reset, and when a resumed Solve picks up its tables.
func (t *errorTables) recompute(constraints []Constraint) float64 {
	var total float64
	for c := range t.ec {
		t.ec[c] = constraints[c].Error()
		total += t.ec[c]
	}
	for v, cids := range t.m.byVariable {
		var sum float64
		for _, c := range cids {
			sum += t.ec[c]
		}
		t.ev[v] = sum
	}
	return total
}

// applyDelta updates E_c for the constraints named in deltas, then E_v for
// exactly the variables incident to one of those constraints (proportional
// to the affected set, not the whole model), and returns the new total
// satisfaction error. deltas maps constraint id -> signed change in that
// constraint's error.
func (t *errorTables) applyDelta(deltas map[int]float64, currentTotal float64) float64 {
	total := currentTotal
	touched := make(map[int]bool)
	for cid, d := range deltas {
		t.ec[cid] += d
		total += d
		for _, v := range t.m.byConstraint[cid] {
			touched[v] = true
		}
	}
	for v := range touched {
		var sum float64
		for _, c := range t.m.byVariable[v] {
			sum += t.ec[c]
		}
		t.ev[v] = sum
	}
	return total
}

// refreshNonTabu recomputes E_nt from E_v and the weak tabu list, enforcing
// invariant I4: E_nt[v] = E_v[v] if T[v] == 0, else 0.
func (t *errorTables) refreshNonTabu(tabu *tabuList) {
	for v := range t.ev {
		if tabu.counters[v] == 0 {
			t.ent[v] = t.ev[v]
		} else {
			t.ent[v] = 0
		}
	}
}
