package ghost

// tabuList is the weak tabu list T[v] from the design notes: a nonnegative
// integer per variable that decays by one each iteration and is "weak"
// because the engine may still pick a tabu variable when no free one is
// available.
type tabuList struct {
	counters []int
}

func newTabuList(numVariables int) *tabuList {
	return &tabuList{counters: make([]int, numVariables)}
}

// decay decrements every counter by one, floored at zero (I4's T[v] >= 0),
// and reports whether at least one variable is currently free (T[v] == 0).
func (t *tabuList) decay() (freeVariables bool) {
	for v := range t.counters {
		if t.counters[v] > 0 {
			t.counters[v]--
		}
		if t.counters[v] == 0 {
			freeVariables = true
		}
	}
	return freeVariables
}

// reset clears every counter to zero; called on restart.
func (t *tabuList) reset() {
	for v := range t.counters {
		t.counters[v] = 0
	}
}

// freeze sets T[v] to the given duration.
func (t *tabuList) freeze(v, duration int) {
	t.counters[v] = duration
}

// isFree reports whether T[v] == 0.
func (t *tabuList) isFree(v int) bool { return t.counters[v] == 0 }

// frozenCount returns the number of variables with T[v] > 0, used to drive
// the partial-reset policy (see Options.ResetThreshold).
func (t *tabuList) frozenCount() int {
	n := 0
	for _, c := range t.counters {
		if c > 0 {
			n++
		}
	}
	return n
}
