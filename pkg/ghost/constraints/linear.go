package constraints

// LinearLE requires a weighted sum of its observed variables to stay below
// or at a fixed bound: error = max(0, sum(weight[i]*value[i]) - bound).
type LinearLE struct {
	ids     idMapping
	weights []float64
	mirror  []int
	bound   float64
}

// NewLinearLE constructs sum(weights[i]*var[originalIDs[i]]) <= bound. Panics
// if len(weights) != len(originalIDs), the same contract the corpus's own
// constructors use for mismatched parallel slices.
func NewLinearLE(originalIDs []int, weights []float64, bound float64) *LinearLE {
	if len(weights) != len(originalIDs) {
		panic("constraints.NewLinearLE: weights and originalIDs length mismatch")
	}
	return &LinearLE{
		ids:     newIDMapping(originalIDs),
		weights: append([]float64(nil), weights...),
		mirror:  make([]int, len(originalIDs)),
		bound:   bound,
	}
}

func (c *LinearLE) HasVariable(originalID int) bool { return c.ids.hasVariable(originalID) }

func (c *LinearLE) MakeVariableIDMapping(engineID, originalID int) {
	c.ids.install(engineID, originalID)
}

func (c *LinearLE) UpdateVariable(engineID, newValue int) {
	c.mirror[c.ids.position(engineID)] = newValue
}

func (c *LinearLE) weightedSum() float64 {
	var sum float64
	for i, v := range c.mirror {
		sum += c.weights[i] * float64(v)
	}
	return sum
}

func (c *LinearLE) Error() float64 {
	if over := c.weightedSum() - c.bound; over > 0 {
		return over
	}
	return 0
}

func (c *LinearLE) DeltaError(engineID, newValue int) float64 {
	pos := c.ids.position(engineID)
	oldValue := c.mirror[pos]
	if oldValue == newValue {
		return 0
	}
	shift := c.weights[pos] * float64(newValue-oldValue)
	before := c.Error()
	after := c.weightedSum() + shift - c.bound
	if after < 0 {
		after = 0
	}
	return after - before
}

// LinearGE requires a weighted sum of its observed variables to stay at or
// above a fixed bound: error = max(0, bound - sum(weight[i]*value[i])).
type LinearGE struct {
	ids     idMapping
	weights []float64
	mirror  []int
	bound   float64
}

// NewLinearGE constructs sum(weights[i]*var[originalIDs[i]]) >= bound.
func NewLinearGE(originalIDs []int, weights []float64, bound float64) *LinearGE {
	if len(weights) != len(originalIDs) {
		panic("constraints.NewLinearGE: weights and originalIDs length mismatch")
	}
	return &LinearGE{
		ids:     newIDMapping(originalIDs),
		weights: append([]float64(nil), weights...),
		mirror:  make([]int, len(originalIDs)),
		bound:   bound,
	}
}

func (c *LinearGE) HasVariable(originalID int) bool { return c.ids.hasVariable(originalID) }

func (c *LinearGE) MakeVariableIDMapping(engineID, originalID int) {
	c.ids.install(engineID, originalID)
}

func (c *LinearGE) UpdateVariable(engineID, newValue int) {
	c.mirror[c.ids.position(engineID)] = newValue
}

func (c *LinearGE) weightedSum() float64 {
	var sum float64
	for i, v := range c.mirror {
		sum += c.weights[i] * float64(v)
	}
	return sum
}

func (c *LinearGE) Error() float64 {
	if short := c.bound - c.weightedSum(); short > 0 {
		return short
	}
	return 0
}

func (c *LinearGE) DeltaError(engineID, newValue int) float64 {
	pos := c.ids.position(engineID)
	oldValue := c.mirror[pos]
	if oldValue == newValue {
		return 0
	}
	before := c.Error()
	shift := c.weights[pos] * float64(newValue-oldValue)
	after := c.bound - (c.weightedSum() + shift)
	if after < 0 {
		after = 0
	}
	return after - before
}
