package ghost

// AuxiliaryData lets a caller attach derived state over a subset of
// variables (by original id) that constraints or the objective read back
// cheaply instead of recomputing a denormalized view on every call.
//
// The distilled description of this collaborator only promises
// "panic-free caching"; this contract makes failure explicit instead:
// RequiredUpdate/RequiredReset return an error, which the engine wraps as
// a *ContractError and propagates verbatim, exactly like a constraint or
// objective that faults.
type AuxiliaryData interface {
	// RequiredUpdate is invoked by the engine after every committed change,
	// once per variable in the affected set that this AuxiliaryData
	// observes.
	RequiredUpdate(variables []*Variable, originalID, newValue int) error

	// RequiredReset is invoked on every restart (including the first) to
	// fully recompute the derived state from scratch.
	RequiredReset(variables []*Variable) error
}

// auxiliaryBinding pairs an AuxiliaryData with the set of original
// variable ids it was declared over, so the engine only calls
// RequiredUpdate for variables that AuxiliaryData actually cares about.
type auxiliaryBinding struct {
	data    AuxiliaryData
	watches map[int]bool
}

func newAuxiliaryBinding(data AuxiliaryData, originalIDs []int) auxiliaryBinding {
	w := make(map[int]bool, len(originalIDs))
	for _, id := range originalIDs {
		w[id] = true
	}
	return auxiliaryBinding{data: data, watches: w}
}

func (b auxiliaryBinding) update(variables []*Variable, originalID, newValue int) error {
	if !b.watches[originalID] {
		return nil
	}
	return b.data.RequiredUpdate(variables, originalID, newValue)
}

func (b auxiliaryBinding) reset(variables []*Variable) error {
	return b.data.RequiredReset(variables)
}
