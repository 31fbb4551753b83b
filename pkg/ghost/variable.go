package ghost

import "math/rand"

// Variable is an integer-valued decision variable with a finite domain.
//
// A Variable is constructed by the caller (usually through a ModelBuilder
// or its variable-factory helpers) with a stable, caller-supplied
// OriginalID, transferred into an Engine at construction time, and mutated
// only by that Engine for the lifetime of a search. After a search
// completes, the Variable's Value reflects the final solution.
//
// In permutation mode the current value is derived from (domain, index)
// rather than stored directly: swapping two permutation variables swaps
// both their indices and cached values atomically, so the invariant
// "value == domain.At(index)" never observably breaks mid-swap.
type Variable struct {
	originalID int
	engineID   int // -1 until assigned by an Engine
	name       string
	domain     Domain

	value int
	index int // valid only when the owning Engine runs in permutation mode
}

// NewVariable constructs a Variable with the given stable original id,
// informational name, and domain. The variable's initial value is the
// first value in the domain; engines re-sample it during restart.
func NewVariable(originalID int, name string, domain Domain) *Variable {
	v := &Variable{
		originalID: originalID,
		engineID:   -1,
		name:       name,
		domain:     domain,
	}
	if domain.Size() > 0 {
		v.value = domain.At(0)
	}
	return v
}

// OriginalID returns the caller-supplied id this Variable was constructed
// with. Stable for the Variable's lifetime.
func (v *Variable) OriginalID() int { return v.originalID }

// EngineID returns the index this Variable was assigned within its owning
// Engine's variable vector, or -1 if it has not yet been assigned to an
// Engine.
func (v *Variable) EngineID() int { return v.engineID }

// Name returns the variable's informational name.
func (v *Variable) Name() string { return v.name }

// Domain returns the variable's (immutable) domain.
func (v *Variable) Domain() Domain { return v.domain }

// DomainSize returns the number of values in the variable's domain.
func (v *Variable) DomainSize() int { return v.domain.Size() }

// FullDomain returns the variable's domain values in order. The returned
// slice must not be mutated by the caller.
func (v *Variable) FullDomain() []int { return v.domain.Values() }

// Value returns the variable's current value.
func (v *Variable) Value() int { return v.value }

// SetValue assigns the variable's current value, returning a *DomainError
// if newValue is not a member of the domain. Has no effect on the
// permutation-mode index; single-variable mode callers (the engine itself)
// are the only ones expected to call SetValue.
func (v *Variable) SetValue(newValue int) error {
	if !v.domain.Contains(newValue) {
		return &DomainError{VariableName: v.name, OriginalID: v.originalID, Value: newValue}
	}
	v.value = newValue
	return nil
}

// PickRandomValue returns a value drawn uniformly from the variable's
// domain, without mutating the variable.
func (v *Variable) PickRandomValue(rng *rand.Rand) int {
	return v.domain.At(rng.Intn(v.domain.Size()))
}

// Index returns the variable's current index into its domain. Only
// meaningful in permutation mode.
func (v *Variable) Index() int { return v.index }

// setEngineID installs the engine-assigned id; called exactly once, during
// Engine construction.
func (v *Variable) setEngineID(id int) { v.engineID = id }

// setPermutationState installs both the index and the matching cached
// value; used by the engine when initializing or restoring permutation
// mode, where value must always equal domain.At(index).
func (v *Variable) setPermutationState(index int) {
	v.index = index
	v.value = v.domain.At(index)
}

// swapPermutationValues swaps the (index, value) pair of two variables
// atomically with respect to any observer calling Value()/Index() in
// between: both fields of both variables are updated before either is
// read back by the caller's own subsequent logic. This is the only
// mutation permutation mode performs; it never replaces a value, only
// relocates it, which is what keeps invariant I5 (multiset of values is
// preserved) true by construction.
func swapPermutationValues(a, b *Variable) {
	a.index, b.index = b.index, a.index
	a.value, b.value = b.value, a.value
}
