package ghost

import "fmt"

// DomainError is returned by Variable.SetValue when the candidate value is
// not a member of the variable's domain. It signals a bug in the engine or
// in a constraint's delta-error computation, never a property of the
// problem being modeled. Inside Solve it reaches the caller only from the
// best-of-rounds step that installs a restart's initial configuration; the
// engine's other SetValue calls (sampling, moves, partial resets, the
// final restore) discard the returned error.
type DomainError struct {
	VariableName string
	OriginalID   int
	Value        int
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("ghost: value %d is not in the domain of variable %q (original id %d)", e.Value, e.VariableName, e.OriginalID)
}

// ContractError reports a violation of one of the engine's bookkeeping
// invariants (I1-I6 / P1-P6 in the design notes): a constraint returning a
// negative error, a delta-error override disagreeing with its brute-force
// definition, or an AuxiliaryData hook failing. ContractError is fatal and
// always propagated; the search never attempts to recover from it.
type ContractError struct {
	Context string
	Detail  string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("ghost: contract violation in %s: %s", e.Context, e.Detail)
}

// newContractError builds a ContractError with a formatted detail message.
func newContractError(context, format string, args ...any) *ContractError {
	return &ContractError{Context: context, Detail: fmt.Sprintf(format, args...)}
}
