// Package model supplies the ModelBuilder facade named in ghost's external
// interfaces: a thin declarative wrapper so callers assemble a Variable/
// Constraint/Objective/AuxiliaryData set without calling ghost.NewEngine
// directly, the same "builder declares, facade wires" split the teacher
// draws between its public model package and its internal solving engine.
package model

import "github.com/richoux/ghost-go/pkg/ghost"

// Builder is the four-hook declaration interface a caller implements to
// describe one CSP/COP model. Each hook is optional in the sense that a
// model with no objective or no auxiliary data simply leaves that hook a
// no-op; DeclareVariables and DeclareConstraints are expected to always do
// real work.
type Builder interface {
	DeclareVariables(r *Registry)
	DeclareConstraints(r *Registry)
	DeclareObjective(r *Registry)
	DeclareAuxiliaryData(r *Registry)
}

// Registry accumulates a Builder's declarations before Build wires them
// into a ghost.Engine. A Registry is only ever touched from within a
// single Build call; it is not meant to be reused across builds.
type Registry struct {
	variables   []*ghost.Variable
	nextID      int
	constraints []ghost.Constraint
	objective   ghost.Objective
	auxiliary   []auxiliaryDecl
}

type auxiliaryDecl struct {
	data        ghost.AuxiliaryData
	originalIDs []int
}

// CreateNVariables declares n variables sharing the given domain, with
// sequential original ids starting from the Registry's own counter (so
// repeated calls across DeclareVariables never collide). Returns the
// created variables in id order.
func (r *Registry) CreateNVariables(n int, domain ghost.Domain, namePrefix string) []*ghost.Variable {
	out := make([]*ghost.Variable, n)
	for i := 0; i < n; i++ {
		id := r.nextID
		r.nextID++
		out[i] = ghost.NewVariable(id, namePrefix, domain)
	}
	r.variables = append(r.variables, out...)
	return out
}

// CreateNVariablesRange declares n variables over the contiguous range
// [low, high], the "explicit range" variable factory named in ghost's
// external interfaces alongside CreateNVariables' explicit-list form.
func (r *Registry) CreateNVariablesRange(n, low, high int, namePrefix string) []*ghost.Variable {
	return r.CreateNVariables(n, ghost.NewDomainRange(low, high), namePrefix)
}

// AddConstraint registers a constraint built by the caller (typically over
// the original ids of variables returned from CreateNVariables*).
func (r *Registry) AddConstraint(c ghost.Constraint) { r.constraints = append(r.constraints, c) }

// SetObjective installs the model's objective. Calling it more than once
// overwrites the previous objective; a model with no objective call runs
// in satisfaction-only mode.
func (r *Registry) SetObjective(o ghost.Objective) { r.objective = o }

// AddAuxiliaryData registers AuxiliaryData over the given subset of
// variables by original id, deferred until Build constructs the Engine
// (AuxiliaryData can only be attached to a live Engine, never to a bare
// Registry).
func (r *Registry) AddAuxiliaryData(data ghost.AuxiliaryData, originalIDs ...int) {
	r.auxiliary = append(r.auxiliary, auxiliaryDecl{data: data, originalIDs: originalIDs})
}

// Build runs every declaration hook on b in spec order (variables,
// constraints, objective, auxiliary data) and wires the result into a new
// ghost.Engine.
func Build(b Builder, opts ghost.Options) (*ghost.Engine, error) {
	r := &Registry{}
	b.DeclareVariables(r)
	b.DeclareConstraints(r)
	b.DeclareObjective(r)
	b.DeclareAuxiliaryData(r)

	engine, err := ghost.NewEngine(r.variables, r.constraints, r.objective, opts)
	if err != nil {
		return nil, err
	}
	for _, aux := range r.auxiliary {
		engine.AddAuxiliaryData(aux.data, aux.originalIDs...)
	}
	return engine, nil
}
