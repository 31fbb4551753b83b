package driver_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richoux/ghost-go/pkg/driver"
	"github.com/richoux/ghost-go/pkg/ghost"
	"github.com/richoux/ghost-go/pkg/ghost/constraints"
	"github.com/richoux/ghost-go/pkg/ghost/model"
)

type allDifferentModel struct{}

func (allDifferentModel) DeclareVariables(r *model.Registry) {
	r.CreateNVariables(3, ghost.NewDomainValues(1, 2, 3), "v")
}

func (allDifferentModel) DeclareConstraints(r *model.Registry) {
	r.AddConstraint(constraints.NewAllDifferent(0, 1, 2))
}

func (allDifferentModel) DeclareObjective(r *model.Registry)      {}
func (allDifferentModel) DeclareAuxiliaryData(r *model.Registry) {}

func TestPoolRaceFindsASatisfyingResult(t *testing.T) {
	opts := ghost.DefaultOptions()
	opts.Timeout = 300 * time.Millisecond
	opts.ParallelRuns = 4
	opts.NumberThreads = 2

	factory := func(i int, seed int64) (*ghost.Engine, error) {
		runOpts := opts
		runOpts.Seed = seed
		return model.Build(allDifferentModel{}, runOpts)
	}

	pool := driver.NewPool(opts, factory)
	result, err := pool.Race(context.Background(), false)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Satisfied)
	assert.ElementsMatch(t, []int{1, 2, 3}, result.Solution)
}

func TestPoolRaceReturnsNilWhenNothingSatisfies(t *testing.T) {
	opts := ghost.DefaultOptions()
	opts.Timeout = 10 * time.Millisecond
	opts.ParallelRuns = 2
	opts.NumberThreads = 2

	factory := func(i int, seed int64) (*ghost.Engine, error) {
		vars := []*ghost.Variable{
			ghost.NewVariable(0, "v0", ghost.NewDomainValues(1, 2)),
			ghost.NewVariable(1, "v1", ghost.NewDomainValues(1, 2)),
			ghost.NewVariable(2, "v2", ghost.NewDomainValues(1, 2)),
		}
		runOpts := opts
		runOpts.Seed = seed
		return ghost.NewEngine(vars, []ghost.Constraint{constraints.NewAllDifferent(0, 1, 2)}, nil, runOpts)
	}

	pool := driver.NewPool(opts, factory)
	result, err := pool.Race(context.Background(), false)

	require.NoError(t, err)
	assert.Nil(t, result)
}
