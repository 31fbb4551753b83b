package model_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richoux/ghost-go/pkg/ghost"
	"github.com/richoux/ghost-go/pkg/ghost/constraints"
	"github.com/richoux/ghost-go/pkg/ghost/model"
)

type threeVarAllDifferent struct{}

func (threeVarAllDifferent) DeclareVariables(r *model.Registry) {
	r.CreateNVariables(3, ghost.NewDomainValues(1, 2, 3), "v")
}

func (threeVarAllDifferent) DeclareConstraints(r *model.Registry) {
	r.AddConstraint(constraints.NewAllDifferent(0, 1, 2))
}

func (threeVarAllDifferent) DeclareObjective(r *model.Registry)      {}
func (threeVarAllDifferent) DeclareAuxiliaryData(r *model.Registry) {}

func TestBuildWiresDeclarationsIntoASolvableEngine(t *testing.T) {
	opts := ghost.DefaultOptions()
	opts.Timeout = 500 * time.Millisecond
	opts.Seed = 5

	engine, err := model.Build(threeVarAllDifferent{}, opts)
	require.NoError(t, err)

	satisfied, _, solution, err := engine.Solve(context.Background())
	require.NoError(t, err)
	assert.True(t, satisfied)
	assert.ElementsMatch(t, []int{1, 2, 3}, solution)
}

func TestRegistryAssignsSequentialOriginalIDsAcrossCalls(t *testing.T) {
	r := &model.Registry{}
	first := r.CreateNVariables(2, ghost.NewDomainValues(1, 2), "a")
	second := r.CreateNVariablesRange(2, 10, 11, "b")

	assert.Equal(t, 0, first[0].OriginalID())
	assert.Equal(t, 1, first[1].OriginalID())
	assert.Equal(t, 2, second[0].OriginalID())
	assert.Equal(t, 3, second[1].OriginalID())
}
