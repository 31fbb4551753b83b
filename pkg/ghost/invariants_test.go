package ghost_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richoux/ghost-go/pkg/ghost"
)

func TestSolveWithDebugAssertionsStaysConsistentUnderAllDifferent(t *testing.T) {
	opts := ghost.DefaultOptions()
	opts.Timeout = 300 * time.Millisecond
	opts.Seed = 11
	opts.DebugAssertions = true

	engine := buildAllDifferentEngine(t, opts)
	satisfied, _, _, err := engine.Solve(context.Background())

	require.NoError(t, err)
	assert.True(t, satisfied)
}

func TestSolvePermutationModePreservesMultiset(t *testing.T) {
	vars := []*ghost.Variable{
		ghost.NewVariable(0, "row0", ghost.NewDomainRange(0, 3)),
		ghost.NewVariable(1, "row1", ghost.NewDomainRange(0, 3)),
		ghost.NewVariable(2, "row2", ghost.NewDomainRange(0, 3)),
		ghost.NewVariable(3, "row3", ghost.NewDomainRange(0, 3)),
	}
	opts := ghost.DefaultOptions()
	opts.Timeout = 200 * time.Millisecond
	opts.Permutation = true
	opts.Seed = 13
	opts.DebugAssertions = true

	engine, err := ghost.NewEngine(vars, nil, nil, opts)
	require.NoError(t, err)

	_, _, solution, err := engine.Solve(context.Background())
	require.NoError(t, err)

	counts := map[int]int{}
	for _, v := range solution {
		counts[v]++
	}
	for _, v := range []int{0, 1, 2, 3} {
		assert.Equal(t, 1, counts[v], "permutation search must preserve the domain multiset")
	}
}
