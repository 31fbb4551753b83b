package ghost_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/richoux/ghost-go/pkg/ghost"
)

func TestResolveParallelismDefaults(t *testing.T) {
	opts := ghost.DefaultOptions()
	runs, threads := ghost.ResolveParallelism(opts)
	assert.Equal(t, 1, runs)
	assert.Equal(t, runtime.NumCPU(), threads)
}

func TestResolveParallelismHonorsExplicitValues(t *testing.T) {
	opts := ghost.DefaultOptions()
	opts.ParallelRuns = 8
	opts.NumberThreads = 2

	runs, threads := ghost.ResolveParallelism(opts)
	assert.Equal(t, 8, runs)
	assert.Equal(t, 2, threads)
}

func TestResolveParallelismClampsNonPositiveValues(t *testing.T) {
	opts := ghost.DefaultOptions()
	opts.ParallelRuns = 0
	opts.NumberThreads = -3

	runs, threads := ghost.ResolveParallelism(opts)
	assert.Equal(t, 1, runs)
	assert.Equal(t, runtime.NumCPU(), threads)
}
