// Package driver runs several independent ghost.Engine instances
// concurrently and races them to the first satisfying solution, the
// external parallelism layer spec's concurrency model calls for (a single
// Engine is always single-threaded and non-reentrant). It generalizes the
// teacher's own WorkerPool pattern (internal/parallel.WorkerPool) from
// "bounded-concurrency task queue" to "bounded-concurrency engine race,
// keep the best", built on golang.org/x/sync/errgroup instead of a
// hand-rolled worker/shutdown-channel pair.
package driver

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/richoux/ghost-go/pkg/ghost"
)

// EngineFactory builds one independent Engine for pooled run index i (0 <=
// i < runs), seeded with its own sub-seed so every pooled Engine explores
// an independent, reproducible-as-a-set trajectory. Implementations
// typically close over a model.Builder and call model.Build with opts
// after overriding opts.Seed.
type EngineFactory func(i int, seed int64) (*ghost.Engine, error)

// Result is one pooled Engine's outcome, reported back to the Pool's
// caller alongside which run produced it.
type Result struct {
	RunIndex  int
	Satisfied bool
	Cost      float64
	Solution  []int
	RunID     string
}

// Pool races Options.ParallelRuns independent Engines built by a
// EngineFactory, honoring Options.NumberThreads as a concurrency ceiling.
type Pool struct {
	opts    ghost.Options
	factory EngineFactory
	sem     chan struct{}
}

// NewPool builds a Pool from the given base Options (consulted only for
// ParallelRuns/NumberThreads and for Seed, the parent of every pooled
// run's sub-seed - each pooled Engine gets its own Options copy from
// factory) and an EngineFactory.
func NewPool(opts ghost.Options, factory EngineFactory) *Pool {
	_, threads := ghost.ResolveParallelism(opts)
	return &Pool{opts: opts, factory: factory, sem: make(chan struct{}, threads)}
}

// Race runs every pooled Engine under ctx, returns as soon as one reports
// a satisfying solution (canceling the rest), or waits for all of them and
// returns the lowest-cost satisfying Result if optimizing is true and none
// satisfied early. optimizing controls only this early-return policy -
// each individual Engine still runs in whatever mode its own Options set.
func (p *Pool) Race(ctx context.Context, optimizing bool) (*Result, error) {
	runs, _ := ghost.ResolveParallelism(p.opts)

	raceCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(raceCtx)
	results := make(chan *Result, runs)

	for i := 0; i < runs; i++ {
		i := i
		g.Go(func() error {
			select {
			case p.sem <- struct{}{}:
			case <-gctx.Done():
				return gctx.Err()
			}
			defer func() { <-p.sem }()

			seed := deriveRNGSeed(p.opts.Seed, uint64(i))
			engine, err := p.factory(i, seed)
			if err != nil {
				return err
			}

			satisfied, cost, solution, err := engine.Solve(gctx)
			if err != nil {
				return err
			}
			result := &Result{
				RunIndex:  i,
				Satisfied: satisfied,
				Cost:      cost,
				Solution:  solution,
				RunID:     engine.RunID(),
			}
			// results is buffered to runs and each goroutine sends at most
			// once, so this send can never block - no need to race it
			// against gctx.Done(), which the cancel() below is about to
			// close anyway and could otherwise win the select and drop the
			// winning result.
			results <- result
			if satisfied && !optimizing {
				cancel()
			}
			return nil
		})
	}

	waitErr := g.Wait()
	close(results)

	var best *Result
	for r := range results {
		if !r.Satisfied {
			continue
		}
		if best == nil || r.Cost < best.Cost {
			best = r
		}
	}

	if waitErr != nil && waitErr != context.Canceled {
		return best, waitErr
	}
	return best, nil
}

// deriveRNGSeed mixes the pool's own seed with a pooled run index, using
// ghost's own SplitMix64-style deriver so every pooled Engine's stream is
// independent yet reproducible given the pool's seed - ghost.deriveSeed is
// package-private, so driver keeps its own copy of the same mix rather
// than exporting an engine-internal helper purely for this one caller.
func deriveRNGSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

