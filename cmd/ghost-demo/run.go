package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/richoux/ghost-go/pkg/ghost"
	"github.com/richoux/ghost-go/pkg/ghost/model"
	"github.com/richoux/ghost-go/pkg/ghostconfig"
	"github.com/richoux/ghost-go/pkg/metrics"
	"github.com/richoux/ghost-go/pkg/trace"
)

// baseOptions builds the ghost.Options every subcommand starts from, layering
// the --config document (if given) over the engine-chosen defaults and the
// persistent CLI flags over that.
func baseOptions() (ghost.Options, error) {
	opts := ghost.DefaultOptions()
	if flagConfigPath != "" {
		loaded, err := ghostconfig.Load(flagConfigPath, opts)
		if err != nil {
			return opts, fmt.Errorf("loading --config: %w", err)
		}
		opts = loaded
	}
	opts.Timeout = time.Duration(flagTimeoutMS) * time.Millisecond
	opts.Seed = flagSeed
	opts.DebugAssertions = flagDebugAsserts
	return opts, nil
}

// runScenario builds b's model under opts, optionally starts a metrics
// server, solves it, and prints the outcome the way the corpus's own CLI
// commands report results: short, to stdout, no table formatting.
func runScenario(name string, b model.Builder, opts ghost.Options) error {
	var stopMetrics func()
	if flagMetricsAddr != "" {
		reg := prometheus.NewRegistry()
		collectors := metrics.NewCollectors(reg)
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		srv := &http.Server{Addr: flagMetricsAddr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logrus.WithError(err).Warn("ghost-demo: metrics server stopped")
			}
		}()
		stopMetrics = func() { _ = srv.Close() }
		defer stopMetrics()

		engine, err := model.Build(b, opts)
		if err != nil {
			return err
		}
		engine.SetTracer(metrics.NewTracer(collectors))
		return solveAndReport(name, engine)
	}

	engine, err := model.Build(b, opts)
	if err != nil {
		return err
	}
	engine.SetTracer(trace.NewLogger(nil))
	return solveAndReport(name, engine)
}

func solveAndReport(name string, engine *ghost.Engine) error {
	satisfied, cost, solution, err := engine.Solve(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("%s: satisfied=%v cost=%v solution=%v run_id=%s\n", name, satisfied, cost, solution, engine.RunID())
	return nil
}
