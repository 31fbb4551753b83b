// Package main is the ghost-demo CLI, a cobra-based command exercising the
// library end to end against the canonical CSP/COP benchmarks.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ghost-demo",
	Short: "Run GHOST's canonical local-search benchmarks",
	Long:  "ghost-demo wires each of ghost's canonical CSP/COP scenarios into a model.Builder and solves it, optionally loading engine options from a YAML file and exposing Prometheus metrics.",
}

var (
	flagConfigPath   string
	flagMetricsAddr  string
	flagTimeoutMS    int64
	flagSeed         int64
	flagDebugAsserts bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to a YAML ghostconfig.Document overriding engine options")
	rootCmd.PersistentFlags().StringVar(&flagMetricsAddr, "metrics-addr", "", "address to serve Prometheus metrics on (disabled if empty)")
	rootCmd.PersistentFlags().Int64Var(&flagTimeoutMS, "timeout-ms", 1000, "search timeout in milliseconds")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = derive from process entropy)")
	rootCmd.PersistentFlags().BoolVar(&flagDebugAsserts, "debug-assertions", false, "enable per-iteration invariant checks")

	rootCmd.AddCommand(allDifferentCmd)
	rootCmd.AddCommand(knapsackFeasibilityCmd)
	rootCmd.AddCommand(knapsackOptimizeCmd)
	rootCmd.AddCommand(unsatDemoCmd)
	rootCmd.AddCommand(nqueensCmd)
}
