package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/richoux/ghost-go/pkg/ghost"
	"github.com/richoux/ghost-go/pkg/ghost/constraints"
	"github.com/richoux/ghost-go/pkg/ghost/model"
)

// unsatModel is the pigeonhole scenario: three variables squeezed into a
// two-value domain under all-different, which no assignment can satisfy.
// Exercises the engine's timeout path rather than any solution.
type unsatModel struct{}

func (unsatModel) DeclareVariables(r *model.Registry) {
	r.CreateNVariables(3, ghost.NewDomainValues(1, 2), "v")
}

func (unsatModel) DeclareConstraints(r *model.Registry) {
	r.AddConstraint(constraints.NewAllDifferent(0, 1, 2))
}

func (unsatModel) DeclareObjective(r *model.Registry)     {}
func (unsatModel) DeclareAuxiliaryData(r *model.Registry) {}

var unsatDemoCmd = &cobra.Command{
	Use:   "unsat-demo",
	Short: "Run an unsatisfiable pigeonhole scenario against a tiny timeout",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := baseOptions()
		if err != nil {
			return err
		}
		opts.Timeout = 50 * time.Millisecond
		return runScenario("unsat-demo", unsatModel{}, opts)
	},
}
