package main

import (
	"github.com/spf13/cobra"

	"github.com/richoux/ghost-go/pkg/ghost/constraints"
	"github.com/richoux/ghost-go/pkg/ghost/model"
)

// nqueensModel is the classic four-queens benchmark in permutation mode:
// one variable per row holding that row's column, starting as some
// permutation of 0..3 and only ever swapping two columns, so row and
// column distinctness (I5) comes for free and only the diagonal attacks
// need an explicit constraint.
type nqueensModel struct{}

func (nqueensModel) DeclareVariables(r *model.Registry) {
	r.CreateNVariablesRange(4, 0, 3, "row")
}

func (nqueensModel) DeclareConstraints(r *model.Registry) {
	r.AddConstraint(constraints.NewAllDifferent(0, 1, 2, 3))
	r.AddConstraint(constraints.NewNQueensDiagonal(0, 1, 2, 3))
}

func (nqueensModel) DeclareObjective(r *model.Registry)      {}
func (nqueensModel) DeclareAuxiliaryData(r *model.Registry) {}

var nqueensCmd = &cobra.Command{
	Use:   "n-queens",
	Short: "Solve four-queens in permutation mode",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := baseOptions()
		if err != nil {
			return err
		}
		opts.Permutation = true
		return runScenario("n-queens", nqueensModel{}, opts)
	},
}
