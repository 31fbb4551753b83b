package main

import (
	"github.com/spf13/cobra"

	"github.com/richoux/ghost-go/pkg/ghost"
	"github.com/richoux/ghost-go/pkg/ghost/constraints"
	"github.com/richoux/ghost-go/pkg/ghost/model"
)

var allDifferentCmd = &cobra.Command{
	Use:   "all-different",
	Short: "Solve all-different on three variables over {1,2,3}",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := baseOptions()
		if err != nil {
			return err
		}
		return runScenario("all-different", allDifferentModel{}, opts)
	},
}

type allDifferentModel struct{}

func (allDifferentModel) DeclareVariables(r *model.Registry) {
	r.CreateNVariables(3, ghost.NewDomainValues(1, 2, 3), "v")
}

func (allDifferentModel) DeclareConstraints(r *model.Registry) {
	r.AddConstraint(constraints.NewAllDifferent(0, 1, 2))
}

func (allDifferentModel) DeclareObjective(r *model.Registry)      {}
func (allDifferentModel) DeclareAuxiliaryData(r *model.Registry) {}
