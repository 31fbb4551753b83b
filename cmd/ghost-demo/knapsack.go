package main

import (
	"github.com/spf13/cobra"

	"github.com/richoux/ghost-go/pkg/ghost/constraints"
	"github.com/richoux/ghost-go/pkg/ghost/model"
)

// knapsackModel declares the two-variable knapsack from spec's §8
// scenarios 2 and 3: bottle in [0,51], sandwich in [0,11], a capacity
// constraint bottle + 1.25*sandwich <= 30, and then either - when optimize
// is false - a nutrition-floor constraint 500*bottle + 650*sandwich >= 15000
// or - when optimize is true - an objective maximizing
// 500*bottle + 650*sandwich.
type knapsackModel struct {
	optimize bool
}

func (knapsackModel) DeclareVariables(r *model.Registry) {
	r.CreateNVariablesRange(1, 0, 51, "bottle")
	r.CreateNVariablesRange(1, 0, 11, "sandwich")
}

func (knapsackModel) DeclareConstraints(r *model.Registry) {
	r.AddConstraint(constraints.NewLinearLE([]int{0, 1}, []float64{1, 1.25}, 30))
}

func (k knapsackModel) DeclareObjective(r *model.Registry) {
	if !k.optimize {
		r.AddConstraint(constraints.NewLinearGE([]int{0, 1}, []float64{500, 650}, 15000))
		return
	}
	r.SetObjective(constraints.NewLinear("knapsack-value", []int{0, 1}, []float64{500, 650}, true))
}

func (knapsackModel) DeclareAuxiliaryData(r *model.Registry) {}

var knapsackFeasibilityCmd = &cobra.Command{
	Use:   "knapsack-feasibility",
	Short: "Solve the knapsack feasibility scenario",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := baseOptions()
		if err != nil {
			return err
		}
		return runScenario("knapsack-feasibility", knapsackModel{optimize: false}, opts)
	},
}

var knapsackOptimizeCmd = &cobra.Command{
	Use:   "knapsack-optimize",
	Short: "Solve the knapsack optimization scenario",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := baseOptions()
		if err != nil {
			return err
		}
		return runScenario("knapsack-optimize", knapsackModel{optimize: true}, opts)
	},
}
