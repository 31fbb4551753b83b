package constraints_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/richoux/ghost-go/pkg/ghost/constraints"
)

func TestNQueensDiagonalError(t *testing.T) {
	c := constraints.NewNQueensDiagonal(0, 1, 2, 3)
	for i, id := range []int{0, 1, 2, 3} {
		c.MakeVariableIDMapping(i, id)
	}

	// columns 0,1,2,3 for rows 0,1,2,3: every row attacks its neighbor
	// diagonally (row i, col i is the main diagonal).
	for i, col := range []int{0, 1, 2, 3} {
		c.UpdateVariable(i, col)
	}
	assert.Equal(t, float64(6), c.Error(), "every pair shares the main diagonal")

	// a known four-queens solution: columns 1,3,0,2.
	for i, col := range []int{1, 3, 0, 2} {
		c.UpdateVariable(i, col)
	}
	assert.Equal(t, float64(0), c.Error())
}

func TestNQueensDiagonalDeltaErrorMatchesBruteForce(t *testing.T) {
	c := constraints.NewNQueensDiagonal(0, 1, 2, 3)
	for i, id := range []int{0, 1, 2, 3} {
		c.MakeVariableIDMapping(i, id)
	}
	for i, col := range []int{1, 3, 0, 2} {
		c.UpdateVariable(i, col)
	}

	before := c.Error()
	delta := c.DeltaError(0, 2)
	c.UpdateVariable(0, 2)
	after := c.Error()

	assert.Equal(t, after-before, delta)
}
