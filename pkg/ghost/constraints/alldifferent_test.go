package constraints_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/richoux/ghost-go/pkg/ghost/constraints"
)

func installThree(c interface {
	MakeVariableIDMapping(engineID, originalID int)
}) {
	c.MakeVariableIDMapping(0, 10)
	c.MakeVariableIDMapping(1, 11)
	c.MakeVariableIDMapping(2, 12)
}

func TestAllDifferentError(t *testing.T) {
	c := constraints.NewAllDifferent(10, 11, 12)
	installThree(c)

	c.UpdateVariable(0, 1)
	c.UpdateVariable(1, 2)
	c.UpdateVariable(2, 1)
	assert.Equal(t, float64(1), c.Error(), "one colliding pair")

	c.UpdateVariable(2, 3)
	assert.Equal(t, float64(0), c.Error(), "all distinct now")
}

func TestAllDifferentDeltaErrorMatchesBruteForce(t *testing.T) {
	c := constraints.NewAllDifferent(10, 11, 12)
	installThree(c)

	c.UpdateVariable(0, 1)
	c.UpdateVariable(1, 2)
	c.UpdateVariable(2, 1)

	before := c.Error()
	delta := c.DeltaError(2, 2)

	c.UpdateVariable(2, 2)
	after := c.Error()

	assert.Equal(t, after-before, delta)
}

func TestAllDifferentHasVariable(t *testing.T) {
	c := constraints.NewAllDifferent(10, 11, 12)
	assert.True(t, c.HasVariable(10))
	assert.True(t, c.HasVariable(12))
	assert.False(t, c.HasVariable(99))
}
