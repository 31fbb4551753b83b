package ghost_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/richoux/ghost-go/pkg/ghost"
)

func TestNewDomainValuesDeduplicatesPreservingOrder(t *testing.T) {
	d := ghost.NewDomainValues(5, 1, 5, 3)
	assert.Equal(t, []int{5, 1, 3}, d.Values())
	assert.Equal(t, 3, d.Size())
}

func TestNewDomainRangeEmptyWhenLowAboveHigh(t *testing.T) {
	d := ghost.NewDomainRange(5, 1)
	assert.Equal(t, 0, d.Size())
}

func TestDomainContainsAndIndexOf(t *testing.T) {
	d := ghost.NewDomainRange(10, 15)
	idx, ok := d.IndexOf(12)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)
	assert.True(t, d.Contains(10))
	assert.False(t, d.Contains(16))

	sparse := ghost.NewDomainValues(2, 4, 6)
	idx, ok = sparse.IndexOf(4)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.False(t, sparse.Contains(5))
}
