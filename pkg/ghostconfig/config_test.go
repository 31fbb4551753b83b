package ghostconfig_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richoux/ghost-go/pkg/ghost"
	"github.com/richoux/ghost-go/pkg/ghostconfig"
)

func TestApplyOnlyOverridesSetFields(t *testing.T) {
	base := ghost.DefaultOptions()
	base.Timeout = time.Second
	base.Seed = 1

	seed := int64(42)
	doc := ghostconfig.Document{Seed: &seed}

	merged := doc.Apply(base)
	assert.Equal(t, int64(42), merged.Seed)
	assert.Equal(t, time.Second, merged.Timeout, "unset fields stay at the base value")
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	opts := ghost.DefaultOptions()
	opts.Timeout = 750 * time.Millisecond
	opts.Seed = 99
	opts.Permutation = true
	opts.RunID = "test-run"

	path := filepath.Join(t.TempDir(), "ghost.yaml")
	require.NoError(t, ghostconfig.Save(path, opts))

	loaded, err := ghostconfig.Load(path, ghost.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, opts.Timeout, loaded.Timeout)
	assert.Equal(t, opts.Seed, loaded.Seed)
	assert.Equal(t, opts.Permutation, loaded.Permutation)
	assert.Equal(t, opts.RunID, loaded.RunID)
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := ghostconfig.Load(filepath.Join(t.TempDir(), "missing.yaml"), ghost.DefaultOptions())
	assert.Error(t, err)
}
