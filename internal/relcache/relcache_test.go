package relcache_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlattice/internal/relcache"
)

func TestCache_RunsOnce(t *testing.T) {
	var c relcache.Cache
	calls := 0
	compute := func() (any, error) {
		calls++

		return calls, nil
	}
	for i := 0; i < 3; i++ {
		v, err := c.Do(compute)
		require.NoError(t, err)
		assert.Equal(t, 1, v)
	}
	assert.Equal(t, 1, calls)
}

func TestCache_KeepsError(t *testing.T) {
	var c relcache.Cache
	boom := errors.New("boom")
	_, err := c.Do(func() (any, error) { return nil, boom })
	require.ErrorIs(t, err, boom)
	_, err = c.Do(func() (any, error) { return 1, nil })
	require.ErrorIs(t, err, boom)
}

func TestOf_ForeignValue(t *testing.T) {
	assert.Nil(t, relcache.Of(42))
}
