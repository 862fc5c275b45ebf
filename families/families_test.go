package families_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlattice/families"
	"github.com/katalvlaran/lvlattice/lattice"
)

func TestGenerators_InvalidDimension(t *testing.T) {
	_, err := families.ZnGenerator(0)
	require.ErrorIs(t, err, lattice.ErrInvalidDimension)
	_, err = families.AnGenerator(-1)
	require.ErrorIs(t, err, lattice.ErrInvalidDimension)
	_, err = families.AnStarGenerator(0)
	require.ErrorIs(t, err, lattice.ErrInvalidDimension)
}

func TestZn_RelevantVectors(t *testing.T) {
	z, err := families.NewZn(4)
	require.NoError(t, err)

	rel, err := z.RelevantVectors()
	require.NoError(t, err)
	require.Len(t, rel, 8)
	for _, p := range rel {
		assert.Equal(t, 1.0, p.SquaredNorm())
	}
	assert.Equal(t, []int{0, -1, 0, 0}, rel[3].Index)
}

func TestAn_RelevantVectors(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		a, err := families.NewAn(n)
		require.NoError(t, err)

		rel, err := a.RelevantVectors()
		require.NoError(t, err)
		require.Len(t, rel, n*(n+1))
		for _, p := range rel {
			assert.Equal(t, 2.0, p.SquaredNorm())
			sum := 0.0
			for _, x := range p.Vector {
				sum += x
			}
			assert.Equal(t, 0.0, sum)
		}
	}
}

func TestAnStar_Superbasis(t *testing.T) {
	const n = 6
	f, err := families.NewAnStar(n)
	require.NoError(t, err)

	eQ := f.ExtendedGram()
	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			v, err := eQ.At(i, j)
			require.NoError(t, err)
			if i == j {
				assert.InDelta(t, float64(n)/float64(n+1), v, 1e-12)
			} else {
				assert.InDelta(t, -1/float64(n+1), v, 1e-12)
			}
		}
	}
}

func TestNewRand_ZeroSeedPolicy(t *testing.T) {
	assert.Equal(t, families.NewRand(1).Int63(), families.NewRand(0).Int63())
	assert.NotEqual(t, families.NewRand(2).Int63(), families.NewRand(1).Int63())

	a := families.DeriveRand(families.NewRand(9), 0)
	b := families.DeriveRand(families.NewRand(9), 1)
	assert.NotEqual(t, a.Int63(), b.Int63())
}

func TestRandomFirstKind(t *testing.T) {
	rng := families.NewRand(3)
	for n := 1; n <= 8; n++ {
		f, err := families.RandomFirstKind(n, rng)
		require.NoError(t, err, "n=%d", n)
		require.Equal(t, n, f.Dimension())
	}
}

func TestRandomBasis(t *testing.T) {
	b, err := families.RandomBasis(9, 7, families.NewRand(5))
	require.NoError(t, err)
	assert.Equal(t, 9, b.Rows())
	assert.Equal(t, 7, b.Cols())

	_, err = families.RandomBasis(2, 3, nil)
	require.ErrorIs(t, err, lattice.ErrBasisShape)

	noise := families.UniformNoise(families.NewRand(4))
	for i := 0; i < 100; i++ {
		v := noise()
		assert.LessOrEqual(t, v, 0.0)
		assert.Greater(t, v, -1.0)
	}
	assert.Len(t, families.GaussianVector(5, 20, nil), 5)
}
