package lattice_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlattice/lattice"
	"github.com/katalvlaran/lvlattice/matrix"
)

func TestExtendGramMatrix_Shape(t *testing.T) {
	const n = 5
	eQ, err := lattice.ExtendGramMatrix(n, func() float64 { return -0.5 })
	require.NoError(t, err)
	require.Equal(t, n+1, eQ.Rows())
	require.NoError(t, matrix.ValidateSymmetric(eQ, 0))

	sums, err := matrix.RowSums(eQ)
	require.NoError(t, err)
	for i := 0; i <= n; i++ {
		assert.InDelta(t, 0, sums[i], 1e-12)
		assert.InDelta(t, 0.5*n, at(t, eQ, i, i), 1e-12)
	}
}

func TestExtendGramMatrix_Errors(t *testing.T) {
	_, err := lattice.ExtendGramMatrix(0, func() float64 { return -1 })
	require.ErrorIs(t, err, lattice.ErrInvalidDimension)

	_, err = lattice.ExtendGramMatrix(3, func() float64 { return 0.1 })
	require.ErrorIs(t, err, lattice.ErrInvalidNoiseSign)
}

func TestNewFirstKindFromExtendedGram_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{1, 2, 5, 9} {
		eQ, err := lattice.ExtendGramMatrix(n, func() float64 { return -(0.01 + rng.Float64()) })
		require.NoError(t, err)

		f, err := lattice.NewFirstKindFromExtendedGram(eQ, lattice.DefaultTolerance)
		require.NoError(t, err, "n=%d", n)
		require.Equal(t, n, f.Dimension())

		got := f.ExtendedGram()
		for i := 0; i <= n; i++ {
			for j := 0; j <= n; j++ {
				require.InDeltaf(t, at(t, eQ, i, j), at(t, got, i, j), 1e-9, "n=%d (%d,%d)", n, i, j)
			}
		}
	}
}

func TestNewFirstKindFromExtendedGram_Errors(t *testing.T) {
	one, _ := matrix.NewDense(1, 1)
	_, err := lattice.NewFirstKindFromExtendedGram(one, lattice.DefaultTolerance)
	require.ErrorIs(t, err, lattice.ErrNotExtendedGram)

	asym, err := matrix.NewFromRows([][]float64{{1, -1, 0}, {-0.5, 1, -0.5}, {0, -0.5, 0.5}})
	require.NoError(t, err)
	_, err = lattice.NewFirstKindFromExtendedGram(asym, lattice.DefaultTolerance)
	require.ErrorIs(t, err, lattice.ErrNotExtendedGram)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	unbalanced, err := matrix.NewFromRows([][]float64{{2, -1}, {-1, 2}})
	require.NoError(t, err)
	_, err = lattice.NewFirstKindFromExtendedGram(unbalanced, lattice.DefaultTolerance)
	require.ErrorIs(t, err, lattice.ErrNotExtendedGram)

	// Disconnected conflict graph: the leading block is singular.
	zeros, _ := matrix.NewDense(3, 3)
	_, err = lattice.NewFirstKindFromExtendedGram(zeros, lattice.DefaultTolerance)
	require.ErrorIs(t, err, lattice.ErrBasisNotPositiveDefinite)
	require.ErrorIs(t, err, matrix.ErrNotPositiveDefinite)
}
