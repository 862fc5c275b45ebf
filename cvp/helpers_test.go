package cvp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlattice/lattice"
	"github.com/katalvlaran/lvlattice/matrix"
)

// mustLattice builds a lattice whose j-th basis vector is cols[j].
func mustLattice(t *testing.T, cols ...[]float64) *lattice.Lattice {
	t.Helper()
	b, err := matrix.NewFromColumns(cols)
	require.NoError(t, err)
	l, err := lattice.NewLattice(b)
	require.NoError(t, err)

	return l
}

// fromBasis adapts a (basis, error) constructor result into a lattice:
//
//	l := fromBasis(t)(families.AnGenerator(3))
func fromBasis(t *testing.T) func(matrix.Matrix, error) *lattice.Lattice {
	return func(b matrix.Matrix, err error) *lattice.Lattice {
		t.Helper()
		require.NoError(t, err)
		l, err := lattice.NewLattice(b)
		require.NoError(t, err)

		return l
	}
}

func sqDist(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += (a[i] - b[i]) * (a[i] - b[i])
	}

	return s
}
