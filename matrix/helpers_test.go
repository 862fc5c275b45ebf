package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlattice/matrix"
)

// hide wraps a Matrix to hide its concrete type and force the interface fallback paths.
type hide struct{ matrix.Matrix }

// MustRows builds a *Dense from rows or fails the test.
func MustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireMatrixNear asserts element-wise |a-b| ≤ tol with identical shapes.
func requireMatrixNear(t *testing.T, want [][]float64, got matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "rows")
	require.Equal(t, len(want[0]), got.Cols(), "cols")
	for i := range want {
		for j := range want[i] {
			require.InDeltaf(t, want[i][j], MustAt(t, got, i, j), tol, "entry (%d,%d)", i, j)
		}
	}
}
