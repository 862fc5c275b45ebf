// Package matrix_test contains unit tests for the linear-algebra kernels.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlattice/matrix"
)

func TestMul_DenseAndFallbackAgree(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 0}, {0, -1, 3}})
	b := MustRows(t, [][]float64{{2, 1}, {0, 1}, {4, -2}})
	want := [][]float64{{2, 3}, {12, -7}}

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	requireMatrixNear(t, want, fast, 0)

	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	requireMatrixNear(t, want, slow, 0)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTranspose(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	want := [][]float64{{1, 4}, {2, 5}, {3, 6}}
	for _, in := range []matrix.Matrix{a, hide{a}} {
		tr, err := matrix.Transpose(in)
		require.NoError(t, err)
		requireMatrixNear(t, want, tr, 0)
	}
}

func TestMatVecAndDot(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	y, err := matrix.MatVec(a, []float64{1, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-1, -1, -1}, y)

	y2, err := matrix.MatVec(hide{a}, []float64{1, -1})
	require.NoError(t, err)
	require.Equal(t, y, y2)

	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	d, err := matrix.Dot([]float64{1, 2, 3}, []float64{4, -5, 6})
	require.NoError(t, err)
	require.Equal(t, 12.0, d)
	_, err = matrix.Dot([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestCholesky_KnownFactor(t *testing.T) {
	// A = RᵀR with R = [[2,1,-1],[0,3,2],[0,0,1]].
	a := MustRows(t, [][]float64{
		{4, 2, -2},
		{2, 10, 5},
		{-2, 5, 6},
	})
	r, err := matrix.Cholesky(a)
	require.NoError(t, err)
	requireMatrixNear(t, [][]float64{{2, 1, -1}, {0, 3, 2}, {0, 0, 1}}, r, 1e-12)

	// Round trip RᵀR == A.
	rt, _ := matrix.Transpose(r)
	back, err := matrix.Mul(rt, r)
	require.NoError(t, err)
	requireMatrixNear(t, [][]float64{{4, 2, -2}, {2, 10, 5}, {-2, 5, 6}}, back, 1e-12)
}

func TestCholesky_Failures(t *testing.T) {
	// Singular Gram of two identical columns.
	_, err := matrix.Cholesky(MustRows(t, [][]float64{{1, 1}, {1, 1}}))
	require.ErrorIs(t, err, matrix.ErrNotPositiveDefinite)

	// Indefinite.
	_, err = matrix.Cholesky(MustRows(t, [][]float64{{1, 2}, {2, 1}}))
	require.ErrorIs(t, err, matrix.ErrNotPositiveDefinite)

	// Asymmetric.
	_, err = matrix.Cholesky(MustRows(t, [][]float64{{2, 1}, {0, 2}}))
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	// Non-square.
	_, err = matrix.Cholesky(MustRows(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSolveCholesky(t *testing.T) {
	a := MustRows(t, [][]float64{{4, 2, -2}, {2, 10, 5}, {-2, 5, 6}})
	r, err := matrix.Cholesky(a)
	require.NoError(t, err)

	want := []float64{1, -2, 0.5}
	b, _ := matrix.MatVec(a, want)
	x, err := matrix.SolveCholesky(r, b)
	require.NoError(t, err)
	require.InDeltaSlice(t, want, x, 1e-12)

	_, err = matrix.SolveCholesky(r, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	zero, _ := matrix.NewDense(2, 2)
	_, err = matrix.SolveCholesky(zero, []float64{1, 1})
	require.ErrorIs(t, err, matrix.ErrNotPositiveDefinite)
}

func TestValidateSymmetric(t *testing.T) {
	require.NoError(t, matrix.ValidateSymmetric(MustRows(t, [][]float64{{1, 2}, {2 + 1e-13, 1}}), 1e-12))
	require.ErrorIs(t, matrix.ValidateSymmetric(MustRows(t, [][]float64{{1, 2}, {3, 1}}), 1e-12), matrix.ErrAsymmetry)
	require.ErrorIs(t, matrix.ValidateSymmetric(nil, 0), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateFinite([]float64{0, 1, 2}))
	require.ErrorIs(t, matrix.ValidateFinite([]float64{0, math.NaN()}), matrix.ErrNaNInf)
}
