// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, transpose, matrix-vector product, dot product and the
// Cholesky factorization with its triangular solves. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Fast paths operate directly on *Dense flat buffers; other implementations
//     fall back to At/Set with fixed i→j→k orders.
//   - All kernels use central validators and wrap sentinels via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for accumulations and substitutions.
const ZeroSum = 0.0

// CholeskyRelTol is the relative pivot threshold used by Cholesky: a pivot
// d_k ≤ CholeskyRelTol·A[k,k] is treated as a failure of positive-definiteness.
const CholeskyRelTol = 1e-12

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul           = "Mul"
	opTranspose     = "Transpose"
	opMatVec        = "MatVec"
	opDot           = "Dot"
	opCholesky      = "Cholesky"
	opSolveCholesky = "SolveCholesky"
	opFlatten       = "Flatten"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[i*cols+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	var (
		i, j int
		acc  float64
	)
	if d, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var (
		mv  float64
		err error
	)
	for i = 0; i < rows; i++ {
		acc = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			acc += mv * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Dot returns the inner product Σ a[i]*b[i].
// Errors: ErrNilMatrix for nil slices, ErrDimensionMismatch for unequal lengths.
// Complexity: O(n).
func Dot(a, b []float64) (float64, error) {
	if err := ValidateVecLen(a, len(b)); err != nil {
		return 0, matrixErrorf(opDot, err)
	}
	if b == nil {
		return 0, matrixErrorf(opDot, ErrNilMatrix)
	}
	acc := ZeroSum
	for i := range a {
		acc += a[i] * b[i]
	}

	return acc, nil
}

// Cholesky factors a symmetric positive-definite matrix A as A = Rᵀ·R and
// returns the upper-triangular factor R (zeros below the diagonal).
//
// Implementation:
//   - Stage 1: ValidateSymmetric(A) with a relative tolerance and prefetch into a flat buffer.
//   - Stage 2: row-oriented Cholesky–Banachiewicz on the upper triangle:
//     R[k,k] = sqrt(A[k,k] − Σ_{i<k} R[i,k]²),
//     R[k,j] = (A[k,j] − Σ_{i<k} R[i,k]·R[i,j]) / R[k,k] for j > k.
//   - Stage 3: a pivot ≤ CholeskyRelTol·A[k,k] (or NaN) fails with ErrNotPositiveDefinite.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry, ErrNotPositiveDefinite.
//
// Determinism:
//   - Fixed k→j→i loop order; no pivoting.
//
// Complexity:
//   - Time O(n³/3), Space O(n²).
func Cholesky(m Matrix) (Matrix, error) {
	a, n, err := flattenSquare(m)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	// Symmetry tolerance scales with the largest diagonal magnitude.
	var scale float64
	for k := 0; k < n; k++ {
		scale = math.Max(scale, math.Abs(a[k*n+k]))
	}
	if err = ValidateSymmetric(m, 1e-9*math.Max(scale, 1)); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	r, _ := NewDense(n, n) // n ≥ 1 guaranteed by flattenSquare
	var (
		i, j, k int
		d, s    float64
	)
	for k = 0; k < n; k++ {
		d = a[k*n+k]
		for i = 0; i < k; i++ {
			d -= r.data[i*n+k] * r.data[i*n+k]
		}
		// Guard: non-positive (or relatively negligible) pivot means not PD.
		if math.IsNaN(d) || d <= CholeskyRelTol*math.Abs(a[k*n+k]) || d <= 0 {
			return nil, matrixErrorf(opCholesky, fmt.Errorf("pivot %d = %g: %w", k, d, ErrNotPositiveDefinite))
		}
		r.data[k*n+k] = math.Sqrt(d)
		for j = k + 1; j < n; j++ {
			s = a[k*n+j]
			for i = 0; i < k; i++ {
				s -= r.data[i*n+k] * r.data[i*n+j]
			}
			r.data[k*n+j] = s / r.data[k*n+k]
		}
	}

	return r, nil
}

// SolveCholesky solves (Rᵀ·R)·x = b given the upper-triangular Cholesky factor R.
//
// Implementation:
//   - Stage 1: forward substitution Rᵀ·z = b.
//   - Stage 2: backward substitution R·x = z.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (R not square or len(b) != n).
//   - ErrNotPositiveDefinite if a diagonal entry of R is not positive.
//
// Complexity:
//   - Time O(n²), Space O(n).
func SolveCholesky(r Matrix, b []float64) ([]float64, error) {
	rf, n, err := flattenSquare(r)
	if err != nil {
		return nil, matrixErrorf(opSolveCholesky, err)
	}
	if err = ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolveCholesky, err)
	}
	for k := 0; k < n; k++ {
		if !(rf[k*n+k] > 0) {
			return nil, matrixErrorf(opSolveCholesky, ErrNotPositiveDefinite)
		}
	}

	return solveUpperFactor(rf, n, b), nil
}

// solveUpperFactor is the allocation-light core of SolveCholesky on a flat factor.
func solveUpperFactor(rf []float64, n int, b []float64) []float64 {
	var (
		i, k int
		s    float64
	)
	z := make([]float64, n)
	for k = 0; k < n; k++ { // Rᵀ is lower-triangular: (Rᵀ)[k,i] = R[i,k]
		s = b[k]
		for i = 0; i < k; i++ {
			s -= rf[i*n+k] * z[i]
		}
		z[k] = s / rf[k*n+k]
	}
	x := make([]float64, n)
	for k = n - 1; k >= 0; k-- {
		s = z[k]
		for i = k + 1; i < n; i++ {
			s -= rf[k*n+i] * x[i]
		}
		x[k] = s / rf[k*n+k]
	}

	return x
}

// flattenSquare validates m as square and returns its row-major copy and order.
func flattenSquare(m Matrix) ([]float64, int, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, 0, err
	}
	flat, err := Flatten(m)
	if err != nil {
		return nil, 0, err
	}

	return flat, m.Rows(), nil
}
