// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.

package matrix

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewFromColumns builds a Dense whose j-th column is cols[j] (copied).
// Lattice bases are naturally given column by column; this avoids a transpose.
//
// Errors: ErrInvalidDimensions, ErrRaggedRows (unequal column lengths), ErrNaNInf.
// Complexity: O(r*c).
func NewFromColumns(cols [][]float64) (*Dense, error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, matrixErrorf("NewFromColumns", ErrInvalidDimensions)
	}
	r, c := len(cols[0]), len(cols)
	m, _ := NewDense(r, c)
	var i, j int
	for j = 0; j < c; j++ {
		if len(cols[j]) != r {
			return nil, matrixErrorf("NewFromColumns", ErrRaggedRows)
		}
		for i = 0; i < r; i++ {
			if isNonFinite(cols[j][i]) {
				return nil, denseErrorf("NewFromColumns", i, j, ErrNaNInf)
			}
			m.data[i*c+j] = cols[j][i]
		}
	}

	return m, nil
}

// Flatten returns a row-major copy of m's entries (offset i*Cols()+j).
// Hot loops elsewhere in the module prefetch through Flatten once and then
// index the slice directly, the same way Mul's fast path does.
//
// Errors: ErrNilMatrix, or an At error from a foreign implementation.
// Complexity: O(r*c).
func Flatten(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opFlatten, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows*cols)
	if d, ok := m.(*Dense); ok {
		copy(out, d.data)

		return out, nil
	}
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opFlatten, err)
			}
			out[i*cols+j] = v
		}
	}

	return out, nil
}

// RowSums returns vector r where r[i] = sum_j m[i,j].
// Implementation: MatVec(m, ones(cols)). No custom loops.
// Complexity: O(rc).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}
	ones := make([]float64, m.Cols())
	for j := range ones {
		ones[j] = 1.0
	}

	return MatVec(m, ones)
}
