package svp

import (
	"fmt"

	"github.com/katalvlaran/lvlattice/lattice"
	"github.com/katalvlaran/lvlattice/matrix"
)

// ConflictGraph returns the (N+1)×(N+1) weight matrix w(i,j) = −eQ(i,j) for
// i ≠ j with a zero diagonal.
//
// Errors: matrix.ErrDimensionMismatch for a non-square eQ;
// lattice.ErrNotObtuseSuperbasis when an off-diagonal entry is positive.
func ConflictGraph(eQ matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(eQ); err != nil {
		return nil, fmt.Errorf("ConflictGraph: %w", err)
	}
	flat, err := matrix.Flatten(eQ)
	if err != nil {
		return nil, fmt.Errorf("ConflictGraph: %w", err)
	}
	n := eQ.Rows()
	w, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("ConflictGraph: %w", err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = flat[i*n+j]
			if i == j || v == 0 {
				continue
			}
			if v > 0 {
				return nil, fmt.Errorf("ConflictGraph: eQ(%d,%d) = %g: %w", i, j, v, lattice.ErrNotObtuseSuperbasis)
			}
			_ = w.Set(i, j, -v)
		}
	}

	return w, nil
}
