package lattice

import (
	"fmt"

	"github.com/katalvlaran/lvlattice/matrix"
)

// ExtendGramMatrix returns a random (n+1)×(n+1) extended Gram matrix of a
// lattice of Voronoi's first kind.
//
// Each off-diagonal pair (i,j), i<j, is drawn once from noise, in row-major
// upper-triangle order, and mirrored; the diagonal is then filled so every row
// sums to zero. A strictly obtuse, connected draw yields a positive-definite
// leading block, ready for NewFirstKindFromExtendedGram.
//
// Errors:
//   - ErrInvalidDimension when n < 1.
//   - ErrInvalidNoiseSign when noise returns a strictly positive value.
//   - matrix.ErrNaNInf when noise returns NaN or ±Inf.
func ExtendGramMatrix(n int, noise func() float64) (*matrix.Dense, error) {
	if n < 1 {
		return nil, fmt.Errorf("ExtendGramMatrix: n = %d: %w", n, ErrInvalidDimension)
	}
	size := n + 1
	eQ, _ := matrix.NewDense(size, size)

	var (
		i, j int
		v    float64
	)
	for i = 0; i < size; i++ {
		for j = i + 1; j < size; j++ {
			v = noise()
			if v > 0 {
				return nil, fmt.Errorf("ExtendGramMatrix: draw (%d,%d) = %g: %w", i, j, v, ErrInvalidNoiseSign)
			}
			if err := eQ.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("ExtendGramMatrix: %w", err)
			}
			_ = eQ.Set(j, i, v)
		}
	}

	// Fill the diagonal so that row sums are zero.
	var s, x float64
	for i = 0; i < size; i++ {
		s = 0
		for j = 0; j < size; j++ {
			if j != i {
				x, _ = eQ.At(i, j)
				s += x
			}
		}
		_ = eQ.Set(i, i, -s)
	}

	return eQ, nil
}
