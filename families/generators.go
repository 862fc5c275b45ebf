package families

import (
	"fmt"

	"github.com/katalvlaran/lvlattice/lattice"
	"github.com/katalvlaran/lvlattice/matrix"
)

// ZnGenerator returns the n×n identity.
func ZnGenerator(n int) (*matrix.Dense, error) {
	if n < 1 {
		return nil, fmt.Errorf("ZnGenerator: n = %d: %w", n, lattice.ErrInvalidDimension)
	}

	return matrix.NewIdentity(n)
}

// AnGenerator returns the (n+1)×n matrix with columns e_i − e_{i+1}.
func AnGenerator(n int) (*matrix.Dense, error) {
	if n < 1 {
		return nil, fmt.Errorf("AnGenerator: n = %d: %w", n, lattice.ErrInvalidDimension)
	}
	g, err := matrix.NewDense(n+1, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		_ = g.Set(i, i, 1)
		_ = g.Set(i+1, i, -1)
	}

	return g, nil
}

// AnStarGenerator returns the (n+1)×n matrix with columns e_i − 𝟙/(n+1).
// Its superbasis completes with e_n − 𝟙/(n+1), so every pair of superbasis
// vectors meets at −1/(n+1).
func AnStarGenerator(n int) (*matrix.Dense, error) {
	if n < 1 {
		return nil, fmt.Errorf("AnStarGenerator: n = %d: %w", n, lattice.ErrInvalidDimension)
	}
	g, err := matrix.NewDense(n+1, n)
	if err != nil {
		return nil, err
	}
	shift := 1 / float64(n+1)
	var i, j int
	for i = 0; i <= n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				_ = g.Set(i, j, 1-shift)
			} else {
				_ = g.Set(i, j, -shift)
			}
		}
	}

	return g, nil
}
