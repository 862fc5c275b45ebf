package mincut

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlattice/matrix"
)

var (
	// ErrTooFewVertices is returned for graphs with fewer than two vertices.
	ErrTooFewVertices = errors.New("mincut: graph needs at least two vertices")

	// ErrNegativeWeight is returned when an off-diagonal weight is negative.
	ErrNegativeWeight = errors.New("mincut: negative edge weight")
)

// Cut is a bipartition of the vertices. Side[v] is true for the vertices on
// the side that excludes vertex 0; both sides are nonempty.
type Cut struct {
	Side   []bool
	Weight float64
}

// Solver computes a global minimum cut of a symmetric non-negative weight
// matrix. The diagonal is ignored.
type Solver interface {
	GlobalMinCut(w matrix.Matrix) (Cut, error)
}

// prefetch validates w and returns its row-major copy with a zero diagonal.
func prefetch(w matrix.Matrix) ([]float64, int, error) {
	if err := matrix.ValidateSquare(w); err != nil {
		return nil, 0, err
	}
	n := w.Rows()
	if n < 2 {
		return nil, 0, fmt.Errorf("mincut: %d vertices: %w", n, ErrTooFewVertices)
	}
	flat, err := matrix.Flatten(w)
	if err != nil {
		return nil, 0, err
	}
	var scale float64
	for _, v := range flat {
		scale = math.Max(scale, math.Abs(v))
	}
	if err = matrix.ValidateSymmetric(w, 1e-9*math.Max(scale, 1)); err != nil {
		return nil, 0, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		flat[i*n+i] = 0
		for j = 0; j < n; j++ {
			if flat[i*n+j] < 0 {
				return nil, 0, fmt.Errorf("mincut: w(%d,%d) = %g: %w", i, j, flat[i*n+j], ErrNegativeWeight)
			}
		}
	}

	return flat, n, nil
}

// normalize flips side so that vertex 0 is excluded and recomputes the weight.
func normalize(w []float64, n int, side []bool) Cut {
	if side[0] {
		for i := range side {
			side[i] = !side[i]
		}
	}

	return Cut{Side: side, Weight: CutWeight(w, n, side)}
}

// CutWeight returns Σ w(i,j) over i in side and j not in side, for a flat
// row-major n×n matrix.
func CutWeight(w []float64, n int, side []bool) float64 {
	var (
		s    float64
		i, j int
	)
	for i = 0; i < n; i++ {
		if !side[i] {
			continue
		}
		for j = 0; j < n; j++ {
			if !side[j] {
				s += w[i*n+j]
			}
		}
	}

	return s
}
