package flow

import (
	"github.com/katalvlaran/lvlattice/matrix"
)

// buildResidual validates the capacity matrix and returns its row-major copy
// with the diagonal and every entry ≤ Epsilon cleared.
//
// Steps:
//  1. capacity must be square with finite entries.
//  2. source and sink must be distinct vertices.
//  3. An entry below −Epsilon is an EdgeError.
//
// Complexity: O(V²).
func buildResidual(capacity matrix.Matrix, source, sink int, opts FlowOptions) ([]float64, int, error) {
	if err := matrix.ValidateSquare(capacity); err != nil {
		return nil, 0, err
	}
	n := capacity.Rows()
	if source < 0 || source >= n {
		return nil, 0, ErrSourceOutOfRange
	}
	if sink < 0 || sink >= n {
		return nil, 0, ErrSinkOutOfRange
	}
	if source == sink {
		return nil, 0, ErrSourceIsSink
	}
	res, err := matrix.Flatten(capacity)
	if err != nil {
		return nil, 0, err
	}
	if err = matrix.ValidateFinite(res); err != nil {
		return nil, 0, err
	}

	var u, v int
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			c := res[u*n+v]
			if c < -opts.Epsilon {
				return nil, 0, EdgeError{From: u, To: v, Cap: c}
			}
			if u == v || c <= opts.Epsilon {
				res[u*n+v] = 0
			}
		}
	}

	return res, n, nil
}

// toDense wraps a flat residual buffer as *matrix.Dense.
func toDense(res []float64, n int) *matrix.Dense {
	rows := make([][]float64, n)
	for u := 0; u < n; u++ {
		rows[u] = res[u*n : (u+1)*n]
	}
	d, _ := matrix.NewFromRows(rows) // copies; entries are finite

	return d
}

// ReachableFrom returns, for every vertex, whether it is reachable from source
// through edges of residual capacity > eps. After a max flow this is the
// source side of a minimum s–t cut.
//
// Errors: matrix.ErrDimensionMismatch for a non-square residual,
// ErrSourceOutOfRange.
//
// Complexity: O(V²).
func ReachableFrom(residual matrix.Matrix, source int, eps float64) ([]bool, error) {
	if err := matrix.ValidateSquare(residual); err != nil {
		return nil, err
	}
	n := residual.Rows()
	if source < 0 || source >= n {
		return nil, ErrSourceOutOfRange
	}
	res, err := matrix.Flatten(residual)
	if err != nil {
		return nil, err
	}

	seen := make([]bool, n)
	seen[source] = true
	queue := []int{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for v := 0; v < n; v++ {
			if !seen[v] && res[u*n+v] > eps {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return seen, nil
}
