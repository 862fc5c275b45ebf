package mincut

import (
	"github.com/katalvlaran/lvlattice/matrix"
)

// StoerWagner is the Stoer–Wagner global minimum cut.
//
// Each of the V−1 phases grows a maximum-adjacency ordering from the lowest
// active vertex: repeatedly add the active vertex most tightly connected to
// the grown set (ties to the lowest index). The last vertex t of the ordering
// against everything else is a minimum cut separating t from the second-last
// vertex s; s and t are then merged. The lightest cut of all phases is global.
//
// Complexity: O(V³) time, O(V²) space.
type StoerWagner struct{}

var _ Solver = StoerWagner{}

// GlobalMinCut implements Solver.
//
// Errors: ErrTooFewVertices, ErrNegativeWeight, matrix.ErrAsymmetry,
// matrix.ErrDimensionMismatch.
func (StoerWagner) GlobalMinCut(w matrix.Matrix) (Cut, error) {
	orig, n, err := prefetch(w)
	if err != nil {
		return Cut{}, err
	}
	g := make([]float64, len(orig))
	copy(g, orig)

	members := make([][]int, n)
	for i := range members {
		members[i] = []int{i}
	}
	active := make([]bool, n)
	for i := range active {
		active[i] = true
	}

	var (
		bestWeight float64
		bestSide   []int
		wsum       = make([]float64, n)
		added      = make([]bool, n)
	)
	for phase := 0; phase < n-1; phase++ {
		clear(wsum)
		clear(added)
		prev, last := -1, -1
		remaining := n - phase
		for k := 0; k < remaining; k++ {
			sel := -1
			for v := 0; v < n; v++ {
				if active[v] && !added[v] && (sel < 0 || wsum[v] > wsum[sel]) {
					sel = v
				}
			}
			added[sel] = true
			prev, last = last, sel
			for v := 0; v < n; v++ {
				if active[v] && !added[v] {
					wsum[v] += g[sel*n+v]
				}
			}
		}

		if phase == 0 || wsum[last] < bestWeight {
			bestWeight = wsum[last]
			bestSide = append(bestSide[:0], members[last]...)
		}

		// Merge last into prev.
		for v := 0; v < n; v++ {
			g[prev*n+v] += g[last*n+v]
			g[v*n+prev] = g[prev*n+v]
		}
		g[prev*n+prev] = 0
		members[prev] = append(members[prev], members[last]...)
		active[last] = false
	}

	side := make([]bool, n)
	for _, v := range bestSide {
		side[v] = true
	}

	return normalize(orig, n, side), nil
}
