package flow

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/lvlattice/matrix"
)

// FordFulkerson computes the maximum flow from source→sink with the
// Ford–Fulkerson method: any augmenting path, found by an iterative DFS that
// scans neighbours in index order.
//
// It returns the same values and errors as EdmondsKarp.
//
// Steps:
//  1. Normalize options and build the residual (O(V²)).
//  2. Repeat until no path has capacity > Epsilon:
//     a. DFS from source for a path to sink (O(V²) on the dense matrix).
//     b. Augment along it by its bottleneck.
//     c. Check ctx for cancellation.
//
// Complexity: O(V² · A) for A augmentations; A is bounded by the flow value on
// integral networks. Prefer EdmondsKarp or Dinic when capacities span many
// orders of magnitude.
func FordFulkerson(capacity matrix.Matrix, source, sink int, opts FlowOptions) (maxFlow float64, residual *matrix.Dense, err error) {
	opts.normalize()
	res, n, err := buildResidual(capacity, source, sink, opts)
	if err != nil {
		return 0, nil, err
	}

	parent := make([]int, n)
	for {
		if err = opts.Ctx.Err(); err != nil {
			return maxFlow, nil, err
		}
		delta := dfsAugmentingPath(res, n, source, sink, opts.Epsilon, parent)
		if delta <= opts.Epsilon {
			break
		}
		maxFlow += delta
		opts.Logger.Debug("flow: augmenting path", slog.Float64("bottleneck", delta), slog.Float64("total", maxFlow))

		for v := sink; v != source; v = parent[v] {
			u := parent[v]
			res[u*n+v] -= delta
			res[v*n+u] += delta
		}
	}

	return maxFlow, toDense(res, n), nil
}

// dfsAugmentingPath finds some path source→sink of edges with capacity > eps,
// records it in parent and returns its bottleneck, or 0 if none exists.
func dfsAugmentingPath(res []float64, n, source, sink int, eps float64, parent []int) float64 {
	for i := range parent {
		parent[i] = -1
	}
	parent[source] = source
	minCap := make([]float64, n)
	minCap[source] = math.Inf(1)

	stack := []int{source}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for v := 0; v < n; v++ {
			if parent[v] >= 0 || res[u*n+v] <= eps {
				continue
			}
			parent[v] = u
			minCap[v] = math.Min(minCap[u], res[u*n+v])
			if v == sink {
				return minCap[sink]
			}
			stack = append(stack, v)
		}
	}

	return 0
}
