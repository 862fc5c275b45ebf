package flow

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/lvlattice/matrix"
)

// EdmondsKarp computes the maximum flow from source→sink
// using the Edmonds–Karp algorithm (BFS for shortest augmenting paths)
// on a dense capacity matrix: capacity(u,v) is the capacity of u→v.
// An undirected network is a symmetric matrix.
//
// It returns:
//   - maxFlow: total flow value
//   - residual: residual capacities after the flow
//   - err: ErrSourceOutOfRange, ErrSinkOutOfRange, ErrSourceIsSink,
//     EdgeError, matrix errors, or the context error.
//
// Complexity: O(V · E²) augmentations bound, O(V²) per BFS on the dense matrix.
// Memory:     O(V²).
func EdmondsKarp(capacity matrix.Matrix, source, sink int, opts FlowOptions) (maxFlow float64, residual *matrix.Dense, err error) {
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
		bottle := bfsAugmentingPath(res, n, source, sink, opts.Epsilon, parent)
		if bottle <= opts.Epsilon {
			break
		}
		maxFlow += bottle
		opts.Logger.Debug("flow: augmenting path", slog.Float64("bottleneck", bottle), slog.Float64("total", maxFlow))

		// Augment along the parent chain.
		for v := sink; v != source; v = parent[v] {
			u := parent[v]
			res[u*n+v] -= bottle
			res[v*n+u] += bottle
		}
	}

	return maxFlow, toDense(res, n), nil
}

// bfsAugmentingPath finds the shortest (fewest-edges) path in the residual
// from source→sink with capacity > eps, records it in parent and returns its
// bottleneck capacity, or 0 if no path exists.
func bfsAugmentingPath(res []float64, n, source, sink int, eps float64, parent []int) float64 {
	for i := range parent {
		parent[i] = -1
	}
	parent[source] = source
	bottle := make([]float64, n)
	bottle[source] = math.Inf(1)

	queue := []int{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for v := 0; v < n; v++ {
			if parent[v] >= 0 || res[u*n+v] <= eps {
				continue
			}
			parent[v] = u
			bottle[v] = math.Min(bottle[u], res[u*n+v])
			if v == sink {
				return bottle[sink]
			}
			queue = append(queue, v)
		}
	}

	return 0
}
