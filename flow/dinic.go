package flow

import (
	"context"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvlattice/matrix"
)

// Dinic computes the maximum flow from source to sink on a dense capacity
// matrix using Dinic's algorithm (level graph + blocking flows).
//
// It returns:
//   - maxFlow  : the total flow value
//   - residual : remaining capacities, residual(u,v) = cap(u,v) − f(u,v) + f(v,u)
//   - err      : ErrSourceOutOfRange, ErrSinkOutOfRange, ErrSourceIsSink,
//     EdgeError, matrix errors, or context cancellation error
//
// Steps:
//  1. Normalize options and capture context.
//  2. Build the residual buffer via buildResidual (O(V²)).
//  3. Repeat until the sink is unreachable:
//     a. BFS to build the level graph.
//     b. DFS-based blocking flow pushes until none remains,
//     optionally rebuilding level graph every LevelRebuildInterval augmentations.
//
// Complexity:
//
//	Time:   O(V²·E) in general; each phase O(V²) on the dense matrix plus pushes.
//	Memory: O(V²) for the residual buffer.
func Dinic(capacity matrix.Matrix, source, sink int, opts FlowOptions) (maxFlow float64, residual *matrix.Dense, err error) {
	opts.normalize()
	ctx := opts.Ctx

	res, n, err := buildResidual(capacity, source, sink, opts)
	if err != nil {
		return 0, nil, err
	}

	level := make([]int, n)
	iter := make([]int, n)
	queue := make([]int, 0, n)
	augmentCount := 0
	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}

		// BFS levels.
		for i := range level {
			level[i] = -1
		}
		level[source] = 0
		queue = append(queue[:0], source)
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			for v := 0; v < n; v++ {
				if level[v] < 0 && res[u*n+v] > opts.Epsilon {
					level[v] = level[u] + 1
					queue = append(queue, v)
				}
			}
		}
		if level[sink] < 0 {
			break
		}

		// Blocking flow.
		clear(iter)
		for {
			if err = ctx.Err(); err != nil {
				return maxFlow, nil, err
			}
			pushed := dfsDinicPush(ctx, res, n, level, iter, source, sink, math.Inf(1), opts.Epsilon)
			if pushed <= opts.Epsilon {
				break
			}
			maxFlow += pushed
			augmentCount++
			opts.Logger.Debug("flow: dinic push", slog.Float64("pushed", pushed), slog.Float64("total", maxFlow))
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return maxFlow, toDense(res, n), nil
}

// dfsDinicPush pushes flow along the level graph from u, advancing iter[u]
// past saturated or dead-end edges, and returns the amount actually sent.
func dfsDinicPush(ctx context.Context, res []float64, n int, level, iter []int, u, sink int, available, eps float64) float64 {
	if ctx.Err() != nil {
		return 0
	}
	if u == sink {
		return available
	}
	for ; iter[u] < n; iter[u]++ {
		v := iter[u]
		capUV := res[u*n+v]
		if capUV <= eps || level[v] != level[u]+1 {
			continue
		}
		pushed := dfsDinicPush(ctx, res, n, level, iter, v, sink, math.Min(available, capUV), eps)
		if pushed > 0 {
			res[u*n+v] -= pushed
			res[v*n+u] += pushed

			return pushed
		}
	}

	return 0
}
