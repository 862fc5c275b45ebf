package mincut

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlattice/flow"
	"github.com/katalvlaran/lvlattice/matrix"
)

// FlowSolver reduces the global minimum cut to V−1 s–t minimum cuts: with
// s = 0 fixed, every global cut separates 0 from some t, so the lightest of
// the minimum 0–t cuts is global. Each s–t cut is the set of vertices
// reachable from 0 in the residual of a maximum flow.
//
// Capacities at or below the flow epsilon are treated as absent by the flow
// algorithm; the reported weight is recomputed from the full matrix. With
// Options.Epsilon unset the epsilon is flow.DefaultEpsilon relative to the
// heaviest edge, so graphs of any scale are cut alike.
type FlowSolver struct {
	MaxFlow flow.MaxFlowFunc // nil ⇒ flow.Dinic
	Options flow.FlowOptions // zero Epsilon ⇒ relative to the heaviest edge
}

var _ Solver = FlowSolver{}

// GlobalMinCut implements Solver.
//
// Errors: as StoerWagner, plus any error of the flow algorithm.
func (fs FlowSolver) GlobalMinCut(w matrix.Matrix) (Cut, error) {
	orig, n, err := prefetch(w)
	if err != nil {
		return Cut{}, err
	}
	capacity, _ := matrix.NewFromRows(rowsOf(orig, n))
	maxFlow := fs.MaxFlow
	if maxFlow == nil {
		maxFlow = flow.Dinic
	}
	opts := fs.Options
	if opts.Epsilon <= 0 {
		opts.Epsilon = relativeEpsilon(orig)
	}

	var best Cut
	for t := 1; t < n; t++ {
		mf, residual, err := maxFlow(capacity, 0, t, opts)
		if err != nil {
			return Cut{}, fmt.Errorf("mincut: s-t cut 0-%d: %w", t, err)
		}
		if t > 1 && mf >= best.Weight {
			continue
		}
		reach, err := flow.ReachableFrom(residual, 0, opts.Epsilon)
		if err != nil {
			return Cut{}, fmt.Errorf("mincut: %w", err)
		}
		c := normalize(orig, n, reach)
		if t == 1 || c.Weight < best.Weight {
			best = c
		}
	}

	return best, nil
}

// relativeEpsilon scales flow.DefaultEpsilon by the heaviest weight. An
// edgeless graph keeps the absolute default.
func relativeEpsilon(w []float64) float64 {
	var top float64
	for _, v := range w {
		top = math.Max(top, v)
	}
	if top == 0 {
		return flow.DefaultEpsilon
	}

	return flow.DefaultEpsilon * top
}

func rowsOf(flat []float64, n int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = flat[i*n : (i+1)*n]
	}

	return rows
}
