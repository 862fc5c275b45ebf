package cvp

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvlattice/lattice"
	"github.com/katalvlaran/lvlattice/matrix"
)

// Greedy is the relevant-vector decoder: steepest descent over a set V that
// contains every Voronoi-relevant vector. A point no v ∈ V improves is the
// closest point, so the descent is exact when V is complete. An incomplete V
// yields a wrong answer without any error; see Checked.
type Greedy struct {
	f    *factor
	rel  []lattice.Point
	sq   []float64 // ‖v‖² per relevant vector
	nv   []float64 // ‖v‖ per relevant vector
	opts options
}

var _ Decoder = (*Greedy)(nil)

// NewGreedy prepares a greedy decoder for g. The relevant vectors come from,
// in order: WithRelevantVectors; g itself when it implements
// lattice.RelevantVectorer; VoronoiRelevantVectors(g).
//
// Errors: ErrBasisNotPositiveDefinite, ErrNoRelevantVectors, any error of the
// relevant vector source.
func NewGreedy(g lattice.Geometry, opts ...Option) (*Greedy, error) {
	f, err := newFactor(g)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts)

	rel := o.relevant
	switch {
	case rel != nil:
	case implementsRelevant(g):
		if rel, err = g.(lattice.RelevantVectorer).RelevantVectors(); err != nil {
			return nil, fmt.Errorf("NewGreedy: %w", err)
		}
	default:
		if rel, err = VoronoiRelevantVectors(g, opts...); err != nil {
			return nil, fmt.Errorf("NewGreedy: %w", err)
		}
	}
	if len(rel) == 0 {
		return nil, fmt.Errorf("NewGreedy: %w", ErrNoRelevantVectors)
	}

	sq := make([]float64, len(rel))
	nv := make([]float64, len(rel))
	for i := range rel {
		if len(rel[i].Vector) != f.m || len(rel[i].Index) != f.n {
			return nil, fmt.Errorf("NewGreedy: relevant vector %d has shape %d/%d: %w",
				i, len(rel[i].Index), len(rel[i].Vector), ErrNotLatticePoint)
		}
		sq[i] = rel[i].SquaredNorm()
		nv[i] = math.Sqrt(sq[i])
	}

	return &Greedy{f: f, rel: rel, sq: sq, nv: nv, opts: o}, nil
}

func implementsRelevant(g lattice.Geometry) bool {
	_, ok := g.(lattice.RelevantVectorer)

	return ok
}

// RelevantVectors returns a copy of the set the decoder descends over.
func (gr *Greedy) RelevantVectors() []lattice.Point { return lattice.ClonePoints(gr.rel) }

// NearestPoint returns the closest lattice point, descending from the Babai point.
func (gr *Greedy) NearestPoint(target []float64) ([]float64, error) {
	res, err := gr.ClosestPoint(target)

	return res.Point, err
}

// NearestPointFrom descends from start, which must be a lattice point.
func (gr *Greedy) NearestPointFrom(target, start []float64) ([]float64, error) {
	if _, err := gr.f.coords(target); err != nil {
		return nil, fmt.Errorf("NearestPointFrom: %w", err)
	}
	x0, err := gr.f.indexOf(start)
	if err != nil {
		return nil, fmt.Errorf("NearestPointFrom: %w", err)
	}
	res, err := gr.descend(target, x0)

	return res.Point, err
}

// ClosestPoint is NearestPoint with coordinates and squared distance.
// When WithMaxSteps stops the descent the current point is returned with
// Optimal == false and ErrSearchBudgetExceeded.
func (gr *Greedy) ClosestPoint(target []float64) (Result, error) {
	u, err := gr.f.coords(target)
	if err != nil {
		return Result{}, fmt.Errorf("ClosestPoint: %w", err)
	}

	return gr.descend(target, babai(u))
}

// ClosestRelevantVector returns the relevant vector v maximizing the
// improvement ‖y‖² − ‖y − v‖², or the zero vector when none improves on the
// origin beyond the relative tolerance.
func (gr *Greedy) ClosestRelevantVector(target []float64) ([]float64, error) {
	if _, err := gr.f.coords(target); err != nil {
		return nil, fmt.Errorf("ClosestRelevantVector: %w", err)
	}
	if k := gr.bestMove(target); k >= 0 {
		out := make([]float64, gr.f.m)
		copy(out, gr.rel[k].Vector)

		return out, nil
	}

	return make([]float64, gr.f.m), nil
}

// bestMove returns the index of the relevant vector with the largest
// improvement 2r·v − ‖v‖², or −1 when none improves. Thresholds are relative:
// a move must gain more than tol·max(‖v‖², ‖r‖·‖v‖), and improvements within
// tol·gain of each other tie and go to the lexicographically smallest Index.
func (gr *Greedy) bestMove(r []float64) int {
	tol := gr.opts.tolerance
	rn := norm(r)
	best, bestGain := -1, 0.0
	var gain, dot float64
	for i := range gr.rel {
		dot, _ = matrix.Dot(r, gr.rel[i].Vector) // lengths checked in NewGreedy
		gain = 2*dot - gr.sq[i]
		if gain <= tol*math.Max(gr.sq[i], rn*gr.nv[i]) {
			continue
		}
		switch {
		case best < 0, gain > bestGain*(1+tol):
			best, bestGain = i, gain
		case gain >= bestGain*(1-tol) && lexLess(gr.rel[i].Index, gr.rel[best].Index):
			best, bestGain = i, math.Max(gain, bestGain)
		}
	}

	return best
}

func (gr *Greedy) descend(y []float64, x []int) (Result, error) {
	v := gr.f.embed(x)
	r := make([]float64, len(y))
	for i := range y {
		r[i] = y[i] - v[i]
	}

	steps := 0
	for {
		k := gr.bestMove(r)
		if k < 0 {
			break
		}
		if gr.opts.maxSteps > 0 && steps >= gr.opts.maxSteps {
			res := gr.f.result(y, x, false)
			gr.opts.logger.Debug("cvp: greedy budget", slog.Int("steps", steps))

			return res, fmt.Errorf("ClosestPoint: after %d steps: %w", steps, ErrSearchBudgetExceeded)
		}
		mv := gr.rel[k]
		for i := range x {
			x[i] += mv.Index[i]
		}
		for i := range r {
			r[i] -= mv.Vector[i]
		}
		steps++
	}

	res := gr.f.result(y, x, true)
	gr.opts.logger.Debug("cvp: greedy descent",
		slog.Int("steps", steps),
		slog.Float64("distance", res.Distance))

	return res, nil
}

func lexLess(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}
