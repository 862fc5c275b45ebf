package cvp

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvlattice/lattice"
)

// SphereDecoder is the exact closest-point decoder for an arbitrary
// nondegenerate lattice. It is the reference the other decoders are
// validated against.
type SphereDecoder struct {
	f    *factor
	opts options
}

var _ Decoder = (*SphereDecoder)(nil)

// NewSphereDecoder factors the Gram matrix of g.
//
// Errors: ErrBasisNotPositiveDefinite (wrapping matrix.ErrNotPositiveDefinite)
// when the basis is singular or numerically near-singular.
func NewSphereDecoder(g lattice.Geometry, opts ...Option) (*SphereDecoder, error) {
	f, err := newFactor(g)
	if err != nil {
		return nil, err
	}

	return &SphereDecoder{f: f, opts: gatherOptions(opts)}, nil
}

// NearestPoint returns the lattice point closest to target, starting the
// search from the Babai point.
func (s *SphereDecoder) NearestPoint(target []float64) ([]float64, error) {
	res, err := s.ClosestPoint(target)

	return res.Point, err
}

// NearestPointFrom is NearestPoint with an explicit start point, which must be
// a lattice point. A good start only tightens the initial radius; the answer
// is the same.
//
// Errors: ErrNotLatticePoint, matrix.ErrDimensionMismatch, ErrSearchBudgetExceeded.
func (s *SphereDecoder) NearestPointFrom(target, start []float64) ([]float64, error) {
	u, err := s.f.coords(target)
	if err != nil {
		return nil, fmt.Errorf("NearestPointFrom: %w", err)
	}
	x0, err := s.f.indexOf(start)
	if err != nil {
		return nil, fmt.Errorf("NearestPointFrom: %w", err)
	}
	res, err := s.search(target, u, x0)

	return res.Point, err
}

// ClosestPoint returns the closest lattice point with its coordinates and
// squared distance. When a budget stops the search the best point seen so far
// is returned with Optimal == false and ErrSearchBudgetExceeded.
func (s *SphereDecoder) ClosestPoint(target []float64) (Result, error) {
	u, err := s.f.coords(target)
	if err != nil {
		return Result{}, fmt.Errorf("ClosestPoint: %w", err)
	}

	return s.search(target, u, babai(u))
}

func (s *SphereDecoder) search(y, u []float64, start []int) (Result, error) {
	best := make([]int, len(start))
	copy(best, start)
	bestD := s.f.coordDistance(best, u)

	e := newEnumerator(s.f, 1, u, bestD, s.opts, func(x []int, d float64) float64 {
		if d < bestD {
			bestD = d
			copy(best, x)
		}

		return bestD
	})
	complete := e.run()

	res := s.f.result(y, best, complete)
	s.opts.logger.Debug("cvp: sphere search",
		slog.Int64("nodes", e.nodes),
		slog.Float64("distance", res.Distance),
		slog.Bool("optimal", complete))
	if !complete {
		return res, fmt.Errorf("ClosestPoint: after %d nodes: %w", e.nodes, ErrSearchBudgetExceeded)
	}

	return res, nil
}

// ShortestVector returns a nonzero lattice vector of minimum norm. Distance
// holds its squared norm.
//
// The search is seeded with the shortest basis vector and only strictly
// shorter vectors replace it, so among equally short vectors the result is
// that basis vector or the first one enumerated.
func (s *SphereDecoder) ShortestVector() (Result, error) {
	n := s.f.n
	best := make([]int, n)
	bestD := 0.0
	for j := 0; j < n; j++ {
		d := s.f.rf[j*n+j] * s.f.rf[j*n+j]
		for i := 0; i < j; i++ {
			d += s.f.rf[i*n+j] * s.f.rf[i*n+j]
		}
		if j == 0 || d < bestD {
			bestD = d
			clear(best)
			best[j] = 1
		}
	}

	origin := make([]float64, n)
	e := newEnumerator(s.f, 1, origin, bestD, s.opts, func(x []int, d float64) float64 {
		if d < bestD && !(lattice.Point{Index: x}).IsZero() {
			bestD = d
			copy(best, x)
		}

		return bestD
	})
	complete := e.run()

	res := s.f.result(make([]float64, s.f.m), best, complete)
	s.opts.logger.Debug("cvp: shortest vector",
		slog.Int64("nodes", e.nodes),
		slog.Float64("norm", res.Distance),
		slog.Bool("optimal", complete))
	if !complete {
		return res, fmt.Errorf("ShortestVector: after %d nodes: %w", e.nodes, ErrSearchBudgetExceeded)
	}

	return res, nil
}

// ShortestVector builds a SphereDecoder for g and returns its shortest vector.
func ShortestVector(g lattice.Geometry, opts ...Option) (Result, error) {
	s, err := NewSphereDecoder(g, opts...)
	if err != nil {
		return Result{}, err
	}

	return s.ShortestVector()
}
