package cvp

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvlattice/internal/relcache"
	"github.com/katalvlaran/lvlattice/lattice"
	"github.com/katalvlaran/lvlattice/matrix"
)

// MaxVoronoiDimension bounds VoronoiRelevantVectors, which searches all
// 2^N − 1 nonzero parity classes.
const MaxVoronoiDimension = 16

// cosetTieSlack is the relative slack within which two coset minima count as
// equally short.
const cosetTieSlack = 1e-9

// VoronoiRelevantVectors computes the exact Voronoi-relevant vectors of g by
// Voronoi's characterisation: for each nonzero parity class c ∈ {0,1}ᴺ, the
// shortest vectors of the coset c + 2ℤᴺ are relevant if and only if they are
// a single ± pair. Each coset is searched by enumeration on 2L.
//
// The result is cached on g when g is built on *lattice.Lattice and does not
// already publish its own set through lattice.RelevantVectorer. Budgeted calls
// are never cached.
//
// Errors:
//   - matrix.ErrNilMatrix when g is nil.
//   - lattice.ErrRelevantSetTooLarge when N > MaxVoronoiDimension.
//   - ErrBasisNotPositiveDefinite, ErrSearchBudgetExceeded.
func VoronoiRelevantVectors(g lattice.Geometry, opts ...Option) ([]lattice.Point, error) {
	if g == nil {
		return nil, fmt.Errorf("VoronoiRelevantVectors: %w", matrix.ErrNilMatrix)
	}
	if n := g.Dimension(); n > MaxVoronoiDimension {
		return nil, fmt.Errorf("VoronoiRelevantVectors: N = %d: %w", n, lattice.ErrRelevantSetTooLarge)
	}
	o := gatherOptions(opts)
	compute := func() ([]lattice.Point, error) {
		f, err := newFactor(g)
		if err != nil {
			return nil, err
		}

		return voronoiRelevant(f, o)
	}
	if c := relcache.Of(g); c != nil && !implementsRelevant(g) && o.maxNodes == 0 && o.timeLimit == 0 {
		v, err := c.Do(func() (any, error) { return compute() })
		if err != nil {
			return nil, err
		}

		return lattice.ClonePoints(v.([]lattice.Point)), nil
	}

	return compute()
}

func voronoiRelevant(f *factor, o options) ([]lattice.Point, error) {
	n := f.n
	var (
		out   []lattice.Point
		nodes int64
	)
	parity := make([]int, n)
	center := make([]float64, n)
	for mask := 1; mask < 1<<n; mask++ {
		for i := 0; i < n; i++ {
			parity[i] = (mask >> i) & 1
			center[i] = -0.5 * float64(parity[i])
		}

		// B(c + 2z) has squared norm ‖2R(z + c/2)‖²: enumerate z on 2L
		// around −c/2 and keep every minimum.
		var minima [][]int
		best := math.Inf(1)
		e := newEnumerator(f, 2, center, best, o, func(z []int, d float64) float64 {
			switch {
			case d < best*(1-cosetTieSlack):
				best = d
				minima = minima[:0]
				fallthrough
			case d <= best*(1+cosetTieSlack):
				x := make([]int, n)
				for i := range z {
					x[i] = parity[i] + 2*z[i]
				}
				minima = append(minima, x)
			}

			return best * (1 + cosetTieSlack)
		})
		complete := e.run()
		nodes += e.nodes
		if !complete {
			return nil, fmt.Errorf("VoronoiRelevantVectors: coset %b after %d nodes: %w", mask, nodes, ErrSearchBudgetExceeded)
		}
		if len(minima) != 2 {
			continue
		}
		for _, x := range minima {
			out = append(out, lattice.Point{Index: x, Vector: f.embed(x)})
		}
	}
	o.logger.Debug("cvp: voronoi relevant vectors",
		slog.Int("count", len(out)),
		slog.Int64("nodes", nodes))

	return out, nil
}
