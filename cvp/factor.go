package cvp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlattice/lattice"
	"github.com/katalvlaran/lvlattice/matrix"
)

// latticePointSlack is the distance, relative to the basis entries and the
// point itself, within which a start point must re-embed to be accepted as a
// lattice point.
const latticePointSlack = 1e-8

// factor is the per-lattice precomputation shared by all decoders: the flat
// basis and the upper Cholesky factor R of its Gram matrix (G = RᵀR). It is
// read-only after construction.
type factor struct {
	m, n  int
	basis []float64     // row-major M×N
	r     *matrix.Dense // N×N upper triangular
	rf    []float64     // row-major copy of r
	scale float64       // max |B_ij|, for lattice-point slack
}

func newFactor(g lattice.Geometry) (*factor, error) {
	if g == nil {
		return nil, fmt.Errorf("cvp: %w", matrix.ErrNilMatrix)
	}
	basis, err := matrix.Flatten(g.Generator())
	if err != nil {
		return nil, fmt.Errorf("cvp: %w", err)
	}
	r, err := matrix.Cholesky(g.Gram())
	if err != nil {
		return nil, fmt.Errorf("cvp: %w: %w", ErrBasisNotPositiveDefinite, err)
	}
	rf, _ := matrix.Flatten(r)
	var scale float64
	for _, v := range basis {
		scale = math.Max(scale, math.Abs(v))
	}

	return &factor{
		m:     g.AmbientDimension(),
		n:     g.Dimension(),
		basis: basis,
		r:     r.(*matrix.Dense),
		rf:    rf,
		scale: scale,
	}, nil
}

// coords returns u = G⁻¹Bᵀy, the real coordinates of the projection of y onto
// the lattice span.
func (f *factor) coords(y []float64) ([]float64, error) {
	if err := matrix.ValidateVecLen(y, f.m); err != nil {
		return nil, err
	}
	if err := matrix.ValidateFinite(y); err != nil {
		return nil, err
	}
	bty := make([]float64, f.n)
	var r, j int
	for r = 0; r < f.m; r++ {
		if y[r] == 0 {
			continue
		}
		for j = 0; j < f.n; j++ {
			bty[j] += f.basis[r*f.n+j] * y[r]
		}
	}

	return matrix.SolveCholesky(f.r, bty)
}

// embed returns B·x.
func (f *factor) embed(x []int) []float64 {
	out := make([]float64, f.m)
	var r, j int
	for j = 0; j < f.n; j++ {
		if x[j] == 0 {
			continue
		}
		for r = 0; r < f.m; r++ {
			out[r] += f.basis[r*f.n+j] * float64(x[j])
		}
	}

	return out
}

// babai rounds u coordinate-wise.
func babai(u []float64) []int {
	x := make([]int, len(u))
	for i, v := range u {
		x[i] = int(math.Round(v))
	}

	return x
}

// indexOf recovers the integer coordinates of a lattice point v.
// Errors: ErrNotLatticePoint when v is not B·x for an integer x.
func (f *factor) indexOf(v []float64) ([]int, error) {
	u, err := f.coords(v)
	if err != nil {
		return nil, err
	}
	x := babai(u)
	back := f.embed(x)
	slack := latticePointSlack * (f.scale + norm(v))
	for i := range v {
		if math.Abs(back[i]-v[i]) > slack {
			return nil, fmt.Errorf("cvp: coordinate %d off by %g: %w", i, back[i]-v[i], ErrNotLatticePoint)
		}
	}

	return x, nil
}

// coordDistance returns ‖R(x − u)‖², the squared distance from B·x to the
// projection of the target whose coordinates are u.
func (f *factor) coordDistance(x []int, u []float64) float64 {
	var (
		i, j int
		s, d float64
	)
	for i = 0; i < f.n; i++ {
		s = 0
		for j = i; j < f.n; j++ {
			s += f.rf[i*f.n+j] * (float64(x[j]) - u[j])
		}
		d += s * s
	}

	return d
}

// result packages x as a Result against target y.
func (f *factor) result(y []float64, x []int, optimal bool) Result {
	p := f.embed(x)
	idx := make([]int, len(x))
	copy(idx, x)

	return Result{Point: p, Index: idx, Distance: squaredDistance(y, p), Optimal: optimal}
}

func squaredDistance(a, b []float64) float64 {
	var s, d float64
	for i := range a {
		d = a[i] - b[i]
		s += d * d
	}

	return s
}

func norm(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x * x
	}

	return math.Sqrt(s)
}
