package lattice

import (
	"fmt"

	"github.com/katalvlaran/lvlattice/internal/relcache"
	"github.com/katalvlaran/lvlattice/matrix"
)

func init() {
	relcache.Of = func(g any) *relcache.Cache {
		if b, ok := g.(interface{ base() *Lattice }); ok {
			return &b.base().relevant
		}

		return nil
	}
}

// Lattice is a lattice given by an M×N basis whose columns are the generators.
// It is immutable after construction; accessors hand out copies.
type Lattice struct {
	m, n  int
	basis []float64 // row-major M×N
	gram  []float64 // row-major N×N

	relevant relcache.Cache // []Point, see memoizeRelevant
}

var _ Geometry = (*Lattice)(nil)

// NewLattice copies basis and computes its Gram matrix.
//
// Errors:
//   - matrix.ErrNilMatrix when basis is nil.
//   - ErrBasisShape when M < N.
//   - matrix.ErrNaNInf when an entry is not finite.
//
// Linear independence is not checked here: decoders factor the Gram matrix and
// report ErrBasisNotPositiveDefinite themselves.
func NewLattice(basis matrix.Matrix) (*Lattice, error) {
	if err := matrix.ValidateNotNil(basis); err != nil {
		return nil, fmt.Errorf("NewLattice: %w", err)
	}
	m, n := basis.Rows(), basis.Cols()
	if m < n {
		return nil, fmt.Errorf("NewLattice: %d×%d: %w", m, n, ErrBasisShape)
	}
	flat, err := matrix.Flatten(basis)
	if err != nil {
		return nil, fmt.Errorf("NewLattice: %w", err)
	}
	if err = matrix.ValidateFinite(flat); err != nil {
		return nil, fmt.Errorf("NewLattice: %w", err)
	}

	// Gram = BᵀB, accumulated column pair by column pair over the flat buffer.
	gram := make([]float64, n*n)
	var i, j, r int
	var s float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			s = 0
			for r = 0; r < m; r++ {
				s += flat[r*n+i] * flat[r*n+j]
			}
			gram[i*n+j] = s
			gram[j*n+i] = s
		}
	}

	return &Lattice{m: m, n: n, basis: flat, gram: gram}, nil
}

// Dimension returns N.
func (l *Lattice) Dimension() int { return l.n }

// AmbientDimension returns M.
func (l *Lattice) AmbientDimension() int { return l.m }

// Generator returns a copy of the basis.
func (l *Lattice) Generator() matrix.Matrix { return denseFrom(l.m, l.n, l.basis) }

// Gram returns a copy of the Gram matrix.
func (l *Lattice) Gram() matrix.Matrix { return denseFrom(l.n, l.n, l.gram) }

// Embed returns B·index.
// Errors: matrix.ErrDimensionMismatch when len(index) != N.
func (l *Lattice) Embed(index []int) ([]float64, error) {
	if len(index) != l.n {
		return nil, fmt.Errorf("Embed: len %d, want %d: %w", len(index), l.n, matrix.ErrDimensionMismatch)
	}
	out := make([]float64, l.m)
	var r, j int
	for r = 0; r < l.m; r++ {
		for j = 0; j < l.n; j++ {
			if index[j] != 0 {
				out[r] += l.basis[r*l.n+j] * float64(index[j])
			}
		}
	}

	return out, nil
}

// Point returns the lattice point with the given coordinates.
func (l *Lattice) Point(index []int) (Point, error) {
	vec, err := l.Embed(index)
	if err != nil {
		return Point{}, err
	}
	idx := make([]int, len(index))
	copy(idx, index)

	return Point{Index: idx, Vector: vec}, nil
}

func (l *Lattice) base() *Lattice { return l }

// memoizeRelevant runs compute at most once per lattice and returns copies of
// its result on every call. A failed computation is cached as well.
func (l *Lattice) memoizeRelevant(compute func() ([]Point, error)) ([]Point, error) {
	v, err := l.relevant.Do(func() (any, error) { return compute() })
	if err != nil {
		return nil, err
	}

	return ClonePoints(v.([]Point)), nil
}

// ClonePoints returns a deep copy of ps.
func ClonePoints(ps []Point) []Point {
	out := make([]Point, len(ps))
	for i := range ps {
		out[i] = ps[i].Clone()
	}

	return out
}

// denseFrom copies a flat row-major buffer into a fresh *matrix.Dense.
func denseFrom(rows, cols int, flat []float64) *matrix.Dense {
	d, _ := matrix.NewDense(rows, cols) // shapes are validated at construction
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			_ = d.Set(i, j, flat[i*cols+j]) // finite by construction
		}
	}

	return d
}
