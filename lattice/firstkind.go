package lattice

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlattice/matrix"
)

// DefaultTolerance is the customary snapping tolerance for NewFirstKind.
const DefaultTolerance = 1e-12

// MaxSuperbasisSubsetOrder bounds the number of superbasis vectors (N+1) for
// which RelevantVectors enumerates all 2^(N+1)−2 subset sums.
const MaxSuperbasisSubsetOrder = 20

// FirstKind is a lattice of Voronoi's first kind: its basis extends to an
// obtuse superbasis b_0,…,b_N with Σ b_i = 0 and b_i·b_j ≤ 0 for i ≠ j.
type FirstKind struct {
	*Lattice

	superbasis *matrix.Dense // M×(N+1), last column −Σ b_i
	extGram    *matrix.Dense // (N+1)×(N+1), snapped
	tolerance  float64
}

var _ FirstKindGeometry = (*FirstKind)(nil)

// NewFirstKind validates that basis extends to an obtuse superbasis.
//
// Implementation:
//   - Stage 1: build the lattice, require a positive-definite Gram matrix and
//     append the column −(b_0+…+b_{N−1}).
//   - Stage 2: eQ = sBᵀ·sB.
//   - Stage 3: for every i<j, snap |eQ(i,j)| < tolerance to 0 (both halves);
//     a remaining eQ(i,j) > 0 fails.
//
// Errors:
//   - ErrInvalidTolerance for NaN, ±Inf or negative tolerance.
//   - ErrBasisNotPositiveDefinite (wrapping matrix.ErrNotPositiveDefinite) when
//     the columns are linearly dependent.
//   - ErrNotObtuseSuperbasis wrapped with the offending (i,j) and value.
//   - Any NewLattice error.
//
// Complexity: O(M·N²).
func NewFirstKind(basis matrix.Matrix, tolerance float64) (*FirstKind, error) {
	if math.IsNaN(tolerance) || math.IsInf(tolerance, 0) || tolerance < 0 {
		return nil, fmt.Errorf("NewFirstKind: %g: %w", tolerance, ErrInvalidTolerance)
	}
	l, err := NewLattice(basis)
	if err != nil {
		return nil, err
	}
	if _, err = matrix.Cholesky(l.Gram()); err != nil {
		return nil, fmt.Errorf("NewFirstKind: %w: %w", ErrBasisNotPositiveDefinite, err)
	}
	m, n := l.m, l.n

	sB, _ := matrix.NewDense(m, n+1)
	var (
		r, j int
		sum  float64
	)
	for r = 0; r < m; r++ {
		sum = 0
		for j = 0; j < n; j++ {
			_ = sB.Set(r, j, l.basis[r*n+j])
			sum += l.basis[r*n+j]
		}
		_ = sB.Set(r, n, -sum)
	}

	sBt, err := matrix.Transpose(sB)
	if err != nil {
		return nil, fmt.Errorf("NewFirstKind: %w", err)
	}
	prod, err := matrix.Mul(sBt, sB)
	if err != nil {
		return nil, fmt.Errorf("NewFirstKind: %w", err)
	}
	eQ := prod.(*matrix.Dense)

	var (
		i int
		v float64
	)
	for i = 0; i <= n; i++ {
		for j = i + 1; j <= n; j++ {
			v, _ = eQ.At(i, j)
			if math.Abs(v) < tolerance {
				v = 0
				_ = eQ.Set(i, j, 0)
				_ = eQ.Set(j, i, 0)
			}
			if v > 0 {
				return nil, fmt.Errorf("NewFirstKind: eQ(%d,%d) = %g: %w", i, j, v, ErrNotObtuseSuperbasis)
			}
		}
	}

	return &FirstKind{Lattice: l, superbasis: sB, extGram: eQ, tolerance: tolerance}, nil
}

// NewFirstKindFromExtendedGram builds a first-kind lattice whose extended Gram
// matrix is eQ. The leading N×N block Q is factored as Q = RᵀR and R becomes
// the (square) basis, so the result is unique up to an orthogonal transform.
//
// Errors:
//   - ErrNotExtendedGram when eQ is smaller than 2×2, not symmetric, or has a
//     row sum beyond a relative 1e-9.
//   - ErrBasisNotPositiveDefinite when Q cannot be factored.
//   - Any NewFirstKind error.
func NewFirstKindFromExtendedGram(eQ matrix.Matrix, tolerance float64) (*FirstKind, error) {
	if err := matrix.ValidateSquare(eQ); err != nil {
		return nil, fmt.Errorf("NewFirstKindFromExtendedGram: %w", err)
	}
	size := eQ.Rows()
	if size < 2 {
		return nil, fmt.Errorf("NewFirstKindFromExtendedGram: size %d: %w", size, ErrNotExtendedGram)
	}
	flat, err := matrix.Flatten(eQ)
	if err != nil {
		return nil, fmt.Errorf("NewFirstKindFromExtendedGram: %w", err)
	}
	var scale float64
	for i := 0; i < size; i++ {
		scale = math.Max(scale, math.Abs(flat[i*size+i]))
	}
	slack := 1e-9 * math.Max(scale, 1)
	if err = matrix.ValidateSymmetric(eQ, slack); err != nil {
		return nil, fmt.Errorf("NewFirstKindFromExtendedGram: %w: %w", ErrNotExtendedGram, err)
	}
	sums, _ := matrix.RowSums(eQ)
	for i, s := range sums {
		if math.Abs(s) > slack {
			return nil, fmt.Errorf("NewFirstKindFromExtendedGram: row %d sums to %g: %w", i, s, ErrNotExtendedGram)
		}
	}

	n := size - 1
	q, _ := matrix.NewDense(n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			_ = q.Set(i, j, flat[i*size+j])
		}
	}
	r, err := matrix.Cholesky(q)
	if err != nil {
		return nil, fmt.Errorf("NewFirstKindFromExtendedGram: %w: %w", ErrBasisNotPositiveDefinite, err)
	}

	return NewFirstKind(r, tolerance)
}

// Superbasis returns a copy of the M×(N+1) obtuse superbasis.
func (f *FirstKind) Superbasis() matrix.Matrix { return f.superbasis.Clone() }

// ExtendedGram returns a copy of the snapped extended Gram matrix.
func (f *FirstKind) ExtendedGram() matrix.Matrix { return f.extGram.Clone() }

// Tolerance returns the snapping tolerance the lattice was validated with.
func (f *FirstKind) Tolerance() float64 { return f.tolerance }

// RelevantVectors returns every superbasis subset sum Σ_{i∈S} b_i over
// nonempty proper S ⊂ {0,…,N}, ordered by the bitmask of S. For a first-kind
// lattice this set contains all Voronoi-relevant vectors, which is what the
// greedy decoder needs. The set is computed once and cached.
//
// Errors: ErrRelevantSetTooLarge when N+1 > MaxSuperbasisSubsetOrder.
func (f *FirstKind) RelevantVectors() ([]Point, error) {
	order := f.n + 1
	if order > MaxSuperbasisSubsetOrder {
		return nil, fmt.Errorf("RelevantVectors: %d superbasis vectors: %w", order, ErrRelevantSetTooLarge)
	}

	return f.memoizeRelevant(func() ([]Point, error) {
		full := 1<<order - 1
		out := make([]Point, 0, full-1)
		side := make([]bool, order)
		for mask := 1; mask < full; mask++ {
			for i := 0; i < order; i++ {
				side[i] = mask&(1<<i) != 0
			}
			p, err := f.SubsetSum(side)
			if err != nil {
				return nil, err
			}
			out = append(out, p)
		}

		return out, nil
	})
}

// SubsetSum returns the lattice point Σ_{i : side[i]} b_i.
//
// Errors: matrix.ErrDimensionMismatch when len(side) != N+1.
func (f *FirstKind) SubsetSum(side []bool) (Point, error) {
	if len(side) != f.n+1 {
		return Point{}, fmt.Errorf("SubsetSum: len %d, want %d: %w", len(side), f.n+1, matrix.ErrDimensionMismatch)
	}

	return f.Point(SuperbasisSubsetIndex(side))
}

// SuperbasisSubsetIndex converts a subset S of superbasis indices {0,…,N}
// (len(side) == N+1) into the coordinates of Σ_{i∈S} b_i in the basis
// b_0,…,b_{N−1}. Since b_N = −Σ_{j<N} b_j the i-th coordinate is [i∈S] − [N∈S].
func SuperbasisSubsetIndex(side []bool) []int {
	if len(side) == 0 {
		return nil
	}
	n := len(side) - 1
	idx := make([]int, n)
	shift := 0
	if side[n] {
		shift = -1
	}
	for i := 0; i < n; i++ {
		idx[i] = shift
		if side[i] {
			idx[i]++
		}
	}

	return idx
}
