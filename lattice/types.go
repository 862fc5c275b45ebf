package lattice

import "github.com/katalvlaran/lvlattice/matrix"

// Geometry is the capability every lattice exposes: its shape, generator and
// Gram matrices, and the embedding of integer coordinates into ℝᴹ.
type Geometry interface {
	// Dimension returns N, the rank of the lattice.
	Dimension() int

	// AmbientDimension returns M, the dimension of the embedding space.
	AmbientDimension() int

	// Generator returns a copy of the M×N basis matrix.
	Generator() matrix.Matrix

	// Gram returns a copy of the N×N Gram matrix BᵀB.
	Gram() matrix.Matrix

	// Embed returns B·index.
	Embed(index []int) ([]float64, error)
}

// FirstKindGeometry is the capability of a lattice of Voronoi's first kind.
type FirstKindGeometry interface {
	Geometry

	// Superbasis returns a copy of the M×(N+1) obtuse superbasis.
	Superbasis() matrix.Matrix

	// ExtendedGram returns a copy of the (N+1)×(N+1) extended Gram matrix.
	ExtendedGram() matrix.Matrix

	// Tolerance returns the snapping tolerance used to validate obtuseness.
	Tolerance() float64
}

// RelevantVectorer is implemented by lattices whose relevant-vector set (or a
// finite superset of it) is known in closed form.
type RelevantVectorer interface {
	RelevantVectors() ([]Point, error)
}

// Point is a lattice point: integer coordinates and their embedding B·Index.
// Index is the identity of the point; Vector is derived from it.
type Point struct {
	Index  []int
	Vector []float64
}

// Clone returns a deep copy of p.
func (p Point) Clone() Point {
	idx := make([]int, len(p.Index))
	copy(idx, p.Index)
	vec := make([]float64, len(p.Vector))
	copy(vec, p.Vector)

	return Point{Index: idx, Vector: vec}
}

// SquaredNorm returns ‖Vector‖².
func (p Point) SquaredNorm() float64 {
	s, _ := matrix.Dot(p.Vector, p.Vector)

	return s
}

// IsZero reports whether every coordinate is zero.
func (p Point) IsZero() bool {
	for _, x := range p.Index {
		if x != 0 {
			return false
		}
	}

	return true
}
