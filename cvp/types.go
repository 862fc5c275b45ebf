package cvp

// Decoder solves the closest vector problem on a fixed lattice. Implementations
// in this package are safe for concurrent use: per-call state is allocated on
// every call and the lattice is never mutated.
type Decoder interface {
	// NearestPoint returns the lattice point closest to target.
	NearestPoint(target []float64) ([]float64, error)

	// ClosestPoint returns the closest point with its coordinates and distance.
	ClosestPoint(target []float64) (Result, error)
}

// Result is the outcome of a decode.
type Result struct {
	Point    []float64 // B·Index
	Index    []int     // integer coordinates in the lattice basis
	Distance float64   // squared Euclidean distance ‖target − Point‖²
	Optimal  bool      // false when a budget stopped the search early
}
