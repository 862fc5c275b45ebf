// Package lattice models point lattices in Euclidean space and their
// first-kind specialization.
//
// A lattice is the set of integer combinations of the N columns of an M×N
// basis B (M ≥ N). The package exposes it through two capability interfaces:
//
//	Geometry          — dimension, generator matrix, Gram matrix, Embed(index)
//	FirstKindGeometry — Geometry plus the obtuse superbasis and extended Gram
//
// implemented by *Lattice and *FirstKind respectively. *FirstKind composes a
// *Lattice; decoders depend only on the capability they need.
//
// # Lattices of Voronoi's first kind
//
// NewFirstKind appends b_N = −(b_0+…+b_{N−1}) to the basis and computes the
// extended Gram matrix eQ = sBᵀ·sB. Off-diagonal entries with |eQ(i,j)| < τ are
// snapped to zero; any surviving positive entry rejects the basis with
// ErrNotObtuseSuperbasis. τ is a first-class parameter: larger values accept
// numerically near-degenerate bases, smaller values reject valid ones whose
// Gram entries carry rounding noise.
//
//	B := families.AnGenerator(3)
//	l, err := lattice.NewFirstKind(B, lattice.DefaultTolerance)
//	eQ := l.ExtendedGram() // off-diagonals ≤ 0, rows sum to 0
//
// ExtendGramMatrix draws a random extended Gram matrix from a non-positive
// noise source and NewFirstKindFromExtendedGram turns one back into a lattice
// through a Cholesky factor of its leading N×N block.
//
// # Points and relevant vectors
//
// A Point pairs the integer coordinates (the lattice identity) with the
// embedded vector B·Index. Relevant-vector sets are computed lazily and cached
// once per lattice instance; the cache is private to this module, so callers
// only ever see copies. *FirstKind supplies the superbasis subset sums directly.
//
// All values are immutable after construction and safe for concurrent reads.
package lattice
