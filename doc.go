// Package lvlattice solves the closest vector problem (CVP) and the shortest
// vector problem (SVP) for lattices, with polynomial-time algorithms for
// lattices of Voronoi's first kind.
//
// A lattice L = {B·z : z ∈ ℤᴺ} is given by an M×N basis B whose columns are the
// generators. L is of Voronoi's first kind when its basis extends to an obtuse
// superbasis b_0,…,b_N: the vectors sum to zero and every pair has a
// non-positive inner product. For such lattices the Voronoi-relevant vectors
// are subset sums of the superbasis, a greedy walk along them reaches the
// closest point, and a global minimum cut of the conflict graph yields a
// shortest vector.
//
// Subpackages:
//
//	matrix/   — dense matrices, Cholesky factorization, validators
//	lattice/  — Lattice and FirstKind (obtuse superbasis, extended Gram matrix)
//	families/ — Zn, An, An* and random first-kind lattices
//	cvp/      — Schnorr–Euchner sphere decoder, Voronoi-relevant vectors,
//	            greedy relevant-vector decoder, batch decoding
//	flow/     — Ford–Fulkerson, Edmonds–Karp and Dinic maximum flow over dense capacities
//	mincut/   — global minimum cut: Stoer–Wagner and the max-flow reduction
//	svp/      — shortest vectors of first-kind lattices by minimum cut
//
// Quick start:
//
//	l, _ := families.NewAnStar(8)
//	g, _ := cvp.NewGreedy(l)
//	p, _ := g.NearestPoint(y)      // closest lattice point to y
//	v, _ := svp.ShortestVector(l)  // a shortest nonzero vector
//
// All packages are pure Go and report failures through wrapped sentinel errors
// that callers test with errors.Is.
package lvlattice
