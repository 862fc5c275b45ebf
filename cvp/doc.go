// Package cvp decodes points to lattices: closest vector (CVP) and shortest
// vector (SVP) on any nondegenerate lattice.Geometry.
//
// Two decoders implement Decoder:
//
//   - SphereDecoder — Schnorr–Euchner enumeration in the coordinate space of
//     the Cholesky factor R of the Gram matrix (G = RᵀR). The search starts
//     from the Babai point (or a caller-supplied lattice point) and is exact.
//     It is the reference every other decoder is tested against.
//
//   - Greedy — steepest descent over the relevant vectors: move to the
//     neighbour p+v that reduces the distance most until none does. Exact when
//     the set contains every Voronoi-relevant vector; cheap for lattices of
//     Voronoi's first kind, whose superbasis subset sums provide such a set.
//
// The relevant vectors of a generic lattice come from VoronoiRelevantVectors,
// which enumerates the minima of each coset c + 2ℤᴺ. ShortestVector solves SVP
// by enumeration around the origin.
//
// Budgets. WithMaxNodes and WithTimeLimit bound enumeration; WithMaxSteps
// bounds greedy descent. An exhausted budget never masquerades as an answer:
// the best point found so far comes back with Result.Optimal == false and
// ErrSearchBudgetExceeded.
//
// Concurrency. Decoders hold only read-only state, so one decoder may serve
// many goroutines; NearestPoints fans a batch out over an errgroup.
//
//	l, _ := lattice.NewFirstKind(B, lattice.DefaultTolerance)
//	gr, _ := cvp.NewGreedy(l)
//	sd, _ := cvp.NewSphereDecoder(l)
//	res, err := cvp.Checked{Decoder: gr, Oracle: sd}.ClosestPoint(y)
package cvp
