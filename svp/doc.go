// Package svp finds shortest vectors of lattices of Voronoi's first kind in
// polynomial time by reduction to a global minimum cut.
//
// For an obtuse superbasis b_0,…,b_N (Σ b_i = 0, b_i·b_j ≤ 0) the conflict
// graph has one vertex per b_i and edge weights w(i,j) = −eQ(i,j) ≥ 0. Every
// nonzero proper subset S of superbasis vectors gives the lattice vector
// Σ_{i∈S} b_i, and because the rows of eQ sum to zero
//
//	‖Σ_{i∈S} b_i‖² = Σ_{i∈S, j∉S} w(i,j),
//
// the weight of the cut (S, Sᶜ). Some shortest vector of a first-kind lattice
// has this form, so a global minimum cut yields it:
//
//	l, _ := lattice.NewFirstKind(B, lattice.DefaultTolerance)
//	res, err := svp.NewMinCut(l) // Stoer–Wagner by default
//	v, err := res.ShortestVector()
//
// The cut solver is pluggable (WithSolver); mincut.FlowSolver runs the
// classical max-flow reduction instead.
package svp
