// Package families provides generator matrices and lattices for the classical
// first-kind families, plus deterministic random fixtures.
//
//   - Zn  — the integer lattice, basis e_0,…,e_{n−1}.
//   - An  — the root lattice {x ∈ ℤⁿ⁺¹ : Σx = 0}, basis e_i − e_{i+1}.
//   - An* — the dual of An, basis e_i − 𝟙/(n+1) in ℝⁿ⁺¹.
//
// All three are of Voronoi's first kind. Zn and An carry their relevant
// vectors in closed form (±e_i and e_i − e_j), so decoders built on them skip
// the superbasis subset enumeration and scale past lattice.MaxSuperbasisSubsetOrder.
//
// Random fixtures follow one seeding policy: NewRand(0) is the same stream as
// NewRand(1); DeriveRand splits independent streams for workers.
//
//	rng := families.NewRand(42)
//	l, err := families.RandomFirstKind(6, rng)
//	y := families.GaussianVector(l.AmbientDimension(), 20, rng)
package families
