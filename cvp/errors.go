package cvp

import (
	"errors"

	"github.com/katalvlaran/lvlattice/lattice"
)

var (
	// ErrSearchBudgetExceeded is returned together with the best point found so
	// far (Result.Optimal == false) when a node, time or step budget runs out.
	ErrSearchBudgetExceeded = errors.New("cvp: search budget exceeded")

	// ErrNotLatticePoint is returned when a start point does not lie on the lattice.
	ErrNotLatticePoint = errors.New("cvp: start point is not a lattice point")

	// ErrIncompleteRelevantVectorSet is returned by Checked when the wrapped
	// decoder lands farther from the target than the oracle.
	ErrIncompleteRelevantVectorSet = errors.New("cvp: relevant vector set is incomplete")

	// ErrNoRelevantVectors is returned by Greedy when it is given an empty set.
	ErrNoRelevantVectors = errors.New("cvp: empty relevant vector set")

	// ErrBasisNotPositiveDefinite is lattice.ErrBasisNotPositiveDefinite,
	// re-exported for callers that only import cvp.
	ErrBasisNotPositiveDefinite = lattice.ErrBasisNotPositiveDefinite
)
