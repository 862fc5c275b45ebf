package lattice

import "errors"

var (
	// ErrNotObtuseSuperbasis is returned when the extended Gram matrix has a
	// strictly positive off-diagonal entry after tolerance snapping.
	ErrNotObtuseSuperbasis = errors.New("lattice: not an obtuse superbasis")

	// ErrInvalidNoiseSign is returned when a noise source for ExtendGramMatrix
	// produced a strictly positive value. It signals a caller bug.
	ErrInvalidNoiseSign = errors.New("lattice: noise source produced a positive value")

	// ErrBasisNotPositiveDefinite is returned when a Gram matrix cannot be
	// Cholesky-factored, i.e. the basis is singular or numerically near-singular.
	ErrBasisNotPositiveDefinite = errors.New("lattice: basis Gram matrix is not positive definite")

	// ErrInvalidTolerance is returned for a negative or non-finite tolerance.
	ErrInvalidTolerance = errors.New("lattice: tolerance must be finite and non-negative")

	// ErrInvalidDimension is returned for a non-positive lattice dimension.
	ErrInvalidDimension = errors.New("lattice: dimension must be positive")

	// ErrBasisShape is returned when the basis has more columns than rows.
	ErrBasisShape = errors.New("lattice: basis must have at least as many rows as columns")

	// ErrNotExtendedGram is returned when a matrix offered as an extended Gram
	// matrix is not symmetric or its rows do not sum to zero.
	ErrNotExtendedGram = errors.New("lattice: not an extended Gram matrix")

	// ErrRelevantSetTooLarge is returned when the superbasis subset enumeration
	// would exceed MaxSuperbasisSubsetOrder superbasis vectors.
	ErrRelevantSetTooLarge = errors.New("lattice: relevant vector set too large to enumerate")
)
