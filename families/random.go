package families

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlattice/lattice"
	"github.com/katalvlaran/lvlattice/matrix"
)

// defaultSeed replaces a zero seed so that NewRand(0) stays reproducible.
const defaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand; seed 0 maps to defaultSeed.
// A *rand.Rand is not safe for concurrent use; give each goroutine its own
// stream via DeriveRand.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// mixSeed is a SplitMix64 finalizer over parent and stream.
func mixSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRand returns an independent stream keyed by stream. It consumes one
// value from base (nil base uses defaultSeed as the parent).
func DeriveRand(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(mixSeed(parent, stream)))
}

// GaussianVector returns m independent N(0, std²) samples.
func GaussianVector(m int, std float64, rng *rand.Rand) []float64 {
	if rng == nil {
		rng = NewRand(0)
	}
	out := make([]float64, m)
	for i := range out {
		out[i] = std * rng.NormFloat64()
	}

	return out
}

// RandomBasis returns an m×n matrix of standard normal entries. Such a basis
// has full column rank with probability one but is generally not first kind.
func RandomBasis(m, n int, rng *rand.Rand) (*matrix.Dense, error) {
	if m < n || n < 1 {
		return nil, fmt.Errorf("RandomBasis: %d×%d: %w", m, n, lattice.ErrBasisShape)
	}
	if rng == nil {
		rng = NewRand(0)
	}
	b, err := matrix.NewDense(m, n)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			_ = b.Set(i, j, rng.NormFloat64())
		}
	}

	return b, nil
}

// UniformNoise returns a noise source for lattice.ExtendGramMatrix drawing
// uniformly from (−1, 0].
func UniformNoise(rng *rand.Rand) func() float64 {
	if rng == nil {
		rng = NewRand(0)
	}

	return func() float64 { return -rng.Float64() }
}

// RandomFirstKind draws a random n-dimensional first-kind lattice from a
// uniform extended Gram matrix.
func RandomFirstKind(n int, rng *rand.Rand) (*lattice.FirstKind, error) {
	eQ, err := lattice.ExtendGramMatrix(n, UniformNoise(rng))
	if err != nil {
		return nil, fmt.Errorf("RandomFirstKind: %w", err)
	}

	return lattice.NewFirstKindFromExtendedGram(eQ, lattice.DefaultTolerance)
}
