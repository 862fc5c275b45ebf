package families

import (
	"fmt"

	"github.com/katalvlaran/lvlattice/lattice"
)

// Zn is the integer lattice with its relevant vectors ±e_i in closed form.
type Zn struct {
	*lattice.FirstKind
}

// NewZn returns Zn with the identity basis.
func NewZn(n int) (*Zn, error) {
	g, err := ZnGenerator(n)
	if err != nil {
		return nil, err
	}
	f, err := lattice.NewFirstKind(g, lattice.DefaultTolerance)
	if err != nil {
		return nil, fmt.Errorf("NewZn: %w", err)
	}

	return &Zn{FirstKind: f}, nil
}

// RelevantVectors returns the 2n vectors ±e_i, ordered +e_0, −e_0, +e_1, ….
func (z *Zn) RelevantVectors() ([]lattice.Point, error) {
	n := z.Dimension()
	out := make([]lattice.Point, 0, 2*n)
	for i := 0; i < n; i++ {
		for _, s := range [2]int{1, -1} {
			idx := make([]int, n)
			idx[i] = s
			p, err := z.Point(idx)
			if err != nil {
				return nil, err
			}
			out = append(out, p)
		}
	}

	return out, nil
}

// An is the root lattice An with its relevant vectors e_i − e_j in closed form.
type An struct {
	*lattice.FirstKind
}

// NewAn returns An with the basis from AnGenerator.
func NewAn(n int) (*An, error) {
	g, err := AnGenerator(n)
	if err != nil {
		return nil, err
	}
	f, err := lattice.NewFirstKind(g, lattice.DefaultTolerance)
	if err != nil {
		return nil, fmt.Errorf("NewAn: %w", err)
	}

	return &An{FirstKind: f}, nil
}

// RelevantVectors returns the n(n+1) roots e_i − e_j, i ≠ j. In the basis
// e_k − e_{k+1} the root e_i − e_j (i < j) has ones on coordinates i…j−1.
func (a *An) RelevantVectors() ([]lattice.Point, error) {
	n := a.Dimension()
	out := make([]lattice.Point, 0, n*(n+1))
	var i, j, k int
	for i = 0; i <= n; i++ {
		for j = i + 1; j <= n; j++ {
			for _, s := range [2]int{1, -1} {
				idx := make([]int, n)
				for k = i; k < j; k++ {
					idx[k] = s
				}
				p, err := a.Point(idx)
				if err != nil {
					return nil, err
				}
				out = append(out, p)
			}
		}
	}

	return out, nil
}

// NewAnStar returns An* as a first-kind lattice. Every superbasis subset sum
// of An* is relevant, so the generic first-kind enumeration is exact here.
func NewAnStar(n int) (*lattice.FirstKind, error) {
	g, err := AnStarGenerator(n)
	if err != nil {
		return nil, err
	}
	f, err := lattice.NewFirstKind(g, lattice.DefaultTolerance)
	if err != nil {
		return nil, fmt.Errorf("NewAnStar: %w", err)
	}

	return f, nil
}
