package cvp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlattice/matrix"
)

// Checked cross-checks a decoder against an oracle (normally a SphereDecoder)
// and reports ErrIncompleteRelevantVectorSet when the decoder lands strictly
// farther from the target. It doubles every query's cost; use it in tests and
// debug builds.
type Checked struct {
	Decoder   Decoder
	Oracle    Decoder
	Tolerance float64 // relative slack on squared distance; 0 means 1e-6
}

var _ Decoder = Checked{}

// NearestPoint returns the decoder's answer or an error on disagreement.
func (c Checked) NearestPoint(target []float64) ([]float64, error) {
	res, err := c.ClosestPoint(target)

	return res.Point, err
}

// ClosestPoint returns the decoder's Result. On disagreement it returns the
// oracle's Result together with ErrIncompleteRelevantVectorSet.
func (c Checked) ClosestPoint(target []float64) (Result, error) {
	got, err := c.Decoder.ClosestPoint(target)
	if err != nil {
		return got, err
	}
	want, err := c.Oracle.ClosestPoint(target)
	if err != nil {
		return got, fmt.Errorf("Checked: oracle: %w", err)
	}
	if len(got.Point) != len(want.Point) {
		return want, fmt.Errorf("Checked: point length %d, oracle %d: %w", len(got.Point), len(want.Point), matrix.ErrDimensionMismatch)
	}
	tol := c.Tolerance
	if tol == 0 {
		tol = 1e-6
	}
	// Distinct lattice points are at least the minimum distance apart, so
	// ‖got − want‖² scales the slack with the lattice.
	if got.Distance > want.Distance+tol*math.Max(want.Distance, squaredDistance(got.Point, want.Point)) {
		return want, fmt.Errorf("Checked: distance %g, oracle %g: %w", got.Distance, want.Distance, ErrIncompleteRelevantVectorSet)
	}

	return got, nil
}
