package cvp_test

import (
	"fmt"

	"github.com/katalvlaran/lvlattice/cvp"
	"github.com/katalvlaran/lvlattice/families"
)

// ExampleGreedy_ClosestRelevantVector picks the root of A2 that moves the
// origin closest to the target.
func ExampleGreedy_ClosestRelevantVector() {
	a2, _ := families.NewAn(2)
	gr, _ := cvp.NewGreedy(a2)

	v, _ := gr.ClosestRelevantVector([]float64{0.6, -0.6, 0})
	fmt.Println(v)
	// Output:
	// [1 -1 0]
}

// ExampleSphereDecoder_ClosestPoint decodes a point of ℝ² to ℤ².
func ExampleSphereDecoder_ClosestPoint() {
	z2, _ := families.NewZn(2)
	sd, _ := cvp.NewSphereDecoder(z2)

	res, _ := sd.ClosestPoint([]float64{0.4, 1.7})
	fmt.Println(res.Index, res.Optimal)
	// Output:
	// [0 2] true
}
