package svp_test

import (
	"fmt"

	"github.com/katalvlaran/lvlattice/families"
	"github.com/katalvlaran/lvlattice/svp"
)

// The conflict graph of A4 is a 5-cycle of unit weights; any two edges form a
// minimum cut, so the shortest vectors have squared norm 2.
func ExampleMinCut_Shortest() {
	a4, _ := families.NewAn(4)
	m, _ := svp.NewMinCut(a4)
	res, _ := m.Shortest()
	fmt.Printf("%.0f %.0f\n", res.Norm, res.Cut.Weight)
	// Output: 2 2
}
