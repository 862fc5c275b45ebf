package svp

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvlattice/lattice"
	"github.com/katalvlaran/lvlattice/matrix"
	"github.com/katalvlaran/lvlattice/mincut"
)

// Result is a shortest vector with its provenance.
type Result struct {
	Vector []float64  // Σ_{i∈S} b_i
	Index  []int      // coordinates in the basis b_0,…,b_{N−1}
	Norm   float64    // squared Euclidean norm of Vector
	Cut    mincut.Cut // S = Cut.Side; Cut.Weight equals Norm up to rounding
}

// MinCut is the shortest-vector solver for a first-kind lattice.
type MinCut struct {
	l     lattice.FirstKindGeometry
	graph *matrix.Dense
	opts  options
}

// NewMinCut builds the conflict graph of l.
//
// Errors: lattice.ErrNotObtuseSuperbasis when the extended Gram matrix of l has
// a positive off-diagonal entry.
func NewMinCut(l lattice.FirstKindGeometry, opts ...Option) (*MinCut, error) {
	if l == nil {
		return nil, fmt.Errorf("NewMinCut: %w", matrix.ErrNilMatrix)
	}
	w, err := ConflictGraph(l.ExtendedGram())
	if err != nil {
		return nil, fmt.Errorf("NewMinCut: %w", err)
	}
	o := gatherOptions(opts)
	o.logger.Debug("svp: conflict graph", slog.Int("vertices", w.Rows()), slog.Any("w", w))

	return &MinCut{l: l, graph: w, opts: o}, nil
}

// ConflictGraph returns a copy of the conflict graph.
func (m *MinCut) ConflictGraph() matrix.Matrix { return m.graph.Clone() }

// Shortest returns a shortest nonzero vector of the lattice.
//
// Errors: any error of the cut solver; lattice.ErrBasisNotPositiveDefinite
// when the cut has zero weight or yields the zero vector, which happens only
// for a disconnected conflict graph, that is, dependent basis vectors.
func (m *MinCut) Shortest() (Result, error) {
	cut, err := m.opts.solver.GlobalMinCut(m.graph)
	if err != nil {
		return Result{}, fmt.Errorf("Shortest: %w", err)
	}
	idx := lattice.SuperbasisSubsetIndex(cut.Side)
	vec, err := m.l.Embed(idx)
	if err != nil {
		return Result{}, fmt.Errorf("Shortest: %w", err)
	}
	norm, _ := matrix.Dot(vec, vec)
	if !(cut.Weight > 0) || (lattice.Point{Index: idx}).IsZero() {
		return Result{}, fmt.Errorf("Shortest: cut weight %g: %w", cut.Weight, lattice.ErrBasisNotPositiveDefinite)
	}
	m.opts.logger.Debug("svp: minimum cut",
		slog.Float64("cut", cut.Weight),
		slog.Float64("norm", norm),
		slog.Int("side", countTrue(cut.Side)))

	return Result{Vector: vec, Index: idx, Norm: norm, Cut: cut}, nil
}

// ShortestVector returns Shortest().Vector.
func (m *MinCut) ShortestVector() ([]float64, error) {
	res, err := m.Shortest()

	return res.Vector, err
}

// ShortestVector is NewMinCut(l, opts...).ShortestVector().
func ShortestVector(l lattice.FirstKindGeometry, opts ...Option) ([]float64, error) {
	m, err := NewMinCut(l, opts...)
	if err != nil {
		return nil, err
	}

	return m.ShortestVector()
}

func countTrue(b []bool) int {
	n := 0
	for _, x := range b {
		if x {
			n++
		}
	}

	return n
}
