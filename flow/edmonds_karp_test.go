package flow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlattice/flow"
	"github.com/katalvlaran/lvlattice/matrix"
)

// EdmondsKarpSuite groups tests for Edmonds–Karp.
type EdmondsKarpSuite struct {
	suite.Suite
	opts flow.FlowOptions
}

func (s *EdmondsKarpSuite) SetupTest() {
	s.opts = flow.DefaultOptions()
}

// TestSimplePath: 0→1 (cap=5) => maxFlow = 5.
func (s *EdmondsKarpSuite) TestSimplePath() {
	g := network(s.T(), 2, edge{0, 1, 5})

	mf, res, err := flow.EdmondsKarp(g, 0, 1, s.opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5.0, mf, "max flow should match single-edge capacity")
	fwd, _ := res.At(0, 1)
	rev, _ := res.At(1, 0)
	require.Equal(s.T(), 0.0, fwd, "forward exhausted")
	require.Equal(s.T(), 5.0, rev, "reverse edge carries flow")
}

// TestMultiPath: two routes => flow sums them.
func (s *EdmondsKarpSuite) TestMultiPath() {
	g := network(s.T(), 3, edge{0, 1, 3}, edge{0, 2, 4}, edge{2, 1, 2})

	mf, res, err := flow.EdmondsKarp(g, 0, 1, s.opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5.0, mf, "flow should combine both paths (3 + 2)")
	assertResidualIntegrity(s.T(), g, res, 0, mf)
}

// TestUndirected: a symmetric matrix is an undirected network.
func (s *EdmondsKarpSuite) TestUndirected() {
	g := network(s.T(), 3,
		edge{0, 1, 2}, edge{1, 0, 2},
		edge{1, 2, 3}, edge{2, 1, 3},
		edge{0, 2, 1}, edge{2, 0, 1})

	mf, _, err := flow.EdmondsKarp(g, 0, 2, s.opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3.0, mf)
}

// TestNegativeCapacity yields EdgeError.
func (s *EdmondsKarpSuite) TestNegativeCapacity() {
	g := network(s.T(), 2, edge{0, 1, -1})

	_, _, err := flow.EdmondsKarp(g, 0, 1, s.opts)
	var ee flow.EdgeError
	require.Error(s.T(), err)
	require.True(s.T(), errors.As(err, &ee), "error must be EdgeError")
	require.Equal(s.T(), 0, ee.From)
	require.Equal(s.T(), 1, ee.To)
	require.Equal(s.T(), -1.0, ee.Cap)
}

// TestSourceSinkOutOfRange covers invalid terminals.
func (s *EdmondsKarpSuite) TestSourceSinkOutOfRange() {
	g := network(s.T(), 2)

	_, _, err := flow.EdmondsKarp(g, 5, 1, s.opts)
	require.ErrorIs(s.T(), err, flow.ErrSourceOutOfRange)
	_, _, err = flow.EdmondsKarp(g, 0, -1, s.opts)
	require.ErrorIs(s.T(), err, flow.ErrSinkOutOfRange)
	_, _, err = flow.EdmondsKarp(g, 1, 1, s.opts)
	require.ErrorIs(s.T(), err, flow.ErrSourceIsSink)

	rect, _ := matrix.NewDense(2, 3)
	_, _, err = flow.EdmondsKarp(rect, 0, 1, s.opts)
	require.ErrorIs(s.T(), err, matrix.ErrDimensionMismatch)
}

// TestCanceled stops before the first augmentation.
func (s *EdmondsKarpSuite) TestCanceled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.opts.Ctx = ctx

	_, _, err := flow.EdmondsKarp(network(s.T(), 2, edge{0, 1, 1}), 0, 1, s.opts)
	require.ErrorIs(s.T(), err, context.Canceled)
}

func TestEdmondsKarpSuite(t *testing.T) {
	suite.Run(t, new(EdmondsKarpSuite))
}
