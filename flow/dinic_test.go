package flow_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlattice/flow"
)

// DinicSuite exercises the Dinic implementation under various scenarios.
type DinicSuite struct {
	suite.Suite
}

// TestSingleEdge verifies that a single edge yields max flow equal to its capacity.
func (s *DinicSuite) TestSingleEdge() {
	g := network(s.T(), 2, edge{0, 1, 7})

	mf, res, err := flow.Dinic(g, 0, 1, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 7.0, mf)
	fwd, _ := res.At(0, 1)
	rev, _ := res.At(1, 0)
	require.Equal(s.T(), 0.0, fwd, "forward edge should be saturated")
	require.Equal(s.T(), 7.0, rev, "reverse edge should carry the flow")
}

// TestMultiPath verifies max flow on two paths.
func (s *DinicSuite) TestMultiPath() {
	// 0→1 (5); 0→2 (4) → 2→1 (3)
	g := network(s.T(), 3, edge{0, 1, 5}, edge{0, 2, 4}, edge{2, 1, 3})

	mf, _, err := flow.Dinic(g, 0, 1, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 8.0, mf) // 5 + 3
}

// TestZeroCapacity ensures that zero-capacity edges yield zero flow.
func (s *DinicSuite) TestZeroCapacity() {
	g := network(s.T(), 2, edge{0, 1, 0})

	mf, _, err := flow.Dinic(g, 0, 1, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, mf)
}

// TestEpsilonEdgeCase verifies that capacities ≤ Epsilon are ignored.
func (s *DinicSuite) TestEpsilonEdgeCase() {
	g := network(s.T(), 2, edge{0, 1, 1})

	opts := flow.DefaultOptions()
	opts.Epsilon = 2 // filter out capacity=1
	mf, _, err := flow.Dinic(g, 0, 1, opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, mf)
}

// TestLevelRebuildIntervalMoreThanOne ensures that setting LevelRebuildInterval>1
// does not change the result compared to default (never rebuild).
func (s *DinicSuite) TestLevelRebuildIntervalMoreThanOne() {
	// S=0, A=1, B=2, C=3, T=4: S→A(2), S→B(1), A→C(1), B→C(1), C→T(2)
	g := network(s.T(), 5, edge{0, 1, 2}, edge{0, 2, 1}, edge{1, 3, 1}, edge{2, 3, 1}, edge{3, 4, 2})

	opts1 := flow.DefaultOptions()
	opts1.LevelRebuildInterval = 2
	mf1, _, err1 := flow.Dinic(g, 0, 4, opts1)
	require.NoError(s.T(), err1)

	mf2, _, err2 := flow.Dinic(g, 0, 4, flow.DefaultOptions())
	require.NoError(s.T(), err2)

	require.Equal(s.T(), mf1, mf2)
	require.Equal(s.T(), 2.0, mf1)
}

// TestContextCancellation ensures an expired context aborts the search.
func (s *DinicSuite) TestContextCancellation() {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Nanosecond)
	defer cancel()
	time.Sleep(1 * time.Millisecond) // ensure timeout

	opts := flow.DefaultOptions()
	opts.Ctx = ctx

	_, _, err := flow.Dinic(randomNetwork(s.T(), 50, 0.2, 5, 1), 0, 49, opts)
	require.Error(s.T(), err)
	require.True(s.T(), errors.Is(err, context.DeadlineExceeded))
}

// TestResidualIntegrity validates the residual invariant on a small graph.
func (s *DinicSuite) TestResidualIntegrity() {
	// A=0,B=1,C=2,D=3: A→B (5+3=8), B→C (4), C→D (2), A→D (1)
	g := network(s.T(), 4, edge{0, 1, 5}, edge{0, 1, 3}, edge{1, 2, 4}, edge{2, 3, 2}, edge{0, 3, 1})

	mf, res, err := flow.Dinic(g, 0, 3, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3.0, mf) // 1 direct + 2 via A→B→C→D

	assertResidualIntegrity(s.T(), g, res, 0, mf)
}

// TestAgreesWithEdmondsKarp compares both algorithms on random networks and
// checks that the residual source side is a cut of the same weight.
func (s *DinicSuite) TestAgreesWithEdmondsKarp() {
	for seed := int64(1); seed <= 10; seed++ {
		g := randomNetwork(s.T(), 25, 0.25, 10, seed)
		var flows []float64
		for name, alg := range algorithms {
			mf, res, err := alg(g, 0, 24, flow.DefaultOptions())
			require.NoError(s.T(), err, name)
			assertResidualIntegrity(s.T(), g, res, 0, mf)

			side, err := flow.ReachableFrom(res, 0, flow.DefaultEpsilon)
			require.NoError(s.T(), err)
			require.True(s.T(), side[0])
			require.False(s.T(), side[24])
			var cut float64
			for u := 0; u < 25; u++ {
				for v := 0; v < 25; v++ {
					if side[u] && !side[v] {
						c, _ := g.At(u, v)
						cut += c
					}
				}
			}
			require.InDelta(s.T(), mf, cut, 1e-7, name)
			flows = append(flows, mf)
		}
		require.InDelta(s.T(), flows[0], flows[1], 1e-7)
	}
}

// TestReachableFromErrors covers ReachableFrom argument checks.
func (s *DinicSuite) TestReachableFromErrors() {
	_, err := flow.ReachableFrom(network(s.T(), 2), 3, 0)
	require.ErrorIs(s.T(), err, flow.ErrSourceOutOfRange)
}

// Entry point for running the suite.
func TestDinicSuite(t *testing.T) {
	suite.Run(t, new(DinicSuite))
}
