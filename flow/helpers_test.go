package flow_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlattice/flow"
	"github.com/katalvlaran/lvlattice/matrix"
)

// edge is one directed capacity u→v.
type edge struct {
	u, v int
	c    float64
}

// network builds an n×n capacity matrix; parallel edges are summed.
func network(t testing.TB, n int, edges ...edge) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for _, e := range edges {
		old, err := m.At(e.u, e.v)
		require.NoError(t, err)
		require.NoError(t, m.Set(e.u, e.v, old+e.c))
	}

	return m
}

// randomNetwork returns a directed network where each ordered pair carries an
// edge with probability p and weight in [1, 1+maxWeight).
func randomNetwork(t testing.TB, n int, p, maxWeight float64, seed int64) *matrix.Dense {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	var edges []edge
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v && r.Float64() < p {
				edges = append(edges, edge{u, v, r.Float64()*maxWeight + 1})
			}
		}
	}

	return network(t, n, edges...)
}

// assertResidualIntegrity checks antisymmetric conservation
// res(u,v)+res(v,u) == cap(u,v)+cap(v,u), non-negative residuals, and that
// the net outflow of source equals maxFlow.
func assertResidualIntegrity(t *testing.T, capacity, residual matrix.Matrix, source int, maxFlow float64) {
	t.Helper()
	n := capacity.Rows()
	c, err := matrix.Flatten(capacity)
	require.NoError(t, err)
	r, err := matrix.Flatten(residual)
	require.NoError(t, err)

	var out float64
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			require.GreaterOrEqual(t, r[u*n+v], -1e-9, "residual (%d,%d)", u, v)
			if u == v {
				continue
			}
			require.InDelta(t, c[u*n+v]+c[v*n+u], r[u*n+v]+r[v*n+u], 1e-9, "pair (%d,%d)", u, v)
		}
		if u != source {
			// flow on source→u is cap − residual (net of reverse)
			out += c[source*n+u] - r[source*n+u]
		}
	}
	require.InDelta(t, maxFlow, out, 1e-9)
}

// algorithms lists the implementations under test.
var algorithms = map[string]flow.MaxFlowFunc{
	"EdmondsKarp":   flow.EdmondsKarp,
	"Dinic":         flow.Dinic,
	"FordFulkerson": flow.FordFulkerson,
}
