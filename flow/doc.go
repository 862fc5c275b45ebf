// Package flow implements maximum-flow algorithms on networks given as dense
// capacity matrices: entry (u,v) is the capacity of u→v, and a symmetric
// matrix is an undirected network. Dense storage suits the small, complete
// conflict graphs of lattice minimum-cut problems.
//
// The key algorithms offered are:
//
//   - Ford–Fulkerson
//
//   - Method: depth-first search for any augmenting path.
//
//   - Time:   O(V² · A) for A augmentations; bounded by the flow on integral networks.
//
//   - Simplest; fine for small networks.
//
//   - Edmonds–Karp
//
//   - Method: breadth-first search for shortest (fewest-edge) augmenting paths.
//
//   - Time:   O(V · E²) augmentations in the worst case, O(V²) per BFS.
//
//   - Guarantees polynomial worst-case behavior.
//
//   - Dinic
//
//   - Method: level graph construction + blocking-flow via DFS.
//
//   - Time:   O(V² · E) in general.
//
//   - High practical performance on dense or high-capacity graphs.
//
// # API
//
// FlowOptions configures all algorithms:
//
//	type FlowOptions struct {
//	    Ctx                  context.Context // for cancellation / timeouts
//	    Epsilon              float64         // ignore capacities ≤ Epsilon
//	    Logger               *slog.Logger    // debug record per augmentation
//	    LevelRebuildInterval int             // Dinic only: rebuild level graph every N pushes
//	}
//
// Use DefaultOptions() to obtain production-safe defaults. All entry points
// share the MaxFlowFunc signature:
//
//	func Dinic(capacity matrix.Matrix, source, sink int, opts FlowOptions) (float64, *matrix.Dense, error)
//
// and return the flow value with the residual capacity matrix. ReachableFrom
// on the residual yields the source side of a minimum s–t cut.
//
// # Errors
//
//	ErrSourceOutOfRange - source is not a vertex.
//	ErrSinkOutOfRange   - sink is not a vertex.
//	ErrSourceIsSink     - source == sink.
//	EdgeError           - a negative capacity (beyond Epsilon) is encountered.
//	context.Canceled / context.DeadlineExceeded - if opts.Ctx is canceled.
package flow
