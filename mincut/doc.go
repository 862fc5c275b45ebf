// Package mincut computes global minimum cuts of undirected weighted graphs
// given as symmetric, non-negative adjacency matrices.
//
// A global minimum cut splits the vertices into two nonempty sides so that the
// total weight of edges crossing between them is minimal. Two Solvers are
// provided:
//
//   - StoerWagner — maximum-adjacency orderings with vertex merging, O(V³)
//     on the dense matrix.
//   - FlowSolver  — the minimum over t of the s–t minimum cuts with s = 0,
//     each computed by a pluggable flow.MaxFlowFunc (Dinic by default). Its
//     capacity epsilon follows the heaviest edge unless set explicitly.
//
// Both report the side that does not contain vertex 0 and recompute the cut
// weight from the matrix, so their results are directly comparable.
package mincut
