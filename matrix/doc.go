// Package matrix offers the small dense linear-algebra toolkit the lattice
// packages are built on.
//
// The matrix package provides:
//
//   - Matrix, a minimal row/column interface with bounds-checked At/Set, and
//     Dense, its row-major implementation backed by a flat slice.
//   - Kernels: Mul, Transpose, MatVec, Dot, Cholesky and SolveCholesky.
//   - Central validators (ValidateNotNil, ValidateSquare, ValidateSymmetric, ...)
//     returning plain sentinels that kernels wrap with an operation tag.
//
// All kernels are deterministic (fixed loop orders, no map iteration) and never
// mutate their operands. Lattice code reads a Matrix into flat buffers once via
// Flatten and then works on slices in its hot loops.
//
// Errors are sentinels (see errors.go); match them with errors.Is.
package matrix
