// Package matrix offers rectangular matrices of numeric values and the row
// operations that linear-algebra routines are built from.
//
// The matrix package provides:
//
//   - Matrix, a row-major rectangular value over numeric.Number; all rows
//     have equal length, and the zero-row matrix is a valid degenerate
//     value (accepted by construction, rejected by most operations).
//   - Builders: FromRows, Zeros, Identity, Augment, SplitAugmented.
//   - Row operations: SwapRows, ScaleRow, AddScaledRow — all non-mutating;
//     every transformation returns a fresh Matrix.
//   - PivotRow, a mode-aware search for the first non-zero entry in a
//     column, used by elimination routines.
//   - Centralized validators (square, same shape, multiplicable, augmented)
//     returning plain sentinel errors.
//
// Matrices are immutable value types: no internal locking is needed, and a
// failed operation never leaves a partially mutated state behind.
package matrix
