// Package sparse implements an immutable coordinate-format (COO) sparse
// matrix and the transforms that feed the regularized factor update.
//
// 🚀 What is COO?
//
//	A COO matrix stores only its stored entries as three aligned sequences
//	row[k], col[k], value[k] plus an explicit (rows, cols) shape. Entries are
//	neither required to be unique nor sorted unless an operation says so.
//
// ✨ Operations:
//   - NewCOO: validated construction (lengths, shape, bounds, finite values)
//   - Slice: stable half-open row/column window, re-indexed to the origin
//   - HConcat: horizontal concatenation, globally sorted by (row, col)
//   - Square: element-wise square
//   - ScaleByAlignedVector: inner join on row index against a column vector
//   - FoldColumnsThenDivide / FoldColumns: per-column sums over stored columns
//   - SplitColumn: feature/target partition around one column
//   - MulDense / TransposeMulDense: sparse × dense products (O(nnz·k))
//   - ToDense / FromDense: conversions to and from matrix.Dense
//
// ⚠️ Join semantics:
//
//	ScaleByAlignedVector is an inner join, NOT a broadcast. Rows of the matrix
//	that have no stored entry in the vector are DROPPED from the output, they
//	are not treated as zero. Callers must make sure the vector carries an
//	entry for every row that matters.
//
// Value semantics:
//
//	Every transform validates first, then allocates and returns a new *COO.
//	Inputs are never mutated, so transforms may run concurrently on shared
//	inputs without locking.
package sparse
