// SPDX-License-Identifier: MIT

// Package sparse - COO storage & read-only accessors.
//
// Purpose:
//   - Hold a sparse matrix as three aligned sequences plus an explicit shape.
//   - Validate every structural invariant at construction, before allocation.
//   - Never expose internal storage mutably: getters copy, Do visits read-only.
//
// Complexity quicksheet:
//   - NewCOO: O(nnz) validate + copy; Rows/Cols/NNZ/Entry: O(1); getters: O(nnz).

package sparse

import (
	"fmt"
	"math"
	"strings"
)

// COO is an immutable coordinate-format sparse matrix.
//   - row, col, val are aligned: entry k is (row[k], col[k], val[k]).
//   - 0 ≤ row[k] < rows and 0 ≤ col[k] < cols for every k.
//
// The zero value is an empty 0×0 matrix.
type COO struct {
	rows, cols int
	row        []int
	col        []int
	val        []float64
}

var _ fmt.Stringer = (*COO)(nil)

// NewCOO builds a validated COO matrix from aligned triplets and a shape.
// MAIN DESCRIPTION:
//   - Public constructor ("build") used by loaders and tests; copies its inputs.
//
// Implementation:
//   - Stage 1: validate rows,cols ≥ 0 and equal sequence lengths.
//   - Stage 2: validate every index against the shape and every value is finite.
//   - Stage 3: copy the three sequences into fresh storage.
//
// Behavior highlights:
//   - Fails before any allocation; no partially built value is ever returned.
//   - Caller keeps ownership of row/col/data.
//
// Inputs:
//   - row, col: entry coordinates.
//   - data: entry values, aligned with row/col.
//   - rows, cols: declared shape.
//
// Returns:
//   - *COO: independent matrix.
//
// Errors:
//   - ErrBadShape (negative shape), ErrLengthMismatch (unaligned sequences),
//     ErrOutOfRange (index outside shape), ErrNaNInf (non-finite value).
//
// Complexity:
//   - Time O(nnz), Space O(nnz).
func NewCOO(row, col []int, data []float64, rows, cols int) (*COO, error) {
	if rows < 0 || cols < 0 {
		return nil, sparseErrorf(opNewCOO, ErrBadShape)
	}
	if len(row) != len(col) || len(row) != len(data) {
		return nil, sparseErrorf(opNewCOO, fmt.Errorf("row=%d col=%d data=%d: %w",
			len(row), len(col), len(data), ErrLengthMismatch))
	}
	for k := range row {
		if row[k] < 0 || row[k] >= rows || col[k] < 0 || col[k] >= cols {
			return nil, sparseErrorf(opNewCOO, fmt.Errorf("entry %d at (%d,%d) in %dx%d: %w",
				k, row[k], col[k], rows, cols, ErrOutOfRange))
		}
		if math.IsNaN(data[k]) || math.IsInf(data[k], 0) {
			return nil, sparseErrorf(opNewCOO, fmt.Errorf("entry %d: %w", k, ErrNaNInf))
		}
	}

	return newCOOOwned(
		append([]int(nil), row...),
		append([]int(nil), col...),
		append([]float64(nil), data...),
		rows, cols,
	), nil
}

// newCOOOwned wraps freshly allocated, already valid storage without copying.
// Transforms use it after they have built their output arrays.
func newCOOOwned(row, col []int, val []float64, rows, cols int) *COO {
	return &COO{rows: rows, cols: cols, row: row, col: col, val: val}
}

// Rows returns the declared row count.
func (m *COO) Rows() int { return m.rows }

// Cols returns the declared column count.
func (m *COO) Cols() int { return m.cols }

// Shape packs Rows() and Cols().
func (m *COO) Shape() (rows, cols int) { return m.rows, m.cols }

// NNZ returns the number of stored entries (duplicates counted separately).
func (m *COO) NNZ() int { return len(m.val) }

// Entry returns stored entry k in storage order.
// Errors: ErrOutOfRange when k is outside [0, NNZ()).
func (m *COO) Entry(k int) (row, col int, value float64, err error) {
	if k < 0 || k >= len(m.val) {
		return 0, 0, 0, fmt.Errorf("COO.Entry(%d): %w", k, ErrOutOfRange)
	}

	return m.row[k], m.col[k], m.val[k], nil
}

// RowIndices returns a copy of the row index sequence.
func (m *COO) RowIndices() []int { return append([]int(nil), m.row...) }

// ColIndices returns a copy of the column index sequence.
func (m *COO) ColIndices() []int { return append([]int(nil), m.col...) }

// Values returns a copy of the value sequence.
func (m *COO) Values() []float64 { return append([]float64(nil), m.val...) }

// Do visits every stored entry in storage order; f returns false to stop early.
// Complexity: O(nnz) time, O(1) space.
func (m *COO) Do(f func(row, col int, v float64) bool) {
	for k := range m.val {
		if !f(m.row[k], m.col[k], m.val[k]) {
			return
		}
	}
}

// String renders "COO(rows×cols, nnz=n)" followed by one "(r, c) = v" line per entry.
// Intended for diagnostics on small matrices.
func (m *COO) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "COO(%dx%d, nnz=%d)\n", m.rows, m.cols, len(m.val))
	for k := range m.val {
		fmt.Fprintf(&b, "(%d, %d) = %g\n", m.row[k], m.col[k], m.val[k])
	}

	return b.String()
}

// validateCOO guards a nil receiver argument.
func validateCOO(m *COO) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateScalar rejects divisors that would produce Inf/NaN values.
func validateScalar(s float64) error {
	if s == 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return fmt.Errorf("%g: %w", s, ErrBadScalar)
	}

	return nil
}
