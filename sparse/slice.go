// SPDX-License-Identifier: MIT

package sparse

import "fmt"

// Range is a half-open index interval [Start, End).
type Range struct {
	Start, End int
}

// Len returns End-Start.
func (r Range) Len() int { return r.End - r.Start }

// contains reports Start ≤ i < End.
func (r Range) contains(i int) bool { return i >= r.Start && i < r.End }

// validateRange checks 0 ≤ Start ≤ End ≤ dim.
func validateRange(r Range, dim int, axis string) error {
	if r.Start < 0 || r.End < r.Start || r.End > dim {
		return fmt.Errorf("%s range [%d,%d) over %d: %w", axis, r.Start, r.End, dim, ErrOutOfRange)
	}

	return nil
}

// Slice extracts the sub-matrix of entries with row ∈ rows and col ∈ cols.
// MAIN DESCRIPTION:
//   - Stable filter: retained entries keep their relative storage order and are
//     re-indexed so the window's top-left corner becomes (0,0).
//
// Implementation:
//   - Stage 1: validate m and both ranges against m's shape.
//   - Stage 2: count matching entries (first pass).
//   - Stage 3: allocate exact-size outputs and fill them (second pass).
//
// Inputs:
//   - m: source matrix.
//   - rows, cols: half-open windows, 0 ≤ Start ≤ End ≤ dimension.
//
// Returns:
//   - *COO: shape (rows.Len(), cols.Len()).
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (range outside the shape or reversed).
//
// Complexity:
//   - Time O(nnz), Space O(kept). No allocation beyond the output arrays.
func Slice(m *COO, rows, cols Range) (*COO, error) {
	if err := validateCOO(m); err != nil {
		return nil, sparseErrorf(opSlice, err)
	}
	if err := validateRange(rows, m.rows, "row"); err != nil {
		return nil, sparseErrorf(opSlice, err)
	}
	if err := validateRange(cols, m.cols, "col"); err != nil {
		return nil, sparseErrorf(opSlice, err)
	}

	var k, kept int
	for k = range m.val {
		if rows.contains(m.row[k]) && cols.contains(m.col[k]) {
			kept++
		}
	}

	outRow := make([]int, kept)
	outCol := make([]int, kept)
	outVal := make([]float64, kept)
	idx := 0
	for k = range m.val {
		if rows.contains(m.row[k]) && cols.contains(m.col[k]) {
			outRow[idx] = m.row[k] - rows.Start
			outCol[idx] = m.col[k] - cols.Start
			outVal[idx] = m.val[k]
			idx++
		}
	}

	return newCOOOwned(outRow, outCol, outVal, rows.Len(), cols.Len()), nil
}

// SplitColumn partitions w into a feature matrix and a single target column.
// MAIN DESCRIPTION:
//   - features = HConcat(w[:, 0:target], w[:, target+1:cols]), sorted by (row, col).
//   - targetCol = w[:, target:target+1], a column vector in w's row space.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (target outside [0, Cols())).
//
// Complexity:
//   - Time O(nnz log nnz) dominated by HConcat's sort, Space O(nnz).
//
// AI-Hints:
//   - targetCol is the natural totalLosses operand for factor.Updater.Step.
func SplitColumn(w *COO, target int) (features, targetCol *COO, err error) {
	if err = validateCOO(w); err != nil {
		return nil, nil, sparseErrorf(opSplitColumn, err)
	}
	if target < 0 || target >= w.cols {
		return nil, nil, sparseErrorf(opSplitColumn,
			fmt.Errorf("target %d over %d columns: %w", target, w.cols, ErrOutOfRange))
	}

	allRows := Range{Start: 0, End: w.rows}
	left, err := Slice(w, allRows, Range{Start: 0, End: target})
	if err != nil {
		return nil, nil, sparseErrorf(opSplitColumn, err)
	}
	right, err := Slice(w, allRows, Range{Start: target + 1, End: w.cols})
	if err != nil {
		return nil, nil, sparseErrorf(opSplitColumn, err)
	}
	if features, err = HConcat(left, right); err != nil {
		return nil, nil, sparseErrorf(opSplitColumn, err)
	}
	if targetCol, err = Slice(w, allRows, Range{Start: target, End: target + 1}); err != nil {
		return nil, nil, sparseErrorf(opSplitColumn, err)
	}

	return features, targetCol, nil
}
