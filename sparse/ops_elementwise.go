// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Element-wise and join kernels over stored entries: Square,
//     ScaleByAlignedVector (row-index inner join) and the per-column folds.
//
// Determinism & Performance:
//   - Single pass over storage order; output order follows input order.
//   - Folds accumulate into a dense per-column buffer, so results come out
//     ordered by column id without any map iteration.

package sparse

import "fmt"

// Square returns a matrix with the same coordinates and shape whose values are squared.
// Errors: ErrNilMatrix.
// Complexity: Time O(nnz), Space O(nnz).
func Square(m *COO) (*COO, error) {
	if err := validateCOO(m); err != nil {
		return nil, sparseErrorf(opSquare, err)
	}

	outVal := make([]float64, len(m.val))
	for k, v := range m.val {
		outVal[k] = v * v
	}

	return newCOOOwned(
		append([]int(nil), m.row...),
		append([]int(nil), m.col...),
		outVal,
		m.rows, m.cols,
	), nil
}

// ScaleByAlignedVector multiplies each entry of m by vec[row]/scalar, joining on row index.
// MAIN DESCRIPTION:
//   - INNER JOIN on row index, not a broadcast. Only entries of m whose row has a
//     stored entry in vec are kept; every other entry is DROPPED from the output
//     (it is not treated as zero, it disappears).
//   - A kept entry becomes value * vec[row] / scalar.
//   - If vec stores several entries for the same row, the last one in storage
//     order is used.
//
// Implementation:
//   - Stage 1: validate m, vec (one column, same row space) and scalar.
//   - Stage 2: build the join table row → factor from vec (last write wins).
//   - Stage 3: count matching entries of m, allocate exactly, fill in storage order.
//
// Inputs:
//   - m: matrix to scale.
//   - vec: column vector (Cols()==1) over m's row space.
//   - scalar: finite non-zero divisor.
//
// Returns:
//   - *COO with m's shape and at most m.NNZ() entries.
//
// Errors:
//   - ErrNilMatrix, ErrNotColumnVector (vec.Cols() != 1),
//     ErrDimensionMismatch (vec.Rows() != m.Rows()), ErrBadScalar.
//
// Complexity:
//   - Time O(nnz(m) + nnz(vec)), Space O(nnz(vec)) for the join table.
//
// Notes:
//   - A vec entry whose stored value is 0 still counts as present: its row is
//     kept with value 0.
//
// AI-Hints:
//   - The factor update relies on vec covering every observation row of m; rows
//     missing from vec silently vanish from every downstream statistic.
func ScaleByAlignedVector(m, vec *COO, scalar float64) (*COO, error) {
	if err := validateCOO(m); err != nil {
		return nil, sparseErrorf(opScaleByAligned, err)
	}
	if err := validateCOO(vec); err != nil {
		return nil, sparseErrorf(opScaleByAligned, err)
	}
	if vec.cols != 1 {
		return nil, sparseErrorf(opScaleByAligned,
			fmt.Errorf("vector has %d columns: %w", vec.cols, ErrNotColumnVector))
	}
	if vec.rows != m.rows {
		return nil, sparseErrorf(opScaleByAligned,
			fmt.Errorf("vector rows %d vs matrix rows %d: %w", vec.rows, m.rows, ErrDimensionMismatch))
	}
	if err := validateScalar(scalar); err != nil {
		return nil, sparseErrorf(opScaleByAligned, err)
	}

	factorByRow := make(map[int]float64, len(vec.val))
	for k, r := range vec.row {
		factorByRow[r] = vec.val[k] // last write wins
	}

	kept := 0
	for _, r := range m.row {
		if _, ok := factorByRow[r]; ok {
			kept++
		}
	}

	outRow := make([]int, 0, kept)
	outCol := make([]int, 0, kept)
	outVal := make([]float64, 0, kept)
	for k, r := range m.row {
		f, ok := factorByRow[r]
		if !ok {
			continue // inner join: unmatched rows are dropped
		}
		outRow = append(outRow, r)
		outCol = append(outCol, m.col[k])
		outVal = append(outVal, m.val[k]*f/scalar)
	}

	return newCOOOwned(outRow, outCol, outVal, m.rows, m.cols), nil
}

// FoldColumns sums stored values per column and divides each sum by scalar.
// MAIN DESCRIPTION:
//   - Only columns with at least one stored entry appear in the result; they are
//     returned in ascending column id together with the ids themselves.
//
// Implementation:
//   - Stage 1: validate m and scalar.
//   - Stage 2: accumulate into a dense per-column buffer, marking touched columns.
//   - Stage 3: emit (id, sum/scalar) for touched columns in ascending id.
//
// Returns:
//   - colIDs: ascending distinct column ids with ≥1 stored entry.
//   - sums: aligned per-column sums divided by scalar.
//
// Errors:
//   - ErrNilMatrix, ErrBadScalar.
//
// Complexity:
//   - Time O(nnz + cols), Space O(cols).
//
// AI-Hints:
//   - Scatter sums into a length-Cols() vector via colIDs when the consumer
//     indexes by feature position.
func FoldColumns(m *COO, scalar float64) (colIDs []int, sums []float64, err error) {
	if err = validateCOO(m); err != nil {
		return nil, nil, sparseErrorf(opFoldColumns, err)
	}
	if err = validateScalar(scalar); err != nil {
		return nil, nil, sparseErrorf(opFoldColumns, err)
	}

	acc := make([]float64, m.cols)
	touched := make([]bool, m.cols)
	distinct := 0
	for k, c := range m.col {
		acc[c] += m.val[k]
		if !touched[c] {
			touched[c] = true
			distinct++
		}
	}

	colIDs = make([]int, 0, distinct)
	sums = make([]float64, 0, distinct)
	for c, ok := range touched {
		if ok {
			colIDs = append(colIDs, c)
			sums = append(sums, acc[c]/scalar)
		}
	}

	return colIDs, sums, nil
}

// FoldColumnsThenDivide returns the per-column sums of FoldColumns without the ids.
// The length equals the number of distinct stored columns, NOT m.Cols(): a column
// with no stored entry is omitted rather than reported as zero.
//
// Errors: ErrNilMatrix, ErrBadScalar.
// Complexity: Time O(nnz + cols), Space O(cols).
func FoldColumnsThenDivide(m *COO, scalar float64) ([]float64, error) {
	_, sums, err := FoldColumns(m, scalar)
	if err != nil {
		return nil, err
	}

	return sums, nil
}
