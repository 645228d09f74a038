// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Sparse × dense products and conversions between COO and matrix.Dense.
//
// Determinism & Performance:
//   - Products walk stored entries in storage order and update whole dense rows
//     through matrix.Dense.RowView, so cost is O(nnz·k) instead of O(r·c·k).

package sparse

import (
	"fmt"

	"github.com/katalvlaran/sparsesgd/matrix"
)

// validateDense guards a nil dense operand (including a typed-nil pointer).
func validateDense(d *matrix.Dense) error {
	if d == nil {
		return ErrNilMatrix
	}

	return nil
}

// axpyRow computes dst += alpha * src over equal-length rows.
func axpyRow(dst []float64, alpha float64, src []float64) {
	for j, v := range src {
		dst[j] += alpha * v
	}
}

// MulDense computes the product m · d.
// MAIN DESCRIPTION:
//   - out[r, :] += value · d[c, :] for every stored entry (r, c, value).
//   - With m = x and d = V this is the cross-term matrix x·V the factor update consumes.
//
// Implementation:
//   - Stage 1: validate operands and m.Cols() == d.Rows().
//   - Stage 2: allocate out (m.Rows() × d.Cols()) and accumulate row updates.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, matrix.ErrInvalidDimensions (m has no rows).
//
// Complexity:
//   - Time O(nnz·k) with k = d.Cols(), Space O(m.Rows()·k).
func MulDense(m *COO, d *matrix.Dense) (*matrix.Dense, error) {
	if err := validateCOO(m); err != nil {
		return nil, sparseErrorf(opMulDense, err)
	}
	if err := validateDense(d); err != nil {
		return nil, sparseErrorf(opMulDense, err)
	}
	if m.cols != d.Rows() {
		return nil, sparseErrorf(opMulDense,
			fmt.Errorf("%dx%d · %dx%d: %w", m.rows, m.cols, d.Rows(), d.Cols(), ErrDimensionMismatch))
	}

	out, err := matrix.NewDense(m.rows, d.Cols())
	if err != nil {
		return nil, sparseErrorf(opMulDense, err)
	}
	var dst, src []float64
	for k, v := range m.val {
		dst, _ = out.RowView(m.row[k]) // indices validated at construction
		src, _ = d.RowView(m.col[k])
		axpyRow(dst, v, src)
	}

	return out, nil
}

// TransposeMulDense computes mᵀ · d without materializing mᵀ.
// MAIN DESCRIPTION:
//   - out[c, :] += value · d[r, :] for every stored entry (r, c, value).
//   - The factor update uses it for xvxl = x_lossᵀ · crossTerms.
//
// Implementation:
//   - Stage 1: validate operands and m.Rows() == d.Rows().
//   - Stage 2: allocate out (m.Cols() × d.Cols()) and accumulate row updates.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, matrix.ErrInvalidDimensions (m has no columns).
//
// Complexity:
//   - Time O(nnz·k), Space O(m.Cols()·k).
//
// AI-Hints:
//   - Equivalent to matrix.Mul(matrix.Transpose(ToDense(m)), d) but never builds
//     the dense r×c operand.
func TransposeMulDense(m *COO, d *matrix.Dense) (*matrix.Dense, error) {
	if err := validateCOO(m); err != nil {
		return nil, sparseErrorf(opTransposeMulDense, err)
	}
	if err := validateDense(d); err != nil {
		return nil, sparseErrorf(opTransposeMulDense, err)
	}
	if m.rows != d.Rows() {
		return nil, sparseErrorf(opTransposeMulDense,
			fmt.Errorf("(%dx%d)ᵀ · %dx%d: %w", m.rows, m.cols, d.Rows(), d.Cols(), ErrDimensionMismatch))
	}

	out, err := matrix.NewDense(m.cols, d.Cols())
	if err != nil {
		return nil, sparseErrorf(opTransposeMulDense, err)
	}
	var dst, src []float64
	for k, v := range m.val {
		dst, _ = out.RowView(m.col[k])
		src, _ = d.RowView(m.row[k])
		axpyRow(dst, v, src)
	}

	return out, nil
}

// ToDense materializes m; duplicate coordinates are summed.
// Errors: ErrNilMatrix, matrix.ErrInvalidDimensions (empty shape).
// Complexity: Time O(r·c + nnz), Space O(r·c).
func ToDense(m *COO) (*matrix.Dense, error) {
	if err := validateCOO(m); err != nil {
		return nil, sparseErrorf(opToDense, err)
	}
	out, err := matrix.NewDense(m.rows, m.cols)
	if err != nil {
		return nil, sparseErrorf(opToDense, err)
	}
	var dst []float64
	for k, v := range m.val {
		dst, _ = out.RowView(m.row[k])
		dst[m.col[k]] += v
	}

	return out, nil
}

// FromDense collects the non-zero cells of d in row-major order.
// Errors: ErrNilMatrix.
// Complexity: Time O(r·c), Space O(nnz).
func FromDense(d *matrix.Dense) (*COO, error) {
	if err := validateDense(d); err != nil {
		return nil, sparseErrorf(opFromDense, err)
	}

	var row, col []int
	var val []float64
	d.Do(func(i, j int, v float64) bool {
		if v != 0 {
			row = append(row, i)
			col = append(col, j)
			val = append(val, v)
		}
		return true
	})

	return newCOOOwned(row, col, val, d.Rows(), d.Cols()), nil
}
