// SPDX-License-Identifier: MIT

package sparse

import (
	"cmp"
	"fmt"
	"slices"
)

// HConcat places right to the right of left: [left | right].
// MAIN DESCRIPTION:
//   - Pools the entries of both operands, shifts right's columns by left.Cols(),
//     and stably sorts the pool ascending by (row, col).
//
// Implementation:
//   - Stage 1: validate both operands and equal row counts.
//   - Stage 2: build the pooled permutation 0..nnzL+nnzR-1 (left entries first).
//   - Stage 3: stable sort of the permutation by (row, shifted col).
//   - Stage 4: gather rows/cols/values through the permutation into fresh arrays.
//
// Behavior highlights:
//   - Duplicate (row, col) pairs are NOT merged: every input entry survives as its
//     own output entry; within a coordinate, left entries precede right entries,
//     and each operand keeps its storage order.
//
// Returns:
//   - *COO with shape (left.Rows(), left.Cols()+right.Cols()) and nnz = nnzL + nnzR.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (row counts differ).
//
// Complexity:
//   - Time O(nnz log nnz), Space O(nnz).
func HConcat(left, right *COO) (*COO, error) {
	if err := validateCOO(left); err != nil {
		return nil, sparseErrorf(opHConcat, err)
	}
	if err := validateCOO(right); err != nil {
		return nil, sparseErrorf(opHConcat, err)
	}
	if left.rows != right.rows {
		return nil, sparseErrorf(opHConcat,
			fmt.Errorf("rows %d vs %d: %w", left.rows, right.rows, ErrDimensionMismatch))
	}

	nl, nr := len(left.val), len(right.val)
	n := nl + nr
	shift := left.cols

	// Pooled view: position p < nl reads left[p], otherwise right[p-nl] shifted.
	rowAt := func(p int) int {
		if p < nl {
			return left.row[p]
		}
		return right.row[p-nl]
	}
	colAt := func(p int) int {
		if p < nl {
			return left.col[p]
		}
		return right.col[p-nl] + shift
	}

	order := make([]int, n)
	for p := range order {
		order[p] = p
	}
	slices.SortStableFunc(order, func(a, b int) int {
		if c := cmp.Compare(rowAt(a), rowAt(b)); c != 0 {
			return c
		}
		return cmp.Compare(colAt(a), colAt(b))
	})

	outRow := make([]int, n)
	outCol := make([]int, n)
	outVal := make([]float64, n)
	for k, p := range order {
		outRow[k] = rowAt(p)
		outCol[k] = colAt(p)
		if p < nl {
			outVal[k] = left.val[p]
		} else {
			outVal[k] = right.val[p-nl]
		}
	}

	return newCOOOwned(outRow, outCol, outVal, left.rows, left.cols+right.cols), nil
}
