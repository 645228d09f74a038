// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Structural sentinels are shared with the matrix package so that a single
// errors.Is check works across dense and sparse kernels.

package sparse

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sparsesgd/matrix"
)

var (
	// ErrDimensionMismatch indicates incompatible operand shapes
	// (HConcat row counts, vector/matrix row spaces, dense operand shapes).
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrOutOfRange indicates an entry or range bound outside the declared shape.
	ErrOutOfRange = matrix.ErrOutOfRange

	// ErrNilMatrix indicates a nil *COO or nil dense operand.
	ErrNilMatrix = matrix.ErrNilMatrix

	// ErrNaNInf indicates a non-finite stored value at construction.
	ErrNaNInf = matrix.ErrNaNInf

	// ErrNotColumnVector is returned when an operation requires a single-column operand.
	ErrNotColumnVector = errors.New("sparse: operand is not a column vector")

	// ErrLengthMismatch is returned when row, col and value sequences differ in length.
	ErrLengthMismatch = errors.New("sparse: row, col and value lengths differ")

	// ErrBadShape is returned for a negative shape component.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrBadScalar is returned when a divisor is zero, NaN or ±Inf.
	ErrBadScalar = errors.New("sparse: divisor must be finite and non-zero")
)

// Operation tags for error wrapping.
const (
	opNewCOO            = "NewCOO"
	opSlice             = "Slice"
	opHConcat           = "HConcat"
	opSquare            = "Square"
	opScaleByAligned    = "ScaleByAlignedVector"
	opFoldColumns       = "FoldColumns"
	opSplitColumn       = "SplitColumn"
	opMulDense          = "MulDense"
	opTransposeMulDense = "TransposeMulDense"
	opToDense           = "ToDense"
	opFromDense         = "FromDense"
)

// sparseErrorf wraps err with an operation tag, preserving it for errors.Is.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
