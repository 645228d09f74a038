// SPDX-License-Identifier: MIT

package factor

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sparsesgd/matrix"
)

var (
	// ErrDimensionMismatch indicates V, ΔV or the cross terms disagree with F, k or rows(x).
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrNilMatrix indicates a nil sparse or dense operand.
	ErrNilMatrix = matrix.ErrNilMatrix

	// ErrUnalignedRow is returned under WithStrictJoin when an observation row of x
	// has entries but no stored loss entry.
	ErrUnalignedRow = errors.New("factor: observation row has no loss entry")

	// ErrDiverged is returned when the update produced NaN or ±Inf; nothing is committed.
	ErrDiverged = errors.New("factor: update produced non-finite values")

	// ErrInvalidPasses is returned by Run for a negative pass count.
	ErrInvalidPasses = errors.New("factor: pass count must be >= 0")
)

// Operation tags for error wrapping.
const (
	opStep        = "Step"
	opStepInPlace = "StepInPlace"
	opRun         = "Run"
)

// factorErrorf wraps err with an operation tag, preserving it for errors.Is.
func factorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
