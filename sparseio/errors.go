// SPDX-License-Identifier: MIT

// Package sparseio reads and writes the persisted forms of the matrices the
// factor update consumes:
//   - sparse: a JSON object {"row": [...], "col": [...], "data": [...], "shape": [rows, cols]}
//     with all four fields required;
//   - dense: a flat row-major JSON array whose (rows, cols) are known externally.
//
// Decoded values go through sparse.NewCOO / matrix.NewDenseFromFlat, so every
// structural invariant is enforced at load time.
package sparseio

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sparsesgd/sparse"
)

var (
	// ErrMissingField is returned when a sparse document omits row, col, data or shape.
	ErrMissingField = errors.New("sparseio: required field missing")

	// ErrBadShape is returned when shape is not a pair of non-negative integers.
	ErrBadShape = sparse.ErrBadShape

	// ErrLengthMismatch is returned when a dense array does not hold rows*cols values.
	ErrLengthMismatch = sparse.ErrLengthMismatch
)

const (
	opDecodeCOO   = "DecodeCOO"
	opEncodeCOO   = "EncodeCOO"
	opDecodeDense = "DecodeDense"
	opEncodeDense = "EncodeDense"
	opLoad        = "Load"
	opSave        = "Save"
)

func ioErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
