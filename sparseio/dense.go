// SPDX-License-Identifier: MIT

package sparseio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/sparsesgd/matrix"
	"github.com/katalvlaran/sparsesgd/sparse"
)

// DecodeDense reads a flat row-major array and reshapes it to rows×cols.
// Errors: ErrLengthMismatch (len != rows*cols), JSON errors, matrix.NewDenseFromFlat errors.
func DecodeDense(r io.Reader, rows, cols int) (*matrix.Dense, error) {
	var flat []float64
	if err := json.NewDecoder(r).Decode(&flat); err != nil {
		return nil, ioErrorf(opDecodeDense, err)
	}
	if len(flat) != rows*cols {
		return nil, ioErrorf(opDecodeDense,
			fmt.Errorf("%d values for %dx%d: %w", len(flat), rows, cols, ErrLengthMismatch))
	}

	d, err := matrix.NewDenseFromFlat(rows, cols, flat)
	if err != nil {
		return nil, ioErrorf(opDecodeDense, err)
	}

	return d, nil
}

// EncodeDense writes d as a flat row-major array followed by a newline.
func EncodeDense(w io.Writer, d *matrix.Dense) error {
	if d == nil {
		return ioErrorf(opEncodeDense, matrix.ErrNilMatrix)
	}
	flat := make([]float64, 0, d.Rows()*d.Cols())
	d.Do(func(_, _ int, v float64) bool {
		flat = append(flat, v)
		return true
	})
	if err := json.NewEncoder(w).Encode(flat); err != nil {
		return ioErrorf(opEncodeDense, err)
	}

	return nil
}

// LoadCOO decodes the sparse document stored at path.
func LoadCOO(path string) (*sparse.COO, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf(opLoad, err)
	}
	defer f.Close()

	m, err := DecodeCOO(f)
	if err != nil {
		return nil, ioErrorf(opLoad, fmt.Errorf("%s: %w", path, err))
	}

	return m, nil
}

// LoadDense decodes the rows×cols dense array stored at path.
func LoadDense(path string, rows, cols int) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf(opLoad, err)
	}
	defer f.Close()

	d, err := DecodeDense(f, rows, cols)
	if err != nil {
		return nil, ioErrorf(opLoad, fmt.Errorf("%s: %w", path, err))
	}

	return d, nil
}

// SaveDense writes d to path, creating or truncating the file.
func SaveDense(path string, d *matrix.Dense) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return ioErrorf(opSave, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ioErrorf(opSave, cerr)
		}
	}()

	if err = EncodeDense(f, d); err != nil {
		return ioErrorf(opSave, fmt.Errorf("%s: %w", path, err))
	}

	return nil
}
