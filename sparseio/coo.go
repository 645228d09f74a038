// SPDX-License-Identifier: MIT

package sparseio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/sparsesgd/sparse"
)

// cooDoc is the wire form. Pointers distinguish a missing field from an empty one.
type cooDoc struct {
	Row   *[]int     `json:"row"`
	Col   *[]int     `json:"col"`
	Data  *[]float64 `json:"data"`
	Shape *[]int     `json:"shape"`
}

// DecodeCOO reads one sparse document from r.
// MAIN DESCRIPTION:
//   - All four fields are required; an empty array is valid, a missing key is not.
//   - shape must hold exactly two entries.
//   - The result is built through sparse.NewCOO, so lengths, bounds and finite
//     values are checked here.
//
// Errors:
//   - ErrMissingField, ErrBadShape, JSON syntax errors, and any sparse.NewCOO error.
func DecodeCOO(r io.Reader) (*sparse.COO, error) {
	var doc cooDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, ioErrorf(opDecodeCOO, err)
	}

	for _, f := range []struct {
		name    string
		present bool
	}{
		{"row", doc.Row != nil},
		{"col", doc.Col != nil},
		{"data", doc.Data != nil},
		{"shape", doc.Shape != nil},
	} {
		if !f.present {
			return nil, ioErrorf(opDecodeCOO, fmt.Errorf("%q: %w", f.name, ErrMissingField))
		}
	}
	shape := *doc.Shape
	if len(shape) != 2 {
		return nil, ioErrorf(opDecodeCOO, fmt.Errorf("shape has %d entries: %w", len(shape), ErrBadShape))
	}

	m, err := sparse.NewCOO(*doc.Row, *doc.Col, *doc.Data, shape[0], shape[1])
	if err != nil {
		return nil, ioErrorf(opDecodeCOO, err)
	}

	return m, nil
}

// EncodeCOO writes m as one sparse document followed by a newline.
// Empty matrices encode their arrays as [] rather than null.
func EncodeCOO(w io.Writer, m *sparse.COO) error {
	if m == nil {
		return ioErrorf(opEncodeCOO, sparse.ErrNilMatrix)
	}
	row, col, data := m.RowIndices(), m.ColIndices(), m.Values()
	if row == nil {
		row, col, data = []int{}, []int{}, []float64{}
	}
	shape := []int{m.Rows(), m.Cols()}

	doc := cooDoc{Row: &row, Col: &col, Data: &data, Shape: &shape}
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		return ioErrorf(opEncodeCOO, err)
	}

	return nil
}
