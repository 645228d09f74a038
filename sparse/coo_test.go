// SPDX-License-Identifier: MIT

package sparse_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsesgd/sparse"
)

func TestNewCOO_Valid(t *testing.T) {
	m := fixture3x3(t)

	rows, cols := m.Shape()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, 4, m.NNZ())
	assert.Equal(t, []int{0, 0, 1, 2}, m.RowIndices())
	assert.Equal(t, []int{0, 2, 0, 2}, m.ColIndices())
	assert.Equal(t, []float64{1, 3, 2, 4}, m.Values())

	r, c, v, err := m.Entry(3)
	require.NoError(t, err)
	assert.Equal(t, [3]float64{2, 2, 4}, [3]float64{float64(r), float64(c), v})
}

func TestNewCOO_CopiesInputs(t *testing.T) {
	row, col, val := []int{0, 1}, []int{1, 0}, []float64{5, 6}
	m := mustCOO(t, row, col, val, 2, 2)

	row[0], col[0], val[0] = 1, 0, 99
	assert.Equal(t, []int{0, 1}, m.RowIndices())
	assert.Equal(t, []float64{5, 6}, m.Values())

	// getters hand out copies too
	got := m.Values()
	got[0] = -1
	assert.Equal(t, []float64{5, 6}, m.Values())
}

func TestNewCOO_EmptyShapes(t *testing.T) {
	m, err := sparse.NewCOO(nil, nil, nil, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, m.NNZ())

	m, err = sparse.NewCOO(nil, nil, nil, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, m.Rows())
	assert.Equal(t, 0, m.Cols())
}

func TestNewCOO_Errors(t *testing.T) {
	cases := []struct {
		name       string
		row, col   []int
		data       []float64
		rows, cols int
		want       error
	}{
		{"negative shape", nil, nil, nil, -1, 2, sparse.ErrBadShape},
		{"length mismatch", []int{0}, []int{0, 1}, []float64{1}, 2, 2, sparse.ErrLengthMismatch},
		{"row out of range", []int{2}, []int{0}, []float64{1}, 2, 2, sparse.ErrOutOfRange},
		{"negative col", []int{0}, []int{-1}, []float64{1}, 2, 2, sparse.ErrOutOfRange},
		{"NaN value", []int{0}, []int{0}, []float64{math.NaN()}, 2, 2, sparse.ErrNaNInf},
		{"Inf value", []int{0}, []int{0}, []float64{math.Inf(-1)}, 2, 2, sparse.ErrNaNInf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := sparse.NewCOO(tc.row, tc.col, tc.data, tc.rows, tc.cols)
			require.Nil(t, m)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCOO_EntryOutOfRange(t *testing.T) {
	m := fixture3x3(t)
	_, _, _, err := m.Entry(4)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
	_, _, _, err = m.Entry(-1)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
}

func TestCOO_DoEarlyStop(t *testing.T) {
	m := fixture3x3(t)
	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return len(seen) < 2
	})
	assert.Equal(t, []float64{1, 3}, seen)
}

func TestCOO_String(t *testing.T) {
	m := mustCOO(t, []int{1}, []int{0}, []float64{2.5}, 2, 3)
	assert.Equal(t, "COO(2x3, nnz=1)\n(1, 0) = 2.5\n", m.String())
}
