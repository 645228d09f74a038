// SPDX-License-Identifier: MIT

package sparse_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsesgd/matrix"
	"github.com/katalvlaran/sparsesgd/sparse"
)

func TestMulDense_Fixture(t *testing.T) {
	m := fixture3x3(t)
	d, err := matrix.NewDenseFromFlat(3, 2, []float64{
		1, 2,
		3, 4,
		5, 6,
	})
	require.NoError(t, err)

	out, err := sparse.MulDense(m, d)
	require.NoError(t, err)
	// [1 0 3;2 0 0;0 0 4] · D
	assert.Equal(t, "[16, 20]\n[2, 4]\n[20, 24]\n", out.String())
}

func TestMulDense_MatchesGonum(t *testing.T) {
	for _, tc := range []struct{ r, c, k, nnz int }{
		{8, 6, 3, 20},
		{40, 15, 10, 120},
	} {
		t.Run(fmt.Sprintf("%dx%d·k=%d", tc.r, tc.c, tc.k), func(t *testing.T) {
			m := randomCOO(t, tc.r, tc.c, tc.nnz, int64(tc.r))
			d := randomDense(t, tc.c, tc.k, int64(tc.c))

			got, err := sparse.MulDense(m, d)
			require.NoError(t, err)

			var want mat.Dense
			want.Mul(cooToGonum(m), toGonum(d))
			requireDenseEqualGonum(t, &want, got, 1e-12)
		})
	}
}

func TestTransposeMulDense_MatchesGonum(t *testing.T) {
	m := randomCOO(t, 25, 9, 70, 5)
	d := randomDense(t, 25, 4, 6)

	got, err := sparse.TransposeMulDense(m, d)
	require.NoError(t, err)

	var want mat.Dense
	want.Mul(cooToGonum(m).T(), toGonum(d))
	requireDenseEqualGonum(t, &want, got, 1e-12)
}

func TestTransposeMulDense_EqualsDenseKernels(t *testing.T) {
	m := randomCOO(t, 12, 5, 30, 17)
	d := randomDense(t, 12, 3, 18)

	got, err := sparse.TransposeMulDense(m, d)
	require.NoError(t, err)

	dm, err := sparse.ToDense(m)
	require.NoError(t, err)
	mt, err := matrix.Transpose(dm)
	require.NoError(t, err)
	want, err := matrix.Mul(mt, d)
	require.NoError(t, err)

	ok, err := matrix.AllClose(want, got, 1e-12, 1e-12)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDenseProducts_Errors(t *testing.T) {
	m := fixture3x3(t)
	wrong := randomDense(t, 2, 2, 1)

	_, err := sparse.MulDense(m, wrong)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
	_, err = sparse.TransposeMulDense(m, wrong)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	_, err = sparse.MulDense(m, nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = sparse.TransposeMulDense(nil, wrong)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

func TestToDense_SumsDuplicates(t *testing.T) {
	m := mustCOO(t, []int{0, 0, 1}, []int{1, 1, 0}, []float64{2, 3, 4}, 2, 2)

	d, err := sparse.ToDense(m)
	require.NoError(t, err)
	assert.Equal(t, "[0, 5]\n[4, 0]\n", d.String())
}

func TestFromDense_RoundTrip(t *testing.T) {
	m := fixture3x3(t)

	d, err := sparse.ToDense(m)
	require.NoError(t, err)
	back, err := sparse.FromDense(d)
	require.NoError(t, err)

	// fixture is already row-major sorted with no duplicates
	assert.Equal(t, m.RowIndices(), back.RowIndices())
	assert.Equal(t, m.ColIndices(), back.ColIndices())
	assert.Equal(t, m.Values(), back.Values())

	_, err = sparse.FromDense(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

func TestToDense_EmptyShape(t *testing.T) {
	_, err := sparse.ToDense(mustCOO(t, nil, nil, nil, 0, 3))
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
