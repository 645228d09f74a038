// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers.
//
// Purpose:
//   - Deterministic COO fixtures, random sparse generators and a gonum oracle
//     for the sparse × dense kernels.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsesgd/matrix"
	"github.com/katalvlaran/sparsesgd/sparse"
)

// mustCOO builds a COO or fails the test.
func mustCOO(tb testing.TB, row, col []int, data []float64, rows, cols int) *sparse.COO {
	tb.Helper()
	m, err := sparse.NewCOO(row, col, data, rows, cols)
	require.NoError(tb, err)

	return m
}

// fixture3x3 is the canonical 3×3 matrix
//
//	[1 0 3]
//	[2 0 0]
//	[0 0 4]
//
// stored as (0,0)=1, (0,2)=3, (1,0)=2, (2,2)=4.
func fixture3x3(tb testing.TB) *sparse.COO {
	tb.Helper()

	return mustCOO(tb, []int{0, 0, 1, 2}, []int{0, 2, 0, 2}, []float64{1, 3, 2, 4}, 3, 3)
}

// randomCOO draws nnz entries uniformly over rows×cols with U(-1,1) values.
// Coordinates may repeat.
func randomCOO(tb testing.TB, rows, cols, nnz int, seed int64) *sparse.COO {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	row := make([]int, nnz)
	col := make([]int, nnz)
	val := make([]float64, nnz)
	for k := 0; k < nnz; k++ {
		row[k] = rng.Intn(rows)
		col[k] = rng.Intn(cols)
		val[k] = rng.Float64()*2 - 1
	}

	return mustCOO(tb, row, col, val, rows, cols)
}

// randomDense returns an r×c Dense filled with U(-1,1) values.
func randomDense(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	flat := make([]float64, r*c)
	for i := range flat {
		flat[i] = rng.Float64()*2 - 1
	}
	d, err := matrix.NewDenseFromFlat(r, c, flat)
	require.NoError(tb, err)

	return d
}

// toGonum copies a Dense into a gonum mat.Dense.
func toGonum(d *matrix.Dense) *mat.Dense {
	r, c := d.Shape()
	g := mat.NewDense(r, c, nil)
	d.Do(func(i, j int, v float64) bool {
		g.Set(i, j, v)
		return true
	})

	return g
}

// cooToGonum materializes m through gonum, summing duplicate coordinates.
func cooToGonum(m *sparse.COO) *mat.Dense {
	g := mat.NewDense(m.Rows(), m.Cols(), nil)
	m.Do(func(r, c int, v float64) bool {
		g.Set(r, c, g.At(r, c)+v)
		return true
	})

	return g
}

// requireDenseEqualGonum asserts got matches want element-wise within tol.
func requireDenseEqualGonum(t *testing.T, want *mat.Dense, got *matrix.Dense, tol float64) {
	t.Helper()
	wr, wc := want.Dims()
	gr, gc := got.Shape()
	require.Equal(t, wr, gr, "rows")
	require.Equal(t, wc, gc, "cols")
	got.Do(func(i, j int, v float64) bool {
		require.InDelta(t, want.At(i, j), v, tol, "cell [%d,%d]", i, j)
		return true
	})
}
