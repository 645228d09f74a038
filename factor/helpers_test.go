// SPDX-License-Identifier: MIT

package factor_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsesgd/matrix"
	"github.com/katalvlaran/sparsesgd/sparse"
)

func mustCOO(tb testing.TB, row, col []int, data []float64, rows, cols int) *sparse.COO {
	tb.Helper()
	m, err := sparse.NewCOO(row, col, data, rows, cols)
	require.NoError(tb, err)

	return m
}

func mustDense(tb testing.TB, r, c int, flat []float64) *matrix.Dense {
	tb.Helper()
	d, err := matrix.NewDenseFromFlat(r, c, flat)
	require.NoError(tb, err)

	return d
}

func zeroDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	d, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return d
}

// randomDense fills r×c with U(-scale, scale).
func randomDense(tb testing.TB, r, c int, scale float64, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	flat := make([]float64, r*c)
	for i := range flat {
		flat[i] = (rng.Float64()*2 - 1) * scale
	}

	return mustDense(tb, r, c, flat)
}

// problem is one factor-update input set: x (R×F), losses (R×1 covering every
// row), V and ΔV (F×k) and the cross terms x·V.
type problem struct {
	x, losses      *sparse.COO
	v, dv, cross   *matrix.Dense
	rows, feats, k int
}

// randomProblem draws a well-conditioned problem with small values.
func randomProblem(tb testing.TB, rows, feats, k, nnz int, seed int64) problem {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	row := make([]int, nnz)
	col := make([]int, nnz)
	val := make([]float64, nnz)
	for i := 0; i < nnz; i++ {
		row[i] = rng.Intn(rows)
		col[i] = rng.Intn(feats)
		val[i] = rng.Float64()
	}
	lr := make([]int, rows)
	lc := make([]int, rows)
	lv := make([]float64, rows)
	for r := 0; r < rows; r++ {
		lr[r] = r
		lv[r] = rng.Float64()
	}

	p := problem{
		x:      mustCOO(tb, row, col, val, rows, feats),
		losses: mustCOO(tb, lr, lc, lv, rows, 1),
		v:      randomDense(tb, feats, k, 0.1, seed+1),
		dv:     randomDense(tb, feats, k, 0.01, seed+2),
		rows:   rows,
		feats:  feats,
		k:      k,
	}
	cross, err := sparse.MulDense(p.x, p.v)
	require.NoError(tb, err)
	p.cross = cross

	return p
}

// flat copies a Dense in row-major order.
func flat(d *matrix.Dense) []float64 {
	out := make([]float64, 0, d.Rows()*d.Cols())
	d.Do(func(_, _ int, v float64) bool {
		out = append(out, v)
		return true
	})

	return out
}
