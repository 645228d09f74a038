// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for the dense kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsesgd/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Embed matrix.Matrix to forward all methods.
//
// Behavior highlights:
//   - Prevents the "*Dense" fast path via type switch in code under test.
//
// AI-Hints:
//   - Wrap ONLY the operand you want to de-opt; keep the other one *Dense to
//     isolate path differences.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err, "NewDense(%d,%d)", r, c)

	return m
}

// NewFilledDense BUILDS r×c *Dense from a row-major flat slice.
// Complexity: Time O(r*c), Space O(r*c).
func NewFilledDense(tb testing.TB, r, c int, vals []float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromFlat(r, c, vals)
	require.NoError(tb, err, "NewDenseFromFlat(%d,%d)", r, c)

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err, "At(%d,%d)", i, j)

	return v
}

// RandomFill FILLS a Matrix with deterministic U(-1,1) values by seed.
// Determinism: fixed i→j order and a seeded source.
func RandomFill(tb testing.TB, m matrix.Matrix, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			require.NoError(tb, m.Set(i, j, rng.Float64()*2-1))
		}
	}
}

// flatOf copies m into a row-major slice through the interface.
func flatOf(tb testing.TB, m matrix.Matrix) []float64 {
	tb.Helper()
	out := make([]float64, 0, m.Rows()*m.Cols())
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			out = append(out, MustAt(tb, m, i, j))
		}
	}

	return out
}
