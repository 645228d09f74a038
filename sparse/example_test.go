// SPDX-License-Identifier: MIT

package sparse_test

import (
	"fmt"

	"github.com/katalvlaran/sparsesgd/sparse"
)

// ExampleHConcat concatenates a matrix with itself; the result is sorted by (row, col).
func ExampleHConcat() {
	m, _ := sparse.NewCOO([]int{0, 0, 1, 2}, []int{0, 2, 0, 2}, []float64{1, 3, 2, 4}, 3, 3)

	c, _ := sparse.HConcat(m, m)
	fmt.Println(c.Shape())
	fmt.Println(c.Values())
	// Output:
	// 3 6
	// [1 3 1 3 2 2 4 4]
}

// ExampleScaleByAlignedVector shows the inner join: row 1 has no loss entry and vanishes.
func ExampleScaleByAlignedVector() {
	m, _ := sparse.NewCOO([]int{0, 0, 1, 2}, []int{0, 2, 0, 2}, []float64{1, 3, 2, 4}, 3, 3)
	losses, _ := sparse.NewCOO([]int{0, 2}, []int{0, 0}, []float64{2, 10}, 3, 1)

	out, _ := sparse.ScaleByAlignedVector(m, losses, 2)
	fmt.Println(out.RowIndices())
	fmt.Println(out.Values())
	// Output:
	// [0 0 2]
	// [1 3 20]
}

// ExampleFoldColumns sums per stored column; column 1 holds nothing and is omitted.
func ExampleFoldColumns() {
	m, _ := sparse.NewCOO([]int{0, 0, 1, 2}, []int{0, 2, 0, 2}, []float64{1, 3, 2, 4}, 3, 3)

	ids, sums, _ := sparse.FoldColumns(m, 2)
	fmt.Println(ids, sums)
	// Output:
	// [0 2] [1.5 3.5]
}

// ExampleSplitColumn separates a target column from the features.
func ExampleSplitColumn() {
	w, _ := sparse.NewCOO([]int{0, 0, 1}, []int{0, 2, 1}, []float64{7, 0.5, 3}, 2, 3)

	features, target, _ := sparse.SplitColumn(w, 2)
	fmt.Print(features)
	fmt.Print(target)
	// Output:
	// COO(2x2, nnz=2)
	// (0, 0) = 7
	// (1, 1) = 3
	// COO(2x1, nnz=1)
	// (0, 0) = 0.5
}
