// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/sparsesgd/matrix"
)

// ExampleNewDenseFromFlat reshapes a persisted flat array.
func ExampleNewDenseFromFlat() {
	m, _ := matrix.NewDenseFromFlat(2, 3, []float64{1, 2, 3, 4, 5, 6})
	fmt.Print(m)
	// Output:
	// [1, 2, 3]
	// [4, 5, 6]
}

// ExampleSub computes a displacement V − V'.
func ExampleSub() {
	v, _ := matrix.NewDenseFromFlat(2, 1, []float64{1, 2})
	vNext, _ := matrix.NewDenseFromFlat(2, 1, []float64{0.5, 2.5})

	d, _ := matrix.Sub(v, vNext)
	fmt.Print(d)
	// Output:
	// [0.5]
	// [-0.5]
}

// ExampleMul multiplies and transposes.
func ExampleMul() {
	a, _ := matrix.NewDenseFromFlat(2, 2, []float64{1, 2, 3, 4})
	at, _ := matrix.Transpose(a)

	p, _ := matrix.Mul(at, a)
	fmt.Print(p)
	// Output:
	// [10, 14]
	// [14, 20]
}
