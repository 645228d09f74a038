// Package matrix provides the dense, row-major float64 matrix used by the
// sparse factor-update pipeline: latent factor matrices V and ΔV, cross-term
// matrices (x·V), and the dense products built from sparse operands.
//
// The matrix package provides:
//
//   - Dense: flat row-major storage with bounds-checked At/Set, an optional
//     finite-only numeric policy, no-copy row views and a row-major visitor.
//   - NewDenseFromFlat: construction from a persisted flat row-major array
//     plus an externally known shape.
//   - Kernels: Sub, Mul, Transpose and AllClose. Every kernel takes a
//     *Dense fast path over the flat buffer and falls back to At/Set for any
//     other Matrix implementation.
//   - Central validators and a small sentinel error set shared with the
//     sparse and factor packages.
//
// Determinism:
//
//	All loops run in fixed i→j (or i→k→j) order; no map iteration, no
//	randomness. Identical inputs always produce bitwise identical outputs.
//
// See example_test.go for usage.
package matrix
