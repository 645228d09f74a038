// SPDX-License-Identifier: MIT

// Package factor implements the regularized, momentum-based update of a latent
// factor matrix V (F features × k latent dimensions) from sparse observations.
//
// What:
//   - Updater.Step: one pure step returning (V', ΔV').
//   - Updater.StepInPlace: the same step committed into caller-owned V and ΔV.
//   - Updater.Run: repeated in-place passes with cross terms recomputed from V.
//
// Why:
//   - Keeps the gradient arithmetic separate from the sparse kernels it drives
//     (package sparse) and the dense storage it writes (package matrix).
//
// Options:
//   - WithLearningRate (0.99), WithMomentumRate (0.1), WithL2Rate (0.1),
//     WithLatentDim (10), WithWorkers (NumCPU), WithStrictJoin (off).
//
// Errors:
//   - ErrDimensionMismatch, ErrNilMatrix, ErrUnalignedRow, ErrDiverged, ErrInvalidPasses.
//
// AI-Hints:
//   - The losses vector must cover every observation row of x. Rows without a
//     stored loss silently drop out of the statistics; use WithStrictJoin to make
//     that an error instead.
package factor
