// Package sparsesgd is a small numeric toolkit for training a latent factor
// matrix from sparse observations: an immutable coordinate-format (COO) sparse
// matrix, the join and fold kernels that reduce observations to per-feature
// statistics, and a momentum/L2-regularized gradient step over a dense V.
//
// 🚀 What is inside?
//
//	• Dense primitives: row-major matrices, validators, Sub/Mul/Transpose
//	• Sparse algebra: Slice, HConcat, Square, ScaleByAlignedVector, folds
//	• Sparse × dense products: x·V cross terms and x_lossᵀ·crossTerms
//	• Factor update: pure Step, StepInPlace and multi-pass Run
//	• JSON wire codec for the persisted sparse and dense forms
//
// ⚠️ Join semantics:
//
//	ScaleByAlignedVector is an inner join on row index. Observation rows with
//	no stored loss vanish from every statistic; factor.WithStrictJoin turns
//	that into an error.
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/         Dense, validators, dense kernels and shared sentinels
//	sparse/         COO type and every sparse transform
//	factor/         Updater with functional options (learning rate, momentum, L2, k, workers)
//	sparseio/       {row,col,data,shape} JSON documents and flat dense arrays
//	cmd/sparsesgd/  command-line driver over persisted inputs
//
// Quick sketch of one step:
//
//	x (R×F), losses (R×1) ──► x_loss, xxl ──┐
//	crossTerms = x·V (R×k) ─────────────────┴─► xvxl ──► V', ΔV'
//
//	go get github.com/katalvlaran/sparsesgd
package sparsesgd
