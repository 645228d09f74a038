// SPDX-License-Identifier: MIT
// Package: factor
//
// Purpose:
//   - One regularized, momentum-based gradient step on the latent factor matrix V
//     driven by sparse observations x and per-row losses.
//
// Stage map (per Step):
//   - x_loss = ScaleByAlignedVector(x, losses, rows(x))
//   - xxl    = FoldColumns(ScaleByAlignedVector(Square(x), losses, 1), rows(x)) scattered to F
//   - xvxl   = x_lossᵀ · crossTerms                                         (F × k)
//   - g      = (xvxl − xxl ⊙row V) + momentum·ΔV + l2·V
//   - V'     = V − lr·g,  ΔV' = V − V'

package factor

import (
	"context"
	"fmt"

	"github.com/katalvlaran/sparsesgd/matrix"
	"github.com/katalvlaran/sparsesgd/sparse"
)

// Updater applies the factor update with a fixed configuration.
// An Updater is immutable after construction and safe for concurrent use.
type Updater struct {
	opts Options
}

// NewUpdater builds an Updater from defaults overridden by opts.
func NewUpdater(opts ...Option) *Updater {
	return &Updater{opts: gatherOptions(opts...)}
}

// Options returns the resolved configuration.
func (u *Updater) Options() Options { return u.opts }

// Step computes one update and returns fresh (V', ΔV'); inputs are never mutated.
// MAIN DESCRIPTION:
//   - x is the R×F observation matrix, totalLosses an R×1 column vector over the
//     same rows, crossTerms the R×k product x·V of the current factors, v and dv
//     the F×k factor matrix and its previous displacement.
//   - Calling Step twice with the same inputs yields identical results.
//
// Implementation:
//   - Stage 1: validate shapes against R = x.Rows(), F = x.Cols(), k = LatentDim.
//   - Stage 2: optional strict join check (WithStrictJoin).
//   - Stage 3: sparse statistics x_loss, xxl (length F, absent features 0) and xvxl.
//   - Stage 4: per-feature update of V' partitioned over workers.
//   - Stage 5: finiteness check, then ΔV' = V − V'.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrUnalignedRow (strict join only),
//     ErrDiverged, and wrapped sparse errors.
//
// Complexity:
//   - Time O(nnz·k + F·k), Space O(F·k).
//
// Notes:
//   - Rows of x with no stored loss are dropped from every statistic unless
//     WithStrictJoin is set.
//   - A feature with no observations gets xvxl = 0 and xxl = 0, so only the
//     momentum and L2 terms move it.
func (u *Updater) Step(x, totalLosses *sparse.COO, crossTerms, v, dv *matrix.Dense) (vNext, dvNext *matrix.Dense, err error) {
	if err = u.validate(x, totalLosses, crossTerms, v, dv); err != nil {
		return nil, nil, factorErrorf(opStep, err)
	}

	rows := float64(x.Rows())
	xLoss, err := sparse.ScaleByAlignedVector(x, totalLosses, rows)
	if err != nil {
		return nil, nil, factorErrorf(opStep, err)
	}

	xxl, err := u.squaredLossByFeature(x, totalLosses, rows)
	if err != nil {
		return nil, nil, factorErrorf(opStep, err)
	}

	xvxl, err := sparse.TransposeMulDense(xLoss, crossTerms)
	if err != nil {
		return nil, nil, factorErrorf(opStep, err)
	}

	vNext, err = matrix.NewDense(v.Rows(), v.Cols())
	if err != nil {
		return nil, nil, factorErrorf(opStep, err)
	}

	lr, mom, l2 := u.opts.learningRate, u.opts.momentumRate, u.opts.l2Rate
	finite := parallelRows(v.Rows(), u.opts.workers, func(lo, hi int) bool {
		ok := true
		for f := lo; f < hi; f++ {
			vr, _ := v.RowView(f)
			dvr, _ := dv.RowView(f)
			xr, _ := xvxl.RowView(f)
			out, _ := vNext.RowView(f)
			s := xxl[f]
			for j, vv := range vr {
				g := (xr[j] - s*vv) + mom*dvr[j] + l2*vv
				out[j] = vv - lr*g
				if isNonFinite(out[j]) {
					ok = false
				}
			}
		}
		return ok
	})
	if !finite {
		return nil, nil, factorErrorf(opStep, ErrDiverged)
	}

	dvNext, err = matrix.Sub(v, vNext)
	if err != nil {
		return nil, nil, factorErrorf(opStep, err)
	}

	return vNext, dvNext, nil
}

// StepInPlace runs Step and commits V' into v and ΔV' into dv.
// On error neither v nor dv is modified.
func (u *Updater) StepInPlace(x, totalLosses *sparse.COO, crossTerms, v, dv *matrix.Dense) error {
	vNext, dvNext, err := u.Step(x, totalLosses, crossTerms, v, dv)
	if err != nil {
		return factorErrorf(opStepInPlace, err)
	}
	// Shapes were validated by Step; CopyFrom cannot fail here.
	_ = v.CopyFrom(vNext)
	_ = dv.CopyFrom(dvNext)

	return nil
}

// Run applies passes in-place steps, recomputing the cross terms x·V from the
// current factors before each pass.
// MAIN DESCRIPTION:
//   - ctx is checked between passes; a cancelled context stops the loop and
//     returns ctx.Err() with v and dv holding the last committed pass.
//   - passes == 0 is a no-op.
//
// Errors:
//   - ErrInvalidPasses, context errors, and anything Step returns.
//
// Complexity:
//   - Time O(passes·(nnz·k + F·k)).
func (u *Updater) Run(ctx context.Context, x, totalLosses *sparse.COO, v, dv *matrix.Dense, passes int) error {
	if passes < 0 {
		return factorErrorf(opRun, fmt.Errorf("passes=%d: %w", passes, ErrInvalidPasses))
	}
	for p := 0; p < passes; p++ {
		if err := ctx.Err(); err != nil {
			return factorErrorf(opRun, fmt.Errorf("pass %d: %w", p, err))
		}
		crossTerms, err := sparse.MulDense(x, v)
		if err != nil {
			return factorErrorf(opRun, err)
		}
		if err = u.StepInPlace(x, totalLosses, crossTerms, v, dv); err != nil {
			return factorErrorf(opRun, fmt.Errorf("pass %d: %w", p, err))
		}
	}

	return nil
}

// squaredLossByFeature returns xxl scattered by column id into a length-F slice;
// features without stored entries stay 0.
func (u *Updater) squaredLossByFeature(x, totalLosses *sparse.COO, rows float64) ([]float64, error) {
	sq, err := sparse.Square(x)
	if err != nil {
		return nil, err
	}
	sqLoss, err := sparse.ScaleByAlignedVector(sq, totalLosses, 1)
	if err != nil {
		return nil, err
	}
	ids, sums, err := sparse.FoldColumns(sqLoss, rows)
	if err != nil {
		return nil, err
	}

	xxl := make([]float64, x.Cols())
	for i, c := range ids {
		xxl[c] = sums[i]
	}

	return xxl, nil
}

// validate checks operand presence and shapes:
// v, dv are F×k, crossTerms is R×k, totalLosses is R×1.
func (u *Updater) validate(x, totalLosses *sparse.COO, crossTerms, v, dv *matrix.Dense) error {
	if x == nil || totalLosses == nil {
		return ErrNilMatrix
	}
	r, f, k := x.Rows(), x.Cols(), u.opts.latentDim
	if err := matrix.ValidateShape(v, f, k); err != nil {
		return fmt.Errorf("V: %w", err)
	}
	if err := matrix.ValidateShape(dv, f, k); err != nil {
		return fmt.Errorf("ΔV: %w", err)
	}
	if err := matrix.ValidateShape(crossTerms, r, k); err != nil {
		return fmt.Errorf("cross terms: %w", err)
	}
	if totalLosses.Rows() != r || totalLosses.Cols() != 1 {
		return fmt.Errorf("losses %dx%d, want %dx1: %w",
			totalLosses.Rows(), totalLosses.Cols(), r, ErrDimensionMismatch)
	}
	if u.opts.strictJoin {
		return checkAligned(x, totalLosses)
	}

	return nil
}

// checkAligned reports the first observation row of x that has entries but no loss.
func checkAligned(x, totalLosses *sparse.COO) error {
	hasLoss := make([]bool, x.Rows())
	totalLosses.Do(func(row, _ int, _ float64) bool {
		hasLoss[row] = true
		return true
	})

	missing := -1
	x.Do(func(row, _ int, _ float64) bool {
		if !hasLoss[row] {
			missing = row
			return false
		}
		return true
	})
	if missing >= 0 {
		return fmt.Errorf("row %d: %w", missing, ErrUnalignedRow)
	}

	return nil
}
