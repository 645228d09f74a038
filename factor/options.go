// SPDX-License-Identifier: MIT

// Functional configuration for the regularized factor update.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - defaultOptions / gatherOptions / finalizeOptions (internal resolution chain).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.

package factor

import (
	"math"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultLearningRate scales the gradient subtracted from V.
	DefaultLearningRate = 0.99

	// DefaultMomentumRate weights the previous displacement ΔV in the gradient.
	DefaultMomentumRate = 0.1

	// DefaultL2Rate weights the L2 penalty term V in the gradient.
	DefaultL2Rate = 0.1

	// DefaultLatentDim is the latent dimension k (columns of V and ΔV).
	DefaultLatentDim = 10

	// DefaultStrictJoin keeps the permissive row join: observation rows without a
	// loss entry are silently excluded from the statistics.
	DefaultStrictJoin = false

	// DefaultWorkers of 0 resolves to runtime.NumCPU().
	DefaultWorkers = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicLearningRateInvalid = "factor: WithLearningRate: rate must be finite and > 0"
	panicMomentumRateInvalid = "factor: WithMomentumRate: rate must be finite and >= 0"
	panicL2RateInvalid       = "factor: WithL2Rate: rate must be finite and >= 0"
	panicLatentDimInvalid    = "factor: WithLatentDim: k must be > 0"
	panicWorkersInvalid      = "factor: WithWorkers: n must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	learningRate float64 // DefaultLearningRate
	momentumRate float64 // DefaultMomentumRate
	l2Rate       float64 // DefaultL2Rate
	latentDim    int     // DefaultLatentDim
	workers      int     // resolved: >= 1
	strictJoin   bool    // DefaultStrictJoin
}

// LearningRate returns the effective learning rate.
func (o Options) LearningRate() float64 { return o.learningRate }

// MomentumRate returns the effective momentum rate.
func (o Options) MomentumRate() float64 { return o.momentumRate }

// L2Rate returns the effective L2 regularization rate.
func (o Options) L2Rate() float64 { return o.l2Rate }

// LatentDim returns the latent dimension k.
func (o Options) LatentDim() int { return o.latentDim }

// Workers returns the resolved number of update goroutines (always ≥ 1).
func (o Options) Workers() int { return o.workers }

// StrictJoin reports whether unmatched observation rows are rejected.
func (o Options) StrictJoin() bool { return o.strictJoin }

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// WithLearningRate sets the step size applied to the gradient.
// Panics when rate is non-finite or ≤ 0.
func WithLearningRate(rate float64) Option {
	if isNonFinite(rate) || rate <= 0 {
		panic(panicLearningRateInvalid)
	}

	return func(o *Options) { o.learningRate = rate }
}

// WithMomentumRate sets the weight of the previous displacement ΔV.
// Zero disables momentum. Panics when rate is non-finite or negative.
func WithMomentumRate(rate float64) Option {
	if isNonFinite(rate) || rate < 0 {
		panic(panicMomentumRateInvalid)
	}

	return func(o *Options) { o.momentumRate = rate }
}

// WithL2Rate sets the L2 penalty weight.
// Zero disables regularization. Panics when rate is non-finite or negative.
//
// AI-Hints:
//   - With l2=0 and momentum=0 a cell whose data term already balances
//     (xvxl == xxl·V) is a fixed point of the update.
func WithL2Rate(rate float64) Option {
	if isNonFinite(rate) || rate < 0 {
		panic(panicL2RateInvalid)
	}

	return func(o *Options) { o.l2Rate = rate }
}

// WithLatentDim sets k, the expected column count of V, ΔV and the cross terms.
// Panics when k ≤ 0.
func WithLatentDim(k int) Option {
	if k <= 0 {
		panic(panicLatentDimInvalid)
	}

	return func(o *Options) { o.latentDim = k }
}

// WithWorkers bounds the number of goroutines used by the per-feature update.
// Panics when n ≤ 0. WithWorkers(1) runs the update on the calling goroutine.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithStrictJoin makes Step fail with ErrUnalignedRow when an observation row
// holding entries in x has no stored loss entry, instead of silently dropping it.
func WithStrictJoin() Option {
	return func(o *Options) { o.strictJoin = true }
}

// NewOptions resolves opts on top of the defaults. Exposed for inspection and tests.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults (single source of truth).
// Workers stays unresolved here; finalizeOptions maps 0 to runtime.NumCPU().
func defaultOptions() Options {
	return Options{
		learningRate: DefaultLearningRate,
		momentumRate: DefaultMomentumRate,
		l2Rate:       DefaultL2Rate,
		latentDim:    DefaultLatentDim,
		workers:      DefaultWorkers,
		strictJoin:   DefaultStrictJoin,
	}
}

// gatherOptions applies user-provided setters on top of defaults and
// finalizes derived values.
// Implementation:
//   - Stage 1: start from defaultOptions().
//   - Stage 2: apply setters in order (last-writer-wins).
//   - Stage 3: finalizeOptions.
//
// Complexity:
//   - Time O(len(user)), Space O(1).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}
	finalizeOptions(&o)

	return o
}

// finalizeOptions enforces derived invariants in exactly one place.
// Must run after every setter has been applied.
func finalizeOptions(o *Options) {
	if o.workers <= 0 {
		o.workers = runtime.NumCPU()
	}
}
