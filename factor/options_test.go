// SPDX-License-Identifier: MIT

package factor_test

import (
	"math"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsesgd/factor"
)

func TestOptions_Defaults(t *testing.T) {
	o := factor.NewOptions()

	assert.Equal(t, factor.DefaultLearningRate, o.LearningRate())
	assert.Equal(t, factor.DefaultMomentumRate, o.MomentumRate())
	assert.Equal(t, factor.DefaultL2Rate, o.L2Rate())
	assert.Equal(t, factor.DefaultLatentDim, o.LatentDim())
	assert.Equal(t, runtime.NumCPU(), o.Workers())
	assert.False(t, o.StrictJoin())
}

func TestOptions_LastWriterWins(t *testing.T) {
	o := factor.NewOptions(
		factor.WithLearningRate(0.5),
		factor.WithLearningRate(0.25),
		factor.WithMomentumRate(0),
		factor.WithL2Rate(0),
		factor.WithLatentDim(3),
		factor.WithWorkers(2),
		factor.WithStrictJoin(),
	)

	assert.Equal(t, 0.25, o.LearningRate())
	assert.Zero(t, o.MomentumRate())
	assert.Zero(t, o.L2Rate())
	assert.Equal(t, 3, o.LatentDim())
	assert.Equal(t, 2, o.Workers())
	assert.True(t, o.StrictJoin())

	u := factor.NewUpdater(factor.WithLatentDim(3))
	assert.Equal(t, 3, u.Options().LatentDim())
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	cases := map[string]func(){
		"lr zero":        func() { factor.WithLearningRate(0) },
		"lr NaN":         func() { factor.WithLearningRate(math.NaN()) },
		"momentum neg":   func() { factor.WithMomentumRate(-0.1) },
		"momentum Inf":   func() { factor.WithMomentumRate(math.Inf(1)) },
		"l2 neg":         func() { factor.WithL2Rate(-1) },
		"latent dim 0":   func() { factor.WithLatentDim(0) },
		"workers zero":   func() { factor.WithWorkers(0) },
		"workers negate": func() { factor.WithWorkers(-3) },
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			require.Panics(t, fn)
		})
	}
}
