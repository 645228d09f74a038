// SPDX-License-Identifier: MIT

// Command sparsesgd runs the regularized factor update on persisted inputs.
//
// The sparse document holds the observations and, in one column, the per-row
// losses. The loss column is split off, the remaining columns become the
// features x, the cross terms are x·V1, and V/ΔV are updated in place for the
// requested number of passes. The first pass uses the V1 cross terms; later
// passes recompute them from the current V.
//
// Usage:
//
//	go run ./cmd/sparsesgd -coo coo.json -v1 v1.json -v v.json -dv dv.json -out dv_next.json
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/katalvlaran/sparsesgd/factor"
	"github.com/katalvlaran/sparsesgd/sparse"
	"github.com/katalvlaran/sparsesgd/sparseio"
)

type config struct {
	cooPath, v1Path, vPath, dvPath string
	outPath, outVPath              string
	target, k, passes, workers     int
	lr, momentum, l2               float64
	strict                         bool
}

func parseFlags() (config, error) {
	var c config
	flag.StringVar(&c.cooPath, "coo", "coo.json", "sparse observations with the loss column")
	flag.StringVar(&c.v1Path, "v1", "v1.json", "factors used for the initial cross terms")
	flag.StringVar(&c.vPath, "v", "v.json", "factor matrix V (features×k, flat row-major)")
	flag.StringVar(&c.dvPath, "dv", "dv.json", "previous displacement ΔV")
	flag.StringVar(&c.outPath, "out", "", "write ΔV' here (optional)")
	flag.StringVar(&c.outVPath, "out-v", "", "write V' here (optional)")
	flag.IntVar(&c.target, "target", 11, "column holding the per-row losses")
	flag.IntVar(&c.k, "k", factor.DefaultLatentDim, "latent dimension")
	flag.IntVar(&c.passes, "passes", 1, "number of update passes")
	flag.IntVar(&c.workers, "workers", 0, "update goroutines (0 = NumCPU)")
	flag.Float64Var(&c.lr, "lr", factor.DefaultLearningRate, "learning rate")
	flag.Float64Var(&c.momentum, "momentum", factor.DefaultMomentumRate, "momentum rate")
	flag.Float64Var(&c.l2, "l2", factor.DefaultL2Rate, "L2 regularization rate")
	flag.BoolVar(&c.strict, "strict", false, "fail when an observation row has no loss entry")
	flag.Parse()

	switch {
	case c.k <= 0:
		return c, errors.New("-k must be > 0")
	case c.passes < 1:
		return c, errors.New("-passes must be >= 1")
	case c.workers < 0:
		return c, errors.New("-workers must be >= 0")
	case !(c.lr > 0) || math.IsInf(c.lr, 0):
		return c, errors.New("-lr must be finite and > 0")
	case !(c.momentum >= 0) || !(c.l2 >= 0) || math.IsInf(c.momentum+c.l2, 0):
		return c, errors.New("-momentum and -l2 must be finite and >= 0")
	}

	return c, nil
}

func (c config) options() []factor.Option {
	opts := []factor.Option{
		factor.WithLatentDim(c.k),
		factor.WithLearningRate(c.lr),
		factor.WithMomentumRate(c.momentum),
		factor.WithL2Rate(c.l2),
	}
	if c.workers > 0 {
		opts = append(opts, factor.WithWorkers(c.workers))
	}
	if c.strict {
		opts = append(opts, factor.WithStrictJoin())
	}

	return opts
}

func run(ctx context.Context, c config) error {
	w, err := sparseio.LoadCOO(c.cooPath)
	if err != nil {
		return err
	}
	x, losses, err := sparse.SplitColumn(w, c.target)
	if err != nil {
		return err
	}
	features := x.Cols()
	log.Printf("observations %dx%d nnz=%d, features=%d", w.Rows(), w.Cols(), w.NNZ(), features)

	v1, err := sparseio.LoadDense(c.v1Path, features, c.k)
	if err != nil {
		return err
	}
	cross, err := sparse.MulDense(x, v1)
	if err != nil {
		return err
	}
	v, err := sparseio.LoadDense(c.vPath, features, c.k)
	if err != nil {
		return err
	}
	dv, err := sparseio.LoadDense(c.dvPath, features, c.k)
	if err != nil {
		return err
	}

	u := factor.NewUpdater(c.options()...)
	start := time.Now()
	if err = u.StepInPlace(x, losses, cross, v, dv); err != nil {
		return err
	}
	if err = u.Run(ctx, x, losses, v, dv, c.passes-1); err != nil {
		return err
	}
	elapsed := time.Since(start)

	first, _ := dv.At(0, 0)
	log.Printf("%d pass(es) in %s (ΔV'[0][0] = %g)", c.passes, elapsed, first)

	if c.outPath != "" {
		if err = sparseio.SaveDense(c.outPath, dv); err != nil {
			return err
		}
	}
	if c.outVPath != "" {
		if err = sparseio.SaveDense(c.outVPath, v); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("sparsesgd: ")

	c, err := parseFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = run(ctx, c); err != nil {
		log.Fatal(err)
	}
}
