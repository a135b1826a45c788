// Copyright 2026 mhg42
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// A Vector is one stimulus entry: the two adder operands for a single cycle.
//
type Vector struct {
	A BitVector
	B BitVector
}

// Eval runs every stimulus vector through the ripple-carry adder, one
// independent evaluation per entry, in input order. The result slice has the
// same length and ordering as the input; an empty stimulus yields an empty
// result. The first invalid vector aborts the run.
//
func Eval(vectors []Vector) ([]AdderResult, error) {
	results := make([]AdderResult, len(vectors))
	for i, v := range vectors {
		r, err := Add(v.A, v.B)
		if err != nil {
			return nil, errors.Wrapf(err, "cycle %d", i)
		}
		results[i] = r
	}
	return results, nil
}

// EvalParallel is Eval spread over a pool of goroutines. Cycles are
// independent of each other so they can be evaluated concurrently; bits
// within a cycle still ripple sequentially. Results are written by index,
// preserving stimulus order.
//
// If workers is <= 0, GOMAXPROCS is used.
//
func EvalParallel(ctx context.Context, vectors []Vector, workers int) ([]AdderResult, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]AdderResult, len(vectors))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, v := range vectors {
		i, v := i, v
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := Add(v.A, v.B)
			if err != nil {
				return errors.Wrapf(err, "cycle %d", i)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
