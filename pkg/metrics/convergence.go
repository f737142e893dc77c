package metrics

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"
	"gonum.org/v1/gonum/stat"

	"github.com/XiaoConstantine/dtlz-go/pkg/core"
	"github.com/XiaoConstantine/dtlz-go/pkg/errors"
	"github.com/XiaoConstantine/dtlz-go/pkg/logging"
)

// DefaultMaxGoroutines bounds the fan-out of ParallelMeanConvergence when the
// caller passes a non-positive limit.
const DefaultMaxGoroutines = 10

// MeanConvergence returns the arithmetic mean of the convergence metric over
// every decision vector in the population.
//
// It fails fast with an InvalidArgument error on an empty population rather
// than dividing by zero, and propagates the first per-vector error.
func MeanConvergence(m core.ConvergenceMeter, pop core.Population) (float64, error) {
	if pop.Size() == 0 {
		return 0, errors.New(errors.InvalidArgument, "population must not be empty")
	}

	values := make([]float64, pop.Size())
	for i, x := range pop {
		v, err := m.Convergence(x)
		if err != nil {
			return 0, errors.Wrap(err, errors.InvalidArgument,
				fmt.Sprintf("convergence of population member %d failed", i))
		}
		values[i] = v
	}

	return stat.Mean(values, nil), nil
}

// ParallelMeanConvergence computes the same mean as MeanConvergence with a
// bounded pool of goroutines. Per-vector metrics are exact; only the final
// summation order may differ from the sequential form, so results agree with
// MeanConvergence to floating-point rounding.
func ParallelMeanConvergence(ctx context.Context, m core.ConvergenceMeter, pop core.Population, maxGoroutines int) (float64, error) {
	if pop.Size() == 0 {
		return 0, errors.New(errors.InvalidArgument, "population must not be empty")
	}
	if maxGoroutines < 1 {
		maxGoroutines = DefaultMaxGoroutines
	}

	values := make([]float64, pop.Size())

	p := pool.New().WithContext(ctx).WithMaxGoroutines(maxGoroutines)
	for i, x := range pop {
		i, x := i, x
		p.Go(func(ctx context.Context) error {
			if err := errors.CheckContext(ctx, "population convergence"); err != nil {
				return err
			}
			v, err := m.Convergence(x)
			if err != nil {
				return errors.Wrap(err, errors.InvalidArgument,
					fmt.Sprintf("convergence of population member %d failed", i))
			}
			values[i] = v
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return 0, err
	}

	mean := stat.Mean(values, nil)
	logging.GetLogger().Debug(ctx, "population convergence computed: size=%d mean=%g", pop.Size(), mean)
	return mean, nil
}
