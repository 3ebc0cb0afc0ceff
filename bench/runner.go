package bench

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ericlevine/isdgo/attack"
)

// Result is the measurement of one run.
type Result struct {
	Run       int
	Elapsed   time.Duration
	PeakBytes uint64
	Outcome   attack.Outcome
}

// Success reports whether the run decoded to a valid error vector.
func (r Result) Success() bool { return r.Outcome.Success() }

// RunOptions controls how a benchmark is executed.
type RunOptions struct {
	// Workers bounds the number of concurrent runs. Zero means GOMAXPROCS.
	// Heap figures are process-wide, so memory is only meaningful with one
	// worker.
	Workers int

	// Seed derives the generator of run i as PCG(Seed, i), so results do not
	// depend on scheduling.
	Seed uint64

	// Progress, if set, is called after each finished run with the number of
	// finished runs. It may be called from several goroutines at once.
	Progress func(done, total int)
}

// Run executes cfg.Runs independent attacks and returns their results in
// run order. A configuration error aborts the benchmark; decoder failures
// are recorded as Failed outcomes. Cancelling ctx stops scheduling new runs.
func Run(ctx context.Context, cfg Config, opts RunOptions) ([]Result, error) {
	if cfg.Runs < 1 {
		return nil, fmt.Errorf("bench: %s: no runs requested", cfg)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	log := Logger().With(zap.Stringer("config", cfg))
	log.Info("benchmark started", zap.Int("runs", cfg.Runs), zap.Int("workers", workers))

	results := make([]Result, cfg.Runs)
	var done atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range results {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewPCG(opts.Seed, uint64(i)))
			rep, err := attack.Run(cfg.attack(), rng)
			if err != nil {
				return fmt.Errorf("bench: %s run %d: %w", cfg, i+1, err)
			}
			results[i] = Result{
				Run:       i + 1,
				Elapsed:   rep.Metrics.Elapsed,
				PeakBytes: rep.Metrics.PeakBytes,
				Outcome:   rep.Outcome,
			}
			log.Debug("run finished",
				zap.Int("run", i+1),
				zap.Duration("elapsed", rep.Metrics.Elapsed),
				zap.Stringer("outcome", rep.Outcome))
			n := done.Add(1)
			if opts.Progress != nil {
				opts.Progress(int(n), cfg.Runs)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log.Info("benchmark finished", zap.Int64("runs", done.Load()))
	return results, nil
}
