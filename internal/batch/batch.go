// Package batch shifts many WAV files in parallel, one pitch engine per job.
package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-keyshift/dsp/buffer"
	"github.com/cwbudde/algo-keyshift/dsp/effects/pitch"
	"github.com/cwbudde/algo-keyshift/internal/logging"
	"github.com/cwbudde/algo-keyshift/wavfile"
)

// Job shifts Input by Semitones and writes the result to Output.
type Job struct {
	Input     string
	Output    string
	Semitones int
}

// Result reports the outcome of one job.
type Result struct {
	Job      Job
	Samples  int
	Rate     int
	Duration time.Duration
	Err      error
}

// Runner executes jobs concurrently.
type Runner struct {
	// Options configure each job's engine.
	Options []pitch.Option
	// Workers bounds parallelism. Zero uses GOMAXPROCS.
	Workers int
	// BitDepth is the export bit depth. Zero uses wavfile.DefaultBitDepth.
	BitDepth int
	// FailFast cancels remaining jobs after the first failure.
	FailFast bool
	Logger   *zap.Logger
}

// Run processes jobs and returns one Result per job in input order, plus
// the joined errors of all failed jobs.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	bits := r.BitDepth
	if bits == 0 {
		bits = wavfile.DefaultBitDepth
	}

	pool := buffer.NewPool()
	results := make([]Result, len(jobs))

	var (
		mu   sync.Mutex
		errs []error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, job := range jobs {
		results[i].Job = job

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}

			jobLog := log.With(zap.String("input", job.Input), zap.Int("semitones", job.Semitones))
			start := time.Now()

			n, rate, err := r.runJob(job, bits, pool, jobLog)
			results[i] = Result{Job: job, Samples: n, Rate: rate, Duration: time.Since(start), Err: err}

			if err != nil {
				jobLog.Error("job failed", zap.Error(err))

				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", job.Input, err))
				mu.Unlock()

				if r.FailFast {
					return err
				}
				return nil
			}

			jobLog.Info("job done",
				zap.String("output", job.Output),
				zap.Int("samples", n),
				zap.Duration("took", results[i].Duration),
			)
			return nil
		})
	}

	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		errs = append(errs, err)
	}

	return results, errors.Join(errs...)
}

func (r *Runner) runJob(job Job, bits int, pool *buffer.Pool, log *zap.Logger) (int, int, error) {
	in, _, err := wavfile.ReadFile(job.Input)
	if err != nil {
		return 0, 0, err
	}

	opts := append([]pitch.Option{}, r.Options...)
	opts = append(opts, pitch.WithPool(pool), pitch.WithObserver(logging.Observer(log)))

	e, err := pitch.NewEngine(opts...)
	if err != nil {
		return 0, 0, err
	}

	out, err := pitch.ShiftBuffer(e, in, job.Semitones)
	if err != nil {
		return 0, 0, err
	}

	if err := wavfile.WriteFile(job.Output, out, bits); err != nil {
		return 0, 0, err
	}

	return out.Len(), out.SampleRate(), nil
}
