// Package runner solves a batch of puzzles concurrently, timing each part,
// checking expectations and recording metrics.
// Package runner 并发求解一批谜题，记录耗时、校验期望并上报指标。
package runner

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/livp123/advent/internal/expect"
	"github.com/livp123/advent/internal/metrics"
	"github.com/livp123/advent/internal/puzzles"
	"github.com/livp123/advent/internal/utils/logger"
	"github.com/livp123/advent/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Options configures a Runner. Expect and Metrics are optional.
type Options struct {
	InputsDir string
	Workers   int
	Expect    *expect.Engine
	Metrics   *metrics.Collector
}

// Part is the outcome of one part of a puzzle.
type Part struct {
	Answer  int64
	Elapsed time.Duration
	Err     error
}

// Result is the outcome of one puzzle.
// Result 是单个谜题的求解结果。
type Result struct {
	Puzzle       puzzles.Puzzle
	Parts        [2]Part
	Expectations []expect.Result
	// LoadErr is set when the input could not be loaded
	LoadErr error
}

// Failed reports whether anything about the result went wrong.
func (r *Result) Failed() bool {
	return r.Err() != nil
}

// Err joins every error recorded on the result.
func (r *Result) Err() error {
	return errors.Join(r.LoadErr, r.Parts[0].Err, r.Parts[1].Err, expect.Failed(r.Expectations))
}

// Runner solves puzzles with a bounded number of workers.
type Runner struct {
	opts  Options
	runID string
}

// New creates a runner; every run gets its own id in the logs.
// New 创建运行器；每次运行在日志中带有独立的 id。
func New(opts Options) *Runner {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Runner{opts: opts, runID: uuid.NewString()}
}

// RunID returns the id attached to this runner's log lines.
func (r *Runner) RunID() string { return r.runID }

// Run solves ps and returns their results in the same order. The returned
// error is only non-nil when ctx was cancelled; per-puzzle failures live
// on the results.
// Run 按输入顺序返回结果；仅在 ctx 取消时返回错误，单个谜题的失败记录在结果中。
func (r *Runner) Run(ctx context.Context, ps []puzzles.Puzzle) ([]Result, error) {
	log := logger.Get(ctx).With("run_id", r.runID)
	ctx = logger.WithContext(ctx, log)

	results := make([]Result, len(ps))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)

	log.Debugf("[RUN] Solving %d puzzles with %d workers", len(ps), r.opts.Workers)
	for i, p := range ps {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			input, err := puzzles.LoadInput(r.opts.InputsDir, p.ID)
			if err != nil {
				log.Warnf("[SKIP] %s: %v", p.ID, err)
				results[i] = Result{Puzzle: p, LoadErr: err}
				return nil
			}
			results[i] = r.Solve(gctx, p, input)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}

// Solve runs both parts of p on input, then evaluates its expectations.
// Solve 对输入求解两部分并校验期望。
func (r *Runner) Solve(ctx context.Context, p puzzles.Puzzle, input string) Result {
	log := logger.Get(ctx)
	res := Result{Puzzle: p}

	for i, part := range []func(string) (int64, error){p.Solver.Part1, p.Solver.Part2} {
		start := time.Now()
		answer, err := part(input)
		elapsed := time.Since(start)
		res.Parts[i] = Part{Answer: answer, Elapsed: elapsed, Err: err}

		if err != nil {
			log.Warnf("[FAIL] %s part %d: %v", p.ID, i+1, err)
			continue
		}
		log.Debugf("[OK] %s part %d = %d (%s)", p.ID, i+1, answer, elapsed)
		if r.opts.Metrics != nil {
			r.opts.Metrics.ObserveSolve(p.ID.Year, p.ID.Day, i+1, answer, elapsed)
		}
	}

	if r.opts.Expect != nil && r.opts.Expect.Has(p.ID) {
		res.Expectations = r.opts.Expect.Evaluate(expect.Env{
			Year:      p.ID.Year,
			Day:       p.ID.Day,
			Part1:     res.Parts[0].Answer,
			Part2:     res.Parts[1].Answer,
			ElapsedMS: float64(res.Parts[0].Elapsed+res.Parts[1].Elapsed) / float64(time.Millisecond),
		})
		for _, e := range res.Expectations {
			if e.Err == nil {
				continue
			}
			log.Warnf("[EXPECT] %v", e.Err)
			if r.opts.Metrics != nil {
				r.opts.Metrics.ExpectationFailures.Inc()
			}
		}
	}
	return res
}

// Failed joins the errors of every failed result.
func Failed(results []Result) error {
	var errs []error
	for i := range results {
		if err := results[i].Err(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
