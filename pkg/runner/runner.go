// Package runner executes registered solvers with answer caching, logging
// and observability hooks. The CLI and tests share it so that caching
// logic lives in one place.
package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/awlodge/adventofcode/pkg/cache"
	"github.com/awlodge/adventofcode/pkg/errors"
	"github.com/awlodge/adventofcode/pkg/observability"
	"github.com/awlodge/adventofcode/pkg/solver"
)

const keyTypeAnswer = "answer"

// Request names the puzzle day to solve and carries its input.
type Request struct {
	Year  int
	Day   int
	Input string

	// Refresh skips the cache lookup. The fresh answer is still stored.
	Refresh bool
}

// Result is the outcome of one solve.
type Result struct {
	Key      solver.Key
	Answer   solver.Answer
	CacheHit bool
	Duration time.Duration

	// Err is set by RunAll for requests that failed; Run returns the error
	// directly instead.
	Err error
}

// Runner resolves solvers from a registry and caches their answers.
//
// The Runner holds no per-run state, so one Runner may serve several
// goroutines.
type Runner struct {
	Registry *solver.Registry
	Cache    cache.Cache
	Keyer    cache.Keyer
	Logger   *log.Logger

	// TTL bounds the lifetime of cached answers. Zero keeps them forever.
	TTL time.Duration
}

// NewRunner creates a runner over reg.
// If keyer is nil, a DefaultKeyer is used.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(reg *solver.Registry, c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Registry: reg,
		Cache:    c,
		Keyer:    keyer,
		Logger:   logger,
	}
}

// Run solves one puzzle day, serving the answer from cache when the same
// input was solved before.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	if err := errors.ValidateYear(req.Year); err != nil {
		return nil, err
	}
	if err := errors.ValidateDay(req.Day); err != nil {
		return nil, err
	}
	fn, err := r.Registry.Lookup(req.Year, req.Day)
	if err != nil {
		return nil, err
	}

	key := solver.Key{Year: req.Year, Day: req.Day}
	logger := r.Logger.With("puzzle", key.String())
	cacheKey := r.Keyer.AnswerKey(req.Year, req.Day, cache.Hash([]byte(req.Input)))

	if !req.Refresh {
		if ans, ok := r.lookup(ctx, cacheKey, logger); ok {
			return &Result{Key: key, Answer: ans, CacheHit: true}, nil
		}
	}

	start := time.Now()
	observability.Solver().OnSolveStart(ctx, req.Year, req.Day)
	ans, err := solve(ctx, fn, req.Input)
	elapsed := time.Since(start)
	observability.Solver().OnSolveComplete(ctx, req.Year, req.Day, elapsed, err)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSolveFailed, err, "%s", key)
	}

	logger.Debug("solved", "part1", ans.Part1, "part2", ans.Part2, "duration", elapsed)
	r.store(ctx, cacheKey, ans, logger)

	return &Result{Key: key, Answer: ans, Duration: elapsed}, nil
}

// RunAll solves every request concurrently, bounded by GOMAXPROCS.
// Results are returned in request order; a failed request has Err set and
// the first such error is also returned.
func (r *Runner) RunAll(ctx context.Context, reqs []Request) ([]*Result, error) {
	results := make([]*Result, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, req := range reqs {
		g.Go(func() error {
			res, err := r.Run(gctx, req)
			if err != nil {
				res = &Result{Key: solver.Key{Year: req.Year, Day: req.Day}, Err: err}
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	for _, res := range results {
		if res.Err != nil {
			return results, res.Err
		}
	}
	return results, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) lookup(ctx context.Context, key string, logger *log.Logger) (solver.Answer, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", "err", err)
		return solver.Answer{}, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, keyTypeAnswer)
		return solver.Answer{}, false
	}

	var ans solver.Answer
	if err := json.Unmarshal(data, &ans); err != nil {
		logger.Debug("discarding unreadable cache entry", "err", err)
		observability.Cache().OnCacheMiss(ctx, keyTypeAnswer)
		return solver.Answer{}, false
	}

	observability.Cache().OnCacheHit(ctx, keyTypeAnswer)
	return ans, true
}

func (r *Runner) store(ctx context.Context, key string, ans solver.Answer, logger *log.Logger) {
	data, err := json.Marshal(ans)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyTypeAnswer, len(data))
}

// solve calls fn, turning a panic into an internal error so one bad day
// cannot take down a RunAll batch.
func solve(ctx context.Context, fn solver.Func, input string) (ans solver.Answer, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = errors.New(errors.ErrCodeInternal, "solver panicked: %v", p)
		}
	}()
	if err := ctx.Err(); err != nil {
		return solver.Answer{}, err
	}
	return fn(ctx, input)
}

// String formats a result for log output.
func (res *Result) String() string {
	if res.Err != nil {
		return fmt.Sprintf("%s: %v", res.Key, res.Err)
	}
	return fmt.Sprintf("%s: %s", res.Key, res.Answer)
}
