package adaptivesearch

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/adaptivesearch/core"
	"github.com/poiesic/adaptivesearch/loop"
)

// BatchRunner executes many search requests concurrently on a shared
// worker pool. Each request runs its own full refinement loop.
type BatchRunner struct {
	controller *loop.Controller
	pool       *ants.Pool
	logger     *slog.Logger
}

// BatchOption configures a BatchRunner.
type BatchOption func(*BatchRunner) error

// WithPoolSize sets the worker pool size for concurrent requests.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) BatchOption {
	return func(r *BatchRunner) error {
		if size < 1 {
			size = 1
		}
		if r.pool != nil {
			r.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		r.pool = pool
		return nil
	}
}

// WithBatchLogger sets a custom logger.
// Default is slog.Default().
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(r *BatchRunner) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewBatchRunner creates a batch runner over an existing controller.
func NewBatchRunner(controller *loop.Controller, opts ...BatchOption) (*BatchRunner, error) {
	if controller == nil {
		return nil, loop.ErrExecutorRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	r := &BatchRunner{
		controller: controller,
		pool:       pool,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if optErr := opt(r); optErr != nil {
			r.Release()
			return nil, optErr
		}
	}
	return r, nil
}

// BatchResult pairs one query with its outcome or error.
type BatchResult struct {
	Query   string
	Outcome *core.Outcome
	Err     error
}

// RunAll executes all queries and returns results in input order.
// Individual request failures are captured per result, never aborting
// the batch; cancellation of ctx stops unstarted work.
func (r *BatchRunner) RunAll(ctx context.Context, queries []string) []BatchResult {
	results := make([]BatchResult, len(queries))
	var wg sync.WaitGroup

	for i, query := range queries {
		results[i].Query = query

		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}

		wg.Add(1)
		index, text := i, query
		submitErr := r.pool.Submit(func() {
			defer wg.Done()
			outcome, err := r.controller.Run(ctx, text)
			if err != nil {
				r.logger.Warn("batch request failed", "query", text, "err", err)
			}
			results[index].Outcome = outcome
			results[index].Err = err
		})
		if submitErr != nil {
			wg.Done()
			results[index].Err = submitErr
		}
	}

	wg.Wait()
	return results
}

// Release releases the worker pool.
// The runner should not be used after calling Release.
func (r *BatchRunner) Release() {
	if r.pool != nil {
		r.pool.Release()
	}
}
