package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultLimit is used when a pool is created with a non-positive limit.
const DefaultLimit = 4

// Pool is a [Runner] with at most limit concurrent jobs.
type Pool struct {
	limit int
}

// NewPool constructs a Pool.
func NewPool(limit int) *Pool {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Pool{limit: limit}
}

// Limit returns the maximum number of concurrent jobs.
func (p *Pool) Limit() int {
	return p.limit
}

// Run starts job for every index in [0, n) and waits for all of them. The
// first error is returned and cancels the context passed to jobs that have
// not started yet; jobs already running finish normally.
func (p *Pool) Run(ctx context.Context, n int, job Job) error {
	if n <= 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.limit)

	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return job(gctx, i)
		})
	}

	return g.Wait()
}
