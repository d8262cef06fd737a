package filter

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EvaluatorOption configures an evaluator
type EvaluatorOption func(*Evaluator)

// WithWorkers sets the number of concurrent chunk workers
func WithWorkers(workers int) EvaluatorOption {
	return func(e *Evaluator) {
		if workers > 0 {
			e.workers = workers
		}
	}
}

// WithBatchSize sets the chunk size below which evaluation stays sequential
func WithBatchSize(size int) EvaluatorOption {
	return func(e *Evaluator) {
		if size > 0 {
			e.batchSize = size
		}
	}
}

// Evaluator applies compiled filters to item lists
type Evaluator struct {
	workers   int
	batchSize int
}

// NewEvaluator creates a new evaluator
func NewEvaluator(opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{
		workers:   runtime.GOMAXPROCS(0),
		batchSize: 100,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Apply returns the items matching filter, preserving their order. The first
// item that fails to evaluate aborts the call with an *EvaluationError.
func Apply[T Subject](ctx context.Context, e *Evaluator, filter CompiledFilter, items []T) ([]T, error) {
	if len(items) == 0 {
		return []T{}, nil
	}

	keep := make([]bool, len(items))

	if len(items) < e.batchSize {
		if err := matchRange(filter, items, keep, 0, len(items)); err != nil {
			return nil, err
		}
	} else {
		chunkSize := max(len(items)/e.workers, e.batchSize)

		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(e.workers)
		for start := 0; start < len(items); start += chunkSize {
			end := min(start+chunkSize, len(items))
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				return matchRange(filter, items, keep, start, end)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	matches := make([]T, 0, len(items))
	for i, item := range items {
		if keep[i] {
			matches = append(matches, item)
		}
	}
	return matches, nil
}

// matchRange evaluates items[start:end], recording results in keep
func matchRange[T Subject](filter CompiledFilter, items []T, keep []bool, start, end int) error {
	for i := start; i < end; i++ {
		ok, err := filter.Match(items[i])
		if err != nil {
			return &EvaluationError{Expression: filter.Expression(), Index: i, Err: err}
		}
		keep[i] = ok
	}
	return nil
}
