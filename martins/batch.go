// SPDX-License-Identifier: MIT
//
// File: batch.go
// Role: Concurrent independent searches over one shared, read-only graph.

package martins

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/RonaldPonguillo/mumoro/core"
)

// Query is one origin/destination request of a batch.
// An empty Target selects all-destinations mode for that query.
type Query struct {
	Source    string
	Target    string
	StartTime float64
}

// SearchMany runs one Search per query, concurrently. Shared opts apply to
// every query; Source, Target, StartTime and context are taken from the
// query and ctx. Results are aligned with queries. The first failing query
// cancels the others and its error is returned.
//
// Each search owns its own frontier and settled store; only the graph is shared.
func SearchMany(ctx context.Context, g *core.Graph, queries []Query, opts ...Option) ([]*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if ctx == nil {
		ctx = context.Background()
	}

	limit := cfg.Parallelism
	if limit == 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)

	results := make([]*Result, len(queries))
	for i, q := range queries {
		eg.Go(func() error {
			qopts := make([]Option, 0, len(opts)+4)
			qopts = append(qopts, opts...)
			qopts = append(qopts,
				Source(q.Source),
				Target(q.Target),
				StartTime(q.StartTime),
				WithContext(egCtx),
			)
			res, err := Search(g, qopts...)
			if err != nil {
				return fmt.Errorf("martins: query %d (%s→%s): %w", i, q.Source, q.Target, err)
			}
			results[i] = res

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
