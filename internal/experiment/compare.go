package experiment

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/algotrace/internal/graph"
	"github.com/san-kum/algotrace/internal/metrics"
	"github.com/san-kum/algotrace/internal/sorting"
	"github.com/san-kum/algotrace/internal/traversal"
)

type Comparison struct {
	Algorithm string
	Steps     int
	Metrics   map[string]float64
	Elapsed   time.Duration
}

// Compare traces input with every named sort concurrently. Results follow
// the order of names; the first failure cancels the rest.
func Compare(ctx context.Context, reg *Registry, names []string, input []float64) ([]Comparison, error) {
	tracers := make([]sorting.Tracer, len(names))
	for i, name := range names {
		tr, err := reg.Sort(name)
		if err != nil {
			return nil, err
		}
		tracers[i] = tr
	}

	// Every name resolves before the first goroutine starts.
	results := make([]Comparison, len(names))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		tr := tracers[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			begin := time.Now()
			seq, err := tr(input)
			if err != nil {
				return err
			}
			results[i] = Comparison{
				Algorithm: name,
				Steps:     seq.Len(),
				Metrics:   metrics.Collect(seq, reg.SortMetrics()...),
				Elapsed:   time.Since(begin),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// CompareTraversals runs every named traversal from start concurrently.
func CompareTraversals(ctx context.Context, reg *Registry, names []string, gr *graph.Graph, start string) ([]Comparison, error) {
	tracers := make([]traversal.Tracer, len(names))
	for i, name := range names {
		tr, err := reg.Traversal(name)
		if err != nil {
			return nil, err
		}
		tracers[i] = tr
	}

	// Every name resolves before the first goroutine starts.
	results := make([]Comparison, len(names))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		tr := tracers[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			begin := time.Now()
			seq, err := tr(gr, start)
			if err != nil {
				return err
			}
			results[i] = Comparison{
				Algorithm: name,
				Steps:     seq.Len(),
				Metrics:   metrics.Collect(seq, reg.TraversalMetrics()...),
				Elapsed:   time.Since(begin),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
