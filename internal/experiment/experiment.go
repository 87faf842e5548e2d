package experiment

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/algotrace/internal/config"
	"github.com/san-kum/algotrace/internal/graph"
	"github.com/san-kum/algotrace/internal/metrics"
	"github.com/san-kum/algotrace/internal/sorting"
	"github.com/san-kum/algotrace/internal/trace"
	"github.com/san-kum/algotrace/internal/traversal"
)

// Result is one traced run. Exactly one of Traversal and Sort is populated,
// according to Family.
type Result struct {
	ID        string
	Algorithm string
	Family    Family

	Graph *graph.Graph
	Start string
	Input []float64

	Traversal trace.Sequence[traversal.Step]
	Sort      trace.Sequence[sorting.Step]

	Metrics map[string]float64
	Elapsed time.Duration
}

// Steps is the length of whichever trace the result holds.
func (r *Result) Steps() int {
	if r.Family == FamilySort {
		return r.Sort.Len()
	}
	return r.Traversal.Len()
}

type Experiment struct {
	cfg *config.Config
	reg *Registry
}

func New(cfg *config.Config, reg *Registry) *Experiment {
	return &Experiment{cfg: cfg, reg: reg}
}

// Run builds the configured input and traces the configured algorithm.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	family, err := e.reg.Family(e.cfg.Algorithm)
	if err != nil {
		return nil, err
	}

	res := &Result{
		ID:        uuid.NewString(),
		Algorithm: e.cfg.Algorithm,
		Family:    family,
	}

	begin := time.Now()
	switch family {
	case FamilySort:
		tr, _ := e.reg.Sort(e.cfg.Algorithm)
		res.Input = append([]float64{}, e.cfg.Array...)
		res.Sort, err = tr(res.Input)
		if err != nil {
			return nil, fmt.Errorf("trace %s: %w", e.cfg.Algorithm, err)
		}
		res.Metrics = metrics.Collect(res.Sort, e.reg.SortMetrics()...)

	case FamilyTraversal:
		tr, _ := e.reg.Traversal(e.cfg.Algorithm)
		g, _, err := BuildGraph(e.cfg.Graph, e.cfg.Seed)
		if err != nil {
			return nil, err
		}
		start := e.cfg.StartVertex()
		res.Graph, res.Start = g, start
		res.Traversal, err = tr(g, start)
		if err != nil {
			return nil, fmt.Errorf("trace %s: %w", e.cfg.Algorithm, err)
		}
		res.Metrics = metrics.Collect(res.Traversal, e.reg.TraversalMetrics()...)
	}
	res.Elapsed = time.Since(begin)

	return res, nil
}

// BuildGraph constructs the configured graph and returns it with its
// conventional start vertex. Random graphs are drawn from seed.
func BuildGraph(cfg config.GraphConfig, seed int64) (*graph.Graph, string, error) {
	order, err := graph.ParseOrder(cfg.Order)
	if err != nil {
		return nil, "", err
	}

	switch cfg.Kind {
	case "", config.GraphTeaching:
		return graph.Teaching(graph.WithNeighborOrder(order)), graph.TeachingStart, nil
	case config.GraphRandom:
		vertices := cfg.Vertices
		if vertices == 0 {
			vertices = graph.DefaultRandomVertices
		}
		rng := rand.New(rand.NewSource(seed))
		g, err := graph.Random(vertices, cfg.EdgeProbability, rng, graph.WithNeighborOrder(order))
		if err != nil {
			return nil, "", err
		}
		return g, graph.RandomStart, nil
	}
	return nil, "", trace.InvalidArgument("experiment.BuildGraph", "unknown graph kind %q", cfg.Kind)
}
