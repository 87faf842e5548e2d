package experiment

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/algotrace/internal/metrics"
	"github.com/san-kum/algotrace/internal/sorting"
	"github.com/san-kum/algotrace/internal/traversal"
)

var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Family groups algorithms by the input they consume.
type Family int

const (
	FamilyTraversal Family = iota
	FamilySort
)

func (f Family) String() string {
	if f == FamilySort {
		return "sort"
	}
	return "graph"
}

type Registry struct {
	traversals map[string]traversal.Tracer
	sorts      map[string]sorting.Tracer
}

func NewRegistry() *Registry {
	r := &Registry{
		traversals: make(map[string]traversal.Tracer),
		sorts:      make(map[string]sorting.Tracer),
	}

	r.traversals["bfs"] = traversal.BFS
	r.traversals["dfs"] = traversal.DFS

	r.sorts["bubble"] = sorting.Bubble
	r.sorts["merge"] = sorting.Merge
	r.sorts["quick"] = sorting.Quick

	return r
}

func (r *Registry) Traversal(name string) (traversal.Tracer, error) {
	fn, ok := r.traversals[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
	}
	return fn, nil
}

func (r *Registry) Sort(name string) (sorting.Tracer, error) {
	fn, ok := r.sorts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
	}
	return fn, nil
}

func (r *Registry) Family(name string) (Family, error) {
	if _, ok := r.traversals[name]; ok {
		return FamilyTraversal, nil
	}
	if _, ok := r.sorts[name]; ok {
		return FamilySort, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
}

func (r *Registry) ListTraversals() []string { return sortedKeys(r.traversals) }
func (r *Registry) ListSorts() []string      { return sortedKeys(r.sorts) }

func (r *Registry) SortMetrics() []metrics.Metric[sorting.Step] {
	return metrics.DefaultSort()
}

func (r *Registry) TraversalMetrics() []metrics.Metric[traversal.Step] {
	return metrics.DefaultTraversal()
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
