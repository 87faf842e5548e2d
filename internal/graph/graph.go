package graph

import (
	"fmt"
	"slices"

	"github.com/san-kum/algotrace/internal/trace"
)

// Edge is an undirected connection between two vertices.
type Edge struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
}

// Touches reports whether v is one of the edge's endpoints.
func (e Edge) Touches(v string) bool {
	return e.Source == v || e.Target == v
}

// Other returns the endpoint opposite v.
func (e Edge) Other(v string) string {
	if e.Source == v {
		return e.Target
	}
	return e.Source
}

// Same reports whether e and o connect the same pair of vertices.
func (e Edge) Same(o Edge) bool {
	return (e.Source == o.Source && e.Target == o.Target) ||
		(e.Source == o.Target && e.Target == o.Source)
}

func (e Edge) String() string {
	return e.Source + "-" + e.Target
}

// Order fixes how Neighbors breaks ties.
type Order int

const (
	OrderInsertion Order = iota
	OrderLexical
)

func (o Order) String() string {
	switch o {
	case OrderInsertion:
		return "insertion"
	case OrderLexical:
		return "lexical"
	}
	return fmt.Sprintf("order(%d)", int(o))
}

// ParseOrder maps "insertion" or "lexical" to an Order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "", "insertion":
		return OrderInsertion, nil
	case "lexical", "alphabetical":
		return OrderLexical, nil
	}
	return 0, trace.InvalidArgument("graph.ParseOrder", "unknown neighbor order %q", s)
}

type Option func(*Graph)

// WithNeighborOrder selects the neighbor tie-break.
func WithNeighborOrder(o Order) Option {
	return func(g *Graph) { g.order = o }
}

type Graph struct {
	vertices []string
	index    map[string]int
	edges    []Edge
	order    Order
}

// New validates and builds a graph. It fails with trace.ErrInvalidArgument
// when a label is empty or repeated, an edge endpoint is missing, an edge is a
// self loop, or the same undirected edge appears twice.
func New(vertices []string, edges []Edge, opts ...Option) (*Graph, error) {
	const op = "graph.New"

	g := &Graph{
		vertices: make([]string, 0, len(vertices)),
		index:    make(map[string]int, len(vertices)),
		edges:    make([]Edge, 0, len(edges)),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.order != OrderInsertion && g.order != OrderLexical {
		return nil, trace.InvalidArgument(op, "unknown neighbor order %d", int(g.order))
	}

	for _, v := range vertices {
		if v == "" {
			return nil, trace.InvalidArgument(op, "empty vertex label")
		}
		if _, dup := g.index[v]; dup {
			return nil, trace.InvalidArgument(op, "duplicate vertex %q", v)
		}
		g.index[v] = len(g.vertices)
		g.vertices = append(g.vertices, v)
	}

	seen := make(map[[2]string]bool, len(edges))
	for _, e := range edges {
		if !g.HasVertex(e.Source) || !g.HasVertex(e.Target) {
			return nil, trace.InvalidArgument(op, "edge %s references unknown vertex", e)
		}
		if e.Source == e.Target {
			return nil, trace.InvalidArgument(op, "self loop on %q", e.Source)
		}
		key := pairKey(e.Source, e.Target)
		if seen[key] {
			return nil, trace.InvalidArgument(op, "duplicate edge %s", e)
		}
		seen[key] = true
		g.edges = append(g.edges, e)
	}

	return g, nil
}

func pairKey(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}

func (g *Graph) Vertices() []string { return slices.Clone(g.vertices) }
func (g *Graph) Edges() []Edge       { return slices.Clone(g.edges) }
func (g *Graph) VertexCount() int    { return len(g.vertices) }
func (g *Graph) EdgeCount() int      { return len(g.edges) }
func (g *Graph) Order() Order        { return g.order }

func (g *Graph) HasVertex(v string) bool {
	_, ok := g.index[v]
	return ok
}

func (g *Graph) HasEdge(a, b string) bool {
	probe := Edge{Source: a, Target: b}
	for _, e := range g.edges {
		if e.Same(probe) {
			return true
		}
	}
	return false
}

// Neighbors returns the vertices adjacent to v in the graph's neighbor order.
// The result is a fresh slice; an unknown vertex has no neighbors.
func (g *Graph) Neighbors(v string) []string {
	var out []string
	for _, e := range g.edges {
		if e.Touches(v) {
			out = append(out, e.Other(v))
		}
	}
	if g.order == OrderLexical {
		slices.Sort(out)
	}
	return out
}

func (g *Graph) Degree(v string) int {
	n := 0
	for _, e := range g.edges {
		if e.Touches(v) {
			n++
		}
	}
	return n
}

// Distances returns the hop count from start to every reachable vertex.
func (g *Graph) Distances(start string) map[string]int {
	dist := make(map[string]int)
	if !g.HasVertex(start) {
		return dist
	}
	dist[start] = 0
	queue := []string{start}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, w := range g.Neighbors(v) {
			if _, ok := dist[w]; !ok {
				dist[w] = dist[v] + 1
				queue = append(queue, w)
			}
		}
	}
	return dist
}
