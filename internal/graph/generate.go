package graph

import (
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/san-kum/algotrace/internal/trace"
)

const (
	// TeachingStart is the conventional start vertex of the teaching graph.
	TeachingStart = "A"
	// RandomStart is the first vertex of every random graph.
	RandomStart = "n0"

	DefaultRandomVertices    = 10
	DefaultRandomProbability = 0.3
)

// teachingEdges are listed alphabetically so insertion order and lexical
// order agree.
var teachingEdges = []Edge{
	{"A", "B"}, {"A", "C"},
	{"B", "D"}, {"B", "E"},
	{"C", "F"}, {"C", "G"},
	{"D", "H"},
	{"E", "H"},
	{"F", "I"},
	{"G", "I"},
	{"H", "J"},
	{"I", "J"},
}

// Teaching returns the fixed ten-vertex graph A..J used for consistent
// examples. It is connected and contains cycles (B-D-H-E, C-F-I-G).
func Teaching(opts ...Option) *Graph {
	vertices := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}
	g, err := New(vertices, teachingEdges, opts...)
	if err != nil {
		panic("graph: teaching graph is malformed: " + err.Error())
	}
	return g
}

// Random builds a graph on vertices n0..n{vertexCount-1} that contains each
// unordered pair of distinct vertices independently with probability
// edgeProbability. A nil rng is seeded from the wall clock.
func Random(vertexCount int, edgeProbability float64, rng *rand.Rand, opts ...Option) (*Graph, error) {
	const op = "graph.Random"

	if vertexCount < 1 {
		return nil, trace.InvalidArgument(op, "vertex count must be at least 1, got %d", vertexCount)
	}
	if math.IsNaN(edgeProbability) || edgeProbability < 0 || edgeProbability > 1 {
		return nil, trace.InvalidArgument(op, "edge probability must be in [0,1], got %v", edgeProbability)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	vertices := make([]string, vertexCount)
	for i := range vertices {
		vertices[i] = "n" + strconv.Itoa(i)
	}

	var edges []Edge
	for i := 0; i < vertexCount; i++ {
		for j := i + 1; j < vertexCount; j++ {
			if rng.Float64() < edgeProbability {
				edges = append(edges, Edge{Source: vertices[i], Target: vertices[j]})
			}
		}
	}

	return New(vertices, edges, opts...)
}
