// Package graph provides the undirected input graphs that traversal tracers
// consume.
//
// A [Graph] is a vertex list plus an edge list, both kept in insertion
// order. Adjacency is derived from the edge list on every query so it can
// never diverge from it. Graphs are immutable once built; regenerating input
// means building a new Graph.
//
// # Neighbor Order
//
// Traversal output depends on the order neighbors are examined, so the order
// is an explicit property of each graph:
//
//   - [OrderInsertion]: neighbors appear in the order their edges were added
//   - [OrderLexical]: neighbors are sorted by label
//
// # Generators
//
//	g := graph.Teaching()                    // fixed A..J topology
//	g, err := graph.Random(10, 0.3, rng)     // n0..n9, each pair with p=0.3
package graph
