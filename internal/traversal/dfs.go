package traversal

import (
	"github.com/san-kum/algotrace/internal/graph"
	"github.com/san-kum/algotrace/internal/trace"
)

// DFS traces an iterative, stack-based depth-first search from start.
//
// The top of the stack is peeked, never popped, until it has no unvisited
// neighbor left. A vertex reached for the first time emits a visiting step.
// Whenever the top vertex still has an unvisited neighbor (scanned in
// neighbor order) that neighbor is pushed with an expanding step; otherwise
// the vertex is popped with a backtracking step. Each vertex is visited once
// and popped once.
func DFS(g *graph.Graph, start string) (trace.Sequence[Step], error) {
	if err := validate("traversal.DFS", g, start); err != nil {
		return trace.Sequence[Step]{}, err
	}

	var rec recorder
	seen := make(map[string]bool)
	var visited []string
	stack := []string{start}
	// cursor[v] is the next position in v's neighbor list to examine.
	cursor := make(map[string]int)
	neighbors := make(map[string][]string)

	rec.emit(PhaseNotStarted, "", visited, stack, nil)

	for len(stack) > 0 {
		v := stack[len(stack)-1]

		if !seen[v] {
			seen[v] = true
			visited = append(visited, v)
			neighbors[v] = g.Neighbors(v)
			rec.emit(PhaseVisiting, v, visited, stack, nil)
		}

		next := ""
		ns := neighbors[v]
		for cursor[v] < len(ns) {
			w := ns[cursor[v]]
			cursor[v]++
			if !seen[w] {
				next = w
				break
			}
		}

		if next != "" {
			stack = append(stack, next)
			rec.emit(PhaseExpanding, v, visited, stack, &graph.Edge{Source: v, Target: next})
			continue
		}

		stack = stack[:len(stack)-1]
		rec.emit(PhaseBacktracking, v, visited, stack, nil)
	}

	rec.emit(PhaseDone, "", visited, stack, nil)
	return rec.sequence(), nil
}
