package traversal

import (
	"github.com/san-kum/algotrace/internal/graph"
	"github.com/san-kum/algotrace/internal/trace"
)

// BFS traces a queue-based breadth-first search from start.
//
// The trace opens with a not-started step holding [start] in both the
// frontier and the visited list. Each dequeue emits a visiting step and each
// newly discovered neighbor emits its own expanding step, so every enqueue
// can be shown individually. A done step closes the trace.
func BFS(g *graph.Graph, start string) (trace.Sequence[Step], error) {
	if err := validate("traversal.BFS", g, start); err != nil {
		return trace.Sequence[Step]{}, err
	}

	var rec recorder
	seen := map[string]bool{start: true}
	visited := []string{start}
	queue := []string{start}

	rec.emit(PhaseNotStarted, "", visited, queue, nil)

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		rec.emit(PhaseVisiting, v, visited, queue, nil)

		for _, w := range g.Neighbors(v) {
			if seen[w] {
				continue
			}
			seen[w] = true
			visited = append(visited, w)
			queue = append(queue, w)
			rec.emit(PhaseExpanding, v, visited, queue, &graph.Edge{Source: v, Target: w})
		}
	}

	rec.emit(PhaseDone, "", visited, queue, nil)
	return rec.sequence(), nil
}
