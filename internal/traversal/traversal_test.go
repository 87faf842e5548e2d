package traversal

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/algotrace/internal/graph"
	"github.com/san-kum/algotrace/internal/trace"
)

func diamond(t *testing.T, order graph.Order) *graph.Graph {
	t.Helper()
	g, err := graph.New(
		[]string{"A", "B", "C", "D"},
		[]graph.Edge{{Source: "A", Target: "B"}, {Source: "A", Target: "C"}, {Source: "B", Target: "D"}},
		graph.WithNeighborOrder(order),
	)
	require.NoError(t, err)
	return g
}

func phases(seq trace.Sequence[Step]) []Phase {
	var out []Phase
	for _, st := range seq.All() {
		out = append(out, st.Phase)
	}
	return out
}

func TestBFS_Diamond(t *testing.T) {
	seq, err := BFS(diamond(t, graph.OrderLexical), "A")
	require.NoError(t, err)

	last, ok := seq.Last()
	require.True(t, ok)
	assert.Equal(t, PhaseDone, last.Phase)
	assert.Equal(t, "", last.Current)
	assert.Empty(t, last.Frontier)
	assert.Equal(t, []string{"A", "B", "C", "D"}, last.Visited)

	assert.Equal(t, []Phase{
		PhaseNotStarted,
		PhaseVisiting, PhaseExpanding, PhaseExpanding,
		PhaseVisiting, PhaseExpanding,
		PhaseVisiting,
		PhaseVisiting,
		PhaseDone,
	}, phases(seq))

	first, _ := seq.At(0)
	assert.Equal(t, []string{"A"}, first.Frontier)
	assert.Equal(t, []string{"A"}, first.Visited)
	assert.Nil(t, first.Edge)

	enqueueB, _ := seq.At(2)
	require.NotNil(t, enqueueB.Edge)
	assert.Equal(t, graph.Edge{Source: "A", Target: "B"}, *enqueueB.Edge)
	assert.Equal(t, []string{"B"}, enqueueB.Frontier)
}

func TestDFS_Diamond(t *testing.T) {
	seq, err := DFS(diamond(t, graph.OrderLexical), "A")
	require.NoError(t, err)

	last, _ := seq.Last()
	assert.Equal(t, []string{"A", "B", "D", "C"}, last.Visited)
	assert.Equal(t, PhaseDone, last.Phase)
	assert.Empty(t, last.Frontier)

	assert.Equal(t, []Phase{
		PhaseNotStarted,
		PhaseVisiting,     // A
		PhaseExpanding,    // A->B
		PhaseVisiting,     // B
		PhaseExpanding,    // B->D
		PhaseVisiting,     // D
		PhaseBacktracking, // D
		PhaseBacktracking, // B
		PhaseExpanding,    // A->C
		PhaseVisiting,     // C
		PhaseBacktracking, // C
		PhaseBacktracking, // A
		PhaseDone,
	}, phases(seq))

	deep, _ := seq.At(5)
	assert.Equal(t, []string{"A", "B", "D"}, deep.Frontier)
	assert.Equal(t, "D", deep.Current)
}

func TestTracers_StartNotInGraph(t *testing.T) {
	g := diamond(t, graph.OrderInsertion)
	for name, tr := range map[string]Tracer{"bfs": BFS, "dfs": DFS} {
		t.Run(name, func(t *testing.T) {
			seq, err := tr(g, "Z")
			assert.True(t, trace.IsInvalidInput(err), "got %v", err)
			assert.Equal(t, 0, seq.Len())

			_, err = tr(nil, "A")
			assert.True(t, trace.IsInvalidArgument(err), "got %v", err)
		})
	}
}

func TestTracers_Disconnected(t *testing.T) {
	g, err := graph.New(
		[]string{"A", "B", "C", "D"},
		[]graph.Edge{{Source: "A", Target: "B"}, {Source: "C", Target: "D"}},
	)
	require.NoError(t, err)

	for name, tr := range map[string]Tracer{"bfs": BFS, "dfs": DFS} {
		t.Run(name, func(t *testing.T) {
			seq, err := tr(g, "A")
			require.NoError(t, err)
			last, _ := seq.Last()
			assert.ElementsMatch(t, []string{"A", "B"}, last.Visited)
		})
	}
}

func TestTracers_Isolated(t *testing.T) {
	g, err := graph.New([]string{"A"}, nil)
	require.NoError(t, err)

	bfs, err := BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []Phase{PhaseNotStarted, PhaseVisiting, PhaseDone}, phases(bfs))

	dfs, err := DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []Phase{PhaseNotStarted, PhaseVisiting, PhaseBacktracking, PhaseDone}, phases(dfs))
}

func TestTracers_Teaching(t *testing.T) {
	g := graph.Teaching()

	bfs, err := BFS(g, graph.TeachingStart)
	require.NoError(t, err)
	last, _ := bfs.Last()
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}, last.Visited)

	dfs, err := DFS(g, graph.TeachingStart)
	require.NoError(t, err)
	last, _ = dfs.Last()
	assert.Equal(t, []string{"A", "B", "D", "H", "E", "J", "I", "F", "C", "G"}, last.Visited)
}

func TestBFS_Layering(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g, err := graph.Random(12, 0.25, rng)
		require.NoError(t, err)

		seq, err := BFS(g, graph.RandomStart)
		require.NoError(t, err)

		dist := g.Distances(graph.RandomStart)
		last, _ := seq.Last()
		assert.Len(t, last.Visited, len(dist), "seed %d", seed)
		for i := 1; i < len(last.Visited); i++ {
			prev, cur := last.Visited[i-1], last.Visited[i]
			assert.LessOrEqual(t, dist[prev], dist[cur], "seed %d: %s before %s", seed, prev, cur)
		}
	}
}

func TestDFS_StackDiscipline(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g, err := graph.Random(12, 0.3, rng)
		require.NoError(t, err)

		seq, err := DFS(g, graph.RandomStart)
		require.NoError(t, err)

		popped := make(map[string]int)
		visits := make(map[string]int)
		for i, st := range seq.All() {
			switch st.Phase {
			case PhaseVisiting:
				visits[st.Current]++
			case PhaseBacktracking:
				popped[st.Current]++
				seen := make(map[string]bool, len(st.Visited))
				for _, v := range st.Visited {
					seen[v] = true
				}
				for _, w := range g.Neighbors(st.Current) {
					assert.True(t, seen[w], "seed %d step %d: %s popped before neighbor %s", seed, i, st.Current, w)
				}
				for _, f := range st.Frontier {
					assert.NotEqual(t, st.Current, f, "seed %d step %d", seed, i)
				}
			}
		}

		last, _ := seq.Last()
		assert.Len(t, last.Visited, len(g.Distances(graph.RandomStart)), "seed %d", seed)
		for _, v := range last.Visited {
			assert.Equal(t, 1, popped[v], "seed %d vertex %s", seed, v)
			assert.Equal(t, 1, visits[v], "seed %d vertex %s", seed, v)
		}
	}
}

func TestTracers_VisitedMonotonic(t *testing.T) {
	g := graph.Teaching()
	for name, tr := range map[string]Tracer{"bfs": BFS, "dfs": DFS} {
		t.Run(name, func(t *testing.T) {
			seq, err := tr(g, "A")
			require.NoError(t, err)
			prev := 0
			for i, st := range seq.All() {
				assert.GreaterOrEqual(t, len(st.Visited), prev, "step %d", i)
				prev = len(st.Visited)
			}
		})
	}
}

func TestTracers_Idempotent(t *testing.T) {
	g, err := graph.Random(15, 0.2, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	for name, tr := range map[string]Tracer{"bfs": BFS, "dfs": DFS} {
		t.Run(name, func(t *testing.T) {
			a, err := tr(g, graph.RandomStart)
			require.NoError(t, err)
			b, err := tr(g, graph.RandomStart)
			require.NoError(t, err)
			assert.Equal(t, a.Steps(), b.Steps())
		})
	}
}

func TestTracers_SnapshotsIndependent(t *testing.T) {
	seq, err := BFS(graph.Teaching(), "A")
	require.NoError(t, err)

	first, _ := seq.At(1)
	before := append([]string{}, first.Visited...)
	first.Visited[0] = "mutated"

	for i := 2; i < seq.Len(); i++ {
		st, _ := seq.At(i)
		assert.Equal(t, "A", st.Visited[0], "step %d", i)
	}
	assert.Equal(t, []string{"A"}, before)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "expanding-neighbors", PhaseExpanding.String())
	assert.Equal(t, "phase(9)", Phase(9).String())

	b, err := PhaseBacktracking.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "backtracking", string(b))
}

func TestStep_Describe(t *testing.T) {
	st := Step{Phase: PhaseExpanding, Current: "A", Edge: &graph.Edge{Source: "A", Target: "B"}}
	assert.Equal(t, "examining edge A-B, adding B to the frontier", st.Describe())
	assert.Equal(t, "visiting C", Step{Phase: PhaseVisiting, Current: "C"}.Describe())
	assert.Equal(t, "traversal complete, 2 vertices reached", Step{Phase: PhaseDone, Visited: []string{"A", "B"}}.Describe())
}

func BenchmarkBFS(b *testing.B) {
	g, _ := graph.Random(200, 0.05, rand.New(rand.NewSource(1)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = BFS(g, graph.RandomStart)
	}
}

func BenchmarkDFS(b *testing.B) {
	g, _ := graph.Random(200, 0.05, rand.New(rand.NewSource(1)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = DFS(g, graph.RandomStart)
	}
}
