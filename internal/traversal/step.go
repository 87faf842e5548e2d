package traversal

import (
	"fmt"
	"strings"

	"github.com/san-kum/algotrace/internal/graph"
	"github.com/san-kum/algotrace/internal/trace"
)

type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseVisiting
	PhaseExpanding
	PhaseBacktracking
	PhaseDone
)

var phaseNames = [...]string{
	PhaseNotStarted:   "not-started",
	PhaseVisiting:     "visiting",
	PhaseExpanding:    "expanding-neighbors",
	PhaseBacktracking: "backtracking",
	PhaseDone:         "done",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("phase(%d)", int(p))
	}
	return phaseNames[p]
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Step is one snapshot of a traversal. Visited is in visit order; Frontier
// is the queue front-to-back (BFS) or the stack bottom-to-top (DFS). Current
// is empty when no vertex is under examination.
type Step struct {
	Phase    Phase       `json:"phase"`
	Current  string      `json:"current,omitempty"`
	Visited  []string    `json:"visited"`
	Frontier []string    `json:"frontier"`
	Edge     *graph.Edge `json:"edge,omitempty"`
}

// Describe renders a one-line explanation of the step.
func (s Step) Describe() string {
	switch s.Phase {
	case PhaseNotStarted:
		return fmt.Sprintf("start with frontier [%s]", strings.Join(s.Frontier, ", "))
	case PhaseVisiting:
		return fmt.Sprintf("visiting %s", s.Current)
	case PhaseExpanding:
		if s.Edge != nil {
			return fmt.Sprintf("examining edge %s, adding %s to the frontier", s.Edge, s.Edge.Target)
		}
		return fmt.Sprintf("expanding neighbors of %s", s.Current)
	case PhaseBacktracking:
		return fmt.Sprintf("%s has no unvisited neighbors, backtracking", s.Current)
	case PhaseDone:
		return fmt.Sprintf("traversal complete, %d vertices reached", len(s.Visited))
	}
	return s.Phase.String()
}

// Tracer runs a traversal from start and returns its complete trace.
type Tracer func(g *graph.Graph, start string) (trace.Sequence[Step], error)

// recorder appends snapshots that own their slices.
type recorder struct {
	steps []Step
}

func (r *recorder) emit(phase Phase, current string, visited, frontier []string, edge *graph.Edge) {
	st := Step{
		Phase:    phase,
		Current:  current,
		Visited:  append([]string{}, visited...),
		Frontier: append([]string{}, frontier...),
	}
	if edge != nil {
		e := *edge
		st.Edge = &e
	}
	r.steps = append(r.steps, st)
}

func (r *recorder) sequence() trace.Sequence[Step] {
	return trace.NewSequence(r.steps)
}

func validate(op string, g *graph.Graph, start string) error {
	if g == nil {
		return trace.InvalidArgument(op, "nil graph")
	}
	if !g.HasVertex(start) {
		return trace.InvalidInput(op, "start vertex %q not in graph", start)
	}
	return nil
}
