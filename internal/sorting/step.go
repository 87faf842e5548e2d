package sorting

import (
	"fmt"

	"github.com/san-kum/algotrace/internal/trace"
)

// Kind names the event a step records.
type Kind int

const (
	KindStart Kind = iota
	KindCompare
	KindMutate
	KindSplit
	KindMergeStart
	KindMerged
	KindPartition
	KindSorted
	KindDone
)

var kindNames = [...]string{
	KindStart:      "start",
	KindCompare:    "compare",
	KindMutate:     "mutate",
	KindSplit:      "split",
	KindMergeStart: "merge-start",
	KindMerged:     "merged",
	KindPartition:  "partition",
	KindSorted:     "sorted",
	KindDone:       "done",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Range is an inclusive index range.
type Range struct {
	Lo int `json:"lo"`
	Hi int `json:"hi"`
}

func (r Range) String() string { return fmt.Sprintf("[%d..%d]", r.Lo, r.Hi) }

// MergeState is the merge sub-state: copies of both halves, the cursor into
// each and the destination index of the next write.
type MergeState struct {
	Left        []float64 `json:"left"`
	Right       []float64 `json:"right"`
	LeftCursor  int       `json:"left_cursor"`
	RightCursor int       `json:"right_cursor"`
	Dest        int       `json:"dest"`
}

type Step struct {
	Kind     Kind      `json:"kind"`
	Array    []float64 `json:"array"`
	Origin   []int     `json:"origin"`
	Compared []int     `json:"compared,omitempty"`
	Mutated  []int     `json:"mutated,omitempty"`
	Sorted   []int     `json:"sorted,omitempty"`

	Pivot        *int        `json:"pivot,omitempty"`
	ActiveRange  *Range      `json:"active_range,omitempty"`
	ActiveRanges []Range     `json:"active_ranges,omitempty"`
	Merge        *MergeState `json:"merge,omitempty"`
}

// Describe renders a one-line explanation of the step.
func (s Step) Describe() string {
	switch s.Kind {
	case KindStart:
		return fmt.Sprintf("initial array of %d values", len(s.Array))
	case KindCompare:
		if len(s.Compared) == 2 {
			a, b := s.Compared[0], s.Compared[1]
			if s.Merge != nil {
				return fmt.Sprintf("comparing left %v with right %v",
					s.Merge.Left[s.Merge.LeftCursor], s.Merge.Right[s.Merge.RightCursor])
			}
			return fmt.Sprintf("comparing %v at %d with %v at %d", s.Array[a], a, s.Array[b], b)
		}
	case KindMutate:
		switch len(s.Mutated) {
		case 1:
			i := s.Mutated[0]
			return fmt.Sprintf("wrote %v to index %d", s.Array[i], i)
		case 2:
			return fmt.Sprintf("swapped indices %d and %d", s.Mutated[0], s.Mutated[1])
		}
	case KindSplit:
		if len(s.ActiveRanges) == 2 {
			return fmt.Sprintf("dividing into %s and %s", s.ActiveRanges[0], s.ActiveRanges[1])
		}
	case KindMergeStart:
		if len(s.ActiveRanges) == 2 {
			return fmt.Sprintf("merging %s and %s", s.ActiveRanges[0], s.ActiveRanges[1])
		}
	case KindMerged:
		if s.ActiveRange != nil {
			return fmt.Sprintf("range %s merged", *s.ActiveRange)
		}
	case KindPartition:
		if s.Pivot != nil && s.ActiveRange != nil {
			return fmt.Sprintf("partitioning %s around pivot %v", *s.ActiveRange, s.Array[*s.Pivot])
		}
	case KindSorted:
		if s.Pivot != nil {
			return fmt.Sprintf("%v is in its final position %d", s.Array[*s.Pivot], *s.Pivot)
		}
		return fmt.Sprintf("%d of %d positions final", len(s.Sorted), len(s.Array))
	case KindDone:
		return "array sorted"
	}
	return s.Kind.String()
}

// Tracer sorts a copy of its input and returns the complete trace.
type Tracer func(values []float64) (trace.Sequence[Step], error)

// run holds the working array of one tracer invocation.
type run struct {
	a      []float64
	origin []int
	sorted []bool
	steps  []Step
}

func newRun(values []float64) *run {
	r := &run{
		a:      append([]float64{}, values...),
		origin: make([]int, len(values)),
		sorted: make([]bool, len(values)),
	}
	for i := range r.origin {
		r.origin[i] = i
	}
	return r
}

func (r *run) swap(i, j int) {
	r.a[i], r.a[j] = r.a[j], r.a[i]
	r.origin[i], r.origin[j] = r.origin[j], r.origin[i]
}

func (r *run) markSorted(lo, hi int) {
	for i := lo; i <= hi; i++ {
		r.sorted[i] = true
	}
}

// emit snapshots the working state into a new step. The caller fills in the
// algorithm-specific fields on the returned pointer.
func (r *run) emit(kind Kind, compared, mutated []int) *Step {
	st := Step{
		Kind:     kind,
		Array:    append([]float64{}, r.a...),
		Origin:   append([]int{}, r.origin...),
		Compared: compared,
		Mutated:  dedupe(mutated),
	}
	for i, ok := range r.sorted {
		if ok {
			st.Sorted = append(st.Sorted, i)
		}
	}
	r.steps = append(r.steps, st)
	return &r.steps[len(r.steps)-1]
}

func (r *run) finish() trace.Sequence[Step] {
	if len(r.a) > 0 {
		r.markSorted(0, len(r.a)-1)
		r.emit(KindDone, nil, nil)
	}
	return trace.NewSequence(r.steps)
}

func dedupe(idx []int) []int {
	if len(idx) == 2 && idx[0] == idx[1] {
		return idx[:1]
	}
	return idx
}

func intPtr(v int) *int { return &v }
