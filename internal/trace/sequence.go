package trace

import "iter"

// Sequence is an immutable, 0-indexed list of steps belonging to one trace.
// The zero value is an empty sequence.
type Sequence[S any] struct {
	steps []S
}

// NewSequence takes a snapshot of steps. Later changes to the caller's slice
// (appends or element writes) do not affect the sequence.
func NewSequence[S any](steps []S) Sequence[S] {
	if len(steps) == 0 {
		return Sequence[S]{}
	}
	c := make([]S, len(steps))
	copy(c, steps)
	return Sequence[S]{steps: c}
}

func (s Sequence[S]) Len() int { return len(s.steps) }

// At returns step i; ok is false when i is out of range.
func (s Sequence[S]) At(i int) (step S, ok bool) {
	if i < 0 || i >= len(s.steps) {
		return step, false
	}
	return s.steps[i], true
}

// Last returns the final step of the trace.
func (s Sequence[S]) Last() (S, bool) {
	return s.At(len(s.steps) - 1)
}

// Steps returns a copy of the step list.
func (s Sequence[S]) Steps() []S {
	c := make([]S, len(s.steps))
	copy(c, s.steps)
	return c
}

// All iterates over (index, step) pairs in order.
func (s Sequence[S]) All() iter.Seq2[int, S] {
	return func(yield func(int, S) bool) {
		for i, st := range s.steps {
			if !yield(i, st) {
				return
			}
		}
	}
}
