package metrics

import "github.com/san-kum/algotrace/internal/sorting"

type Comparisons struct {
	name  string
	count int
}

func NewComparisons() *Comparisons {
	return &Comparisons{name: "comparisons"}
}

func (c *Comparisons) Name() string { return c.name }

func (c *Comparisons) Observe(st sorting.Step) {
	if st.Kind == sorting.KindCompare {
		c.count++
	}
}

func (c *Comparisons) Value() float64 { return float64(c.count) }
func (c *Comparisons) Reset()         { c.count = 0 }

// Writes counts array positions overwritten, two per swap.
type Writes struct {
	name  string
	count int
}

func NewWrites() *Writes {
	return &Writes{name: "writes"}
}

func (w *Writes) Name() string { return w.name }

func (w *Writes) Observe(st sorting.Step) {
	if st.Kind == sorting.KindMutate {
		w.count += len(st.Mutated)
	}
}

func (w *Writes) Value() float64 { return float64(w.count) }
func (w *Writes) Reset()         { w.count = 0 }

// Swaps counts mutate steps that exchange two distinct positions.
type Swaps struct {
	name  string
	count int
}

func NewSwaps() *Swaps {
	return &Swaps{name: "swaps"}
}

func (s *Swaps) Name() string { return s.name }

func (s *Swaps) Observe(st sorting.Step) {
	if st.Kind == sorting.KindMutate && len(st.Mutated) == 2 {
		s.count++
	}
}

func (s *Swaps) Value() float64 { return float64(s.count) }
func (s *Swaps) Reset()         { s.count = 0 }

func DefaultSort() []Metric[sorting.Step] {
	return []Metric[sorting.Step]{NewComparisons(), NewWrites(), NewSwaps()}
}
