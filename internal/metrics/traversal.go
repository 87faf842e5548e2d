package metrics

import "github.com/san-kum/algotrace/internal/traversal"

// PeakFrontier is the largest queue or stack size seen.
type PeakFrontier struct {
	name string
	peak int
}

func NewPeakFrontier() *PeakFrontier {
	return &PeakFrontier{name: "peak_frontier"}
}

func (p *PeakFrontier) Name() string { return p.name }

func (p *PeakFrontier) Observe(st traversal.Step) {
	p.peak = max(p.peak, len(st.Frontier))
}

func (p *PeakFrontier) Value() float64 { return float64(p.peak) }
func (p *PeakFrontier) Reset()         { p.peak = 0 }

type Backtracks struct {
	name  string
	count int
}

func NewBacktracks() *Backtracks {
	return &Backtracks{name: "backtracks"}
}

func (b *Backtracks) Name() string { return b.name }

func (b *Backtracks) Observe(st traversal.Step) {
	if st.Phase == traversal.PhaseBacktracking {
		b.count++
	}
}

func (b *Backtracks) Value() float64 { return float64(b.count) }
func (b *Backtracks) Reset()         { b.count = 0 }

// Reached is the number of visited vertices at the last observed step.
type Reached struct {
	name  string
	count int
}

func NewReached() *Reached {
	return &Reached{name: "reached"}
}

func (r *Reached) Name() string { return r.name }

func (r *Reached) Observe(st traversal.Step) {
	r.count = len(st.Visited)
}

func (r *Reached) Value() float64 { return float64(r.count) }
func (r *Reached) Reset()         { r.count = 0 }

func DefaultTraversal() []Metric[traversal.Step] {
	return []Metric[traversal.Step]{NewPeakFrontier(), NewBacktracks(), NewReached()}
}
