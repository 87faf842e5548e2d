package metrics

import "github.com/san-kum/algotrace/internal/trace"

// Metric accumulates one number over the steps of a trace.
type Metric[S any] interface {
	Name() string
	Observe(step S)
	Value() float64
	Reset()
}

// Collect resets each metric, feeds it every step of seq and returns the
// values keyed by metric name.
func Collect[S any](seq trace.Sequence[S], ms ...Metric[S]) map[string]float64 {
	for _, m := range ms {
		m.Reset()
	}
	for _, st := range seq.All() {
		for _, m := range ms {
			m.Observe(st)
		}
	}
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
