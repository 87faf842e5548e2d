package sorting

import "github.com/san-kum/algotrace/internal/trace"

// Bubble traces an adjacent-pair bubble sort. Each comparison is one step and
// each swap a separate mutate step. After pass p the position n-1-p is final;
// a pass without swaps finalizes everything left and ends the sort.
func Bubble(values []float64) (trace.Sequence[Step], error) {
	if err := validate("sorting.Bubble", values); err != nil {
		return trace.Sequence[Step]{}, err
	}

	r := newRun(values)
	n := len(r.a)
	if n == 0 {
		return r.finish(), nil
	}
	r.emit(KindStart, nil, nil)

	for pass := 0; pass < n-1; pass++ {
		last := n - 1 - pass
		swapped := false
		for j := 0; j < last; j++ {
			r.emit(KindCompare, []int{j, j + 1}, nil)
			if r.a[j] > r.a[j+1] {
				r.swap(j, j+1)
				swapped = true
				r.emit(KindMutate, nil, []int{j, j + 1})
			}
		}
		if !swapped {
			r.markSorted(0, last)
			r.emit(KindSorted, nil, nil)
			break
		}
		r.markSorted(last, last)
		r.emit(KindSorted, nil, nil)
	}

	return r.finish(), nil
}
