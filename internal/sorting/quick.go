package sorting

import "github.com/san-kum/algotrace/internal/trace"

// Quick traces a Lomuto quicksort. The pivot is always the last element of
// the active range; elements strictly less than it move to the left side.
// The closing swap that puts the pivot in place is always recorded, even when
// it swaps an index with itself.
func Quick(values []float64) (trace.Sequence[Step], error) {
	if err := validate("sorting.Quick", values); err != nil {
		return trace.Sequence[Step]{}, err
	}

	r := newRun(values)
	if len(r.a) == 0 {
		return r.finish(), nil
	}
	r.emit(KindStart, nil, nil)
	r.quickSort(0, len(r.a)-1)
	return r.finish(), nil
}

func (r *run) quickSort(lo, hi int) {
	if lo > hi {
		return
	}
	if lo == hi {
		r.sorted[lo] = true
		st := r.emit(KindSorted, nil, nil)
		st.Pivot = intPtr(lo)
		return
	}

	p := r.partition(lo, hi)
	r.quickSort(lo, p-1)
	r.quickSort(p+1, hi)
}

func (r *run) partition(lo, hi int) int {
	active := &Range{lo, hi}
	pivot := r.a[hi]

	st := r.emit(KindPartition, nil, nil)
	st.Pivot = intPtr(hi)
	st.ActiveRange = active

	i := lo - 1
	for j := lo; j < hi; j++ {
		st := r.emit(KindCompare, []int{j, hi}, nil)
		st.Pivot = intPtr(hi)
		st.ActiveRange = active

		if r.a[j] < pivot {
			i++
			r.swap(i, j)
			st := r.emit(KindMutate, nil, []int{i, j})
			st.Pivot = intPtr(hi)
			st.ActiveRange = active
		}
	}

	p := i + 1
	r.swap(p, hi)
	st = r.emit(KindMutate, nil, []int{p, hi})
	st.Pivot = intPtr(p)
	st.ActiveRange = active

	r.sorted[p] = true
	st = r.emit(KindSorted, nil, nil)
	st.Pivot = intPtr(p)
	st.ActiveRange = active

	return p
}
