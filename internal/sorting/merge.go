package sorting

import "github.com/san-kum/algotrace/internal/trace"

// Merge traces a top-down merge sort that splits [lo,hi] at (lo+hi)/2.
// Ties take the left value, so equal keys keep their input order.
func Merge(values []float64) (trace.Sequence[Step], error) {
	if err := validate("sorting.Merge", values); err != nil {
		return trace.Sequence[Step]{}, err
	}

	r := newRun(values)
	if len(r.a) == 0 {
		return r.finish(), nil
	}
	r.emit(KindStart, nil, nil)
	r.mergeSort(0, len(r.a)-1)
	return r.finish(), nil
}

func (r *run) mergeSort(lo, hi int) {
	if lo >= hi {
		return
	}
	mid := (lo + hi) / 2
	halves := []Range{{lo, mid}, {mid + 1, hi}}

	st := r.emit(KindSplit, nil, nil)
	st.ActiveRanges = halves

	r.mergeSort(lo, mid)
	r.mergeSort(mid+1, hi)
	r.merge(lo, mid, hi)
}

// merge interleaves the sorted halves [lo,mid] and [mid+1,hi]. After every
// write the range holds the written prefix followed by the unconsumed rest of
// each half, so every snapshot stays a permutation of the input.
func (r *run) merge(lo, mid, hi int) {
	left := append([]float64{}, r.a[lo:mid+1]...)
	right := append([]float64{}, r.a[mid+1:hi+1]...)
	leftOrigin := append([]int{}, r.origin[lo:mid+1]...)
	rightOrigin := append([]int{}, r.origin[mid+1:hi+1]...)
	halves := []Range{{lo, mid}, {mid + 1, hi}}
	final := lo == 0 && hi == len(r.a)-1

	out := make([]float64, 0, hi-lo+1)
	outOrigin := make([]int, 0, hi-lo+1)
	i, j := 0, 0
	state := func() *MergeState {
		return &MergeState{Left: left, Right: right, LeftCursor: i, RightCursor: j, Dest: lo + len(out)}
	}

	st := r.emit(KindMergeStart, nil, nil)
	st.ActiveRanges = halves
	st.Merge = state()

	write := func(v float64, origin int) {
		k := lo + len(out)
		out = append(out, v)
		outOrigin = append(outOrigin, origin)

		n := copy(r.a[lo:], out)
		n += copy(r.a[lo+n:], left[i:])
		copy(r.a[lo+n:], right[j:])
		n = copy(r.origin[lo:], outOrigin)
		n += copy(r.origin[lo+n:], leftOrigin[i:])
		copy(r.origin[lo+n:], rightOrigin[j:])

		if final {
			r.sorted[k] = true
		}
		st := r.emit(KindMutate, nil, []int{k})
		st.ActiveRanges = halves
		st.Merge = state()
	}

	for i < len(left) && j < len(right) {
		// The unconsumed left half starts at the destination, the right
		// half right after it.
		k := lo + len(out)
		st := r.emit(KindCompare, []int{k, k + len(left) - i}, nil)
		st.ActiveRanges = halves
		st.Merge = state()

		if left[i] <= right[j] {
			i++
			write(left[i-1], leftOrigin[i-1])
		} else {
			j++
			write(right[j-1], rightOrigin[j-1])
		}
	}
	for i < len(left) {
		i++
		write(left[i-1], leftOrigin[i-1])
	}
	for j < len(right) {
		j++
		write(right[j-1], rightOrigin[j-1])
	}

	st = r.emit(KindMerged, nil, nil)
	st.ActiveRange = &Range{lo, hi}
}
