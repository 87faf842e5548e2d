package sorting

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/algotrace/internal/trace"
)

var tracers = map[string]Tracer{
	"bubble": Bubble,
	"merge":  Merge,
	"quick":  Quick,
}

func countKind(seq trace.Sequence[Step], k Kind) int {
	n := 0
	for _, st := range seq.All() {
		if st.Kind == k {
			n++
		}
	}
	return n
}

func TestBubble_Scenario(t *testing.T) {
	seq, err := Bubble([]float64{5, 3, 1})
	require.NoError(t, err)

	last, ok := seq.Last()
	require.True(t, ok)
	assert.Equal(t, []float64{1, 3, 5}, last.Array)
	assert.Equal(t, 3, countKind(seq, KindMutate))
	assert.Equal(t, 3, countKind(seq, KindCompare))
}

func TestBubble_EarlyExit(t *testing.T) {
	seq, err := Bubble([]float64{1, 2, 3, 4})
	require.NoError(t, err)

	assert.Equal(t, 3, countKind(seq, KindCompare))
	assert.Equal(t, 0, countKind(seq, KindMutate))

	st, _ := seq.At(seq.Len() - 2)
	assert.Equal(t, KindSorted, st.Kind)
	assert.Equal(t, []int{0, 1, 2, 3}, st.Sorted)
}

func TestBubble_SwapIsSeparateStep(t *testing.T) {
	seq, err := Bubble([]float64{2, 1})
	require.NoError(t, err)

	cmp, _ := seq.At(1)
	assert.Equal(t, KindCompare, cmp.Kind)
	assert.Equal(t, []int{0, 1}, cmp.Compared)
	assert.Equal(t, []float64{2, 1}, cmp.Array)

	mut, _ := seq.At(2)
	assert.Equal(t, KindMutate, mut.Kind)
	assert.Equal(t, []int{0, 1}, mut.Mutated)
	assert.Equal(t, []float64{1, 2}, mut.Array)
}

func TestMerge_Stability(t *testing.T) {
	// keys of (3,'a'), (1,'b'), (3,'c')
	seq, err := Merge([]float64{3, 1, 3})
	require.NoError(t, err)

	last, _ := seq.Last()
	assert.Equal(t, []float64{1, 3, 3}, last.Array)
	assert.Equal(t, []int{1, 0, 2}, last.Origin)
}

func TestMerge_StabilityRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for round := 0; round < 50; round++ {
		in := make([]float64, rng.Intn(20)+1)
		for i := range in {
			in[i] = float64(rng.Intn(4))
		}
		seq, err := Merge(in)
		require.NoError(t, err)

		last, _ := seq.Last()
		for i := 1; i < len(last.Array); i++ {
			if last.Array[i] == last.Array[i-1] {
				assert.Less(t, last.Origin[i-1], last.Origin[i], "round %d input %v", round, in)
			}
		}
	}
}

func TestMerge_StepShapes(t *testing.T) {
	seq, err := Merge([]float64{4, 2})
	require.NoError(t, err)

	kinds := make([]Kind, 0, seq.Len())
	for _, st := range seq.All() {
		kinds = append(kinds, st.Kind)
	}
	assert.Equal(t, []Kind{
		KindStart, KindSplit, KindMergeStart, KindCompare,
		KindMutate, KindMutate, KindMerged, KindDone,
	}, kinds)

	split, _ := seq.At(1)
	assert.Equal(t, []Range{{0, 0}, {1, 1}}, split.ActiveRanges)

	start, _ := seq.At(2)
	require.NotNil(t, start.Merge)
	assert.Equal(t, []float64{4}, start.Merge.Left)
	assert.Equal(t, []float64{2}, start.Merge.Right)
	assert.Equal(t, 0, start.Merge.Dest)

	write, _ := seq.At(4)
	assert.Equal(t, []int{0}, write.Mutated)
	assert.Equal(t, 1, write.Merge.RightCursor)
	assert.Equal(t, []int{0}, write.Sorted)
}

func TestMerge_WritesKeepPermutation(t *testing.T) {
	seq, err := Merge([]float64{2, 1})
	require.NoError(t, err)

	compare, _ := seq.At(3)
	require.Equal(t, KindCompare, compare.Kind)
	assert.Equal(t, []int{0, 1}, compare.Compared)

	first, _ := seq.At(4)
	require.Equal(t, KindMutate, first.Kind)
	assert.Equal(t, []float64{1, 2}, first.Array)
	assert.Equal(t, []int{1, 0}, first.Origin)
}

func TestMerge_ComparedPointAtCursors(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 30; round++ {
		in := make([]float64, rng.Intn(12)+2)
		for i := range in {
			in[i] = float64(rng.Intn(20))
		}
		seq, err := Merge(in)
		require.NoError(t, err)

		for idx, st := range seq.All() {
			if st.Kind != KindCompare {
				continue
			}
			m := st.Merge
			require.NotNil(t, m)
			require.Len(t, st.Compared, 2)
			assert.Equal(t, m.Left[m.LeftCursor], st.Array[st.Compared[0]], "round %d step %d left", round, idx)
			assert.Equal(t, m.Right[m.RightCursor], st.Array[st.Compared[1]], "round %d step %d right", round, idx)
		}
	}
}

func TestQuick_PivotPolicy(t *testing.T) {
	seq, err := Quick([]float64{3, 1, 2})
	require.NoError(t, err)

	part, _ := seq.At(1)
	assert.Equal(t, KindPartition, part.Kind)
	require.NotNil(t, part.Pivot)
	assert.Equal(t, 2, *part.Pivot)
	assert.Equal(t, &Range{0, 2}, part.ActiveRange)

	var placed bool
	for _, st := range seq.All() {
		if st.Kind == KindSorted && st.Pivot != nil && *st.Pivot == 1 {
			placed = true
			assert.Equal(t, 2.0, st.Array[1])
			break
		}
	}
	assert.True(t, placed)
}

func TestQuick_PivotSwapAlwaysRecorded(t *testing.T) {
	seq, err := Quick([]float64{1, 2})
	require.NoError(t, err)

	// partition [0,1] pivot 2: compare, self-swap of 0, pivot placed at 1
	var mutated [][]int
	for _, st := range seq.All() {
		if st.Kind == KindMutate {
			mutated = append(mutated, st.Mutated)
		}
	}
	assert.Equal(t, [][]int{{0}, {1}}, mutated)
}

func TestTracers_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	inputs := [][]float64{
		{1},
		{2, 1},
		{5, 3, 1, 4, 2},
		{1, 1, 1, 1},
		{-2.5, 0, 3.25, -2.5, 10},
		{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
	}
	for i := 0; i < 40; i++ {
		in := make([]float64, rng.Intn(25)+1)
		for j := range in {
			in[j] = float64(rng.Intn(50) - 25)
		}
		inputs = append(inputs, in)
	}

	for name, tr := range tracers {
		t.Run(name, func(t *testing.T) {
			for _, in := range inputs {
				orig := slices.Clone(in)
				seq, err := tr(in)
				require.NoError(t, err)
				assert.Equal(t, orig, in, "input mutated")

				want := slices.Clone(orig)
				slices.Sort(want)

				first, _ := seq.At(0)
				assert.Equal(t, KindStart, first.Kind)

				for idx, st := range seq.All() {
					require.Len(t, st.Array, len(orig))
					perm := slices.Clone(st.Origin)
					slices.Sort(perm)
					for k := range perm {
						require.Equal(t, k, perm[k], "step %d origin not a permutation", idx)
					}
					for pos, o := range st.Origin {
						require.Equal(t, orig[o], st.Array[pos], "step %d origin mismatch", idx)
					}
					got := slices.Clone(st.Array)
					slices.Sort(got)
					require.Equal(t, want, got, "step %d multiset changed", idx)
				}

				last, _ := seq.Last()
				assert.Equal(t, KindDone, last.Kind)
				assert.Equal(t, want, last.Array)
				assert.Len(t, last.Sorted, len(orig))
			}
		})
	}
}

func TestTracers_SortedIsFinal(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for name, tr := range tracers {
		t.Run(name, func(t *testing.T) {
			for round := 0; round < 20; round++ {
				in := make([]float64, rng.Intn(15)+2)
				for i := range in {
					in[i] = float64(rng.Intn(100))
				}
				seq, err := tr(in)
				require.NoError(t, err)

				want := slices.Clone(in)
				slices.Sort(want)
				for idx, st := range seq.All() {
					for _, s := range st.Sorted {
						assert.Equal(t, want[s], st.Array[s], "round %d step %d index %d", round, idx, s)
					}
				}
			}
		})
	}
}

func TestTracers_EmptyInput(t *testing.T) {
	for name, tr := range tracers {
		t.Run(name, func(t *testing.T) {
			seq, err := tr(nil)
			require.NoError(t, err)
			assert.Equal(t, 0, seq.Len())
		})
	}
}

func TestTracers_NonFinite(t *testing.T) {
	for name, tr := range tracers {
		t.Run(name, func(t *testing.T) {
			for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
				seq, err := tr([]float64{1, bad, 2})
				assert.True(t, trace.IsInvalidInput(err), "got %v", err)
				assert.Equal(t, 0, seq.Len())
			}
		})
	}
}

func TestTracers_Idempotent(t *testing.T) {
	in := []float64{7, 3, 9, 3, 1, 8}
	for name, tr := range tracers {
		t.Run(name, func(t *testing.T) {
			a, err := tr(in)
			require.NoError(t, err)
			b, err := tr(in)
			require.NoError(t, err)
			assert.Equal(t, a.Steps(), b.Steps())
		})
	}
}

func TestParseValues(t *testing.T) {
	tests := []struct {
		in      string
		want    []float64
		wantErr bool
	}{
		{"5,3,1", []float64{5, 3, 1}, false},
		{" 5 3\t1 ", []float64{5, 3, 1}, false},
		{"1.5, -2", []float64{1.5, -2}, false},
		{"", []float64{}, false},
		{"1,x,3", nil, true},
		{"1,NaN", nil, true},
		{"inf", nil, true},
	}
	for _, tt := range tests {
		got, err := ParseValues(tt.in)
		if tt.wantErr {
			assert.True(t, trace.IsInvalidArgument(err), "%q: got %v", tt.in, err)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestStep_Describe(t *testing.T) {
	st := Step{Kind: KindCompare, Array: []float64{5, 3}, Compared: []int{0, 1}}
	assert.Equal(t, "comparing 5 at 0 with 3 at 1", st.Describe())

	st = Step{Kind: KindMutate, Array: []float64{3, 5}, Mutated: []int{0, 1}}
	assert.Equal(t, "swapped indices 0 and 1", st.Describe())

	st = Step{Kind: KindSplit, ActiveRanges: []Range{{0, 1}, {2, 3}}}
	assert.Equal(t, "dividing into [0..1] and [2..3]", st.Describe())

	assert.Equal(t, "array sorted", Step{Kind: KindDone}.Describe())
	assert.Equal(t, "kind(42)", Kind(42).String())
}

func benchInput(n int) []float64 {
	rng := rand.New(rand.NewSource(1))
	in := make([]float64, n)
	for i := range in {
		in[i] = rng.Float64()
	}
	return in
}

func BenchmarkBubble(b *testing.B) {
	in := benchInput(64)
	for i := 0; i < b.N; i++ {
		_, _ = Bubble(in)
	}
}

func BenchmarkMerge(b *testing.B) {
	in := benchInput(256)
	for i := 0; i < b.N; i++ {
		_, _ = Merge(in)
	}
}

func BenchmarkQuick(b *testing.B) {
	in := benchInput(256)
	for i := 0; i < b.N; i++ {
		_, _ = Quick(in)
	}
}
