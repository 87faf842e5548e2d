package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/algotrace/internal/sorting"
	"github.com/san-kum/algotrace/internal/trace"
	"github.com/san-kum/algotrace/internal/traversal"
)

// WriteSortCSV writes one row per step. List columns are space separated.
func WriteSortCSV(w io.Writer, seq trace.Sequence[sorting.Step]) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"step", "kind", "array", "compared", "mutated", "sorted", "pivot", "description"}); err != nil {
		return err
	}

	for i, st := range seq.All() {
		pivot := ""
		if st.Pivot != nil {
			pivot = strconv.Itoa(*st.Pivot)
		}
		row := []string{
			strconv.Itoa(i),
			st.Kind.String(),
			joinFloats(st.Array),
			joinInts(st.Compared),
			joinInts(st.Mutated),
			joinInts(st.Sorted),
			pivot,
			st.Describe(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func WriteTraversalCSV(w io.Writer, seq trace.Sequence[traversal.Step]) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"step", "phase", "current", "visited", "frontier", "edge", "description"}); err != nil {
		return err
	}

	for i, st := range seq.All() {
		edge := ""
		if st.Edge != nil {
			edge = st.Edge.String()
		}
		row := []string{
			strconv.Itoa(i),
			st.Phase.String(),
			st.Current,
			strings.Join(st.Visited, " "),
			strings.Join(st.Frontier, " "),
			edge,
			st.Describe(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func joinFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
