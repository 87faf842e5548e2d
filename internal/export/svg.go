package export

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/san-kum/algotrace/internal/sorting"
	"github.com/san-kum/algotrace/internal/trace"
	"github.com/san-kum/algotrace/internal/traversal"
)

const (
	colorBar      = "#4a90d9"
	colorSorted   = "#00ff00"
	colorCompared = "#ffd700"
	colorMutated  = "#ff4040"
	colorPivot    = "#bf5fff"
)

// StepToSVG draws the array of one sort step as a bar chart. Bars are
// colored by role: pivot, then mutated, compared and sorted.
func StepToSVG(st sorting.Step, width, height int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	n := len(st.Array)
	if n > 0 {
		lo, hi := 0.0, 0.0
		for _, v := range st.Array {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		if hi == lo {
			hi = lo + 1
		}
		h := float64(height)
		scale := func(v float64) float64 { return h - (v-lo)/(hi-lo)*h }
		base := scale(0)
		slot := float64(width) / float64(n)

		for i, v := range st.Array {
			top := scale(v)
			y := math.Min(base, top)
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, float64(i)*slot+slot*0.1, y, slot*0.8, math.Abs(base-top), barColor(st, i)))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func barColor(st sorting.Step, i int) string {
	switch {
	case st.Pivot != nil && *st.Pivot == i:
		return colorPivot
	case slices.Contains(st.Mutated, i):
		return colorMutated
	case slices.Contains(st.Compared, i):
		return colorCompared
	case slices.Contains(st.Sorted, i):
		return colorSorted
	}
	return colorBar
}

// FrontierToSVG plots the frontier size across a traversal as a line.
func FrontierToSVG(seq trace.Sequence[traversal.Step], width, height int, strokeColor string) string {
	if seq.Len() < 2 {
		return ""
	}

	maxY := 1
	for _, st := range seq.All() {
		maxY = max(maxY, len(st.Frontier))
	}
	rangeX := float64(seq.Len() - 1)
	rangeY := float64(maxY)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, st := range seq.All() {
		x := float64(i) / rangeX * float64(width)
		y := float64(height) - float64(len(st.Frontier))/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
