package viz

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/algotrace/internal/graph"
	"github.com/san-kum/algotrace/internal/sorting"
	"github.com/san-kum/algotrace/internal/traversal"
)

const barWidth = 30

// PlotArray charts values with asciigraph. Fewer than two values yield "".
func PlotArray(values []float64, caption string) string {
	if len(values) < 2 {
		return ""
	}
	return asciigraph.Plot(values,
		asciigraph.Height(6),
		asciigraph.Width(max(len(values)*3, 30)),
		asciigraph.Caption(caption))
}

// RenderSortStep draws one horizontal bar per array position, colored by its
// role in the step, followed by merge or partition detail.
func RenderSortStep(st sorting.Step) string {
	var s strings.Builder

	hi := 0.0
	for _, v := range st.Array {
		hi = math.Max(hi, math.Abs(v))
	}
	if hi == 0 {
		hi = 1
	}

	for i, v := range st.Array {
		n := int(math.Round(math.Abs(v) / hi * barWidth))
		bar := fg(sortRoleColor(st, i)).Render(strings.Repeat("█", n))
		s.WriteString(fmt.Sprintf("%3d │%s %s\n", i, bar, formatValue(v)))
	}

	if st.ActiveRange != nil {
		s.WriteString(labelStyle.Render("range") + valueStyle.Render(st.ActiveRange.String()) + "\n")
	}
	if st.Pivot != nil && *st.Pivot < len(st.Array) {
		s.WriteString(labelStyle.Render("pivot") + valueStyle.Render(formatValue(st.Array[*st.Pivot])) + "\n")
	}
	if len(st.ActiveRanges) == 2 {
		s.WriteString(labelStyle.Render("halves") + valueStyle.Render(st.ActiveRanges[0].String()+" "+st.ActiveRanges[1].String()) + "\n")
	}
	if m := st.Merge; m != nil {
		s.WriteString(labelStyle.Render("left") + cursorList(m.Left, m.LeftCursor) + "\n")
		s.WriteString(labelStyle.Render("right") + cursorList(m.Right, m.RightCursor) + "\n")
	}

	if chart := PlotArray(st.Array, "values by index"); chart != "" {
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	return s.String()
}

func sortRoleColor(st sorting.Step, i int) lipgloss.Color {
	switch {
	case st.Pivot != nil && *st.Pivot == i:
		return CurrentTheme.Pivot
	case slices.Contains(st.Mutated, i):
		return CurrentTheme.Mutated
	case slices.Contains(st.Compared, i):
		return CurrentTheme.Compared
	case slices.Contains(st.Sorted, i):
		return CurrentTheme.Sorted
	}
	return CurrentTheme.Bar
}

// cursorList prints values with the cursor position bracketed; a cursor past
// the end means the half is used up.
func cursorList(vs []float64, cursor int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		if i == cursor {
			parts[i] = fg(CurrentTheme.Compared).Render("[" + formatValue(v) + "]")
		} else {
			parts[i] = formatValue(v)
		}
	}
	return strings.Join(parts, " ")
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// RenderTraversalStep draws the graph with braille edges, then the state of
// each vertex and the frontier.
func RenderTraversalStep(g *graph.Graph, st traversal.Step) string {
	var s strings.Builder

	s.WriteString(drawGraph(g, st))

	visited := make(map[string]bool, len(st.Visited))
	for _, v := range st.Visited {
		visited[v] = true
	}
	inFrontier := make(map[string]bool, len(st.Frontier))
	for _, v := range st.Frontier {
		inFrontier[v] = true
	}

	labels := make([]string, 0, g.VertexCount())
	for _, v := range g.Vertices() {
		var style lipgloss.Style
		switch {
		case v == st.Current:
			style = fg(CurrentTheme.Current).Bold(true).Underline(true)
		case inFrontier[v]:
			style = fg(CurrentTheme.Frontier)
		case visited[v]:
			style = fg(CurrentTheme.Visited)
		default:
			style = fg(CurrentTheme.Muted)
		}
		labels = append(labels, style.Render(v))
	}
	s.WriteString(labelStyle.Render("vertices") + strings.Join(labels, " ") + "\n")

	s.WriteString(labelStyle.Render("frontier") + valueStyle.Render("["+strings.Join(st.Frontier, ", ")+"]") + "\n")
	s.WriteString(labelStyle.Render("visited") + valueStyle.Render("["+strings.Join(st.Visited, ", ")+"]") + "\n")
	if st.Edge != nil {
		s.WriteString(labelStyle.Render("edge") + fg(CurrentTheme.Compared).Render(st.Edge.String()) + "\n")
	}
	if st.Current != "" {
		s.WriteString(labelStyle.Render("neighbors") + valueStyle.Render(strings.Join(g.Neighbors(st.Current), " ")) + "\n")
	}
	return s.String()
}

func drawGraph(g *graph.Graph, st traversal.Step) string {
	canvas := NewCanvas(36, 12)
	vertices := g.Vertices()
	pos := make(map[string][2]int, len(vertices))
	for i, p := range canvas.CircleLayout(len(vertices)) {
		pos[vertices[i]] = p
	}

	for _, e := range g.Edges() {
		a, b := pos[e.Source], pos[e.Target]
		canvas.DrawLine(a[0], a[1], b[0], b[1])
	}
	for _, v := range vertices {
		p := pos[v]
		label := v
		if v == st.Current {
			label = "*" + v
		}
		canvas.Label(p[0], p[1], label)
	}
	return canvas.String()
}
