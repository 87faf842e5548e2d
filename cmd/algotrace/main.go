package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/san-kum/algotrace/internal/config"
	"github.com/san-kum/algotrace/internal/experiment"
	"github.com/san-kum/algotrace/internal/export"
	"github.com/san-kum/algotrace/internal/graph"
	"github.com/san-kum/algotrace/internal/logging"
	"github.com/san-kum/algotrace/internal/playback"
	"github.com/san-kum/algotrace/internal/sorting"
	"github.com/san-kum/algotrace/internal/trace"
	"github.com/san-kum/algotrace/internal/traversal"
	"github.com/san-kum/algotrace/internal/viz"
)

var (
	configFile string
	preset     string
	logLevel   string
	logFormat  string
	seed       int64
	speedMs    int
	// graph input
	graphKind string
	vertices  int
	prob      float64
	start     string
	order     string
	// output
	plot   bool
	format string
	step   int
	out    string
	theme  string

	log zerolog.Logger
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "algotrace",
		Short:        "step-by-step traces of graph traversals and sorts",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			log, err = logging.Setup(config.LogConfig{Level: logLevel, Format: logFormat}, os.Stderr)
			return err
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration (kind/name or name)")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level")
	pf.StringVar(&logFormat, "log-format", config.DefaultLogFormat, "log format (console, json)")
	pf.Int64Var(&seed, "seed", 0, "random seed for random graphs")
	pf.IntVar(&speedMs, "speed", config.DefaultSpeedMs, "autoplay delay in milliseconds")

	graphCmd := &cobra.Command{
		Use:   "graph [teaching|random]",
		Short: "print a graph with neighbor lists and distances",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showGraph,
	}
	graphFlags(graphCmd)

	bfsCmd := &cobra.Command{
		Use:   "bfs",
		Short: "trace breadth-first search",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return traceTraversal(cmd, "bfs") },
	}
	graphFlags(bfsCmd)

	dfsCmd := &cobra.Command{
		Use:   "dfs",
		Short: "trace depth-first search",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return traceTraversal(cmd, "dfs") },
	}
	graphFlags(dfsCmd)

	sortCmd := &cobra.Command{
		Use:   "sort [bubble|merge|quick] [values...]",
		Short: "trace a sort",
		Args:  cobra.MinimumNArgs(1),
		RunE:  traceSort,
	}
	sortCmd.Flags().BoolVar(&plot, "plot", false, "plot the sorted array")

	playCmd := &cobra.Command{
		Use:   "play [algorithm] [values...]",
		Short: "step through a trace in the terminal player",
		RunE:  play,
	}
	graphFlags(playCmd)
	playCmd.Flags().StringVar(&theme, "theme", "cyberpunk", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	compareCmd := &cobra.Command{
		Use:   "compare [values...]",
		Short: "run every sort on the same input, or every traversal with --graph",
		RunE:  compare,
	}
	graphFlags(compareCmd)
	compareCmd.Flags().BoolVar(&plot, "plot", false, "plot comparisons per algorithm")

	exportCmd := &cobra.Command{
		Use:   "export [algorithm] [values...]",
		Short: "write a trace as json, csv or svg",
		RunE:  exportTrace,
	}
	graphFlags(exportCmd)
	exportCmd.Flags().StringVar(&format, "format", "json", "output format (json, csv, svg)")
	exportCmd.Flags().IntVar(&step, "step", -1, "step drawn by svg export (default last)")
	exportCmd.Flags().StringVarP(&out, "out", "o", "-", "output file, - for stdout")

	presetsCmd := &cobra.Command{
		Use:   "presets [sort|graph]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := config.ListKinds()
			if len(args) > 0 {
				kinds = args
			}
			for _, kind := range kinds {
				presets := config.ListPresets(kind)
				if len(presets) == 0 {
					fmt.Printf("no presets for kind: %s\n", kind)
					continue
				}
				fmt.Printf("presets for %s:\n", kind)
				for _, p := range presets {
					fmt.Printf("  %s\n", p)
				}
			}
			return nil
		},
	}

	rootCmd.AddCommand(graphCmd, bfsCmd, dfsCmd, sortCmd, playCmd, compareCmd, exportCmd, presetsCmd)
	return rootCmd
}

func graphFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&graphKind, "graph", config.GraphTeaching, "graph kind (teaching, random)")
	cmd.Flags().IntVar(&vertices, "vertices", graph.DefaultRandomVertices, "vertex count for random graphs")
	cmd.Flags().Float64Var(&prob, "prob", graph.DefaultRandomProbability, "edge probability for random graphs")
	cmd.Flags().StringVar(&start, "start", "", "start vertex (default A or n0)")
	cmd.Flags().StringVar(&order, "order", "insertion", "neighbor order (insertion, lexical)")
}

// loadConfig starts from a preset or config file (the file wins when both
// are given) and applies only the flags set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p, err := findPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("speed") {
		cfg.SpeedMs = speedMs
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = logFormat
	}
	if flags.Lookup("graph") != nil {
		if flags.Changed("graph") {
			cfg.Graph.Kind = graphKind
		}
		if flags.Changed("vertices") {
			cfg.Graph.Vertices = vertices
		}
		if flags.Changed("prob") {
			cfg.Graph.EdgeProbability = prob
		}
		if flags.Changed("start") {
			cfg.Graph.Start = start
		}
		if flags.Changed("order") {
			cfg.Graph.Order = order
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var err error
	if log, err = logging.Setup(cfg.Log, os.Stderr); err != nil {
		return nil, err
	}
	return cfg, nil
}

func findPreset(name string) (*config.Config, error) {
	if kind, n, ok := strings.Cut(name, "/"); ok {
		if cfg := config.GetPreset(kind, n); cfg != nil {
			return cfg, nil
		}
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets(kind))
	}
	for _, kind := range config.ListKinds() {
		if cfg := config.GetPreset(kind, name); cfg != nil {
			return cfg, nil
		}
	}
	return nil, fmt.Errorf("unknown preset: %s", name)
}

// applyArgs takes the algorithm name and any trailing values from args.
func applyArgs(cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return nil
	}
	cfg.Algorithm = args[0]
	if len(args) > 1 {
		values, err := sorting.ParseValues(strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		cfg.Array = values
	}
	return nil
}

func run(cfg *config.Config) (*experiment.Result, error) {
	res, err := experiment.New(cfg, experiment.NewRegistry()).Run(context.Background())
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("id", res.ID).
		Str("algorithm", res.Algorithm).
		Int("steps", res.Steps()).
		Dur("elapsed", res.Elapsed).
		Msg("trace complete")
	return res, nil
}

func showGraph(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Graph.Kind = args[0]
	}

	g, _, err := experiment.BuildGraph(cfg.Graph, cfg.Seed)
	if err != nil {
		return err
	}
	from := cfg.StartVertex()

	fmt.Printf("%s graph: %d vertices, %d edges, %s order\n\n", cfg.Graph.Kind, g.VertexCount(), g.EdgeCount(), g.Order())
	return printGraph(os.Stdout, g, from)
}

// printGraph writes one row per vertex with its hop distance from the start.
func printGraph(out io.Writer, g *graph.Graph, from string) error {
	dist := g.Distances(from)
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "vertex\tdegree\tdistance from %s\tneighbors\n", from)
	for _, v := range g.Vertices() {
		d := "-"
		if n, ok := dist[v]; ok {
			d = fmt.Sprint(n)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", v, g.Degree(v), d, strings.Join(g.Neighbors(v), " "))
	}
	return w.Flush()
}

func traceTraversal(cmd *cobra.Command, algorithm string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg.Algorithm = algorithm

	res, err := run(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("%s from %s (%d steps)\n\n", algorithm, res.Start, res.Steps())
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "step\tphase\tcurrent\tfrontier\tvisited\tdescription\n")
	for i, st := range res.Traversal.All() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			i, st.Phase, st.Current,
			strings.Join(st.Frontier, " "),
			strings.Join(st.Visited, " "),
			st.Describe())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	printMetrics(res.Metrics)
	return nil
}

func traceSort(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyArgs(cfg, args); err != nil {
		return err
	}

	res, err := run(cfg)
	if err != nil {
		return err
	}
	if res.Family != experiment.FamilySort {
		return fmt.Errorf("%s is not a sort", res.Algorithm)
	}

	fmt.Printf("%s sort of %v (%d steps)\n\n", res.Algorithm, res.Input, res.Steps())
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "step\tkind\tarray\tdescription\n")
	for i, st := range res.Sort.All() {
		fmt.Fprintf(w, "%d\t%s\t%v\t%s\n", i, st.Kind, st.Array, st.Describe())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	printMetrics(res.Metrics)

	if plot {
		if last, ok := res.Sort.Last(); ok {
			if chart := viz.PlotArray(last.Array, "sorted values"); chart != "" {
				fmt.Println()
				fmt.Println(chart)
			}
		}
	}
	return nil
}

func printMetrics(m map[string]float64) {
	fmt.Println()
	for _, name := range sortedNames(m) {
		fmt.Printf("%-14s %g\n", name, m[name])
	}
}

// compare runs every sort on the input values. Passing --graph switches to
// running every traversal over the configured graph instead.
func compare(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("graph") {
		if len(args) > 0 {
			return fmt.Errorf("compare --graph takes no values")
		}
		return compareTraversals(cfg)
	}
	return compareSorts(cfg, args)
}

func compareSorts(cfg *config.Config, args []string) error {
	input := cfg.Array
	if len(args) > 0 {
		var err error
		input, err = sorting.ParseValues(strings.Join(args, " "))
		if err != nil {
			return err
		}
	}

	reg := experiment.NewRegistry()
	names := reg.ListSorts()
	results, err := experiment.Compare(context.Background(), reg, names, input)
	if err != nil {
		return err
	}

	fmt.Printf("comparing sorts on %v\n\n", input)
	if err := printComparisons(os.Stdout, results); err != nil {
		return err
	}

	if plot {
		comparisons := make([]float64, len(results))
		for i, r := range results {
			comparisons[i] = r.Metrics["comparisons"]
		}
		if chart := viz.PlotArray(comparisons, "comparisons: "+strings.Join(names, ", ")); chart != "" {
			fmt.Println()
			fmt.Println(chart)
		}
	}
	return nil
}

func compareTraversals(cfg *config.Config) error {
	g, _, err := experiment.BuildGraph(cfg.Graph, cfg.Seed)
	if err != nil {
		return err
	}
	from := cfg.StartVertex()

	reg := experiment.NewRegistry()
	names := reg.ListTraversals()
	results, err := experiment.CompareTraversals(context.Background(), reg, names, g, from)
	if err != nil {
		return err
	}

	fmt.Printf("comparing traversals on %s graph from %s\n\n", cfg.Graph.Kind, from)
	if err := printComparisons(os.Stdout, results); err != nil {
		return err
	}

	if plot {
		frontier := make([]float64, len(results))
		for i, r := range results {
			frontier[i] = r.Metrics["peak_frontier"]
		}
		if chart := viz.PlotArray(frontier, "peak frontier: "+strings.Join(names, ", ")); chart != "" {
			fmt.Println()
			fmt.Println(chart)
		}
	}
	return nil
}

// printComparisons writes one row per algorithm with a column per metric.
func printComparisons(out io.Writer, results []experiment.Comparison) error {
	var names []string
	if len(results) > 0 {
		names = sortedNames(results[0].Metrics)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "algorithm\tsteps\t%s\ttime_ms\n", strings.Join(names, "\t"))
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d", r.Algorithm, r.Steps)
		for _, name := range names {
			fmt.Fprintf(w, "\t%g", r.Metrics[name])
		}
		fmt.Fprintf(w, "\t%.3f\n", float64(r.Elapsed.Microseconds())/1000)
	}
	return w.Flush()
}

func play(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyArgs(cfg, args); err != nil {
		return err
	}
	viz.SetTheme(theme)

	res, err := run(cfg)
	if err != nil {
		return err
	}

	opts := []playback.Option{
		playback.WithSpeed(cfg.Speed()),
		playback.WithLogger(log),
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	switch res.Family {
	case experiment.FamilySort:
		ctrl := playback.New[sorting.Step](opts...)
		ctrl.Attach(res.Sort)
		tracer, err := experiment.NewRegistry().Sort(res.Algorithm)
		if err != nil {
			return err
		}
		input := res.Input
		return viz.Run(viz.PlayerConfig[sorting.Step]{
			Title:      res.Algorithm + " sort",
			Controller: ctrl,
			Render:     viz.RenderSortStep,
			Describe:   sorting.Step.Describe,
			Regenerate: func() (trace.Sequence[sorting.Step], error) {
				rng.Shuffle(len(input), func(i, j int) { input[i], input[j] = input[j], input[i] })
				return tracer(input)
			},
		})

	default:
		ctrl := playback.New[traversal.Step](opts...)
		ctrl.Attach(res.Traversal)
		tracer, err := experiment.NewRegistry().Traversal(res.Algorithm)
		if err != nil {
			return err
		}
		g := res.Graph
		return viz.Run(viz.PlayerConfig[traversal.Step]{
			Title:      res.Algorithm + " on " + cfg.Graph.Kind + " graph",
			Controller: ctrl,
			Render:     func(st traversal.Step) string { return viz.RenderTraversalStep(g, st) },
			Describe:   traversal.Step.Describe,
			Regenerate: func() (trace.Sequence[traversal.Step], error) {
				if cfg.Graph.Kind != config.GraphRandom {
					return tracer(g, res.Start)
				}
				next, first, err := experiment.BuildGraph(cfg.Graph, rng.Int63())
				if err != nil {
					return trace.Sequence[traversal.Step]{}, err
				}
				g = next
				return tracer(g, startIn(g, cfg, first))
			},
		})
	}
}

// startIn is the configured start vertex when g has it, otherwise fallback.
func startIn(g *graph.Graph, cfg *config.Config, fallback string) string {
	if from := cfg.StartVertex(); g.HasVertex(from) {
		return from
	}
	return fallback
}

func exportTrace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyArgs(cfg, args); err != nil {
		return err
	}

	res, err := run(cfg)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		return export.ExportJSON(out, export.NewDocument(res))
	case "csv":
		return writeOutput(func(f *os.File) error {
			if res.Family == experiment.FamilySort {
				return export.WriteSortCSV(f, res.Sort)
			}
			return export.WriteTraversalCSV(f, res.Traversal)
		})
	case "svg":
		var svg string
		if res.Family == experiment.FamilySort {
			i := step
			if i < 0 {
				i = res.Sort.Len() - 1
			}
			st, ok := res.Sort.At(i)
			if !ok {
				return fmt.Errorf("step %d out of range [0, %d)", i, res.Sort.Len())
			}
			svg = export.StepToSVG(st, 640, 320)
		} else {
			svg = export.FrontierToSVG(res.Traversal, 640, 320, "#00ff00")
		}
		return writeOutput(func(f *os.File) error {
			_, err := f.WriteString(svg + "\n")
			return err
		})
	}
	return fmt.Errorf("unknown format: %s", format)
}

func writeOutput(write func(*os.File) error) error {
	if out == "" || out == "-" {
		return write(os.Stdout)
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := write(f); err != nil {
		return err
	}
	log.Info().Str("path", out).Str("format", format).Msg("trace exported")
	return nil
}
