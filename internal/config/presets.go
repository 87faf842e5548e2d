package config

import "sort"

// Presets are keyed by input kind ("sort" or "graph"), then by name. Each
// entry changes a few fields of DefaultConfig.
var Presets = map[string]map[string]func(*Config){
	"sort": {
		"reversed": func(c *Config) {
			c.Algorithm = "bubble"
			c.Array = []float64{9, 8, 7, 6, 5, 4, 3, 2, 1}
		},
		"nearly-sorted": func(c *Config) {
			c.Algorithm = "bubble"
			c.Array = []float64{1, 2, 3, 5, 4, 6, 7, 9, 8}
		},
		"duplicates": func(c *Config) {
			c.Algorithm = "merge"
			c.Array = []float64{3, 1, 3, 2, 1, 2, 3}
		},
		"random": func(c *Config) {
			c.Algorithm = "quick"
			c.Array = []float64{38, 27, 43, 3, 9, 82, 10}
		},
		"empty": func(c *Config) {
			c.Algorithm = "quick"
			c.Array = []float64{}
		},
	},
	"graph": {
		"teaching": func(c *Config) {
			c.Algorithm = "bfs"
			c.Graph = GraphConfig{Kind: GraphTeaching, Order: "insertion"}
		},
		"sparse": func(c *Config) {
			c.Algorithm = "dfs"
			c.Seed = 7
			c.Graph = GraphConfig{Kind: GraphRandom, Vertices: 12, EdgeProbability: 0.15, Order: "insertion"}
		},
		"dense": func(c *Config) {
			c.Algorithm = "bfs"
			c.Seed = 7
			c.SpeedMs = 400
			c.Graph = GraphConfig{Kind: GraphRandom, Vertices: 8, EdgeProbability: 0.6, Order: "lexical"}
		},
	},
}

// GetPreset returns a fresh config for the named preset, or nil.
func GetPreset(kind, preset string) *Config {
	kindPresets, ok := Presets[kind]
	if !ok {
		return nil
	}
	apply, ok := kindPresets[preset]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets(kind string) []string {
	kindPresets, ok := Presets[kind]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(kindPresets))
	for name := range kindPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ListKinds() []string {
	kinds := make([]string, 0, len(Presets))
	for k := range Presets {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
