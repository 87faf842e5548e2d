package config

import (
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/algotrace/internal/graph"
	"github.com/san-kum/algotrace/internal/trace"
)

const (
	DefaultAlgorithm = "bfs"
	DefaultSpeedMs   = 1000
	DefaultGraph     = GraphTeaching
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

const (
	GraphTeaching = "teaching"
	GraphRandom   = "random"
)

type Config struct {
	Algorithm string      `yaml:"algorithm"`
	SpeedMs   int         `yaml:"speed_ms"`
	Seed      int64       `yaml:"seed"`
	Graph     GraphConfig `yaml:"graph"`
	Array     []float64   `yaml:"array"`
	Log       LogConfig   `yaml:"log"`
}

type GraphConfig struct {
	Kind            string  `yaml:"kind"`
	Vertices        int     `yaml:"vertices"`
	EdgeProbability float64 `yaml:"edge_probability"`
	// Start overrides the default start vertex of the chosen graph kind.
	Start string `yaml:"start"`
	Order string `yaml:"order"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		SpeedMs:   DefaultSpeedMs,
		Graph: GraphConfig{
			Kind:            DefaultGraph,
			Vertices:        graph.DefaultRandomVertices,
			EdgeProbability: graph.DefaultRandomProbability,
			Order:           graph.OrderInsertion.String(),
		},
		Array: []float64{5, 3, 1, 4, 2},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load reads a YAML file on top of DefaultConfig and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Speed() time.Duration {
	return time.Duration(c.SpeedMs) * time.Millisecond
}

// StartVertex is the configured start, or the conventional one for the
// graph kind.
func (c *Config) StartVertex() string {
	if c.Graph.Start != "" {
		return c.Graph.Start
	}
	if c.Graph.Kind == GraphRandom {
		return graph.RandomStart
	}
	return graph.TeachingStart
}

// Validate checks value ranges. The algorithm name is resolved later by the
// registry.
func (c *Config) Validate() error {
	const op = "config.Validate"

	if c.SpeedMs <= 0 {
		return trace.InvalidArgument(op, "speed_ms must be positive, got %d", c.SpeedMs)
	}
	switch c.Graph.Kind {
	case GraphTeaching:
	case GraphRandom:
		if c.Graph.Vertices < 1 {
			return trace.InvalidArgument(op, "graph.vertices must be at least 1, got %d", c.Graph.Vertices)
		}
		p := c.Graph.EdgeProbability
		if math.IsNaN(p) || p < 0 || p > 1 {
			return trace.InvalidArgument(op, "graph.edge_probability must be in [0,1], got %v", p)
		}
	default:
		return trace.InvalidArgument(op, "unknown graph kind %q", c.Graph.Kind)
	}
	if _, err := graph.ParseOrder(c.Graph.Order); err != nil {
		return err
	}
	for i, v := range c.Array {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return trace.InvalidArgument(op, "array[%d] is not finite", i)
		}
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return trace.InvalidArgument(op, "unknown log format %q", c.Log.Format)
	}
	return nil
}
