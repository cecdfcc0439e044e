package engine

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds the engine's tunables.
type Config struct {
	// Depth is the search horizon in plies.
	Depth int `yaml:"depth"`

	// Parallel dispatches root subtrees across a bounded worker pool.
	Parallel bool `yaml:"parallel"`

	// Workers bounds the pool size. Zero or negative means one worker per
	// logical CPU.
	Workers int `yaml:"workers"`

	// Seed feeds the tie-breaking random source. Zero means a
	// time-derived seed; set it explicitly for reproducible play.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns the configuration used when nothing is specified:
// a three-ply parallel search, one worker per CPU.
func DefaultConfig() Config {
	return Config{
		Depth:    3,
		Parallel: true,
		Workers:  runtime.NumCPU(),
	}
}

func (c Config) validate() error {
	if c.Depth < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidDepth, c.Depth)
	}
	return nil
}

// workerCount resolves the effective pool size.
func (c Config) workerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

// LoadConfig reads a YAML config file. Missing fields keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
