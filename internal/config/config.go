package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/cpop/benchmark"
	"github.com/katalvlaran/cpop/dataset"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	box := dataset.DefaultBox()

	return Config{
		LogLevel: "info",
		Verbose:  false,
		Format:   "text",
		Dataset: DatasetConfig{
			Kind: string(dataset.KindUniform),
			N:    1000,
			Seed: 1,
			MinX: box.MinX,
			MaxX: box.MaxX,
			MinY: box.MinY,
			MaxY: box.MaxY,
		},
		Bench: BenchConfig{
			Sizes:      []int{1000, 10000, 100000},
			Repeats:    3,
			BruteLimit: 20000,
			Tolerance:  benchmark.DefaultTolerance,
		},
		Render: RenderConfig{
			Dir:    "",
			Width:  8,
			Height: 8,
		},
	}
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if !slices.Contains(logLevels, c.LogLevel) {
		return fmt.Errorf("%w: log_level %q (want one of %v)", ErrInvalidConfig, c.LogLevel, logLevels)
	}
	if !slices.Contains(logFormats, c.Format) {
		return fmt.Errorf("%w: format %q (want one of %v)", ErrInvalidConfig, c.Format, logFormats)
	}

	if !slices.Contains(dataset.Kinds(), dataset.Kind(c.Dataset.Kind)) {
		return fmt.Errorf("%w: dataset.kind %q", ErrInvalidConfig, c.Dataset.Kind)
	}
	if c.Dataset.N < 0 {
		return fmt.Errorf("%w: dataset.n must be non-negative, got %d", ErrInvalidConfig, c.Dataset.N)
	}
	if err := c.Dataset.Box().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if len(c.Bench.Sizes) == 0 {
		return fmt.Errorf("%w: bench.sizes is empty", ErrInvalidConfig)
	}
	for _, n := range c.Bench.Sizes {
		if n < 2 {
			return fmt.Errorf("%w: bench.sizes entries must be >= 2, got %d", ErrInvalidConfig, n)
		}
	}
	if c.Bench.Repeats < 1 {
		return fmt.Errorf("%w: bench.repeats must be positive, got %d", ErrInvalidConfig, c.Bench.Repeats)
	}
	if c.Bench.BruteLimit < 0 {
		return fmt.Errorf("%w: bench.brute_limit must be non-negative, got %d", ErrInvalidConfig, c.Bench.BruteLimit)
	}
	if c.Bench.Tolerance < 0 {
		return fmt.Errorf("%w: bench.tolerance must be non-negative, got %v", ErrInvalidConfig, c.Bench.Tolerance)
	}

	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("%w: render size %vx%v", ErrInvalidConfig, c.Render.Width, c.Render.Height)
	}

	return nil
}

// Box returns the dataset bounds.
func (d DatasetConfig) Box() dataset.Box {
	return dataset.Box{MinX: d.MinX, MaxX: d.MaxX, MinY: d.MinY, MaxY: d.MaxY}
}

// BenchOptions converts the bench section into benchmark options.
func (c *Config) BenchOptions() []benchmark.Option {
	return []benchmark.Option{
		benchmark.WithRepeats(c.Bench.Repeats),
		benchmark.WithBruteLimit(c.Bench.BruteLimit),
		benchmark.WithTolerance(c.Bench.Tolerance),
		benchmark.WithDataset(dataset.Kind(c.Dataset.Kind), c.Dataset.Box(), c.Dataset.Seed),
	}
}
