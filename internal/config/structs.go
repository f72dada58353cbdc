package config

// Config is the complete cpop CLI configuration. It is loaded from defaults,
// an optional cpop.yaml, CPOP_* environment variables and command-line flags,
// in increasing order of precedence.
type Config struct {
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`
	// Format selects the log handler: "text" or "json".
	Format string `mapstructure:"format" yaml:"format" json:"format"`

	Dataset DatasetConfig `mapstructure:"dataset" yaml:"dataset" json:"dataset"`
	Bench   BenchConfig   `mapstructure:"bench" yaml:"bench" json:"bench"`
	Render  RenderConfig  `mapstructure:"render" yaml:"render" json:"render"`
}

// DatasetConfig selects the generated point set used when no input file is given.
type DatasetConfig struct {
	Kind string  `mapstructure:"kind" yaml:"kind" json:"kind"`
	N    int     `mapstructure:"n" yaml:"n" json:"n"`
	Seed int64   `mapstructure:"seed" yaml:"seed" json:"seed"`
	MinX float64 `mapstructure:"min_x" yaml:"min_x" json:"min_x"`
	MaxX float64 `mapstructure:"max_x" yaml:"max_x" json:"max_x"`
	MinY float64 `mapstructure:"min_y" yaml:"min_y" json:"min_y"`
	MaxY float64 `mapstructure:"max_y" yaml:"max_y" json:"max_y"`
}

// BenchConfig drives the bench command.
type BenchConfig struct {
	Sizes      []int   `mapstructure:"sizes" yaml:"sizes" json:"sizes"`
	Repeats    int     `mapstructure:"repeats" yaml:"repeats" json:"repeats"`
	BruteLimit int     `mapstructure:"brute_limit" yaml:"brute_limit" json:"brute_limit"`
	Tolerance  float64 `mapstructure:"tolerance" yaml:"tolerance" json:"tolerance"`
}

// RenderConfig controls figure output. An empty Dir disables figures.
// Width and Height are in inches.
type RenderConfig struct {
	Dir    string  `mapstructure:"dir" yaml:"dir" json:"dir"`
	Width  float64 `mapstructure:"width" yaml:"width" json:"width"`
	Height float64 `mapstructure:"height" yaml:"height" json:"height"`
}
