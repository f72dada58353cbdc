package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the base name for configuration files (without extension).
	ConfigFileName = "cpop"

	// EnvPrefix is the prefix for environment variables.
	EnvPrefix = "CPOP"
)

// Loader handles loading configuration from various sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader around a fresh viper instance, so separate
// loaders never share flag bindings.
func NewLoader() *Loader {
	return &Loader{v: viper.New()}
}

// Load reads defaults, the first cpop.yaml found on the search paths, and
// the environment, then validates the result. A missing file is not an error.
func (l *Loader) Load() (*Config, error) {
	l.v.SetConfigName(ConfigFileName)
	l.v.SetConfigType("yaml")
	for _, p := range SearchPaths() {
		l.v.AddConfigPath(p)
	}
	l.setupEnvironmentVariables()
	l.setDefaults()

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return l.unmarshal()
}

// LoadWithFile loads configuration from a specific file path. An empty path
// falls back to Load.
func (l *Loader) LoadWithFile(configFile string) (*Config, error) {
	if configFile == "" {
		return l.Load()
	}
	if _, err := os.Stat(configFile); err != nil {
		return nil, fmt.Errorf("config file %s: %w", configFile, err)
	}

	l.v.SetConfigFile(configFile)
	l.setupEnvironmentVariables()
	l.setDefaults()

	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
	}

	return l.unmarshal()
}

func (l *Loader) unmarshal() (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// BindFlag binds a command-line flag to a configuration key. Bound flags
// take precedence over file and environment values once they are set.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("bind %s: flag not defined", key)
	}

	return l.v.BindPFlag(key, flag)
}

// ConfigFileUsed returns the path of the config file read, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// WriteDefault writes the built-in defaults to filename.
func (l *Loader) WriteDefault(filename string) error {
	l.setDefaults()
	if filename == "" {
		filename = ConfigFileName + ".yaml"
	}

	return l.v.WriteConfigAs(filename)
}

// SearchPaths returns the directories searched for cpop.yaml, in order.
func SearchPaths() []string {
	paths := []string{"."}
	if configDir, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok {
		paths = append(paths, filepath.Join(configDir, "cpop"))
	} else if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "cpop"))
	}

	return append(paths, "/etc/cpop")
}

// setupEnvironmentVariables maps dataset.n to CPOP_DATASET_N and so on.
func (l *Loader) setupEnvironmentVariables() {
	l.v.SetEnvPrefix(EnvPrefix)
	l.v.AutomaticEnv()
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
}

// setDefaults registers every key so that environment overrides reach Unmarshal.
func (l *Loader) setDefaults() {
	d := DefaultConfig()

	l.v.SetDefault("log_level", d.LogLevel)
	l.v.SetDefault("verbose", d.Verbose)
	l.v.SetDefault("format", d.Format)

	l.v.SetDefault("dataset.kind", d.Dataset.Kind)
	l.v.SetDefault("dataset.n", d.Dataset.N)
	l.v.SetDefault("dataset.seed", d.Dataset.Seed)
	l.v.SetDefault("dataset.min_x", d.Dataset.MinX)
	l.v.SetDefault("dataset.max_x", d.Dataset.MaxX)
	l.v.SetDefault("dataset.min_y", d.Dataset.MinY)
	l.v.SetDefault("dataset.max_y", d.Dataset.MaxY)

	l.v.SetDefault("bench.sizes", d.Bench.Sizes)
	l.v.SetDefault("bench.repeats", d.Bench.Repeats)
	l.v.SetDefault("bench.brute_limit", d.Bench.BruteLimit)
	l.v.SetDefault("bench.tolerance", d.Bench.Tolerance)

	l.v.SetDefault("render.dir", d.Render.Dir)
	l.v.SetDefault("render.width", d.Render.Width)
	l.v.SetDefault("render.height", d.Render.Height)
}
