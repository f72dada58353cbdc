package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cpop/internal/config"
)

// app carries per-invocation state shared by the subcommands.
type app struct {
	cfgFile string
	loader  *config.Loader
	cfg     *config.Config
	log     *slog.Logger
}

// flagBindings maps configuration keys to the flags that may override them.
// A flag only takes part when the running command defines it.
var flagBindings = []struct{ key, flag string }{
	{"log_level", "log-level"},
	{"verbose", "verbose"},
	{"format", "log-format"},
	{"dataset.kind", "kind"},
	{"dataset.n", "points"},
	{"dataset.seed", "seed"},
	{"bench.sizes", "sizes"},
	{"bench.repeats", "repeats"},
	{"bench.brute_limit", "brute-limit"},
	{"bench.tolerance", "tolerance"},
	{"render.dir", "plot-dir"},
}

// NewRootCommand builds the cpop command tree. Each call returns an
// independent tree with its own configuration loader.
func NewRootCommand() *cobra.Command {
	a := &app{loader: config.NewLoader()}

	root := &cobra.Command{
		Use:   "cpop",
		Short: "Closest pair of points in the plane",
		Long: `cpop finds the two closest points of a planar point set.

It runs an O(n log n) divide-and-conquer solver, an O(n²) brute-force
reference, or both, on a points file, the built-in colored sample, or a
generated dataset, and can time the two against each other.

Examples:
  cpop solve --sample --by-color
  cpop solve points.yaml --algorithm both --plot pair.png
  cpop solve --kind clusters --points 5000 --trace
  cpop bench --sizes 1000,10000,100000 --plot-dir plots`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cpop version dev")
				return nil
			}
			return cmd.Help()
		},
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is search in ., $XDG_CONFIG_HOME/cpop, /etc/cpop)")
	pf.BoolP("verbose", "v", false, "verbose output (equivalent to --log-level=debug)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "text", "log format (text, json)")
	pf.Int64("seed", 1, "seed for generated datasets")
	pf.String("kind", "uniform", "generated dataset kind (uniform, uniform-int, clusters, identical, line)")
	root.Flags().Bool("version", false, "print version information and exit")

	root.AddCommand(newSolveCommand(a), newBenchCommand(a), newConfigCommand(a))

	return root
}

// setup loads the configuration and installs the process logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	for _, b := range flagBindings {
		if f := cmd.Flags().Lookup(b.flag); f != nil {
			if err := a.loader.BindFlag(b.key, f); err != nil {
				return err
			}
		}
	}

	cfg, err := a.loader.LoadWithFile(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = newLogger(cmd.ErrOrStderr(), cfg)
	slog.SetDefault(a.log)

	return nil
}

// newLogger builds the slog logger described by cfg, writing to w.
func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	var level slog.Level
	if cfg.Verbose {
		level = slog.LevelDebug
	} else {
		switch cfg.LogLevel {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			level = slog.LevelInfo
		}
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// Execute runs the command tree and exits non-zero on failure.
// Interrupts cancel the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
