package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hillclimb/config"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/hillclimb"
	"github.com/katalvlaran/hillclimb/search"
)

// flags mirrors config.Config for the command line.
type flags struct {
	configPath string
	workers    int
	frontier   string
	render     bool
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var f flags
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "hillclimb [map-file]",
		Short: "Find the fewest climbing steps across a height map",
		Long: `Reads a height map of [a-z] squares with one S (start) and one E (end)
and prints the fewest steps from S to E, then the fewest steps from any
lowest square. Each step may climb at most one level.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f, args)
			if err != nil {
				return err
			}
			return solve(cmd.Context(), cmd, cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "YAML config file")
	fs.IntVarP(&f.workers, "workers", "w", defaults.Workers, "concurrent searches for the scenic query")
	fs.StringVar(&f.frontier, "frontier", defaults.Frontier, "search frontier: dijkstra or bfs")
	fs.BoolVar(&f.render, "render", defaults.Render, "print the map and the shortest route")
	fs.StringVar(&f.logLevel, "log-level", defaults.LogLevel, "log level (trace, debug, info, warn, error)")

	return cmd
}

// resolveConfig layers defaults, the config file and explicitly set flags.
func resolveConfig(cmd *cobra.Command, f flags, args []string) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return config.Config{}, err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fs.Changed("frontier") {
		cfg.Frontier = f.frontier
	}
	if fs.Changed("render") {
		cfg.Render = f.render
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if len(args) == 1 {
		cfg.Input = args[0]
	}

	return cfg, cfg.Validate()
}

func newLogger(w io.Writer, level logrus.Level) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return log
}

// solve loads the map, runs both queries and prints the answers.
func solve(ctx context.Context, cmd *cobra.Command, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := newLogger(cmd.ErrOrStderr(), cfg.Level())
	log.WithFields(cfg.Fields()).Debug("config")

	grid, err := loadGrid(cmd.InOrStdin(), cfg.Input)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"rows":  grid.Rows(),
		"cols":  grid.Cols(),
		"start": grid.Start(),
		"end":   grid.End(),
	}).Debug("map loaded")

	opts, err := cfg.SolverOptions(log)
	if err != nil {
		return err
	}
	solver, err := hillclimb.New(grid, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.Render {
		fmt.Fprint(out, grid)
		fmt.Fprintf(out, "Start: %v, end: %v\n", grid.Start(), grid.End())
		route, err := solver.Route(ctx, grid.Start())
		switch {
		case err == nil:
			fmt.Fprint(out, grid.RenderRoute(route))
		case !errors.Is(err, search.ErrNoPath):
			return err
		}
	}

	shortest, qerr := solver.ShortestPath(ctx)
	if err := report(out, log, "Shortest path", shortest, qerr); err != nil {
		return err
	}
	scenic, qerr := solver.ScenicPath(ctx)
	return report(out, log, "Scenic path", scenic, qerr)
}

// report prints one answer line. An unreachable End square is an answer,
// not a failure; any other error is returned.
func report(out io.Writer, log logrus.FieldLogger, label string, steps int, err error) error {
	switch {
	case err == nil:
		fmt.Fprintf(out, "%s: %d\n", label, steps)
		return nil
	case errors.Is(err, search.ErrNoPath):
		log.WithError(err).Warn(strings.ToLower(label) + " has no route to the end")
		fmt.Fprintf(out, "%s: unreachable\n", label)
		return nil
	default:
		return err
	}
}

// loadGrid parses the map named by input: "" is the built-in sample and
// "-" is stdin.
func loadGrid(stdin io.Reader, input string) (*heightmap.Grid, error) {
	switch input {
	case "":
		return heightmap.Parse(sampleMap)
	case "-":
		return heightmap.ParseReader(stdin)
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("open map: %w", err)
	}
	defer f.Close()

	g, err := heightmap.ParseReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", input, err)
	}
	return g, nil
}
