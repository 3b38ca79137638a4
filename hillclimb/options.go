package hillclimb

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// Sentinel errors for solver construction and queries.
var (
	// ErrNilGrid is returned when New receives a nil grid.
	ErrNilGrid = errors.New("hillclimb: grid is nil")

	// ErrOutOfBounds is returned when a query starts outside the grid.
	ErrOutOfBounds = errors.New("hillclimb: start position out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("hillclimb: invalid option supplied")
)

// Frontier selects the search strategy used for every query.
type Frontier int

const (
	// FrontierDijkstra uses a min-heap frontier (search.Dijkstra).
	FrontierDijkstra Frontier = iota
	// FrontierBFS uses a FIFO frontier (search.BFS); valid because every step costs 1.
	FrontierBFS
)

// String returns the lower-case strategy name.
func (f Frontier) String() string {
	switch f {
	case FrontierDijkstra:
		return "dijkstra"
	case FrontierBFS:
		return "bfs"
	default:
		return fmt.Sprintf("Frontier(%d)", int(f))
	}
}

// ParseFrontier maps "dijkstra" or "bfs" (any case) to a Frontier.
func ParseFrontier(s string) (Frontier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dijkstra", "":
		return FrontierDijkstra, nil
	case "bfs":
		return FrontierBFS, nil
	default:
		return 0, fmt.Errorf("%w: unknown frontier %q", ErrOptionViolation, s)
	}
}

// Option configures a Solver via functional arguments.
type Option func(*Options)

// Options holds the tunables of a Solver.
type Options struct {
	// Workers bounds concurrent candidate searches in ScenicPath.
	Workers int

	// Frontier selects Dijkstra or BFS.
	Frontier Frontier

	// Logger receives per-query diagnostics.
	Logger logrus.FieldLogger

	// Rule decides which moves are legal; heightmap.CanStep by default.
	Rule heightmap.StepRule

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Workers = GOMAXPROCS
//   - Frontier = FrontierDijkstra
//   - a logger that discards everything
//   - Rule = heightmap.CanStep
func DefaultOptions() Options {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	return Options{
		Workers:  runtime.GOMAXPROCS(0),
		Frontier: FrontierDijkstra,
		Logger:   quiet,
		Rule:     heightmap.CanStep,
	}
}

// WithWorkers bounds ScenicPath concurrency; n must be at least 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithFrontier selects the search strategy.
func WithFrontier(f Frontier) Option {
	return func(o *Options) {
		if f != FrontierDijkstra && f != FrontierBFS {
			o.err = fmt.Errorf("%w: unknown frontier %v", ErrOptionViolation, f)
			return
		}
		o.Frontier = f
	}
}

// WithLogger routes diagnostics to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithStepRule replaces the climbing rule. The rule must be pure.
func WithStepRule(rule heightmap.StepRule) Option {
	return func(o *Options) {
		if rule != nil {
			o.Rule = rule
		}
	}
}
