package search

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for search execution.
var (
	// ErrNoPath is returned when no reachable vertex satisfies the goal.
	ErrNoPath = errors.New("search: no path to goal")

	// ErrNilFunc is returned when the neighbour or goal function is nil.
	ErrNilFunc = errors.New("search: neighbour and goal functions must be non-nil")

	// ErrNegativeCost is returned when an expanded edge has negative cost.
	ErrNegativeCost = errors.New("search: negative edge cost encountered")

	// ErrNonUniformCost is returned by BFS for an edge whose cost is not 1.
	ErrNonUniformCost = errors.New("search: BFS requires unit edge costs")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Cost is the set of numeric types usable as path costs.
type Cost interface {
	constraints.Integer | constraints.Float
}

// Edge is one outgoing move produced by a NeighborFunc.
type Edge[V comparable, C Cost] struct {
	To   V
	Cost C
}

// NeighborFunc expands a vertex into its outgoing edges.
type NeighborFunc[V comparable, C Cost] func(V) []Edge[V, C]

// GoalFunc reports whether a vertex ends the search.
type GoalFunc[V comparable] func(V) bool

// Unit adapts a successor function into a NeighborFunc whose edges all cost 1.
func Unit[V comparable](successors func(V) []V) NeighborFunc[V, int] {
	if successors == nil {
		return nil
	}
	return func(v V) []Edge[V, int] {
		next := successors(v)
		out := make([]Edge[V, int], len(next))
		for i, n := range next {
			out[i] = Edge[V, int]{To: n, Cost: 1}
		}
		return out
	}
}

// Result holds the outcome of a successful search:
//   - Goal: the first vertex satisfying the goal predicate.
//   - Cost: minimum total cost from the start to Goal.
//   - Visited: number of vertices finalised, Goal included.
//   - Path: start … Goal, only when WithReturnPath was given.
type Result[V comparable, C Cost] struct {
	Goal    V
	Cost    C
	Visited int
	Path    []V
}

// Option configures a search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customise a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxCost stops expansion beyond this total cost. +Inf disables the cap.
	MaxCost float64

	// ReturnPath enables predecessor tracking and Result.Path.
	ReturnPath bool

	// OnVisit is called when a vertex is finalised with its total cost.
	// Returning an error aborts the search and propagates that error.
	OnVisit func(v any, cost float64) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no cost cap (MaxCost == +Inf)
//   - no path reconstruction
//   - no-op OnVisit hook
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		MaxCost:    math.Inf(1),
		ReturnPath: false,
		OnVisit:    func(any, float64) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxCost caps the total cost explored.
//
//	c >= 0: vertices costing more than c are never expanded
//	c < 0:  invalid option → ErrOptionViolation
func WithMaxCost(c float64) Option {
	return func(o *Options) {
		if c < 0 || math.IsNaN(c) {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%v)", ErrOptionViolation, c)
			return
		}
		o.MaxCost = c
	}
}

// WithReturnPath enables path reconstruction in the Result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithOnVisit registers a callback run as each vertex is finalised.
func WithOnVisit(fn func(v any, cost float64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// buildOptions applies opts over the defaults and reports the first violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
