package hillclimb

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/search"
)

// Solver runs route queries against one immutable grid.
// It is safe for concurrent use.
type Solver struct {
	grid *heightmap.Grid
	opts Options
	next search.NeighborFunc[heightmap.Position, int]
}

// New builds a Solver for g. Returns ErrNilGrid or ErrOptionViolation.
func New(g *heightmap.Grid, opts ...Option) (*Solver, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s := &Solver{grid: g, opts: o}
	s.next = search.Unit(func(p heightmap.Position) []heightmap.Position {
		return g.Successors(p, o.Rule)
	})
	return s, nil
}

// Grid returns the grid the solver queries.
func (s *Solver) Grid() *heightmap.Grid { return s.grid }

// ShortestPath returns the fewest steps from the Start square to the End
// square, or search.ErrNoPath if the End square cannot be reached.
func (s *Solver) ShortestPath(ctx context.Context) (int, error) {
	return s.From(ctx, s.grid.Start())
}

// From returns the fewest steps from start to the End square.
// An unreachable End square yields search.ErrNoPath.
func (s *Solver) From(ctx context.Context, start heightmap.Position) (int, error) {
	res, err := s.run(ctx, start)
	if err != nil {
		return 0, err
	}
	return res.Cost, nil
}

// Route returns one fewest-step route from start to the End square,
// both endpoints included.
func (s *Solver) Route(ctx context.Context, start heightmap.Position) ([]heightmap.Position, error) {
	res, err := s.run(ctx, start, search.WithReturnPath())
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}

// Candidates lists every square with the lowest effective elevation, in
// row-major order. The Start square is included.
func (s *Solver) Candidates() []heightmap.Position {
	return s.grid.Find(heightmap.IsLowest)
}

// ScenicPath returns the fewest steps to the End square from any candidate
// square. Unreachable candidates are excluded; if none reaches the End
// square the error wraps search.ErrNoPath. Any other failure (for example
// cancellation) aborts the remaining searches.
func (s *Solver) ScenicPath(ctx context.Context) (int, error) {
	cands := s.Candidates()
	log := s.opts.Logger.WithFields(logrus.Fields{
		"candidates": len(cands),
		"workers":    s.opts.Workers,
		"frontier":   s.opts.Frontier,
	})
	began := time.Now()

	var (
		mu        sync.Mutex
		best      int
		found     bool
		reachable int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)
	for _, c := range cands {
		c := c
		g.Go(func() error {
			cost, err := s.From(gctx, c)
			if errors.Is(err, search.ErrNoPath) {
				log.WithField("start", c).Debug("candidate cannot reach the end")
				return nil
			}
			if err != nil {
				return fmt.Errorf("hillclimb: search from %v: %w", c, err)
			}

			mu.Lock()
			defer mu.Unlock()
			reachable++
			if !found || cost < best {
				best, found = cost, true
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	if !found {
		return 0, fmt.Errorf("%w: none of %d lowest squares reaches the end", search.ErrNoPath, len(cands))
	}

	log.WithFields(logrus.Fields{
		"reachable": reachable,
		"best":      best,
		"elapsed":   time.Since(began),
	}).Debug("scenic path resolved")
	return best, nil
}

// run executes one search from start with the configured frontier.
func (s *Solver) run(ctx context.Context, start heightmap.Position, extra ...search.Option) (*search.Result[heightmap.Position, int], error) {
	if !s.grid.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, start)
	}
	end := s.grid.End()
	goal := func(p heightmap.Position) bool { return p == end }
	opts := append([]search.Option{search.WithContext(ctx)}, extra...)

	var (
		res *search.Result[heightmap.Position, int]
		err error
	)
	switch s.opts.Frontier {
	case FrontierBFS:
		res, err = search.BFS(start, s.next, goal, opts...)
	default:
		res, err = search.Dijkstra(start, s.next, goal, opts...)
	}
	if err != nil {
		return nil, err
	}

	s.opts.Logger.WithFields(logrus.Fields{
		"start":   start,
		"cost":    res.Cost,
		"visited": res.Visited,
	}).Trace("route found")
	return res, nil
}
