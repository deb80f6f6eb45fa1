package astar

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// neighborOffsets enumerates the 8 king-move offsets in a fixed order
// (N, NE, E, SE, S, SW, W, NW). The order is part of the determinism
// contract: changing it reorders equal-priority discoveries and thereby
// the tie-broken route.
var neighborOffsets = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Search plans a route from start to goal on g.
//
// Returns:
//
//   - *Route on success: the ordered coordinates from start to goal
//     inclusive, plus the obstacle cells the route crosses.
//   - ErrNoRoute (strict mode) if the goal is unreachable.
//   - ErrNilGrid / ErrOutOfBounds / ErrBlockedEndpoint / ErrBadMode for
//     invalid input, rejected before any expansion.
//
// The search is deterministic: identical grid, endpoints, and options
// always yield the identical coordinate sequence.
//
// Complexity: O(N² log N²) time, O(N²) memory in strict mode; relaxed
// mode adds a factor of the optimal route's obstacle count in the worst
// case due to node re-opening.
func Search(g *grid.Grid, start, goal grid.Coord, opts ...Option) (*Route, error) {
	r, err := newRunner(g, start, goal, opts...)
	if err != nil {
		return nil, err
	}
	for !r.done {
		if err = r.step(); err != nil {
			return nil, err
		}
	}
	if !r.found {
		return nil, fmt.Errorf("%w: %s mode, start=%v goal=%v", ErrNoRoute, r.opts.Mode, start, goal)
	}

	return r.route()
}

// runner holds the mutable state of one search run.
type runner struct {
	grid  *grid.Grid
	start grid.Coord
	goal  grid.Coord
	opts  Options

	arena    []node   // one record per cell, row-major
	front    frontier // the open set
	startIdx int
	goalIdx  int

	expansions int
	current    grid.Coord // most recently expanded cell
	expanded   bool       // current is valid
	done       bool
	found      bool
}

// newRunner validates inputs and prepares the node arena and frontier.
//
// Validation order: options, nil grid, mode, bounds, strict-mode blocked
// endpoints. In relaxed mode an impassable start is legal and counts as
// one crossed obstacle from the outset.
func newRunner(g *grid.Grid, start, goal grid.Coord, opts ...Option) (*runner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGrid
	}
	if cfg.Mode != Strict && cfg.Mode != Relaxed {
		return nil, fmt.Errorf("%w: %d", ErrBadMode, int(cfg.Mode))
	}
	if !g.InBounds(start) || !g.InBounds(goal) {
		return nil, fmt.Errorf("%w: start=%v goal=%v size=%d", ErrOutOfBounds, start, goal, g.Size())
	}
	if cfg.Mode == Strict && (!g.Passable(start) || !g.Passable(goal)) {
		return nil, fmt.Errorf("%w: start=%v goal=%v", ErrBlockedEndpoint, start, goal)
	}

	r := &runner{
		grid:     g,
		start:    start,
		goal:     goal,
		opts:     cfg,
		startIdx: g.Index(start),
		goalIdx:  g.Index(goal),
	}
	r.init()

	return r, nil
}

// init builds the arena, precomputes heuristics against the fixed goal,
// and seeds the frontier with the start node.
func (r *runner) init() {
	total := r.grid.Size() * r.grid.Size()
	r.arena = make([]node, total)
	for i := 0; i < total; i++ {
		c := r.grid.Coordinate(i)
		r.arena[i] = node{
			coord:   c,
			idx:     i,
			h:       ChebyshevDistance(c, r.goal),
			parent:  -1,
			heapIdx: -1,
		}
	}
	r.front = frontier{mode: r.opts.Mode}

	s := &r.arena[r.startIdx]
	s.g = 0
	if !r.grid.Passable(r.start) {
		// Only reachable in relaxed mode; the vehicle begins on top of an
		// obstacle, which counts as one crossing.
		s.obstacles = 1
	}

	if r.startIdx == r.goalIdx {
		// Degenerate run: the route is the single start cell.
		s.state = closed
		r.done, r.found = true, true

		return
	}
	r.front.insertOrUpdate(s)
}

// step pops the best frontier node, expands its 8 neighbors, and relaxes
// their costs. It transitions the run to GoalReached as soon as the goal
// appears among the generated neighbors, or to Exhausted when the
// frontier empties.
func (r *runner) step() error {
	if r.done {
		return nil
	}
	if r.front.empty() {
		r.done = true

		return nil
	}
	if r.opts.MaxExpansions > 0 && r.expansions >= r.opts.MaxExpansions {
		return fmt.Errorf("%w: %d expansions on a %d×%d grid",
			ErrExpansionBudget, r.expansions, r.grid.Size(), r.grid.Size())
	}

	cur := r.front.popBest()
	cur.state = closed
	r.current, r.expanded = cur.coord, true
	r.expansions++

	for _, d := range neighborOffsets {
		nc := grid.Coord{X: cur.coord.X + d[0], Y: cur.coord.Y + d[1]}
		if !r.grid.InBounds(nc) {
			continue // no wraparound
		}
		passable := r.grid.Passable(nc)
		if r.opts.Mode == Strict && !passable {
			continue // hard wall
		}

		nb := &r.arena[r.grid.Index(nc)]
		if nb.idx == r.goalIdx {
			// Goal detected at generation time. The goal cell is passable
			// by construction, so the crossing count carries over as is.
			nb.parent = cur.idx
			nb.g = cur.g + 1
			nb.obstacles = cur.obstacles
			nb.state = closed
			r.done, r.found = true, true

			return nil
		}

		newG := cur.g + 1
		newObs := cur.obstacles
		if !passable {
			newObs++
		}
		if !r.improves(nb, newObs, newG) {
			continue
		}
		nb.g = newG
		nb.obstacles = newObs
		nb.parent = cur.idx
		// insertOrUpdate also re-opens closed nodes: a closed node is still
		// eligible here, because under the compound (obstacles, cost) key a
		// later path can strictly improve on a provisionally final one.
		r.front.insertOrUpdate(nb)
	}

	return nil
}

// improves reports whether the candidate (newObs, newG) relaxes nb.
//
// Strict mode: unseen, or strictly cheaper (newObs always equals nb's
// count there, since obstacles are never entered).
// Relaxed mode: unseen, or fewer crossings, or equal crossings and
// strictly cheaper.
func (r *runner) improves(nb *node, newObs, newG int) bool {
	if nb.state == unseen {
		return true
	}
	if r.opts.Mode == Relaxed && newObs != nb.obstacles {
		return newObs < nb.obstacles
	}

	return newG < nb.g
}
