package astar

import "github.com/katalvlaran/gridpath/grid"

// Snapshot exposes the engine state after one expansion. Slices are
// copies in deterministic row-major order; mutating them does not affect
// the running search.
type Snapshot struct {
	// Current is the cell expanded by this step; meaningful once Step > 0.
	Current grid.Coord
	// Open and Closed list the frontier and the expanded set.
	Open   []grid.Coord
	Closed []grid.Coord
	// Step counts expansions performed so far.
	Step int
	// Done reports that the run has terminated; Found distinguishes
	// GoalReached from Exhausted.
	Done  bool
	Found bool
	// Route is the reconstructed result, set only when Done && Found.
	Route *Route
}

// Stepper drives the search one expansion at a time, for visualization
// and debugging front ends. It wraps the exact engine Search uses, so a
// stepped run and a plain Search over the same inputs visit the same
// cells in the same order and return the same route.
//
// A Stepper is single-threaded and owns its grid view for the whole run,
// like Search; do not mutate the grid while stepping.
type Stepper struct {
	r *runner
}

// NewStepper validates inputs and prepares a stepped run. It accepts the
// same options as Search and fails with the same sentinel errors.
func NewStepper(g *grid.Grid, start, goal grid.Coord, opts ...Option) (*Stepper, error) {
	r, err := newRunner(g, start, goal, opts...)
	if err != nil {
		return nil, err
	}

	return &Stepper{r: r}, nil
}

// Step advances the search by one node expansion and returns the
// resulting snapshot. Once the run is done, further calls return the
// terminal snapshot unchanged.
func (s *Stepper) Step() (Snapshot, error) {
	if err := s.r.step(); err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		Step:  s.r.expansions,
		Done:  s.r.done,
		Found: s.r.found,
	}
	if s.r.expanded {
		snap.Current = s.r.current
	}
	for i := range s.r.arena {
		n := &s.r.arena[i]
		switch n.state {
		case opened:
			snap.Open = append(snap.Open, n.coord)
		case closed:
			snap.Closed = append(snap.Closed, n.coord)
		}
	}
	if snap.Done && snap.Found {
		route, err := s.r.route()
		if err != nil {
			return Snapshot{}, err
		}
		snap.Route = route
	}

	return snap, nil
}
