package astar

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Route is an ordered coordinate sequence from start to goal inclusive.
// Length is at least 1; length 1 only when start equals goal.
type Route struct {
	// Coords lists every cell on the route, start first, goal last.
	Coords []grid.Coord
	// Obstacles lists the route cells that sit on obstacles, in route
	// order. Empty for any strict-mode result.
	Obstacles []grid.Coord
}

// Steps returns the number of moves on the route: len(Coords)-1.
func (r *Route) Steps() int { return len(r.Coords) - 1 }

// ObstaclesCrossed returns how many obstacle cells the route crosses.
func (r *Route) ObstaclesCrossed() int { return len(r.Obstacles) }

// route walks predecessor links from the goal back to the start and
// reverses the result. A cycle guard caps the walk at N² links; tripping
// it, or terminating anywhere but the start, returns ErrCorruptRoute —
// a structural self-check on the relax logic, not a user-facing failure.
//
// Complexity: O(route length).
func (r *runner) route() (*Route, error) {
	limit := r.grid.Size() * r.grid.Size()

	coords := make([]grid.Coord, 0, r.arena[r.goalIdx].g+1)
	at := r.goalIdx
	for steps := 0; ; steps++ {
		if steps > limit {
			return nil, fmt.Errorf("%w: cycle detected after %d links", ErrCorruptRoute, steps)
		}
		coords = append(coords, r.arena[at].coord)
		parent := r.arena[at].parent
		if parent < 0 {
			if at != r.startIdx {
				return nil, fmt.Errorf("%w: walk ended at %v, not start %v",
					ErrCorruptRoute, r.arena[at].coord, r.start)
			}

			break
		}
		at = parent
	}

	// Reverse in place: the walk produced goal→start.
	for i, j := 0, len(coords)-1; i < j; i, j = i+1, j-1 {
		coords[i], coords[j] = coords[j], coords[i]
	}

	var crossed []grid.Coord
	for _, c := range coords {
		if !r.grid.Passable(c) {
			crossed = append(crossed, c)
		}
	}

	return &Route{Coords: coords, Obstacles: crossed}, nil
}
