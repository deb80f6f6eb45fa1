package astar

import "github.com/katalvlaran/gridpath/grid"

// ChebyshevDistance returns max(|dx|, |dy|): the number of king moves
// between a and b on an 8-directional grid where diagonal and orthogonal
// steps both cost 1. It never overestimates the true remaining cost
// (admissible) and satisfies the triangle inequality along grid edges
// (consistent), so it is a valid A* heuristic for this movement model.
//
// Heuristic values are precomputed against the fixed goal of a run;
// they are invalid for any other goal.
//
// Complexity: O(1).
func ChebyshevDistance(a, b grid.Coord) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}

	return dy
}
