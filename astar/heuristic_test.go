package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// TestChebyshevDistance covers the king-move metric on representative
// pairs, including symmetry and the zero case.
func TestChebyshevDistance(t *testing.T) {
	cases := []struct {
		name string
		a, b grid.Coord
		want int
	}{
		{"Same", grid.Coord{X: 3, Y: 3}, grid.Coord{X: 3, Y: 3}, 0},
		{"Orthogonal", grid.Coord{X: 0, Y: 0}, grid.Coord{X: 0, Y: 4}, 4},
		{"Diagonal", grid.Coord{X: 0, Y: 0}, grid.Coord{X: 5, Y: 5}, 5},
		{"Mixed", grid.Coord{X: 1, Y: 2}, grid.Coord{X: 7, Y: 4}, 6},
		{"NegativeDelta", grid.Coord{X: 9, Y: 1}, grid.Coord{X: 2, Y: 5}, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, astar.ChebyshevDistance(tc.a, tc.b))
			assert.Equal(t, tc.want, astar.ChebyshevDistance(tc.b, tc.a), "metric must be symmetric")
		})
	}
}
