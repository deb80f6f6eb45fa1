package render

import (
	"strings"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// Cell symbols.
const (
	symEmpty     = ' ' // passable, not on the route
	symObstacle  = 'X' // obstacle, not on the route
	symRoute     = 'O' // passable route cell
	symTraversed = '+' // obstacle the route crosses
)

// Render draws g as bracketed ASCII rows, top row first. Pass a route to
// overlay it; pass nil to draw the bare board. Route cells on obstacles
// (possible only in relaxed mode) are marked '+' instead of 'O'.
//
// Each row is terminated by '\n'; cells within a row are separated by a
// single space.
func Render(g *grid.Grid, route *astar.Route) string {
	onRoute := make(map[grid.Coord]struct{})
	if route != nil {
		for _, c := range route.Coords {
			onRoute[c] = struct{}{}
		}
	}

	n := g.Size()
	var b strings.Builder
	b.Grow(n * (n*4 + 1))
	for y := n - 1; y >= 0; y-- {
		for x := 0; x < n; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			c := grid.Coord{X: x, Y: y}
			sym := symEmpty
			switch _, routed := onRoute[c]; {
			case routed && !g.Passable(c):
				sym = symTraversed
			case routed:
				sym = symRoute
			case !g.Passable(c):
				sym = symObstacle
			}
			b.WriteByte('[')
			b.WriteRune(sym)
			b.WriteByte(']')
		}
		b.WriteByte('\n')
	}

	return b.String()
}
