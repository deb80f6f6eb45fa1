// Package gridpath plans routes across bounded obstacle grids — from
// classic A* on walls to obstacle-minimizing search that crosses
// blockers only when it must.
//
// 🚀 What is gridpath?
//
//	A small, focused route-planning library built around one engine with
//	two operating modes:
//		• Strict mode: obstacles are impassable; unreachable goals are
//		  reported, not guessed around
//		• Relaxed mode: obstacles cost a crossing; the route with the
//		  fewest crossings wins, shortest length breaking ties
//		• 8-directional movement with the Chebyshev heuristic
//		• Deterministic results: fixed neighbor order, discovery-order
//		  tie-breaking, seedable obstacle scatter
//
// ✨ Why choose gridpath?
//
//   - One engine, both modes – the compound (obstacles, length) frontier
//     key subsumes plain A*
//   - Step-by-step API – drive visualizations and debuggers one
//     expansion at a time
//   - Pure Go core – the search depends on nothing outside the standard
//     library
//
// Everything is organized under five packages:
//
//	grid/   — the board: bounds, passability, deterministic scatter
//	astar/  — the engine: heuristic, frontier, search, stepper, route
//	render/ — bracketed ASCII boards for CLIs and golden tests
//	viz/    — WebSocket streaming of live runs for browser front ends
//	cmd/    — the gridpath demo binary (plan + serve)
//
// Quick ASCII example (3×3, center blocked, strict mode):
//
//	[ ] [ ] [O]      route: (0,0) (1,0) (2,1) (2,2)
//	[ ] [X] [O]      steps: 3, crossed: 0
//	[O] [O] [ ]
//
// Start with grid.New, place obstacles, then astar.Search.
package gridpath
