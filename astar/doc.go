// Package astar plans routes across an obstacle grid with an A*-family
// search that supports two operating modes sharing one engine.
//
// What:
//
//   - Strict mode: obstacles are impassable walls; if no obstacle-free
//     route exists, Search returns ErrNoRoute.
//   - Relaxed mode: obstacles may be crossed at a cost; the search
//     returns the route crossing the fewest obstacles, and among those
//     the shortest one (lexicographic (obstacles, length) objective).
//   - Movement is 8-directional with unit cost, guided by the Chebyshev
//     distance heuristic (admissible and consistent for king moves).
//   - Stepper exposes the same engine one expansion at a time for
//     visualization and debugging.
//
// Why:
//
//   - Vehicle/agent routing on tile maps where detours are preferred but
//     "bulldozing" through blockers is acceptable as a last resort.
//   - Terrain planning: minimal-damage corridors through obstacle fields.
//
// The relaxed objective is the interesting part: the frontier is ordered
// by the compound key (obstaclesCrossed, g+h) rather than a single
// f-value, and a node that has already been closed must be re-opened
// when a later path reaches it with fewer obstacle crossings. The
// textbook "never revisit a closed node" shortcut is therefore
// deliberately absent; applying it breaks relaxed-mode optimality.
//
// Determinism: neighbor enumeration follows a fixed offset order and
// equal-priority frontier ties resolve by discovery order, so identical
// inputs always produce the identical route.
//
// Complexity:
//
//   - Strict mode: O(N² log N²) time, O(N²) memory (standard A* bounds
//     on an N×N grid with a consistent heuristic).
//   - Relaxed mode: re-opening makes the worst case O(N²·K log N²) with
//     K = obstacles on the optimal route; grids encountered in practice
//     stay near the strict bound.
//
// Errors:
//
//   - ErrNilGrid, ErrOutOfBounds, ErrBlockedEndpoint: invalid input,
//     rejected before the search starts.
//   - ErrNoRoute: strict-mode frontier exhaustion; a result, not a bug.
//   - ErrExpansionBudget: the optional defensive iteration cap fired;
//     treat as a configuration fault.
//   - ErrCorruptRoute: predecessor-chain self-check failed; indicates a
//     defect in the relax logic and is never silently swallowed.
package astar
