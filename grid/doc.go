// Package grid models a bounded square board of cells, each of which is
// either passable or blocked by an obstacle.
//
// What:
//
//   - Grid wraps an N×N matrix of passability flags with O(1) lookups.
//   - Coord is a value-equality (x,y) pair used by every other package.
//   - Obstacles are placed one by one (SetObstacle) or scattered randomly
//     with a deterministic seed (Scatter).
//   - Row-major Index/Coordinate helpers let search code keep per-cell
//     state in a flat arena instead of nested maps.
//
// Why:
//
//   - Route planning: the astar package consumes Passable and InBounds.
//   - Scenario generation: Scatter builds reproducible obstacle fields
//     for demos, benchmarks, and property tests.
//
// Complexity:
//
//   - New/Clone: O(N²) time and memory.
//   - InBounds/Passable/SetObstacle: O(1).
//   - Scatter: O(N²) to collect candidates, O(n) to place.
//
// Errors:
//
//   - ErrBadSize: requested side length is smaller than 1.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
//
// Mutation contract: passability may change only between searches; a
// running search owns the grid for its whole duration.
package grid
