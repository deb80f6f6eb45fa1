// Package render draws a grid and an optional route as bracketed ASCII
// rows, for CLI output and golden tests.
//
// What:
//
//   - Render produces one bracketed cell per column, rows printed from
//     the top (y = N-1) down to y = 0 so the output matches the usual
//     mathematical orientation of the board.
//   - Symbols: ' ' empty cell, 'X' obstacle, 'O' route cell,
//     '+' obstacle the route crosses (relaxed mode only).
//
// Why:
//
//   - The planner's result is a coordinate list; a human checking a demo
//     or a failing test wants to see the board.
//
// Complexity: O(N²) time and output size.
package render
