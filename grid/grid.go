package grid

// Grid is a square N×N board of cells. Each cell is passable unless an
// obstacle has been placed on it. The shape is immutable once built;
// passability may be mutated only between searches.
//
// Internally the board is a flat row-major []bool, so every lookup is a
// single slice access.
type Grid struct {
	size    int
	blocked []bool // row-major; true = obstacle
}

// New constructs an empty (fully passable) size×size Grid.
// Returns ErrBadSize if size < 1.
// Complexity: O(N²) time and memory.
func New(size int) (*Grid, error) {
	if size < 1 {
		return nil, ErrBadSize
	}

	return &Grid{
		size:    size,
		blocked: make([]bool, size*size),
	}, nil
}

// Size returns the side length N.
func (g *Grid) Size() int { return g.size }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.size && c.Y >= 0 && c.Y < g.size
}

// Passable reports whether the cell at c is free of obstacles.
// Out-of-bounds coordinates are never passable.
// Complexity: O(1).
func (g *Grid) Passable(c Coord) bool {
	return g.InBounds(c) && !g.blocked[g.Index(c)]
}

// SetObstacle marks the cell at c as blocked.
// Returns ErrOutOfBounds if c lies outside the grid.
func (g *Grid) SetObstacle(c Coord) error {
	if !g.InBounds(c) {
		return ErrOutOfBounds
	}
	g.blocked[g.Index(c)] = true

	return nil
}

// ClearObstacle marks the cell at c as passable again.
// Returns ErrOutOfBounds if c lies outside the grid.
func (g *Grid) ClearObstacle(c Coord) error {
	if !g.InBounds(c) {
		return ErrOutOfBounds
	}
	g.blocked[g.Index(c)] = false

	return nil
}

// Obstacles returns the coordinates of all blocked cells in row-major
// order. The order is deterministic so callers may rely on it in tests.
// Complexity: O(N²).
func (g *Grid) Obstacles() []Coord {
	var out []Coord
	for i, b := range g.blocked {
		if b {
			out = append(out, g.Coordinate(i))
		}
	}

	return out
}

// Clone returns a deep copy. The copy shares no state with the original,
// so concurrent searches may each own their own board.
// Complexity: O(N²).
func (g *Grid) Clone() *Grid {
	dup := make([]bool, len(g.blocked))
	copy(dup, g.blocked)

	return &Grid{size: g.size, blocked: dup}
}

// Index maps c to its row-major index: y*N + x.
// The caller must ensure c is in bounds.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return c.Y*g.size + c.X
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{X: idx % g.size, Y: idx / g.size}
}
