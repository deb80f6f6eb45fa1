package grid

import "math/rand"

// defaultScatterSeed is the fixed "zero" seed used when callers pass
// seed==0. The value is arbitrary but stable to keep reproducible defaults.
const defaultScatterSeed int64 = 1

// Scatter places up to n obstacles on random free cells, never touching
// the cells listed in keep (typically the start and goal of an upcoming
// search) and never doubling up on existing obstacles. If fewer than n
// free cells remain, every remaining free cell is blocked.
//
// Placement is deterministic per seed: the same grid, n, seed, and keep
// list always yield the same obstacle field. A seed of 0 selects a fixed
// default seed rather than a time-based source, so that callers who do
// not care about the seed still get reproducible runs.
//
// Returns the placed coordinates in placement order.
// Complexity: O(N²) to collect candidates, O(n) to place.
func (g *Grid) Scatter(n int, seed int64, keep ...Coord) []Coord {
	if n <= 0 {
		return nil
	}

	protected := make(map[Coord]struct{}, len(keep))
	for _, c := range keep {
		protected[c] = struct{}{}
	}

	// Candidates are free cells outside the protected set, in row-major
	// order so the pool itself is deterministic.
	var options []Coord
	for i, b := range g.blocked {
		if b {
			continue
		}
		c := g.Coordinate(i)
		if _, ok := protected[c]; ok {
			continue
		}
		options = append(options, c)
	}
	if n > len(options) {
		n = len(options)
	}

	s := seed
	if s == 0 {
		s = defaultScatterSeed
	}
	rng := rand.New(rand.NewSource(s))

	// Draw without replacement: swap the chosen cell to the shrinking tail.
	placed := make([]Coord, 0, n)
	limit := len(options)
	for i := 0; i < n; i++ {
		j := rng.Intn(limit)
		chosen := options[j]
		g.blocked[g.Index(chosen)] = true
		placed = append(placed, chosen)
		limit--
		options[j] = options[limit]
	}

	return placed
}
