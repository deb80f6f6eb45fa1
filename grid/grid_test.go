package grid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive side lengths.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		size int
		err  error
	}{
		{"Zero", 0, grid.ErrBadSize},
		{"Negative", -3, grid.ErrBadSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.size)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d) error = %v; want %v", tc.size, err, tc.err)
			}
		})
	}
}

// TestInBounds checks InBounds on a 3×3 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New(3)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	valid := []grid.Coord{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 1, Y: 2}}
	for _, c := range valid {
		if !g.InBounds(c) {
			t.Errorf("InBounds(%v)=false; want true", c)
		}
	}
	invalid := []grid.Coord{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 1, Y: 3}, {X: 2, Y: -1}}
	for _, c := range invalid {
		if g.InBounds(c) {
			t.Errorf("InBounds(%v)=true; want false", c)
		}
	}
}

//----------------------------------------------------------------------------//
// Obstacle Tests
//----------------------------------------------------------------------------//

// TestSetObstacle_Passable verifies obstacle placement, clearing, and the
// out-of-bounds rejection.
func TestSetObstacle_Passable(t *testing.T) {
	g, _ := grid.New(4)
	c := grid.Coord{X: 1, Y: 2}

	if !g.Passable(c) {
		t.Fatalf("fresh grid: Passable(%v)=false; want true", c)
	}
	if err := g.SetObstacle(c); err != nil {
		t.Fatalf("SetObstacle(%v) error: %v", c, err)
	}
	if g.Passable(c) {
		t.Errorf("after SetObstacle: Passable(%v)=true; want false", c)
	}
	if err := g.ClearObstacle(c); err != nil {
		t.Fatalf("ClearObstacle(%v) error: %v", c, err)
	}
	if !g.Passable(c) {
		t.Errorf("after ClearObstacle: Passable(%v)=false; want true", c)
	}

	out := grid.Coord{X: 4, Y: 0}
	if err := g.SetObstacle(out); !errors.Is(err, grid.ErrOutOfBounds) {
		t.Errorf("SetObstacle(%v) error = %v; want ErrOutOfBounds", out, err)
	}
	if g.Passable(out) {
		t.Errorf("Passable(%v)=true for out-of-bounds cell; want false", out)
	}
}

// TestObstacles_RowMajorOrder ensures Obstacles reports blocked cells in
// deterministic row-major order regardless of placement order.
func TestObstacles_RowMajorOrder(t *testing.T) {
	g, _ := grid.New(3)
	placed := []grid.Coord{{X: 2, Y: 2}, {X: 0, Y: 1}, {X: 1, Y: 0}}
	for _, c := range placed {
		if err := g.SetObstacle(c); err != nil {
			t.Fatalf("SetObstacle(%v) error: %v", c, err)
		}
	}

	want := []grid.Coord{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 2}}
	got := g.Obstacles()
	if len(got) != len(want) {
		t.Fatalf("Obstacles() len = %d; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Obstacles()[%d] = %v; want %v", i, got[i], want[i])
		}
	}
}

// TestClone_Independent verifies that mutating a clone leaves the
// original untouched and vice versa.
func TestClone_Independent(t *testing.T) {
	g, _ := grid.New(3)
	c := grid.Coord{X: 1, Y: 1}
	_ = g.SetObstacle(c)

	dup := g.Clone()
	if dup.Passable(c) {
		t.Fatalf("clone lost obstacle at %v", c)
	}

	other := grid.Coord{X: 2, Y: 0}
	_ = dup.SetObstacle(other)
	if !g.Passable(other) {
		t.Errorf("mutating clone leaked into original at %v", other)
	}
	_ = g.ClearObstacle(c)
	if dup.Passable(c) {
		t.Errorf("mutating original leaked into clone at %v", c)
	}
}

//----------------------------------------------------------------------------//
// Index / Coordinate Tests
//----------------------------------------------------------------------------//

// TestIndexCoordinate_RoundTrip checks the row-major mapping both ways.
func TestIndexCoordinate_RoundTrip(t *testing.T) {
	g, _ := grid.New(5)
	for idx := 0; idx < 25; idx++ {
		c := g.Coordinate(idx)
		if got := g.Index(c); got != idx {
			t.Errorf("Index(Coordinate(%d)) = %d; want %d", idx, got, idx)
		}
		if !g.InBounds(c) {
			t.Errorf("Coordinate(%d) = %v out of bounds", idx, c)
		}
	}
}
