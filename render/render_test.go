package render_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
)

// TestRender_BareBoard draws a 3×3 board with one obstacle and no route.
func TestRender_BareBoard(t *testing.T) {
	g, err := grid.New(3)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if err = g.SetObstacle(grid.Coord{X: 1, Y: 1}); err != nil {
		t.Fatalf("SetObstacle error: %v", err)
	}

	want := strings.Join([]string{
		"[ ] [ ] [ ]",
		"[ ] [X] [ ]",
		"[ ] [ ] [ ]",
	}, "\n") + "\n"
	if got := render.Render(g, nil); got != want {
		t.Errorf("Render =\n%s\nwant:\n%s", got, want)
	}
}

// TestRender_StrictRoute overlays the deterministic 3×3 detour around
// the blocked center.
func TestRender_StrictRoute(t *testing.T) {
	g, _ := grid.New(3)
	_ = g.SetObstacle(grid.Coord{X: 1, Y: 1})

	route, err := astar.Search(g, grid.Coord{}, grid.Coord{X: 2, Y: 2})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}

	got := render.Render(g, route)
	if strings.Count(got, "O") != len(route.Coords) {
		t.Errorf("Render marked %d route cells; want %d:\n%s",
			strings.Count(got, "O"), len(route.Coords), got)
	}
	if strings.Contains(got, "+") {
		t.Errorf("strict route must not traverse obstacles:\n%s", got)
	}
}

// TestRender_TraversedObstacle marks crossed obstacles with '+', not 'X'
// or 'O'.
func TestRender_TraversedObstacle(t *testing.T) {
	g, _ := grid.New(3)
	for y := 0; y < 3; y++ {
		_ = g.SetObstacle(grid.Coord{X: 1, Y: y})
	}

	route, err := astar.Search(g, grid.Coord{X: 0, Y: 1}, grid.Coord{X: 2, Y: 1},
		astar.WithMode(astar.Relaxed))
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if route.ObstaclesCrossed() != 1 {
		t.Fatalf("ObstaclesCrossed = %d; want 1", route.ObstaclesCrossed())
	}

	got := render.Render(g, route)
	if strings.Count(got, "+") != 1 {
		t.Errorf("Render marked %d traversed obstacles; want 1:\n%s",
			strings.Count(got, "+"), got)
	}
	if strings.Count(got, "X") != 2 {
		t.Errorf("Render kept %d untouched obstacles; want 2:\n%s",
			strings.Count(got, "X"), got)
	}
}
