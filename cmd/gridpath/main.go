// Command gridpath demonstrates the route planner.
//
// It supports two subcommands:
//  1. "plan"  – scatter random obstacles on an N×N grid and print the
//     planned route (strict by default, --relaxed to allow crossings)
//  2. "serve" – run the WebSocket visualization server
//
// Flags control grid size, obstacle count, scatter seed, endpoints, and
// the listen address; PORT in the environment (or a .env file) overrides
// the default serve address.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/viz"
)

func main() {
	root := &cli.Command{
		Name:  "gridpath",
		Usage: "plan routes across obstacle grids with obstacle-minimizing A*",
		Commands: []*cli.Command{
			planCommand(),
			serveCommand(),
		},
	}
	if err := root.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func planCommand() *cli.Command {
	return &cli.Command{
		Name:  "plan",
		Usage: "scatter obstacles and print a planned route",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "size", Value: 10, Usage: "grid side length"},
			&cli.IntFlag{Name: "obstacles", Value: 20, Usage: "random obstacles to scatter"},
			&cli.IntFlag{Name: "seed", Usage: "scatter seed (0 = fixed default)"},
			&cli.BoolFlag{Name: "relaxed", Usage: "allow crossing obstacles, minimizing crossings"},
			&cli.StringFlag{Name: "start", Value: "0,0", Usage: "start cell as x,y"},
			&cli.StringFlag{Name: "goal", Usage: "goal cell as x,y (default: opposite corner)"},
		},
		Action: runPlan,
	}
}

func runPlan(_ context.Context, cmd *cli.Command) error {
	size := int(cmd.Int("size"))
	board, err := grid.New(size)
	if err != nil {
		return err
	}

	start, err := parseCoord(cmd.String("start"))
	if err != nil {
		return fmt.Errorf("bad --start: %w", err)
	}
	goal := grid.Coord{X: size - 1, Y: size - 1}
	if s := cmd.String("goal"); s != "" {
		if goal, err = parseCoord(s); err != nil {
			return fmt.Errorf("bad --goal: %w", err)
		}
	}

	placed := board.Scatter(int(cmd.Int("obstacles")), int64(cmd.Int("seed")), start, goal)
	log.WithFields(log.Fields{"count": len(placed), "seed": cmd.Int("seed")}).
		Info("obstacles scattered")

	mode := astar.Strict
	if cmd.Bool("relaxed") {
		mode = astar.Relaxed
	}

	route, err := astar.Search(board, start, goal, astar.WithMode(mode))
	if errors.Is(err, astar.ErrNoRoute) {
		fmt.Println(render.Render(board, nil))
		fmt.Println("Could not find a path from start to destination.")

		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println(render.Render(board, route))
	fmt.Println(formatCoords(route.Coords))
	fmt.Printf("This is %d steps\n", route.Steps())
	if route.ObstaclesCrossed() > 0 {
		fmt.Printf("Obstacles were traversed at: %s\n", formatCoords(route.Obstacles))
	}

	return nil
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the WebSocket visualization server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Value: ":8080", Usage: "listen address"},
		},
		Action: runServe,
	}
}

func runServe(_ context.Context, cmd *cli.Command) error {
	// Load .env if present; a missing file is not an error.
	_ = godotenv.Load()

	addr := cmd.String("addr")
	if port := os.Getenv("PORT"); port != "" && addr == ":8080" {
		addr = ":" + port
		log.Infof("using PORT from environment: %s", port)
	}

	log.Infof("gridpath viz listening on %s", addr)

	return http.ListenAndServe(addr, viz.NewServer().Routes())
}

// parseCoord parses "x,y" into a Coord.
func parseCoord(s string) (grid.Coord, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return grid.Coord{}, fmt.Errorf("want x,y; got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return grid.Coord{}, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return grid.Coord{}, err
	}

	return grid.Coord{X: x, Y: y}, nil
}

// formatCoords renders coordinates as [(x,y),(x,y),...], the classic
// demo output format.
func formatCoords(cs []grid.Coord) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range cs {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "(%d,%d)", c.X, c.Y)
	}
	b.WriteByte(']')

	return b.String()
}
