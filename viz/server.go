package viz

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// Request configures one streamed search run.
//
// Size defaults to 10 when smaller than 2. When start and goal are both
// omitted (zero), the goal defaults to the opposite corner so an empty
// request produces a sensible demo.
type Request struct {
	Size      int    `json:"size"`
	Obstacles int    `json:"obstacles"`
	Seed      int64  `json:"seed"`
	Relaxed   bool   `json:"relaxed"`
	Start     [2]int `json:"start"`
	Goal      [2]int `json:"goal"`
}

// Frame is one animation step. The first frame of a run carries the
// board layout (Size and Walls); the terminal frame carries Done plus
// the route when one was found.
type Frame struct {
	Step    int      `json:"step"`
	Size    int      `json:"size,omitempty"`
	Walls   [][2]int `json:"walls,omitempty"`
	Current [2]int   `json:"current"`
	Open    [][2]int `json:"open,omitempty"`
	Closed  [][2]int `json:"closed,omitempty"`
	Done    bool     `json:"done"`
	Found   bool     `json:"found"`
	Route   [][2]int `json:"route,omitempty"`
	Crossed [][2]int `json:"crossed,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// Server owns the WebSocket upgrader and the route table.
type Server struct {
	upgrader *websocket.Upgrader
}

// NewServer builds a visualization server. Origin checks are disabled:
// the server renders public demo data and holds no session state.
func NewServer() *Server {
	return &Server{
		upgrader: &websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Routes returns the HTTP route table.
func (s *Server) Routes() *way.Router {
	router := way.NewRouter()
	router.HandleFunc("GET", "/ws", s.handleSearch)

	return router
}

// handleSearch upgrades the connection, reads one Request, and streams
// the run frame by frame.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("viz: websocket upgrade failed")

		return
	}
	defer conn.Close()

	var req Request
	if err = conn.ReadJSON(&req); err != nil {
		log.WithError(err).Warn("viz: bad request frame")

		return
	}
	s.stream(conn, normalize(req))
}

// normalize fills in demo-friendly defaults.
func normalize(req Request) Request {
	if req.Size < 2 {
		req.Size = 10
	}
	if req.Start == ([2]int{}) && req.Goal == ([2]int{}) {
		req.Goal = [2]int{req.Size - 1, req.Size - 1}
	}

	return req
}

// stream runs the search and writes one frame per expansion.
func (s *Server) stream(conn *websocket.Conn, req Request) {
	board, err := grid.New(req.Size)
	if err != nil {
		_ = conn.WriteJSON(Frame{Error: err.Error()})

		return
	}
	start := grid.Coord{X: req.Start[0], Y: req.Start[1]}
	goal := grid.Coord{X: req.Goal[0], Y: req.Goal[1]}
	board.Scatter(req.Obstacles, req.Seed, start, goal)

	mode := astar.Strict
	if req.Relaxed {
		mode = astar.Relaxed
	}
	stepper, err := astar.NewStepper(board, start, goal, astar.WithMode(mode))
	if err != nil {
		_ = conn.WriteJSON(Frame{Error: err.Error()})

		return
	}

	logger := log.WithFields(log.Fields{
		"size": req.Size, "mode": mode.String(), "start": start.String(), "goal": goal.String(),
	})
	logger.Info("viz: run started")

	first := true
	for {
		snap, stepErr := stepper.Step()
		if stepErr != nil {
			logger.WithError(stepErr).Error("viz: run aborted")
			_ = conn.WriteJSON(Frame{Error: stepErr.Error()})

			return
		}

		frame := Frame{
			Step:    snap.Step,
			Current: [2]int{snap.Current.X, snap.Current.Y},
			Open:    coordPairs(snap.Open),
			Closed:  coordPairs(snap.Closed),
			Done:    snap.Done,
			Found:   snap.Found,
		}
		if first {
			frame.Size = req.Size
			frame.Walls = coordPairs(board.Obstacles())
			first = false
		}
		if snap.Route != nil {
			frame.Route = coordPairs(snap.Route.Coords)
			frame.Crossed = coordPairs(snap.Route.Obstacles)
		}
		if err = conn.WriteJSON(frame); err != nil {
			logger.WithError(err).Warn("viz: client went away")

			return
		}
		if snap.Done {
			logger.WithFields(log.Fields{"steps": snap.Step, "found": snap.Found}).
				Info("viz: run finished")

			return
		}
	}
}

// coordPairs flattens coordinates for the wire format.
func coordPairs(cs []grid.Coord) [][2]int {
	if len(cs) == 0 {
		return nil
	}
	out := make([][2]int, len(cs))
	for i, c := range cs {
		out[i] = [2]int{c.X, c.Y}
	}

	return out
}
