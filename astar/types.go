package astar

import "errors"

// Sentinel errors returned by Search, NewStepper, and Stepper.Step.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to the search.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOutOfBounds indicates the start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("astar: start or goal out of grid bounds")

	// ErrBlockedEndpoint indicates the start or goal sits on an obstacle
	// in strict mode, where obstacles are impassable.
	ErrBlockedEndpoint = errors.New("astar: start or goal is an obstacle in strict mode")

	// ErrBadMode indicates an unknown Mode value.
	ErrBadMode = errors.New("astar: unknown search mode")

	// ErrNoRoute indicates the frontier was exhausted before reaching the
	// goal. Only strict mode can produce it on a well-formed grid: in
	// relaxed mode every cell is traversable, so some route always exists.
	ErrNoRoute = errors.New("astar: no route exists")

	// ErrBadExpansionBudget indicates MaxExpansions was set to a negative
	// value.
	ErrBadExpansionBudget = errors.New("astar: MaxExpansions must be non-negative")

	// ErrExpansionBudget indicates the defensive expansion cap was
	// exceeded. This is a configuration fault, not a recoverable outcome.
	ErrExpansionBudget = errors.New("astar: expansion budget exhausted")

	// ErrCorruptRoute indicates the predecessor chain failed to reach the
	// start within N² steps during reconstruction. It signals a defect in
	// the relax/re-open logic and should be unreachable.
	ErrCorruptRoute = errors.New("astar: predecessor chain does not terminate at start")
)

// Mode selects how the search treats obstacle cells.
//
// Strict  — obstacles are hard walls; the search may fail with ErrNoRoute.
// Relaxed — obstacles are passable at a cost; the search minimizes the
// pair (obstacles crossed, path length) lexicographically and never
// fails on a well-formed grid.
type Mode int

const (
	// Strict treats obstacles as impassable.
	Strict Mode = iota

	// Relaxed treats obstacles as passable-with-penalty.
	Relaxed
)

// String returns the mode name for logs and errors.
func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Relaxed:
		return "relaxed"
	default:
		return "unknown"
	}
}

// Options configures a single search run.
//
// Mode          – Strict (default) or Relaxed.
// MaxExpansions – defensive cap on frontier pops; 0 (default) disables
// the cap. Exceeding the cap aborts with ErrExpansionBudget.
type Options struct {
	Mode          Mode
	MaxExpansions int
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithMode selects the obstacle policy for this run.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// WithMaxExpansions installs a defensive bound on the number of node
// expansions. Must be non-negative; negative values panic with
// ErrBadExpansionBudget. Zero disables the bound.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadExpansionBudget.Error())
		}
		o.MaxExpansions = n
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
// Strict mode and no expansion cap.
func DefaultOptions() Options {
	return Options{
		Mode:          Strict,
		MaxExpansions: 0,
	}
}
