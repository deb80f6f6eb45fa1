package astar

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/grid"
)

// membership tracks where a node currently lives in the search.
type membership uint8

const (
	unseen membership = iota // never discovered; g and obstacles are meaningless
	opened                   // in the frontier, awaiting expansion
	closed                   // expanded; may still be re-opened in relaxed mode
)

// node is the per-cell search record. One node exists per grid cell,
// allocated eagerly in a flat row-major arena so the predecessor link can
// be a plain index instead of a pointer (no ownership cycles, no maps on
// the hot path).
//
// Invariant: g and obstacles are meaningful iff state != unseen.
type node struct {
	coord     grid.Coord
	idx       int        // own arena index
	g         int        // best known cost from start
	obstacles int        // obstacles crossed on the best known path, this cell included
	h         int        // Chebyshev distance to the goal, constant per run
	parent    int        // arena index of the predecessor, -1 = none
	state     membership //
	heapIdx   int        // position in the frontier heap, -1 when absent
	seq       int        // discovery order, breaks priority ties deterministically
}

// frontier is the open set: an indexed binary min-heap of nodes keyed by
// the mode's comparator. A coordinate is never duplicated — updates fix
// the existing entry in place, and re-opening a closed node pushes it
// back with its original discovery sequence, so equal-priority ties
// always resolve by first-found order (reproducible results).
type frontier struct {
	items   []*node
	mode    Mode
	nextSeq int
}

// Len implements heap.Interface.
func (f *frontier) Len() int { return len(f.items) }

// Less orders the heap by the mode's compound key.
//
// Strict:  (g+h, seq) — classic A* f-value, discovery order on ties.
// Relaxed: (obstacles, g+h, seq) — fewer crossings always win, no matter
// how long the path; among equal crossings the lower f-value wins.
func (f *frontier) Less(i, j int) bool {
	a, b := f.items[i], f.items[j]
	if f.mode == Relaxed && a.obstacles != b.obstacles {
		return a.obstacles < b.obstacles
	}
	fa, fb := a.g+a.h, b.g+b.h
	if fa != fb {
		return fa < fb
	}

	return a.seq < b.seq
}

// Swap implements heap.Interface, keeping heapIdx positions current.
func (f *frontier) Swap(i, j int) {
	f.items[i], f.items[j] = f.items[j], f.items[i]
	f.items[i].heapIdx = i
	f.items[j].heapIdx = j
}

// Push implements heap.Interface; use insertOrUpdate instead.
func (f *frontier) Push(x interface{}) {
	n := x.(*node)
	n.heapIdx = len(f.items)
	f.items = append(f.items, n)
}

// Pop implements heap.Interface; use popBest instead.
func (f *frontier) Pop() interface{} {
	old := f.items
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	f.items = old[:last]
	n.heapIdx = -1

	return n
}

// insertOrUpdate admits n into the open set after its key fields (g,
// obstacles, parent) have been written. Three cases:
//
//   - already open: sift the existing entry to its new position;
//   - unseen: assign a discovery sequence and push;
//   - closed: re-open by pushing again, keeping the original sequence.
//
// Re-opening is required for relaxed-mode correctness: under the
// compound key a later-found path with fewer crossings can beat an
// earlier one with a better raw distance, so closure is provisional.
func (f *frontier) insertOrUpdate(n *node) {
	if n.heapIdx >= 0 {
		heap.Fix(f, n.heapIdx)

		return
	}
	if n.state == unseen {
		f.nextSeq++
		n.seq = f.nextSeq
	}
	n.state = opened
	heap.Push(f, n)
}

// popBest removes and returns the best node by the mode's comparator.
// The caller marks it closed.
func (f *frontier) popBest() *node {
	return heap.Pop(f).(*node)
}

// empty reports whether the open set is exhausted.
func (f *frontier) empty() bool { return len(f.items) == 0 }

// contains reports whether the cell with arena index idx is currently
// open. Used by tests and snapshots.
func (f *frontier) contains(n *node) bool { return n.heapIdx >= 0 }
