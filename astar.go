package main

import (
	"container/heap"
)

// searchNode is one discovered cell during a single search run. Nodes live
// in the run's arena slice and are never mutated after creation. parent is
// the arena index of the predecessor, -1 for the search origin; it is only
// followed once, to reconstruct the path after the target is popped.
type searchNode struct {
	cell   Cell
	g      int // steps from the search origin
	h      int // Manhattan estimate to the target
	parent int
}

func (n searchNode) f() int { return n.g + n.h }

// frontierEntry references an arena node scheduled for expansion.
type frontierEntry struct {
	node int // arena index
	f    int // total cost g+h at push time
	seq  int // insertion sequence number
}

// frontierOrdering decides which of two frontier entries expands first.
type frontierOrdering func(a, b frontierEntry) bool

// byTotalCost is the ordering used by FindPath: lowest total cost first,
// equal costs resolved by insertion order. The second key makes ties between
// equal-length candidates come out the same way on every run.
func byTotalCost(a, b frontierEntry) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.seq < b.seq
}

// frontier is a min-heap of discovered-but-unexpanded entries.
type frontier struct {
	ordering frontierOrdering
	entries  []frontierEntry
}

func (fr *frontier) Len() int { return len(fr.entries) }

func (fr *frontier) Less(i, j int) bool {
	return fr.ordering(fr.entries[i], fr.entries[j])
}

func (fr *frontier) Swap(i, j int) {
	fr.entries[i], fr.entries[j] = fr.entries[j], fr.entries[i]
}

func (fr *frontier) Push(x interface{}) {
	fr.entries = append(fr.entries, x.(frontierEntry))
}

func (fr *frontier) Pop() interface{} {
	old := fr.entries
	n := len(old)
	entry := old[n-1]
	fr.entries = old[:n-1]
	return entry
}

// neighborOffsets is the fixed expansion order: next row, previous row,
// next column, previous column. Changing it changes which of several
// equally short paths a search returns, so it is part of the engine's
// contract.
var neighborOffsets = [4]Cell{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}

// SearchResult is the outcome of one shortest-path search.
type SearchResult struct {
	// Path holds the cells from origin to target inclusive. Empty when
	// Found is false.
	Path []Cell
	// Expanded counts the cells taken off the frontier, a measure of how
	// much of the grid the search had to look at.
	Expanded int
	// Found reports whether the target was reached. An unreachable target
	// is an expected outcome, not an error.
	Found bool
}

// Steps returns the number of moves along the path.
func (r SearchResult) Steps() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// FindPath runs an A* search for a minimum-step path from origin to target,
// moving in 4 directions through non-obstacle cells. An origin or target
// outside the grid is treated like an unreachable target rather than an
// error, so one bad destination cannot abort a delivery run. The origin's
// own state is not checked; the caller decides where a path may begin.
//
// A cell can be pushed onto the frontier more than once via different
// predecessors. The first pop of a cell is optimal and marks it visited;
// later pops of the same cell are stale and skipped.
func FindPath(g *Grid, origin, target Cell) SearchResult {
	if !g.InBounds(origin) || !g.InBounds(target) {
		return SearchResult{}
	}

	arena := make([]searchNode, 0, 64)
	arena = append(arena, searchNode{
		cell:   origin,
		h:      origin.Manhattan(target),
		parent: -1,
	})

	visited := make([][]bool, g.Rows)
	for i := range visited {
		visited[i] = make([]bool, g.Cols)
	}

	open := &frontier{ordering: byTotalCost}
	heap.Push(open, frontierEntry{node: 0, f: arena[0].f(), seq: 0})

	seq := 0
	expanded := 0

	for open.Len() > 0 {
		entry := heap.Pop(open).(frontierEntry)
		node := arena[entry.node]

		if visited[node.cell.X][node.cell.Y] {
			continue
		}
		visited[node.cell.X][node.cell.Y] = true
		expanded++

		if node.cell == target {
			return SearchResult{
				Path:     reconstructPath(arena, entry.node),
				Expanded: expanded,
				Found:    true,
			}
		}

		for _, d := range neighborOffsets {
			next := Cell{X: node.cell.X + d.X, Y: node.cell.Y + d.Y}
			if !g.InBounds(next) || visited[next.X][next.Y] || g.StateAt(next) == CellObstacle {
				continue
			}
			arena = append(arena, searchNode{
				cell:   next,
				g:      node.g + 1,
				h:      next.Manhattan(target),
				parent: entry.node,
			})
			seq++
			heap.Push(open, frontierEntry{node: len(arena) - 1, f: arena[len(arena)-1].f(), seq: seq})
		}
	}

	return SearchResult{Expanded: expanded}
}

// reconstructPath follows parent indices from the popped target back to the
// origin and reverses the chain into origin-to-target order.
func reconstructPath(arena []searchNode, node int) []Cell {
	path := []Cell{}
	for i := node; i >= 0; i = arena[i].parent {
		path = append(path, arena[i].cell)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
