package main

import (
	"sort"
)

// CellRect is an axis-aligned block of cells. Bounds are inclusive, so a
// single cell is MinX==MaxX, MinY==MaxY.
type CellRect struct {
	MinX int `json:"minX"`
	MinY int `json:"minY"`
	MaxX int `json:"maxX"`
	MaxY int `json:"maxY"`
}

// Contains reports whether the cell lies inside the rectangle.
func (r CellRect) Contains(c Cell) bool {
	return c.X >= r.MinX && c.X <= r.MaxX && c.Y >= r.MinY && c.Y <= r.MaxY
}

// CellCount returns the number of cells the rectangle covers.
func (r CellRect) CellCount() int {
	return (r.MaxX - r.MinX + 1) * (r.MaxY - r.MinY + 1)
}

// ObstacleRects merges a grid's obstacle cells into rectangles: horizontal
// runs within each row, runs with an identical column span fused across
// consecutive rows. Every obstacle cell lands in exactly one rectangle. The
// result is sorted by position, so equal grids always produce the same
// slice.
func ObstacleRects(g *Grid) []CellRect {
	type span struct {
		from, to int // column range, inclusive
	}

	rowRuns := func(x int) []span {
		var runs []span
		y := 0
		for y < g.Cols {
			if g.Cells[x][y] != CellObstacle {
				y++
				continue
			}
			start := y
			for y < g.Cols && g.Cells[x][y] == CellObstacle {
				y++
			}
			runs = append(runs, span{from: start, to: y - 1})
		}
		return runs
	}

	rects := []CellRect{}
	open := make(map[span]CellRect)
	for x := 0; x < g.Rows; x++ {
		next := make(map[span]CellRect)
		for _, run := range rowRuns(x) {
			if rect, ok := open[run]; ok {
				rect.MaxX = x
				next[run] = rect
				delete(open, run)
				continue
			}
			next[run] = CellRect{MinX: x, MinY: run.from, MaxX: x, MaxY: run.to}
		}
		for _, rect := range open {
			rects = append(rects, rect)
		}
		open = next
	}
	for _, rect := range open {
		rects = append(rects, rect)
	}

	sort.Slice(rects, func(i, j int) bool {
		if rects[i].MinX != rects[j].MinX {
			return rects[i].MinX < rects[j].MinX
		}
		return rects[i].MinY < rects[j].MinY
	})
	return rects
}
