package main

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// rectEntry wraps an obstacle rectangle for R-tree storage.
type rectEntry struct {
	rect CellRect
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (e *rectEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// cellBox models an inclusive cell range as a half-width float box: cell x
// spans [x, x+0.5]. Two ranges that merely sit side by side then have
// disjoint boxes, so an intersection query only matches rectangles that
// share at least one cell with the query range.
func cellBox(minX, minY, maxX, maxY int) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{float64(minX), float64(minY)},
		[]float64{float64(maxX-minX) + 0.5, float64(maxY-minY) + 0.5},
	)
}

// ObstacleIndex answers spatial queries about a grid's obstacle rectangles.
// It is built once per installed world and read-only afterwards.
type ObstacleIndex struct {
	tree *rtreego.Rtree
	size int
}

// NewObstacleIndex indexes obstacle rectangles in an R-tree.
func NewObstacleIndex(rects []CellRect) *ObstacleIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node

	for _, rect := range rects {
		bbox, err := cellBox(rect.MinX, rect.MinY, rect.MaxX, rect.MaxY)
		if err == nil {
			tree.Insert(&rectEntry{rect: rect, bbox: bbox})
		}
	}

	return &ObstacleIndex{tree: tree, size: len(rects)}
}

// Size returns the number of indexed rectangles.
func (ix *ObstacleIndex) Size() int {
	return ix.size
}

// QueryRegion returns the obstacle rectangles overlapping the given cell
// range, bounds inclusive, sorted by position.
func (ix *ObstacleIndex) QueryRegion(minX, minY, maxX, maxY int) []CellRect {
	bbox, err := cellBox(minX, minY, maxX, maxY)
	if err != nil {
		return []CellRect{}
	}

	results := ix.tree.SearchIntersect(bbox)
	rects := make([]CellRect, 0, len(results))
	for _, item := range results {
		entry := item.(*rectEntry)
		rects = append(rects, entry.rect)
	}

	sort.Slice(rects, func(i, j int) bool {
		if rects[i].MinX != rects[j].MinX {
			return rects[i].MinX < rects[j].MinX
		}
		return rects[i].MinY < rects[j].MinY
	})
	return rects
}

// BlocksCell reports whether any indexed rectangle covers the cell.
func (ix *ObstacleIndex) BlocksCell(c Cell) bool {
	return len(ix.QueryRegion(c.X, c.Y, c.X, c.Y)) > 0
}
