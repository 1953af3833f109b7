package main

import (
	"reflect"
	"testing"
)

func TestObstacleRectsEmpty(t *testing.T) {
	g, _ := buildGrid(t,
		"20",
		"00",
	)
	if rects := ObstacleRects(g); len(rects) != 0 {
		t.Errorf("rects = %v, want none", rects)
	}
}

func TestObstacleRectsSingleCell(t *testing.T) {
	g, _ := buildGrid(t,
		"20",
		"01",
	)
	want := []CellRect{{MinX: 1, MinY: 1, MaxX: 1, MaxY: 1}}
	if rects := ObstacleRects(g); !reflect.DeepEqual(rects, want) {
		t.Errorf("rects = %v, want %v", rects, want)
	}
}

func TestObstacleRectsMergesRows(t *testing.T) {
	// A vertical wall spanning two rows collapses into one rectangle.
	g, _ := buildGrid(t,
		"200",
		"010",
		"010",
	)
	want := []CellRect{{MinX: 1, MinY: 1, MaxX: 2, MaxY: 1}}
	if rects := ObstacleRects(g); !reflect.DeepEqual(rects, want) {
		t.Errorf("rects = %v, want %v", rects, want)
	}
}

func TestObstacleRectsMergesBlock(t *testing.T) {
	g, _ := buildGrid(t,
		"2011",
		"0011",
		"0000",
	)
	want := []CellRect{{MinX: 0, MinY: 2, MaxX: 1, MaxY: 3}}
	rects := ObstacleRects(g)
	if !reflect.DeepEqual(rects, want) {
		t.Errorf("rects = %v, want %v", rects, want)
	}
	if rects[0].CellCount() != 4 {
		t.Errorf("cell count = %d, want 4", rects[0].CellCount())
	}
}

func TestObstacleRectsSplitsUnequalSpans(t *testing.T) {
	// The runs in rows 0 and 1 cover different columns, so they stay
	// separate rectangles.
	g, _ := buildGrid(t,
		"110",
		"100",
		"002",
	)
	want := []CellRect{
		{MinX: 0, MinY: 0, MaxX: 0, MaxY: 1},
		{MinX: 1, MinY: 0, MaxX: 1, MaxY: 0},
	}
	if rects := ObstacleRects(g); !reflect.DeepEqual(rects, want) {
		t.Errorf("rects = %v, want %v", rects, want)
	}
}

func TestObstacleRectsCoverExactly(t *testing.T) {
	g, _ := buildGrid(t,
		"21011",
		"01011",
		"00000",
		"11110",
		"00000",
	)
	rects := ObstacleRects(g)

	covered := 0
	for _, rect := range rects {
		covered += rect.CellCount()
	}
	if covered != g.ObstacleCount() {
		t.Errorf("rects cover %d cells, grid has %d obstacles", covered, g.ObstacleCount())
	}

	// Every obstacle cell sits in exactly one rectangle, free cells in none.
	for x := 0; x < g.Rows; x++ {
		for y := 0; y < g.Cols; y++ {
			c := Cell{X: x, Y: y}
			n := 0
			for _, rect := range rects {
				if rect.Contains(c) {
					n++
				}
			}
			if g.StateAt(c) == CellObstacle && n != 1 {
				t.Errorf("obstacle %v covered by %d rects, want 1", c, n)
			}
			if g.StateAt(c) != CellObstacle && n != 0 {
				t.Errorf("free cell %v covered by %d rects, want 0", c, n)
			}
		}
	}
}
