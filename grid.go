package main

import (
	"errors"
	"fmt"
)

// CellState classifies one grid position.
type CellState int

const (
	CellFree     CellState = 0
	CellObstacle CellState = 1
	// CellOrigin marks the courier's starting position. A valid grid
	// contains it exactly once; the cell is passable like a free cell.
	CellOrigin CellState = 2
)

// Cell identifies a grid position. X is the row index and Y is the column
// index, both 0-based from the top-left corner.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Manhattan returns the Manhattan distance to another cell. With
// 4-directional unit moves it never overestimates the real step count.
func (c Cell) Manhattan(other Cell) int {
	return abs(c.X-other.X) + abs(c.Y-other.Y)
}

// String formats the cell as "(x, y)", the form used in delivery reports.
func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Grid construction errors.
var (
	ErrEmptyGrid       = errors.New("grid has no cells")
	ErrRaggedGrid      = errors.New("grid rows differ in length")
	ErrBadCellValue    = errors.New("cell state out of range")
	ErrNoOrigin        = errors.New("grid has no origin marker")
	ErrMultipleOrigins = errors.New("grid has more than one origin marker")
)

// Grid is a rectangular map of cell states. It is validated once by NewGrid
// and treated as read-only afterwards, so concurrent searches can share it.
type Grid struct {
	Rows  int           `json:"rows"`
	Cols  int           `json:"cols"`
	Cells [][]CellState `json:"cells"`
}

// NewGrid validates a cell matrix and returns the grid together with the
// position of its single origin marker.
func NewGrid(cells [][]CellState) (*Grid, Cell, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, Cell{}, ErrEmptyGrid
	}

	cols := len(cells[0])
	origin := Cell{}
	originSeen := false
	for x, row := range cells {
		if len(row) != cols {
			return nil, Cell{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, x, len(row), cols)
		}
		for y, state := range row {
			switch state {
			case CellFree, CellObstacle:
			case CellOrigin:
				if originSeen {
					return nil, Cell{}, fmt.Errorf("%w: first at %v, again at %v", ErrMultipleOrigins, origin, Cell{X: x, Y: y})
				}
				origin = Cell{X: x, Y: y}
				originSeen = true
			default:
				return nil, Cell{}, fmt.Errorf("%w: %d at %v", ErrBadCellValue, state, Cell{X: x, Y: y})
			}
		}
	}
	if !originSeen {
		return nil, Cell{}, ErrNoOrigin
	}

	return &Grid{Rows: len(cells), Cols: cols, Cells: cells}, origin, nil
}

// InBounds reports whether the cell lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.Rows && c.Y < g.Cols
}

// StateAt returns the state of a cell. The cell must be in bounds.
func (g *Grid) StateAt(c Cell) CellState {
	return g.Cells[c.X][c.Y]
}

// Walkable reports whether the cell can be entered: in bounds and not an
// obstacle. The origin marker counts as walkable.
func (g *Grid) Walkable(c Cell) bool {
	return g.InBounds(c) && g.Cells[c.X][c.Y] != CellObstacle
}

// ObstacleCount returns the number of blocked cells.
func (g *Grid) ObstacleCount() int {
	n := 0
	for _, row := range g.Cells {
		for _, state := range row {
			if state == CellObstacle {
				n++
			}
		}
	}
	return n
}
