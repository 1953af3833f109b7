package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
)

// ErrMapFormat reports a syntactically malformed map file.
var ErrMapFormat = errors.New("malformed map file")

// scanInt reads the next whitespace-separated token as an integer. ok is
// false at a clean end of input.
func scanInt(sc *bufio.Scanner) (v int, ok bool, err error) {
	if !sc.Scan() {
		return 0, false, sc.Err()
	}
	v, convErr := strconv.Atoi(sc.Text())
	if convErr != nil {
		return 0, false, fmt.Errorf("%q is not an integer", sc.Text())
	}
	return v, true, nil
}

// ParseGrid reads a grid map in the plain text format: two integers for the
// row and column counts, then rows x cols cell states in row-major order.
// Tokens are separated by any whitespace, so the layout of lines does not
// matter. The states must be 0 (free), 1 (obstacle) or 2 (origin marker,
// exactly once).
func ParseGrid(r io.Reader) (*Grid, Cell, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	need := func(what string) (int, error) {
		v, ok, err := scanInt(sc)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrMapFormat, err)
		}
		if !ok {
			return 0, fmt.Errorf("%w: missing %s", ErrMapFormat, what)
		}
		return v, nil
	}

	rows, err := need("row count")
	if err != nil {
		return nil, Cell{}, err
	}
	cols, err := need("column count")
	if err != nil {
		return nil, Cell{}, err
	}
	if rows <= 0 || cols <= 0 {
		return nil, Cell{}, fmt.Errorf("%w: dimensions %dx%d", ErrMapFormat, rows, cols)
	}

	cells := make([][]CellState, rows)
	for x := 0; x < rows; x++ {
		cells[x] = make([]CellState, cols)
		for y := 0; y < cols; y++ {
			v, err := need(fmt.Sprintf("cell (%d, %d)", x, y))
			if err != nil {
				return nil, Cell{}, err
			}
			cells[x][y] = CellState(v)
		}
	}

	// Extra tokens usually mean the declared dimensions are wrong, which
	// would silently shift every cell. Refuse the file instead.
	if sc.Scan() {
		return nil, Cell{}, fmt.Errorf("%w: trailing data after %dx%d cells", ErrMapFormat, rows, cols)
	}

	return NewGrid(cells)
}

// LoadGridFile reads and validates a grid map file, returning the grid and
// the origin cell.
func LoadGridFile(path string) (*Grid, Cell, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Cell{}, fmt.Errorf("failed to open map file: %w", err)
	}
	defer f.Close()

	g, origin, err := ParseGrid(f)
	if err != nil {
		return nil, Cell{}, fmt.Errorf("failed to load map file %s: %w", path, err)
	}

	log.Printf("🗺️  Loaded map %s: %dx%d cells, %d obstacle(s), origin %v\n",
		path, g.Rows, g.Cols, g.ObstacleCount(), origin)
	return g, origin, nil
}
