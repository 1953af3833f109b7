package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseGrid(t *testing.T) {
	input := `3 3
2 0 0
0 1 0
0 0 0`

	g, origin, err := ParseGrid(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Rows != 3 || g.Cols != 3 {
		t.Errorf("dimensions = %dx%d, want 3x3", g.Rows, g.Cols)
	}
	if origin != (Cell{X: 0, Y: 0}) {
		t.Errorf("origin = %v, want (0, 0)", origin)
	}
	if g.StateAt(Cell{X: 1, Y: 1}) != CellObstacle {
		t.Error("expected an obstacle at (1, 1)")
	}
	if g.ObstacleCount() != 1 {
		t.Errorf("obstacle count = %d, want 1", g.ObstacleCount())
	}
}

func TestParseGridLayoutIndependent(t *testing.T) {
	// Tokens may be spread over lines however the file likes.
	input := "2 2 2 0\n0   0"

	g, origin, err := ParseGrid(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Rows != 2 || g.Cols != 2 {
		t.Errorf("dimensions = %dx%d, want 2x2", g.Rows, g.Cols)
	}
	if origin != (Cell{X: 0, Y: 0}) {
		t.Errorf("origin = %v, want (0, 0)", origin)
	}
}

func TestParseGridErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty input", "", ErrMapFormat},
		{"missing column count", "3", ErrMapFormat},
		{"zero rows", "0 3", ErrMapFormat},
		{"negative columns", "3 -1", ErrMapFormat},
		{"too few cells", "2 2 2 0 0", ErrMapFormat},
		{"non-integer token", "2 2 2 0 x 0", ErrMapFormat},
		{"trailing data", "2 2 2 0 0 0 9", ErrMapFormat},
		{"bad cell value", "2 2 2 0 0 7", ErrBadCellValue},
		{"no origin", "2 2 0 0 0 0", ErrNoOrigin},
		{"two origins", "2 2 2 0 0 2", ErrMultipleOrigins},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseGrid(strings.NewReader(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadGridFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "floor.txt")
	content := "2 3\n0 2 0\n1 1 0\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	g, origin, err := LoadGridFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Rows != 2 || g.Cols != 3 {
		t.Errorf("dimensions = %dx%d, want 2x3", g.Rows, g.Cols)
	}
	if origin != (Cell{X: 0, Y: 1}) {
		t.Errorf("origin = %v, want (0, 1)", origin)
	}
}

func TestLoadGridFileMissing(t *testing.T) {
	_, _, err := LoadGridFile(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want a not-exist error", err)
	}
}
