package testutil

import (
	"errors"
	"strings"
	"testing"

	"github.com/banshee-data/moonplot/internal/fsutil"
)

func TestAssertNoError(t *testing.T) {
	t.Parallel()

	// Verify nil error doesn't cause issues
	AssertNoError(t, nil)
}

func TestAssertError(t *testing.T) {
	t.Parallel()

	AssertError(t, errors.New("test error"))
}

func TestGridCSV(t *testing.T) {
	t.Parallel()

	lines := strings.Split(strings.TrimSpace(GridCSV(3)), "\n")
	if len(lines) != 10 {
		t.Fatalf("expected header plus 9 rows, got %d lines", len(lines))
	}
	if lines[0] != "x,y,score" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "-1,-1,-2" {
		t.Errorf("first row = %q, want -1,-1,-2", lines[1])
	}
	if lines[9] != "1,1,2" {
		t.Errorf("last row = %q, want 1,1,2", lines[9])
	}
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	mfs := fsutil.NewMemoryFileSystem()
	WriteFile(t, mfs, "moons.csv", PointsCSV)

	data, err := mfs.ReadFile("moons.csv")
	AssertNoError(t, err)
	if string(data) != PointsCSV {
		t.Errorf("got %q, want %q", data, PointsCSV)
	}
}
