// Package testutil provides shared test utilities and fixtures.
//
// Fixtures are small CSV tables in the shapes moonplot reads, written into
// an fsutil.MemoryFileSystem so loader, renderer and driver tests share them.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/banshee-data/moonplot/internal/fsutil"
)

// PointsCSV is the two-row points table used by the happy-path scenario.
const PointsCSV = "x,y,label\n0.1,0.2,1\n-0.3,0.4,-1\n"

// AssertNoError fails the test if err is not nil.
func AssertNoError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// GridCSV returns an n x n grid table spanning [-1,1] on both axes with
// score x+y, so cells on either side of the diagonal have opposite signs.
func GridCSV(n int) string {
	var b strings.Builder
	b.WriteString("x,y,score\n")
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x := -1 + 2*float64(i)/float64(n-1)
			y := -1 + 2*float64(j)/float64(n-1)
			fmt.Fprintf(&b, "%g,%g,%g\n", x, y, x+y)
		}
	}
	return b.String()
}

// WriteFile stores content at name in fsys, failing the test on error.
func WriteFile(t testing.TB, fsys *fsutil.MemoryFileSystem, name, content string) {
	t.Helper()
	if err := fsys.WriteFile(name, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
}
