package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/banshee-data/moonplot/internal/dataset"
)

// happyPrepared returns the two-point dataset over an n x n grid spanning
// [-1,1] with score x+y.
func happyPrepared(t *testing.T, n int) *dataset.Prepared {
	t.Helper()

	points := []dataset.Point{
		{X: 0.1, Y: 0.2, Label: 1},
		{X: -0.3, Y: 0.4, Label: -1},
	}
	var grid []dataset.GridSample
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x := -1 + 2*float64(i)/float64(n-1)
			y := -1 + 2*float64(j)/float64(n-1)
			grid = append(grid, dataset.GridSample{X: x, Y: y, Score: x + y})
		}
	}

	prep, err := dataset.Prepare(points, grid)
	require.NoError(t, err)
	return prep
}
