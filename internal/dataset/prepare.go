package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Prepared holds everything the renderers draw, derived once from the
// loaded tables and never mutated afterwards.
type Prepared struct {
	// Coords is the n x 2 matrix of point coordinates (x, y). Nil when the
	// points table has no rows.
	Coords *mat.Dense
	// Classes is the binarized label of each point, aligned with Coords.
	Classes []int

	GridX       []float64
	GridY       []float64
	GridClasses []int

	// Bounds is taken from the grid columns only.
	Bounds Bounds
}

// NumPoints returns the number of points held in Coords.
func (p *Prepared) NumPoints() int {
	if p.Coords == nil {
		return 0
	}
	r, _ := p.Coords.Dims()
	return r
}

// Point returns the coordinates of point i.
func (p *Prepared) Point(i int) (x, y float64) {
	return p.Coords.At(i, 0), p.Coords.At(i, 1)
}

// Prepare derives the plotting inputs from the two tables. The grid must
// have at least one row so that bounds exist.
func Prepare(points []Point, grid []GridSample) (*Prepared, error) {
	if len(grid) == 0 {
		return nil, fmt.Errorf("no grid samples to bound: %w", ErrEmptyTable)
	}

	prep := &Prepared{
		Classes:     make([]int, len(points)),
		GridX:       make([]float64, len(grid)),
		GridY:       make([]float64, len(grid)),
		GridClasses: make([]int, len(grid)),
	}

	if len(points) > 0 {
		prep.Coords = mat.NewDense(len(points), 2, nil)
		for i, pt := range points {
			prep.Coords.Set(i, 0, pt.X)
			prep.Coords.Set(i, 1, pt.Y)
			prep.Classes[i] = Binarize(pt.Label)
		}
	}

	for i, s := range grid {
		prep.GridX[i] = s.X
		prep.GridY[i] = s.Y
		prep.GridClasses[i] = Binarize(s.Score)
	}

	prep.Bounds = Bounds{
		XMin: floats.Min(prep.GridX),
		XMax: floats.Max(prep.GridX),
		YMin: floats.Min(prep.GridY),
		YMax: floats.Max(prep.GridY),
	}
	return prep, nil
}
