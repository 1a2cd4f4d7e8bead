package dataset

import "fmt"

// Point is one row of the points table.
type Point struct {
	X     float64
	Y     float64
	Label float64 // sign determines the class
}

// GridSample is one row of the decision-boundary table: a coordinate with
// the classifier score sampled there.
type GridSample struct {
	X     float64
	Y     float64
	Score float64 // sign determines the class
}

// Bounds is the axis extent shared by both plots.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

func (b Bounds) String() string {
	return fmt.Sprintf("x=[%g, %g] y=[%g, %g]", b.XMin, b.XMax, b.YMin, b.YMax)
}

// Binarize maps a signed label or score to its class: 1 when v > 0,
// otherwise 0. Zero and NaN map to 0.
func Binarize(v float64) int {
	if v > 0 {
		return 1
	}
	return 0
}
