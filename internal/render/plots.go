package render

import (
	"fmt"

	"gonum.org/v1/plot"

	"github.com/banshee-data/moonplot/internal/dataset"
	"github.com/banshee-data/moonplot/internal/fsutil"
)

// Titles of the two images.
const (
	RawDatasetTitle       = "Moons Dataset (Raw)"
	DecisionBoundaryTitle = "Decision Boundary"
)

// Contour styling: the class domain [0, 1] is split into ContourBands
// equal bands filled at ContourAlpha.
const (
	ContourBands = 7
	ContourAlpha = 0.8
)

// RawDatasetFigure draws every point as an outlined marker colored by class.
// The caller owns the returned figure and must Close it.
func RawDatasetFigure(prep *dataset.Prepared) (*Figure, error) {
	colors := NewClassColors()
	return buildFigure(RawDatasetTitle, prep, func() ([]plot.Plotter, error) {
		return pointLayer(prep, colors)
	})
}

// DecisionBoundaryFigure draws the filled contour of the binarized grid
// score with the point scatter on top. The caller owns the returned figure
// and must Close it.
func DecisionBoundaryFigure(prep *dataset.Prepared) (*Figure, error) {
	colors := NewClassColors()
	return buildFigure(DecisionBoundaryTitle, prep, func() ([]plot.Plotter, error) {
		z := make([]float64, len(prep.GridClasses))
		for i, class := range prep.GridClasses {
			z[i] = float64(class)
		}
		contour, err := NewTriContour(prep.GridX, prep.GridY, z, EvenLevels(0, 1, ContourBands), colors.At, ContourAlpha)
		if err != nil {
			return nil, err
		}
		points, err := pointLayer(prep, colors)
		if err != nil {
			return nil, err
		}
		return append([]plot.Plotter{contour}, points...), nil
	})
}

// SaveRawDataset renders the raw dataset figure to path.
func SaveRawDataset(fsys fsutil.FileSystem, path string, prep *dataset.Prepared) error {
	fig, err := RawDatasetFigure(prep)
	if err != nil {
		return fmt.Errorf("raw dataset plot: %w", err)
	}
	defer fig.Close()
	return fig.Save(fsys, path)
}

// SaveDecisionBoundary renders the decision boundary figure to path.
func SaveDecisionBoundary(fsys fsutil.FileSystem, path string, prep *dataset.Prepared) error {
	fig, err := DecisionBoundaryFigure(prep)
	if err != nil {
		return fmt.Errorf("decision boundary plot: %w", err)
	}
	defer fig.Close()
	return fig.Save(fsys, path)
}

func buildFigure(title string, prep *dataset.Prepared, layers func() ([]plot.Plotter, error)) (*Figure, error) {
	fig := NewFigure(title, prep.Bounds)
	ps, err := layers()
	if err != nil {
		fig.Close()
		return nil, err
	}
	if err := fig.Add(ps...); err != nil {
		fig.Close()
		return nil, err
	}
	return fig, nil
}

// pointLayer returns the scatter overlay, or nothing when there are no points.
func pointLayer(prep *dataset.Prepared, colors *ClassColors) ([]plot.Plotter, error) {
	if prep.NumPoints() == 0 {
		return nil, nil
	}
	s, err := classScatter(prep, colors)
	if err != nil {
		return nil, err
	}
	return []plot.Plotter{s}, nil
}
