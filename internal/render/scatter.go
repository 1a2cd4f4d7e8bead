package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/banshee-data/moonplot/internal/dataset"
)

// Marker styling for the point scatter. MarkerArea is in square points,
// MarkerEdgeWidth in points.
const (
	MarkerArea      = 40
	MarkerEdgeWidth = 1.5
)

// MarkerRadius is the radius of a circle of area MarkerArea pt^2 measured
// the way the marker size is specified: as the square of its diameter.
var MarkerRadius = vg.Points(math.Sqrt(MarkerArea) / 2)

// edgedCircle is a filled circle glyph with an outline.
type edgedCircle struct {
	Edge  color.Color
	Width vg.Length
}

// DrawGlyph implements draw.GlyphDrawer.
func (g edgedCircle) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	var p vg.Path
	p.Move(vg.Point{X: pt.X + sty.Radius, Y: pt.Y})
	p.Arc(pt, sty.Radius, 0, 2*math.Pi)
	p.Close()

	c.SetColor(sty.Color)
	c.Fill(p)
	c.SetLineStyle(draw.LineStyle{Color: g.Edge, Width: g.Width})
	c.Stroke(p)
}

// classScatter builds the point overlay: one outlined marker per point,
// filled with the color of its binarized class.
func classScatter(prep *dataset.Prepared, colors *ClassColors) (*plotter.Scatter, error) {
	xys := make(plotter.XYs, prep.NumPoints())
	for i := range xys {
		xys[i].X, xys[i].Y = prep.Point(i)
	}

	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}

	shape := edgedCircle{Edge: color.Black, Width: vg.Points(MarkerEdgeWidth)}
	s.GlyphStyle = draw.GlyphStyle{Color: colors.Class(0), Radius: MarkerRadius, Shape: shape}
	s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{
			Color:  colors.Class(prep.Classes[i]),
			Radius: MarkerRadius,
			Shape:  shape,
		}
	}
	return s, nil
}
