package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/banshee-data/moonplot/internal/triangulate"
)

// TriContour is a filled contour over scattered samples. The samples are
// triangulated once and every triangle is cut into the pieces where the
// linear interpolant of Z falls inside each band between Levels.
type TriContour struct {
	X, Y, Z   []float64
	Triangles []triangulate.Triangle

	// Levels are ascending band edges; band i spans [Levels[i], Levels[i+1]].
	// Values outside the first and last level fall into the outer bands.
	Levels []float64

	// Color maps a value inside a band to its fill color.
	Color func(v float64) color.Color

	// Alpha is the fill opacity over the plot background.
	Alpha float64
}

var _ plot.Plotter = (*TriContour)(nil)
var _ plot.DataRanger = (*TriContour)(nil)

// NewTriContour triangulates the (x, y) samples and prepares bands.
func NewTriContour(x, y, z, levels []float64, colorAt func(float64) color.Color, alpha float64) (*TriContour, error) {
	if len(x) != len(y) || len(x) != len(z) {
		return nil, fmt.Errorf("tricontour: mismatched sample lengths x=%d y=%d z=%d", len(x), len(y), len(z))
	}
	if len(levels) < 2 {
		return nil, fmt.Errorf("tricontour: need at least two levels, got %d", len(levels))
	}

	pts := make([]triangulate.Point, len(x))
	for i := range pts {
		pts[i] = triangulate.Point{X: x[i], Y: y[i]}
	}
	tris, err := triangulate.Delaunay(pts)
	if err != nil {
		return nil, fmt.Errorf("tricontour: %w", err)
	}

	return &TriContour{
		X:         x,
		Y:         y,
		Z:         z,
		Triangles: tris,
		Levels:    levels,
		Color:     colorAt,
		Alpha:     alpha,
	}, nil
}

// EvenLevels returns n+1 evenly spaced band edges from lo to hi.
func EvenLevels(lo, hi float64, n int) []float64 {
	levels := make([]float64, n+1)
	floats.Span(levels, lo, hi)
	return levels
}

// DataRange implements plot.DataRanger.
func (tc *TriContour) DataRange() (xmin, xmax, ymin, ymax float64) {
	return floats.Min(tc.X), floats.Max(tc.X), floats.Min(tc.Y), floats.Max(tc.Y)
}

// Plot implements plot.Plotter. Fills are composited against the plot
// background up front so adjacent triangles do not double-blend.
func (tc *TriContour) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	fills := make([]color.Color, len(tc.Levels)-1)
	for b := range fills {
		mid := (tc.Levels[b] + tc.Levels[b+1]) / 2
		fills[b] = blend(tc.Color(mid), plt.BackgroundColor, tc.Alpha)
	}

	for _, poly := range tc.Bands() {
		pts := make([]vg.Point, len(poly.Vertices))
		for i, v := range poly.Vertices {
			pts[i] = vg.Point{X: trX(v.X), Y: trY(v.Y)}
		}
		pts = c.ClipPolygonXY(pts)
		if len(pts) < 3 {
			continue
		}
		c.FillPolygon(fills[poly.Band], pts)
	}
}

// BandPolygon is the part of one triangle whose interpolated value lies in
// band Band.
type BandPolygon struct {
	Band     int
	Vertices []triangulate.Point
}

// Bands cuts every triangle into band polygons, in triangle order then band
// order.
func (tc *TriContour) Bands() []BandPolygon {
	var out []BandPolygon
	last := len(tc.Levels) - 2
	for _, t := range tc.Triangles {
		tri := []sample{
			{tc.X[t[0]], tc.Y[t[0]], tc.Z[t[0]]},
			{tc.X[t[1]], tc.Y[t[1]], tc.Z[t[1]]},
			{tc.X[t[2]], tc.Y[t[2]], tc.Z[t[2]]},
		}
		for b := 0; b <= last; b++ {
			poly := clipBand(tri, tc.Levels[b], tc.Levels[b+1], b == 0, b == last)
			if len(poly) < 3 {
				continue
			}
			verts := make([]triangulate.Point, len(poly))
			for i, s := range poly {
				verts[i] = triangulate.Point{X: s.x, Y: s.y}
			}
			out = append(out, BandPolygon{Band: b, Vertices: verts})
		}
	}
	return out
}

type sample struct {
	x, y, z float64
}

// clipBand keeps the part of poly with lo <= z <= hi. The first band is
// open below and the last band open above.
func clipBand(poly []sample, lo, hi float64, first, last bool) []sample {
	if !first {
		poly = clipHalf(poly, lo, true)
	}
	if !last {
		poly = clipHalf(poly, hi, false)
	}
	return poly
}

// clipHalf is one Sutherland-Hodgman pass against the level set z = level,
// keeping z >= level when above is set and z <= level otherwise.
func clipHalf(poly []sample, level float64, above bool) []sample {
	if len(poly) == 0 {
		return nil
	}
	inside := func(s sample) bool {
		if above {
			return s.z >= level
		}
		return s.z <= level
	}

	out := make([]sample, 0, len(poly)+2)
	for i, cur := range poly {
		next := poly[(i+1)%len(poly)]
		cin, nin := inside(cur), inside(next)
		if cin {
			out = append(out, cur)
		}
		if cin != nin {
			t := (level - cur.z) / (next.z - cur.z)
			out = append(out, sample{
				x: cur.x + t*(next.x-cur.x),
				y: cur.y + t*(next.y-cur.y),
				z: level,
			})
		}
	}
	return out
}
