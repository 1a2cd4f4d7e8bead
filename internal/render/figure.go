package render

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/banshee-data/moonplot/internal/dataset"
	"github.com/banshee-data/moonplot/internal/fsutil"
	"github.com/banshee-data/moonplot/internal/monitoring"
)

// Canvas geometry shared by both images: 8x6 inches at 300 DPI.
const (
	FigureWidth  = 8 * vg.Inch
	FigureHeight = 6 * vg.Inch
	FigureDPI    = 300
)

// ErrFigureClosed is returned when a released figure is used.
var ErrFigureClosed = errors.New("render: figure is closed")

// Figure is one plot canvas. It is created per image and must be released
// with Close, typically via defer, once the image is written.
type Figure struct {
	plot   *plot.Plot
	bounds dataset.Bounds
	width  vg.Length
	height vg.Length
	dpi    int
}

// NewFigure creates a figure with the given title, axis labels x1/x2 and
// axis limits pinned to bounds. The axes carry no padding, so the frame
// sits exactly on the bounds and nothing outside them is drawn.
func NewFigure(title string, bounds dataset.Bounds) *Figure {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x1"
	p.Y.Label.Text = "x2"
	p.X.Padding, p.Y.Padding = 0, 0

	f := &Figure{
		plot:   p,
		bounds: bounds,
		width:  FigureWidth,
		height: FigureHeight,
		dpi:    FigureDPI,
	}
	f.pinAxes()
	return f
}

// Plot returns the underlying plot, or nil once the figure is closed.
func (f *Figure) Plot() *plot.Plot {
	return f.plot
}

// Add draws ps in order, later plotters on top of earlier ones. Axis limits
// stay at the figure bounds whatever the plotters' data ranges are.
func (f *Figure) Add(ps ...plot.Plotter) error {
	if f.plot == nil {
		return ErrFigureClosed
	}
	f.plot.Add(ps...)
	f.pinAxes()
	return nil
}

func (f *Figure) pinAxes() {
	f.plot.X.Min, f.plot.X.Max = f.bounds.XMin, f.bounds.XMax
	f.plot.Y.Min, f.plot.Y.Max = f.bounds.YMin, f.bounds.YMax
}

// PixelSize returns the raster dimensions the figure encodes to.
func (f *Figure) PixelSize() (w, h int) {
	dpi := float64(f.dpi)
	return int(f.width.Dots(dpi) + 0.5), int(f.height.Dots(dpi) + 0.5)
}

// WriteTo renders the figure as PNG to w.
func (f *Figure) WriteTo(w io.Writer) (int64, error) {
	if f.plot == nil {
		return 0, ErrFigureClosed
	}
	c := vgimg.NewWith(vgimg.UseWH(f.width, f.height), vgimg.UseDPI(f.dpi))
	f.plot.Draw(draw.New(c))
	return vgimg.PngCanvas{Canvas: c}.WriteTo(w)
}

// Save writes the figure as PNG to path, replacing any existing file.
func (f *Figure) Save(fsys fsutil.FileSystem, path string) (err error) {
	if f.plot == nil {
		return ErrFigureClosed
	}
	out, err := fsys.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	n, err := f.WriteTo(out)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	w, h := f.PixelSize()
	monitoring.Logf("wrote %s (%dx%d px, %d bytes)", path, w, h, n)
	return nil
}

// Close releases the plot. It is safe to call more than once.
func (f *Figure) Close() error {
	f.plot = nil
	return nil
}
