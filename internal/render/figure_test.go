package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/moonplot/internal/dataset"
	"github.com/banshee-data/moonplot/internal/fsutil"
	"github.com/banshee-data/moonplot/internal/monitoring"
)

func TestMain(m *testing.M) {
	monitoring.SetLogger(nil)
	m.Run()
}

func TestNewFigure(t *testing.T) {
	t.Parallel()

	bounds := dataset.Bounds{XMin: -2, XMax: 3, YMin: -1, YMax: 0.5}
	fig := NewFigure("title", bounds)
	defer fig.Close()

	p := fig.Plot()
	require.NotNil(t, p)
	assert.Equal(t, "title", p.Title.Text)
	assert.Equal(t, "x1", p.X.Label.Text)
	assert.Equal(t, "x2", p.Y.Label.Text)
	assert.Equal(t, []float64{-2, 3, -1, 0.5}, []float64{p.X.Min, p.X.Max, p.Y.Min, p.Y.Max})
	assert.Zero(t, p.X.Padding, "x axis must sit on the bounds")
	assert.Zero(t, p.Y.Padding, "y axis must sit on the bounds")

	w, h := fig.PixelSize()
	assert.Equal(t, 2400, w)
	assert.Equal(t, 1800, h)
}

func TestFigure_AddKeepsBounds(t *testing.T) {
	t.Parallel()

	prep := happyPrepared(t, 3)
	// Widen the points past the grid; the axes must not follow them.
	prep.Coords.Set(0, 0, 10)
	prep.Coords.Set(1, 1, -10)

	fig := NewFigure("wide", prep.Bounds)
	defer fig.Close()

	layer, err := pointLayer(prep, NewClassColors())
	require.NoError(t, err)
	require.NoError(t, fig.Add(layer...))

	p := fig.Plot()
	assert.Equal(t, []float64{-1, 1, -1, 1}, []float64{p.X.Min, p.X.Max, p.Y.Min, p.Y.Max})
}

func TestFigure_WriteTo(t *testing.T) {
	t.Parallel()

	fig := NewFigure("empty", dataset.Bounds{XMin: 0, XMax: 1, YMin: 0, YMax: 1})
	defer fig.Close()

	var buf bytes.Buffer
	n, err := fig.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2400, img.Bounds().Dx())
	assert.Equal(t, 1800, img.Bounds().Dy())
}

func TestFigure_Close(t *testing.T) {
	t.Parallel()

	fig := NewFigure("closed", dataset.Bounds{XMin: 0, XMax: 1, YMin: 0, YMax: 1})
	require.NoError(t, fig.Close())
	require.NoError(t, fig.Close(), "Close must be idempotent")

	assert.Nil(t, fig.Plot())
	assert.ErrorIs(t, fig.Add(), ErrFigureClosed)

	_, err := fig.WriteTo(&bytes.Buffer{})
	assert.ErrorIs(t, err, ErrFigureClosed)

	mfs := fsutil.NewMemoryFileSystem()
	assert.ErrorIs(t, fig.Save(mfs, "out.png"), ErrFigureClosed)
	assert.False(t, mfs.Exists("out.png"), "closed figure must not create a file")
}
