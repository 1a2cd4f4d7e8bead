package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/palette/brewer"
)

// SpectralSteps is the number of ColorBrewer Spectral stops the class scale
// interpolates between.
const SpectralSteps = 11

// ClassColors is the two-class diverging color scale shared by markers and
// contour bands: ColorBrewer Spectral, red at class 0 through yellow to
// blue at class 1.
type ClassColors struct {
	stops []color.NRGBA
}

// NewClassColors returns the scale over the class domain [0, 1].
func NewClassColors() *ClassColors {
	p, err := brewer.GetPalette(brewer.TypeDiverging, "Spectral", SpectralSteps)
	if err != nil {
		panic(fmt.Sprintf("render: spectral palette: %v", err))
	}
	cs := p.Colors()
	stops := make([]color.NRGBA, len(cs))
	for i, c := range cs {
		stops[i] = color.NRGBAModel.Convert(c).(color.NRGBA)
	}
	return &ClassColors{stops: stops}
}

// At returns the color for v, clamped to [0, 1], linearly interpolated
// between the neighbouring palette stops.
func (cc *ClassColors) At(v float64) color.Color {
	if math.IsNaN(v) {
		v = 0
	}
	v = math.Max(0, math.Min(1, v))

	pos := v * float64(len(cc.stops)-1)
	i := int(pos)
	if i >= len(cc.stops)-1 {
		return cc.stops[len(cc.stops)-1]
	}
	frac := pos - float64(i)
	a, b := cc.stops[i], cc.stops[i+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + frac*(float64(y)-float64(x)) + 0.5)
	}
	return color.NRGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 255}
}

// Class returns the color of a binarized class.
func (cc *ClassColors) Class(class int) color.Color {
	return cc.At(float64(class))
}

// blend composites c at opacity alpha over an opaque background bg.
func blend(c, bg color.Color, alpha float64) color.NRGBA {
	fg := color.NRGBAModel.Convert(c).(color.NRGBA)
	if bg == nil {
		bg = color.White
	}
	back := color.NRGBAModel.Convert(bg).(color.NRGBA)
	mix := func(f, b uint8) uint8 {
		return uint8(alpha*float64(f) + (1-alpha)*float64(b) + 0.5)
	}
	return color.NRGBA{R: mix(fg.R, back.R), G: mix(fg.G, back.G), B: mix(fg.B, back.B), A: 255}
}
