// Package render draws the two moonplot images with gonum/plot.
//
// Responsibilities: the Figure resource (one explicitly owned canvas per
// image, released with Close), the two-class color scale, outlined scatter
// markers, and the filled contour computed over a Delaunay triangulation
// of scattered grid samples.
// Key types: Figure, ClassColors, TriContour.
package render
