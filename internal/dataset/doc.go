// Package dataset loads the two tables moonplot renders and derives the
// values the plots need.
//
// Responsibilities: CSV parsing of the points table (x, y, label) and the
// decision-boundary grid table (x, y, score), sign binarization, and the
// display bounds shared by both plots.
// Key types: Point, GridSample, Prepared, Bounds.
//
// Failures are typed: MissingInputError for absent or unreadable files and
// MalformedInputError for content that cannot be parsed.
package dataset
