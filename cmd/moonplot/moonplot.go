// Command moonplot renders a labeled 2D point set and a sampled decision
// boundary from the working directory into two PNG images.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/banshee-data/moonplot/internal/dataset"
	"github.com/banshee-data/moonplot/internal/fsutil"
	"github.com/banshee-data/moonplot/internal/monitoring"
	"github.com/banshee-data/moonplot/internal/render"
	"github.com/banshee-data/moonplot/internal/version"
)

// Input and output files, relative to the working directory.
const (
	PointsFile    = "moons.csv"
	GridFile      = "moons_decision_boundary.csv"
	DatasetImage  = "moons_dataset.png"
	BoundaryImage = "decision_boundary.png"
)

func main() {
	if err := run(fsutil.OSFileSystem{}, os.Stdout); err != nil {
		log.Fatalf("moonplot: %v", err)
	}
}

// run loads both tables, renders both images and reports on stdout. A
// missing input is reported and treated as a normal end of the run; any
// other failure is returned.
func run(fsys fsutil.FileSystem, stdout io.Writer) error {
	monitoring.Logf("version %s", version.String())

	points, err := dataset.LoadPoints(fsys, PointsFile)
	var grid []dataset.GridSample
	if err == nil {
		grid, err = dataset.LoadGrid(fsys, GridFile)
	}
	var missing *dataset.MissingInputError
	if errors.As(err, &missing) {
		fmt.Fprintf(stdout, "could not find file\n%v\n", missing)
		return nil
	}
	if err != nil {
		return err
	}
	monitoring.Logf("loaded %d points from %s, %d grid samples from %s", len(points), PointsFile, len(grid), GridFile)

	prep, err := dataset.Prepare(points, grid)
	if err != nil {
		return err
	}
	monitoring.Logf("display bounds %s", prep.Bounds)

	if err := render.SaveRawDataset(fsys, DatasetImage, prep); err != nil {
		return err
	}
	if err := render.SaveDecisionBoundary(fsys, BoundaryImage, prep); err != nil {
		return err
	}

	fmt.Fprintln(stdout, "saved plots as images")
	return nil
}
