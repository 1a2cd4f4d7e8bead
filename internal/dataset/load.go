package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/banshee-data/moonplot/internal/fsutil"
)

// Column names of the two input tables.
const (
	ColumnX     = "x"
	ColumnY     = "y"
	ColumnLabel = "label"
	ColumnScore = "score"
)

// LoadPoints reads the points table at path. It requires the columns
// x, y and label; any other columns are ignored.
func LoadPoints(fsys fsutil.FileSystem, path string) ([]Point, error) {
	rows, err := readTable(fsys, path, ColumnX, ColumnY, ColumnLabel)
	if err != nil {
		return nil, err
	}
	points := make([]Point, len(rows))
	for i, r := range rows {
		points[i] = Point{X: r[0], Y: r[1], Label: r[2]}
	}
	return points, nil
}

// LoadGrid reads the decision-boundary table at path. It requires the
// columns x, y and score; any other columns are ignored. The display
// bounds come from this table, so it must have at least one row.
func LoadGrid(fsys fsutil.FileSystem, path string) ([]GridSample, error) {
	rows, err := readTable(fsys, path, ColumnX, ColumnY, ColumnScore)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &MalformedInputError{Path: path, Err: ErrEmptyTable}
	}
	grid := make([]GridSample, len(rows))
	for i, r := range rows {
		grid[i] = GridSample{X: r[0], Y: r[1], Score: r[2]}
	}
	return grid, nil
}

// readTable parses a header-led CSV table and returns, per data row, the
// values of the requested columns in the order they were requested.
func readTable(fsys fsutil.FileSystem, path string, columns ...string) ([][]float64, error) {
	f, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, &MissingInputError{Path: path, Err: err}
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.ReuseRecord = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, &MalformedInputError{Path: path, Err: ErrEmptyTable}
	}
	if err != nil {
		return nil, parseFailure(path, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.TrimSpace(name)
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	positions := make([]int, len(columns))
	for i, name := range columns {
		pos, ok := index[name]
		if !ok {
			return nil, &MalformedInputError{Path: path, Line: 1, Column: name, Err: ErrMissingColumn}
		}
		positions[i] = pos
	}

	var rows [][]float64
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, parseFailure(path, err)
		}

		line, _ := r.FieldPos(0)
		row := make([]float64, len(columns))
		for i, pos := range positions {
			v, err := strconv.ParseFloat(strings.TrimSpace(record[pos]), 64)
			if err != nil {
				return nil, &MalformedInputError{Path: path, Line: line, Column: columns[i], Err: err}
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseFailure(path string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &MalformedInputError{Path: path, Line: pe.Line, Err: pe.Err}
	}
	return &MalformedInputError{Path: path, Err: err}
}
