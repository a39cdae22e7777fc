package frame

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

var (
	ErrNoHeader   = errors.New("csv input has no header row")
	ErrListColumn = errors.New("list columns cannot be written to csv")
)

// ReadCSV parses CSV data with a header row into a frame. A column is typed
// as float when every non-empty cell parses as a float64; empty cells in a
// float column become NaN. All other columns are typed as strings with cell
// values preserved verbatim.
func ReadCSV(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("unable to parse csv, %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoHeader
	}

	header := records[0]
	rows := records[1:]
	cols := make([]Column, 0, len(header))
	for j, name := range header {
		cells := make([]string, 0, len(rows))
		for _, rec := range rows {
			cells = append(cells, rec[j])
		}
		if floats, ok := parseFloats(cells); ok {
			cols = append(cols, NewFloatColumn(name, floats))
			continue
		}
		cols = append(cols, NewStringColumn(name, cells))
	}
	return New(cols...)
}

// ReadCSVFile reads a CSV file into a frame.
func ReadCSVFile(path string) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s, %w", path, err)
	}
	defer file.Close()

	f, err := ReadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s, %w", path, err)
	}
	return f, nil
}

// WriteCSV serializes the frame to CSV with a header row. List columns have
// no CSV representation and cause an error; convert to wide format first.
func WriteCSV(f *Frame, w io.Writer) error {
	for _, name := range f.Names() {
		c, _ := f.Col(name)
		if c.Kind == List {
			return fmt.Errorf("%q, %w", name, ErrListColumn)
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(f.Names()); err != nil {
		return fmt.Errorf("unable to write header, %w", err)
	}
	names := f.Names()
	for i := 0; i < f.NumRows(); i++ {
		rec := make([]string, 0, len(names))
		for _, name := range names {
			c, _ := f.Col(name)
			rec = append(rec, c.Cell(i))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("unable to write record %d, %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the frame to a CSV file.
func WriteCSVFile(f *Frame, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create %s, %w", path, err)
	}
	defer file.Close()

	if err := WriteCSV(f, file); err != nil {
		return fmt.Errorf("unable to write %s, %w", path, err)
	}
	return nil
}

func parseFloats(cells []string) ([]float64, bool) {
	if len(cells) == 0 {
		return nil, false
	}
	floats := make([]float64, 0, len(cells))
	allEmpty := true
	for _, cell := range cells {
		if cell == "" {
			floats = append(floats, math.NaN())
			continue
		}
		allEmpty = false
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, false
		}
		floats = append(floats, v)
	}
	if allEmpty {
		return nil, false
	}
	return floats, true
}
