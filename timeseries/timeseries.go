// Package timeseries loads disease surveillance CSV files into time-indexed
// datasets, sniffing the time period and location columns from conventional
// names so that model authors do not have to declare the file layout.
package timeseries

import (
	"errors"
	"fmt"
	"strings"

	"github.com/epiforecast/modelkit/frame"
)

var (
	ErrNoTimeColumn     = errors.New("no time column found, expected one of: " + strings.Join(timeColumnCandidates, ", "))
	ErrNoLocationColumn = errors.New("no location column found, expected one of: " + strings.Join(locationColumnCandidates, ", "))
	ErrUnknownLocation  = errors.New("location not present in dataset")
)

var (
	timeColumnCandidates     = []string{"time_period", "date", "week", "month", "time"}
	locationColumnCandidates = []string{"location", "region", "district", "area"}
)

// Dataset is a loaded surveillance table together with the detected time
// and location column names.
type Dataset struct {
	Frame          *frame.Frame
	TimeColumn     string
	LocationColumn string
}

// Load reads a CSV file and detects its time and location columns.
func Load(path string) (*Dataset, error) {
	f, err := frame.ReadCSVFile(path)
	if err != nil {
		return nil, err
	}
	return FromFrame(f)
}

// FromFrame wraps an already-loaded frame, detecting the time and location
// columns from their conventional names. Detection checks candidates in
// priority order so a table carrying both time_period and date is indexed
// by time_period.
func FromFrame(f *frame.Frame) (*Dataset, error) {
	timeCol, ok := detect(f, timeColumnCandidates)
	if !ok {
		return nil, ErrNoTimeColumn
	}
	locCol, ok := detect(f, locationColumnCandidates)
	if !ok {
		return nil, ErrNoLocationColumn
	}
	return &Dataset{
		Frame:          f.Copy(),
		TimeColumn:     timeCol,
		LocationColumn: locCol,
	}, nil
}

func detect(f *frame.Frame, candidates []string) (string, bool) {
	for _, name := range candidates {
		if f.HasCol(name) {
			return name, true
		}
	}
	return "", false
}

// Periods returns the time column values in row order.
func (d *Dataset) Periods() []string {
	c, _ := d.Frame.Col(d.TimeColumn)
	periods := make([]string, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		periods = append(periods, c.Cell(i))
	}
	return periods
}

// Locations returns the distinct location values in first-appearance order.
func (d *Dataset) Locations() []string {
	c, _ := d.Frame.Col(d.LocationColumn)
	seen := make(map[string]struct{})
	var locations []string
	for i := 0; i < c.Len(); i++ {
		v := c.Cell(i)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		locations = append(locations, v)
	}
	return locations
}

// ForLocation returns an independent dataset holding only the rows for the
// given location.
func (d *Dataset) ForLocation(name string) (*Dataset, error) {
	c, _ := d.Frame.Col(d.LocationColumn)
	var idx []int
	for i := 0; i < c.Len(); i++ {
		if c.Cell(i) == name {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return nil, fmt.Errorf("%q, %w", name, ErrUnknownLocation)
	}
	return &Dataset{
		Frame:          d.Frame.Filter(idx),
		TimeColumn:     d.TimeColumn,
		LocationColumn: d.LocationColumn,
	}, nil
}

// Values returns a numeric column of the dataset, typically the observed
// case counts a model trains against.
func (d *Dataset) Values(column string) ([]float64, error) {
	return d.Frame.Floats(column)
}
