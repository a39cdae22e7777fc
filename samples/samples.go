// Package samples converts per-forecast-unit prediction samples between the
// four representations exchanged with the forecasting platform: nested (one
// row per forecast unit with an embedded sample sequence), wide (samples
// spread across sample_0..sample_{N-1} columns), long (one row per unit and
// sample index), and quantile (one row per unit and probability, derived and
// lossy). Conversions are pure and eagerly validated; every output frame is
// an independent copy of its input.
package samples

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/epiforecast/modelkit/frame"
)

const (
	// SampleColumnPrefix is the naming convention for wide-format sample
	// columns, suffixed with a zero-based integer: sample_0, sample_1, ...
	SampleColumnPrefix = "sample_"

	// SamplesColumn is the list column holding sample sequences in the
	// nested representation.
	SamplesColumn = "samples"

	// DefaultValueColumn is the long-format value column name expected by
	// downstream scoring tools.
	DefaultValueColumn = "prediction"

	// DefaultIndexColumn is the long-format sample index column name.
	DefaultIndexColumn = "sample_id"
)

// DefaultGroupColumns are the metadata columns conventionally identifying a
// forecast unit.
var DefaultGroupColumns = []string{"time_period", "location"}

var (
	ErrNoSampleColumns = errors.New("no columns matching the sample_<n> naming convention")
	ErrNoSamplesColumn = errors.New("no samples column in nested input")
	ErrRaggedSamples   = errors.New("all rows must have the same number of samples")
)

type sampleColumn struct {
	name  string
	index int
}

// sampleColumns identifies wide-format sample columns by the fixed prefix
// and integer suffix, ordered by numeric suffix so that sample_2 sorts
// before sample_10.
func sampleColumns(f *frame.Frame) []sampleColumn {
	var cols []sampleColumn
	for _, name := range f.Names() {
		suffix, ok := strings.CutPrefix(name, SampleColumnPrefix)
		if !ok {
			continue
		}
		idx, err := strconv.Atoi(suffix)
		if err != nil || idx < 0 {
			continue
		}
		cols = append(cols, sampleColumn{name: name, index: idx})
	}
	sort.Slice(cols, func(i, j int) bool {
		return cols[i].index < cols[j].index
	})
	return cols
}

// FromWide converts a wide-format frame into the nested representation.
// Sample columns are recognized by the sample_<n> naming convention and
// assembled in numeric suffix order; all remaining columns are metadata and
// are copied through unchanged in their original order. A frame with zero
// rows is legal, but a frame with zero sample columns is an error.
func FromWide(f *frame.Frame) (*frame.Frame, error) {
	sampleCols := sampleColumns(f)
	if len(sampleCols) == 0 {
		return nil, ErrNoSampleColumns
	}
	isSample := make(map[string]struct{}, len(sampleCols))
	for _, sc := range sampleCols {
		c, _ := f.Col(sc.name)
		if c.Kind != frame.Float {
			return nil, fmt.Errorf("sample column %q is %s, not float, %w", sc.name, c.Kind, frame.ErrKindMismatch)
		}
		isSample[sc.name] = struct{}{}
	}

	var meta []string
	for _, name := range f.Names() {
		if _, ok := isSample[name]; ok {
			continue
		}
		meta = append(meta, name)
	}

	nested, err := f.Select(meta...)
	if err != nil {
		return nil, err
	}

	lists := make([][]float64, f.NumRows())
	for i := 0; i < f.NumRows(); i++ {
		seq := make([]float64, 0, len(sampleCols))
		for _, sc := range sampleCols {
			c, _ := f.Col(sc.name)
			seq = append(seq, c.Floats[i])
		}
		lists[i] = seq
	}
	if err := nested.Append(frame.NewListColumn(SamplesColumn, lists)); err != nil {
		return nil, err
	}
	return nested, nil
}

// ToWide converts a nested frame into the wide representation. Every row
// must carry the same number of samples since the wide format is
// rectangular; ragged inputs fail rather than being padded or truncated.
// Sample columns are emitted after all metadata columns.
func ToWide(f *frame.Frame) (*frame.Frame, error) {
	lists, err := f.Lists(SamplesColumn)
	if err != nil {
		return nil, fmt.Errorf("%v, %w", err, ErrNoSamplesColumn)
	}

	n := 0
	if len(lists) > 0 {
		n = len(lists[0])
	}
	for i, seq := range lists {
		if len(seq) != n {
			return nil, fmt.Errorf(
				"row %d has %d samples, expected %d, %w",
				i, len(seq), n, ErrRaggedSamples,
			)
		}
	}

	var meta []string
	for _, name := range f.Names() {
		if name == SamplesColumn {
			continue
		}
		meta = append(meta, name)
	}
	wide, err := f.Select(meta...)
	if err != nil {
		return nil, err
	}

	for j := 0; j < n; j++ {
		vals := make([]float64, 0, len(lists))
		for _, seq := range lists {
			vals = append(vals, seq[j])
		}
		name := SampleColumnPrefix + strconv.Itoa(j)
		if err := wide.Append(frame.NewFloatColumn(name, vals)); err != nil {
			return nil, err
		}
	}
	return wide, nil
}
