package samples

import (
	"fmt"
	"sort"
	"strings"

	"github.com/epiforecast/modelkit/frame"
)

// ToLong converts a nested frame into the long representation with one row
// per forecast unit and sample index. Metadata columns are replicated for
// each sample, a sample_id column carries the 1-based sample position, and
// the sample value lands in valueColumn. An empty valueColumn selects the
// default expected by scoring tools.
func ToLong(f *frame.Frame, valueColumn string) (*frame.Frame, error) {
	if valueColumn == "" {
		valueColumn = DefaultValueColumn
	}
	lists, err := f.Lists(SamplesColumn)
	if err != nil {
		return nil, fmt.Errorf("%v, %w", err, ErrNoSamplesColumn)
	}

	var meta []string
	for _, name := range f.Names() {
		if name == SamplesColumn {
			continue
		}
		meta = append(meta, name)
	}

	var rowIdx []int
	var ids, vals []float64
	for i, seq := range lists {
		for j, v := range seq {
			rowIdx = append(rowIdx, i)
			ids = append(ids, float64(j+1))
			vals = append(vals, v)
		}
	}

	metaFrame, err := f.Select(meta...)
	if err != nil {
		return nil, err
	}
	long := metaFrame.Filter(rowIdx)
	if err := long.Append(frame.NewFloatColumn(DefaultIndexColumn, ids)); err != nil {
		return nil, err
	}
	if err := long.Append(frame.NewFloatColumn(valueColumn, vals)); err != nil {
		return nil, err
	}
	return long, nil
}

// LongOptions configures FromLong for interoperability with external long
// format sources that use their own column names.
type LongOptions struct {
	// ValueColumn holds the sample values. Defaults to "prediction".
	ValueColumn string

	// IndexColumn holds the 1-based sample position. Defaults to
	// "sample_id". When present in the input, rows are ordered by its
	// numeric value within each group before samples are collected, so
	// reconstruction does not depend on input row order. When absent,
	// input row order within the group is preserved.
	IndexColumn string

	// GroupColumns are the metadata columns defining a forecast unit.
	// Defaults to time_period and location. Columns outside this set do
	// not survive the conversion.
	GroupColumns []string
}

func (opt *LongOptions) withDefaults() LongOptions {
	next := LongOptions{}
	if opt != nil {
		next = *opt
	}
	if next.ValueColumn == "" {
		next.ValueColumn = DefaultValueColumn
	}
	if next.IndexColumn == "" {
		next.IndexColumn = DefaultIndexColumn
	}
	if len(next.GroupColumns) == 0 {
		next.GroupColumns = DefaultGroupColumns
	}
	return next
}

// FromLong groups a long frame by the configured group columns and collects
// each group's values into a sample sequence, producing one nested row per
// distinct group key in first-appearance order. A nil opt uses the
// conventional column names.
func FromLong(f *frame.Frame, opt *LongOptions) (*frame.Frame, error) {
	o := opt.withDefaults()

	valCol, ok := f.Col(o.ValueColumn)
	if !ok {
		return nil, fmt.Errorf("value column %q, %w", o.ValueColumn, frame.ErrColumnNotFound)
	}
	if valCol.Kind != frame.Float {
		return nil, fmt.Errorf("value column %q is %s, not float, %w", o.ValueColumn, valCol.Kind, frame.ErrKindMismatch)
	}
	groupCols := make([]frame.Column, 0, len(o.GroupColumns))
	for _, name := range o.GroupColumns {
		c, ok := f.Col(name)
		if !ok {
			return nil, fmt.Errorf("group column %q, %w", name, frame.ErrColumnNotFound)
		}
		groupCols = append(groupCols, c)
	}

	var idxVals []float64
	if c, ok := f.Col(o.IndexColumn); ok && c.Kind == frame.Float {
		idxVals = c.Floats
	}

	groupOf := make(map[string]int)
	var firstRow []int
	var members [][]int
	for i := 0; i < f.NumRows(); i++ {
		var key strings.Builder
		for _, c := range groupCols {
			key.WriteString(c.Cell(i))
			key.WriteByte(0x1f)
		}
		g, ok := groupOf[key.String()]
		if !ok {
			g = len(members)
			groupOf[key.String()] = g
			firstRow = append(firstRow, i)
			members = append(members, nil)
		}
		members[g] = append(members[g], i)
	}

	lists := make([][]float64, 0, len(members))
	for _, rows := range members {
		if idxVals != nil {
			sort.SliceStable(rows, func(a, b int) bool {
				return idxVals[rows[a]] < idxVals[rows[b]]
			})
		}
		seq := make([]float64, 0, len(rows))
		for _, i := range rows {
			seq = append(seq, valCol.Floats[i])
		}
		lists = append(lists, seq)
	}

	keyFrame, err := f.Select(o.GroupColumns...)
	if err != nil {
		return nil, err
	}
	nested := keyFrame.Filter(firstRow)
	if err := nested.Append(frame.NewListColumn(SamplesColumn, lists)); err != nil {
		return nil, err
	}
	return nested, nil
}
