// Package frame implements a small column-oriented table used to move
// prediction data between CSV files and the sample conversion routines.
// Columns are typed as strings, floats, or lists of floats. The list kind
// holds a variable-length numeric sequence per row and is how nested
// prediction samples are stored in memory.
package frame

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	ErrColumnLenMismatch = errors.New("columns have different lengths")
	ErrDuplicateColumn   = errors.New("duplicate column name")
	ErrColumnNotFound    = errors.New("column not found")
	ErrKindMismatch      = errors.New("column has a different kind than requested")
)

// Kind describes the storage type of a Column.
type Kind int

const (
	String Kind = iota
	Float
	List
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Float:
		return "float"
	case List:
		return "list"
	}
	return "unknown"
}

// Column is a named, typed slice of values. Exactly one of Strings, Floats,
// or Lists is populated depending on Kind.
type Column struct {
	Name    string
	Kind    Kind
	Strings []string
	Floats  []float64
	Lists   [][]float64
}

// NewStringColumn returns a string column holding a copy of vals.
func NewStringColumn(name string, vals []string) Column {
	c := Column{Name: name, Kind: String, Strings: make([]string, len(vals))}
	copy(c.Strings, vals)
	return c
}

// NewFloatColumn returns a float column holding a copy of vals.
func NewFloatColumn(name string, vals []float64) Column {
	c := Column{Name: name, Kind: Float, Floats: make([]float64, len(vals))}
	copy(c.Floats, vals)
	return c
}

// NewListColumn returns a list column holding a deep copy of vals.
func NewListColumn(name string, vals [][]float64) Column {
	c := Column{Name: name, Kind: List, Lists: make([][]float64, len(vals))}
	for i, v := range vals {
		row := make([]float64, len(v))
		copy(row, v)
		c.Lists[i] = row
	}
	return c
}

// Len returns the number of rows in the column.
func (c Column) Len() int {
	switch c.Kind {
	case String:
		return len(c.Strings)
	case Float:
		return len(c.Floats)
	case List:
		return len(c.Lists)
	}
	return 0
}

// Copy returns a deep copy of the column.
func (c Column) Copy() Column {
	switch c.Kind {
	case Float:
		return NewFloatColumn(c.Name, c.Floats)
	case List:
		return NewListColumn(c.Name, c.Lists)
	default:
		return NewStringColumn(c.Name, c.Strings)
	}
}

// Cell formats the value at row i for CSV output. Floats use the shortest
// representation that round-trips; NaN renders as an empty cell. List cells
// have no CSV representation and render empty.
func (c Column) Cell(i int) string {
	switch c.Kind {
	case String:
		return c.Strings[i]
	case Float:
		if math.IsNaN(c.Floats[i]) {
			return ""
		}
		return strconv.FormatFloat(c.Floats[i], 'f', -1, 64)
	}
	return ""
}

// Frame is an ordered collection of equal-length, uniquely-named columns.
type Frame struct {
	cols []Column
}

// New returns a frame over the given columns, validating that all columns
// share the same length and that no name repeats.
func New(cols ...Column) (*Frame, error) {
	seen := make(map[string]struct{}, len(cols))
	n := -1
	for _, c := range cols {
		if _, ok := seen[c.Name]; ok {
			return nil, fmt.Errorf("%q, %w", c.Name, ErrDuplicateColumn)
		}
		seen[c.Name] = struct{}{}
		if n == -1 {
			n = c.Len()
			continue
		}
		if c.Len() != n {
			return nil, fmt.Errorf(
				"column %q has %d rows, expected %d, %w",
				c.Name, c.Len(), n, ErrColumnLenMismatch,
			)
		}
	}
	f := &Frame{cols: make([]Column, 0, len(cols))}
	for _, c := range cols {
		f.cols = append(f.cols, c.Copy())
	}
	return f, nil
}

// NumRows returns the number of rows in the frame.
func (f *Frame) NumRows() int {
	if len(f.cols) == 0 {
		return 0
	}
	return f.cols[0].Len()
}

// NumCols returns the number of columns in the frame.
func (f *Frame) NumCols() int {
	return len(f.cols)
}

// Names returns the column names in order.
func (f *Frame) Names() []string {
	names := make([]string, 0, len(f.cols))
	for _, c := range f.cols {
		names = append(names, c.Name)
	}
	return names
}

// Col returns the column with the given name.
func (f *Frame) Col(name string) (Column, bool) {
	for _, c := range f.cols {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// HasCol reports whether a column with the given name exists.
func (f *Frame) HasCol(name string) bool {
	_, ok := f.Col(name)
	return ok
}

// Floats returns the values of a float column.
func (f *Frame) Floats(name string) ([]float64, error) {
	c, ok := f.Col(name)
	if !ok {
		return nil, fmt.Errorf("%q, %w", name, ErrColumnNotFound)
	}
	if c.Kind != Float {
		return nil, fmt.Errorf("%q is %s, not float, %w", name, c.Kind, ErrKindMismatch)
	}
	vals := make([]float64, len(c.Floats))
	copy(vals, c.Floats)
	return vals, nil
}

// Lists returns the values of a list column.
func (f *Frame) Lists(name string) ([][]float64, error) {
	c, ok := f.Col(name)
	if !ok {
		return nil, fmt.Errorf("%q, %w", name, ErrColumnNotFound)
	}
	if c.Kind != List {
		return nil, fmt.Errorf("%q is %s, not list, %w", name, c.Kind, ErrKindMismatch)
	}
	vals := make([][]float64, len(c.Lists))
	for i, v := range c.Lists {
		row := make([]float64, len(v))
		copy(row, v)
		vals[i] = row
	}
	return vals, nil
}

// Append adds a column to the frame. The column must match the frame's row
// count unless the frame is empty.
func (f *Frame) Append(c Column) error {
	if f.HasCol(c.Name) {
		return fmt.Errorf("%q, %w", c.Name, ErrDuplicateColumn)
	}
	if len(f.cols) > 0 && c.Len() != f.NumRows() {
		return fmt.Errorf(
			"column %q has %d rows, expected %d, %w",
			c.Name, c.Len(), f.NumRows(), ErrColumnLenMismatch,
		)
	}
	f.cols = append(f.cols, c.Copy())
	return nil
}

// Copy returns a deep copy of the frame.
func (f *Frame) Copy() *Frame {
	next := &Frame{cols: make([]Column, 0, len(f.cols))}
	for _, c := range f.cols {
		next.cols = append(next.cols, c.Copy())
	}
	return next
}

// Select returns a new frame containing only the named columns, in the
// order given.
func (f *Frame) Select(names ...string) (*Frame, error) {
	next := &Frame{cols: make([]Column, 0, len(names))}
	for _, name := range names {
		c, ok := f.Col(name)
		if !ok {
			return nil, fmt.Errorf("%q, %w", name, ErrColumnNotFound)
		}
		next.cols = append(next.cols, c.Copy())
	}
	return next, nil
}

// Filter returns a new frame containing the rows whose indexes appear in
// idx, in the order given.
func (f *Frame) Filter(idx []int) *Frame {
	next := &Frame{cols: make([]Column, 0, len(f.cols))}
	for _, c := range f.cols {
		fc := Column{Name: c.Name, Kind: c.Kind}
		switch c.Kind {
		case String:
			fc.Strings = make([]string, 0, len(idx))
			for _, i := range idx {
				fc.Strings = append(fc.Strings, c.Strings[i])
			}
		case Float:
			fc.Floats = make([]float64, 0, len(idx))
			for _, i := range idx {
				fc.Floats = append(fc.Floats, c.Floats[i])
			}
		case List:
			fc.Lists = make([][]float64, 0, len(idx))
			for _, i := range idx {
				row := make([]float64, len(c.Lists[i]))
				copy(row, c.Lists[i])
				fc.Lists = append(fc.Lists, row)
			}
		}
		next.cols = append(next.cols, fc)
	}
	return next
}
