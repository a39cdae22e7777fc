package frame

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	testData := map[string]struct {
		input    string
		names    []string
		kinds    map[string]Kind
		numRows  int
		err      error
	}{
		"empty input": {
			err: ErrNoHeader,
		},
		"header only": {
			input:   "time_period,location,cases\n",
			names:   []string{"time_period", "location", "cases"},
			kinds:   map[string]Kind{"time_period": String, "location": String, "cases": String},
			numRows: 0,
		},
		"type inference": {
			input: "time_period,location,cases\n2013-04,Bokeo,10\n2013-05,Bokeo,12.5\n",
			names: []string{"time_period", "location", "cases"},
			kinds: map[string]Kind{"time_period": String, "location": String, "cases": Float},
			numRows: 2,
		},
		"empty cells become NaN in float columns": {
			input:   "location,cases\nBokeo,10\nSisattanak,\n",
			names:   []string{"location", "cases"},
			kinds:   map[string]Kind{"location": String, "cases": Float},
			numRows: 2,
		},
		"mixed column stays string": {
			input:   "id\n1\ntwo\n",
			names:   []string{"id"},
			kinds:   map[string]Kind{"id": String},
			numRows: 2,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			f, err := ReadCSV(strings.NewReader(td.input))
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, td.names, f.Names())
			assert.Equal(t, td.numRows, f.NumRows())
			for colName, kind := range td.kinds {
				c, ok := f.Col(colName)
				require.True(t, ok)
				assert.Equal(t, kind, c.Kind, colName)
			}
		})
	}
}

func TestReadCSVNaN(t *testing.T) {
	f, err := ReadCSV(strings.NewReader("location,cases\nBokeo,10\nSisattanak,\n"))
	require.NoError(t, err)

	cases, err := f.Floats("cases")
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, 10.0, cases[0])
	assert.True(t, math.IsNaN(cases[1]))
}

func TestWriteCSV(t *testing.T) {
	f, err := New(
		NewStringColumn("time_period", []string{"2013-04", "2013-05"}),
		NewStringColumn("location", []string{"Bokeo", "Bokeo"}),
		NewFloatColumn("sample_0", []float64{10, 20.5}),
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(f, &buf))
	assert.Equal(t, "time_period,location,sample_0\n2013-04,Bokeo,10\n2013-05,Bokeo,20.5\n", buf.String())
}

func TestWriteCSVListColumn(t *testing.T) {
	f, err := New(NewListColumn("samples", [][]float64{{1, 2}}))
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.ErrorIs(t, WriteCSV(f, &buf), ErrListColumn)
}

func TestCSVFileRoundTrip(t *testing.T) {
	f, err := New(
		NewStringColumn("location", []string{"Bokeo", "Sisattanak"}),
		NewFloatColumn("cases", []float64{10, 8}),
	)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "cases.csv")
	require.NoError(t, WriteCSVFile(f, path))

	next, err := ReadCSVFile(path)
	require.NoError(t, err)
	require.Equal(t, f, next)
}
