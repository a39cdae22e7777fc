package samples

import "github.com/epiforecast/modelkit/frame"

// Format identifies which representation a frame is in.
type Format string

const (
	FormatNested Format = "nested"
	FormatWide   Format = "wide"
	FormatLong   Format = "long"
	FormatNone   Format = "none"
)

// HasSamples reports whether the frame carries prediction samples in either
// the nested or wide representation. Long and quantile forms are not
// considered.
func HasSamples(f *frame.Frame) bool {
	if c, ok := f.Col(SamplesColumn); ok && c.Kind == frame.List {
		return true
	}
	return len(sampleColumns(f)) > 0
}

// DetectFormat classifies a frame by column structure alone, never by row
// content. A nested samples column wins over wide sample_<n> columns, which
// win over the conventional long column pair; a frame matching none of
// these carries no recognized sample structure.
func DetectFormat(f *frame.Frame) Format {
	if c, ok := f.Col(SamplesColumn); ok && c.Kind == frame.List {
		return FormatNested
	}
	if len(sampleColumns(f)) > 0 {
		return FormatWide
	}
	if f.HasCol(DefaultIndexColumn) && f.HasCol(DefaultValueColumn) {
		return FormatLong
	}
	return FormatNone
}
