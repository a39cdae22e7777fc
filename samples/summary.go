package samples

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/stat"

	"github.com/epiforecast/modelkit/frame"
)

// DefaultProbabilities is the dense probability grid used for hub style
// quantile submissions.
var DefaultProbabilities = []float64{
	0.01, 0.025,
	0.05, 0.10, 0.15, 0.20, 0.25, 0.30, 0.35, 0.40, 0.45, 0.50,
	0.55, 0.60, 0.65, 0.70, 0.75, 0.80, 0.85, 0.90, 0.95,
	0.975, 0.99,
}

// DefaultConfidenceLevels are the interval widths reported by Summarize.
var DefaultConfidenceLevels = []float64{0.5, 0.9, 0.95}

const (
	// QuantileColumn holds the probability in the quantile representation.
	QuantileColumn = "quantile"

	// QuantileValueColumn holds the estimated quantile value.
	QuantileValueColumn = "value"
)

var (
	ErrProbabilityRange = errors.New("probabilities must be within [0, 1]")
	ErrConfidenceRange  = errors.New("confidence levels must be within (0, 1)")
)

// quantile computes the empirical quantile of vals at probability p using
// linear interpolation between order statistics, matching the conventional
// statistical definition (R type 7, the numpy default). NaN entries are
// dropped before estimation.
func quantile(vals []float64, p float64) float64 {
	finite := make([]float64, 0, len(vals))
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		finite = append(finite, v)
	}
	if len(finite) == 0 {
		return math.NaN()
	}
	sort.Float64s(finite)
	if len(finite) == 1 {
		return finite[0]
	}

	h := p * float64(len(finite)-1)
	lo := int(math.Floor(h))
	hi := lo + 1
	if hi >= len(finite) {
		return finite[len(finite)-1]
	}
	return finite[lo] + (h-math.Floor(h))*(finite[hi]-finite[lo])
}

// mean computes the arithmetic mean of vals, ignoring NaN entries.
func mean(vals []float64) float64 {
	finite := make([]float64, 0, len(vals))
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		finite = append(finite, v)
	}
	if len(finite) == 0 {
		return math.NaN()
	}
	return stat.Mean(finite, nil)
}

// Quantiles derives the lossy quantile representation from a nested frame:
// one output row per forecast unit and probability, with the probability in
// the quantile column and the estimated value in the value column. A nil
// probs uses DefaultProbabilities.
func Quantiles(f *frame.Frame, probs []float64) (*frame.Frame, error) {
	if len(probs) == 0 {
		probs = DefaultProbabilities
	}
	for _, p := range probs {
		if p < 0 || p > 1 || math.IsNaN(p) {
			return nil, fmt.Errorf("probability %v, %w", p, ErrProbabilityRange)
		}
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
	var qs, vals []float64
	for i, seq := range lists {
		for _, p := range probs {
			rowIdx = append(rowIdx, i)
			qs = append(qs, p)
			vals = append(vals, quantile(seq, p))
		}
	}

	metaFrame, err := f.Select(meta...)
	if err != nil {
		return nil, err
	}
	out := metaFrame.Filter(rowIdx)
	if err := out.Append(frame.NewFloatColumn(QuantileColumn, qs)); err != nil {
		return nil, err
	}
	if err := out.Append(frame.NewFloatColumn(QuantileValueColumn, vals)); err != nil {
		return nil, err
	}
	return out, nil
}

// intervalColumnName renders lower_90 / upper_95 style names from a
// confidence level.
func intervalColumnName(side string, level float64) string {
	return side + "_" + strconv.Itoa(int(math.Round(level*100)))
}

// Summarize annotates a nested frame with mean, median, and central
// interval bound columns per confidence level without removing the samples
// column. Level L produces lower_<L*100> and upper_<L*100> at the
// (1-L)/2 and 1-(1-L)/2 quantiles. A nil levels uses
// DefaultConfidenceLevels. Name collisions between requested levels are the
// caller's responsibility.
func Summarize(f *frame.Frame, levels []float64) (*frame.Frame, error) {
	if len(levels) == 0 {
		levels = DefaultConfidenceLevels
	}
	for _, l := range levels {
		if l <= 0 || l >= 1 || math.IsNaN(l) {
			return nil, fmt.Errorf("confidence level %v, %w", l, ErrConfidenceRange)
		}
	}
	lists, err := f.Lists(SamplesColumn)
	if err != nil {
		return nil, fmt.Errorf("%v, %w", err, ErrNoSamplesColumn)
	}

	out := f.Copy()
	means := make([]float64, 0, len(lists))
	medians := make([]float64, 0, len(lists))
	for _, seq := range lists {
		means = append(means, mean(seq))
		medians = append(medians, quantile(seq, 0.5))
	}
	if err := out.Append(frame.NewFloatColumn("mean", means)); err != nil {
		return nil, err
	}
	if err := out.Append(frame.NewFloatColumn("median", medians)); err != nil {
		return nil, err
	}

	for _, level := range levels {
		tail := (1 - level) / 2
		lower := make([]float64, 0, len(lists))
		upper := make([]float64, 0, len(lists))
		for _, seq := range lists {
			lower = append(lower, quantile(seq, tail))
			upper = append(upper, quantile(seq, 1-tail))
		}
		if err := out.Append(frame.NewFloatColumn(intervalColumnName("lower", level), lower)); err != nil {
			return nil, err
		}
		if err := out.Append(frame.NewFloatColumn(intervalColumnName("upper", level), upper)); err != nil {
			return nil, err
		}
	}
	return out, nil
}
