package modelkit

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/epiforecast/modelkit/frame"
)

// LineForecast generates an echart line chart for a prediction summary,
// plotting the median along with a lower and upper interval bound per
// period. NaN values are skipped.
func LineForecast(title string, periods []string, median, lower, upper []float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	series := map[string][]float64{
		"Median": median,
		"Lower":  lower,
		"Upper":  upper,
	}
	line = line.SetXAxis(periods)
	for _, name := range []string{"Lower", "Median", "Upper"} {
		y := series[name]
		lineData := make([]opts.LineData, 0, len(y))
		for i := 0; i < len(y); i++ {
			if math.IsNaN(y[i]) {
				lineData = append(lineData, opts.LineData{Value: nil})
				continue
			}
			lineData = append(lineData, opts.LineData{Value: y[i]})
		}
		line = line.AddSeries(name, lineData)
	}
	return line
}

// WriteSummaryPlot renders an html page charting a summarized nested frame
// using its median, lower_90, and upper_90 columns. The summarized frame is
// the output of samples.Summarize with the default confidence levels.
func WriteSummaryPlot(w io.Writer, title string, periods []string, summarized *frame.Frame) error {
	median, err := summarized.Floats("median")
	if err != nil {
		return fmt.Errorf("summary frame has no median column, %w", err)
	}
	lower, err := summarized.Floats("lower_90")
	if err != nil {
		return fmt.Errorf("summary frame has no lower_90 column, %w", err)
	}
	upper, err := summarized.Floats("upper_90")
	if err != nil {
		return fmt.Errorf("summary frame has no upper_90 column, %w", err)
	}

	page := components.NewPage()
	page.AddCharts(
		LineForecast(title, periods, median, lower, upper),
	)
	return page.Render(w)
}
