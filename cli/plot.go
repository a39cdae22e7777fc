package cli

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/epiforecast/modelkit"
	"github.com/epiforecast/modelkit/frame"
	"github.com/epiforecast/modelkit/samples"
	"github.com/epiforecast/modelkit/timeseries"
)

func newPlotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plot prediction_file output_html_file",
		Short: "chart a wide-format prediction file",
		Long: `Summarize a wide-format prediction CSV and render an html chart of the
median and 90% interval per time period.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			wide, err := frame.ReadCSVFile(args[0])
			if err != nil {
				return err
			}
			nested, err := samples.FromWide(wide)
			if err != nil {
				return fmt.Errorf("unable to parse prediction samples, %w", err)
			}
			summarized, err := samples.Summarize(nested, nil)
			if err != nil {
				return err
			}

			ds, err := timeseries.FromFrame(wide)
			if err != nil {
				return fmt.Errorf("unable to identify time column, %w", err)
			}

			file, err := os.Create(args[1])
			if err != nil {
				return fmt.Errorf("unable to create %s, %w", args[1], err)
			}
			defer file.Close()

			if err := modelkit.WriteSummaryPlot(file, "Prediction Summary", ds.Periods(), summarized); err != nil {
				return fmt.Errorf("unable to render chart, %w", err)
			}
			log.Infof("wrote chart to %s", args[1])
			return nil
		},
	}
}
