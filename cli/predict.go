package cli

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/epiforecast/modelkit"
	"github.com/epiforecast/modelkit/frame"
	"github.com/epiforecast/modelkit/samples"
	"github.com/epiforecast/modelkit/timeseries"
)

func newPredictCmd(m modelkit.Model) *cobra.Command {
	predictCmd := &cobra.Command{
		Use:   "predict [flags] model_file historic_data_file future_data_file output_file",
		Short: "generate predictions for future periods",
		Long: `Load a fitted model and generate prediction samples for the periods in the
future data CSV, writing wide-format sample columns to the output CSV.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if err := modelkit.LoadModel(args[0], m); err != nil {
				return err
			}
			historic, err := timeseries.Load(args[1])
			if err != nil {
				return fmt.Errorf("unable to load historic data, %w", err)
			}
			future, err := timeseries.Load(args[2])
			if err != nil {
				return fmt.Errorf("unable to load future data, %w", err)
			}

			nested, err := m.Predict(historic, future, cfg)
			if err != nil {
				return fmt.Errorf("unable to predict, %w", err)
			}
			wide, err := samples.ToWide(nested)
			if err != nil {
				return fmt.Errorf("unable to convert predictions to wide format, %w", err)
			}
			if err := frame.WriteCSVFile(wide, args[3]); err != nil {
				return err
			}
			log.Infof("wrote %d prediction rows to %s", wide.NumRows(), args[3])
			return nil
		},
	}
	predictCmd.Flags().StringP("config", "c", "", "optional yaml/json model configuration file")
	return predictCmd
}
