package cli

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/epiforecast/modelkit"
	"github.com/epiforecast/modelkit/timeseries"
)

func newTrainCmd(m modelkit.Model) *cobra.Command {
	trainCmd := &cobra.Command{
		Use:   "train [flags] training_data_file model_file",
		Short: "fit the model to historical surveillance data",
		Long: `Fit the model to a CSV of historical surveillance data and write the
fitted model to a file for later predict calls.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			data, err := timeseries.Load(args[0])
			if err != nil {
				return fmt.Errorf("unable to load training data, %w", err)
			}
			log.Debugf("loaded %d training rows, time column %q, location column %q",
				data.Frame.NumRows(), data.TimeColumn, data.LocationColumn)

			if err := m.Train(data, cfg); err != nil {
				return fmt.Errorf("unable to train model, %w", err)
			}
			if err := modelkit.SaveModel(args[1], m); err != nil {
				return err
			}
			log.Infof("wrote model to %s", args[1])
			return nil
		},
	}
	trainCmd.Flags().StringP("config", "c", "", "optional yaml/json model configuration file")
	return trainCmd
}
