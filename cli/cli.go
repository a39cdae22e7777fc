// Package cli exposes a user-supplied forecasting model as a command-line
// tool with the train/predict subcommands the disease-forecasting platform
// invokes, plus a plot subcommand for inspecting prediction files.
package cli

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/epiforecast/modelkit"
	"github.com/epiforecast/modelkit/config"
)

// New builds the root command for a model tool. The returned command can be
// extended with model-specific subcommands before execution.
func New(name string, m modelkit.Model) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           name,
		Short:         name + " forecasting model tool",
		Long:          name + " exposes a forecasting model as train/predict commands for the forecasting platform.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")

	rootCmd.AddCommand(newTrainCmd(m))
	rootCmd.AddCommand(newPredictCmd(m))
	rootCmd.AddCommand(newPlotCmd())
	return rootCmd
}

// Execute runs the model tool and exits non-zero on failure. This is the
// single call a model author's main function makes.
func Execute(name string, m modelkit.Model) {
	if err := New(name, m).Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// loadConfig parses the --config flag when given, returning nil when the
// model runs without a configuration file.
func loadConfig(cmd *cobra.Command) (map[string]any, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil || path == "" {
		return nil, err
	}
	log.Debugf("loading config from %s", path)
	return config.Load(path)
}
