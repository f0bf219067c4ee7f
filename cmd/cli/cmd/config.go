// Package cmd - config command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sitegen-cost/core/estimator"
	"sitegen-cost/internal/config"
	apperrors "sitegen-cost/internal/errors"
)

var (
	configJSON  bool
	configForce bool
)

// configCmd manages configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// configShowCmd prints the effective configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := config.Get().Marshal(!configJSON)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

// configInitCmd writes a default configuration file
var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default configuration file",
	Long: `Write the default configuration to path, or to the location named by
--config, $SITECOST_CONFIG or $HOME/.sitecost/config.yaml. Files ending in
.json are written as JSON, everything else as YAML.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ResolvePath(cfgFile)
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			return apperrors.Config("no config path given and no home directory")
		}
		if !configForce && fileExists(path) {
			return apperrors.Newf(apperrors.TypeConfig, "%s already exists (use --force to overwrite)", path)
		}

		if err := config.Default().Save(path); err != nil {
			return apperrors.Wrap(apperrors.TypeConfig, "failed to write config", err).WithContext("file", path)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	configShowCmd.Flags().BoolVar(&configJSON, "json", false, "print as JSON instead of YAML")
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

// configEstimator builds an estimator from the global config and the
// --catalog flag.
func configEstimator() (*estimator.Estimator, error) {
	return config.Get().Estimator(catalogFile)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
