package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a run would use, after the config file
search and any --preset are applied. The output is valid YAML and can
be saved to ~/.dash/configs/dash.yaml as a starting point.

Examples:
  dash config
  dash config --preset hard > ~/.dash/configs/dash.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		newLogger().Error("invalid configuration", "err", err)
		return err
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(cfg)
}
