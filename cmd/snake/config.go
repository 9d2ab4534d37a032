package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print an example config file",
	Long: `Prints the built-in configuration as YAML.

Save it as ~/.snake/config.yaml or ./configs/snake.yaml and edit:
  snake config > ~/.snake/config.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.ExampleApp())
		return err
	},
}
