package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielschuberts-droid/h2cat/pkg/config"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List plant configurations",
	Long:  `List all plant configurations with their headline figures`,
	RunE:  listConfigurations,
}

func listConfigurations(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	return writeTable(cmd.OutOrStdout(), settings.Precision)
}
