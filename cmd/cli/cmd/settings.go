package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/danielschuberts-droid/h2cat/pkg/config"
	"github.com/danielschuberts-droid/h2cat/pkg/logger"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage display settings",
	Long:  `Manage display settings stored in $HOME/.h2cat/config.yaml`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  showSettings,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update settings interactively",
	RunE:  setSettings,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}

func showSettings(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "default_format: %s\n", settings.DefaultFormat)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "precision: %d\n", settings.Precision)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "no_color: %t\n", settings.NoColor)

	return nil
}

func setSettings(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	formatPrompt := &survey.Select{
		Message: "Default export format:",
		Options: []string{config.FormatYAML, config.FormatJSON},
		Default: settings.DefaultFormat,
	}
	if err := survey.AskOne(formatPrompt, &settings.DefaultFormat); err != nil {
		return fmt.Errorf("failed to get format: %w", err)
	}

	precisionPrompt := &survey.Input{
		Message: "Table precision (decimal places):",
		Default: fmt.Sprintf("%d", settings.Precision),
	}
	var precision string
	if err := survey.AskOne(precisionPrompt, &precision); err != nil {
		return fmt.Errorf("failed to get precision: %w", err)
	}
	if _, err := fmt.Sscanf(precision, "%d", &settings.Precision); err != nil {
		return fmt.Errorf("invalid precision %q: %w", precision, err)
	}

	colorPrompt := &survey.Confirm{
		Message: "Disable colored output?",
		Default: settings.NoColor,
	}
	if err := survey.AskOne(colorPrompt, &settings.NoColor); err != nil {
		return fmt.Errorf("failed to get color preference: %w", err)
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	logger.Success("Settings saved")
	return nil
}
