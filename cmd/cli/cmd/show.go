package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/danielschuberts-droid/h2cat/pkg/catalog"
)

var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show one plant configuration in full",
	Long: `Show every parameter of a single plant configuration. With no name
given on a terminal, prompts for the configuration to display.`,
	Args: cobra.MaximumNArgs(1),
	RunE: showConfiguration,
}

func showConfiguration(cmd *cobra.Command, args []string) error {
	name, err := selectConfiguration(args)
	if err != nil {
		return err
	}

	c, ok := catalog.Get(name)
	if !ok {
		return fmt.Errorf("unknown configuration %q (available: %s)",
			name, strings.Join(catalog.Names(), ", "))
	}

	return writeDetail(cmd.OutOrStdout(), c)
}

// selectConfiguration resolves the configuration name from the arguments,
// prompting interactively when none is given and stdin is a terminal.
func selectConfiguration(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("configuration name required (available: %s)",
			strings.Join(catalog.Names(), ", "))
	}

	var name string
	prompt := &survey.Select{
		Message: "Select a configuration:",
		Options: catalog.Names(),
	}
	if err := survey.AskOne(prompt, &name); err != nil {
		return "", fmt.Errorf("failed to select configuration: %w", err)
	}

	return name, nil
}
