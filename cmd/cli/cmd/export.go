package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/danielschuberts-droid/h2cat/pkg/catalog"
	"github.com/danielschuberts-droid/h2cat/pkg/config"
	"github.com/danielschuberts-droid/h2cat/pkg/logger"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog as YAML or JSON",
	Long: `Export the mapping form of the catalog. The format defaults to the
saved settings and can be overridden with --format.`,
	RunE: exportCatalog,
}

func init() {
	exportCmd.Flags().StringP("format", "f", "", "output format (yaml or json)")
	exportCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
}

func exportCatalog(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = settings.DefaultFormat
	}

	data, err := marshalCatalog(format)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		_, _ = cmd.OutOrStdout().Write(data)
		return nil
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	logger.Successf("Exported catalog to %s", output)

	return nil
}

// marshalCatalog renders the mapping form in the requested format.
func marshalCatalog(format string) ([]byte, error) {
	maps := catalog.AsMaps()

	switch format {
	case config.FormatYAML:
		data, err := yaml.Marshal(maps)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal catalog: %w", err)
		}
		return data, nil
	case config.FormatJSON:
		data, err := json.MarshalIndent(maps, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal catalog: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown format %q (expected %s or %s)",
			format, config.FormatYAML, config.FormatJSON)
	}
}
