package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/danielschuberts-droid/h2cat/pkg/logger"
)

var (
	cfgFile  string
	logLevel string
	noColor  bool
)

// rootCmd represents the base command when called without any subcommands.
// Invoked bare, it dumps the full catalog: the mapping form first, then the
// native record form.
var rootCmd = &cobra.Command{
	Use:   "h2cat",
	Short: "Hydrogen electrolysis plant configuration catalog",
	Long: `h2cat is a reference catalog of technical and financial parameters
for two 100 MW hydrogen-electrolysis plant configurations (Alkaline
Electrolysis Cell and Proton Exchange Membrane, ENS 2025 data).

Run without arguments to print the catalog as nested mappings followed
by the native record form.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeDump(cmd.OutOrStdout())
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.h2cat/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add commands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(settingsCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	// Configure logger based on flags
	logger.SetLevel(logger.ParseLevel(logLevel))
	logger.SetNoColor(noColor)
	if noColor {
		color.NoColor = true
	}

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in home directory
		viper.AddConfigPath("$HOME/.h2cat")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("H2CAT")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		logger.Debugf("using config file %s", viper.ConfigFileUsed())
	}

	if viper.GetBool("no_color") {
		logger.SetNoColor(true)
		color.NoColor = true
	}
}
