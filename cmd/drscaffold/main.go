// Package main provides the drscaffold CLI tool entry point.
//
// Overview:
//   - Responsibility: CLI command parsing, configuration loading and execution
//   - Key Types: Cobra command structure
//   - Concurrency Model: Single-threaded CLI execution
//   - Error Semantics: Errors are printed through ui and exit with code 1
//   - Performance Notes: Fast startup, minimal memory footprint
//
// Usage:
//
//	drscaffold [command] [flags]
package main

import (
	"os"

	"github.com/spf13/cobra"

	"go.eggybyte.com/drscaffold/internal/configschema"
	"go.eggybyte.com/drscaffold/internal/envloader"
	"go.eggybyte.com/drscaffold/internal/ui"
)

var (
	verbose    bool
	jsonOutput bool
	configPath string
	mainDir    string

	// config is loaded before any subcommand runs.
	config *configschema.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "drscaffold",
	Short: "Django REST Framework API scaffolding tool",
	Long: `Scaffold Django REST Framework APIs from the command line.

For one model this tool generates:
- The model class in models.py
- A model serializer in serializers.py
- An admin registration in admin.py
- A model view set in views.py
- A router registration in urls.py

Generation is idempotent: running the same command twice changes nothing.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// loadConfig applies the global flags, then loads .env and the YAML config.
func loadConfig(cmd *cobra.Command, args []string) error {
	ui.SetVerbose(verbose)
	ui.SetJSONOutput(jsonOutput)

	if err := envloader.Load(envloader.DefaultPath); err != nil {
		return err
	}

	loaded, diags := configschema.Load(configPath)
	for _, item := range diags.Items() {
		switch item.Severity {
		case configschema.SeverityWarning:
			ui.Warning("%s: %s", item.Path, item.Message)
		case configschema.SeverityInfo:
			ui.Debug("%s: %s", item.Path, item.Message)
		}
	}
	if diags.HasErrors() {
		return diags
	}

	config = loaded
	return nil
}

// resolveMainDir picks the main directory: the --main-dir flag, then
// DRSCAFFOLD_MAIN_DIR, then the config file.
func resolveMainDir(cmd *cobra.Command) string {
	if cmd.Flags().Changed("main-dir") {
		return mainDir
	}
	return envloader.MainDir(config.MainDir)
}

// Execute runs the root command and exits with code 1 on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Error("Command failed: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", configschema.DefaultPath, "Path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&mainDir, "main-dir", configschema.DefaultMainDir, "Directory containing the app directories")

	rootCmd.Flags().BoolP("version", "v", false, "Show version information")
}

// main is the entry point for the drscaffold CLI tool.
func main() {
	Execute()
}
