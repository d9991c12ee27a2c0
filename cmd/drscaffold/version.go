package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.eggybyte.com/drscaffold/internal/version"
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show drscaffold version information",
	Long: `Display version information for drscaffold.

This command shows the CLI version, git commit hash and build timestamp,
followed by the Go runtime version.`,
	Run: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	rootCmd.Version = version.GetVersionString()
	rootCmd.SetVersionTemplate(`{{.Version}}
`)
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Fprintln(cmd.OutOrStdout(), version.GetFullVersionInfo())
}
