package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.eggybyte.com/drscaffold/internal/generators"
	"go.eggybyte.com/drscaffold/internal/ui"
)

// routesCmd represents the routes command.
var routesCmd = &cobra.Command{
	Use:   "routes <app>",
	Short: "List routes registered in an app",
	Long: `List the router registrations between the router declaration and
urlpatterns in the app's urls.py.

Example:
  drscaffold routes blog`,
	Args: cobra.ExactArgs(1),
	RunE: runRoutes,
}

func init() {
	rootCmd.AddCommand(routesCmd)
}

func runRoutes(cmd *cobra.Command, args []string) error {
	routes, err := generators.ListRoutes(resolveMainDir(cmd), args[0])
	if err != nil {
		return err
	}
	if len(routes) == 0 {
		ui.Warning("No routes registered in %s", args[0])
		return nil
	}

	out := cmd.OutOrStdout()
	for _, route := range routes {
		fmt.Fprintf(out, "/%s/\t%s\n", route.Prefix, route.ViewSet)
	}
	return nil
}
