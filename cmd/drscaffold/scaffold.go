package main

import (
	"github.com/spf13/cobra"

	"go.eggybyte.com/drscaffold/internal/generators"
	"go.eggybyte.com/drscaffold/internal/ui"
)

var (
	skipAdmin bool
	skipURLs  bool
)

// scaffoldCmd represents the scaffold command.
var scaffoldCmd = &cobra.Command{
	Use:     "scaffold <app> <Model> [name:type ...]",
	Aliases: []string{"generate"},
	Short:   "Generate a model and its REST API",
	Long: `Generate a model and its REST API inside an app directory.

Fields are given as name:type pairs. Relational types accept the related
model as a third segment, e.g. author:foreignkey:Author. Run
'drscaffold fields' for the list of types.

The app directory and its files are created when missing. Existing files
are patched: imports are merged and classes appended only once.

Examples:
  drscaffold scaffold blog Article title:charfield body:textfield
  drscaffold scaffold blog Comment article:foreignkey:Article text:textfield --skip-admin`,
	Args: cobra.MinimumNArgs(2),
	RunE: runScaffold,
}

func init() {
	rootCmd.AddCommand(scaffoldCmd)

	scaffoldCmd.Flags().BoolVar(&skipAdmin, "skip-admin", false, "Do not register the model in admin.py")
	scaffoldCmd.Flags().BoolVar(&skipURLs, "skip-urls", false, "Do not register a route in urls.py")
}

// runScaffold executes the scaffold command.
//
// Parameters:
//   - cmd: Cobra command
//   - args: App name, model name, then field tokens
//
// Returns:
//   - error: Validation, field or file system error if any
func runScaffold(cmd *cobra.Command, args []string) error {
	gen, err := generators.NewGenerator(generators.ResourceSpec{
		AppName:   args[0],
		ModelName: args[1],
		Fields:    args[2:],
	},
		generators.WithMainDir(resolveMainDir(cmd)),
		generators.WithFieldTypes(config.FieldTypes),
		generators.WithVerbose(ui.IsVerbose()),
		generators.WithSkipAdmin(skipAdmin),
		generators.WithSkipURLs(skipURLs),
	)
	if err != nil {
		return err
	}
	return gen.Run()
}
