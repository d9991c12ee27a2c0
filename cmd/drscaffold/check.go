package main

import (
	"github.com/spf13/cobra"

	"go.eggybyte.com/drscaffold/internal/errors"
	"go.eggybyte.com/drscaffold/internal/lint"
	"go.eggybyte.com/drscaffold/internal/projectfs"
	"go.eggybyte.com/drscaffold/internal/templates"
	"go.eggybyte.com/drscaffold/internal/ui"
)

// checkCmd represents the check command.
var checkCmd = &cobra.Command{
	Use:   "check <app>",
	Short: "Check a scaffolded app for problems",
	Long: `Check a scaffolded app directory for problems.

The built-in templates are validated first. This command then reports:
- Missing app files and setup imports
- An incomplete route region in urls.py
- Registered view sets that are not imported or defined
- Models without an admin registration

Example:
  drscaffold check blog`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// runCheck executes the check command.
//
// Returns:
//   - error: CodeFailedPrecondition when error-level findings exist
func runCheck(cmd *cobra.Command, args []string) error {
	ui.Info("Checking app %s...", args[0])

	if err := templates.NewLoader().ValidateAllTemplates(); err != nil {
		return err
	}

	fs := projectfs.NewProjectFS(resolveMainDir(cmd))
	fs.SetVerbose(ui.IsVerbose())

	results, err := lint.NewLinter().Check(fs, args[0])
	if err != nil {
		return err
	}

	displayLintResults(results)

	if results.ErrorCount > 0 {
		return errors.Newf(errors.CodeFailedPrecondition, "app check failed with %d errors", results.ErrorCount)
	}
	if results.WarningCount > 0 || results.InfoCount > 0 {
		ui.Warning("App check completed with %d warnings and %d info messages",
			results.WarningCount, results.InfoCount)
	} else {
		ui.Success("App check passed! No issues found.")
	}
	return nil
}

// displayLintResults prints findings grouped by level.
func displayLintResults(results *lint.LintResults) {
	groups := []struct {
		level  string
		header func(string, ...interface{})
		title  string
	}{
		{lint.LevelError, ui.Error, "Errors found:"},
		{lint.LevelWarning, ui.Warning, "Warnings found:"},
		{lint.LevelInfo, ui.Info, "Info messages:"},
	}

	for _, group := range groups {
		var items []lint.LintResult
		for _, result := range results.Results {
			if result.Level == group.level {
				items = append(items, result)
			}
		}
		if len(items) == 0 {
			continue
		}

		group.header(group.title)
		for _, result := range items {
			ui.Info("  %s: %s", result.Path, result.Message)
			if result.Suggestion != "" {
				ui.Info("    Suggestion: %s", result.Suggestion)
			}
		}
	}
}
