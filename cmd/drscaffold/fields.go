package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.eggybyte.com/drscaffold/internal/fields"
	"go.eggybyte.com/drscaffold/internal/templates"
)

// fieldsCmd represents the fields command.
var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List supported field types",
	Long: `List the field types accepted in name:type pairs.

Built-in types are listed together with the types defined under
field_types in the configuration file. Relational types are marked.`,
	Args: cobra.NoArgs,
	RunE: runFields,
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
}

func runFields(cmd *cobra.Command, args []string) error {
	catalog, err := fields.NewCatalog(config.FieldTypes)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, typeTag := range catalog.Types() {
		switch {
		case templates.IsRelational(typeTag):
			fmt.Fprintf(out, "%s (relational, name:%s:Target)\n", typeTag, typeTag)
		case config.FieldTypes[typeTag] != "":
			fmt.Fprintf(out, "%s (custom)\n", typeTag)
		default:
			fmt.Fprintln(out, typeTag)
		}
	}
	return nil
}
