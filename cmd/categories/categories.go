// Package categories handles the commands that show and replace the category catalog
package categories

import (
	"fmt"

	"fjacquet/budget-tracker/cmd/common"
	"fjacquet/budget-tracker/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "List the expense categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := root.GetTracker()
		if err != nil {
			return err
		}
		categories, err := t.Categories(common.Context(cmd))
		if err != nil {
			return err
		}
		common.Renderer(cmd).Categories(categories)
		return nil
	},
}

// ImportCmd replaces the catalog with the categories of a YAML file
var ImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the categories with those of a YAML file",
	Long: `Replace the category catalog with the one in a YAML file, either a list of
{id, name, color} entries or the same list under a "categories" key.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := root.GetTracker()
		if err != nil {
			return err
		}
		categories, err := t.ImportCategories(common.Context(cmd), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d categories from %s\n", len(categories), args[0])
		return nil
	},
}

func init() {
	Cmd.AddCommand(ImportCmd)
}
