// Package years handles the command that lists years with recorded expenses
package years

import (
	"fjacquet/budget-tracker/cmd/common"
	"fjacquet/budget-tracker/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the years command
var Cmd = &cobra.Command{
	Use:   "years",
	Short: "List the years that have expenses, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := root.GetTracker()
		if err != nil {
			return err
		}
		years, err := t.AvailableYears(common.Context(cmd))
		if err != nil {
			return err
		}
		common.Renderer(cmd).Years(years)
		return nil
	},
}
