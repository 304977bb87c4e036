// ABOUTME: CLI command for listing filter options.
// ABOUTME: Shows the values each filter accepts, starting with All.
package main

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List filter values",
	Long: `List the values accepted by each filter flag.

Values come from the loaded dataset; All leaves the field unconstrained.

EXAMPLES:

  genzhealth options`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Filter", "Flag", "Values"})
		table.SetAutoWrapText(false)
		for _, o := range svc.Options() {
			flag := "--" + strings.ToLower(string(o.Field))
			table.Append([]string{o.Label, flag, strings.Join(o.Values, ", ")})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}
