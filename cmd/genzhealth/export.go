// ABOUTME: CLI command for exporting the filtered survey rows.
// ABOUTME: Writes CSV with the derived BMI_CATEGORY column and no index column.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/genzhealth/internal/dataset"
	"github.com/spf13/cobra"
)

var (
	exportOutput  string
	exportFilters *filterFlags
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export filtered rows as CSV",
	Long: `Export the rows matching the filters as CSV.

The file has every source column plus BMI_CATEGORY. Rows without MENTHLTH
are excluded. An empty result writes the header only.

OPTIONS:

  --output, -o   Output file (default genz_filtered.csv, - for stdout)

EXAMPLES:

  genzhealth export                                  # genz_filtered.csv
  genzhealth export --gender Female -o female.csv    # Save to file
  genzhealth export --exercise No -o -               # Print to stdout`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		view := svc.Filter(exportFilters.selection())

		data, err := dataset.EncodeCSV(view)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput == "-" {
			_, err := cmd.OutOrStdout().Write(data)
			return err
		}

		if err := os.WriteFile(exportOutput, data, 0600); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		color.Green("✓ Exported %d rows to %s", view.Len(), exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", dataset.ExportFileName, "output file (- for stdout)")
	exportFilters = addFilterFlags(exportCmd)
	rootCmd.AddCommand(exportCmd)
}
