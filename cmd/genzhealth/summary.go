// ABOUTME: CLI command for summarizing the filtered survey.
// ABOUTME: Prints mean MENTHLTH by gender and BMI category as tables or JSON/YAML/Markdown.
package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/genzhealth/internal/aggregate"
	"github.com/harperreed/genzhealth/internal/report"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	summaryFormat  string
	summaryFilters *filterFlags
)

var summaryCmd = &cobra.Command{
	Use:     "summary",
	Aliases: []string{"sum", "s"},
	Short:   "Summarize poor mental health days",
	Long: `Summarize self-reported poor mental health days for a filter selection.

OUTPUT:

  Sample size, then the mean MENTHLTH per gender and per BMI category.
  BMI categories are always listed in the order Underweight, Normal,
  Overweight, Obese; a category with no respondents shows n/a.

FORMATS:

  text       Tables (default)
  json       JSON summary
  yaml       YAML summary
  markdown   Markdown tables

EXAMPLES:

  genzhealth summary                               # Every respondent
  genzhealth summary --gender Male --smoker Yes    # Combined filters
  genzhealth summary --format json                 # Machine-readable`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sum := report.New(svc.Snapshot(summaryFilters.selection()))
		out := cmd.OutOrStdout()

		var data []byte
		var err error

		switch summaryFormat {
		case "text", "":
			writeSummaryText(out, sum)
			return nil
		case "json":
			data, err = sum.JSON()
		case "yaml":
			data, err = sum.YAML()
		case "markdown":
			data = []byte(sum.Markdown())
		default:
			return fmt.Errorf("unknown format: %s (use text, json, yaml, or markdown)", summaryFormat)
		}
		if err != nil {
			return fmt.Errorf("summary failed: %w", err)
		}

		_, err = fmt.Fprintln(out, string(data))
		return err
	},
}

func writeSummaryText(w io.Writer, sum *report.Summary) {
	faint := color.New(color.Faint)
	bold := color.New(color.Bold)

	fmt.Fprintf(w, "%s %d\n", bold.Sprint("Sample Size:"), sum.SampleSize)
	if sum.SampleSize == 0 {
		fmt.Fprintln(w, "No data for the selected filters.")
		faint.Fprintln(w, sum.Source)
		return
	}

	fmt.Fprintln(w)
	bold.Fprintln(w, "Avg Poor Mental Health Days by Gender")
	writeGroupTable(w, "Gender", sum.ByGender)

	fmt.Fprintln(w)
	bold.Fprintln(w, "Avg Mental Health by BMI Category")
	writeGroupTable(w, "BMI Category", sum.ByBMICategory)

	fmt.Fprintln(w)
	faint.Fprintln(w, sum.Source)
}

func writeGroupTable(w io.Writer, keyHeader string, groups []aggregate.GroupMean) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{keyHeader, "Respondents", "Mean Days"})
	for _, g := range groups {
		table.Append([]string{g.Key, strconv.Itoa(g.Count), g.Label()})
	}
	table.Render()
}

func init() {
	summaryCmd.Flags().StringVarP(&summaryFormat, "format", "f", "text", "output format (text, json, yaml, markdown)")
	summaryFilters = addFilterFlags(summaryCmd)
	rootCmd.AddCommand(summaryCmd)
}
