// ABOUTME: Root Cobra command for the genzhealth CLI.
// ABOUTME: Loads config and the survey dataset once via PersistentPreRunE.
package main

import (
	"fmt"
	"log"

	"github.com/harperreed/genzhealth/internal/config"
	"github.com/harperreed/genzhealth/internal/dashboard"
	"github.com/spf13/cobra"
)

var (
	cfg      *config.Config
	svc      *dashboard.Service
	dataFlag string
)

var rootCmd = &cobra.Command{
	Use:   "genzhealth",
	Short: "Gen Z health habits dashboard",
	Long: `Genzhealth explores a Gen Z extract of the CDC BRFSS 2023 survey.

It relates self-reported poor mental health days (MENTHLTH) to gender,
smoking, drinking, exercise, and BMI category.

QUICK START:

  $ genzhealth serve                              # Open the web dashboard
  $ genzhealth summary                            # Means over every respondent
  $ genzhealth summary --gender Female            # Filter by gender
  $ genzhealth export --exercise No -o out.csv    # Export the filtered rows
  $ genzhealth classify 27.3                      # BMI category of a value

FILTERS:

  --gender, --smoker, --drinker, --exercise take a value from
  'genzhealth options' or All (the default). Filters combine with AND.
  Rows without MENTHLTH are always excluded.

MCP INTEGRATION:

  Run 'genzhealth mcp' to start the Model Context Protocol server:

  {
    "mcpServers": {
      "genzhealth": { "command": "genzhealth", "args": ["mcp"] }
    }
  }

DATA:

  The CSV is read once at startup from --data, the data_file setting in
  ~/.config/genzhealth/config.json, or GenZ_Health_Insights_BRFFS2023.csv
  in the working directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if dataFlag != "" {
			cfg.DataFile = dataFlag
		}

		// Commands that never touch the dataset skip the load.
		if cmd.Name() == "help" || cmd.Name() == "classify" {
			return nil
		}

		source := cfg.OpenSource()
		table, err := source.Table()
		if err != nil {
			return fmt.Errorf("failed to load dataset %s: %w", source.Path(), err)
		}
		svc = dashboard.New(table)
		return nil
	},
}

func init() {
	log.SetPrefix("[genzhealth] ")
	rootCmd.PersistentFlags().StringVar(&dataFlag, "data", "", "survey CSV file (overrides config)")
}
