// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server over the loaded survey.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/harperreed/genzhealth/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout.

AVAILABLE TOOLS:

  list_filter_options  Values available for each filter
  summarize            Sample size and mean MENTHLTH by gender and BMI category
  classify_bmi         BMI category of a value
  export_csv           Filtered respondents as CSV text

AVAILABLE RESOURCES:

  genz://summary       Unfiltered summary
  genz://options       Filter options`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(svc)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
