// ABOUTME: CLI command for running the web dashboard.
// ABOUTME: Serves until SIGINT or SIGTERM, then shuts down gracefully.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/harperreed/genzhealth/internal/web"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web dashboard",
	Long: `Start the browser dashboard.

The page has filter controls, the sample size, a Charts tab (mean poor
mental health days by gender and by BMI category, plus the distribution
with a rug of individual responses), and a Data Table tab with a CSV
download of the filtered rows.

EXAMPLES:

  genzhealth serve                        # http://localhost:8501
  genzhealth serve --addr :8080           # Listen on all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.GetHTTPAddr()
		if serveAddr != "" {
			addr = serveAddr
		}

		server, err := web.NewServer(web.Config{HTTPAddr: addr}, svc)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		color.Green("✓ Loaded %d respondents from %s", svc.Total(), cfg.GetDataFile())
		return server.ListenAndServe(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default: config http_addr or localhost:8501)")
	rootCmd.AddCommand(serveCmd)
}
