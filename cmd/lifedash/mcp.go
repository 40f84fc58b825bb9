// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs the stdio MCP server until stdin closes or a signal arrives.
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/harperreed/lifedash/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server talks over stdin/stdout; logs go to stderr.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "lifedash": {
        "command": "lifedash",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  add_reminder, list_reminders, complete_reminder
  log_food, log_training, log_mental, delete_entry
  log_weight, upsert_summary, get_today, get_stats
  add_subscription, list_subscriptions, cancel_subscription
  add_suggestions, list_suggestions

AVAILABLE RESOURCES:

  lifedash://today           Today's dashboard
  lifedash://stats           Training and weight stats
  lifedash://subscriptions   Active subscriptions and cost totals`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(db, time.Local)
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
