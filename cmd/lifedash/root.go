// ABOUTME: Root Cobra command for the lifedash CLI.
// ABOUTME: Loads config, sets up logging and manages the database handle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperreed/lifedash/internal/config"
	"github.com/harperreed/lifedash/internal/logging"
	"github.com/harperreed/lifedash/internal/storage"
)

var (
	cfg    *config.Config
	db     *storage.DB
	dbPath string
)

// noDB lists commands that never touch the database.
var noDB = map[string]bool{
	"help":          true,
	"completion":    true,
	"install-skill": true,
	"calendar":      true,
	"status":        true,
	"events":        true,
	"disconnect":    true,
}

var rootCmd = &cobra.Command{
	Use:   "lifedash",
	Short: "Personal life dashboard",
	Long: `Lifedash tracks the small stuff of a day in one place.

WHAT IT TRACKS:

  Reminders      pending and done, with optional due times
  Journal        food, training and mental-health entries
  Daily          one summary per day, one weight reading per day
  Money          subscriptions with monthly and yearly totals
  Suggestions    prioritized recommendations from AI assistants

QUICK START:

  $ lifedash remind add "call the plumber" --due "2026-01-15 09:00"
  $ lifedash log food "porridge" --meal breakfast
  $ lifedash weight add 81.4
  $ lifedash summary set --highlight "long walk" --energy 7
  $ lifedash sub add Netflix 17.99 --my-price 6 --category entertainment
  $ lifedash today

WEB DASHBOARD:

  $ lifedash serve          # JSON API, HTML pages and /metrics on :8000

  Writes require the X-API-Key header. Set LIFEDASH_API_KEY before exposing
  the server anywhere.

MCP INTEGRATION:

  Run 'lifedash mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "lifedash": { "command": "lifedash", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  SQLite at ~/.local/share/lifedash/lifedash.db (override with --db,
  LIFEDASH_DATABASE_PATH or database_path in ~/.config/lifedash/config.json).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if dbPath != "" {
			cfg.DatabasePath = dbPath
		}
		logging.Init(cfg.Logging())

		if noDB[cmd.Name()] {
			return nil
		}
		db, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if db != nil {
			err := db.Close()
			db = nil
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (default: XDG data dir)")
}
