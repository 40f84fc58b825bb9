// ABOUTME: CLI commands for reviewing externally generated suggestions.
// ABOUTME: Suggestions are created through the API or MCP; here they are listed, dismissed or cleared.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lifedash/internal/storage"
)

var (
	suggestCategory  string
	suggestDismissed bool
)

var suggestCmd = &cobra.Command{
	Use:     "suggest",
	Aliases: []string{"suggestions"},
	Short:   "Review suggestions",
}

var suggestListCmd = &cobra.Command{
	Use:   "list",
	Short: "List suggestions by priority",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := db.ListSuggestions(cmd.Context(), storage.SuggestionFilter{
			Category:         suggestCategory,
			IncludeDismissed: suggestDismissed,
		})
		if err != nil {
			return fmt.Errorf("failed to list suggestions: %w", err)
		}
		if len(items) == 0 {
			fmt.Println("No suggestions.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, s := range items {
			content := s.Content
			if s.Dismissed {
				content = faint.Sprint(content)
			}
			fmt.Printf("%s %s %s %s\n",
				faint.Sprint(padRight(fmt.Sprintf("#%d", s.ID), 6)),
				color.CyanString(padRight(s.Category, 12)),
				faint.Sprintf("p%d", s.Priority),
				content,
			)
		}
		return nil
	},
}

var suggestDismissCmd = &cobra.Command{
	Use:   "dismiss <id>",
	Short: "Hide a suggestion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}
		if _, err := db.DismissSuggestion(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to dismiss suggestion: %w", err)
		}
		color.Green("✓ Dismissed suggestion #%d", id)
		return nil
	},
}

var suggestClearCmd = &cobra.Command{
	Use:   "clear <category>",
	Short: "Delete every suggestion in a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := db.ClearSuggestions(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to clear suggestions: %w", err)
		}
		color.Green("✓ Cleared %d suggestion(s) from %s", n, args[0])
		return nil
	},
}

func init() {
	suggestListCmd.Flags().StringVarP(&suggestCategory, "category", "c", "", "only this category")
	suggestListCmd.Flags().BoolVar(&suggestDismissed, "dismissed", false, "include dismissed suggestions")

	suggestCmd.AddCommand(suggestListCmd, suggestDismissCmd, suggestClearCmd)
	rootCmd.AddCommand(suggestCmd)
}
