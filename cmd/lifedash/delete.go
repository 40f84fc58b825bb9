// ABOUTME: CLI command for deleting entries by kind and numeric ID.
// ABOUTME: Subscriptions are deactivated instead (see 'sub cancel').
package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:       "delete <kind> <id>",
	Aliases:   []string{"del", "rm"},
	Short:     "Delete an entry",
	ValidArgs: []string{"reminder", "food", "training", "mental", "weight", "suggestion"},
	Long: `Delete an entry by kind and ID.

KINDS:

  reminder, food, training, mental, weight, suggestion

The ID is shown in the first column of 'lifedash list' and friends.

EXAMPLES:

  lifedash delete food 12
  lifedash rm reminder 3

CAUTION:

  This permanently deletes the entry. There is no undo.
  Subscriptions are never deleted; use 'lifedash sub cancel'.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := args[0]
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid id: %s", args[1])
		}

		deleters := map[string]func(context.Context, int64) error{
			"reminder":   db.DeleteReminder,
			"food":       db.DeleteFoodLog,
			"training":   db.DeleteTrainingLog,
			"mental":     db.DeleteMentalLog,
			"weight":     db.DeleteWeight,
			"suggestion": db.DeleteSuggestion,
		}
		del, ok := deleters[kind]
		if !ok {
			return fmt.Errorf("unknown kind: %s", kind)
		}
		if err := del(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete %s %d: %w", kind, id, err)
		}

		color.Yellow("✗ Deleted %s #%d", kind, id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
