// ABOUTME: CLI commands for reminders: add, list and done.
// ABOUTME: Due times are local unless given with an offset.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lifedash/internal/models"
)

var (
	remindDue string
	remindAll bool
)

var remindCmd = &cobra.Command{
	Use:     "remind",
	Aliases: []string{"r"},
	Short:   "Manage reminders",
}

var remindAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a reminder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r := models.NewReminder(args[0])
		if remindDue != "" {
			due, err := parseTime(remindDue)
			if err != nil {
				return fmt.Errorf("invalid due time: %s", remindDue)
			}
			r.WithDueAt(due.UTC())
		}

		if err := db.CreateReminder(cmd.Context(), r); err != nil {
			return fmt.Errorf("failed to add reminder: %w", err)
		}
		color.Green("✓ Added reminder #%d", r.ID)
		return nil
	},
}

var remindListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pending reminders (--all for done ones too)",
	RunE: func(cmd *cobra.Command, args []string) error {
		var status *models.ReminderStatus
		if !remindAll {
			pending := models.ReminderPending
			status = &pending
		}

		reminders, err := db.ListReminders(cmd.Context(), status)
		if err != nil {
			return fmt.Errorf("failed to list reminders: %w", err)
		}
		if len(reminders) == 0 {
			fmt.Println("No reminders.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, r := range reminders {
			mark := "[ ]"
			if r.Status == models.ReminderDone {
				mark = color.GreenString("[x]")
			}
			due := ""
			if r.DueAt != nil {
				due = faint.Sprintf(" (due %s)", r.DueAt.Local().Format("2006-01-02 15:04"))
			}
			fmt.Printf("%s %s %s%s\n", faint.Sprint(padRight(fmt.Sprintf("#%d", r.ID), 6)), mark, r.Text, due)
		}
		return nil
	},
}

var remindDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a reminder as done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}
		done := models.ReminderDone
		r, err := db.UpdateReminder(cmd.Context(), id, models.ReminderUpdate{Status: &done})
		if err != nil {
			return fmt.Errorf("failed to complete reminder: %w", err)
		}
		color.Green("✓ Done: %s", r.Text)
		return nil
	},
}

func init() {
	remindAddCmd.Flags().StringVar(&remindDue, "due", "", "due time (YYYY-MM-DD HH:MM)")
	remindListCmd.Flags().BoolVarP(&remindAll, "all", "a", false, "include done reminders")

	remindCmd.AddCommand(remindAddCmd, remindListCmd, remindDoneCmd)
	rootCmd.AddCommand(remindCmd)
}
