// ABOUTME: CLI commands for the today dashboard and training/weight stats.
// ABOUTME: Both use the local time zone for day, week and month boundaries.
package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lifedash/internal/dashboard"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's reminders, logs and summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := dashboard.BuildToday(cmd.Context(), db, time.Now())
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)
		bold.Printf("Today, %s\n\n", t.Date)

		section := func(title string, n int) bool {
			bold.Printf("%s (%d)\n", title, n)
			if n == 0 {
				faint.Println("  none")
			}
			return n > 0
		}

		if section("Reminders", len(t.Reminders)) {
			for _, r := range t.Reminders {
				fmt.Printf("  %s %s\n", faint.Sprintf("#%d", r.ID), r.Text)
			}
		}
		if section("Food", len(t.Food)) {
			for _, l := range t.Food {
				fmt.Printf("  %s %s\n", faint.Sprint(l.LoggedAt.Local().Format("15:04")), l.Description)
			}
		}
		if section("Training", len(t.Training)) {
			for _, l := range t.Training {
				fmt.Printf("  %s %s\n", faint.Sprint(l.LoggedAt.Local().Format("15:04")), l.Activity)
			}
		}
		if section("Journal", len(t.Mental)) {
			for _, l := range t.Mental {
				fmt.Printf("  %s %s\n", faint.Sprint(l.LoggedAt.Local().Format("15:04")), truncate(l.Content, 60))
			}
		}
		fmt.Println()
		if t.Summary != nil {
			printSummary(t.Summary)
		} else {
			faint.Println("No summary yet. Try: lifedash summary set --highlight \"...\"")
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show training counts and the 30-day weight trend",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := dashboard.BuildStats(cmd.Context(), db, time.Now())
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)
		bold.Println("Training")
		fmt.Printf("  this week:  %d\n", s.Training.ThisWeek)
		fmt.Printf("  this month: %d\n", s.Training.ThisMonth)
		weeks := make([]int, 0, len(s.Training.WeeklyBreakdown))
		for w := range s.Training.WeeklyBreakdown {
			weeks = append(weeks, w)
		}
		sort.Ints(weeks)
		for _, w := range weeks {
			fmt.Printf("  week %-2d     %d\n", w, s.Training.WeeklyBreakdown[w])
		}

		fmt.Println()
		bold.Println("Weight")
		if s.Weight.Latest == nil {
			color.New(color.Faint).Println("  no readings in the last 30 days")
			return nil
		}
		fmt.Printf("  latest:     %.1f kg\n", *s.Weight.Latest)
		if c := s.Weight.Change30d; c != nil {
			change := fmt.Sprintf("%+.1f kg", *c)
			switch {
			case *c < 0:
				change = color.GreenString(change)
			case *c > 0:
				change = color.YellowString(change)
			}
			fmt.Printf("  30 days:    %s\n", change)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(todayCmd, statsCmd)
}
