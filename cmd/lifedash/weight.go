// ABOUTME: CLI commands for daily weight readings and the daily summary.
// ABOUTME: Both are keyed by day: weight overwrites, summary merges.
package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lifedash/internal/models"
	"github.com/harperreed/lifedash/internal/storage"
)

var (
	weightDate  string
	weightNotes string
	weightDays  int

	summaryDate      string
	summaryHighlight string
	summaryChallenge string
	summaryEnergy    int
	summarySleep     int
	summaryGratitude string
	summaryFocus     string
)

var weightCmd = &cobra.Command{
	Use:     "weight",
	Aliases: []string{"w"},
	Short:   "Record and review body weight",
}

var weightAddCmd = &cobra.Command{
	Use:   "add <kg>",
	Short: "Record today's weight (replaces an earlier reading for the same day)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kg, err := strconv.ParseFloat(args[0], 64)
		if err != nil || kg <= 0 {
			return fmt.Errorf("invalid weight: %s", args[0])
		}
		date, err := dayFlag(weightDate)
		if err != nil {
			return err
		}

		w := models.NewWeightLog(kg, date)
		w.Notes = optionalFlag(weightNotes)
		stored, err := db.UpsertWeight(cmd.Context(), w)
		if err != nil {
			return fmt.Errorf("failed to record weight: %w", err)
		}
		color.Green("✓ %.1f kg on %s", stored.WeightKg, stored.Date)
		return nil
	},
}

var weightListCmd = &cobra.Command{
	Use:   "list",
	Short: "List readings from the last --days days",
	RunE: func(cmd *cobra.Command, args []string) error {
		since := models.DateOf(time.Now()).AddDays(-weightDays)
		entries, err := db.ListWeights(cmd.Context(), &since)
		if err != nil {
			return fmt.Errorf("failed to list weights: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No weight entries.")
			return nil
		}
		faint := color.New(color.Faint)
		for _, w := range entries {
			notes := ""
			if w.Notes != nil {
				notes = faint.Sprintf(" (%s)", truncate(*w.Notes, 30))
			}
			fmt.Printf("%s %s %.1f kg%s\n", faint.Sprint(padRight(fmt.Sprintf("#%d", w.ID), 6)), w.Date, w.WeightKg, notes)
		}
		return nil
	},
}

var weightLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show the most recent reading",
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := db.LatestWeight(cmd.Context())
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Println("No weight entries.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get latest weight: %w", err)
		}
		fmt.Printf("%.1f kg on %s\n", w.WeightKg, w.Date)
		return nil
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Write or read the daily summary",
}

var summarySetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update a day's summary; unset flags keep stored values",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := dayFlag(summaryDate)
		if err != nil {
			return err
		}

		in := &models.DailySummary{Date: date}
		flags := cmd.Flags()
		if flags.Changed("highlight") {
			in.Highlight = &summaryHighlight
		}
		if flags.Changed("challenge") {
			in.Challenge = &summaryChallenge
		}
		if flags.Changed("energy") {
			in.EnergyLevel = &summaryEnergy
		}
		if flags.Changed("sleep") {
			in.SleepQuality = &summarySleep
		}
		if flags.Changed("gratitude") {
			in.Gratitude = &summaryGratitude
		}
		if flags.Changed("focus") {
			in.TomorrowFocus = &summaryFocus
		}

		s, err := db.UpsertSummary(cmd.Context(), in)
		if err != nil {
			return fmt.Errorf("failed to save summary: %w", err)
		}
		color.Green("✓ Saved summary for %s", s.Date)
		return nil
	},
}

var summaryShowCmd = &cobra.Command{
	Use:   "show [date]",
	Short: "Show a day's summary (default today)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := ""
		if len(args) == 1 {
			raw = args[0]
		}
		date, err := dayFlag(raw)
		if err != nil {
			return err
		}

		s, err := db.GetSummary(cmd.Context(), date)
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Printf("No summary for %s.\n", date)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get summary: %w", err)
		}
		printSummary(s)
		return nil
	},
}

func printSummary(s *models.DailySummary) {
	bold := color.New(color.Bold)
	bold.Printf("Summary for %s\n", s.Date)
	field := func(label, value string) {
		if value != "" {
			fmt.Printf("  %s %s\n", color.New(color.Faint).Sprint(padRight(label, 10)), value)
		}
	}
	num := func(p *int) string {
		if p == nil {
			return ""
		}
		return fmt.Sprintf("%d/10", *p)
	}
	field("highlight", deref(s.Highlight))
	field("challenge", deref(s.Challenge))
	field("energy", num(s.EnergyLevel))
	field("sleep", num(s.SleepQuality))
	field("gratitude", deref(s.Gratitude))
	field("tomorrow", deref(s.TomorrowFocus))
}

// dayFlag parses an optional YYYY-MM-DD; empty or "today" means today.
func dayFlag(s string) (models.Date, error) {
	if s == "" || s == "today" {
		return models.DateOf(time.Now()), nil
	}
	return models.ParseDate(s)
}

func init() {
	weightAddCmd.Flags().StringVar(&weightDate, "date", "", "day of the reading (YYYY-MM-DD, default today)")
	weightAddCmd.Flags().StringVar(&weightNotes, "notes", "", "notes for the reading")
	weightListCmd.Flags().IntVar(&weightDays, "days", 30, "how many days back to list")
	weightCmd.AddCommand(weightAddCmd, weightListCmd, weightLatestCmd)

	summarySetCmd.Flags().StringVar(&summaryDate, "date", "", "day (YYYY-MM-DD, default today)")
	summarySetCmd.Flags().StringVar(&summaryHighlight, "highlight", "", "best part of the day")
	summarySetCmd.Flags().StringVar(&summaryChallenge, "challenge", "", "hardest part of the day")
	summarySetCmd.Flags().IntVar(&summaryEnergy, "energy", 0, "energy level 1-10")
	summarySetCmd.Flags().IntVar(&summarySleep, "sleep", 0, "sleep quality 1-10")
	summarySetCmd.Flags().StringVar(&summaryGratitude, "gratitude", "", "something to be grateful for")
	summarySetCmd.Flags().StringVar(&summaryFocus, "focus", "", "focus for tomorrow")
	summaryCmd.AddCommand(summarySetCmd, summaryShowCmd)

	rootCmd.AddCommand(weightCmd, summaryCmd)
}
