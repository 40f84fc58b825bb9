// ABOUTME: CLI commands for logging food, training and mental-health entries.
// ABOUTME: Timestamps default to now; --at accepts RFC3339 or local "YYYY-MM-DD HH:MM".
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lifedash/internal/models"
)

var (
	logAt        string
	logNotes     string
	logMeal      string
	logDuration  int
	logIntensity string
	logMood      string
	logTags      string
)

var logCmd = &cobra.Command{
	Use:     "log",
	Aliases: []string{"a", "add"},
	Short:   "Log food, training or a journal entry",
	Long: `Log something that happened today (or at --at).

Examples:
  lifedash log food "eggs and toast" --meal breakfast
  lifedash log training run --duration 35 --intensity easy
  lifedash log mental "anxious before the review" --mood tense --tags work
  lifedash log food "pizza" --at "2026-01-13 20:30"`,
}

var logFoodCmd = &cobra.Command{
	Use:   "food <description>",
	Short: "Log something eaten",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := loggedAt()
		if err != nil {
			return err
		}
		f := models.NewFoodLog(args[0])
		f.LoggedAt = at
		f.MealType = optionalFlag(logMeal)
		f.Notes = optionalFlag(logNotes)

		if err := db.CreateFoodLog(cmd.Context(), f); err != nil {
			return fmt.Errorf("failed to log food: %w", err)
		}
		printLogged("food", f.ID, f.LoggedAt, f.Description)
		return nil
	},
}

var logTrainingCmd = &cobra.Command{
	Use:   "training <activity>",
	Short: "Log a training session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if logDuration < 0 {
			return fmt.Errorf("invalid duration: %d", logDuration)
		}
		at, err := loggedAt()
		if err != nil {
			return err
		}
		tl := models.NewTrainingLog(args[0]).WithLoggedAt(at)
		if logDuration > 0 {
			tl.WithDuration(logDuration)
		}
		tl.Intensity = optionalFlag(logIntensity)
		tl.Notes = optionalFlag(logNotes)

		if err := db.CreateTrainingLog(cmd.Context(), tl); err != nil {
			return fmt.Errorf("failed to log training: %w", err)
		}
		printLogged("training", tl.ID, tl.LoggedAt, tl.Activity)
		return nil
	},
}

var logMentalCmd = &cobra.Command{
	Use:   "mental <content>",
	Short: "Log a mental-health journal entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := loggedAt()
		if err != nil {
			return err
		}
		m := models.NewMentalLog(args[0])
		m.LoggedAt = at
		m.Mood = optionalFlag(logMood)
		m.Tags = optionalFlag(logTags)

		if err := db.CreateMentalLog(cmd.Context(), m); err != nil {
			return fmt.Errorf("failed to log entry: %w", err)
		}
		printLogged("mental", m.ID, m.LoggedAt, truncate(m.Content, 40))
		return nil
	},
}

func loggedAt() (time.Time, error) {
	if logAt == "" {
		return time.Now().UTC(), nil
	}
	t, err := parseTime(logAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp: %s", logAt)
	}
	return t.UTC(), nil
}

func printLogged(kind string, id int64, at time.Time, what string) {
	color.Green("✓ Logged %s", kind)
	fmt.Printf("  %s %s %s\n",
		color.New(color.Faint).Sprintf("#%d", id),
		color.New(color.Faint).Sprint(at.Local().Format("2006-01-02 15:04")),
		what)
}

// parseTime reads CLI timestamps; inputs without an offset are local time.
func parseTime(s string) (time.Time, error) {
	return models.ParseTime(s, time.Local)
}

func optionalFlag(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func init() {
	logCmd.PersistentFlags().StringVar(&logAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")
	logFoodCmd.Flags().StringVar(&logMeal, "meal", "", "meal type (breakfast, lunch, dinner, snack)")
	logFoodCmd.Flags().StringVar(&logNotes, "notes", "", "notes for the entry")
	logTrainingCmd.Flags().IntVarP(&logDuration, "duration", "d", 0, "duration in minutes")
	logTrainingCmd.Flags().StringVar(&logIntensity, "intensity", "", "intensity (easy, moderate, hard)")
	logTrainingCmd.Flags().StringVar(&logNotes, "notes", "", "notes for the entry")
	logMentalCmd.Flags().StringVar(&logMood, "mood", "", "mood label")
	logMentalCmd.Flags().StringVar(&logTags, "tags", "", "comma-separated tags")

	logCmd.AddCommand(logFoodCmd, logTrainingCmd, logMentalCmd)
	rootCmd.AddCommand(logCmd)
}
