// ABOUTME: CLI command for listing food, training and mental-health entries.
// ABOUTME: Supports filtering by local day and limiting results.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lifedash/internal/models"
	"github.com/harperreed/lifedash/internal/storage"
)

var (
	listDate  string
	listLimit int
)

var listCmd = &cobra.Command{
	Use:       "list <food|training|mental>",
	Aliases:   []string{"ls", "l"},
	Short:     "List journal entries",
	ValidArgs: []string{"food", "training", "mental"},
	Long: `List logged entries, newest first.

OUTPUT FORMAT:

  Each line shows: #ID  TIMESTAMP  WHAT  (DETAILS)

  The ID is what 'lifedash delete' expects.

EXAMPLES:

  lifedash list food                     # Last 20 food entries
  lifedash list training --date today    # Today's sessions
  lifedash list mental -d 2026-01-13     # One day of journal entries
  lifedash list food -n 50               # Last 50 entries`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rng, err := dayRangeFlag(listDate)
		if err != nil {
			return err
		}

		var lines []entryLine
		switch args[0] {
		case "food":
			entries, err := db.ListFoodLogs(cmd.Context(), rng)
			if err != nil {
				return fmt.Errorf("failed to list food: %w", err)
			}
			for _, f := range entries {
				lines = append(lines, entryLine{f.ID, f.LoggedAt, f.Description, deref(f.MealType)})
			}
		case "training":
			entries, err := db.ListTrainingLogs(cmd.Context(), rng)
			if err != nil {
				return fmt.Errorf("failed to list training: %w", err)
			}
			for _, tl := range entries {
				detail := deref(tl.Intensity)
				if tl.DurationMinutes != nil {
					detail = strings.TrimSpace(fmt.Sprintf("%d min %s", *tl.DurationMinutes, detail))
				}
				lines = append(lines, entryLine{tl.ID, tl.LoggedAt, tl.Activity, detail})
			}
		case "mental":
			entries, err := db.ListMentalLogs(cmd.Context(), rng)
			if err != nil {
				return fmt.Errorf("failed to list journal: %w", err)
			}
			for _, m := range entries {
				lines = append(lines, entryLine{m.ID, m.LoggedAt, m.Content, deref(m.Mood)})
			}
		default:
			return fmt.Errorf("unknown entry type: %s (use food, training or mental)", args[0])
		}

		if len(lines) == 0 {
			fmt.Println("No entries found.")
			return nil
		}
		if listLimit > 0 && len(lines) > listLimit {
			lines = lines[:listLimit]
		}

		faint := color.New(color.Faint)
		for _, l := range lines {
			detail := ""
			if l.detail != "" {
				detail = faint.Sprintf(" (%s)", truncate(l.detail, 30))
			}
			fmt.Printf("%s %s %s%s\n",
				faint.Sprint(padRight(fmt.Sprintf("#%d", l.id), 6)),
				faint.Sprint(l.at.Local().Format("2006-01-02 15:04")),
				truncate(l.what, 50),
				detail)
		}
		return nil
	},
}

type entryLine struct {
	id     int64
	at     time.Time
	what   string
	detail string
}

// dayRangeFlag turns "", "today" or YYYY-MM-DD into a local-day range.
func dayRangeFlag(s string) (storage.TimeRange, error) {
	switch s {
	case "":
		return storage.TimeRange{}, nil
	case "today":
		return storage.DayRange(models.DateOf(time.Now()), time.Local), nil
	}
	d, err := models.ParseDate(s)
	if err != nil {
		return storage.TimeRange{}, err
	}
	return storage.DayRange(d, time.Local), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	listCmd.Flags().StringVarP(&listDate, "date", "d", "", "only entries on this day (YYYY-MM-DD or today)")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max number of results")
	rootCmd.AddCommand(listCmd)
}
