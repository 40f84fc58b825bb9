// ABOUTME: Tests for training and weight statistics.
// ABOUTME: Uses fixed clocks so week and month boundaries are deterministic.
package aggregate

import (
	"testing"
	"time"

	"github.com/harperreed/lifedash/internal/models"
)

// Wednesday 2026-01-14 15:00 UTC; ISO week 3; week starts Monday 2026-01-12.
var fixedNow = time.Date(2026, 1, 14, 15, 0, 0, 0, time.UTC)

func session(at time.Time) *models.TrainingLog {
	return models.NewTrainingLog("run").WithLoggedAt(at)
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"wednesday", fixedNow, time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)},
		{"monday", time.Date(2026, 1, 12, 8, 0, 0, 0, time.UTC), time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)},
		{"sunday", time.Date(2026, 1, 18, 23, 59, 0, 0, time.UTC), time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekStart(tt.now); !got.Equal(tt.want) {
				t.Errorf("WeekStart = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrainingStats(t *testing.T) {
	sessions := []*models.TrainingLog{
		session(time.Date(2026, 1, 12, 7, 0, 0, 0, time.UTC)),  // this week, week 3
		session(time.Date(2026, 1, 14, 6, 0, 0, 0, time.UTC)),  // this week, week 3
		session(time.Date(2026, 1, 11, 18, 0, 0, 0, time.UTC)), // last Sunday, week 2
		session(time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)),   // this month, week 1
		session(time.Date(2025, 12, 20, 9, 0, 0, 0, time.UTC)), // week 51, within 28 days
		session(time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC)),  // outside every window
	}

	got := TrainingStats(sessions, fixedNow)

	if got.ThisWeek != 2 {
		t.Errorf("ThisWeek = %d, want 2", got.ThisWeek)
	}
	if got.ThisMonth != 4 {
		t.Errorf("ThisMonth = %d, want 4", got.ThisMonth)
	}
	want := map[int]int{3: 2, 2: 1, 1: 1, 51: 1}
	if len(got.WeeklyBreakdown) != len(want) {
		t.Fatalf("WeeklyBreakdown = %v, want %v", got.WeeklyBreakdown, want)
	}
	for week, n := range want {
		if got.WeeklyBreakdown[week] != n {
			t.Errorf("week %d = %d, want %d", week, got.WeeklyBreakdown[week], n)
		}
	}
}

func TestTrainingWindowStart(t *testing.T) {
	want := time.Date(2025, 12, 17, 0, 0, 0, 0, time.UTC)
	if got := TrainingWindowStart(fixedNow); !got.Equal(want) {
		t.Errorf("TrainingWindowStart = %v, want %v", got, want)
	}
}

func TestWeightTrend(t *testing.T) {
	entries := []*models.WeightLog{
		models.NewWeightLog(81.2, models.NewDate(2026, 1, 10)),
		models.NewWeightLog(82.0, models.NewDate(2025, 12, 20)),
		models.NewWeightLog(90.0, models.NewDate(2025, 11, 1)), // out of window
		models.NewWeightLog(80.9, models.NewDate(2026, 1, 14)),
	}

	got := WeightTrend(entries, fixedNow)

	if len(got.Entries) != 3 {
		t.Fatalf("len(Entries) = %d, want 3", len(got.Entries))
	}
	if got.Entries[0].Date.String() != "2025-12-20" || got.Entries[2].Date.String() != "2026-01-14" {
		t.Errorf("entries not ascending: %v", got.Entries)
	}
	if got.Change30d == nil || *got.Change30d != -1.1 {
		t.Errorf("Change30d = %v, want -1.1", got.Change30d)
	}
	if got.Latest == nil || *got.Latest != 80.9 {
		t.Errorf("Latest = %v, want 80.9", got.Latest)
	}
}

func TestWeightTrendSingleEntryHasNoChange(t *testing.T) {
	got := WeightTrend([]*models.WeightLog{
		models.NewWeightLog(75, models.NewDate(2026, 1, 13)),
	}, fixedNow)

	if got.Change30d != nil {
		t.Errorf("Change30d = %v, want nil", *got.Change30d)
	}
	if got.Latest == nil || *got.Latest != 75 {
		t.Errorf("Latest = %v, want 75", got.Latest)
	}
}

func TestWeightTrendEmpty(t *testing.T) {
	got := WeightTrend(nil, fixedNow)
	if got.Change30d != nil || got.Latest != nil {
		t.Errorf("got %+v, want no change and no latest", got)
	}
	if got.Entries == nil {
		t.Error("Entries should be an empty slice, not nil")
	}
}
