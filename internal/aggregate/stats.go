// ABOUTME: Training frequency and weight trend statistics.
// ABOUTME: Weeks start on Monday; weekly breakdowns are keyed by ISO week number.
package aggregate

import (
	"sort"
	"time"

	"github.com/harperreed/lifedash/internal/models"
)

// BreakdownDays is how far back the weekly training breakdown reaches.
const BreakdownDays = 28

// WeightTrendDays is the default window for the weight trend.
const WeightTrendDays = 30

// DayStart returns midnight of now's calendar day in now's location.
func DayStart(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// WeekStart returns midnight of the Monday on or before now.
func WeekStart(now time.Time) time.Time {
	offset := (int(now.Weekday()) + 6) % 7
	return DayStart(now).AddDate(0, 0, -offset)
}

// MonthStart returns midnight of the first day of now's month.
func MonthStart(now time.Time) time.Time {
	y, m, _ := now.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
}

// TrainingWindowStart is the earliest instant TrainingStats looks at.
func TrainingWindowStart(now time.Time) time.Time {
	earliest := DayStart(now).AddDate(0, 0, -BreakdownDays)
	if ws := WeekStart(now); ws.Before(earliest) {
		earliest = ws
	}
	if ms := MonthStart(now); ms.Before(earliest) {
		earliest = ms
	}
	return earliest
}

// TrainingSummary counts sessions for the current week, the current month and by ISO week.
type TrainingSummary struct {
	ThisWeek        int         `json:"this_week"`
	ThisMonth       int         `json:"this_month"`
	WeeklyBreakdown map[int]int `json:"weekly_breakdown"`
}

// TrainingStats summarizes sessions relative to now.
func TrainingStats(sessions []*models.TrainingLog, now time.Time) TrainingSummary {
	loc := now.Location()
	weekStart := WeekStart(now)
	monthStart := MonthStart(now)
	breakdownStart := DayStart(now).AddDate(0, 0, -BreakdownDays)

	summary := TrainingSummary{WeeklyBreakdown: make(map[int]int)}
	for _, s := range sessions {
		at := s.LoggedAt.In(loc)
		if !at.Before(weekStart) {
			summary.ThisWeek++
		}
		if !at.Before(monthStart) {
			summary.ThisMonth++
		}
		if !at.Before(breakdownStart) {
			_, week := at.ISOWeek()
			summary.WeeklyBreakdown[week]++
		}
	}
	return summary
}

// WeightPoint is one reading in a weight trend.
type WeightPoint struct {
	Date   models.Date `json:"date"`
	Weight float64     `json:"weight"`
}

// WeightSummary is the weight series over a window and the change across it.
type WeightSummary struct {
	Entries   []WeightPoint `json:"entries"`
	Change30d *float64      `json:"change_30d"`
	Latest    *float64      `json:"latest"`
}

// WeightTrend returns readings from the last WeightTrendDays days in ascending date order.
// Change is last minus first rounded to one decimal, and needs at least two readings.
func WeightTrend(entries []*models.WeightLog, now time.Time) WeightSummary {
	cutoff := models.DateOf(now).AddDays(-WeightTrendDays)

	points := make([]WeightPoint, 0, len(entries))
	for _, e := range entries {
		if e.Date.Before(cutoff.Time) {
			continue
		}
		points = append(points, WeightPoint{Date: e.Date, Weight: e.WeightKg})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date.Time) })

	summary := WeightSummary{Entries: points}
	if len(points) > 0 {
		latest := points[len(points)-1].Weight
		summary.Latest = &latest
	}
	if len(points) >= 2 {
		change := Round1(points[len(points)-1].Weight - points[0].Weight)
		summary.Change30d = &change
	}
	return summary
}
