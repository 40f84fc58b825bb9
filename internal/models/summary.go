// ABOUTME: Per-day records keyed by calendar date: DailySummary and WeightLog.
// ABOUTME: Summaries merge field-by-field on upsert; weights are overwritten wholesale.
package models

import "time"

// DailySummary is the end-of-day reflection. At most one exists per date.
type DailySummary struct {
	ID            int64     `json:"id" yaml:"id"`
	Date          Date      `json:"summary_date" yaml:"summary_date"`
	Highlight     *string   `json:"highlight" yaml:"highlight,omitempty"`
	Challenge     *string   `json:"challenge" yaml:"challenge,omitempty"`
	EnergyLevel   *int      `json:"energy_level" yaml:"energy_level,omitempty"`
	SleepQuality  *int      `json:"sleep_quality" yaml:"sleep_quality,omitempty"`
	Gratitude     *string   `json:"gratitude" yaml:"gratitude,omitempty"`
	TomorrowFocus *string   `json:"tomorrow_focus" yaml:"tomorrow_focus,omitempty"`
	CreatedAt     time.Time `json:"created_at" yaml:"created_at"`
}

// Merge copies every non-nil field of in onto s, keeping existing values for nil fields.
func (s *DailySummary) Merge(in *DailySummary) {
	if in.Highlight != nil {
		s.Highlight = in.Highlight
	}
	if in.Challenge != nil {
		s.Challenge = in.Challenge
	}
	if in.EnergyLevel != nil {
		s.EnergyLevel = in.EnergyLevel
	}
	if in.SleepQuality != nil {
		s.SleepQuality = in.SleepQuality
	}
	if in.Gratitude != nil {
		s.Gratitude = in.Gratitude
	}
	if in.TomorrowFocus != nil {
		s.TomorrowFocus = in.TomorrowFocus
	}
}

// WeightLog is a body-weight reading. At most one exists per date.
type WeightLog struct {
	ID       int64   `json:"id" yaml:"id"`
	WeightKg float64 `json:"weight_kg" yaml:"weight_kg"`
	Date     Date    `json:"logged_at" yaml:"logged_at"`
	Notes    *string `json:"notes" yaml:"notes,omitempty"`
}

// NewWeightLog creates a reading for the given date.
func NewWeightLog(kg float64, date Date) *WeightLog {
	return &WeightLog{WeightKg: kg, Date: date}
}

// Overwrite replaces weight and notes with in's values, including a nil note.
func (w *WeightLog) Overwrite(in *WeightLog) {
	w.WeightKg = in.WeightKg
	w.Notes = in.Notes
}
