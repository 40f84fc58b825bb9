// ABOUTME: Append-only journal entries: food, training and mental-health logs.
// ABOUTME: Each entry defaults LoggedAt to its creation time.
package models

import "time"

// FoodLog records a meal or snack.
type FoodLog struct {
	ID          int64     `json:"id" yaml:"id"`
	Description string    `json:"description" yaml:"description"`
	MealType    *string   `json:"meal_type" yaml:"meal_type,omitempty"`
	LoggedAt    time.Time `json:"logged_at" yaml:"logged_at"`
	Notes       *string   `json:"notes" yaml:"notes,omitempty"`
}

// NewFoodLog creates a food entry logged now.
func NewFoodLog(description string) *FoodLog {
	return &FoodLog{Description: description, LoggedAt: time.Now().UTC()}
}

// TrainingLog records a training session.
type TrainingLog struct {
	ID              int64     `json:"id" yaml:"id"`
	Activity        string    `json:"activity" yaml:"activity"`
	DurationMinutes *int      `json:"duration_minutes" yaml:"duration_minutes,omitempty"`
	Intensity       *string   `json:"intensity" yaml:"intensity,omitempty"`
	LoggedAt        time.Time `json:"logged_at" yaml:"logged_at"`
	Notes           *string   `json:"notes" yaml:"notes,omitempty"`
}

// NewTrainingLog creates a training entry logged now.
func NewTrainingLog(activity string) *TrainingLog {
	return &TrainingLog{Activity: activity, LoggedAt: time.Now().UTC()}
}

// WithDuration sets the duration in minutes.
func (t *TrainingLog) WithDuration(minutes int) *TrainingLog {
	t.DurationMinutes = &minutes
	return t
}

// WithLoggedAt sets a custom timestamp.
func (t *TrainingLog) WithLoggedAt(at time.Time) *TrainingLog {
	t.LoggedAt = at
	return t
}

// MentalLog records a journal note about mood or state of mind.
type MentalLog struct {
	ID       int64     `json:"id" yaml:"id"`
	Content  string    `json:"content" yaml:"content"`
	Mood     *string   `json:"mood" yaml:"mood,omitempty"`
	Tags     *string   `json:"tags" yaml:"tags,omitempty"`
	LoggedAt time.Time `json:"logged_at" yaml:"logged_at"`
}

// NewMentalLog creates a mental-health entry logged now.
func NewMentalLog(content string) *MentalLog {
	return &MentalLog{Content: content, LoggedAt: time.Now().UTC()}
}
