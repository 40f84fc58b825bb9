// ABOUTME: Reminder model and ReminderStatus enum.
// ABOUTME: Applies partial updates and stamps completion time on the first transition to done.
package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidEnum is returned when a string is not a member of a closed enum.
var ErrInvalidEnum = errors.New("invalid value")

// ReminderStatus is the lifecycle state of a reminder.
type ReminderStatus string

const (
	ReminderPending   ReminderStatus = "pending"
	ReminderDone      ReminderStatus = "done"
	ReminderDismissed ReminderStatus = "dismissed"
)

// AllReminderStatuses lists every valid reminder status.
var AllReminderStatuses = []ReminderStatus{ReminderPending, ReminderDone, ReminderDismissed}

// ParseReminderStatus validates s against the known statuses.
func ParseReminderStatus(s string) (ReminderStatus, error) {
	for _, st := range AllReminderStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: unknown reminder status %q (valid: pending, done, dismissed)", ErrInvalidEnum, s)
}

// UnmarshalText rejects unknown statuses when decoding requests.
func (s *ReminderStatus) UnmarshalText(text []byte) error {
	st, err := ParseReminderStatus(string(text))
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// Reminder is a to-do item with an optional due time.
type Reminder struct {
	ID          int64          `json:"id" yaml:"id"`
	Text        string         `json:"text" yaml:"text"`
	DueAt       *time.Time     `json:"due_at" yaml:"due_at,omitempty"`
	Status      ReminderStatus `json:"status" yaml:"status"`
	CreatedAt   time.Time      `json:"created_at" yaml:"created_at"`
	CompletedAt *time.Time     `json:"completed_at" yaml:"completed_at,omitempty"`
}

// NewReminder creates a pending reminder created now.
func NewReminder(text string) *Reminder {
	return &Reminder{
		Text:      text,
		Status:    ReminderPending,
		CreatedAt: time.Now().UTC(),
	}
}

// WithDueAt sets the due time.
func (r *Reminder) WithDueAt(t time.Time) *Reminder {
	r.DueAt = &t
	return r
}

// ReminderUpdate lists the mutable reminder fields. Nil fields are left unchanged.
// ClearDueAt removes the due time and wins over DueAt.
type ReminderUpdate struct {
	Text       *string         `json:"text,omitempty"`
	DueAt      *time.Time      `json:"due_at,omitempty"`
	ClearDueAt bool            `json:"-"`
	Status     *ReminderStatus `json:"status,omitempty"`
}

// Apply writes the non-nil fields of u onto r.
// Moving to done stamps CompletedAt with now unless it is already set.
func (r *Reminder) Apply(u ReminderUpdate, now time.Time) {
	if u.Text != nil {
		r.Text = *u.Text
	}
	switch {
	case u.ClearDueAt:
		r.DueAt = nil
	case u.DueAt != nil:
		due := *u.DueAt
		r.DueAt = &due
	}
	if u.Status != nil {
		r.Status = *u.Status
		if r.Status == ReminderDone && r.CompletedAt == nil {
			completed := now.UTC()
			r.CompletedAt = &completed
		}
	}
}
