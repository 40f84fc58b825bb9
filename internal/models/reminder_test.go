// ABOUTME: Tests for the Reminder model and ReminderStatus parsing.
// ABOUTME: Covers partial updates and completion-time stamping.
package models

import (
	"errors"
	"testing"
	"time"
)

func TestParseReminderStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    ReminderStatus
		wantErr bool
	}{
		{"pending", ReminderPending, false},
		{"done", ReminderDone, false},
		{"dismissed", ReminderDismissed, false},
		{"DONE", "", true},
		{"", "", true},
		{"archived", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseReminderStatus(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidEnum) {
					t.Fatalf("expected ErrInvalidEnum, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNewReminder(t *testing.T) {
	r := NewReminder("call mom")
	if r.Status != ReminderPending {
		t.Errorf("Status = %s, want pending", r.Status)
	}
	if r.CompletedAt != nil {
		t.Error("new reminder should not be completed")
	}
	if r.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestReminderApplyStampsCompletionOnce(t *testing.T) {
	r := NewReminder("file taxes")
	done := ReminderDone
	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	r.Apply(ReminderUpdate{Status: &done}, first)
	if r.CompletedAt == nil || !r.CompletedAt.Equal(first) {
		t.Fatalf("CompletedAt = %v, want %v", r.CompletedAt, first)
	}

	r.Apply(ReminderUpdate{Status: &done}, first.Add(time.Hour))
	if !r.CompletedAt.Equal(first) {
		t.Errorf("CompletedAt changed on second done: %v", r.CompletedAt)
	}
}

func TestReminderApplyKeepsCompletionWhenReopened(t *testing.T) {
	r := NewReminder("water plants")
	done, pending := ReminderDone, ReminderPending
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	r.Apply(ReminderUpdate{Status: &done}, now)
	r.Apply(ReminderUpdate{Status: &pending}, now.Add(time.Hour))

	if r.Status != ReminderPending {
		t.Errorf("Status = %s, want pending", r.Status)
	}
	if r.CompletedAt == nil {
		t.Error("CompletedAt should survive reopening")
	}
}

func TestReminderApplyPartial(t *testing.T) {
	due := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
	r := NewReminder("old").WithDueAt(due)
	text := "new"

	r.Apply(ReminderUpdate{Text: &text}, time.Now())

	if r.Text != "new" {
		t.Errorf("Text = %q, want new", r.Text)
	}
	if r.DueAt == nil || !r.DueAt.Equal(due) {
		t.Errorf("DueAt changed: %v", r.DueAt)
	}
	if r.Status != ReminderPending {
		t.Errorf("Status changed: %s", r.Status)
	}
}

func TestReminderApplyClearsDueAt(t *testing.T) {
	due := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
	r := NewReminder("call").WithDueAt(due)
	later := due.Add(24 * time.Hour)

	r.Apply(ReminderUpdate{DueAt: &later, ClearDueAt: true}, time.Now())

	if r.DueAt != nil {
		t.Errorf("DueAt = %v, want nil", r.DueAt)
	}
}
