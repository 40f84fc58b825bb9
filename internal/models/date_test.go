// ABOUTME: Tests for the Date calendar type.
// ABOUTME: Covers parsing, JSON encoding and day arithmetic.
package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2026-01-15", "2026-01-15", false},
		{" 2026-12-31 ", "2026-12-31", false},
		{"2026-02-30", "", true},
		{"15/01/2026", "", true},
		{"yesterday", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDate) {
					t.Fatalf("expected ErrInvalidDate, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDateOfUsesLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	at := time.Date(2026, 5, 1, 0, 30, 0, 0, loc)
	if got := DateOf(at).String(); got != "2026-05-01" {
		t.Errorf("DateOf = %s, want 2026-05-01", got)
	}
}

func TestDateAddDays(t *testing.T) {
	d := NewDate(2026, 3, 1)
	if got := d.AddDays(-1).String(); got != "2026-02-28" {
		t.Errorf("AddDays(-1) = %s, want 2026-02-28", got)
	}
	if got := d.AddDays(30).String(); got != "2026-03-31" {
		t.Errorf("AddDays(30) = %s, want 2026-03-31", got)
	}
}

func TestDateJSON(t *testing.T) {
	var payload struct {
		D Date  `json:"d"`
		P *Date `json:"p"`
	}
	if err := json.Unmarshal([]byte(`{"d":"2026-07-04","p":null}`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.D.String() != "2026-07-04" {
		t.Errorf("D = %s", payload.D)
	}
	if payload.P != nil {
		t.Errorf("P = %v, want nil", payload.P)
	}

	out, err := json.Marshal(payload.D)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"2026-07-04"` {
		t.Errorf("marshal = %s", out)
	}

	if err := json.Unmarshal([]byte(`{"d":"07/04/2026"}`), &payload); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestParseTime(t *testing.T) {
	lisbon, err := time.LoadLocation("Europe/Lisbon")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2026-07-01T10:00:00Z", time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)},
		{"2026-07-01T10:00:00+02:00", time.Date(2026, 7, 1, 8, 0, 0, 0, time.UTC)},
		{"2026-07-01T10:00:00", time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)},
		{"2026-07-01 10:00", time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)},
		{"2026-07-01", time.Date(2026, 6, 30, 23, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTime(tt.in, lisbon)
			if err != nil {
				t.Fatalf("ParseTime(%q) error: %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseTime(%q) = %v, want %v", tt.in, got.UTC(), tt.want)
			}
		})
	}

	if _, err := ParseTime("next tuesday", lisbon); !errors.Is(err, ErrInvalidTime) {
		t.Errorf("expected ErrInvalidTime, got %v", err)
	}
}
