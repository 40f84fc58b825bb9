// ABOUTME: Suggestion model for externally generated recommendations.
// ABOUTME: Dismissal hides a suggestion from default listings and records when it happened.
package models

import "time"

// Suggestion is a prioritized recommendation grouped by free-form category.
type Suggestion struct {
	ID          int64      `json:"id" yaml:"id"`
	Category    string     `json:"category" yaml:"category" validate:"required"`
	Content     string     `json:"content" yaml:"content" validate:"required"`
	Priority    int        `json:"priority" yaml:"priority"`
	Dismissed   bool       `json:"dismissed" yaml:"dismissed"`
	CreatedAt   time.Time  `json:"created_at" yaml:"created_at"`
	DismissedAt *time.Time `json:"dismissed_at" yaml:"dismissed_at,omitempty"`
}

// NewSuggestion creates a visible suggestion with priority 0.
func NewSuggestion(category, content string) *Suggestion {
	return &Suggestion{
		Category:  category,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}

// WithPriority sets the priority; higher sorts first.
func (s *Suggestion) WithPriority(p int) *Suggestion {
	s.Priority = p
	return s
}

// Dismiss hides the suggestion and stamps DismissedAt.
func (s *Suggestion) Dismiss(now time.Time) {
	at := now.UTC()
	s.Dismissed = true
	s.DismissedAt = &at
}

// SuggestionUpdate lists the mutable suggestion fields. Nil fields are left unchanged.
type SuggestionUpdate struct {
	Content   *string `json:"content,omitempty" validate:"omitempty,min=1"`
	Priority  *int    `json:"priority,omitempty"`
	Dismissed *bool   `json:"dismissed,omitempty"`
}

// Apply writes the non-nil fields of u onto s. Setting Dismissed to true stamps DismissedAt.
func (s *Suggestion) Apply(u SuggestionUpdate, now time.Time) {
	if u.Content != nil {
		s.Content = *u.Content
	}
	if u.Priority != nil {
		s.Priority = *u.Priority
	}
	if u.Dismissed != nil {
		if *u.Dismissed {
			s.Dismiss(now)
		} else {
			s.Dismissed = false
		}
	}
}
