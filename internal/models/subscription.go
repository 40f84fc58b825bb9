// ABOUTME: Subscription model with billing cycle and category enums.
// ABOUTME: Effective price falls back to the list price when no personal share is set.
package models

import (
	"fmt"
	"strings"
	"time"
)

// BillingCycle is how often a subscription is charged.
type BillingCycle string

const (
	CycleWeekly   BillingCycle = "weekly"
	CycleMonthly  BillingCycle = "monthly"
	CycleYearly   BillingCycle = "yearly"
	CycleLifetime BillingCycle = "lifetime"
)

// AllBillingCycles lists every valid billing cycle.
var AllBillingCycles = []BillingCycle{CycleWeekly, CycleMonthly, CycleYearly, CycleLifetime}

// ParseBillingCycle validates s against the known billing cycles.
func ParseBillingCycle(s string) (BillingCycle, error) {
	for _, c := range AllBillingCycles {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown billing cycle %q (valid: %s)", ErrInvalidEnum, s, joinEnum(AllBillingCycles))
}

// UnmarshalText rejects unknown billing cycles when decoding requests.
func (c *BillingCycle) UnmarshalText(text []byte) error {
	parsed, err := ParseBillingCycle(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// SubscriptionCategory groups subscriptions for reporting.
type SubscriptionCategory string

const (
	CategoryEntertainment SubscriptionCategory = "entertainment"
	CategoryProductivity  SubscriptionCategory = "productivity"
	CategoryHealth        SubscriptionCategory = "health"
	CategoryFinance       SubscriptionCategory = "finance"
	CategoryEducation     SubscriptionCategory = "education"
	CategoryCloud         SubscriptionCategory = "cloud"
	CategoryAI            SubscriptionCategory = "ai"
	CategoryOther         SubscriptionCategory = "other"
)

// AllSubscriptionCategories lists every valid category.
var AllSubscriptionCategories = []SubscriptionCategory{
	CategoryEntertainment, CategoryProductivity, CategoryHealth, CategoryFinance,
	CategoryEducation, CategoryCloud, CategoryAI, CategoryOther,
}

// ParseSubscriptionCategory validates s against the known categories.
func ParseSubscriptionCategory(s string) (SubscriptionCategory, error) {
	for _, c := range AllSubscriptionCategories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown category %q (valid: %s)", ErrInvalidEnum, s, joinEnum(AllSubscriptionCategories))
}

// UnmarshalText rejects unknown categories when decoding requests.
func (c *SubscriptionCategory) UnmarshalText(text []byte) error {
	parsed, err := ParseSubscriptionCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func joinEnum[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

// Subscription is a recurring (or one-off lifetime) paid service.
type Subscription struct {
	ID           int64                `json:"id" yaml:"id"`
	Name         string               `json:"name" yaml:"name" validate:"required"`
	FullPrice    float64              `json:"full_price" yaml:"full_price" validate:"gte=0"`
	MyPrice      *float64             `json:"my_price" yaml:"my_price,omitempty" validate:"omitempty,gte=0"`
	BillingCycle BillingCycle         `json:"billing_cycle" yaml:"billing_cycle"`
	Category     SubscriptionCategory `json:"category" yaml:"category"`
	IsShared     bool                 `json:"is_shared" yaml:"is_shared"`
	SharedWith   *string              `json:"shared_with" yaml:"shared_with,omitempty"`
	NextBilling  *Date                `json:"next_billing" yaml:"next_billing,omitempty"`
	Notes        *string              `json:"notes" yaml:"notes,omitempty"`
	Active       bool                 `json:"active" yaml:"active"`
	CreatedAt    time.Time            `json:"created_at" yaml:"created_at"`
}

// NewSubscription creates an active monthly subscription in category other.
func NewSubscription(name string, fullPrice float64) *Subscription {
	return &Subscription{
		Name:         name,
		FullPrice:    fullPrice,
		BillingCycle: CycleMonthly,
		Category:     CategoryOther,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}
}

// WithCycle sets the billing cycle.
func (s *Subscription) WithCycle(c BillingCycle) *Subscription {
	s.BillingCycle = c
	return s
}

// WithCategory sets the category.
func (s *Subscription) WithCategory(c SubscriptionCategory) *Subscription {
	s.Category = c
	return s
}

// WithMyPrice sets the user's personal share of the price and marks it shared.
func (s *Subscription) WithMyPrice(p float64) *Subscription {
	s.MyPrice = &p
	s.IsShared = true
	return s
}

// EffectivePrice is the user's share if set, otherwise the full price.
func (s *Subscription) EffectivePrice() float64 {
	if s.MyPrice != nil {
		return *s.MyPrice
	}
	return s.FullPrice
}

// SubscriptionUpdate lists the mutable subscription fields. Nil fields are left unchanged.
type SubscriptionUpdate struct {
	Name         *string               `json:"name,omitempty" validate:"omitempty,min=1"`
	FullPrice    *float64              `json:"full_price,omitempty" validate:"omitempty,gte=0"`
	MyPrice      *float64              `json:"my_price,omitempty" validate:"omitempty,gte=0"`
	BillingCycle *BillingCycle         `json:"billing_cycle,omitempty"`
	Category     *SubscriptionCategory `json:"category,omitempty"`
	IsShared     *bool                 `json:"is_shared,omitempty"`
	SharedWith   *string               `json:"shared_with,omitempty"`
	NextBilling  *Date                 `json:"next_billing,omitempty"`
	Notes        *string               `json:"notes,omitempty"`
	Active       *bool                 `json:"active,omitempty"`
}

// Apply writes the non-nil fields of u onto s.
func (s *Subscription) Apply(u SubscriptionUpdate) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.FullPrice != nil {
		s.FullPrice = *u.FullPrice
	}
	if u.MyPrice != nil {
		s.MyPrice = u.MyPrice
	}
	if u.BillingCycle != nil {
		s.BillingCycle = *u.BillingCycle
	}
	if u.Category != nil {
		s.Category = *u.Category
	}
	if u.IsShared != nil {
		s.IsShared = *u.IsShared
	}
	if u.SharedWith != nil {
		s.SharedWith = u.SharedWith
	}
	if u.NextBilling != nil {
		s.NextBilling = u.NextBilling
	}
	if u.Notes != nil {
		s.Notes = u.Notes
	}
	if u.Active != nil {
		s.Active = *u.Active
	}
}
