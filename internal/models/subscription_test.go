// ABOUTME: Tests for Subscription, BillingCycle and SubscriptionCategory.
// ABOUTME: Covers effective price, enum validation and partial updates.
package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestEffectivePrice(t *testing.T) {
	s := NewSubscription("Netflix", 15.99)
	if got := s.EffectivePrice(); got != 15.99 {
		t.Errorf("EffectivePrice = %v, want 15.99", got)
	}

	s.WithMyPrice(5.33)
	if got := s.EffectivePrice(); got != 5.33 {
		t.Errorf("EffectivePrice = %v, want 5.33", got)
	}

	s.WithMyPrice(0)
	if got := s.EffectivePrice(); got != 0 {
		t.Errorf("EffectivePrice with zero share = %v, want 0", got)
	}
}

func TestNewSubscriptionDefaults(t *testing.T) {
	s := NewSubscription("Spotify", 10)
	if !s.Active {
		t.Error("new subscription should be active")
	}
	if s.BillingCycle != CycleMonthly {
		t.Errorf("BillingCycle = %s, want monthly", s.BillingCycle)
	}
	if s.Category != CategoryOther {
		t.Errorf("Category = %s, want other", s.Category)
	}
	if s.IsShared {
		t.Error("new subscription should not be shared")
	}
}

func TestParseBillingCycle(t *testing.T) {
	for _, c := range AllBillingCycles {
		got, err := ParseBillingCycle(string(c))
		if err != nil || got != c {
			t.Errorf("ParseBillingCycle(%s) = %s, %v", c, got, err)
		}
	}
	if _, err := ParseBillingCycle("daily"); !errors.Is(err, ErrInvalidEnum) {
		t.Errorf("expected ErrInvalidEnum, got %v", err)
	}
}

func TestParseSubscriptionCategory(t *testing.T) {
	if got, err := ParseSubscriptionCategory("ai"); err != nil || got != CategoryAI {
		t.Errorf("ParseSubscriptionCategory(ai) = %s, %v", got, err)
	}
	if _, err := ParseSubscriptionCategory("gaming"); !errors.Is(err, ErrInvalidEnum) {
		t.Errorf("expected ErrInvalidEnum, got %v", err)
	}
}

func TestSubscriptionJSONRejectsUnknownCycle(t *testing.T) {
	var s Subscription
	err := json.Unmarshal([]byte(`{"name":"x","full_price":1,"billing_cycle":"fortnightly"}`), &s)
	if !errors.Is(err, ErrInvalidEnum) {
		t.Errorf("expected ErrInvalidEnum, got %v", err)
	}
}

func TestSubscriptionApply(t *testing.T) {
	s := NewSubscription("iCloud", 2.99).WithCategory(CategoryCloud)
	price := 9.99
	yearly := CycleYearly
	active := false

	s.Apply(SubscriptionUpdate{FullPrice: &price, BillingCycle: &yearly, Active: &active})

	if s.FullPrice != 9.99 {
		t.Errorf("FullPrice = %v, want 9.99", s.FullPrice)
	}
	if s.BillingCycle != CycleYearly {
		t.Errorf("BillingCycle = %s, want yearly", s.BillingCycle)
	}
	if s.Active {
		t.Error("expected inactive")
	}
	if s.Name != "iCloud" || s.Category != CategoryCloud {
		t.Error("untouched fields changed")
	}
}
