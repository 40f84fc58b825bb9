// ABOUTME: Tests for subscription cost rollups.
// ABOUTME: Covers cycle normalization, effective price, lifetime exclusion and category grouping.
package aggregate

import (
	"testing"

	"github.com/harperreed/lifedash/internal/models"
)

func sub(name string, price float64, cycle models.BillingCycle, cat models.SubscriptionCategory) *models.Subscription {
	return models.NewSubscription(name, price).WithCycle(cycle).WithCategory(cat)
}

func TestRecurring(t *testing.T) {
	tests := []struct {
		cycle       models.BillingCycle
		price       float64
		wantMonthly float64
		wantYearly  float64
	}{
		{models.CycleMonthly, 10, 10, 120},
		{models.CycleYearly, 120, 10, 120},
		{models.CycleWeekly, 10, 43.3, 520},
		{models.CycleLifetime, 299, 0, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.cycle), func(t *testing.T) {
			m, y := Recurring(tt.cycle, tt.price)
			if Round2(m) != tt.wantMonthly {
				t.Errorf("monthly = %v, want %v", m, tt.wantMonthly)
			}
			if Round2(y) != tt.wantYearly {
				t.Errorf("yearly = %v, want %v", y, tt.wantYearly)
			}
		})
	}
}

func TestSubscriptionTotalsMixedCycles(t *testing.T) {
	subs := []*models.Subscription{
		sub("Streaming", 10, models.CycleMonthly, models.CategoryEntertainment),
		sub("Backup", 120, models.CycleYearly, models.CategoryCloud),
	}

	got := SubscriptionTotals(subs)

	if got.Monthly != 20.00 {
		t.Errorf("Monthly = %v, want 20.00", got.Monthly)
	}
	if got.Yearly != 240.00 {
		t.Errorf("Yearly = %v, want 240.00", got.Yearly)
	}
	if got.Count != 2 {
		t.Errorf("Count = %d, want 2", got.Count)
	}
}

func TestSubscriptionTotalsUsesEffectivePrice(t *testing.T) {
	shared := sub("Family plan", 18, models.CycleMonthly, models.CategoryEntertainment).WithMyPrice(6)

	got := SubscriptionTotals([]*models.Subscription{shared})

	if got.Monthly != 6 {
		t.Errorf("Monthly = %v, want 6", got.Monthly)
	}
	if got.Yearly != 72 {
		t.Errorf("Yearly = %v, want 72", got.Yearly)
	}
}

func TestSubscriptionTotalsExcludesInactive(t *testing.T) {
	cancelled := sub("Old gym", 40, models.CycleMonthly, models.CategoryHealth)
	cancelled.Active = false

	got := SubscriptionTotals([]*models.Subscription{
		cancelled,
		sub("Notes app", 5, models.CycleMonthly, models.CategoryProductivity),
	})

	if got.Monthly != 5 || got.Count != 1 {
		t.Errorf("got %+v, want monthly 5 count 1", got)
	}
}

func TestSubscriptionTotalsLifetimeContributesZero(t *testing.T) {
	got := SubscriptionTotals([]*models.Subscription{
		sub("Editor license", 299, models.CycleLifetime, models.CategoryProductivity),
		sub("Music", 9.99, models.CycleMonthly, models.CategoryEntertainment),
	})

	if got.Monthly != 9.99 {
		t.Errorf("Monthly = %v, want 9.99", got.Monthly)
	}
	if got.Yearly != 119.88 {
		t.Errorf("Yearly = %v, want 119.88", got.Yearly)
	}
	if got.Count != 2 {
		t.Errorf("Count = %d, want 2", got.Count)
	}
}

func TestSubscriptionTotalsRoundsOnlyOnOutput(t *testing.T) {
	subs := []*models.Subscription{
		sub("A", 10, models.CycleYearly, models.CategoryOther),
		sub("B", 10, models.CycleYearly, models.CategoryOther),
		sub("C", 10, models.CycleYearly, models.CategoryOther),
	}

	got := SubscriptionTotals(subs)

	// Rounding each item first would give 2.49.
	if got.Monthly != 2.5 {
		t.Errorf("Monthly = %v, want 2.5", got.Monthly)
	}
}

func TestSubscriptionTotalsEmpty(t *testing.T) {
	got := SubscriptionTotals(nil)
	if got.Monthly != 0 || got.Yearly != 0 || got.Count != 0 {
		t.Errorf("got %+v, want zero totals", got)
	}
}

func TestByCategory(t *testing.T) {
	inactive := sub("Old", 50, models.CycleMonthly, models.CategoryCloud)
	inactive.Active = false

	got := ByCategory([]*models.Subscription{
		sub("Video", 12, models.CycleMonthly, models.CategoryEntertainment),
		sub("Music", 24, models.CycleYearly, models.CategoryEntertainment),
		sub("Storage", 3, models.CycleMonthly, models.CategoryCloud),
		sub("Course", 150, models.CycleLifetime, models.CategoryEducation),
		inactive,
	})

	if got.TotalSubscriptions != 4 {
		t.Errorf("TotalSubscriptions = %d, want 4", got.TotalSubscriptions)
	}

	ent := got.ByCategory[models.CategoryEntertainment]
	if ent.Count != 2 || ent.Monthly != 14 {
		t.Errorf("entertainment = %+v, want count 2 monthly 14", ent)
	}
	cloud := got.ByCategory[models.CategoryCloud]
	if cloud.Count != 1 || cloud.Monthly != 3 {
		t.Errorf("cloud = %+v, want count 1 monthly 3", cloud)
	}
	edu := got.ByCategory[models.CategoryEducation]
	if edu.Count != 1 || edu.Monthly != 0 {
		t.Errorf("education = %+v, want count 1 monthly 0", edu)
	}
}
