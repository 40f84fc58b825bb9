// ABOUTME: Recurring-cost rollups for subscriptions: monthly, yearly and per category.
// ABOUTME: Lifetime purchases carry no recurring cost; amounts round to two decimals.
package aggregate

import (
	"math"

	"github.com/harperreed/lifedash/internal/models"
)

// WeeksPerMonth is the average number of weeks in a month.
const WeeksPerMonth = 4.33

// WeeksPerYear is the number of billing weeks in a year.
const WeeksPerYear = 52

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to one decimal place, half away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Recurring returns the unrounded monthly and yearly cost of paying price per cycle.
func Recurring(cycle models.BillingCycle, price float64) (monthly, yearly float64) {
	switch cycle {
	case models.CycleWeekly:
		return price * WeeksPerMonth, price * WeeksPerYear
	case models.CycleMonthly:
		return price, price * 12
	case models.CycleYearly:
		return price / 12, price
	default:
		return 0, 0
	}
}

// CostTotals is the combined recurring cost of a set of subscriptions.
type CostTotals struct {
	Monthly float64 `json:"monthly"`
	Yearly  float64 `json:"yearly"`
	Count   int     `json:"count"`
}

// SubscriptionTotals sums the effective recurring cost of the active subscriptions.
// Count is the number of active subscriptions, lifetime ones included.
func SubscriptionTotals(subs []*models.Subscription) CostTotals {
	var totals CostTotals
	for _, s := range subs {
		if !s.Active {
			continue
		}
		m, y := Recurring(s.BillingCycle, s.EffectivePrice())
		totals.Monthly += m
		totals.Yearly += y
		totals.Count++
	}
	totals.Monthly = Round2(totals.Monthly)
	totals.Yearly = Round2(totals.Yearly)
	return totals
}

// CategoryTotal is the count and monthly cost for one category.
type CategoryTotal struct {
	Count   int     `json:"count"`
	Monthly float64 `json:"monthly"`
}

// CategoryBreakdown groups active subscriptions by category.
type CategoryBreakdown struct {
	ByCategory         map[models.SubscriptionCategory]CategoryTotal `json:"by_category"`
	TotalSubscriptions int                                           `json:"total_subscriptions"`
}

// ByCategory computes per-category counts and monthly cost over the active subscriptions.
func ByCategory(subs []*models.Subscription) CategoryBreakdown {
	raw := make(map[models.SubscriptionCategory]CategoryTotal)
	total := 0
	for _, s := range subs {
		if !s.Active {
			continue
		}
		m, _ := Recurring(s.BillingCycle, s.EffectivePrice())
		ct := raw[s.Category]
		ct.Count++
		ct.Monthly += m
		raw[s.Category] = ct
		total++
	}
	for cat, ct := range raw {
		ct.Monthly = Round2(ct.Monthly)
		raw[cat] = ct
	}
	return CategoryBreakdown{ByCategory: raw, TotalSubscriptions: total}
}
