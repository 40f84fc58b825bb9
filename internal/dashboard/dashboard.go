// ABOUTME: Composite read views over the repository: today's dashboard, stats and subscription costs.
// ABOUTME: Shared by the HTTP API, the HTML fragments, the MCP tools and the CLI.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/lifedash/internal/aggregate"
	"github.com/harperreed/lifedash/internal/models"
	"github.com/harperreed/lifedash/internal/storage"
)

// Today is everything recorded for the current day plus open reminders.
type Today struct {
	Date      models.Date           `json:"date"`
	Reminders []*models.Reminder    `json:"reminders"`
	Food      []*models.FoodLog     `json:"food"`
	Training  []*models.TrainingLog `json:"training"`
	Mental    []*models.MentalLog   `json:"mental"`
	Summary   *models.DailySummary  `json:"summary"`
}

// BuildToday collects the dashboard for now's calendar day in now's location.
func BuildToday(ctx context.Context, repo storage.Repository, now time.Time) (*Today, error) {
	date := models.DateOf(now)
	day := storage.DayRange(date, now.Location())
	pending := models.ReminderPending

	t := &Today{Date: date}
	var err error
	if t.Reminders, err = repo.ListReminders(ctx, &pending); err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	if t.Food, err = repo.ListFoodLogs(ctx, day); err != nil {
		return nil, fmt.Errorf("list food logs: %w", err)
	}
	if t.Training, err = repo.ListTrainingLogs(ctx, day); err != nil {
		return nil, fmt.Errorf("list training logs: %w", err)
	}
	if t.Mental, err = repo.ListMentalLogs(ctx, day); err != nil {
		return nil, fmt.Errorf("list mental logs: %w", err)
	}

	t.Summary, err = repo.GetSummary(ctx, date)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("get summary: %w", err)
	}
	return t, nil
}

// Stats is the training and weight overview.
type Stats struct {
	Training aggregate.TrainingSummary `json:"training"`
	Weight   aggregate.WeightSummary   `json:"weight"`
}

// BuildStats loads only the rows the windows need and aggregates them relative to now.
func BuildStats(ctx context.Context, repo storage.Repository, now time.Time) (*Stats, error) {
	sessions, err := repo.ListTrainingLogs(ctx, storage.TimeRange{From: aggregate.TrainingWindowStart(now)})
	if err != nil {
		return nil, fmt.Errorf("list training logs: %w", err)
	}

	since := models.DateOf(now).AddDays(-aggregate.WeightTrendDays)
	weights, err := repo.ListWeights(ctx, &since)
	if err != nil {
		return nil, fmt.Errorf("list weights: %w", err)
	}

	return &Stats{
		Training: aggregate.TrainingStats(sessions, now),
		Weight:   aggregate.WeightTrend(weights, now),
	}, nil
}

// SubscriptionView is a subscription with its effective price spelled out.
type SubscriptionView struct {
	*models.Subscription
	EffectivePrice float64 `json:"effective_price"`
}

// NewSubscriptionView wraps s.
func NewSubscriptionView(s *models.Subscription) SubscriptionView {
	return SubscriptionView{Subscription: s, EffectivePrice: s.EffectivePrice()}
}

// SubscriptionList is a filtered subscription listing with recurring-cost totals.
type SubscriptionList struct {
	Subscriptions []SubscriptionView   `json:"subscriptions"`
	Totals        aggregate.CostTotals `json:"totals"`
}

// ListSubscriptions returns subscriptions matching f; totals cover the active ones listed.
func ListSubscriptions(ctx context.Context, repo storage.Repository, f storage.SubscriptionFilter) (*SubscriptionList, error) {
	subs, err := repo.ListSubscriptions(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}

	list := &SubscriptionList{
		Subscriptions: make([]SubscriptionView, 0, len(subs)),
		Totals:        aggregate.SubscriptionTotals(subs),
	}
	for _, s := range subs {
		list.Subscriptions = append(list.Subscriptions, NewSubscriptionView(s))
	}
	return list, nil
}

// SubscriptionStats breaks active subscriptions down by category.
func SubscriptionStats(ctx context.Context, repo storage.Repository) (aggregate.CategoryBreakdown, error) {
	subs, err := repo.ListSubscriptions(ctx, storage.SubscriptionFilter{ActiveOnly: true})
	if err != nil {
		return aggregate.CategoryBreakdown{}, fmt.Errorf("list subscriptions: %w", err)
	}
	return aggregate.ByCategory(subs), nil
}
