// ABOUTME: Repository interface for lifedash data storage.
// ABOUTME: Defines the contract consumed by the HTTP API, MCP server and CLI.
package storage

import (
	"context"

	"github.com/harperreed/lifedash/internal/models"
)

// Repository defines the storage interface for lifedash data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Reminder operations
	CreateReminder(ctx context.Context, r *models.Reminder) error
	GetReminder(ctx context.Context, id int64) (*models.Reminder, error)
	ListReminders(ctx context.Context, status *models.ReminderStatus) ([]*models.Reminder, error)
	UpdateReminder(ctx context.Context, id int64, u models.ReminderUpdate) (*models.Reminder, error)
	DeleteReminder(ctx context.Context, id int64) error

	// Journal operations
	CreateFoodLog(ctx context.Context, l *models.FoodLog) error
	ListFoodLogs(ctx context.Context, r TimeRange) ([]*models.FoodLog, error)
	DeleteFoodLog(ctx context.Context, id int64) error
	CreateTrainingLog(ctx context.Context, l *models.TrainingLog) error
	ListTrainingLogs(ctx context.Context, r TimeRange) ([]*models.TrainingLog, error)
	DeleteTrainingLog(ctx context.Context, id int64) error
	CreateMentalLog(ctx context.Context, l *models.MentalLog) error
	ListMentalLogs(ctx context.Context, r TimeRange) ([]*models.MentalLog, error)
	DeleteMentalLog(ctx context.Context, id int64) error

	// Per-day operations
	UpsertSummary(ctx context.Context, s *models.DailySummary) (*models.DailySummary, error)
	GetSummary(ctx context.Context, date models.Date) (*models.DailySummary, error)
	ListSummaries(ctx context.Context, limit int) ([]*models.DailySummary, error)
	UpsertWeight(ctx context.Context, w *models.WeightLog) (*models.WeightLog, error)
	ListWeights(ctx context.Context, since *models.Date) ([]*models.WeightLog, error)
	LatestWeight(ctx context.Context) (*models.WeightLog, error)
	DeleteWeight(ctx context.Context, id int64) error

	// Subscription operations
	CreateSubscription(ctx context.Context, s *models.Subscription) error
	GetSubscription(ctx context.Context, id int64) (*models.Subscription, error)
	ListSubscriptions(ctx context.Context, f SubscriptionFilter) ([]*models.Subscription, error)
	UpdateSubscription(ctx context.Context, id int64, u models.SubscriptionUpdate) (*models.Subscription, error)
	DeactivateSubscription(ctx context.Context, id int64) error

	// Suggestion operations
	CreateSuggestions(ctx context.Context, s ...*models.Suggestion) error
	ListSuggestions(ctx context.Context, f SuggestionFilter) ([]*models.Suggestion, error)
	UpdateSuggestion(ctx context.Context, id int64, u models.SuggestionUpdate) (*models.Suggestion, error)
	DismissSuggestion(ctx context.Context, id int64) (*models.Suggestion, error)
	DeleteSuggestion(ctx context.Context, id int64) error
	ClearSuggestions(ctx context.Context, category string) (int, error)

	// Export/Import
	GetAllData(ctx context.Context) (*ExportData, error)
	ImportData(ctx context.Context, data *ExportData) error

	// Lifecycle
	Ping(ctx context.Context) error
	Close() error
}

var _ Repository = (*DB)(nil)
