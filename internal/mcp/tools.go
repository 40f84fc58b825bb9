// ABOUTME: MCP tool implementations for lifedash.
// ABOUTME: Logging, upserts, reminders, subscriptions with totals, suggestions and deletes.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/lifedash/internal/dashboard"
	"github.com/harperreed/lifedash/internal/models"
	"github.com/harperreed/lifedash/internal/storage"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_reminder",
		Description: "Create a pending reminder, optionally with a due time",
	}, s.handleAddReminder)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_reminders",
		Description: "List reminders, optionally filtered by status (pending, done or dismissed)",
	}, s.handleListReminders)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "complete_reminder",
		Description: "Mark a reminder as done",
	}, s.handleCompleteReminder)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_food",
		Description: "Log something eaten",
	}, s.handleLogFood)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_training",
		Description: "Log a training session",
	}, s.handleLogTraining)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_mental",
		Description: "Log a mental-health journal entry",
	}, s.handleLogMental)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_weight",
		Description: "Record body weight for a day; a second reading on the same day replaces the first",
	}, s.handleLogWeight)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "upsert_summary",
		Description: "Create or update the daily summary; omitted fields keep their stored values",
	}, s.handleUpsertSummary)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_today",
		Description: "Get today's dashboard: pending reminders, today's logs and summary",
	}, s.handleGetToday)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_stats",
		Description: "Get training counts and the 30-day weight trend",
	}, s.handleGetStats)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_subscription",
		Description: "Track a paid subscription",
	}, s.handleAddSubscription)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_subscriptions",
		Description: "List subscriptions with monthly and yearly cost totals",
	}, s.handleListSubscriptions)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "cancel_subscription",
		Description: "Deactivate a subscription so it no longer counts toward totals",
	}, s.handleCancelSubscription)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_suggestions",
		Description: "Store one or more suggestions",
	}, s.handleAddSuggestions)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_suggestions",
		Description: "List suggestions by priority, optionally for one category",
	}, s.handleListSuggestions)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_entry",
		Description: "Delete a reminder, food, training, mental, weight or suggestion entry by ID",
	}, s.handleDeleteEntry)
}

// Tool input/output types

type simpleOutput struct {
	ID      int64  `json:"id,omitempty"`
	Message string `json:"message"`
}

type addReminderInput struct {
	Text  string `json:"text" jsonschema:"What to be reminded about"`
	DueAt string `json:"due_at,omitempty" jsonschema:"Due time, RFC3339 or local YYYY-MM-DD HH:MM"`
}

type listRemindersInput struct {
	Status string `json:"status,omitempty" jsonschema:"Filter by status: pending, done or dismissed"`
}

type idInput struct {
	ID int64 `json:"id" jsonschema:"Entry ID"`
}

type logFoodInput struct {
	Description string `json:"description" jsonschema:"What was eaten"`
	MealType    string `json:"meal_type,omitempty" jsonschema:"Meal type, e.g. breakfast or snack"`
	Notes       string `json:"notes,omitempty" jsonschema:"Optional notes"`
	LoggedAt    string `json:"logged_at,omitempty" jsonschema:"When, RFC3339 or local YYYY-MM-DD HH:MM; defaults to now"`
}

type logTrainingInput struct {
	Activity        string `json:"activity" jsonschema:"Activity, e.g. run or lift"`
	DurationMinutes int    `json:"duration_minutes,omitempty" jsonschema:"Duration in minutes"`
	Intensity       string `json:"intensity,omitempty" jsonschema:"Intensity, e.g. easy or hard"`
	Notes           string `json:"notes,omitempty" jsonschema:"Optional notes"`
	LoggedAt        string `json:"logged_at,omitempty" jsonschema:"When, RFC3339 or local YYYY-MM-DD HH:MM; defaults to now"`
}

type logMentalInput struct {
	Content  string `json:"content" jsonschema:"Journal entry"`
	Mood     string `json:"mood,omitempty" jsonschema:"Mood label"`
	Tags     string `json:"tags,omitempty" jsonschema:"Comma-separated tags"`
	LoggedAt string `json:"logged_at,omitempty" jsonschema:"When, RFC3339 or local YYYY-MM-DD HH:MM; defaults to now"`
}

type logWeightInput struct {
	WeightKg float64 `json:"weight_kg" jsonschema:"Body weight in kilograms"`
	Date     string  `json:"date,omitempty" jsonschema:"Day of the reading, YYYY-MM-DD; defaults to today"`
	Notes    string  `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type upsertSummaryInput struct {
	Date          string  `json:"date,omitempty" jsonschema:"Day, YYYY-MM-DD; defaults to today"`
	Highlight     *string `json:"highlight,omitempty" jsonschema:"Best part of the day"`
	Challenge     *string `json:"challenge,omitempty" jsonschema:"Hardest part of the day"`
	EnergyLevel   *int    `json:"energy_level,omitempty" jsonschema:"Energy from 1 to 10"`
	SleepQuality  *int    `json:"sleep_quality,omitempty" jsonschema:"Sleep quality from 1 to 10"`
	Gratitude     *string `json:"gratitude,omitempty" jsonschema:"Something to be grateful for"`
	TomorrowFocus *string `json:"tomorrow_focus,omitempty" jsonschema:"Focus for tomorrow"`
}

type emptyInput struct{}

type addSubscriptionInput struct {
	Name         string   `json:"name" jsonschema:"Service name"`
	FullPrice    float64  `json:"full_price" jsonschema:"List price per billing cycle"`
	MyPrice      *float64 `json:"my_price,omitempty" jsonschema:"Personal share when the cost is split"`
	BillingCycle string   `json:"billing_cycle,omitempty" jsonschema:"weekly, monthly, yearly or lifetime; defaults to monthly"`
	Category     string   `json:"category,omitempty" jsonschema:"entertainment, productivity, health, finance, education, cloud, ai or other"`
	SharedWith   string   `json:"shared_with,omitempty" jsonschema:"Who the cost is shared with"`
	NextBilling  string   `json:"next_billing,omitempty" jsonschema:"Next charge date, YYYY-MM-DD"`
	Notes        string   `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type listSubscriptionsInput struct {
	Category        string `json:"category,omitempty" jsonschema:"Filter by category"`
	IncludeInactive bool   `json:"include_inactive,omitempty" jsonschema:"Also list deactivated subscriptions"`
}

type suggestionItem struct {
	Category string `json:"category" jsonschema:"Free-form category"`
	Content  string `json:"content" jsonschema:"Suggestion text"`
	Priority int    `json:"priority,omitempty" jsonschema:"Higher sorts first"`
}

type addSuggestionsInput struct {
	Suggestions []suggestionItem `json:"suggestions" jsonschema:"Suggestions to store"`
}

type listSuggestionsInput struct {
	Category         string `json:"category,omitempty" jsonschema:"Filter by category"`
	IncludeDismissed bool   `json:"include_dismissed,omitempty" jsonschema:"Also list dismissed suggestions"`
}

type deleteEntryInput struct {
	Kind string `json:"kind" jsonschema:"reminder, food, training, mental, weight or suggestion"`
	ID   int64  `json:"id" jsonschema:"Entry ID"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// parseWhen parses an optional timestamp in the server's zone; empty means now.
func (s *Server) parseWhen(raw string) (time.Time, error) {
	if raw == "" {
		return s.now().UTC(), nil
	}
	t, err := models.ParseTime(raw, s.loc)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// parseDay parses an optional YYYY-MM-DD; empty means today in the server's zone.
func (s *Server) parseDay(raw string) (models.Date, error) {
	if raw == "" {
		return models.DateOf(s.localNow()), nil
	}
	return models.ParseDate(raw)
}

// Tool handlers

func (s *Server) handleAddReminder(ctx context.Context, req *mcp.CallToolRequest, input addReminderInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.Text == "" {
		return nil, simpleOutput{}, fmt.Errorf("text is required")
	}
	r := models.NewReminder(input.Text)
	r.CreatedAt = s.now().UTC()
	if input.DueAt != "" {
		due, err := s.parseWhen(input.DueAt)
		if err != nil {
			return nil, simpleOutput{}, err
		}
		r.WithDueAt(due)
	}

	if err := s.repo.CreateReminder(ctx, r); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to create reminder: %w", err)
	}
	return nil, simpleOutput{ID: r.ID, Message: fmt.Sprintf("Added reminder %d: %s", r.ID, r.Text)}, nil
}

func (s *Server) handleListReminders(ctx context.Context, req *mcp.CallToolRequest, input listRemindersInput) (*mcp.CallToolResult, any, error) {
	var status *models.ReminderStatus
	if input.Status != "" {
		st, err := models.ParseReminderStatus(input.Status)
		if err != nil {
			return nil, nil, err
		}
		status = &st
	}

	reminders, err := s.repo.ListReminders(ctx, status)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	if len(reminders) == 0 {
		return nil, map[string]any{"message": "No reminders found."}, nil
	}
	return nil, map[string]any{"reminders": reminders, "count": len(reminders)}, nil
}

func (s *Server) handleCompleteReminder(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	done := models.ReminderDone
	r, err := s.repo.UpdateReminder(ctx, input.ID, models.ReminderUpdate{Status: &done})
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to complete reminder: %w", err)
	}
	return nil, simpleOutput{ID: r.ID, Message: fmt.Sprintf("Completed reminder %d: %s", r.ID, r.Text)}, nil
}

func (s *Server) handleLogFood(ctx context.Context, req *mcp.CallToolRequest, input logFoodInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.Description == "" {
		return nil, simpleOutput{}, fmt.Errorf("description is required")
	}
	at, err := s.parseWhen(input.LoggedAt)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	f := &models.FoodLog{
		Description: input.Description,
		MealType:    optional(input.MealType),
		Notes:       optional(input.Notes),
		LoggedAt:    at,
	}
	if err := s.repo.CreateFoodLog(ctx, f); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log food: %w", err)
	}
	return nil, simpleOutput{ID: f.ID, Message: fmt.Sprintf("Logged food: %s (ID: %d)", f.Description, f.ID)}, nil
}

func (s *Server) handleLogTraining(ctx context.Context, req *mcp.CallToolRequest, input logTrainingInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.Activity == "" {
		return nil, simpleOutput{}, fmt.Errorf("activity is required")
	}
	if input.DurationMinutes < 0 {
		return nil, simpleOutput{}, fmt.Errorf("duration_minutes must not be negative")
	}
	at, err := s.parseWhen(input.LoggedAt)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	tl := models.NewTrainingLog(input.Activity).WithLoggedAt(at)
	if input.DurationMinutes > 0 {
		tl.WithDuration(input.DurationMinutes)
	}
	tl.Intensity = optional(input.Intensity)
	tl.Notes = optional(input.Notes)
	if err := s.repo.CreateTrainingLog(ctx, tl); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log training: %w", err)
	}
	return nil, simpleOutput{ID: tl.ID, Message: fmt.Sprintf("Logged %s session (ID: %d)", tl.Activity, tl.ID)}, nil
}

func (s *Server) handleLogMental(ctx context.Context, req *mcp.CallToolRequest, input logMentalInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.Content == "" {
		return nil, simpleOutput{}, fmt.Errorf("content is required")
	}
	at, err := s.parseWhen(input.LoggedAt)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	m := &models.MentalLog{Content: input.Content, Mood: optional(input.Mood), Tags: optional(input.Tags), LoggedAt: at}
	if err := s.repo.CreateMentalLog(ctx, m); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log entry: %w", err)
	}
	return nil, simpleOutput{ID: m.ID, Message: fmt.Sprintf("Logged journal entry (ID: %d)", m.ID)}, nil
}

func (s *Server) handleLogWeight(ctx context.Context, req *mcp.CallToolRequest, input logWeightInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.WeightKg <= 0 {
		return nil, simpleOutput{}, fmt.Errorf("weight_kg must be positive")
	}
	date, err := s.parseDay(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	w := models.NewWeightLog(input.WeightKg, date)
	w.Notes = optional(input.Notes)
	stored, err := s.repo.UpsertWeight(ctx, w)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to record weight: %w", err)
	}
	return nil, simpleOutput{ID: stored.ID, Message: fmt.Sprintf("Recorded %.1f kg for %s", stored.WeightKg, stored.Date)}, nil
}

func (s *Server) handleUpsertSummary(ctx context.Context, req *mcp.CallToolRequest, input upsertSummaryInput) (*mcp.CallToolResult, any, error) {
	date, err := s.parseDay(input.Date)
	if err != nil {
		return nil, nil, err
	}

	summary, err := s.repo.UpsertSummary(ctx, &models.DailySummary{
		Date:          date,
		Highlight:     input.Highlight,
		Challenge:     input.Challenge,
		EnergyLevel:   input.EnergyLevel,
		SleepQuality:  input.SleepQuality,
		Gratitude:     input.Gratitude,
		TomorrowFocus: input.TomorrowFocus,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to save summary: %w", err)
	}
	return nil, summary, nil
}

func (s *Server) handleGetToday(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	today, err := dashboard.BuildToday(ctx, s.repo, s.localNow())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build today: %w", err)
	}
	return nil, today, nil
}

func (s *Server) handleGetStats(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	stats, err := dashboard.BuildStats(ctx, s.repo, s.localNow())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build stats: %w", err)
	}
	return nil, stats, nil
}

func (s *Server) handleAddSubscription(ctx context.Context, req *mcp.CallToolRequest, input addSubscriptionInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.Name == "" {
		return nil, simpleOutput{}, fmt.Errorf("name is required")
	}
	if input.FullPrice < 0 || (input.MyPrice != nil && *input.MyPrice < 0) {
		return nil, simpleOutput{}, fmt.Errorf("prices must not be negative")
	}

	sub := models.NewSubscription(input.Name, input.FullPrice)
	sub.CreatedAt = s.now().UTC()
	if input.BillingCycle != "" {
		cycle, err := models.ParseBillingCycle(input.BillingCycle)
		if err != nil {
			return nil, simpleOutput{}, err
		}
		sub.WithCycle(cycle)
	}
	if input.Category != "" {
		cat, err := models.ParseSubscriptionCategory(input.Category)
		if err != nil {
			return nil, simpleOutput{}, err
		}
		sub.WithCategory(cat)
	}
	if input.MyPrice != nil {
		sub.WithMyPrice(*input.MyPrice)
	}
	if input.NextBilling != "" {
		next, err := models.ParseDate(input.NextBilling)
		if err != nil {
			return nil, simpleOutput{}, err
		}
		sub.NextBilling = &next
	}
	sub.SharedWith = optional(input.SharedWith)
	sub.Notes = optional(input.Notes)

	if err := s.repo.CreateSubscription(ctx, sub); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to create subscription: %w", err)
	}
	return nil, simpleOutput{
		ID:      sub.ID,
		Message: fmt.Sprintf("Added %s: %.2f %s (ID: %d)", sub.Name, sub.EffectivePrice(), sub.BillingCycle, sub.ID),
	}, nil
}

func (s *Server) handleListSubscriptions(ctx context.Context, req *mcp.CallToolRequest, input listSubscriptionsInput) (*mcp.CallToolResult, any, error) {
	filter := storage.SubscriptionFilter{ActiveOnly: !input.IncludeInactive}
	if input.Category != "" {
		cat, err := models.ParseSubscriptionCategory(input.Category)
		if err != nil {
			return nil, nil, err
		}
		filter.Category = &cat
	}

	list, err := dashboard.ListSubscriptions(ctx, s.repo, filter)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return nil, list, nil
}

func (s *Server) handleCancelSubscription(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeactivateSubscription(ctx, input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to cancel subscription: %w", err)
	}
	return nil, simpleOutput{ID: input.ID, Message: fmt.Sprintf("Deactivated subscription %d", input.ID)}, nil
}

func (s *Server) handleAddSuggestions(ctx context.Context, req *mcp.CallToolRequest, input addSuggestionsInput) (*mcp.CallToolResult, simpleOutput, error) {
	if len(input.Suggestions) == 0 {
		return nil, simpleOutput{}, fmt.Errorf("at least one suggestion is required")
	}
	batch := make([]*models.Suggestion, 0, len(input.Suggestions))
	for i, item := range input.Suggestions {
		if item.Category == "" || item.Content == "" {
			return nil, simpleOutput{}, fmt.Errorf("suggestion %d: category and content are required", i)
		}
		batch = append(batch, models.NewSuggestion(item.Category, item.Content).WithPriority(item.Priority))
	}

	if err := s.repo.CreateSuggestions(ctx, batch...); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to add suggestions: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Added %d suggestion(s)", len(batch))}, nil
}

func (s *Server) handleListSuggestions(ctx context.Context, req *mcp.CallToolRequest, input listSuggestionsInput) (*mcp.CallToolResult, any, error) {
	suggestions, err := s.repo.ListSuggestions(ctx, storage.SuggestionFilter{
		Category:         input.Category,
		IncludeDismissed: input.IncludeDismissed,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list suggestions: %w", err)
	}
	return nil, map[string]any{"suggestions": suggestions, "count": len(suggestions)}, nil
}

func (s *Server) handleDeleteEntry(ctx context.Context, req *mcp.CallToolRequest, input deleteEntryInput) (*mcp.CallToolResult, simpleOutput, error) {
	deleters := map[string]func(context.Context, int64) error{
		"reminder":   s.repo.DeleteReminder,
		"food":       s.repo.DeleteFoodLog,
		"training":   s.repo.DeleteTrainingLog,
		"mental":     s.repo.DeleteMentalLog,
		"weight":     s.repo.DeleteWeight,
		"suggestion": s.repo.DeleteSuggestion,
	}
	del, ok := deleters[input.Kind]
	if !ok {
		return nil, simpleOutput{}, fmt.Errorf("unknown entry kind: %s", input.Kind)
	}
	if err := del(ctx, input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete %s: %w", input.Kind, err)
	}
	return nil, simpleOutput{ID: input.ID, Message: fmt.Sprintf("Deleted %s %d", input.Kind, input.ID)}, nil
}
