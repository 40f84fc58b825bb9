// ABOUTME: Export and import functionality for lifedash data.
// ABOUTME: Supports JSON and YAML round-trips plus a read-only Markdown report.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/harperreed/lifedash/internal/aggregate"
	"github.com/harperreed/lifedash/internal/models"
)

// ExportVersion is the format version written by GetAllData.
const ExportVersion = "1.0"

// ExportData represents the full export format for lifedash data.
type ExportData struct {
	Version       string                 `json:"version" yaml:"version"`
	ExportedAt    time.Time              `json:"exported_at" yaml:"exported_at"`
	Tool          string                 `json:"tool" yaml:"tool"`
	Reminders     []*models.Reminder     `json:"reminders" yaml:"reminders"`
	Food          []*models.FoodLog      `json:"food" yaml:"food"`
	Training      []*models.TrainingLog  `json:"training" yaml:"training"`
	Mental        []*models.MentalLog    `json:"mental" yaml:"mental"`
	Summaries     []*models.DailySummary `json:"summaries" yaml:"summaries"`
	Weights       []*models.WeightLog    `json:"weights" yaml:"weights"`
	Subscriptions []*models.Subscription `json:"subscriptions" yaml:"subscriptions"`
	Suggestions   []*models.Suggestion   `json:"suggestions" yaml:"suggestions"`
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData(ctx context.Context) (*ExportData, error) {
	data := &ExportData{
		Version:    ExportVersion,
		ExportedAt: d.now().UTC(),
		Tool:       "lifedash",
	}

	var err error
	if data.Reminders, err = d.ListReminders(ctx, nil); err != nil {
		return nil, err
	}
	if data.Food, err = d.ListFoodLogs(ctx, TimeRange{}); err != nil {
		return nil, err
	}
	if data.Training, err = d.ListTrainingLogs(ctx, TimeRange{}); err != nil {
		return nil, err
	}
	if data.Mental, err = d.ListMentalLogs(ctx, TimeRange{}); err != nil {
		return nil, err
	}
	if data.Summaries, err = d.ListSummaries(ctx, 0); err != nil {
		return nil, err
	}
	if data.Weights, err = d.ListWeights(ctx, nil); err != nil {
		return nil, err
	}
	if data.Subscriptions, err = d.ListSubscriptions(ctx, SubscriptionFilter{}); err != nil {
		return nil, err
	}
	if data.Suggestions, err = d.ListSuggestions(ctx, SuggestionFilter{IncludeDismissed: true}); err != nil {
		return nil, err
	}
	return data, nil
}

// ImportData imports data from an export in one transaction; any failure
// leaves the database untouched. Records get fresh IDs; summaries and
// weights go through the same upsert rules as the API.
func (d *DB) ImportData(ctx context.Context, data *ExportData) error {
	return d.withTx(ctx, func(tx *sql.Tx) error {
		for _, r := range data.Reminders {
			if err := d.insertReminder(ctx, tx, r); err != nil {
				return fmt.Errorf("import reminder: %w", err)
			}
		}
		for _, l := range data.Food {
			if err := d.insertFoodLog(ctx, tx, l); err != nil {
				return fmt.Errorf("import food log: %w", err)
			}
		}
		for _, l := range data.Training {
			if err := d.insertTrainingLog(ctx, tx, l); err != nil {
				return fmt.Errorf("import training log: %w", err)
			}
		}
		for _, l := range data.Mental {
			if err := d.insertMentalLog(ctx, tx, l); err != nil {
				return fmt.Errorf("import mental log: %w", err)
			}
		}
		for _, s := range data.Summaries {
			if _, err := d.upsertSummary(ctx, tx, s); err != nil {
				return fmt.Errorf("import summary: %w", err)
			}
		}
		for _, w := range data.Weights {
			if _, err := d.upsertWeight(ctx, tx, w); err != nil {
				return fmt.Errorf("import weight: %w", err)
			}
		}
		for _, s := range data.Subscriptions {
			if err := d.insertSubscription(ctx, tx, s); err != nil {
				return fmt.Errorf("import subscription: %w", err)
			}
		}
		if len(data.Suggestions) > 0 {
			if err := d.insertSuggestions(ctx, tx, data.Suggestions); err != nil {
				return fmt.Errorf("import suggestions: %w", err)
			}
		}
		return nil
	})
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON(ctx context.Context) ([]byte, error) {
	data, err := d.GetAllData(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML.
func (d *DB) ExportYAML(ctx context.Context) ([]byte, error) {
	data, err := d.GetAllData(ctx)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ImportJSON imports data from JSON bytes.
func (d *DB) ImportJSON(ctx context.Context, raw []byte) error {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	return d.ImportData(ctx, &data)
}

// ImportYAML imports data from YAML bytes.
func (d *DB) ImportYAML(ctx context.Context, raw []byte) error {
	var data ExportData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("unmarshal YAML: %w", err)
	}
	return d.ImportData(ctx, &data)
}

// ExportMarkdown renders a human-readable report of subscriptions, weights and summaries.
func (d *DB) ExportMarkdown(ctx context.Context) (string, error) {
	data, err := d.GetAllData(ctx)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Lifedash Export - %s\n\n", data.ExportedAt.Format(models.DateLayout))
	fmt.Fprintf(&sb, "Generated: %s\n\n", data.ExportedAt.Format(time.RFC3339))

	totals := aggregate.SubscriptionTotals(data.Subscriptions)
	sb.WriteString("## Subscriptions\n\n")
	fmt.Fprintf(&sb, "Active: %d, monthly %.2f, yearly %.2f\n\n", totals.Count, totals.Monthly, totals.Yearly)
	if len(data.Subscriptions) > 0 {
		sb.WriteString("| Name | Price | Cycle | Category | Active |\n")
		sb.WriteString("|------|-------|-------|----------|--------|\n")
		for _, s := range data.Subscriptions {
			fmt.Fprintf(&sb, "| %s | %.2f | %s | %s | %t |\n",
				s.Name, s.EffectivePrice(), s.BillingCycle, s.Category, s.Active)
		}
		sb.WriteString("\n")
	}

	if len(data.Weights) > 0 {
		sb.WriteString("## Weight\n\n")
		sb.WriteString("| Date | kg | Notes |\n")
		sb.WriteString("|------|----|-------|\n")
		for _, w := range data.Weights {
			fmt.Fprintf(&sb, "| %s | %.1f | %s |\n", w.Date, w.WeightKg, deref(w.Notes))
		}
		sb.WriteString("\n")
	}

	if len(data.Summaries) > 0 {
		sb.WriteString("## Daily summaries\n\n")
		for _, s := range data.Summaries {
			fmt.Fprintf(&sb, "### %s\n\n", s.Date)
			if s.Highlight != nil {
				fmt.Fprintf(&sb, "- Highlight: %s\n", *s.Highlight)
			}
			if s.Challenge != nil {
				fmt.Fprintf(&sb, "- Challenge: %s\n", *s.Challenge)
			}
			if s.Gratitude != nil {
				fmt.Fprintf(&sb, "- Gratitude: %s\n", *s.Gratitude)
			}
			if s.TomorrowFocus != nil {
				fmt.Fprintf(&sb, "- Tomorrow: %s\n", *s.TomorrowFocus)
			}
			sb.WriteString("\n")
		}
	}

	return sb.String(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
