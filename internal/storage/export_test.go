// ABOUTME: Tests for export and import functionality.
// ABOUTME: Verifies JSON, YAML and Markdown output, round-trips into a fresh database and atomic import.
package storage

import (
	"context"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/harperreed/lifedash/internal/models"
)

func seedExportData(t *testing.T, db *DB) {
	t.Helper()
	ctx := context.Background()

	if err := db.CreateReminder(ctx, models.NewReminder("dentist")); err != nil {
		t.Fatalf("CreateReminder failed: %v", err)
	}
	if err := db.CreateFoodLog(ctx, models.NewFoodLog("oats")); err != nil {
		t.Fatalf("CreateFoodLog failed: %v", err)
	}
	if _, err := db.UpsertWeight(ctx, models.NewWeightLog(81.3, models.NewDate(2026, 1, 10))); err != nil {
		t.Fatalf("UpsertWeight failed: %v", err)
	}
	if _, err := db.UpsertSummary(ctx, &models.DailySummary{Date: models.NewDate(2026, 1, 10), Highlight: strPtr("long run")}); err != nil {
		t.Fatalf("UpsertSummary failed: %v", err)
	}
	if err := db.CreateSubscription(ctx, models.NewSubscription("Spotify", 10.99)); err != nil {
		t.Fatalf("CreateSubscription failed: %v", err)
	}
	if err := db.CreateSuggestions(ctx, models.NewSuggestion("general", "sleep earlier")); err != nil {
		t.Fatalf("CreateSuggestions failed: %v", err)
	}
}

func TestExportJSON(t *testing.T) {
	db := setupTestDB(t)
	seedExportData(t, db)

	data, err := db.ExportJSON(context.Background())
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var export ExportData
	if err := json.Unmarshal(data, &export); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}

	if export.Version != ExportVersion {
		t.Errorf("Expected version %s, got %s", ExportVersion, export.Version)
	}
	if export.Tool != "lifedash" {
		t.Errorf("Expected tool lifedash, got %s", export.Tool)
	}
	if len(export.Reminders) != 1 || len(export.Food) != 1 || len(export.Weights) != 1 ||
		len(export.Summaries) != 1 || len(export.Subscriptions) != 1 || len(export.Suggestions) != 1 {
		t.Errorf("unexpected export counts: %+v", export)
	}
}

func TestExportYAML(t *testing.T) {
	db := setupTestDB(t)
	seedExportData(t, db)

	data, err := db.ExportYAML(context.Background())
	if err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}

	var yamlData map[string]interface{}
	if err := yaml.Unmarshal(data, &yamlData); err != nil {
		t.Fatalf("Failed to parse YAML: %v", err)
	}
	if yamlData["tool"] != "lifedash" {
		t.Errorf("Expected tool lifedash, got %v", yamlData["tool"])
	}
	if !strings.Contains(string(data), "2026-01-10") {
		t.Error("Expected weight date in YAML output")
	}
}

func TestExportMarkdown(t *testing.T) {
	db := setupTestDB(t)
	seedExportData(t, db)

	md, err := db.ExportMarkdown(context.Background())
	if err != nil {
		t.Fatalf("ExportMarkdown failed: %v", err)
	}

	for _, want := range []string{"# Lifedash Export", "## Subscriptions", "monthly 10.99", "| 2026-01-10 | 81.3 |", "long run"} {
		if !strings.Contains(md, want) {
			t.Errorf("expected %q in markdown:\n%s", want, md)
		}
	}
}

func TestImportJSONRoundTrip(t *testing.T) {
	src := setupTestDB(t)
	seedExportData(t, src)

	ctx := context.Background()
	data, err := src.ExportJSON(ctx)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	dst := setupTestDB(t)
	if err := dst.ImportJSON(ctx, data); err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}

	weights, err := dst.ListWeights(ctx, nil)
	if err != nil {
		t.Fatalf("ListWeights failed: %v", err)
	}
	if len(weights) != 1 || weights[0].WeightKg != 81.3 {
		t.Errorf("unexpected weights: %+v", weights)
	}

	summary, err := dst.GetSummary(ctx, models.NewDate(2026, 1, 10))
	if err != nil {
		t.Fatalf("GetSummary failed: %v", err)
	}
	if summary.Highlight == nil || *summary.Highlight != "long run" {
		t.Errorf("Highlight = %v", summary.Highlight)
	}

	subs, err := dst.ListSubscriptions(ctx, SubscriptionFilter{ActiveOnly: true})
	if err != nil {
		t.Fatalf("ListSubscriptions failed: %v", err)
	}
	if len(subs) != 1 || subs[0].Name != "Spotify" {
		t.Errorf("unexpected subscriptions: %v", names(subs))
	}
}

func TestImportYAMLRoundTrip(t *testing.T) {
	src := setupTestDB(t)
	seedExportData(t, src)

	ctx := context.Background()
	data, err := src.ExportYAML(ctx)
	if err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}

	dst := setupTestDB(t)
	if err := dst.ImportYAML(ctx, data); err != nil {
		t.Fatalf("ImportYAML failed: %v", err)
	}

	latest, err := dst.LatestWeight(ctx)
	if err != nil {
		t.Fatalf("LatestWeight failed: %v", err)
	}
	if latest.Date.String() != "2026-01-10" {
		t.Errorf("Date = %s, want 2026-01-10", latest.Date)
	}
}

func TestImportFailureLeavesDatabaseUntouched(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	data := &ExportData{
		Reminders: []*models.Reminder{models.NewReminder("renew passport")},
		Food:      []*models.FoodLog{models.NewFoodLog("soup")},
		Summaries: []*models.DailySummary{{Highlight: strPtr("no date")}},
	}
	if err := db.ImportData(ctx, data); err == nil {
		t.Fatal("expected import to fail on a summary without a date")
	}

	reminders, err := db.ListReminders(ctx, nil)
	if err != nil {
		t.Fatalf("ListReminders failed: %v", err)
	}
	if len(reminders) != 0 {
		t.Errorf("expected no reminders after failed import, got %d", len(reminders))
	}
	food, err := db.ListFoodLogs(ctx, TimeRange{})
	if err != nil {
		t.Fatalf("ListFoodLogs failed: %v", err)
	}
	if len(food) != 0 {
		t.Errorf("expected no food logs after failed import, got %d", len(food))
	}
}
