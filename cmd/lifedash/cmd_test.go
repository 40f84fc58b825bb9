// ABOUTME: Tests for CLI helper functions and command execution.
// ABOUTME: Commands run against a temp database selected through XDG_DATA_HOME.
package main

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/harperreed/lifedash/internal/models"
	"github.com/harperreed/lifedash/internal/storage"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "date and time with space", input: "2026-01-31 08:30"},
		{name: "date and time with T", input: "2026-01-31T08:30"},
		{name: "date only", input: "2026-01-31"},
		{name: "RFC3339", input: "2026-01-31T08:30:00Z"},
		{name: "RFC3339 with offset", input: "2026-01-31T08:30:00+05:00"},
		{name: "invalid format", input: "31-01-2026", wantErr: true},
		{name: "invalid random string", input: "not a date", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseTime(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseTime(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("parseTime(%q) unexpected error: %v", tt.input, err)
				return
			}
			if result.IsZero() {
				t.Errorf("parseTime(%q) returned zero time", tt.input)
			}
		})
	}
}

func TestParseTimeIsLocal(t *testing.T) {
	result, err := parseTime("2026-06-15 07:45")
	if err != nil {
		t.Fatalf("parseTime failed: %v", err)
	}
	want := time.Date(2026, time.June, 15, 7, 45, 0, 0, time.Local)
	if !result.Equal(want) {
		t.Errorf("parseTime = %v, want %v", result, want)
	}
}

func TestDayFlag(t *testing.T) {
	today := models.DateOf(time.Now())
	for _, in := range []string{"", "today"} {
		got, err := dayFlag(in)
		if err != nil {
			t.Fatalf("dayFlag(%q): %v", in, err)
		}
		if got != today {
			t.Errorf("dayFlag(%q) = %s, want %s", in, got, today)
		}
	}

	got, err := dayFlag("2026-02-03")
	if err != nil {
		t.Fatalf("dayFlag: %v", err)
	}
	if got.String() != "2026-02-03" {
		t.Errorf("dayFlag = %s", got)
	}
	if _, err := dayFlag("03/02/2026"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{name: "short string no truncation", input: "hello", maxLen: 10, want: "hello"},
		{name: "exact length", input: "hello", maxLen: 5, want: "hello"},
		{name: "needs truncation", input: "hello world this is a long string", maxLen: 10, want: "hello w..."},
		{name: "truncate at boundary", input: "abcdefghij", maxLen: 6, want: "abc..."},
		{name: "empty string", input: "", maxLen: 10, want: ""},
		{name: "very short maxLen", input: "hello", maxLen: 3, want: "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		length int
		want   string
	}{
		{name: "needs padding", input: "hi", length: 5, want: "hi   "},
		{name: "exact length", input: "hello", length: 5, want: "hello"},
		{name: "longer than length", input: "hello world", length: 5, want: "hello world"},
		{name: "empty string", input: "", length: 5, want: "     "},
		{name: "zero length", input: "hello", length: 0, want: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := padRight(tt.input, tt.length); got != tt.want {
				t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.length, got, tt.want)
			}
		})
	}
}

func TestMoney(t *testing.T) {
	if got := money(3.456); got != "$3.46" {
		t.Errorf("money(3.456) = %q", got)
	}
	if got := money(0); got != "$0.00" {
		t.Errorf("money(0) = %q", got)
	}
}

func TestRootCmd(t *testing.T) {
	if rootCmd.Use != "lifedash" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "lifedash")
	}
	if rootCmd.Short == "" || rootCmd.Long == "" {
		t.Error("Expected rootCmd to have short and long descriptions")
	}
	if rootCmd.PersistentFlags().Lookup("db") == nil {
		t.Error("Expected persistent --db flag")
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{
		"log", "list", "delete", "remind", "weight", "summary", "sub", "suggest",
		"today", "stats", "export", "import", "mcp", "serve", "calendar", "install-skill",
	}
	registered := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range want {
		if !registered[name] {
			t.Errorf("Expected %s command to be registered", name)
		}
	}
}

func TestCommandFlags(t *testing.T) {
	tests := []struct {
		cmd  *cobra.Command
		flag string
	}{
		{logCmd, "at"},
		{logFoodCmd, "meal"},
		{logTrainingCmd, "duration"},
		{logMentalCmd, "mood"},
		{remindAddCmd, "due"},
		{remindListCmd, "all"},
		{weightAddCmd, "date"},
		{weightListCmd, "days"},
		{summarySetCmd, "energy"},
		{subAddCmd, "my-price"},
		{subListCmd, "category"},
		{exportCmd, "output"},
		{calendarEventsCmd, "days"},
		{serveCmd, "addr"},
		{installSkillCmd, "yes"},
	}
	for _, tt := range tests {
		f := tt.cmd.Flags().Lookup(tt.flag)
		if f == nil {
			f = tt.cmd.PersistentFlags().Lookup(tt.flag)
		}
		if f == nil {
			t.Errorf("Expected --%s flag on %s", tt.flag, tt.cmd.Name())
		}
	}

	if f := listCmd.Flags().Lookup("limit"); f == nil || f.DefValue != "20" {
		t.Error("Expected --limit flag with default 20 on list")
	}
	if f := calendarEventsCmd.Flags().Lookup("days"); f == nil || f.DefValue != "7" {
		t.Error("Expected --days flag with default 7 on calendar events")
	}
}

func TestCommandAliases(t *testing.T) {
	tests := map[*cobra.Command]string{
		logCmd:     "add",
		listCmd:    "ls",
		deleteCmd:  "rm",
		remindCmd:  "r",
		subCmd:     "subs",
		weightCmd:  "w",
		suggestCmd: "suggestions",
	}
	for cmd, alias := range tests {
		found := false
		for _, a := range cmd.Aliases {
			if a == alias {
				found = true
			}
		}
		if !found {
			t.Errorf("Expected %q alias on %s", alias, cmd.Name())
		}
	}
}

func TestExportCmdValidArgs(t *testing.T) {
	want := map[string]bool{"json": true, "yaml": true, "markdown": true}
	if len(exportCmd.ValidArgs) != len(want) {
		t.Fatalf("ValidArgs = %v", exportCmd.ValidArgs)
	}
	for _, a := range exportCmd.ValidArgs {
		if !want[a] {
			t.Errorf("unexpected export format %q", a)
		}
	}
}

// resetFlags restores every flag under c to its default, including Changed.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// setupTestCLI points the CLI at a temp data and config directory and
// returns a second handle on the same database for assertions.
func setupTestCLI(t *testing.T) *storage.DB {
	t.Helper()

	tmpDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Setenv("LIFEDASH_DATABASE_PATH", "")
	t.Setenv("LIFEDASH_DATA_DIR", "")

	testDB, err := storage.Open(filepath.Join(tmpDir, "lifedash", "lifedash.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}

	resetFlags(rootCmd)
	t.Cleanup(func() {
		if db != nil {
			db.Close()
			db = nil
		}
		testDB.Close()
		resetFlags(rootCmd)
	})
	return testDB
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	resetFlags(rootCmd)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func mustRun(t *testing.T, args ...string) {
	t.Helper()
	if err := run(t, args...); err != nil {
		t.Fatalf("%v failed: %v", args, err)
	}
}

func TestLogFoodWithDB(t *testing.T) {
	testDB := setupTestCLI(t)

	mustRun(t, "log", "food", "porridge", "--meal", "breakfast", "--notes", "with honey")

	entries, err := testDB.ListFoodLogs(context.Background(), storage.TimeRange{})
	if err != nil {
		t.Fatalf("ListFoodLogs failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 food entry, got %d", len(entries))
	}
	if entries[0].Description != "porridge" {
		t.Errorf("Description = %q", entries[0].Description)
	}
	if entries[0].MealType == nil || *entries[0].MealType != "breakfast" {
		t.Error("MealType not set correctly")
	}
	if entries[0].Notes == nil || *entries[0].Notes != "with honey" {
		t.Error("Notes not set correctly")
	}
}

func TestLogTrainingWithTimestamp(t *testing.T) {
	testDB := setupTestCLI(t)

	mustRun(t, "log", "training", "run", "-d", "30", "--intensity", "easy", "--at", "2026-01-10 07:00")

	entries, err := testDB.ListTrainingLogs(context.Background(), storage.TimeRange{})
	if err != nil {
		t.Fatalf("ListTrainingLogs failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 training entry, got %d", len(entries))
	}
	want := time.Date(2026, 1, 10, 7, 0, 0, 0, time.Local)
	if !entries[0].LoggedAt.Equal(want) {
		t.Errorf("LoggedAt = %v, want %v", entries[0].LoggedAt, want)
	}
	if entries[0].DurationMinutes == nil || *entries[0].DurationMinutes != 30 {
		t.Error("Duration not set correctly")
	}
}

func TestLogInvalidTimestamp(t *testing.T) {
	setupTestCLI(t)

	if err := run(t, "log", "mental", "tired", "--at", "yesterday-ish"); err == nil {
		t.Error("Expected error for invalid timestamp")
	}
}

func TestLogMentalAndList(t *testing.T) {
	testDB := setupTestCLI(t)

	mustRun(t, "log", "mental", "calm after the walk", "--mood", "calm", "--tags", "walk,outside")
	mustRun(t, "list", "mental", "--date", "today")

	entries, err := testDB.ListMentalLogs(context.Background(), storage.TimeRange{})
	if err != nil {
		t.Fatalf("ListMentalLogs failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Tags == nil || *entries[0].Tags != "walk,outside" {
		t.Errorf("unexpected mental entries: %+v", entries)
	}
}

func TestListInvalidType(t *testing.T) {
	setupTestCLI(t)

	if err := run(t, "list", "sleep"); err == nil {
		t.Error("Expected error for unknown entry type")
	}
	if err := run(t, "list", "food", "--date", "13/01/2026"); err == nil {
		t.Error("Expected error for bad date")
	}
}

func TestRemindLifecycle(t *testing.T) {
	testDB := setupTestCLI(t)
	ctx := context.Background()

	mustRun(t, "remind", "add", "call the plumber", "--due", "2026-01-15 09:00")
	mustRun(t, "remind", "list")

	reminders, err := testDB.ListReminders(ctx, nil)
	if err != nil {
		t.Fatalf("ListReminders failed: %v", err)
	}
	if len(reminders) != 1 {
		t.Fatalf("Expected 1 reminder, got %d", len(reminders))
	}
	r := reminders[0]
	if r.DueAt == nil || !r.DueAt.Equal(time.Date(2026, 1, 15, 9, 0, 0, 0, time.Local)) {
		t.Errorf("DueAt = %v", r.DueAt)
	}

	mustRun(t, "remind", "done", strconv.FormatInt(r.ID, 10))

	done, err := testDB.GetReminder(ctx, r.ID)
	if err != nil {
		t.Fatalf("GetReminder failed: %v", err)
	}
	if done.Status != models.ReminderDone {
		t.Errorf("Status = %s, want done", done.Status)
	}
	if err := run(t, "remind", "done", "999"); err == nil {
		t.Error("Expected error completing a missing reminder")
	}
	mustRun(t, "remind", "list", "--all")
}

func TestWeightAddOverwritesSameDay(t *testing.T) {
	testDB := setupTestCLI(t)
	ctx := context.Background()

	mustRun(t, "weight", "add", "80.2", "--date", "2026-01-10", "--notes", "morning")
	mustRun(t, "weight", "add", "81", "--date", "2026-01-10")

	weights, err := testDB.ListWeights(ctx, nil)
	if err != nil {
		t.Fatalf("ListWeights failed: %v", err)
	}
	if len(weights) != 1 {
		t.Fatalf("Expected 1 weight, got %d", len(weights))
	}
	if weights[0].WeightKg != 81 {
		t.Errorf("WeightKg = %v, want 81", weights[0].WeightKg)
	}
	if weights[0].Notes != nil {
		t.Errorf("Notes should be cleared by the overwrite, got %q", *weights[0].Notes)
	}

	mustRun(t, "weight", "latest")
	mustRun(t, "weight", "list", "--days", "3650")
}

func TestWeightAddInvalid(t *testing.T) {
	setupTestCLI(t)

	for _, args := range [][]string{
		{"weight", "add", "heavy"},
		{"weight", "add", "-3"},
		{"weight", "add", "80", "--date", "tomorrow"},
	} {
		if err := run(t, args...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestSummarySetMerges(t *testing.T) {
	testDB := setupTestCLI(t)

	mustRun(t, "summary", "set", "--date", "2026-01-10", "--highlight", "long walk", "--energy", "7")
	mustRun(t, "summary", "set", "--date", "2026-01-10", "--sleep", "6")

	s, err := testDB.GetSummary(context.Background(), models.NewDate(2026, time.January, 10))
	if err != nil {
		t.Fatalf("GetSummary failed: %v", err)
	}
	if s.Highlight == nil || *s.Highlight != "long walk" {
		t.Error("Highlight lost by second set")
	}
	if s.EnergyLevel == nil || *s.EnergyLevel != 7 {
		t.Error("Energy lost by second set")
	}
	if s.SleepQuality == nil || *s.SleepQuality != 6 {
		t.Error("Sleep not recorded")
	}

	mustRun(t, "summary", "show", "2026-01-10")
	mustRun(t, "summary", "show", "2026-01-11")
}

func TestSubscriptionCommands(t *testing.T) {
	testDB := setupTestCLI(t)
	ctx := context.Background()

	mustRun(t, "sub", "add", "Netflix", "15.99", "--category", "entertainment")
	mustRun(t, "sub", "add", "Spotify", "16.99", "--my-price", "5.66", "--shared-with", "family")
	mustRun(t, "sub", "add", "Domain", "12", "--cycle", "yearly", "--next", "2026-03-01")

	subs, err := testDB.ListSubscriptions(ctx, storage.SubscriptionFilter{})
	if err != nil {
		t.Fatalf("ListSubscriptions failed: %v", err)
	}
	if len(subs) != 3 {
		t.Fatalf("Expected 3 subscriptions, got %d", len(subs))
	}

	byName := map[string]*models.Subscription{}
	for _, s := range subs {
		byName[s.Name] = s
	}
	if byName["Netflix"].Category != models.CategoryEntertainment {
		t.Errorf("Netflix category = %s", byName["Netflix"].Category)
	}
	spotify := byName["Spotify"]
	if spotify.MyPrice == nil || *spotify.MyPrice != 5.66 || !spotify.IsShared {
		t.Errorf("Spotify share not recorded: %+v", spotify)
	}
	domain := byName["Domain"]
	if domain.BillingCycle != models.CycleYearly || domain.NextBilling == nil {
		t.Errorf("Domain cycle or next billing not recorded: %+v", domain)
	}

	mustRun(t, "sub", "list")
	mustRun(t, "sub", "stats")
	mustRun(t, "sub", "cancel", strconv.FormatInt(byName["Netflix"].ID, 10))

	cancelled, err := testDB.GetSubscription(ctx, byName["Netflix"].ID)
	if err != nil {
		t.Fatalf("GetSubscription failed: %v", err)
	}
	if cancelled.Active {
		t.Error("Expected Netflix to be inactive")
	}
	mustRun(t, "sub", "list", "--all", "--category", "entertainment")
}

func TestSubscriptionAddInvalid(t *testing.T) {
	setupTestCLI(t)

	for _, args := range [][]string{
		{"sub", "add", "Gym", "free"},
		{"sub", "add", "Gym", "30", "--cycle", "fortnightly"},
		{"sub", "add", "Gym", "30", "--category", "fitness"},
		{"sub", "add", "Gym", "30", "--my-price", "-1"},
		{"sub", "cancel", "42"},
	} {
		if err := run(t, args...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestSuggestCommands(t *testing.T) {
	testDB := setupTestCLI(t)
	ctx := context.Background()

	first := models.NewSuggestion("food", "more vegetables").WithPriority(2)
	second := models.NewSuggestion("food", "less sugar")
	if err := testDB.CreateSuggestions(ctx, first, second); err != nil {
		t.Fatalf("CreateSuggestions failed: %v", err)
	}

	mustRun(t, "suggest", "list")
	mustRun(t, "suggest", "dismiss", strconv.FormatInt(first.ID, 10))

	visible, err := testDB.ListSuggestions(ctx, storage.SuggestionFilter{})
	if err != nil {
		t.Fatalf("ListSuggestions failed: %v", err)
	}
	if len(visible) != 1 || visible[0].ID != second.ID {
		t.Errorf("Expected only the undismissed suggestion, got %+v", visible)
	}

	mustRun(t, "suggest", "clear", "food")
	all, err := testDB.ListSuggestions(ctx, storage.SuggestionFilter{IncludeDismissed: true})
	if err != nil {
		t.Fatalf("ListSuggestions failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("Expected clear to remove dismissed suggestions too, got %d", len(all))
	}
}

func TestDeleteCmdWithDB(t *testing.T) {
	testDB := setupTestCLI(t)
	ctx := context.Background()

	food := models.NewFoodLog("toast")
	if err := testDB.CreateFoodLog(ctx, food); err != nil {
		t.Fatalf("CreateFoodLog failed: %v", err)
	}

	mustRun(t, "delete", "food", strconv.FormatInt(food.ID, 10))

	entries, err := testDB.ListFoodLogs(ctx, storage.TimeRange{})
	if err != nil {
		t.Fatalf("ListFoodLogs failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected food entry to be deleted, got %d", len(entries))
	}

	if err := run(t, "delete", "food", strconv.FormatInt(food.ID, 10)); err == nil {
		t.Error("Expected error deleting a missing entry")
	}
	if err := run(t, "delete", "subscription", "1"); err == nil {
		t.Error("Expected error for a kind that cannot be deleted")
	}
	if err := run(t, "delete", "food", "abc"); err == nil {
		t.Error("Expected error for a non-numeric id")
	}
}

func TestTodayAndStats(t *testing.T) {
	testDB := setupTestCLI(t)
	ctx := context.Background()

	if err := testDB.CreateReminder(ctx, models.NewReminder("stretch")); err != nil {
		t.Fatalf("CreateReminder failed: %v", err)
	}
	if err := testDB.CreateTrainingLog(ctx, models.NewTrainingLog("swim").WithDuration(40)); err != nil {
		t.Fatalf("CreateTrainingLog failed: %v", err)
	}
	if _, err := testDB.UpsertWeight(ctx, models.NewWeightLog(79.5, models.DateOf(time.Now()))); err != nil {
		t.Fatalf("UpsertWeight failed: %v", err)
	}

	mustRun(t, "today")
	mustRun(t, "stats")
}

func TestExportImportRoundTrip(t *testing.T) {
	testDB := setupTestCLI(t)
	ctx := context.Background()

	if err := testDB.CreateFoodLog(ctx, models.NewFoodLog("soup")); err != nil {
		t.Fatalf("CreateFoodLog failed: %v", err)
	}

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "backup.json")
	yamlPath := filepath.Join(dir, "backup.yaml")
	mdPath := filepath.Join(dir, "life.md")

	mustRun(t, "export", "json", "-o", jsonPath)
	mustRun(t, "export", "yaml", "-o", yamlPath)
	mustRun(t, "export", "markdown", "-o", mdPath)

	for _, p := range []string{jsonPath, yamlPath, mdPath} {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("export file %s missing: %v", p, err)
		}
		if info.Size() == 0 {
			t.Errorf("export file %s is empty", p)
		}
	}

	mustRun(t, "import", jsonPath)
	mustRun(t, "import", yamlPath)

	entries, err := testDB.ListFoodLogs(ctx, storage.TimeRange{})
	if err != nil {
		t.Fatalf("ListFoodLogs failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("Expected 3 food entries after two imports, got %d", len(entries))
	}
}

func TestExportInvalidFormat(t *testing.T) {
	setupTestCLI(t)

	if err := run(t, "export", "csv"); err == nil {
		t.Error("Expected error for unknown export format")
	}
}

func TestImportErrors(t *testing.T) {
	setupTestCLI(t)

	if err := run(t, "import", filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := run(t, "import", bad); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestCalendarStatusSkipsDatabase(t *testing.T) {
	setupTestCLI(t)

	mustRun(t, "calendar", "status")
	if db != nil {
		t.Error("calendar status should not open the database")
	}
	mustRun(t, "calendar", "events")
	mustRun(t, "calendar", "disconnect")
}

func TestDBFlagOverridesPath(t *testing.T) {
	setupTestCLI(t)
	custom := filepath.Join(t.TempDir(), "other.db")

	mustRun(t, "--db", custom, "log", "food", "apple")

	other, err := storage.Open(custom)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer other.Close()
	entries, err := other.ListFoodLogs(context.Background(), storage.TimeRange{})
	if err != nil {
		t.Fatalf("ListFoodLogs failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected entry in the --db database, got %d", len(entries))
	}
}

func TestInstallSkillFunction(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	skillSkipConfirm = true
	defer func() { skillSkipConfirm = false }()

	if err := installSkill(); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}

	path := filepath.Join(tmpDir, ".claude", "skills", "lifedash", "SKILL.md")
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected skill file to be created: %v", err)
	}
}

func TestInstallSkillOverwrite(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	skillDir := filepath.Join(tmpDir, ".claude", "skills", "lifedash")
	if err := os.MkdirAll(skillDir, 0750); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(skillDir, "SKILL.md")
	if err := os.WriteFile(path, []byte("old content"), 0600); err != nil {
		t.Fatal(err)
	}

	skillSkipConfirm = true
	defer func() { skillSkipConfirm = false }()

	if err := installSkill(); err != nil {
		t.Fatalf("installSkill overwrite failed: %v", err)
	}
	content, _ := os.ReadFile(path)
	if string(content) == "old content" {
		t.Error("Expected skill file to be overwritten")
	}
}
