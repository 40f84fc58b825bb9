// ABOUTME: SQLite schema definition applied by the migrator.
// ABOUTME: Defines tables for reminders, logs, summaries, weights, subscriptions and suggestions.
package storage

var schemaV1 = []string{
	`CREATE TABLE IF NOT EXISTS reminders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		text TEXT NOT NULL,
		due_at TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TEXT NOT NULL,
		completed_at TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS food_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		description TEXT NOT NULL,
		meal_type TEXT,
		logged_at TEXT NOT NULL,
		notes TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS training_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		activity TEXT NOT NULL,
		duration_minutes INTEGER,
		intensity TEXT,
		logged_at TEXT NOT NULL,
		notes TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS mental_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		content TEXT NOT NULL,
		mood TEXT,
		tags TEXT,
		logged_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS daily_summaries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		summary_date TEXT NOT NULL UNIQUE,
		highlight TEXT,
		challenge TEXT,
		energy_level INTEGER,
		sleep_quality INTEGER,
		gratitude TEXT,
		tomorrow_focus TEXT,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS weight_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		weight_kg REAL NOT NULL,
		logged_at TEXT NOT NULL UNIQUE,
		notes TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS subscriptions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		full_price REAL NOT NULL,
		my_price REAL,
		billing_cycle TEXT NOT NULL DEFAULT 'monthly',
		category TEXT NOT NULL DEFAULT 'other',
		is_shared INTEGER NOT NULL DEFAULT 0,
		shared_with TEXT,
		next_billing TEXT,
		notes TEXT,
		active INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS suggestions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		category TEXT NOT NULL,
		content TEXT NOT NULL,
		priority INTEGER NOT NULL DEFAULT 0,
		dismissed INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		dismissed_at TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reminders_status ON reminders(status)`,
	`CREATE INDEX IF NOT EXISTS idx_subscriptions_active ON subscriptions(active, name)`,
	`CREATE INDEX IF NOT EXISTS idx_suggestions_category ON suggestions(category, dismissed)`,
}

var schemaV2 = []string{
	`CREATE INDEX IF NOT EXISTS idx_food_logged ON food_logs(logged_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_training_logged ON training_logs(logged_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_mental_logged ON mental_logs(logged_at DESC)`,
}
