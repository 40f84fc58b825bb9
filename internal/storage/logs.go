// ABOUTME: Food, training and mental-health journal storage.
// ABOUTME: Entries are append-only; listings are newest first and filterable by time range.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/harperreed/lifedash/internal/models"
)

// CreateFoodLog stores a food entry and sets its ID.
func (d *DB) CreateFoodLog(ctx context.Context, l *models.FoodLog) error {
	return d.insertFoodLog(ctx, d.db, l)
}

func (d *DB) insertFoodLog(ctx context.Context, q execer, l *models.FoodLog) error {
	if l.LoggedAt.IsZero() {
		l.LoggedAt = d.now().UTC()
	}
	res, err := q.ExecContext(ctx, `
		INSERT INTO food_logs (description, meal_type, logged_at, notes)
		VALUES (?, ?, ?, ?)`,
		l.Description, l.MealType, formatTime(l.LoggedAt), l.Notes,
	)
	if err != nil {
		return fmt.Errorf("create food log: %w", err)
	}
	if l.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("create food log: %w", err)
	}
	return nil
}

// ListFoodLogs returns food entries within r, newest first.
func (d *DB) ListFoodLogs(ctx context.Context, r TimeRange) ([]*models.FoodLog, error) {
	query, args := r.where(`SELECT id, description, meal_type, logged_at, notes FROM food_logs`, "logged_at", nil)
	rows, err := d.db.QueryContext(ctx, query+` ORDER BY logged_at DESC, id DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("list food logs: %w", err)
	}
	defer rows.Close()

	logs := []*models.FoodLog{}
	for rows.Next() {
		var l models.FoodLog
		var mealType, notes sql.NullString
		var loggedAt string
		if err := rows.Scan(&l.ID, &l.Description, &mealType, &loggedAt, &notes); err != nil {
			return nil, fmt.Errorf("scan food log: %w", err)
		}
		l.MealType = nullString(mealType)
		l.Notes = nullString(notes)
		l.LoggedAt = parseTime(loggedAt)
		logs = append(logs, &l)
	}
	return logs, rows.Err()
}

// DeleteFoodLog removes a food entry by ID.
func (d *DB) DeleteFoodLog(ctx context.Context, id int64) error {
	res, err := d.db.ExecContext(ctx, `DELETE FROM food_logs WHERE id = ?`, id)
	if err := execAffecting(res, err, "food log", id); err != nil {
		return fmt.Errorf("delete food log: %w", err)
	}
	return nil
}

// CreateTrainingLog stores a training session and sets its ID.
func (d *DB) CreateTrainingLog(ctx context.Context, l *models.TrainingLog) error {
	return d.insertTrainingLog(ctx, d.db, l)
}

func (d *DB) insertTrainingLog(ctx context.Context, q execer, l *models.TrainingLog) error {
	if l.LoggedAt.IsZero() {
		l.LoggedAt = d.now().UTC()
	}
	res, err := q.ExecContext(ctx, `
		INSERT INTO training_logs (activity, duration_minutes, intensity, logged_at, notes)
		VALUES (?, ?, ?, ?, ?)`,
		l.Activity, l.DurationMinutes, l.Intensity, formatTime(l.LoggedAt), l.Notes,
	)
	if err != nil {
		return fmt.Errorf("create training log: %w", err)
	}
	if l.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("create training log: %w", err)
	}
	return nil
}

// ListTrainingLogs returns training sessions within r, newest first.
func (d *DB) ListTrainingLogs(ctx context.Context, r TimeRange) ([]*models.TrainingLog, error) {
	query, args := r.where(`SELECT id, activity, duration_minutes, intensity, logged_at, notes FROM training_logs`, "logged_at", nil)
	rows, err := d.db.QueryContext(ctx, query+` ORDER BY logged_at DESC, id DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("list training logs: %w", err)
	}
	defer rows.Close()

	logs := []*models.TrainingLog{}
	for rows.Next() {
		var l models.TrainingLog
		var duration sql.NullInt64
		var intensity, notes sql.NullString
		var loggedAt string
		if err := rows.Scan(&l.ID, &l.Activity, &duration, &intensity, &loggedAt, &notes); err != nil {
			return nil, fmt.Errorf("scan training log: %w", err)
		}
		l.DurationMinutes = nullInt(duration)
		l.Intensity = nullString(intensity)
		l.Notes = nullString(notes)
		l.LoggedAt = parseTime(loggedAt)
		logs = append(logs, &l)
	}
	return logs, rows.Err()
}

// DeleteTrainingLog removes a training session by ID.
func (d *DB) DeleteTrainingLog(ctx context.Context, id int64) error {
	res, err := d.db.ExecContext(ctx, `DELETE FROM training_logs WHERE id = ?`, id)
	if err := execAffecting(res, err, "training log", id); err != nil {
		return fmt.Errorf("delete training log: %w", err)
	}
	return nil
}

// CreateMentalLog stores a mental-health entry and sets its ID.
func (d *DB) CreateMentalLog(ctx context.Context, l *models.MentalLog) error {
	return d.insertMentalLog(ctx, d.db, l)
}

func (d *DB) insertMentalLog(ctx context.Context, q execer, l *models.MentalLog) error {
	if l.LoggedAt.IsZero() {
		l.LoggedAt = d.now().UTC()
	}
	res, err := q.ExecContext(ctx, `
		INSERT INTO mental_logs (content, mood, tags, logged_at)
		VALUES (?, ?, ?, ?)`,
		l.Content, l.Mood, l.Tags, formatTime(l.LoggedAt),
	)
	if err != nil {
		return fmt.Errorf("create mental log: %w", err)
	}
	if l.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("create mental log: %w", err)
	}
	return nil
}

// ListMentalLogs returns mental-health entries within r, newest first.
func (d *DB) ListMentalLogs(ctx context.Context, r TimeRange) ([]*models.MentalLog, error) {
	query, args := r.where(`SELECT id, content, mood, tags, logged_at FROM mental_logs`, "logged_at", nil)
	rows, err := d.db.QueryContext(ctx, query+` ORDER BY logged_at DESC, id DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("list mental logs: %w", err)
	}
	defer rows.Close()

	logs := []*models.MentalLog{}
	for rows.Next() {
		var l models.MentalLog
		var mood, tags sql.NullString
		var loggedAt string
		if err := rows.Scan(&l.ID, &l.Content, &mood, &tags, &loggedAt); err != nil {
			return nil, fmt.Errorf("scan mental log: %w", err)
		}
		l.Mood = nullString(mood)
		l.Tags = nullString(tags)
		l.LoggedAt = parseTime(loggedAt)
		logs = append(logs, &l)
	}
	return logs, rows.Err()
}

// DeleteMentalLog removes a mental-health entry by ID.
func (d *DB) DeleteMentalLog(ctx context.Context, id int64) error {
	res, err := d.db.ExecContext(ctx, `DELETE FROM mental_logs WHERE id = ?`, id)
	if err := execAffecting(res, err, "mental log", id); err != nil {
		return fmt.Errorf("delete mental log: %w", err)
	}
	return nil
}
