// ABOUTME: Upsert-by-date storage for daily summaries and weight readings.
// ABOUTME: Summaries merge non-nil fields into the existing row; weights overwrite it.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/lifedash/internal/models"
)

const summaryColumns = `id, summary_date, highlight, challenge, energy_level, sleep_quality, gratitude, tomorrow_focus, created_at`

// UpsertSummary inserts the summary for its date, or merges it into the existing one.
func (d *DB) UpsertSummary(ctx context.Context, in *models.DailySummary) (*models.DailySummary, error) {
	var stored *models.DailySummary
	err := d.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		stored, err = d.upsertSummary(ctx, tx, in)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("upsert summary: %w", err)
	}
	return stored, nil
}

func (d *DB) upsertSummary(ctx context.Context, tx *sql.Tx, in *models.DailySummary) (*models.DailySummary, error) {
	if in.Date.IsZero() {
		return nil, fmt.Errorf("%w: summary_date is required", models.ErrInvalidDate)
	}

	existing, err := scanSummary(tx.QueryRowContext(ctx,
		`SELECT `+summaryColumns+` FROM daily_summaries WHERE summary_date = ?`, in.Date.String()))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		s := *in
		if s.CreatedAt.IsZero() {
			s.CreatedAt = d.now().UTC()
		}
		res, err := tx.ExecContext(ctx, `
			INSERT INTO daily_summaries (summary_date, highlight, challenge, energy_level, sleep_quality, gratitude, tomorrow_focus, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			s.Date.String(), s.Highlight, s.Challenge, s.EnergyLevel, s.SleepQuality,
			s.Gratitude, s.TomorrowFocus, formatTime(s.CreatedAt),
		)
		if err != nil {
			return nil, err
		}
		if s.ID, err = res.LastInsertId(); err != nil {
			return nil, err
		}
		return &s, nil
	case err != nil:
		return nil, err
	}

	existing.Merge(in)
	_, err = tx.ExecContext(ctx, `
		UPDATE daily_summaries SET highlight = ?, challenge = ?, energy_level = ?, sleep_quality = ?,
			gratitude = ?, tomorrow_focus = ?
		WHERE id = ?`,
		existing.Highlight, existing.Challenge, existing.EnergyLevel, existing.SleepQuality,
		existing.Gratitude, existing.TomorrowFocus, existing.ID,
	)
	if err != nil {
		return nil, err
	}
	return existing, nil
}

// GetSummary retrieves the summary for a date.
func (d *DB) GetSummary(ctx context.Context, date models.Date) (*models.DailySummary, error) {
	s, err := scanSummary(d.db.QueryRowContext(ctx,
		`SELECT `+summaryColumns+` FROM daily_summaries WHERE summary_date = ?`, date.String()))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("summary", date)
	}
	if err != nil {
		return nil, fmt.Errorf("get summary: %w", err)
	}
	return s, nil
}

// ListSummaries returns summaries, most recent date first. A limit of 0 returns all.
func (d *DB) ListSummaries(ctx context.Context, limit int) ([]*models.DailySummary, error) {
	query := `SELECT ` + summaryColumns + ` FROM daily_summaries ORDER BY summary_date DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}
	defer rows.Close()

	summaries := []*models.DailySummary{}
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func scanSummary(row scanner) (*models.DailySummary, error) {
	var s models.DailySummary
	var date, createdAt string
	var highlight, challenge, gratitude, focus sql.NullString
	var energy, sleep sql.NullInt64

	err := row.Scan(&s.ID, &date, &highlight, &challenge, &energy, &sleep, &gratitude, &focus, &createdAt)
	if err != nil {
		return nil, err
	}

	if s.Date, err = models.ParseDate(date); err != nil {
		return nil, err
	}
	s.Highlight = nullString(highlight)
	s.Challenge = nullString(challenge)
	s.EnergyLevel = nullInt(energy)
	s.SleepQuality = nullInt(sleep)
	s.Gratitude = nullString(gratitude)
	s.TomorrowFocus = nullString(focus)
	s.CreatedAt = parseTime(createdAt)
	return &s, nil
}

// UpsertWeight inserts the reading for its date, or replaces weight and notes of the existing one.
// A zero date means today.
func (d *DB) UpsertWeight(ctx context.Context, in *models.WeightLog) (*models.WeightLog, error) {
	var stored *models.WeightLog
	err := d.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		stored, err = d.upsertWeight(ctx, tx, in)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("upsert weight: %w", err)
	}
	return stored, nil
}

func (d *DB) upsertWeight(ctx context.Context, tx *sql.Tx, in *models.WeightLog) (*models.WeightLog, error) {
	w := *in
	if w.Date.IsZero() {
		w.Date = models.DateOf(d.now())
	}

	existing, err := scanWeight(tx.QueryRowContext(ctx,
		`SELECT id, weight_kg, logged_at, notes FROM weight_logs WHERE logged_at = ?`, w.Date.String()))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		res, err := tx.ExecContext(ctx,
			`INSERT INTO weight_logs (weight_kg, logged_at, notes) VALUES (?, ?, ?)`,
			w.WeightKg, w.Date.String(), w.Notes)
		if err != nil {
			return nil, err
		}
		if w.ID, err = res.LastInsertId(); err != nil {
			return nil, err
		}
		return &w, nil
	case err != nil:
		return nil, err
	}

	existing.Overwrite(&w)
	if _, err := tx.ExecContext(ctx,
		`UPDATE weight_logs SET weight_kg = ?, notes = ? WHERE id = ?`,
		existing.WeightKg, existing.Notes, existing.ID); err != nil {
		return nil, err
	}
	return existing, nil
}

// ListWeights returns readings on or after since (all when nil), oldest first.
func (d *DB) ListWeights(ctx context.Context, since *models.Date) ([]*models.WeightLog, error) {
	query := `SELECT id, weight_kg, logged_at, notes FROM weight_logs`
	var args []any
	if since != nil {
		query += ` WHERE logged_at >= ?`
		args = append(args, since.String())
	}
	query += ` ORDER BY logged_at ASC`

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list weights: %w", err)
	}
	defer rows.Close()

	weights := []*models.WeightLog{}
	for rows.Next() {
		w, err := scanWeight(rows)
		if err != nil {
			return nil, fmt.Errorf("scan weight: %w", err)
		}
		weights = append(weights, w)
	}
	return weights, rows.Err()
}

// LatestWeight returns the reading with the most recent date.
func (d *DB) LatestWeight(ctx context.Context) (*models.WeightLog, error) {
	w, err := scanWeight(d.db.QueryRowContext(ctx,
		`SELECT id, weight_kg, logged_at, notes FROM weight_logs ORDER BY logged_at DESC LIMIT 1`))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no weight entries", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("latest weight: %w", err)
	}
	return w, nil
}

// DeleteWeight removes a reading by ID.
func (d *DB) DeleteWeight(ctx context.Context, id int64) error {
	res, err := d.db.ExecContext(ctx, `DELETE FROM weight_logs WHERE id = ?`, id)
	if err := execAffecting(res, err, "weight", id); err != nil {
		return fmt.Errorf("delete weight: %w", err)
	}
	return nil
}

func scanWeight(row scanner) (*models.WeightLog, error) {
	var w models.WeightLog
	var date string
	var notes sql.NullString

	err := row.Scan(&w.ID, &w.WeightKg, &date, &notes)
	if err != nil {
		return nil, err
	}
	if w.Date, err = models.ParseDate(date); err != nil {
		return nil, err
	}
	w.Notes = nullString(notes)
	return &w, nil
}
