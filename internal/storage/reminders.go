// ABOUTME: Reminder CRUD operations for SQLite storage.
// ABOUTME: Updates run read-modify-write inside one transaction.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/lifedash/internal/models"
)

const reminderColumns = `id, text, due_at, status, created_at, completed_at`

// CreateReminder stores a new reminder and sets its ID.
func (d *DB) CreateReminder(ctx context.Context, r *models.Reminder) error {
	return d.insertReminder(ctx, d.db, r)
}

func (d *DB) insertReminder(ctx context.Context, q execer, r *models.Reminder) error {
	if r.Status == "" {
		r.Status = models.ReminderPending
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = d.now().UTC()
	}
	res, err := q.ExecContext(ctx, `
		INSERT INTO reminders (text, due_at, status, created_at, completed_at)
		VALUES (?, ?, ?, ?, ?)`,
		r.Text, timeArg(r.DueAt), string(r.Status), formatTime(r.CreatedAt), timeArg(r.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("create reminder: %w", err)
	}
	if r.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("create reminder: %w", err)
	}
	return nil
}

// GetReminder retrieves a reminder by ID.
func (d *DB) GetReminder(ctx context.Context, id int64) (*models.Reminder, error) {
	row := d.db.QueryRowContext(ctx, `SELECT `+reminderColumns+` FROM reminders WHERE id = ?`, id)
	r, err := scanReminder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("reminder", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get reminder: %w", err)
	}
	return r, nil
}

// ListReminders returns reminders, optionally filtered by status.
// Reminders with a due time come first, soonest first.
func (d *DB) ListReminders(ctx context.Context, status *models.ReminderStatus) ([]*models.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders`
	var args []any
	if status != nil {
		query += ` WHERE status = ?`
		args = append(args, string(*status))
	}
	query += ` ORDER BY due_at IS NULL, due_at, id`

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	defer rows.Close()

	reminders := []*models.Reminder{}
	for rows.Next() {
		r, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		reminders = append(reminders, r)
	}
	return reminders, rows.Err()
}

// UpdateReminder applies a partial update and returns the stored result.
func (d *DB) UpdateReminder(ctx context.Context, id int64, u models.ReminderUpdate) (*models.Reminder, error) {
	var updated *models.Reminder
	err := d.withTx(ctx, func(tx *sql.Tx) error {
		r, err := scanReminder(tx.QueryRowContext(ctx, `SELECT `+reminderColumns+` FROM reminders WHERE id = ?`, id))
		if errors.Is(err, sql.ErrNoRows) {
			return notFound("reminder", id)
		}
		if err != nil {
			return err
		}

		r.Apply(u, d.now())

		_, err = tx.ExecContext(ctx, `
			UPDATE reminders SET text = ?, due_at = ?, status = ?, completed_at = ?
			WHERE id = ?`,
			r.Text, timeArg(r.DueAt), string(r.Status), timeArg(r.CompletedAt), id,
		)
		if err != nil {
			return err
		}
		updated = r
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update reminder: %w", err)
	}
	return updated, nil
}

// DeleteReminder removes a reminder by ID.
func (d *DB) DeleteReminder(ctx context.Context, id int64) error {
	res, err := d.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = ?`, id)
	if err := execAffecting(res, err, "reminder", id); err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	return nil
}

func scanReminder(row scanner) (*models.Reminder, error) {
	var r models.Reminder
	var status, createdAt string
	var dueAt, completedAt sql.NullString

	if err := row.Scan(&r.ID, &r.Text, &dueAt, &status, &createdAt, &completedAt); err != nil {
		return nil, err
	}

	r.Status = models.ReminderStatus(status)
	r.CreatedAt = parseTime(createdAt)
	r.DueAt = nullTime(dueAt)
	r.CompletedAt = nullTime(completedAt)
	return &r, nil
}
