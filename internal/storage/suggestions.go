// ABOUTME: Suggestion storage: bulk create, prioritized listing, dismissal and clearing.
// ABOUTME: Dismissed suggestions are hidden from listings unless explicitly requested.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/lifedash/internal/models"
)

const suggestionColumns = `id, category, content, priority, dismissed, created_at, dismissed_at`

// SuggestionFilter narrows ListSuggestions.
type SuggestionFilter struct {
	Category         string
	IncludeDismissed bool
}

// CreateSuggestions stores one or more suggestions atomically and sets their IDs.
func (d *DB) CreateSuggestions(ctx context.Context, suggestions ...*models.Suggestion) error {
	err := d.withTx(ctx, func(tx *sql.Tx) error {
		return d.insertSuggestions(ctx, tx, suggestions)
	})
	if err != nil {
		return fmt.Errorf("create suggestions: %w", err)
	}
	return nil
}

func (d *DB) insertSuggestions(ctx context.Context, tx *sql.Tx, suggestions []*models.Suggestion) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO suggestions (category, content, priority, dismissed, created_at, dismissed_at)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, s := range suggestions {
		if s.CreatedAt.IsZero() {
			s.CreatedAt = d.now().UTC()
		}
		res, err := stmt.ExecContext(ctx, s.Category, s.Content, s.Priority, s.Dismissed,
			formatTime(s.CreatedAt), timeArg(s.DismissedAt))
		if err != nil {
			return err
		}
		if s.ID, err = res.LastInsertId(); err != nil {
			return err
		}
	}
	return nil
}

// ListSuggestions returns suggestions by priority descending, then newest first.
func (d *DB) ListSuggestions(ctx context.Context, f SuggestionFilter) ([]*models.Suggestion, error) {
	query := `SELECT ` + suggestionColumns + ` FROM suggestions WHERE 1=1`
	var args []any
	if !f.IncludeDismissed {
		query += ` AND dismissed = 0`
	}
	if f.Category != "" {
		query += ` AND category = ?`
		args = append(args, f.Category)
	}
	query += ` ORDER BY priority DESC, created_at DESC, id DESC`

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list suggestions: %w", err)
	}
	defer rows.Close()

	suggestions := []*models.Suggestion{}
	for rows.Next() {
		s, err := scanSuggestion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan suggestion: %w", err)
		}
		suggestions = append(suggestions, s)
	}
	return suggestions, rows.Err()
}

// UpdateSuggestion applies a partial update and returns the stored result.
func (d *DB) UpdateSuggestion(ctx context.Context, id int64, u models.SuggestionUpdate) (*models.Suggestion, error) {
	s, err := d.mutateSuggestion(ctx, id, func(s *models.Suggestion) { s.Apply(u, d.now()) })
	if err != nil {
		return nil, fmt.Errorf("update suggestion: %w", err)
	}
	return s, nil
}

// DismissSuggestion hides a suggestion and stamps when it was dismissed.
func (d *DB) DismissSuggestion(ctx context.Context, id int64) (*models.Suggestion, error) {
	s, err := d.mutateSuggestion(ctx, id, func(s *models.Suggestion) { s.Dismiss(d.now()) })
	if err != nil {
		return nil, fmt.Errorf("dismiss suggestion: %w", err)
	}
	return s, nil
}

func (d *DB) mutateSuggestion(ctx context.Context, id int64, fn func(*models.Suggestion)) (*models.Suggestion, error) {
	var updated *models.Suggestion
	err := d.withTx(ctx, func(tx *sql.Tx) error {
		s, err := scanSuggestion(tx.QueryRowContext(ctx,
			`SELECT `+suggestionColumns+` FROM suggestions WHERE id = ?`, id))
		if errors.Is(err, sql.ErrNoRows) {
			return notFound("suggestion", id)
		}
		if err != nil {
			return err
		}

		fn(s)

		_, err = tx.ExecContext(ctx, `
			UPDATE suggestions SET content = ?, priority = ?, dismissed = ?, dismissed_at = ?
			WHERE id = ?`,
			s.Content, s.Priority, s.Dismissed, timeArg(s.DismissedAt), id,
		)
		if err != nil {
			return err
		}
		updated = s
		return nil
	})
	return updated, err
}

// DeleteSuggestion permanently removes a suggestion.
func (d *DB) DeleteSuggestion(ctx context.Context, id int64) error {
	res, err := d.db.ExecContext(ctx, `DELETE FROM suggestions WHERE id = ?`, id)
	if err := execAffecting(res, err, "suggestion", id); err != nil {
		return fmt.Errorf("delete suggestion: %w", err)
	}
	return nil
}

// ClearSuggestions deletes every suggestion in a category, dismissed or not, and returns the count.
func (d *DB) ClearSuggestions(ctx context.Context, category string) (int, error) {
	res, err := d.db.ExecContext(ctx, `DELETE FROM suggestions WHERE category = ?`, category)
	if err != nil {
		return 0, fmt.Errorf("clear suggestions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clear suggestions: %w", err)
	}
	return int(n), nil
}

func scanSuggestion(row scanner) (*models.Suggestion, error) {
	var s models.Suggestion
	var createdAt string
	var dismissedAt sql.NullString

	err := row.Scan(&s.ID, &s.Category, &s.Content, &s.Priority, &s.Dismissed, &createdAt, &dismissedAt)
	if err != nil {
		return nil, err
	}
	s.CreatedAt = parseTime(createdAt)
	s.DismissedAt = nullTime(dismissedAt)
	return &s, nil
}
