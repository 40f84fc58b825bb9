// ABOUTME: Subscription CRUD operations for SQLite storage.
// ABOUTME: Deleting a subscription only marks it inactive.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/lifedash/internal/models"
)

const subscriptionColumns = `id, name, full_price, my_price, billing_cycle, category, is_shared, shared_with, next_billing, notes, active, created_at`

// SubscriptionFilter narrows ListSubscriptions.
type SubscriptionFilter struct {
	ActiveOnly bool
	Category   *models.SubscriptionCategory
}

// CreateSubscription stores a new subscription and sets its ID.
func (d *DB) CreateSubscription(ctx context.Context, s *models.Subscription) error {
	return d.insertSubscription(ctx, d.db, s)
}

func (d *DB) insertSubscription(ctx context.Context, q execer, s *models.Subscription) error {
	if s.BillingCycle == "" {
		s.BillingCycle = models.CycleMonthly
	}
	if s.Category == "" {
		s.Category = models.CategoryOther
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = d.now().UTC()
	}
	res, err := q.ExecContext(ctx, `
		INSERT INTO subscriptions (name, full_price, my_price, billing_cycle, category, is_shared,
			shared_with, next_billing, notes, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.Name, s.FullPrice, s.MyPrice, string(s.BillingCycle), string(s.Category), s.IsShared,
		s.SharedWith, dateArg(s.NextBilling), s.Notes, s.Active, formatTime(s.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("create subscription: %w", err)
	}
	if s.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("create subscription: %w", err)
	}
	return nil
}

// GetSubscription retrieves a subscription by ID, active or not.
func (d *DB) GetSubscription(ctx context.Context, id int64) (*models.Subscription, error) {
	s, err := scanSubscription(d.db.QueryRowContext(ctx,
		`SELECT `+subscriptionColumns+` FROM subscriptions WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("subscription", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return s, nil
}

// ListSubscriptions returns subscriptions ordered by name.
func (d *DB) ListSubscriptions(ctx context.Context, f SubscriptionFilter) ([]*models.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE 1=1`
	var args []any
	if f.ActiveOnly {
		query += ` AND active = 1`
	}
	if f.Category != nil {
		query += ` AND category = ?`
		args = append(args, string(*f.Category))
	}
	query += ` ORDER BY name, id`

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	defer rows.Close()

	subs := []*models.Subscription{}
	for rows.Next() {
		s, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

// UpdateSubscription applies a partial update and returns the stored result.
func (d *DB) UpdateSubscription(ctx context.Context, id int64, u models.SubscriptionUpdate) (*models.Subscription, error) {
	var updated *models.Subscription
	err := d.withTx(ctx, func(tx *sql.Tx) error {
		s, err := scanSubscription(tx.QueryRowContext(ctx,
			`SELECT `+subscriptionColumns+` FROM subscriptions WHERE id = ?`, id))
		if errors.Is(err, sql.ErrNoRows) {
			return notFound("subscription", id)
		}
		if err != nil {
			return err
		}

		s.Apply(u)

		_, err = tx.ExecContext(ctx, `
			UPDATE subscriptions SET name = ?, full_price = ?, my_price = ?, billing_cycle = ?, category = ?,
				is_shared = ?, shared_with = ?, next_billing = ?, notes = ?, active = ?
			WHERE id = ?`,
			s.Name, s.FullPrice, s.MyPrice, string(s.BillingCycle), string(s.Category),
			s.IsShared, s.SharedWith, dateArg(s.NextBilling), s.Notes, s.Active, id,
		)
		if err != nil {
			return err
		}
		updated = s
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update subscription: %w", err)
	}
	return updated, nil
}

// DeactivateSubscription soft-deletes a subscription.
func (d *DB) DeactivateSubscription(ctx context.Context, id int64) error {
	res, err := d.db.ExecContext(ctx, `UPDATE subscriptions SET active = 0 WHERE id = ?`, id)
	if err := execAffecting(res, err, "subscription", id); err != nil {
		return fmt.Errorf("deactivate subscription: %w", err)
	}
	return nil
}

func scanSubscription(row scanner) (*models.Subscription, error) {
	var s models.Subscription
	var cycle, category, createdAt string
	var myPrice sql.NullFloat64
	var sharedWith, nextBilling, notes sql.NullString

	err := row.Scan(&s.ID, &s.Name, &s.FullPrice, &myPrice, &cycle, &category, &s.IsShared,
		&sharedWith, &nextBilling, &notes, &s.Active, &createdAt)
	if err != nil {
		return nil, err
	}

	s.MyPrice = nullFloat(myPrice)
	s.BillingCycle = models.BillingCycle(cycle)
	s.Category = models.SubscriptionCategory(category)
	s.SharedWith = nullString(sharedWith)
	s.NextBilling = nullDate(nextBilling)
	s.Notes = nullString(notes)
	s.CreatedAt = parseTime(createdAt)
	return &s, nil
}
