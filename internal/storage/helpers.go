// ABOUTME: Shared helpers for encoding and scanning SQLite column values.
// ABOUTME: Timestamps are stored as RFC3339 UTC text so they sort lexically.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/lifedash/internal/models"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

func notFound(kind string, id any) error {
	return fmt.Errorf("%w: %s %v", ErrNotFound, kind, id)
}

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

func timeArg(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

func dateArg(d *models.Date) any {
	if d == nil || d.IsZero() {
		return nil
	}
	return d.String()
}

func nullTime(ns sql.NullString) *time.Time {
	if !ns.Valid {
		return nil
	}
	t := parseTime(ns.String)
	return &t
}

func nullDate(ns sql.NullString) *models.Date {
	if !ns.Valid {
		return nil
	}
	d, err := models.ParseDate(ns.String)
	if err != nil {
		return nil
	}
	return &d
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullInt(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	i := int(ni.Int64)
	return &i
}

func nullFloat(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	f := nf.Float64
	return &f
}

// execAffecting runs a statement and reports ErrNotFound when no row changed.
func execAffecting(res sql.Result, err error, kind string, id any) error {
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound(kind, id)
	}
	return nil
}

// TimeRange is a half-open [From, To) interval; zero bounds are open.
type TimeRange struct {
	From time.Time
	To   time.Time
}

// DayRange covers the calendar day d in loc.
func DayRange(d models.Date, loc *time.Location) TimeRange {
	start := d.Start(loc)
	return TimeRange{From: start, To: start.AddDate(0, 0, 1)}
}

// where appends range predicates on col to a query.
func (r TimeRange) where(query, col string, args []any) (string, []any) {
	clause := " WHERE 1=1"
	if !r.From.IsZero() {
		clause += " AND " + col + " >= ?"
		args = append(args, formatTime(r.From))
	}
	if !r.To.IsZero() {
		clause += " AND " + col + " < ?"
		args = append(args, formatTime(r.To))
	}
	return query + clause, args
}
