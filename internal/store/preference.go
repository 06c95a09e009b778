package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/coder/quartz"
)

// PreferenceRepo is a string key/value table for user preferences.
type PreferenceRepo interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set inserts or replaces the value for key.
	Set(ctx context.Context, key, value string) error

	Delete(ctx context.Context, key string) error

	// All returns every stored preference.
	All(ctx context.Context) (map[string]string, error)
}

type preferenceRepo struct {
	db    *sql.DB
	clock quartz.Clock
}

func (r *preferenceRepo) Get(ctx context.Context, key string) (string, bool, error) {
	query, args := builder().Select("value").
		From(entsql.Table(tablePreferences)).
		Where(entsql.EQ("key", key)).
		Query()

	var v string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get preference %q: %w", key, err)
	}
	return v, true, nil
}

func (r *preferenceRepo) Set(ctx context.Context, key, value string) error {
	query, args := builder().Insert(tablePreferences).
		Columns("key", "value", "updated_at").
		Values(key, value, r.clock.Now().UnixMilli()).
		OnConflict(entsql.ConflictColumns("key"), entsql.ResolveWithNewValues()).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set preference %q: %w", key, err)
	}
	return nil
}

func (r *preferenceRepo) Delete(ctx context.Context, key string) error {
	query, args := builder().Delete(tablePreferences).
		Where(entsql.EQ("key", key)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete preference %q: %w", key, err)
	}
	return nil
}

func (r *preferenceRepo) All(ctx context.Context) (map[string]string, error) {
	query, args := builder().Select("key", "value").
		From(entsql.Table(tablePreferences)).
		OrderBy("key").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list preferences: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan preference: %w", err)
		}
		out[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate preferences: %w", err)
	}
	return out, nil
}
