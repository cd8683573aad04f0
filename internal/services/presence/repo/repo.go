// Package repo provides postgres access to the presence columns of users
package repo

import (
	"context"
	"time"

	"moodroom/internal/modkit/repokit"
	perr "moodroom/internal/platform/errors"
	"moodroom/internal/platform/store"
)

// Repo defines the repository contract for presence
type Repo interface {
	Touch(ctx context.Context, userID int64, at time.Time) error
	ActiveSince(ctx context.Context, since time.Time) (int, error)
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: repokit.RequireQueryer(q)} }

func (r *queries) Touch(ctx context.Context, userID int64, at time.Time) error {
	const sql = `update users set last_polled_at = $2 where id = $1`
	if err := store.ExecOne(ctx, r.q, sql, userID, at); err != nil {
		return perr.FromPostgresf(err, "touch user %d", userID)
	}
	return nil
}

func (r *queries) ActiveSince(ctx context.Context, since time.Time) (int, error) {
	const sql = `select count(*) from users where last_polled_at > $1`
	n, err := store.Scalar[int64](ctx, r.q, sql, since)
	if err != nil {
		return 0, perr.FromPostgres(err, "count active users")
	}
	return int(n), nil
}
