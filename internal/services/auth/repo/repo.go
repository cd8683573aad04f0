// Package repo provides postgres access for user accounts
package repo

import (
	"context"
	"time"

	"moodroom/internal/modkit/repokit"
	perr "moodroom/internal/platform/errors"
	"moodroom/internal/platform/store"
)

// Repo defines the repository contract for accounts
type Repo interface {
	Create(ctx context.Context, name, digest string, at time.Time) (int64, error)
	ByName(ctx context.Context, name string) (RowUser, error)
	ByID(ctx context.Context, id int64) (RowUser, error)
}

// RowUser is a users row without the cursor columns
type RowUser struct {
	ID     int64
	Name   string
	Digest string
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

func scanUser(r store.Row) (RowUser, error) {
	var u RowUser
	err := r.Scan(&u.ID, &u.Name, &u.Digest)
	return u, err
}

// Create inserts an account; the presence timestamp starts at creation
func (r *queries) Create(ctx context.Context, name, digest string, at time.Time) (int64, error) {
	const sql = `
insert into users (name, password_digest, created_at, last_polled_at)
values ($1, $2, $3, $3)
returning id
`
	id, err := store.Scalar[int64](ctx, r.q, sql, name, digest, at)
	if err != nil {
		return 0, perr.FromPostgresf(err, "insert user %q", name)
	}
	return id, nil
}

func (r *queries) ByName(ctx context.Context, name string) (RowUser, error) {
	const sql = `select id, name, password_digest from users where name = $1`
	u, err := store.One(ctx, r.q, scanUser, sql, name)
	return u, wrapLookup(err, "user by name")
}

func (r *queries) ByID(ctx context.Context, id int64) (RowUser, error) {
	const sql = `select id, name, password_digest from users where id = $1`
	u, err := store.One(ctx, r.q, scanUser, sql, id)
	return u, wrapLookup(err, "user by id")
}

func wrapLookup(err error, what string) error {
	if err == nil || perr.IsCode(err, perr.ErrorCodeNotFound) {
		return err
	}
	return perr.FromPostgres(err, what)
}
