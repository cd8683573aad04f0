// Package repo provides postgres access for comments and the delivery cursor
package repo

import (
	"context"
	"time"

	"moodroom/internal/core/tone"
	"moodroom/internal/modkit/repokit"
	perr "moodroom/internal/platform/errors"
	"moodroom/internal/platform/store"
)

// Repo defines the repository contract for comments
type Repo interface {
	Insert(ctx context.Context, c NewComment) (int64, error)

	// Cursor locks and returns the caller's last obtained id
	Cursor(ctx context.Context, userID int64) (int64, error)

	// After lists comments with id > cursor created after since, in id order
	After(ctx context.Context, cursor int64, since time.Time) ([]RowComment, error)

	// LatestID is the globally highest comment id, 0 when empty
	LatestID(ctx context.Context) (int64, error)

	// Advance moves the cursor forward to latest (never back) and stamps the poll
	Advance(ctx context.Context, userID, latest int64, at time.Time) error
}

// NewComment is a classified comment ready to persist
type NewComment struct {
	Text   string
	Tone   tone.Tone
	Score  float64
	UserID int64
	At     time.Time
}

// RowComment is a comments row
type RowComment struct {
	ID        int64
	Text      string
	Tone      string
	Score     float64
	UserID    int64
	CreatedAt time.Time
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

func (r *queries) Insert(ctx context.Context, c NewComment) (int64, error) {
	const sql = `
insert into comments (text, tone, score, user_id, created_at)
values ($1, $2, $3, $4, $5)
returning id
`
	id, err := store.Scalar[int64](ctx, r.q, sql, c.Text, string(c.Tone), c.Score, c.UserID, c.At)
	if err != nil {
		return 0, perr.FromPostgres(err, "insert comment")
	}
	return id, nil
}

func (r *queries) Cursor(ctx context.Context, userID int64) (int64, error) {
	const sql = `select last_obtained_id from users where id = $1 for update`
	id, err := store.Scalar[int64](ctx, r.q, sql, userID)
	if err != nil {
		if perr.IsNoRows(err) {
			return 0, perr.Unauthorizedf("unknown user")
		}
		return 0, perr.FromPostgresf(err, "read cursor of user %d", userID)
	}
	return id, nil
}

func (r *queries) After(ctx context.Context, cursor int64, since time.Time) ([]RowComment, error) {
	const sql = `
select id, text, tone, score, user_id, created_at
from comments
where id > $1 and created_at > $2
order by id
`
	out, err := store.Many(ctx, r.q, func(row store.Row) (RowComment, error) {
		var c RowComment
		err := row.Scan(&c.ID, &c.Text, &c.Tone, &c.Score, &c.UserID, &c.CreatedAt)
		return c, err
	}, sql, cursor, since)
	if err != nil {
		return nil, perr.FromPostgres(err, "list comments")
	}
	return out, nil
}

func (r *queries) LatestID(ctx context.Context) (int64, error) {
	id, err := store.Scalar[int64](ctx, r.q, `select coalesce(max(id), 0) from comments`)
	if err != nil {
		return 0, perr.FromPostgres(err, "latest comment id")
	}
	return id, nil
}

func (r *queries) Advance(ctx context.Context, userID, latest int64, at time.Time) error {
	const sql = `
update users
set last_obtained_id = greatest(last_obtained_id, $2), last_polled_at = $3
where id = $1
`
	if err := store.ExecOne(ctx, r.q, sql, userID, latest, at); err != nil {
		return perr.FromPostgresf(err, "advance cursor of user %d", userID)
	}
	return nil
}
