// Package repo provides the windowed tone counts over comments
package repo

import (
	"context"
	"time"

	"moodroom/internal/core/mood"
	"moodroom/internal/core/tone"
	"moodroom/internal/modkit/repokit"
	perr "moodroom/internal/platform/errors"
	"moodroom/internal/platform/store"
)

// Repo defines the repository contract for emotions
type Repo interface {
	CountSince(ctx context.Context, since time.Time) (mood.Counts, error)
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

type toneCount struct {
	tone string
	n    int64
}

func (r *queries) CountSince(ctx context.Context, since time.Time) (mood.Counts, error) {
	const sql = `
select tone, count(*)
from comments
where created_at > $1
group by tone
`
	rows, err := store.Many(ctx, r.q, func(row store.Row) (toneCount, error) {
		var tc toneCount
		err := row.Scan(&tc.tone, &tc.n)
		return tc, err
	}, sql, since)
	if err != nil {
		return nil, perr.FromPostgres(err, "count recent comments")
	}
	out := make(mood.Counts, len(rows))
	for _, tc := range rows {
		out[tone.Tone(tc.tone)] = int(tc.n)
	}
	return out, nil
}
