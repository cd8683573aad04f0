//go:build integration_pg

package repo_test

import (
	"context"
	"testing"
	"time"

	"moodroom/internal/core/tone"
	"moodroom/internal/modkit/repokit"
	"moodroom/internal/platform/clock"
	"moodroom/internal/platform/store"
	"moodroom/internal/platform/store/pgtest"
	"moodroom/internal/platform/workers"
	authrepo "moodroom/internal/services/auth/repo"
	"moodroom/internal/services/comments/repo"
	"moodroom/internal/services/comments/service"
	"moodroom/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echo struct{}

func (echo) Translate(_ context.Context, s string) (string, error) { return s, nil }

type fixed []tone.Candidate

func (f fixed) Classify(context.Context, string) ([]tone.Candidate, error) { return f, nil }

type inline struct{}

func (inline) Submit(t workers.Task) bool { t(context.Background()); return true }

func TestPipelineAndCursorAgainstPostgres(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(ctx, store.Config{PG: store.PGConfig{
		Enabled: true, URL: pgtest.Start(t), MaxConns: 4, Migrate: true,
	}}, store.WithMigrations(migrations.FS))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	c := clock.NewManual(time.Now().UTC().Truncate(time.Microsecond))
	users := authrepo.NewPG().Bind(s.PG)
	ana, err := users.Create(ctx, "ana", "x", c.Now())
	require.NoError(t, err)
	bo, err := users.Create(ctx, "bo", "x", c.Now())
	require.NoError(t, err)

	svc := service.New(service.Options{
		DB:         s.PG,
		Binder:     repo.NewPG(),
		Translator: echo{},
		Classifier: fixed{{ID: "sadness", Score: 0.7}},
		Queue:      inline{},
		Clock:      c,
	})

	for _, txt := range []string{"one", "two", "so cute", "three"} {
		_, err := svc.Submit(ctx, ana, txt)
		require.NoError(t, err)
		c.Advance(time.Second)
	}

	got, err := svc.Poll(ctx, bo)
	require.NoError(t, err)
	require.Len(t, got, 4)
	for i := 1; i < len(got); i++ {
		assert.Greater(t, got[i].ID, got[i-1].ID, "ids follow insert order")
	}
	assert.Equal(t, tone.Joy, got[2].Tone)
	assert.Equal(t, tone.HeuristicScore, got[2].Score)
	assert.Equal(t, tone.Sadness, got[0].Tone)

	r := repo.NewPG().Bind(s.PG)
	latest, err := r.LatestID(ctx)
	require.NoError(t, err)
	cursor, err := repokit.InTx(ctx, s.PG, repo.NewPG(), func(r repo.Repo) (int64, error) { return r.Cursor(ctx, bo) })
	require.NoError(t, err)
	assert.Equal(t, latest, cursor)

	again, err := svc.Poll(ctx, bo)
	require.NoError(t, err)
	assert.Empty(t, again)

	require.NoError(t, r.Advance(ctx, bo, 1, c.Now()))
	cursor, _ = repokit.InTx(ctx, s.PG, repo.NewPG(), func(r repo.Repo) (int64, error) { return r.Cursor(ctx, bo) })
	assert.Equal(t, latest, cursor, "advance never lowers the cursor")

	c.Advance(11 * time.Minute)
	old, err := svc.Poll(ctx, ana)
	require.NoError(t, err)
	assert.Empty(t, old, "comments age out of the window")
}
