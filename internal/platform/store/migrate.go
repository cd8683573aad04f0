package store

import (
	"context"
	"io/fs"

	"moodroom/internal/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// migrateUp applies pending goose migrations from fsys through a database/sql view of the pool
func migrateUp(ctx context.Context, pool *pgxpool.Pool, fsys fs.FS, log logger.Logger) error {
	// the sql.DB holds no idle conns of its own; the pool stays owned by the adapter
	db := stdlib.OpenDBFromPool(pool)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return err
	}
	results, err := provider.Up(ctx)
	for _, r := range results {
		log.Info().
			Int64("version", r.Source.Version).
			Str("file", r.Source.Path).
			Dur("took", r.Duration).
			Msg("migration applied")
	}
	return err
}
