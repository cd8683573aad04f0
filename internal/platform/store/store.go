// Package store opens the postgres backend and exposes the small SQL seam repos bind to
package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"moodroom/internal/platform/logger"
)

// Store is the storage facade; the zero value is safe but does nothing
type Store struct {
	// Log is the logger handed to subclients
	Log logger.Logger

	// PG is the postgres seam, nil when disabled
	PG TxRunner

	migrations fs.FS
}

// Row is the scan contract for a single row
type Row interface {
	Scan(dest ...any) error
}

// Rows is the iteration and scan contract for a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// CommandTag inspects write results
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is the read and write surface repos use
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner runs fn inside a transaction; fn's error rolls back
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Pinger reports readiness
type Pinger interface{ Ping(context.Context) error }

// Open builds a Store with the backends enabled in cfg and applies pending migrations
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}
	s.Log = s.Log.With().Logger()

	if !cfg.PG.Enabled {
		return s, nil
	}
	a, err := openPG(ctx, cfg.PG, s)
	if err != nil {
		return nil, err
	}
	s.PG = a

	if cfg.PG.Migrate && s.migrations != nil {
		if err := migrateUp(ctx, a.p.Pool, s.migrations, s.Log); err != nil {
			a.p.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}
	return s, nil
}

// Guard pings every configured backend
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	if s.PG == nil {
		return errors.New("pg: not configured")
	}
	if p, ok := s.PG.(Pinger); ok {
		if err := p.Ping(ctx); err != nil {
			return fmt.Errorf("pg: %w", err)
		}
	}
	return nil
}

// Close releases every initialized backend
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	if c, ok := s.PG.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
