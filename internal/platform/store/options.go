package store

import (
	"errors"
	"io/fs"

	"moodroom/internal/platform/logger"
)

// Option mutates Store during Open
type Option func(*Store) error

// WithLogger sets the logger used by subclients
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}

// WithMigrations sets the goose migration files applied on Open when PGConfig.Migrate is set
func WithMigrations(fsys fs.FS) Option {
	return func(s *Store) error {
		if fsys == nil {
			return errors.New("store: nil migrations fs")
		}
		s.migrations = fsys
		return nil
	}
}
