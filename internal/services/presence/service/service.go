// Package service tracks which users are actively polling
package service

import (
	"context"
	"net/http"
	"time"

	"moodroom/internal/modkit/repokit"
	"moodroom/internal/platform/clock"
	"moodroom/internal/platform/logger"
	pnet "moodroom/internal/platform/net"
	phttp "moodroom/internal/platform/net/http"
	"moodroom/internal/services/presence/repo"
)

// DefaultWindow is how recent a poll must be to count as active
const DefaultWindow = 10 * time.Second

// Svc implements domain.Tracker
type Svc struct {
	Repo   repo.Repo
	Clock  clock.Clock
	Window time.Duration
}

// New creates a presence service; a non positive window uses DefaultWindow
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], c clock.Clock, window time.Duration) *Svc {
	if db == nil {
		panic("presence.Service requires a non nil TxRunner")
	}
	if c == nil {
		c = clock.System{}
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Svc{Repo: binder.Bind(db), Clock: c, Window: window}
}

// Touch implements domain.Tracker
func (s *Svc) Touch(ctx context.Context, userID int64) error {
	return s.Repo.Touch(ctx, userID, s.Clock.Now())
}

// Active implements domain.Tracker
func (s *Svc) Active(ctx context.Context) (int, error) {
	return s.Repo.ActiveSince(ctx, s.Clock.Now().Add(-s.Window))
}

// Middleware refreshes the caller's presence before the handler runs
// it must sit behind the auth middleware; a store failure fails the request
func (s *Svc) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, ok := pnet.UserID(r.Context())
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		if err := s.Touch(r.Context(), uid); err != nil {
			logger.C(r.Context()).Error().Err(err).Msg("presence touch failed")
			phttp.RespondError(w, r, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}
