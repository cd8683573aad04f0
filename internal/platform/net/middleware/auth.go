package middleware

import (
	"net/http"

	"moodroom/internal/platform/logger"
	pnet "moodroom/internal/platform/net"
)

// AuthPort resolves the authenticated user id from a request
type AuthPort interface {
	Parse(r *http.Request) (userID int64, err error)
}

// Auth rejects requests the port cannot authenticate and stores the user id on the
// request context (for handlers and for logger.C); a nil port passes everything through
func Auth(p AuthPort, fail func(http.ResponseWriter, *http.Request, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			uid, err := p.Parse(r)
			if err != nil {
				fail(w, r, err)
				return
			}
			ctx := pnet.WithUser(r.Context(), uid)
			ctx = logger.WithUser(ctx, uid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
