package httpkit

import (
	"net/http"
	"strings"

	perrs "moodroom/internal/platform/errors"
	pnet "moodroom/internal/platform/net"
)

// User returns the authenticated user id from the request context
func User(r *http.Request) (int64, error) {
	uid, ok := pnet.UserID(r.Context())
	if !ok {
		return 0, perrs.Unauthorizedf("missing bearer token")
	}
	return uid, nil
}

// MustUser returns the authenticated user id or panics
// only use on routes protected by the auth middleware
func MustUser(r *http.Request) int64 {
	uid, err := User(r)
	if err != nil {
		panic(err)
	}
	return uid
}

// JWT returns the raw bearer token from the Authorization header
func JWT(r *http.Request) (string, error) {
	authz := strings.TrimSpace(r.Header.Get("Authorization"))
	// case-insensitive Bearer prefix
	const prefix = "bearer "
	if len(authz) < len(prefix) || !strings.EqualFold(authz[:len(prefix)], prefix) {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	raw := strings.TrimSpace(authz[len(prefix):])
	if raw == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return raw, nil
}
