package httpkit

import (
	"net/http"

	perrs "moodroom/internal/platform/errors"
)

// TokenFunc verifies a raw bearer token and returns the user id it was issued to
type TokenFunc func(token string) (userID int64, err error)

// Port implements middleware.AuthPort by reading Authorization and delegating to a TokenFunc
type Port struct {
	parse TokenFunc
}

// NewPortFunc builds a Port from a simple parser function
func NewPortFunc(fn TokenFunc) *Port {
	return &Port{parse: fn}
}

// Parse extracts the user id from an Authorization Bearer token
// returns unauthorized when the header is missing, malformed, or the parser returns an error
func (p *Port) Parse(r *http.Request) (int64, error) {
	raw, err := JWT(r)
	if err != nil {
		return 0, err
	}
	if p.parse == nil {
		return 0, perrs.Unauthorizedf("invalid bearer token")
	}
	uid, err := p.parse(raw)
	if err != nil {
		return 0, perrs.Unauthorizedf("invalid bearer token")
	}
	return uid, nil
}
