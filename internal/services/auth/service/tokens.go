package service

import (
	"time"

	"moodroom/internal/platform/clock"
	perr "moodroom/internal/platform/errors"
	"moodroom/internal/services/auth/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the JWT payload for both token kinds
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"user_id"`
	Type   string `json:"type"`
}

// default token lifetimes
const (
	DefaultAccessTTL  = time.Hour
	DefaultRefreshTTL = 30 * 24 * time.Hour
)

// Tokens signs and verifies HS256 access and refresh tokens
type Tokens struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	clock      clock.Clock
}

// NewTokens builds a signer; zero TTLs fall back to 1h and 30d
func NewTokens(secret []byte, accessTTL, refreshTTL time.Duration, c clock.Clock) *Tokens {
	if len(secret) == 0 {
		panic("auth.Tokens requires a non empty secret")
	}
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTTL
	}
	if c == nil {
		c = clock.System{}
	}
	return &Tokens{secret: secret, accessTTL: accessTTL, refreshTTL: refreshTTL, clock: c}
}

// Pair issues a fresh access and refresh token for userID
func (t *Tokens) Pair(userID int64) (domain.TokenPair, error) {
	access, err := t.sign(userID, domain.AccessToken, t.accessTTL)
	if err != nil {
		return domain.TokenPair{}, err
	}
	refresh, err := t.sign(userID, domain.RefreshToken, t.refreshTTL)
	if err != nil {
		return domain.TokenPair{}, err
	}
	return domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (t *Tokens) sign(userID int64, kind string, ttl time.Duration) (string, error) {
	now := t.clock.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
		Type:   kind,
	})
	s, err := tok.SignedString(t.secret)
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnknown, "sign token")
	}
	return s, nil
}

// Parse verifies raw and returns its user id when the type claim matches kind
func (t *Tokens) Parse(raw, kind string) (int64, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tok.Valid {
		return 0, perr.Unauthorizedf("invalid %s", kind)
	}
	if claims.Type != kind || claims.UserID <= 0 {
		return 0, perr.Unauthorizedf("invalid %s", kind)
	}
	return claims.UserID, nil
}

// Access verifies an access token; it is the bearer TokenFunc for protected routes
func (t *Tokens) Access(raw string) (int64, error) { return t.Parse(raw, domain.AccessToken) }
