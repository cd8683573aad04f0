// Package service contains account workflows: signup, signin, refresh and me
package service

import (
	"context"

	"moodroom/internal/modkit/repokit"
	"moodroom/internal/platform/clock"
	perr "moodroom/internal/platform/errors"
	"moodroom/internal/platform/logger"
	"moodroom/internal/services/auth/domain"
	"moodroom/internal/services/auth/repo"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor for new digests
const DefaultCost = 10

// Service defines the service contract for auth
type Service interface {
	domain.ServicePort
	Access(raw string) (int64, error)
}

// Svc implements the Service interface
type Svc struct {
	DB     repokit.TxRunner
	Repo   repo.Repo
	Tokens *Tokens

	// Cost is the bcrypt cost; tests lower it
	Cost  int
	Clock clock.Clock
}

// New creates a new auth service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], tokens *Tokens, c clock.Clock) *Svc {
	if db == nil {
		panic("auth.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("auth.Service requires a non nil Repo binder")
	}
	if tokens == nil {
		panic("auth.Service requires a token signer")
	}
	if c == nil {
		c = clock.System{}
	}
	return &Svc{DB: db, Repo: binder.Bind(db), Tokens: tokens, Cost: DefaultCost, Clock: c}
}

// Signup creates an account and returns a token pair; a taken name is a duplicate key
func (s *Svc) Signup(ctx context.Context, in domain.Credentials) (domain.TokenPair, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.Cost)
	if err != nil {
		return domain.TokenPair{}, perr.Wrap(err, perr.ErrorCodeValidation, "password cannot be hashed")
	}
	id, err := s.Repo.Create(ctx, in.Name, string(digest), s.Clock.Now())
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
			return domain.TokenPair{}, perr.DuplicateKeyf("already registered name")
		}
		return domain.TokenPair{}, err
	}
	logger.C(ctx).Info().Int64("user_id", id).Msg("user signed up")
	return s.Tokens.Pair(id)
}

// Signin verifies credentials; unknown names and wrong passwords look the same
func (s *Svc) Signin(ctx context.Context, in domain.Credentials) (domain.TokenPair, error) {
	u, err := s.Repo.ByName(ctx, in.Name)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.TokenPair{}, perr.NotFoundf("not found")
		}
		return domain.TokenPair{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Digest), []byte(in.Password)) != nil {
		return domain.TokenPair{}, perr.NotFoundf("not found")
	}
	return s.Tokens.Pair(u.ID)
}

// Refresh exchanges a valid refresh token of an existing user for a new pair
func (s *Svc) Refresh(ctx context.Context, in domain.RefreshInput) (domain.TokenPair, error) {
	uid, err := s.Tokens.Parse(in.RefreshToken, domain.RefreshToken)
	if err != nil {
		return domain.TokenPair{}, perr.Validationf("invalid refresh token")
	}
	if _, err := s.Repo.ByID(ctx, uid); err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.TokenPair{}, perr.Validationf("invalid refresh token")
		}
		return domain.TokenPair{}, err
	}
	return s.Tokens.Pair(uid)
}

// Me returns the public view of the authenticated user
func (s *Svc) Me(ctx context.Context, userID int64) (domain.User, error) {
	u, err := s.Repo.ByID(ctx, userID)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.User{}, perr.Unauthorizedf("unknown user")
		}
		return domain.User{}, err
	}
	return domain.User{ID: u.ID, Name: u.Name}, nil
}

// Access verifies a bearer access token
func (s *Svc) Access(raw string) (int64, error) { return s.Tokens.Access(raw) }
