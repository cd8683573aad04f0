// Package http provides http transport for auth
package http

import (
	stdhttp "net/http"

	"moodroom/internal/modkit/httpkit"
	"moodroom/internal/platform/net/middleware"
	"moodroom/internal/services/auth/domain"
)

// Register mounts the public auth endpoints and the protected me endpoint
func Register(r httpkit.Router, s domain.ServicePort, auth middleware.AuthPort) {
	h := &handlers{svc: s}
	r.Route("/auth", func(a httpkit.Router) {
		httpkit.PostJSON[domain.Credentials](a, "/signup", h.signup)
		httpkit.PostJSON[domain.Credentials](a, "/signin", h.signin)
		httpkit.PostJSON[domain.RefreshInput](a, "/token", h.token)
	})
	httpkit.Protected(r, auth, func(p httpkit.Router) {
		httpkit.Get(p, "/user/me", h.me)
	})
}

type handlers struct{ svc domain.ServicePort }

// @Summary Create an account
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body domain.Credentials true "Credentials"
// @Success 200 {object} domain.TokenPair "ok"
// @Failure 409 {object} httpkit.Envelope "name taken"
// @Router /auth/signup [post]
func (h *handlers) signup(r *stdhttp.Request, in domain.Credentials) (any, error) {
	return h.svc.Signup(r.Context(), in)
}

// @Summary Sign in
// @Tags Auth
// @Failure 404 {object} httpkit.Envelope "bad credentials"
// @Router /auth/signin [post]
func (h *handlers) signin(r *stdhttp.Request, in domain.Credentials) (any, error) {
	return h.svc.Signin(r.Context(), in)
}

// @Summary Exchange a refresh token
// @Tags Auth
// @Router /auth/token [post]
func (h *handlers) token(r *stdhttp.Request, in domain.RefreshInput) (any, error) {
	return h.svc.Refresh(r.Context(), in)
}

func (h *handlers) me(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Me(r.Context(), uid)
}
