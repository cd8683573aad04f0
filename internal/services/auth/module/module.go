// Package module wires auth into the API using modkit
package module

import (
	modkit "moodroom/internal/modkit"
	"moodroom/internal/modkit/httpkit"
	authhttp "moodroom/internal/services/auth/http"
	authrepo "moodroom/internal/services/auth/repo"
	authsvc "moodroom/internal/services/auth/service"
)

// Ports is what other modules consume from auth
type Ports struct {
	// Auth verifies bearer access tokens for protected routes
	Auth *httpkit.Port
}

// Module implements the modkit.Module interface
type Module struct {
	b     modkit.Built
	svc   authsvc.Service
	ports Ports
}

// New constructs the auth module; CORE_API_JWT_SECRET is required
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("auth")}, opts...)...)

	api := deps.Cfg.Prefix("CORE_API_")
	tokens := authsvc.NewTokens(
		[]byte(api.MustString("JWT_SECRET")),
		api.MayDuration("ACCESS_TTL", authsvc.DefaultAccessTTL),
		api.MayDuration("REFRESH_TTL", authsvc.DefaultRefreshTTL),
		deps.Now(),
	)
	svc := authsvc.New(deps.PG, authrepo.NewPG(), tokens, deps.Now())
	return &Module{
		b:     b,
		svc:   svc,
		ports: Ports{Auth: httpkit.NewPortFunc(svc.Access)},
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(sub httpkit.Router) { authhttp.Register(sub, m.svc, m.ports.Auth) })
}

// Ports returns Ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }
