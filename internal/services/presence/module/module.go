// Package module exposes presence tracking to other modules
package module

import (
	"net/http"

	modkit "moodroom/internal/modkit"
	"moodroom/internal/modkit/httpkit"
	"moodroom/internal/services/presence/domain"
	presrepo "moodroom/internal/services/presence/repo"
	pressvc "moodroom/internal/services/presence/service"
)

// Ports is what other modules consume from presence
type Ports struct {
	Tracker domain.Tracker

	// Middleware touches the authenticated user on presence sensitive routes
	Middleware func(http.Handler) http.Handler
}

// Module implements the modkit.Module interface
type Module struct {
	b     modkit.Built
	ports Ports
}

// New constructs the presence module; PRESENCE_ACTIVE_WINDOW tunes the window
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("presence")}, opts...)...)
	window := deps.Cfg.Prefix("PRESENCE_").MayDuration("ACTIVE_WINDOW", pressvc.DefaultWindow)
	svc := pressvc.New(deps.PG, presrepo.NewPG(), deps.Now(), window)
	return &Module{b: b, ports: Ports{Tracker: svc, Middleware: svc.Middleware}}
}

// MountRoutes mounts only extra registered routes; presence has none of its own
func (m *Module) MountRoutes(r httpkit.Router) { m.b.Mount(r, func(httpkit.Router) {}) }

// Ports returns Ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }
