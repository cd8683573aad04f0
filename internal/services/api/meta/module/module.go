// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"moodroom/internal/core/version"
	modkit "moodroom/internal/modkit"
	"moodroom/internal/modkit/httpkit"

	metahttp "moodroom/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	b    modkit.Built
	deps metahttp.Deps
}

// New constructs a meta module; a Backlog passed with modkit.WithPorts adds /meta/pipeline
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	hd := metahttp.Deps{
		ServiceName: version.Service,
		StartedAt:   deps.Now().Now(),
		Clock:       deps.Now(),
	}
	if q, ok := b.Ports.(metahttp.Backlog); ok {
		hd.Pipeline = q
	}
	// a nil TxRunner must stay a nil interface so ready reports skipped
	if deps.PG != nil {
		hd.PG = deps.PG
	}
	return &Module{b: b, deps: hd}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(sub httpkit.Router) { metahttp.Register(sub, m.deps) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.b.Name }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
