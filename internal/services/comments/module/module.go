// Package module wires comments into the API using modkit
package module

import (
	"net/http"

	"moodroom/internal/adapters/deepl"
	watsontone "moodroom/internal/adapters/watson/tone"
	modkit "moodroom/internal/modkit"
	"moodroom/internal/modkit/httpkit"
	"moodroom/internal/modkit/module"
	"moodroom/internal/platform/net/middleware"
	authmod "moodroom/internal/services/auth/module"
	"moodroom/internal/services/comments/domain"
	commentshttp "moodroom/internal/services/comments/http"
	commentsrepo "moodroom/internal/services/comments/repo"
	commentssvc "moodroom/internal/services/comments/service"
	presencemod "moodroom/internal/services/presence/module"
)

// Wiring is injected with modkit.WithPorts; nil gateways are built from config,
// nil Auth and Presence come from the auth and presence registry entries
type Wiring struct {
	Queue    commentssvc.Queue
	Auth     middleware.AuthPort
	Presence func(http.Handler) http.Handler

	Translator domain.Translator
	Classifier domain.ToneClassifier
}

// Module implements the modkit.Module interface
type Module struct {
	b   modkit.Built
	w   Wiring
	svc commentssvc.Service
}

// New constructs the comments module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("comments")}, opts...)...)
	w, _ := b.Ports.(Wiring)
	if w.Queue == nil {
		panic("comments module requires a task queue")
	}
	if w.Auth == nil {
		w.Auth = module.MustPortsAs[authmod.Ports]("auth").Auth
	}
	if w.Presence == nil {
		if p, ok := module.PortsAs[presencemod.Ports]("presence"); ok {
			w.Presence = p.Middleware
		}
	}
	if w.Translator == nil {
		w.Translator = deepl.New(deepl.FromConfig(deps.Cfg.Prefix("SERVICE_DEEPL_")))
	}
	if w.Classifier == nil {
		w.Classifier = watsontone.New(watsontone.FromConfig(deps.Cfg.Prefix("SERVICE_TONE_")))
	}

	pipe := deps.Cfg.Prefix("PIPELINE_")
	svc := commentssvc.New(commentssvc.Options{
		DB:              deps.PG,
		Binder:          commentsrepo.NewPG(),
		Translator:      w.Translator,
		Classifier:      w.Classifier,
		Queue:           w.Queue,
		Clock:           deps.Now(),
		Window:          deps.Cfg.Prefix("EMOTIONS_").MayDuration("WINDOW", commentssvc.DefaultWindow),
		UpstreamTimeout: pipe.MayDuration("UPSTREAM_TIMEOUT", commentssvc.DefaultUpstreamTimeout),
	})
	return &Module{b: b, w: w, svc: svc}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(sub httpkit.Router) {
		if m.w.Presence != nil {
			commentshttp.Register(sub, m.svc, m.w.Auth, m.w.Presence)
			return
		}
		commentshttp.Register(sub, m.svc, m.w.Auth)
	})
}

// Ports exposes the service for other modules
func (m *Module) Ports() any { return m.svc }

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }
