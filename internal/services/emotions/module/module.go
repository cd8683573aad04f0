// Package module wires emotions into the API using modkit
package module

import (
	"math/rand/v2"
	"net/http"

	"moodroom/internal/adapters/objectstore"
	"moodroom/internal/adapters/watson/tts"
	"moodroom/internal/core/mood"
	modkit "moodroom/internal/modkit"
	"moodroom/internal/modkit/httpkit"
	"moodroom/internal/modkit/module"
	"moodroom/internal/platform/net/middleware"
	authmod "moodroom/internal/services/auth/module"
	"moodroom/internal/services/emotions/domain"
	emotionshttp "moodroom/internal/services/emotions/http"
	emotionsrepo "moodroom/internal/services/emotions/repo"
	emotionssvc "moodroom/internal/services/emotions/service"
	presencemod "moodroom/internal/services/presence/module"
)

// Wiring is injected with modkit.WithPorts; nil gateways are built from config,
// nil Auth, Presence and Active come from the auth and presence registry entries
type Wiring struct {
	Auth     middleware.AuthPort
	Presence func(http.Handler) http.Handler
	Active   domain.ActiveCounter

	Voice domain.Synthesizer
	Clips domain.ClipResolver
	Rand  *rand.Rand
}

// Module implements the modkit.Module interface
type Module struct {
	b   modkit.Built
	w   Wiring
	svc emotionssvc.Service
}

// New constructs the emotions module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("emotions")}, opts...)...)
	w, _ := b.Ports.(Wiring)
	if w.Auth == nil {
		w.Auth = module.MustPortsAs[authmod.Ports]("auth").Auth
	}
	if p, ok := module.PortsAs[presencemod.Ports]("presence"); ok && w.Presence == nil {
		w.Presence = p.Middleware
	}
	if w.Active == nil {
		w.Active, _ = module.PortsAs[domain.ActiveCounter]("presence")
	}
	if w.Active == nil {
		panic("emotions module requires an active user counter")
	}
	if w.Voice == nil {
		w.Voice = tts.New(tts.FromConfig(deps.Cfg.Prefix("SERVICE_TTS_")))
	}
	if w.Clips == nil {
		w.Clips = objectstore.New(objectstore.FromConfig(deps.Cfg.Prefix("SERVICE_S3_")))
	}

	// 0 disables clips; unset keeps the 30% default
	clipRatio := deps.Cfg.Prefix("ANNOUNCER_").MayFloat64("CLIP_RATIO", mood.DefaultClipRatio)
	svc := emotionssvc.New(emotionssvc.Options{
		DB:     deps.PG,
		Binder: emotionsrepo.NewPG(),
		Active: w.Active,
		Voice:  w.Voice,
		Clips:  w.Clips,
		Announcer: mood.NewAnnouncer(mood.AnnouncerOptions{
			ClipRatio: &clipRatio,
			Rand:      w.Rand,
		}),
		Clock:  deps.Now(),
		Window: deps.Cfg.Prefix("EMOTIONS_").MayDuration("WINDOW", emotionssvc.DefaultWindow),
	})
	return &Module{b: b, w: w, svc: svc}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(sub httpkit.Router) {
		if m.w.Presence != nil {
			emotionshttp.Register(sub, m.svc, m.w.Auth, m.w.Presence)
			return
		}
		emotionshttp.Register(sub, m.svc, m.w.Auth)
	})
}

// Ports exposes the service for other modules
func (m *Module) Ports() any { return m.svc }

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }
