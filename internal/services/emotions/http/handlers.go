// Package http provides http transport for emotions and the announcer
package http

import (
	stdhttp "net/http"

	"moodroom/internal/core/mood"
	"moodroom/internal/modkit/httpkit"
	"moodroom/internal/platform/net/middleware"
	"moodroom/internal/services/emotions/domain"
)

// Register mounts /emotions and /talk behind auth and presence
func Register(r httpkit.Router, s domain.ServicePort, auth middleware.AuthPort, presence ...func(stdhttp.Handler) stdhttp.Handler) {
	h := &handlers{svc: s}
	httpkit.Protected(r, auth, func(p httpkit.Router) {
		httpkit.Get(p, "/emotions", h.emotions)
		httpkit.Get(p, "/talk", h.talk)
	}, presence...)
}

type handlers struct{ svc domain.ServicePort }

// @Summary Rolling emotion distribution
// @Tags Emotions
// @Success 200 {object} domain.Summary "ok"
// @Router /emotions [get]
func (h *handlers) emotions(r *stdhttp.Request) (any, error) {
	return h.svc.Summary(r.Context())
}

// @Summary Announcer reaction
// @Tags Emotions
// @Produce audio/mpeg
// @Success 200 {file} binary "synthesized speech"
// @Success 302 "redirect to a recorded clip"
// @Router /talk [get]
func (h *handlers) talk(r *stdhttp.Request) (any, error) {
	a, err := h.svc.Announce(r.Context())
	if err != nil {
		return nil, err
	}
	if a.Kind == mood.KindClip {
		return httpkit.Redirect(a.URL), nil
	}
	return httpkit.Binary(a.ContentType, a.Audio), nil
}
