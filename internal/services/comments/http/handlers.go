// Package http provides http transport for comments and the direct gateway calls
package http

import (
	stdhttp "net/http"

	"moodroom/internal/modkit/httpkit"
	"moodroom/internal/platform/net/middleware"
	"moodroom/internal/services/comments/domain"
)

// Register mounts the comment endpoints behind auth; the poll additionally runs presence
func Register(r httpkit.Router, s domain.ServicePort, auth middleware.AuthPort, presence ...func(stdhttp.Handler) stdhttp.Handler) {
	h := &handlers{svc: s}
	httpkit.Protected(r, auth, func(p httpkit.Router) {
		httpkit.PostJSON[domain.TextInput](p, "/comments", h.submit)
		httpkit.PostJSON[domain.TextInput](p, "/translate", h.translate)
		httpkit.PostJSON[domain.TextInput](p, "/analyze/tone", h.analyze)
	})
	httpkit.Protected(r, auth, func(p httpkit.Router) {
		httpkit.Get(p, "/comments", h.poll)
	}, presence...)
}

type handlers struct{ svc domain.ServicePort }

// @Summary Submit a comment for background classification
// @Tags Comments
// @Param payload body domain.TextInput true "Comment"
// @Success 200 {object} domain.Ack "accepted, not yet stored"
// @Router /comments [post]
func (h *handlers) submit(r *stdhttp.Request, in domain.TextInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Submit(r.Context(), uid, in.Text)
}

// @Summary Poll undelivered recent comments
// @Tags Comments
// @Success 200 {object} domain.PollOut "ok"
// @Router /comments [get]
func (h *handlers) poll(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	cs, err := h.svc.Poll(r.Context(), uid)
	if err != nil {
		return nil, err
	}
	return domain.PollOut{Comments: cs}, nil
}

func (h *handlers) translate(r *stdhttp.Request, in domain.TextInput) (any, error) {
	return h.svc.Translate(r.Context(), in.Text)
}

func (h *handlers) analyze(r *stdhttp.Request, in domain.TextInput) (any, error) {
	return h.svc.AnalyzeTone(r.Context(), in.Text)
}
