package http

import (
	stdctx "context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"moodroom/internal/platform/clock"
	phttp "moodroom/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type backlog struct{}

func (backlog) Len() int { return 3 }
func (backlog) Cap() int { return 8 }

type pinger struct{ err error }

func (p pinger) Ping(stdctx.Context) error { return p.err }

func TestMetaRoutes(t *testing.T) {
	start := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		pg   any
		want string
	}{
		{"ok", pinger{}, `"status":"ok","checks":[{"name":"pg","status":"ok"}]`},
		{"fail", pinger{err: errors.New("refused")}, `"status":"fail"`},
		{"skipped", nil, `"status":"degraded"`},
		{"not a pinger", struct{}{}, `"status":"unknown"`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := chi.NewRouter()
			Register(phttp.AdaptChi(m), Deps{ServiceName: "moodroom-api", StartedAt: start, Clock: clock.Fixed(start.Add(5 * time.Minute)), PG: c.pg})
			rec := httptest.NewRecorder()
			m.ServeHTTP(rec, httptest.NewRequest("GET", "/ready", nil))
			if rec.Code != 200 || !strings.Contains(rec.Body.String(), c.want) {
				t.Fatalf("ready = %d %s", rec.Code, rec.Body.String())
			}
		})
	}

	m := chi.NewRouter()
	Register(phttp.AdaptChi(m), Deps{ServiceName: "moodroom-api", StartedAt: start, Clock: clock.Fixed(start.Add(5 * time.Minute))})
	for path, want := range map[string]string{
		"/health":  `"now":"2026-10-14T09:05:00Z"`,
		"/version": `"service":"moodroom-api"`,
		"/service": `"uptime":300`,
	} {
		rec := httptest.NewRecorder()
		m.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
		if rec.Code != 200 || !strings.Contains(rec.Body.String(), want) {
			t.Fatalf("%s = %d %s", path, rec.Code, rec.Body.String())
		}
	}
}

func TestPipelineRoute(t *testing.T) {
	m := chi.NewRouter()
	Register(phttp.AdaptChi(m), Deps{ServiceName: "moodroom-api"})
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest("GET", "/pipeline", nil))
	if rec.Code != 404 {
		t.Fatalf("pipeline without a backlog = %d", rec.Code)
	}

	m = chi.NewRouter()
	Register(phttp.AdaptChi(m), Deps{ServiceName: "moodroom-api", Pipeline: backlog{}})
	rec = httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest("GET", "/pipeline", nil))
	if rec.Code != 200 || !strings.Contains(rec.Body.String(), `"queued":3,"capacity":8`) {
		t.Fatalf("pipeline = %d %s", rec.Code, rec.Body.String())
	}
}
