package middleware_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	perr "moodroom/internal/platform/errors"
	pnet "moodroom/internal/platform/net"
	"moodroom/internal/platform/net/middleware"
)

type fakePort struct {
	uid int64
	err error
}

func (f fakePort) Parse(*http.Request) (int64, error) { return f.uid, f.err }

func failStatus(w http.ResponseWriter, _ *http.Request, err error) {
	w.WriteHeader(perr.HTTPStatus(err))
}

func TestAuth(t *testing.T) {
	cases := []struct {
		name     string
		port     middleware.AuthPort
		status   int
		wantUser int64
	}{
		{"nil port passes", nil, 200, 0},
		{"rejects", fakePort{err: perr.Unauthorizedf("invalid bearer token")}, 401, 0},
		{"sets user", fakePort{uid: 9}, 200, 9},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var seen int64
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = pnet.UserID(r.Context())
				w.WriteHeader(200)
			})
			rr := httptest.NewRecorder()
			middleware.Auth(c.port, failStatus)(next).ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
			if rr.Code != c.status || seen != c.wantUser {
				t.Fatalf("status=%d user=%d", rr.Code, seen)
			}
		})
	}
}

func TestAccessLogZerologPassThrough(t *testing.T) {
	ticks := []time.Time{time.Unix(0, 0), time.Unix(2, 0)}
	now := func() time.Time { t0 := ticks[0]; ticks = ticks[1:]; return t0 }
	mw := middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: time.Second, Now: now})

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, "hi")
		_, _ = io.WriteString(w, "there")
	})
	rr := httptest.NewRecorder()
	middleware.LogContext(mw(next)).ServeHTTP(rr, httptest.NewRequest("GET", "/x", nil))
	if rr.Code != http.StatusCreated || rr.Body.String() != "hithere" {
		t.Fatalf("got %d %q", rr.Code, rr.Body.String())
	}
}

func TestRecoverJSON(t *testing.T) {
	h := middleware.RequestID()(middleware.RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rr.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("body: %v", err)
	}
	if body["code"] != float64(perr.ErrorCodePanic) || body["request_id"] == "" {
		t.Fatalf("body = %v", body)
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("request id header missing")
	}
}

func TestCORSPreflight(t *testing.T) {
	h := middleware.CORS(middleware.CORSOptions{AllowedOrigins: []string{"http://localhost:3000"}})(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(200) }))
	req := httptest.NewRequest("OPTIONS", "/api/v1/comments", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("allow origin = %q", got)
	}
}

func TestHeartbeat(t *testing.T) {
	h := middleware.Heartbeat("/ping")(http.NotFoundHandler())
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/ping", nil))
	if rr.Code != 200 {
		t.Fatalf("heartbeat = %d", rr.Code)
	}
}
