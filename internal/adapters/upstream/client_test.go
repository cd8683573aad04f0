package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	perr "moodroom/internal/platform/errors"
)

func TestDoJSONAndStatusErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "moodroom-api" {
			t.Errorf("ua = %q", r.Header.Get("User-Agent"))
		}
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte(`{"text":"hello"}`))
		case "/garbage":
			_, _ = w.Write([]byte(`{`))
		default:
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message":"Wrong endpoint"}`))
		}
	}))
	defer srv.Close()

	c := New(Options{Name: "deepl"})
	ctx := context.Background()

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/ok", nil)
	out, err := DoJSON[struct{ Text string }](ctx, c, req)
	if err != nil || out.Text != "hello" {
		t.Fatalf("DoJSON = %+v, %v", out, err)
	}

	req, _ = http.NewRequest(http.MethodGet, srv.URL+"/garbage", nil)
	if _, err := DoJSON[struct{}](ctx, c, req); !perr.IsCode(err, perr.ErrorCodeUpstream) {
		t.Fatalf("decode err = %v", err)
	}

	req, _ = http.NewRequest(http.MethodGet, srv.URL+"/denied", nil)
	_, err = DoJSON[struct{}](ctx, c, req)
	var se *StatusError
	if !perr.IsCode(err, perr.ErrorCodeUpstream) || !errors.As(err, &se) || se.Status != http.StatusForbidden {
		t.Fatalf("status err = %v", err)
	}
	if perr.HTTPStatus(err) != http.StatusInternalServerError {
		t.Fatalf("upstream errors surface as 500, got %d", perr.HTTPStatus(err))
	}
}

func TestDoRespectsContextDeadline(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	if _, _, err := DoBytes(ctx, New(Options{}), req); !perr.IsCode(err, perr.ErrorCodeUpstream) {
		t.Fatalf("timeout err = %v", err)
	}
}
