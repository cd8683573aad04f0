package tone

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "moodroom/internal/platform/errors"
)

func TestClassifyDecodesDocumentTones(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "apikey" || pass != "secret" {
			t.Errorf("basic auth = %q/%q/%v", user, pass, ok)
		}
		var in map[string]string
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in["text"] != "I am worried" {
			t.Errorf("body = %v, %v", in, err)
		}
		_, _ = w.Write([]byte(`{
			"document_tone": {"tones": [
				{"score": 0.61, "tone_id": "fear", "tone_name": "Fear"},
				{"score": 0.55, "tone_id": "tentative", "tone_name": "Tentative"}
			]},
			"sentences_tone": []
		}`))
	}))
	defer srv.Close()

	got, err := New(Options{URL: srv.URL, APIKey: "secret"}).Classify(context.Background(), "I am worried")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if len(got) != 2 || got[0].ID != "fear" || got[0].Score != 0.61 || got[1].Name != "Tentative" {
		t.Fatalf("tones = %+v", got)
	}
}

func TestClassifyEmptyAndFailure(t *testing.T) {
	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"document_tone":{}}`))
	}))
	defer empty.Close()
	got, err := New(Options{URL: empty.URL}).Classify(context.Background(), "ok")
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("empty = %#v, %v", got, err)
	}

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer down.Close()
	if _, err := New(Options{URL: down.URL}).Classify(context.Background(), "ok"); !perr.IsCode(err, perr.ErrorCodeUpstream) {
		t.Fatalf("failure = %v", err)
	}
}
