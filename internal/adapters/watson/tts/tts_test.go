package tts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"moodroom/internal/core/mood"
	perr "moodroom/internal/platform/errors"
)

func TestSSML(t *testing.T) {
	if got := SSML("Q&A <now>", mood.Voice{}); got != "<speak>Q&amp;A &lt;now&gt;</speak>" {
		t.Fatalf("plain = %q", got)
	}
	want := `<speak><express-as type="GoodNews">Great!</express-as></speak>`
	if got := SSML("Great!", mood.Voice{Name: "en-US_AllisonV3Voice", Style: "GoodNews"}); got != want {
		t.Fatalf("styled = %q", got)
	}
}

func TestSynthesize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/synthesize" || r.URL.Query().Get("voice") != "en-US_LisaV3Voice" {
			t.Errorf("url = %s", r.URL)
		}
		if r.Header.Get("Accept") != "audio/mp3" {
			t.Errorf("accept = %q", r.Header.Get("Accept"))
		}
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in["text"] != "<speak>Hello</speak>" {
			t.Errorf("text = %q", in["text"])
		}
		w.Header().Set("Content-Type", "audio/mp3")
		_, _ = w.Write([]byte("ID3fake"))
	}))
	defer srv.Close()

	s := New(Options{URL: srv.URL + "/", APIKey: "k"})
	audio, err := s.Synthesize(context.Background(), "Hello", mood.Voice{Name: "en-US_LisaV3Voice"})
	if err != nil || string(audio) != "ID3fake" {
		t.Fatalf("Synthesize = %q, %v", audio, err)
	}
}

func TestSynthesizeUnconfiguredAndFailure(t *testing.T) {
	if _, err := New(Options{}).Synthesize(context.Background(), "x", mood.Voice{}); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("unconfigured = %v", err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	if _, err := New(Options{URL: srv.URL}).Synthesize(context.Background(), "x", mood.Voice{}); !perr.IsCode(err, perr.ErrorCodeUpstream) {
		t.Fatalf("failure = %v", err)
	}
}
