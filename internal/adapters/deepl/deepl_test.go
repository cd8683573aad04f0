package deepl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"moodroom/internal/platform/config"
	perr "moodroom/internal/platform/errors"
)

func TestTranslateSendsFormAndReadsFirst(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("form: %v", err)
		}
		if r.PostForm.Get("auth_key") != "k" || r.PostForm.Get("target_lang") != "EN" || r.PostForm.Get("text") != "かわいい" {
			t.Errorf("form = %v", r.PostForm)
		}
		_, _ = w.Write([]byte(`{"translations":[{"detected_source_language":"JA","text":"cute"},{"text":"ignored"}]}`))
	}))
	defer srv.Close()

	got, err := New(Options{URL: srv.URL, Token: "k"}).Translate(context.Background(), "かわいい")
	if err != nil || got != "cute" {
		t.Fatalf("Translate = %q, %v", got, err)
	}
}

func TestTranslateFailures(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{"forbidden", http.StatusForbidden, `{"message":"Authorization failure"}`},
		{"quota", 456, ``},
		{"empty translations", http.StatusOK, `{"translations":[]}`},
		{"not json", http.StatusOK, `<html>`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(c.status)
				_, _ = w.Write([]byte(c.body))
			}))
			defer srv.Close()
			_, err := New(Options{URL: srv.URL}).Translate(context.Background(), "hola")
			if !perr.IsCode(err, perr.ErrorCodeUpstream) {
				t.Fatalf("err = %v", err)
			}
		})
	}
}

func TestFromConfigDefaults(t *testing.T) {
	t.Setenv("SERVICE_DEEPL_TOKEN", "tok")
	o := FromConfig(config.New().Prefix("SERVICE_DEEPL_"))
	if o.URL != DefaultURL || o.TargetLang != "EN" || o.Token != "tok" {
		t.Fatalf("FromConfig = %+v", o)
	}
}
