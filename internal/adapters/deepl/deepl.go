// Package deepl translates comment text to English through the DeepL v2 API
package deepl

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"moodroom/internal/adapters/upstream"
	"moodroom/internal/platform/config"
	perr "moodroom/internal/platform/errors"
)

// DefaultURL is the free tier endpoint
const DefaultURL = "https://api-free.deepl.com/v2/translate"

// Options configures the Translator
type Options struct {
	URL        string
	Token      string
	TargetLang string
	Timeout    time.Duration
	HTTP       *http.Client
}

// FromConfig reads SERVICE_DEEPL_* style keys from a prefixed view
func FromConfig(c config.Conf) Options {
	return Options{
		URL:        c.MayURL("URL", DefaultURL),
		Token:      c.MayString("TOKEN", ""),
		TargetLang: c.MayString("TARGET_LANG", "EN"),
	}
}

// Translator calls DeepL
type Translator struct {
	c    *upstream.Client
	opts Options
}

// New builds a Translator with defaults applied
func New(o Options) *Translator {
	if o.URL == "" {
		o.URL = DefaultURL
	}
	if o.TargetLang == "" {
		o.TargetLang = "EN"
	}
	return &Translator{
		c:    upstream.New(upstream.Options{Name: "deepl", Timeout: o.Timeout, HTTP: o.HTTP}),
		opts: o,
	}
}

type response struct {
	Translations []struct {
		DetectedSourceLanguage string `json:"detected_source_language"`
		Text                   string `json:"text"`
	} `json:"translations"`
}

// Translate returns text in the target language
func (t *Translator) Translate(ctx context.Context, text string) (string, error) {
	form := url.Values{
		"auth_key":    {t.opts.Token},
		"text":        {text},
		"target_lang": {t.opts.TargetLang},
	}
	req, err := http.NewRequest(http.MethodPost, t.opts.URL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnknown, "deepl new request failed")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	out, err := upstream.DoJSON[response](ctx, t.c, req)
	if err != nil {
		return "", err
	}
	if len(out.Translations) == 0 {
		return "", perr.Upstreamf("deepl returned no translations")
	}
	return out.Translations[0].Text, nil
}
