// Package tone classifies English text through the Watson Tone Analyzer
package tone

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"moodroom/internal/adapters/upstream"
	coretone "moodroom/internal/core/tone"
	"moodroom/internal/platform/config"
	perr "moodroom/internal/platform/errors"
)

// Options configures the Classifier
type Options struct {
	URL     string
	APIKey  string
	Timeout time.Duration
	HTTP    *http.Client
}

// FromConfig reads SERVICE_TONE_* style keys; URL is required
func FromConfig(c config.Conf) Options {
	return Options{
		URL:    c.MustURL("URL").String(),
		APIKey: c.MayString("API_KEY", ""),
	}
}

// Classifier calls the tone analyzer
type Classifier struct {
	c    *upstream.Client
	opts Options
}

// New builds a Classifier
func New(o Options) *Classifier {
	return &Classifier{
		c:    upstream.New(upstream.Options{Name: "watson-tone", Timeout: o.Timeout, HTTP: o.HTTP}),
		opts: o,
	}
}

type response struct {
	DocumentTone struct {
		Tones []coretone.Candidate `json:"tones"`
	} `json:"document_tone"`
}

// Classify returns the document level tones in the order the analyzer listed them
// An empty slice is a valid answer
func (c *Classifier) Classify(ctx context.Context, text string) ([]coretone.Candidate, error) {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "watson tone encode failed")
	}
	req, err := http.NewRequest(http.MethodPost, c.opts.URL, bytes.NewReader(body))
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "watson tone new request failed")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth("apikey", c.opts.APIKey)

	out, err := upstream.DoJSON[response](ctx, c.c, req)
	if err != nil {
		return nil, err
	}
	if out.DocumentTone.Tones == nil {
		return []coretone.Candidate{}, nil
	}
	return out.DocumentTone.Tones, nil
}
