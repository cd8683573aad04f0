// Package tts synthesizes announcer lines through Watson Text to Speech
package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"net/http"
	"net/url"
	"strings"
	"time"

	"moodroom/internal/adapters/upstream"
	"moodroom/internal/core/mood"
	"moodroom/internal/platform/config"
	perr "moodroom/internal/platform/errors"
)

// ContentType is what Synthesize returns
const ContentType = "audio/mpeg"

// Options configures the Synthesizer
type Options struct {
	URL     string
	APIKey  string
	Timeout time.Duration
	HTTP    *http.Client
}

// FromConfig reads SERVICE_TTS_* style keys
func FromConfig(c config.Conf) Options {
	return Options{
		URL:    c.MayURL("URL", ""),
		APIKey: c.MayString("API_KEY", ""),
	}
}

// Synthesizer calls the speech service
type Synthesizer struct {
	c    *upstream.Client
	opts Options
}

// New builds a Synthesizer
func New(o Options) *Synthesizer {
	return &Synthesizer{
		c:    upstream.New(upstream.Options{Name: "watson-tts", Timeout: o.Timeout, HTTP: o.HTTP}),
		opts: o,
	}
}

// SSML wraps text for the voice; a style becomes an express-as element
func SSML(text string, v mood.Voice) string {
	var esc strings.Builder
	_ = xml.EscapeText(&esc, []byte(text))
	if v.Style == "" {
		return "<speak>" + esc.String() + "</speak>"
	}
	return `<speak><express-as type="` + v.Style + `">` + esc.String() + "</express-as></speak>"
}

// Synthesize returns mp3 audio for text spoken by v
func (s *Synthesizer) Synthesize(ctx context.Context, text string, v mood.Voice) ([]byte, error) {
	if s.opts.URL == "" {
		return nil, perr.Unavailablef("speech synthesis is not configured")
	}
	u, err := url.Parse(strings.TrimSuffix(s.opts.URL, "/") + "/v1/synthesize")
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "watson tts url invalid")
	}
	if v.Name != "" {
		u.RawQuery = url.Values{"voice": {v.Name}}.Encode()
	}
	body, err := json.Marshal(map[string]string{"text": SSML(text, v)})
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "watson tts encode failed")
	}
	req, err := http.NewRequest(http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "watson tts new request failed")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mp3")
	req.SetBasicAuth("apikey", s.opts.APIKey)

	audio, _, err := upstream.DoBytes(ctx, s.c, req)
	if err != nil {
		return nil, err
	}
	if len(audio) == 0 {
		return nil, perr.Upstreamf("watson tts returned no audio")
	}
	return audio, nil
}
