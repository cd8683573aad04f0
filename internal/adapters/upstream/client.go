// Package upstream is the shared HTTP client for the external NLP and speech services
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	perr "moodroom/internal/platform/errors"
	"moodroom/internal/platform/logger"
	str "moodroom/internal/platform/strings"
)

const (
	defaultTimeout = 10 * time.Second
	defaultUA      = "moodroom-api"
	maxBody        = 8 << 20
)

// Options configures the Client
type Options struct {
	// Name tags logs and errors (i.e. "deepl", "watson-tone")
	Name      string
	UserAgent string
	// Timeout bounds a whole exchange; callers may pass a tighter ctx deadline
	Timeout time.Duration
	// HTTP overrides the transport client, mostly for tests
	HTTP *http.Client
}

// Client issues single attempt requests and maps failures to perr upstream errors
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	now  func() time.Time
}

// StatusError wraps a non-2xx response
type StatusError struct {
	Status int
	Body   string
	Err    error
}

// Error interface
func (e *StatusError) Error() string { return e.Err.Error() }

// Unwrap interface
func (e *StatusError) Unwrap() error { return e.Err }

// HTTPStatus interface
func (e *StatusError) HTTPStatus() int { return e.Status }

// New creates a Client with defaults
func New(o Options) *Client {
	o.UserAgent = str.Or(o.UserAgent, defaultUA)
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.Name == "" {
		o.Name = "upstream"
	}
	hc := o.HTTP
	if hc == nil {
		hc = &http.Client{Timeout: o.Timeout}
	}
	return &Client{http: hc, opts: o, log: *logger.Named(o.Name), now: time.Now}
}

// Name is the upstream tag
func (c *Client) Name() string { return c.opts.Name }

// Do sends req once; any transport error or non-2xx status is an ErrorCodeUpstream error
// The caller owns the returned body on success
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	req = req.WithContext(ctx)
	req.Header.Set("User-Agent", c.opts.UserAgent)

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUpstream, "%s request failed", c.opts.Name)
	}

	logger.C(ctx).Debug().
		Str("upstream", c.opts.Name).
		Str("method", req.Method).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Msg("upstream response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// read a small tail for diagnostics
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		_ = resp.Body.Close()
		se := &StatusError{
			Status: resp.StatusCode,
			Body:   string(body),
			Err:    fmt.Errorf("%s unexpected status %d", c.opts.Name, resp.StatusCode),
		}
		return nil, perr.Wrap(se, perr.ErrorCodeUpstream, c.opts.Name+" rejected request")
	}
	return resp, nil
}

// DoJSON sends req and decodes a JSON response into T
func DoJSON[T any](ctx context.Context, c *Client, req *http.Request) (T, error) {
	var out T
	resp, err := c.Do(ctx, req)
	if err != nil {
		return out, err
	}
	defer drainAndClose(resp.Body)
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(&out); err != nil {
		return out, perr.Wrapf(err, perr.ErrorCodeUpstream, "%s response decode failed", c.opts.Name)
	}
	return out, nil
}

// DoBytes sends req and returns the raw body
func DoBytes(ctx context.Context, c *Client, req *http.Request) ([]byte, string, error) {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, "", err
	}
	defer drainAndClose(resp.Body)
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, "", perr.Wrapf(err, perr.ErrorCodeUpstream, "%s response read failed", c.opts.Name)
	}
	return b, resp.Header.Get("Content-Type"), nil
}


func drainAndClose(rc io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	_ = rc.Close()
}
