// Package config reads application configuration from environment variables
package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"moodroom/internal/platform/logger"
)

// Conf is a namespaced view over environment variables (e.g. "CORE_API_", "PIPELINE_")
// New() reads globally; Prefix scopes a module to its own keys
type Conf struct{ prefix string }

// New creates a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix creates a child Conf with an additional prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

func (c Conf) lookup(k string) string { return strings.TrimSpace(os.Getenv(c.key(k))) }

// parseOr decodes key with fn; empty yields def and a decode failure logs and yields def
func parseOr[T any](c Conf, key string, def T, kind string, fn func(string) (T, error)) T {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	v, err := fn(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Interface("default", def).
			Msgf("invalid %s; using default", kind)
		return def
	}
	return v
}

// mustParse decodes a required key with fn and panics when missing or invalid
func mustParse[T any](c Conf, key, kind string, fn func(string) (T, error)) T {
	s := c.MustString(key)
	v, err := fn(s)
	if err != nil {
		logger.Get().Panic().Str("key", c.key(key)).Str("value", s).Msgf("invalid %s value", kind)
	}
	return v
}

// MustString panics if key is missing or empty
func (c Conf) MustString(key string) string {
	v := c.lookup(key)
	if v == "" {
		logger.Get().Panic().Str("key", c.key(key)).Msg("missing required env")
	}
	return v
}

// MustInt panics if key is missing or not an int
func (c Conf) MustInt(key string) int { return mustParse(c, key, "int", strconv.Atoi) }

// MustDuration panics if key is missing or not a duration (250ms, 2s, 1h)
func (c Conf) MustDuration(key string) time.Duration {
	return mustParse(c, key, "duration", time.ParseDuration)
}

// MustURL panics if key is missing or not an absolute URL
func (c Conf) MustURL(key string) *url.URL { return mustParse(c, key, "absolute URL", parseAbsURL) }

// MustPort validates 1..65535 and returns a listen addr like ":4000"
func (c Conf) MustPort(key string) string {
	p := mustParse(c, key, "TCP port", parsePort)
	return ":" + strconv.Itoa(p)
}

// MayPort returns a listen addr for key, falling back to def (":4000" or "4000") when missing
// A value outside 1..65535 panics
func (c Conf) MayPort(key, def string) string {
	if c.lookup(key) == "" {
		p, err := parsePort(def)
		if err != nil {
			logger.Get().Panic().Str("key", c.key(key)).Str("default", def).Msg("invalid default TCP port")
		}
		return ":" + strconv.Itoa(p)
	}
	return c.MustPort(key)
}

// Require panics on the first missing key
func (c Conf) Require(keys ...string) {
	for _, k := range keys {
		_ = c.MustString(k)
	}
}

// MayString returns the value or def if missing
func (c Conf) MayString(key, def string) string {
	if v := c.lookup(key); v != "" {
		return v
	}
	return def
}

// MayInt returns the value or def if missing or invalid
func (c Conf) MayInt(key string, def int) int { return parseOr(c, key, def, "int", strconv.Atoi) }

// MayFloat64 returns the value or def if missing or invalid
func (c Conf) MayFloat64(key string, def float64) float64 {
	return parseOr(c, key, def, "float64", func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
}

// MayBool returns the value or def if missing or invalid
func (c Conf) MayBool(key string, def bool) bool {
	return parseOr(c, key, def, "bool", strconv.ParseBool)
}

// MayDuration returns the value or def if missing or invalid
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return parseOr(c, key, def, "duration", time.ParseDuration)
}

// MayURL returns the parsed absolute URL or def (which may be empty) if missing or invalid
func (c Conf) MayURL(key, def string) string {
	u := parseOr(c, key, (*url.URL)(nil), "absolute URL", parseAbsURL)
	if u == nil {
		return def
	}
	return u.String()
}

// MayCSV splits a comma separated value, dropping blanks; def if nothing remains
func (c Conf) MayCSV(key string, def []string) []string {
	var out []string
	for p := range strings.SplitSeq(c.lookup(key), ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func parseAbsURL(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() {
		return nil, strconv.ErrSyntax
	}
	return u, nil
}

func parsePort(s string) (int, error) {
	p, err := strconv.Atoi(strings.TrimPrefix(s, ":"))
	if err != nil {
		return 0, err
	}
	if p < 1 || p > 65535 {
		return 0, strconv.ErrRange
	}
	return p, nil
}
