package store

import "moodroom/internal/platform/config"

// Config aggregates per backend configuration
type Config struct {
	PG PGConfig
}

// PGConfig configures postgres connectivity, tracing and migrations
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int
	Migrate     bool

	// ConnectRetries bounds boot time ping attempts; 0 means 20
	ConnectRetries int
}

// FromConfig reads SERVICE_PGSQL_* style keys from a prefixed view
func FromConfig(c config.Conf) Config {
	return Config{PG: PGConfig{
		Enabled:     true,
		URL:         c.MustString("DBURL"),
		MaxConns:    int32(c.MayInt("MAX_CONNS", 10)),
		LogSQL:      c.MayBool("LOG_SQL", false),
		SlowQueryMs: c.MayInt("SLOW_MS", 200),
		Migrate:     c.MayBool("MIGRATE", true),
	}}
}
