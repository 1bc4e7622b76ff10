package store

import (
	"time"

	"vizdash/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string

	PG PGConfig
	CH CHConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int
	// PingTimeout bounds the boot ping, default 5s
	PingTimeout time.Duration
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled     bool
	URL         string
	ClientName  string
	ClientTag   string
	PingTimeout time.Duration
}

// PGFromEnv reads DBURL, MAX_CONNS, SLOW_MS, LOG_SQL and PING_TIMEOUT under c
// the backend is enabled when DBURL is set
func PGFromEnv(c config.Conf) PGConfig {
	url := c.MayString("DBURL", "")
	return PGConfig{
		Enabled:     url != "",
		URL:         url,
		MaxConns:    int32(c.MayInt("MAX_CONNS", 4)),
		SlowQueryMs: c.MayInt("SLOW_MS", 500),
		LogSQL:      c.MayBool("LOG_SQL", false),
		PingTimeout: c.MayDuration("PING_TIMEOUT", 5*time.Second),
	}
}

// CHFromEnv reads DBURL and PING_TIMEOUT under c, tag names the calling binary
func CHFromEnv(c config.Conf, tag string) CHConfig {
	url := c.MayString("DBURL", "")
	return CHConfig{
		Enabled:     url != "",
		URL:         url,
		ClientName:  "vizdash",
		ClientTag:   tag,
		PingTimeout: c.MayDuration("PING_TIMEOUT", 5*time.Second),
	}
}
