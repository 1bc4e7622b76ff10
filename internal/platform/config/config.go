// Package config reads service configuration from environment variables
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"vizdash/internal/platform/logger"
)

// Conf is a namespaced view over the environment, e.g. Prefix("VIZDASH_API_")
type Conf struct{ prefix string }

// New returns a root Conf with no prefix
func New() Conf { return Conf{} }

// Prefix returns a child Conf whose keys carry an extra prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Key returns the fully qualified variable name for k
func (c Conf) Key(k string) string { return c.prefix + k }

func (c Conf) lookup(k string) string { return strings.TrimSpace(os.Getenv(c.Key(k))) }

// must returns the value of k or panics through the root logger
func (c Conf) must(k string) string {
	v := c.lookup(k)
	if v == "" {
		logger.Get().Panic().Str("key", c.Key(k)).Msg("missing required env")
	}
	return v
}

// MustString returns the value of key, panicking when it is unset
func (c Conf) MustString(key string) string { return c.must(key) }

// MustInt returns key parsed as an int, panicking when unset or malformed
func (c Conf) MustInt(key string) int {
	s := c.must(key)
	v, err := strconv.Atoi(s)
	if err != nil {
		logger.Get().Panic().Str("key", c.Key(key)).Str("value", s).Msg("invalid int value")
	}
	return v
}

// MustPort returns key as a listen address like ":4000"
func (c Conf) MustPort(key string) string {
	addr, ok := portAddr(c.must(key))
	if !ok {
		logger.Get().Panic().Str("key", c.Key(key)).Str("value", c.lookup(key)).Msg("invalid TCP port; expected 1..65535")
	}
	return addr
}

// Require panics on the first unset key
func (c Conf) Require(keys ...string) {
	for _, k := range keys {
		_ = c.must(k)
	}
}

// MayString returns the value of key or def
func (c Conf) MayString(key, def string) string {
	if v := c.lookup(key); v != "" {
		return v
	}
	return def
}

// MayInt returns key as an int, or def when unset or malformed
func (c Conf) MayInt(key string, def int) int {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.Key(key)).Str("value", s).Int("default", def).Msg("invalid int; using default")
		return def
	}
	return v
}

// MayBool returns key as a bool, or def when unset or malformed
func (c Conf) MayBool(key string, def bool) bool {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.Key(key)).Str("value", s).Bool("default", def).Msg("invalid bool; using default")
		return def
	}
	return v
}

// MayDuration returns key as a duration, or def when unset or malformed
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.Key(key)).Str("value", s).Dur("default", def).Msg("invalid duration; using default")
		return def
	}
	return d
}

// MayPort returns key as a listen address, or def when unset or malformed
// accepts "4000", ":4000" and "host:4000"
func (c Conf) MayPort(key, def string) string {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	addr, ok := portAddr(s)
	if !ok {
		logger.Get().Warn().Str("key", c.Key(key)).Str("value", s).Str("default", def).Msg("invalid port; using default")
		return def
	}
	return addr
}

// MayCSV splits key on commas, dropping blanks, or returns def
func (c Conf) MayCSV(key string, def []string) []string {
	var out []string
	for _, p := range strings.Split(c.lookup(key), ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns key (or def) and panics when it is not one of allowed
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return strings.ToLower(a)
		}
	}
	logger.Get().Panic().Str("key", c.Key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}

func portAddr(s string) (string, bool) {
	host, port := "", s
	if i := strings.LastIndex(s, ":"); i >= 0 {
		host, port = s[:i], s[i+1:]
	}
	p, err := strconv.Atoi(port)
	if err != nil || p < 1 || p > 65535 {
		return "", false
	}
	return host + ":" + port, true
}
