// Package version reports build information stamped at link time
package version

import (
	"runtime"
	"runtime/debug"
)

// BuildInfo holds version information about a vizdash binary
type BuildInfo struct {
	Service   string `json:"service"    example:"vizdash-api"`
	Version   string `json:"version"    example:"v0.3.0"`
	Commit    string `json:"commit"     example:"4f1c2a9"`
	Date      string `json:"date"       example:"2026-10-16"`
	GoVersion string `json:"go_version" example:"go1.25.0"`
}

// set with -ldflags "-X 'vizdash/internal/core/version.version=v0.3.0' -X 'vizdash/internal/core/version.commit=4f1c2a9'"
var (
	version = "dev"
	commit  = ""
	date    = "unknown"
)

// Info returns the build information of service
// the commit falls back to the VCS stamp embedded by the go toolchain
func Info(service string) BuildInfo {
	c := commit
	if c == "" {
		c = "none"
		if bi, ok := debug.ReadBuildInfo(); ok {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" && s.Value != "" {
					c = s.Value
					if len(c) > 7 {
						c = c[:7]
					}
				}
			}
		}
	}
	return BuildInfo{
		Service:   service,
		Version:   version,
		Commit:    c,
		Date:      date,
		GoVersion: runtime.Version(),
	}
}
