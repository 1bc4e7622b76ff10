// Package domain defines the types and ports of the dataset catalog
package domain

import (
	"fmt"
	"strings"
	"time"

	perr "vizdash/internal/platform/errors"
)

// SourceKind names where a dataset is read from
type SourceKind string

// Supported source kinds
const (
	SourceSample SourceKind = "sample"
	SourceFile   SourceKind = "file"
	SourcePG     SourceKind = "pg"
	SourceCH     SourceKind = "ch"
	SourceURL    SourceKind = "url"
)

// Source is a parsed dataset source such as "sample", "file:/data/flights.csv", "url:https://host/athlete_events.csv.gz" or "pg:public.flights"
type Source struct {
	Kind   SourceKind
	Target string
}

// ParseSource parses the DATASET_<NAME>_SOURCE syntax
func ParseSource(s string) (Source, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(SourceSample)) {
		return Source{Kind: SourceSample}, nil
	}
	kind, target, ok := strings.Cut(s, ":")
	target = strings.TrimSpace(target)
	if !ok || target == "" {
		return Source{}, perr.InvalidArgf("dataset source %q: want sample, file:<path>, url:<http url>, pg:<table> or ch:<table>", s)
	}
	switch k := SourceKind(strings.ToLower(kind)); k {
	case SourceFile, SourcePG, SourceCH:
		return Source{Kind: k, Target: target}, nil
	case SourceURL:
		if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
			return Source{}, perr.InvalidArgf("dataset source %q: url must be http or https", s)
		}
		return Source{Kind: k, Target: target}, nil
	}
	return Source{}, perr.InvalidArgf("dataset source %q: unknown kind %q", s, kind)
}

// String renders the source back in config syntax
func (s Source) String() string {
	if s.Kind == SourceSample || s.Kind == "" {
		return string(SourceSample)
	}
	return fmt.Sprintf("%s:%s", s.Kind, s.Target)
}

// Column describes one dataset column
type Column struct {
	Name string `json:"name" example:"distance"`
	Kind string `json:"kind" example:"number"`
}

// Info describes a loaded dataset snapshot
type Info struct {
	Name     string    `json:"name"      example:"flights"`
	Rows     int       `json:"rows"      example:"5000"`
	Columns  []Column  `json:"columns"`
	Source   string    `json:"source"    example:"sample"`
	LoadedAt time.Time `json:"loaded_at" example:"2026-10-16T09:00:00Z"`
	LoadMS   float64   `json:"load_ms"   example:"12.5"`
	// Snapshot changes on every load so clients can tell reloads apart
	Snapshot string `json:"snapshot" example:"0b6f4a34-5f1e-4c59-9a59-5b3f0d9e2c11"`
}
